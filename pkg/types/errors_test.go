package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_IsByCode(t *testing.T) {
	err := NewError(CodeUnavailable, "cell %s is not reachable", "abc")

	assert.ErrorIs(t, err, ErrUnavailable)
	assert.NotErrorIs(t, err, ErrNoSuchMailbox)

	wrapped := fmt.Errorf("sync failed: %w", err)
	assert.ErrorIs(t, wrapped, ErrUnavailable)
	assert.Equal(t, CodeUnavailable, CodeOf(wrapped))
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("dial refused")
	err := WrapError(CodeUnavailable, cause, "ping failed")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "ping failed: dial refused", err.Error())
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeOK, CodeOf(nil))
	assert.Equal(t, CodeUnavailable, CodeOf(errors.New("plain")))
	assert.Equal(t, CodeCellRemoved, CodeOf(ErrCellRemoved))
	assert.Equal(t, "MailboxNotCreatedYet", CodeMailboxNotCreatedYet.String())
}
