package hive

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dep2p/go-hive/internal/core/automaton"
	"github.com/dep2p/go-hive/pkg/interfaces"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	var got []string
	handler := func(mc interfaces.MutationContext) error {
		got = append(got, string(mc.Payload()))
		return nil
	}

	require.NoError(t, r.Register("b.Type", handler))
	require.NoError(t, r.Register("a.Type", handler))
	assert.ErrorIs(t, r.Register("a.Type", handler), ErrHandlerAlreadyRegistered)
	assert.Equal(t, []string{"a.Type", "b.Type"}, r.List())

	require.NoError(t, r.Dispatch(automaton.NewMutationContext("a.Type", []byte("x"), 1)))
	assert.Equal(t, []string{"x"}, got)

	assert.ErrorIs(t, r.Dispatch(automaton.NewMutationContext("c.Type", nil, 2)), ErrHandlerNotFound)

	require.NoError(t, r.Unregister("a.Type"))
	assert.ErrorIs(t, r.Unregister("a.Type"), ErrHandlerNotFound)
	_, ok := r.Get("a.Type")
	assert.False(t, ok)
}

func TestRegistry_HandlerError(t *testing.T) {
	r := NewRegistry()
	boom := errors.New("boom")
	require.NoError(t, r.Register("x", func(interfaces.MutationContext) error { return boom }))

	assert.ErrorIs(t, r.Dispatch(automaton.NewMutationContext("x", nil, 1)), boom)
}
