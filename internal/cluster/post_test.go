package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dep2p/go-hive/pkg/types"
)

func TestPost_EncodeDecode(t *testing.T) {
	dsts := []types.CellID{types.NewCellID(), types.NewCellID()}
	trace := types.NewTraceContext()
	msg := types.NewEncapsulatedMessage(recordType, []byte("r1"), types.TraceContext{})

	b, err := encodePost(dsts, msg)
	require.NoError(t, err)

	gotDsts, gotMsg, err := decodePost(b, trace)
	require.NoError(t, err)
	assert.Equal(t, dsts, gotDsts)
	assert.Equal(t, recordType, gotMsg.Type())
	assert.Equal(t, []byte("r1"), gotMsg.Data())
	assert.Equal(t, trace, gotMsg.Trace())
}

func TestPost_DecodeMalformed(t *testing.T) {
	_, _, err := decodePost([]byte{0x0a, 0x10, 'x'}, types.TraceContext{})
	assert.ErrorIs(t, err, types.ErrInvalidMessage)
}
