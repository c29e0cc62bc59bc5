package directory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dep2p/go-hive/pkg/interfaces"
	"github.com/dep2p/go-hive/pkg/types"
)

type fakeChannel struct{ addr string }

func (c fakeChannel) Invoke(context.Context, string, string, []byte) ([]byte, error) {
	return nil, nil
}

func (c fakeChannel) Address() string { return c.addr }

func newTestDirectory() *Directory {
	return New(func(addr string) interfaces.Channel { return fakeChannel{addr: addr} })
}

func TestDirectory_RegisterCell(t *testing.T) {
	d := newTestDirectory()
	id := types.NewCellID()

	require.True(t, d.RegisterCell(types.CellDescriptor{CellID: id, ConfigVersion: 1, Address: "a"}))
	ch, ok := d.FindChannel(id)
	require.True(t, ok)
	assert.Equal(t, "a", ch.Address())

	// 相同或更低版本不覆盖
	assert.False(t, d.RegisterCell(types.CellDescriptor{CellID: id, ConfigVersion: 1, Address: "b"}))
	assert.False(t, d.RegisterCell(types.CellDescriptor{CellID: id, ConfigVersion: 0, Address: "b"}))
	ch, _ = d.FindChannel(id)
	assert.Equal(t, "a", ch.Address())

	assert.True(t, d.RegisterCell(types.CellDescriptor{CellID: id, ConfigVersion: 2, Address: "b"}))
	ch, _ = d.FindChannel(id)
	assert.Equal(t, "b", ch.Address())
}

func TestDirectory_DummyDescriptorHasNoChannel(t *testing.T) {
	d := newTestDirectory()
	id := types.NewCellID()

	require.True(t, d.RegisterCell(types.CellDescriptor{CellID: id, ConfigVersion: -1}))
	_, ok := d.FindChannel(id)
	assert.False(t, ok)

	desc, ok := d.FindDescriptor(id)
	require.True(t, ok)
	assert.Equal(t, -1, desc.ConfigVersion)
}

func TestDirectory_UnregisterCell(t *testing.T) {
	d := newTestDirectory()
	id := types.NewCellID()

	assert.False(t, d.IsCellUnregistered(id))
	d.RegisterCell(types.CellDescriptor{CellID: id, ConfigVersion: 1, Address: "a"})

	assert.True(t, d.UnregisterCell(id))
	assert.True(t, d.IsCellUnregistered(id))
	_, ok := d.FindChannel(id)
	assert.False(t, ok)
	assert.Empty(t, d.GetRegisteredCells())

	assert.False(t, d.UnregisterCell(id))

	d.RegisterCell(types.CellDescriptor{CellID: id, ConfigVersion: 3, Address: "a"})
	assert.False(t, d.IsCellUnregistered(id))
}

func TestDirectory_Synchronize(t *testing.T) {
	d := newTestDirectory()
	a := types.MustParseCellID("aaaaaaaa-0000-0000-0000-000000000000")
	b := types.MustParseCellID("bbbbbbbb-0000-0000-0000-000000000000")
	c := types.MustParseCellID("cccccccc-0000-0000-0000-000000000000")
	gone := types.MustParseCellID("dddddddd-0000-0000-0000-000000000000")

	d.RegisterCell(types.CellDescriptor{CellID: a, ConfigVersion: 2, Address: "a"})
	d.RegisterCell(types.CellDescriptor{CellID: b, ConfigVersion: 1, Address: "b"})
	d.RegisterCell(types.CellDescriptor{CellID: c, ConfigVersion: 5, Address: "c"})

	result := d.Synchronize([]types.CellInfo{
		{CellID: a, ConfigVersion: 1},    // 版本落后
		{CellID: b, ConfigVersion: 1},    // 一致
		{CellID: gone, ConfigVersion: 7}, // 本地不存在
	})

	require.Len(t, result.CellsToReconfigure, 2)
	assert.Equal(t, a, result.CellsToReconfigure[0].CellID)
	assert.Equal(t, 2, result.CellsToReconfigure[0].ConfigVersion)
	assert.Equal(t, c, result.CellsToReconfigure[1].CellID)
	assert.Equal(t, []types.CellID{gone}, result.CellsToUnregister)
}

func TestDirectory_SynchronizeUpToDate(t *testing.T) {
	d := newTestDirectory()
	id := types.NewCellID()
	d.RegisterCell(types.CellDescriptor{CellID: id, ConfigVersion: 4, Address: "x"})

	result := d.Synchronize(d.GetRegisteredCells())
	assert.Empty(t, result.CellsToReconfigure)
	assert.Empty(t, result.CellsToUnregister)
}

func TestDirectory_SynchronizeUnknownCellsDoNotHideMissing(t *testing.T) {
	d := newTestDirectory()
	x := types.MustParseCellID("aaaaaaaa-0000-0000-0000-000000000000")
	y := types.MustParseCellID("bbbbbbbb-0000-0000-0000-000000000000")
	z := types.MustParseCellID("cccccccc-0000-0000-0000-000000000000")
	d.RegisterCell(types.CellDescriptor{CellID: x, ConfigVersion: 3, Address: "x"})

	result := d.Synchronize([]types.CellInfo{
		{CellID: y, ConfigVersion: 1},
		{CellID: z, ConfigVersion: 1},
	})

	require.Len(t, result.CellsToReconfigure, 1)
	assert.Equal(t, x, result.CellsToReconfigure[0].CellID)
	assert.Equal(t, 3, result.CellsToReconfigure[0].ConfigVersion)
	assert.Equal(t, []types.CellID{y, z}, result.CellsToUnregister)
}
