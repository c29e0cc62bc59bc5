package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellID(t *testing.T) {
	t.Run("NewCellID", func(t *testing.T) {
		a := NewCellID()
		b := NewCellID()
		assert.NotEqual(t, a, b)
		assert.False(t, a.IsEmpty())
	})

	t.Run("ParseCellID", func(t *testing.T) {
		tests := []struct {
			name    string
			input   string
			wantErr bool
		}{
			{"valid", "6ba7b810-9dad-11d1-80b4-00c04fd430c8", false},
			{"padded", "  6ba7b810-9dad-11d1-80b4-00c04fd430c8 ", false},
			{"empty", "", true},
			{"garbage", "cell-1", true},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := ParseCellID(tt.input)
				if tt.wantErr {
					assert.ErrorIs(t, err, ErrInvalidCellID)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})

	t.Run("ShortString", func(t *testing.T) {
		id := MustParseCellID("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
		assert.Equal(t, "6ba7b810", id.ShortString())
		assert.Equal(t, "abc", CellID("abc").ShortString())
	})

	t.Run("MustParsePanics", func(t *testing.T) {
		require.Panics(t, func() { MustParseCellID("nope") })
	})
}
