package safeconv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sumatoshi-tech/coalesce/pkg/safeconv"
)

func TestMustUintToInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   uint
		want int
	}{
		{name: "zero", in: 0, want: 0},
		{name: "small", in: 42, want: 42},
		{name: "max_int", in: uint(safeconv.MaxInt), want: safeconv.MaxInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, safeconv.MustUintToInt(tt.in))
		})
	}
}

func TestMustUintToInt_OverflowPanics(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "safeconv: uint overflows int", func() {
		safeconv.MustUintToInt(uint(safeconv.MaxInt) + 1)
	})
}
