package textutil

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBinary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{name: "nil", data: nil, want: false},
		{name: "empty", data: []byte{}, want: false},
		{name: "plain_source", data: []byte("def add(a, b):\n    return a + b\n"), want: false},
		{name: "nul_in_middle", data: []byte("hello\x00world"), want: true},
		{name: "nul_at_start", data: []byte("\x00start"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, IsBinary(tt.data))
		})
	}
}

func TestIsBinary_SniffWindow(t *testing.T) {
	t.Parallel()

	// A NUL on the last byte of the window is seen; one past it is not.
	inside := bytes.Repeat([]byte{'a'}, sniffLen)
	inside[sniffLen-1] = 0
	assert.True(t, IsBinary(inside))

	beyond := bytes.Repeat([]byte{'a'}, sniffLen+100)
	beyond[sniffLen+50] = 0
	assert.False(t, IsBinary(beyond))
}

func TestCountLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
		want int
	}{
		{name: "empty", data: "", want: 0},
		{name: "fragment_without_newline", data: "hello", want: 1},
		{name: "single_line", data: "hello\n", want: 1},
		{name: "multiple_lines", data: "a\nb\nc\n", want: 3},
		{name: "no_trailing_newline", data: "a\nb\nc", want: 3},
		{name: "blank_lines", data: "\n\n\n", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, CountLines([]byte(tt.data)))
		})
	}
}

func TestCountLines_LargeFile(t *testing.T) {
	t.Parallel()

	lines := strings.Repeat("line\n", 10000)

	assert.Equal(t, 10000, CountLines([]byte(lines)))
}
