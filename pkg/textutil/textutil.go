// Package textutil provides byte-level checks for source text entering the
// front ends.
package textutil

import "bytes"

// sniffLen bounds the scan for NUL bytes. The 8000-byte window matches the
// heuristic version control and most editors use to tell source from
// artifacts.
const sniffLen = 8000

// IsBinary reports whether data looks like a binary artifact rather than
// source text: a NUL byte within the first sniffLen bytes.
func IsBinary(data []byte) bool {
	if len(data) > sniffLen {
		data = data[:sniffLen]
	}

	return bytes.IndexByte(data, 0) >= 0
}

// CountLines returns the number of lines in data. A trailing fragment
// without a newline counts as a line; empty data has none.
func CountLines(data []byte) int {
	if len(data) == 0 {
		return 0
	}

	lines := bytes.Count(data, []byte{'\n'})
	if data[len(data)-1] != '\n' {
		lines++
	}

	return lines
}
