// Copyright (c) 2015, Arbo von Monkiewitsch All rights reserved.
// Use of this source code is governed by a BSD-style
// license.

package levenshtein_test

import (
	"strings"
	"testing"

	"github.com/Sumatoshi-tech/coalesce/pkg/levenshtein"
)

var distanceTests = []struct {
	first  string
	second string
	wanted int
}{
	{"react", "react", 0},
	{"reakt", "react", 1},
	{"raect", "react", 2},
	{"django", "djang", 1},
	{"socket", "rocket", 1},
	{"leftpad", "react", 6},
	{"a", "", 1},
	{"", "a", 1},
	{"kitten", "sitting", 3},
	{"aa", "aü", 1},
	{"Fön", "Föm", 1},
}

func TestDistance(t *testing.T) {
	t.Parallel()

	lev := &levenshtein.Context{}

	for _, tt := range distanceTests {
		if got := lev.Distance(tt.first, tt.second); got != tt.wanted {
			t.Errorf("Distance(%q, %q) = %d, want %d", tt.first, tt.second, got, tt.wanted)
		}
	}
}

func TestDistanceReusesBuffer(t *testing.T) {
	t.Parallel()

	lev := &levenshtein.Context{}

	// A long comparison first grows the internal buffer; short ones after
	// it must still be correct.
	if got := lev.Distance(strings.Repeat("a", 100), strings.Repeat("b", 100)); got != 100 {
		t.Errorf("distance = %d, want 100", got)
	}

	if got := lev.Distance("vue", "vuex"); got != 1 {
		t.Errorf("distance = %d, want 1", got)
	}
}

func BenchmarkDistance(b *testing.B) {
	pairs := []struct {
		name   string
		first  string
		second string
	}{
		{"typo", "reakt", "react"},
		{"unrelated", "tensorflow", "express"},
		{"medium", strings.Repeat("a", 50), strings.Repeat("a", 49) + "b"},
	}

	for _, pair := range pairs {
		b.Run(pair.name, func(b *testing.B) {
			lev := &levenshtein.Context{}

			b.ReportAllocs()

			for b.Loop() {
				lev.Distance(pair.first, pair.second)
			}
		})
	}
}
