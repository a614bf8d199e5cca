package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePriority(t *testing.T) {
	cases := []struct {
		raw  string
		want Priority
		ok   bool
	}{
		{"", PriorityMedium, true},
		{"low", PriorityLow, true},
		{"medium", PriorityMedium, true},
		{"high", PriorityHigh, true},
		{"  High  ", PriorityHigh, true},
		{"LOW", PriorityLow, true},
		{"urgent", "", false},
		{"0", "", false},
	}

	for _, tc := range cases {
		got, ok := ParsePriority(tc.raw)
		assert.Equal(t, tc.ok, ok, "input %q", tc.raw)
		if tc.ok {
			assert.Equal(t, tc.want, got, "input %q", tc.raw)
		}
	}
}
