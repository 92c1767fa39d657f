package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		pattern string
		verbose bool
		wantErr bool
	}{
		{"pattern only", []string{"needle"}, "needle", false, false},
		{"verbose first", []string{"--verbose", "needle"}, "needle", true, false},
		{"no args", nil, "", false, true},
		{"too many args", []string{"--verbose", "a", "b"}, "", false, true},
		{"flag in wrong position", []string{"needle", "--verbose"}, "", false, true},
		{"unknown flag", []string{"--fast", "needle"}, "", false, true},
		{"dash pattern", []string{"-needle"}, "-needle", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pattern, verbose, err := parseArgs(tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.pattern, pattern)
			assert.Equal(t, tt.verbose, verbose)
		})
	}
}
