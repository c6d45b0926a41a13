package main

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		args        []string
		wantMigrate string
		wantErr     bool
	}{
		{"no flags", nil, "", false},
		{"migrate up", []string{"-migrate", "up"}, "up", false},
		{"migrate status", []string{"-migrate=status"}, "status", false},
		{"unknown migration", []string{"-migrate", "sideways"}, "", true},
		{"unknown flag", []string{"-port", "80"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			opts, err := parseFlags(tt.args, io.Discard)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMigrate, opts.migrate)
		})
	}
}
