package server_test

import (
	"testing"

	"file-storage/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_IsValidStatsProvider(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		want     bool
	}{
		{"Null", server.StatsProviderNull, true},
		{"Empty", "", true},
		{"Invalid", "redis", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{StatsProvider: tt.provider}
			assert.Equal(t, tt.want, c.IsValidStatsProvider())
		})
	}
}
