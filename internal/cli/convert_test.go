package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultOutputPath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Replaces xlsx extension", "contacts.xlsx", "contacts.csv"},
		{"Keeps directory", "/data/export/alken.xlsx", "/data/export/alken.csv"},
		{"No extension", "contacts", "contacts.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DefaultOutputPath(tt.input))
		})
	}
}
