package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageParam(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 1},
		{"abc", 1},
		{"0", 1},
		{"-3", 1},
		{"1", 1},
		{"7", 7},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PageParam(tt.raw), "raw=%q", tt.raw)
	}
}

func TestPageSizeParam(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 10},
		{"xyz", 10},
		{"0", 1},
		{"-1", 1},
		{"25", 25},
		{"50", 50},
		{"1000", 50},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PageSizeParam(tt.raw), "raw=%q", tt.raw)
	}
}

func TestTakeParam(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 50},
		{"ten", 50},
		{"0", 1},
		{"20", 20},
		{"10000", 500},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TakeParam(tt.raw), "raw=%q", tt.raw)
	}
}
