package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRequest_Offset(t *testing.T) {
	tests := []struct {
		name   string
		from   int
		size   int
		offset int
	}{
		{"First page", 0, 10, 0},
		{"Exact page boundary", 20, 10, 20},
		{"From rounds down to its page", 25, 10, 20},
		{"From inside the first page", 3, 5, 0},
		{"Size one", 7, 1, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := PageRequest{From: tt.from, Size: tt.size}
			assert.Equal(t, tt.offset, page.Offset())
			assert.Equal(t, tt.size, page.Limit())
		})
	}
}

func TestNewPage_Defaults(t *testing.T) {
	page := NewPage(-5, 0)
	assert.Equal(t, 0, page.From)
	assert.Equal(t, DefaultPageSize, page.Size)
}
