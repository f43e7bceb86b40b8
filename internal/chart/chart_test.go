package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	summary := map[string]int64{
		"alice": 15000,
		"bob":   4000,
	}

	img, err := Render(summary, 100)
	assert.NoError(t, err)
	assert.NotEmpty(t, img)
	// PNG magic bytes.
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, img[:4])
}

func TestRenderEmptySummary(t *testing.T) {
	img, err := Render(map[string]int64{}, 100)
	assert.Error(t, err)
	assert.Nil(t, img)
}
