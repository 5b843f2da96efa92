//go:build !js

package pane

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursorToSurface(t *testing.T) {
	// identity scale passes positions through
	x, y := cursorToSurface(100, 200, 1, 1)
	assert.Equal(t, uint32(100), x)
	assert.Equal(t, uint32(200), y)

	// on a 2x HiDPI display the right edge of a 512 wide content area
	// must land on the right edge of the 1024 wide framebuffer
	x, y = cursorToSurface(512, 512, 2, 2)
	assert.Equal(t, uint32(1024), x)
	assert.Equal(t, uint32(1024), y)

	// fractional scales round down to a pixel
	x, y = cursorToSurface(100, 100, 1.5, 1.5)
	assert.Equal(t, uint32(150), x)
	assert.Equal(t, uint32(150), y)

	// positions go negative while dragging outside the window
	x, y = cursorToSurface(-10, -10, 2, 2)
	assert.Equal(t, uint32(0), x)
	assert.Equal(t, uint32(0), y)
}
