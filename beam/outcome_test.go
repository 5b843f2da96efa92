package beam

import (
	"errors"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestClassifyAcquire(t *testing.T) {
	cases := []struct {
		err  error
		want error
	}{
		{nil, nil},
		{ErrAcquireTimeout, ErrAcquireTimeout},
		{ErrSurfaceLost, ErrSurfaceLost},
		{errors.New("wgpu: surface texture: Timeout"), ErrAcquireTimeout},
		{errors.New("surface is Outdated"), ErrSurfaceOutdated},
		{errors.New("Surface Lost"), ErrSurfaceLost},
		{errors.New("OutOfMemory while acquiring"), ErrOutOfMemory},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, classifyAcquire(c.err))
	}

	// unknown errors pass through unchanged
	unknown := errors.New("something else entirely")
	assert.Equal(t, unknown, classifyAcquire(unknown))
}

func TestPreferredFormat(t *testing.T) {
	assert.Equal(t, wgpu.TextureFormatBGRA8UnormSrgb, preferredFormat([]wgpu.TextureFormat{
		wgpu.TextureFormatBGRA8Unorm,
		wgpu.TextureFormatBGRA8UnormSrgb,
		wgpu.TextureFormatRGBA8UnormSrgb,
	}))

	// no gamma correct format offered, take the driver's first choice
	assert.Equal(t, wgpu.TextureFormatBGRA8Unorm, preferredFormat([]wgpu.TextureFormat{
		wgpu.TextureFormatBGRA8Unorm,
		wgpu.TextureFormatRGBA8Unorm,
	}))
}
