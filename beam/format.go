package beam

import "github.com/cogentcore/webgpu/wgpu"

// preferredFormat picks the first gamma correct format, falling back to
// the first format the driver reports.
func preferredFormat(formats []wgpu.TextureFormat) wgpu.TextureFormat {
	for _, format := range formats {
		if isSRGB(format) {
			return format
		}
	}

	return formats[0]
}

func isSRGB(format wgpu.TextureFormat) bool {
	switch format {
	case wgpu.TextureFormatRGBA8UnormSrgb,
		wgpu.TextureFormatBGRA8UnormSrgb:
		return true
	}

	return false
}
