//go:build js

package beam

import "github.com/cogentcore/webgpu/wgpu"

// browsers only get the restricted GL compatible backend
const instanceBackends = wgpu.InstanceBackendGL

// deviceDescriptor cuts the limits down to what WebGL2 class hardware
// guarantees.
func deviceDescriptor() *wgpu.DeviceDescriptor {
	return &wgpu.DeviceDescriptor{
		RequiredLimits: &wgpu.RequiredLimits{
			Limits: wgpu.Limits{
				MaxTextureDimension1D:       2048,
				MaxTextureDimension2D:       2048,
				MaxTextureDimension3D:       256,
				MaxTextureArrayLayers:       256,
				MaxBindGroups:               4,
				MaxUniformBufferBindingSize: 16384,
				MaxVertexBuffers:            8,
				MaxVertexAttributes:         16,
			},
		},
	}
}
