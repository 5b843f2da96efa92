//go:build !js

package beam

import "github.com/cogentcore/webgpu/wgpu"

// native targets get the primary backends of the platform
const instanceBackends = wgpu.InstanceBackendPrimary

// deviceDescriptor requests the default limits on native targets.
func deviceDescriptor() *wgpu.DeviceDescriptor {
	return nil
}
