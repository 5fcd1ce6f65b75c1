package neoforge

// RenderTargetConfig carries the requested configuration of the main render
// target. The host creates one during startup with the measured framebuffer
// dimensions, offers it to mods, then reads the final flags back to allocate
// the actual framebuffer. The configuration is discarded afterwards.
//
// Width and height are passed through unvalidated; the host clamps and
// validates dimensions at allocation time.
type RenderTargetConfig struct {
	useDepth   bool
	useStencil bool

	width  int
	height int
}

// NewRenderTargetConfig creates a render target configuration for the given
// framebuffer dimensions. The depth buffer is always enabled; the stencil
// buffer starts disabled.
func NewRenderTargetConfig(width, height int) *RenderTargetConfig {
	return &RenderTargetConfig{
		useDepth: true,
		width:    width,
		height:   height,
	}
}

// UseDepth reports whether the depth buffer is enabled. Always true.
func (c *RenderTargetConfig) UseDepth() bool {
	return c.useDepth
}

// UseStencil reports whether a stencil buffer was requested.
func (c *RenderTargetConfig) UseStencil() bool {
	return c.useStencil
}

// Width returns the preferred width of the framebuffer, in pixels.
func (c *RenderTargetConfig) Width() int {
	return c.width
}

// Height returns the preferred height of the framebuffer, in pixels.
func (c *RenderTargetConfig) Height() int {
	return c.height
}

// EnableStencil requests a stencil buffer for the main render target and
// returns the receiver for chaining. The request is idempotent and cannot
// be withdrawn: once any mod enables the stencil buffer it stays enabled,
// regardless of what mods run afterwards.
func (c *RenderTargetConfig) EnableStencil() *RenderTargetConfig {
	c.useStencil = true
	return c
}
