package neoforge

// RenderType identifies a category of draw call issued by the host renderer,
// such as a chunk layer. Render types compare by pointer identity: two
// values are the same render type only if they are the same instance.
//
// The built-in chunk-layer render types below anchor the built-in stage
// pairs. Hosts and mods mint further render types with NewRenderType.
type RenderType struct {
	name string
}

// NewRenderType creates a new render type identity.
// Every call returns a distinct identity, even for an identical name.
func NewRenderType(name string) *RenderType {
	return &RenderType{name: name}
}

// Name returns the descriptive name of the render type.
func (r *RenderType) Name() string {
	return r.name
}

// String returns the name of the render type.
func (r *RenderType) String() string {
	return r.name
}

// Built-in chunk-layer render types. The host issues one draw call per
// layer, in this order, for every visible chunk section.
var (
	// RenderTypeSolid is the fully opaque block layer.
	RenderTypeSolid = NewRenderType("solid")

	// RenderTypeCutoutMipped is the alpha-tested block layer with mipmaps.
	RenderTypeCutoutMipped = NewRenderType("cutout_mipped")

	// RenderTypeCutout is the alpha-tested block layer without mipmaps.
	RenderTypeCutout = NewRenderType("cutout")

	// RenderTypeTranslucent is the alpha-blended block layer.
	RenderTypeTranslucent = NewRenderType("translucent")

	// RenderTypeTripwire is the tripwire block layer, drawn after
	// translucent geometry.
	RenderTypeTripwire = NewRenderType("tripwire")
)
