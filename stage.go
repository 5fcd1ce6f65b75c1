package neoforge

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
)

// Stage is an opaque handle to a named checkpoint during level rendering.
// Valid handles range from 0 to 254 and index a process-wide append-only
// stage table. Handle equality is instance equality: stages created by
// separate RegisterStage calls are never equal, even under the same name.
type Stage uint8

// MaxStages is the maximum number of stages supported.
const MaxStages = 255

// stagePair brackets a render type with its before and after stages.
// Custom registrations fill only the after slot: a custom render-type-bound
// stage fires after the matching draw call, so hasBefore stays false.
type stagePair struct {
	before    Stage
	after     Stage
	hasBefore bool
}

// stageRegistry manages stage registration with lock-free reads.
// Stage handles are assigned sequentially and stored in write-once metadata
// arrays. sync.Map provides lock-free reads for the hot path (the per-draw
// pair lookups in the render loop) while still allowing safe registration
// during startup.
type stageRegistry struct {
	// names and renderTypes store stage metadata indexed by Stage.
	// These are written once during registration and read-only afterward.
	names       [MaxStages]string
	renderTypes [MaxStages]*RenderType

	// nextID is the next available stage handle.
	nextID atomic.Uint32

	// pairs maps *RenderType to its stagePair. Lookups happen once per draw
	// call, registrations only during startup.
	pairs sync.Map // map[*RenderType]stagePair

	// sealed flips once when the host starts the render loop. Registration
	// afterwards is a programmer error.
	sealed atomic.Bool

	// arrMu protects writes to names and renderTypes.
	// Only needed during registration, not for lookups.
	arrMu sync.RWMutex
}

// globalStages is the singleton stage registry.
var globalStages = newStageRegistry()

// newStageRegistry creates an empty stage registry.
func newStageRegistry() *stageRegistry {
	return &stageRegistry{}
}

// alloc appends a stage to the table and returns its handle.
func (r *stageRegistry) alloc(name string, renderType *RenderType) Stage {
	newID := r.nextID.Add(1) - 1
	if newID >= MaxStages {
		panic(fmt.Sprintf("neoforge: stage limit exceeded (max %d stages)", MaxStages))
	}
	id := Stage(newID)

	r.arrMu.Lock()
	r.names[id] = name
	r.renderTypes[id] = renderType
	r.arrMu.Unlock()

	return id
}

// register creates a new stage, binding it as the after stage of renderType
// when one is given.
func (r *stageRegistry) register(name string, renderType *RenderType) (Stage, error) {
	if r.sealed.Load() {
		panic("neoforge: stage registered after the registration window closed")
	}

	if renderType == nil {
		return r.alloc(name, nil), nil
	}

	// Allocate before attempting to bind; LoadOrStore ensures only one
	// registration wins the render type. A losing registration wastes its
	// table slot, but that is a configuration error anyway.
	s := r.alloc(name, renderType)
	if _, loaded := r.pairs.LoadOrStore(renderType, stagePair{after: s}); loaded {
		return 0, fmt.Errorf("neoforge: render type %s is already bound to a stage pair", renderType)
	}
	return s, nil
}

// registerPair appends a built-in before/after pair to the table and, when a
// render type is given, binds the pair to it.
func (r *stageRegistry) registerPair(base string, renderType *RenderType) (Stage, Stage) {
	before := r.alloc("before_"+base, renderType)
	after := r.alloc("after_"+base, renderType)
	if renderType != nil {
		r.pairs.Store(renderType, stagePair{before: before, after: after, hasBefore: true})
	}
	return before, after
}

// before returns the before stage bound to the render type.
func (r *stageRegistry) before(renderType *RenderType) (Stage, bool) {
	v, ok := r.pairs.Load(renderType)
	if !ok {
		return 0, false
	}
	pair := v.(stagePair)
	if !pair.hasBefore {
		return 0, false
	}
	return pair.before, true
}

// after returns the after stage bound to the render type.
func (r *stageRegistry) after(renderType *RenderType) (Stage, bool) {
	v, ok := r.pairs.Load(renderType)
	if !ok {
		return 0, false
	}
	return v.(stagePair).after, true
}

// seal closes the registration window. Idempotent.
func (r *stageRegistry) seal() {
	if r.sealed.CompareAndSwap(false, true) {
		slog.Debug("neoforge: stage registry sealed", "stages", int(r.nextID.Load()))
	}
}

// Built-in stages. Each pass of the level rendering pipeline is bracketed by
// a before/after pair; the chunk-layer pairs additionally anchor the pair
// lookup for their render type.
var (
	// StageBeforeSky and StageAfterSky bracket skybox rendering. They fire
	// regardless of whether the sky actually renders.
	StageBeforeSky, StageAfterSky = globalStages.registerPair("sky", nil)

	// Chunk-layer brackets. These fire around the matching chunk-layer draw
	// call and anchor the StageBeforeRenderType/StageAfterRenderType lookup.
	StageBeforeSolidBlocks, StageAfterSolidBlocks               = globalStages.registerPair("solid_blocks", RenderTypeSolid)
	StageBeforeCutoutMippedBlocks, StageAfterCutoutMippedBlocks = globalStages.registerPair("cutout_mipped_blocks", RenderTypeCutoutMipped)
	StageBeforeCutoutBlocks, StageAfterCutoutBlocks             = globalStages.registerPair("cutout_blocks", RenderTypeCutout)

	// StageBeforeEntities and StageAfterEntities bracket entity rendering.
	StageBeforeEntities, StageAfterEntities = globalStages.registerPair("entities", nil)

	// StageBeforeBlockEntities and StageAfterBlockEntities bracket block
	// entity rendering.
	StageBeforeBlockEntities, StageAfterBlockEntities = globalStages.registerPair("block_entities", nil)

	// Translucent and tripwire chunk-layer brackets. Transparency sorting
	// does not account for custom geometry drawn here; translucent custom
	// drawing usually works better after tripwire or after particles.
	StageBeforeTranslucentBlocks, StageAfterTranslucentBlocks = globalStages.registerPair("translucent_blocks", RenderTypeTranslucent)
	StageBeforeTripwireBlocks, StageAfterTripwireBlocks       = globalStages.registerPair("tripwire_blocks", RenderTypeTripwire)

	// StageBeforeParticles and StageAfterParticles bracket particle
	// rendering. Particles render after entities.
	StageBeforeParticles, StageAfterParticles = globalStages.registerPair("particles", nil)

	// StageBeforeWeather and StageAfterWeather bracket weather rendering.
	StageBeforeWeather, StageAfterWeather = globalStages.registerPair("weather", nil)

	// StageBeforeLevel and StageAfterLevel bracket the entire level render
	// pass, before any geometry is drawn and after everything has been.
	StageBeforeLevel, StageAfterLevel = globalStages.registerPair("level", nil)
)

// RegisterStage creates and returns a new stage. Mods call this during the
// startup registration window, usually through EventRegisterStage.
//
// If renderType is non-nil, the stage is fired by the host automatically
// after the draw call for that render type; registration fails if the
// render type is already bound to a stage pair. If renderType is nil, the
// stage has to be fired manually by whoever registered it.
//
// Registering after SealStages is a programmer error and panics.
func RegisterStage(name string, renderType *RenderType) (Stage, error) {
	return globalStages.register(name, renderType)
}

// StageBeforeRenderType returns the stage fired before the draw call of the
// given render type, or false if none is bound to it.
func StageBeforeRenderType(renderType *RenderType) (Stage, bool) {
	return globalStages.before(renderType)
}

// StageAfterRenderType returns the stage fired after the draw call of the
// given render type, or false if none is bound to it.
func StageAfterRenderType(renderType *RenderType) (Stage, bool) {
	return globalStages.after(renderType)
}

// StageFromRenderType returns the stage bound to the render type.
//
// Deprecated: the bound stage is ambiguous now that render types anchor a
// before/after pair. This returns the after stage, as it historically did;
// use StageAfterRenderType instead.
func StageFromRenderType(renderType *RenderType) (Stage, bool) {
	return globalStages.after(renderType)
}

// SealStages closes the stage registration window. The host calls this once
// when the render loop starts; pair lookups afterwards are lock-free and
// safe from any goroutine. Idempotent.
func SealStages() {
	globalStages.seal()
}

// RegisteredStageCount returns the number of registered stages, built-ins
// included.
func RegisteredStageCount() int {
	return int(globalStages.nextID.Load())
}

// Name returns the name of the stage. Names are descriptive and should be
// unique in practice, but stage identity is the handle, not the name.
func (s Stage) Name() string {
	globalStages.arrMu.RLock()
	defer globalStages.arrMu.RUnlock()
	return globalStages.names[s]
}

// RenderType returns the render type the stage is bound to, or nil for
// stages not tied to a specific draw call.
func (s Stage) RenderType() *RenderType {
	globalStages.arrMu.RLock()
	defer globalStages.arrMu.RUnlock()
	return globalStages.renderTypes[s]
}

// String returns the name of the stage.
func (s Stage) String() string {
	return s.Name()
}
