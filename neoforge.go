// Package neoforge provides the client rendering event layer for modded
// game clients.
//
// The package sits between the host renderer and external modules ("mods"):
// the host announces well-defined checkpoints of its fixed rendering
// pipeline, and mods inject custom drawing at those checkpoints without
// touching the pipeline itself.
//
// # Render target configuration
//
// During startup the host offers the main framebuffer configuration to mods
// before allocating it:
//
//	cfg := neoforge.NewRenderTargetConfig(width, height)
//	// ... mods run, some call cfg.EnableStencil() ...
//	allocateMainTarget(cfg.Width(), cfg.Height(), cfg.UseDepth(), cfg.UseStencil())
//
// The stencil flag is monotonic: once any mod enables it, it stays enabled.
//
// # Render stages
//
// Stages are named checkpoints during level rendering. A fixed built-in set
// brackets every pass of the pipeline; mods may register additional stages
// during the startup registration window:
//
//	var stageBeforeAuras neoforge.Stage
//
//	func onRegisterStage(e *neoforge.EventRegisterStage) {
//	    s, err := e.Register("mymod:before_auras", nil)
//	    if err != nil {
//	        panic(err)
//	    }
//	    stageBeforeAuras = s
//	}
//
//	func onRenderLevelStage(e *neoforge.EventRenderLevelStage) {
//	    if e.Stage != stageBeforeAuras {
//	        return
//	    }
//	    // draw using e.Pose, e.ModelView, e.Projection ...
//	}
//
// Stages registered against a render type are looked up by the host around
// the matching draw call through StageBeforeRenderType and
// StageAfterRenderType. The host calls SealStages once the render loop
// starts; registration is a startup-only operation.
//
// The event dispatch bus, the render loop, and the graphics backend are the
// host's responsibility. This package only defines the checkpoint registry
// and the event payloads exchanged across that boundary.
package neoforge

// Version is the render event layer version.
const Version = "21.4.0"
