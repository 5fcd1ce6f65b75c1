package neoforge

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuiltinStagePairs(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		renderType    *RenderType
		before, after Stage
	}{
		{RenderTypeSolid, StageBeforeSolidBlocks, StageAfterSolidBlocks},
		{RenderTypeCutoutMipped, StageBeforeCutoutMippedBlocks, StageAfterCutoutMippedBlocks},
		{RenderTypeCutout, StageBeforeCutoutBlocks, StageAfterCutoutBlocks},
		{RenderTypeTranslucent, StageBeforeTranslucentBlocks, StageAfterTranslucentBlocks},
		{RenderTypeTripwire, StageBeforeTripwireBlocks, StageAfterTripwireBlocks},
	} {
		t.Run(tc.renderType.Name(), func(t *testing.T) {
			before, ok := StageBeforeRenderType(tc.renderType)
			require.True(t, ok)
			require.Equal(t, tc.before, before)

			after, ok := StageAfterRenderType(tc.renderType)
			require.True(t, ok)
			require.Equal(t, tc.after, after)
		})
	}
}

func TestBuiltinStageNames(t *testing.T) {
	t.Parallel()

	require.Equal(t, "before_sky", StageBeforeSky.Name())
	require.Equal(t, "after_sky", StageAfterSky.Name())
	require.Equal(t, "before_solid_blocks", StageBeforeSolidBlocks.Name())
	require.Equal(t, "after_solid_blocks", StageAfterSolidBlocks.Name())
	require.Equal(t, "before_cutout_mipped_blocks", StageBeforeCutoutMippedBlocks.Name())
	require.Equal(t, "before_block_entities", StageBeforeBlockEntities.Name())
	require.Equal(t, "after_particles", StageAfterParticles.Name())
	require.Equal(t, "before_weather", StageBeforeWeather.Name())
	require.Equal(t, "before_level", StageBeforeLevel.Name())
	require.Equal(t, "after_level", StageAfterLevel.Name())

	require.Equal(t, "after_translucent_blocks", StageAfterTranslucentBlocks.String())
}

func TestStageRenderType(t *testing.T) {
	t.Parallel()

	require.Same(t, RenderTypeSolid, StageBeforeSolidBlocks.RenderType())
	require.Same(t, RenderTypeTripwire, StageAfterTripwireBlocks.RenderType())
	require.Nil(t, StageBeforeSky.RenderType())
	require.Nil(t, StageAfterLevel.RenderType())
}

func TestUnboundRenderTypeLookups(t *testing.T) {
	t.Parallel()

	rt := NewRenderType("unbound")

	_, ok := StageBeforeRenderType(rt)
	require.False(t, ok)
	_, ok = StageAfterRenderType(rt)
	require.False(t, ok)
	_, ok = StageFromRenderType(rt)
	require.False(t, ok)
}

func TestRegisterStageWithoutRenderType(t *testing.T) {
	count := RegisteredStageCount()

	s, err := RegisterStage("testmod:manual", nil)
	require.NoError(t, err)
	require.Equal(t, "testmod:manual", s.Name())
	require.Nil(t, s.RenderType())
	require.Equal(t, count+1, RegisteredStageCount())
}

func TestRegisterStageCustomRenderType(t *testing.T) {
	rt := NewRenderType("testmod:glowing")

	s, err := RegisterStage("testmod:after_glowing", rt)
	require.NoError(t, err)
	require.Same(t, rt, s.RenderType())

	// The registration is visible to the pair lookup immediately. A custom
	// stage fires after the matching draw, so only the after slot is bound.
	after, ok := StageAfterRenderType(rt)
	require.True(t, ok)
	require.Equal(t, s, after)

	_, ok = StageBeforeRenderType(rt)
	require.False(t, ok)

	// The deprecated alias keeps its historical after directionality.
	from, ok := StageFromRenderType(rt)
	require.True(t, ok)
	require.Equal(t, s, from)

	// The render type is now bound; a second registration is rejected.
	_, err = RegisterStage("testmod:another", rt)
	require.Error(t, err)
}

func TestRegisterStageBoundRenderType(t *testing.T) {
	_, err := RegisterStage("testmod:solid_again", RenderTypeSolid)
	require.Error(t, err)
	require.ErrorContains(t, err, "already bound")

	// The built-in pair is untouched.
	before, ok := StageBeforeRenderType(RenderTypeSolid)
	require.True(t, ok)
	require.Equal(t, StageBeforeSolidBlocks, before)
}

func TestStageIdentity(t *testing.T) {
	a, err := RegisterStage("testmod:twin", nil)
	require.NoError(t, err)
	b, err := RegisterStage("testmod:twin", nil)
	require.NoError(t, err)

	// Identity is the handle, not the name.
	require.NotEqual(t, a, b)
	require.Equal(t, a.Name(), b.Name())
}

func TestRegisterStageViaEvent(t *testing.T) {
	e := &EventRegisterStage{}

	s, err := e.Register("testmod:event_window", nil)
	require.NoError(t, err)
	require.Equal(t, "testmod:event_window", s.Name())

	_, err = e.Register("testmod:cutout_again", RenderTypeCutout)
	require.Error(t, err)
}

func TestRenderTypeIdentity(t *testing.T) {
	t.Parallel()

	a := NewRenderType("dup")
	b := NewRenderType("dup")
	require.NotSame(t, a, b)
	require.Equal(t, "dup", a.Name())
	require.Equal(t, "dup", b.String())
}

// The sealing tests run against a private registry so they cannot close the
// registration window for the rest of the suite.
func TestSealClosesRegistration(t *testing.T) {
	t.Parallel()

	r := newStageRegistry()

	_, err := r.register("testmod:early", nil)
	require.NoError(t, err)

	r.seal()
	r.seal() // idempotent

	require.Panics(t, func() {
		r.register("testmod:late", nil)
	})
}

func TestSealKeepsLookups(t *testing.T) {
	t.Parallel()

	r := newStageRegistry()
	before, after := r.registerPair("solid_blocks", RenderTypeSolid)
	r.seal()

	got, ok := r.before(RenderTypeSolid)
	require.True(t, ok)
	require.Equal(t, before, got)

	got, ok = r.after(RenderTypeSolid)
	require.True(t, ok)
	require.Equal(t, after, got)
}
