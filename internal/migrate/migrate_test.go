package migrate

import (
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heroblock/internal/block"
	"heroblock/internal/registry"
)

// authoredCentered builds the centered instance used throughout the
// migration scenarios: a welcome title, two buttons, centered text.
func authoredCentered(t *testing.T) block.Instance {
	t.Helper()

	inst, err := registry.DefaultInstance(block.VariantCentered)
	require.NoError(t, err)

	block.Set(inst.Props, block.ParsePath("title.text"), "Welcome")
	block.Set(inst.Props, block.ParsePath("primaryButton.text"), "Get Started")
	block.Set(inst.Props, block.ParsePath("secondaryButton.text"), "Learn More")
	block.Set(inst.Props, block.ParsePath("textAlign"), "center")

	return inst
}

func TestMigrate_CenteredToSplitScreenBalanced(t *testing.T) {
	inst := authoredCentered(t)

	result := Migrate(inst, block.VariantSplitScreen, Balanced.Name)
	require.True(t, result.Success)
	require.NotNil(t, result.MigratedProps)

	out := result.MigratedProps
	assert.Equal(t, inst.ID, out.ID)
	assert.Equal(t, block.VariantSplitScreen, out.Variant)

	assert.Equal(t, "Welcome", block.GetString(out.Props, block.ParsePath("content.title.text")))

	buttons, ok := block.Get(out.Props, block.ParsePath("content.buttons"))
	require.True(t, ok)
	list := buttons.([]any)
	require.Len(t, list, 2)
	assert.Equal(t, "Get Started", list[0].(map[string]any)["text"])
	assert.Equal(t, "Learn More", list[1].(map[string]any)["text"])

	assert.Contains(t, result.DroppedProperties, "textAlign")
	assert.Contains(t, result.MigratedProperties, "title")
	assert.Contains(t, result.MigratedProperties, "background")
	assert.Contains(t, result.TransformedProperties, "primaryButton")
	assert.Contains(t, result.TransformedProperties, "secondaryButton")

	// The target's required media cannot be sourced from a centered
	// block; it must come from the registered default.
	assert.Contains(t, result.AddedDefaults, "media")

	assert.Empty(t, registry.Conforms(*out))
}

func TestMigrate_CenteredToMinimalConservative(t *testing.T) {
	inst := authoredCentered(t)

	result := Migrate(inst, block.VariantMinimal, Conservative.Name)
	require.True(t, result.Success)

	out := result.MigratedProps
	assert.Equal(t, "Welcome", block.GetString(out.Props, block.ParsePath("title.text")))
	assert.Equal(t, "Get Started", block.GetString(out.Props, block.ParsePath("button.text")))

	_, hasDescription := block.Get(out.Props, block.ParsePath("description"))
	assert.False(t, hasDescription, "minimal has no description field at all")

	assert.Contains(t, result.DroppedProperties, "secondaryButton")
	assert.Empty(t, registry.Conforms(*out))
}

func TestMigrate_UnknownTargetIsFatal(t *testing.T) {
	inst := authoredCentered(t)

	result := Migrate(inst, block.VariantID("holographic"), Balanced.Name)
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Errors)
	assert.Nil(t, result.MigratedProps)
	assert.Empty(t, result.MigratedProperties)
}

func TestMigrate_UnknownSourceIsFatal(t *testing.T) {
	inst := authoredCentered(t)
	inst.Variant = block.VariantID("holographic")

	result := Migrate(inst, block.VariantMinimal, Balanced.Name)
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Errors)
}

func TestMigrate_UnknownStrategyFallsBackToBalanced(t *testing.T) {
	inst := authoredCentered(t)

	result := Migrate(inst, block.VariantSplitScreen, "yolo")
	require.True(t, result.Success)

	// Balanced semantics: the buttons were merged structurally.
	assert.Contains(t, result.TransformedProperties, "primaryButton")

	found := false

	for _, w := range result.Warnings {
		if strings.Contains(w, "yolo") && strings.Contains(w, "balanced") {
			found = true
		}
	}

	assert.True(t, found, "expected a fallback warning naming both strategies, got %v", result.Warnings)
}

func TestMigrate_DoesNotMutateInput(t *testing.T) {
	inst := authoredCentered(t)
	snapshot := inst.Clone()

	_ = Migrate(inst, block.VariantImageGallery, Flexible.Name)

	assert.Equal(t, snapshot, inst)
}

func TestMigrate_SameVariantIsIdentityModuloNothing(t *testing.T) {
	for _, id := range block.AllVariants() {
		t.Run(id.String(), func(t *testing.T) {
			inst, err := registry.DefaultInstance(id)
			require.NoError(t, err)

			for _, strategy := range StrategyNames() {
				result := Migrate(inst, id, strategy)
				require.True(t, result.Success)

				assert.Equal(t, inst.ID, result.MigratedProps.ID)
				assert.Equal(t, inst.Props, result.MigratedProps.Props,
					"same-variant migration under %q must reproduce the props", strategy)
				assert.Empty(t, result.DroppedProperties)
			}
		})
	}
}

func TestMigrate_ConformanceMatrix(t *testing.T) {
	// Every (source, target, strategy) combination must yield an
	// instance satisfying the target's required-field set, and the
	// report must account for every present source field.
	for _, src := range block.AllVariants() {
		for _, tgt := range block.AllVariants() {
			for _, strategy := range StrategyNames() {
				inst, err := registry.DefaultInstance(src)
				require.NoError(t, err)

				result := Migrate(inst, tgt, strategy)
				require.True(t, result.Success, "%s->%s under %s", src, tgt, strategy)

				issues := registry.Conforms(*result.MigratedProps)
				assert.Empty(t, issues, "%s->%s under %s: %v\n%s",
					src, tgt, strategy, issues, spew.Sdump(result.MigratedProps.Props))

				srcSchema, err := registry.Get(src)
				require.NoError(t, err)

				accounted := map[string]bool{}
				for _, lists := range [][]string{
					result.MigratedProperties,
					result.TransformedProperties,
					result.DroppedProperties,
				} {
					for _, path := range lists {
						assert.False(t, accounted[path],
							"%s->%s under %s: %q reported twice", src, tgt, strategy, path)
						accounted[path] = true
					}
				}

				for _, field := range srcSchema.Fields {
					if _, present := block.Get(inst.Props, block.ParsePath(field.Path)); !present {
						continue
					}

					assert.True(t, accounted[field.Path],
						"%s->%s under %s: %q silently skipped", src, tgt, strategy, field.Path)
				}
			}
		}
	}
}

func TestMigrate_ButtonListSplitsFirstNonEmptyWins(t *testing.T) {
	inst, err := registry.DefaultInstance(block.VariantSplitScreen)
	require.NoError(t, err)

	block.Set(inst.Props, block.ParsePath("content.buttons"), []any{
		block.Button{Style: "primary"}.Map(), // empty: no text, no URL
		block.Button{Text: "Second", URL: "https://example.com/2"}.Map(),
		block.Button{Text: "Third", URL: "https://example.com/3"}.Map(),
	})

	result := Migrate(inst, block.VariantCentered, Balanced.Name)
	require.True(t, result.Success)

	out := result.MigratedProps
	assert.Equal(t, "Second", block.GetString(out.Props, block.ParsePath("primaryButton.text")))
	assert.Equal(t, "Third", block.GetString(out.Props, block.ParsePath("secondaryButton.text")))
	assert.Contains(t, result.TransformedProperties, "content.buttons")
}

func TestMigrate_ButtonListToSingleSlotWarnsOnTruncation(t *testing.T) {
	inst, err := registry.DefaultInstance(block.VariantSplitScreen)
	require.NoError(t, err)

	block.Set(inst.Props, block.ParsePath("content.buttons"), []any{
		block.Button{Text: "One", URL: "https://example.com/1"}.Map(),
		block.Button{Text: "Two", URL: "https://example.com/2"}.Map(),
	})

	result := Migrate(inst, block.VariantMinimal, Balanced.Name)
	require.True(t, result.Success)

	assert.Equal(t, "One", block.GetString(result.MigratedProps.Props, block.ParsePath("button.text")))
	assert.NotEmpty(t, result.Warnings)
}

func TestMigrate_SecondaryButtonClaimsEmptyPrimarySlot(t *testing.T) {
	inst, err := registry.DefaultInstance(block.VariantCentered)
	require.NoError(t, err)

	// No primary button authored at all; the secondary should win the
	// minimal variant's single slot under balanced.
	block.Delete(inst.Props, block.ParsePath("primaryButton"))
	block.Set(inst.Props, block.ParsePath("secondaryButton.text"), "Only Option")

	result := Migrate(inst, block.VariantMinimal, Balanced.Name)
	require.True(t, result.Success)

	assert.Equal(t, "Only Option", block.GetString(result.MigratedProps.Props, block.ParsePath("button.text")))
	assert.Contains(t, result.TransformedProperties, "secondaryButton")
}

func TestMigrate_ConservativeDropsStructural(t *testing.T) {
	inst := authoredCentered(t)

	result := Migrate(inst, block.VariantSplitScreen, Conservative.Name)
	require.True(t, result.Success)

	assert.Contains(t, result.DroppedProperties, "primaryButton")
	assert.Contains(t, result.DroppedProperties, "secondaryButton")

	_, hasButtons := block.Get(result.MigratedProps.Props, block.ParsePath("content.buttons"))
	assert.False(t, hasButtons)
}

func TestMigrate_FlexibleCoercions(t *testing.T) {
	gallery, err := registry.DefaultInstance(block.VariantImageGallery)
	require.NoError(t, err)

	block.Set(gallery.Props, block.ParsePath("images"), []any{
		block.Media{URL: "first.png", Kind: block.MediaImage}.Map(),
		block.Media{URL: "second.png", Kind: block.MediaImage}.Map(),
	})

	// Balanced drops the image list entirely.
	balanced := Migrate(gallery, block.VariantSplitScreen, Balanced.Name)
	require.True(t, balanced.Success)
	assert.Contains(t, balanced.DroppedProperties, "images")
	assert.Contains(t, balanced.AddedDefaults, "media")

	// Flexible keeps the first image as the split-screen media.
	flexible := Migrate(gallery, block.VariantSplitScreen, Flexible.Name)
	require.True(t, flexible.Success)
	assert.Contains(t, flexible.TransformedProperties, "images")
	assert.Equal(t, "first.png", block.GetString(flexible.MigratedProps.Props, block.ParsePath("media.url")))
	assert.NotEmpty(t, flexible.Warnings, "dropping the tail of the list should warn")
}

func TestMigrate_MediaBackgroundCoercion(t *testing.T) {
	video, err := registry.DefaultInstance(block.VariantVideoBackground)
	require.NoError(t, err)

	block.Set(video.Props, block.ParsePath("video.url"), "https://cdn.example.com/reel.mp4")

	// Flexible turns the background video into the target's background.
	result := Migrate(video, block.VariantCentered, Flexible.Name)
	require.True(t, result.Success)
	assert.Contains(t, result.TransformedProperties, "video")

	out := result.MigratedProps.Props
	assert.Equal(t, block.BackgroundVideo, block.GetString(out, block.ParsePath("background.kind")))
	assert.Equal(t, "https://cdn.example.com/reel.mp4",
		block.GetString(out, block.ParsePath("background.media.url")))
	assert.Empty(t, registry.Conforms(*result.MigratedProps))

	// The reverse direction has nothing to carry from a solid
	// background: the video slot falls back to its default.
	solid, err := registry.DefaultInstance(block.VariantCentered)
	require.NoError(t, err)

	back := Migrate(solid, block.VariantVideoBackground, Flexible.Name)
	require.True(t, back.Success)
	assert.Contains(t, back.DroppedProperties, "background")
	assert.Contains(t, back.AddedDefaults, "video")
}

func TestMigrate_DescriptionSubtitleCoercion(t *testing.T) {
	inst, err := registry.DefaultInstance(block.VariantVideoBackground)
	require.NoError(t, err)

	block.Set(inst.Props, block.ParsePath("description"), "Watch the film")

	// testimonial-carousel has a subtitle but no description slot.
	result := Migrate(inst, block.VariantTestimonialCarousel, Flexible.Name)
	require.True(t, result.Success)

	assert.Equal(t, "Watch the film",
		block.GetString(result.MigratedProps.Props, block.ParsePath("subtitle.text")))
	assert.Contains(t, result.TransformedProperties, "description")
}

func TestMigrate_GridItemsReshape(t *testing.T) {
	services, err := registry.DefaultInstance(block.VariantServiceGrid)
	require.NoError(t, err)

	// Service items carry a link the feature grid does not declare.
	result := Migrate(services, block.VariantFeatureGrid, Balanced.Name)
	require.True(t, result.Success)
	assert.Contains(t, result.TransformedProperties, "services")

	features, ok := block.Get(result.MigratedProps.Props, block.ParsePath("features"))
	require.True(t, ok)

	for _, item := range features.([]any) {
		_, hasLink := item.(map[string]any)["link"]
		assert.False(t, hasLink, "links must be trimmed from reshaped items")
	}

	// The reverse direction is a clean subset and carries directly.
	back := Migrate(*result.MigratedProps, block.VariantServiceGrid, Balanced.Name)
	require.True(t, back.Success)
	assert.Contains(t, back.MigratedProperties, "features")
}

func TestMigrate_OptionalTargetFieldsStayAbsent(t *testing.T) {
	inst, err := registry.DefaultInstance(block.VariantMinimal)
	require.NoError(t, err)

	result := Migrate(inst, block.VariantProductShowcase, Conservative.Name)
	require.True(t, result.Success)

	// price is optional on product-showcase and cannot be sourced from
	// minimal; it must not be invented.
	_, hasPrice := block.Get(result.MigratedProps.Props, block.ParsePath("price"))
	assert.False(t, hasPrice)

	// media and the primary button are required and must be defaulted.
	assert.Contains(t, result.AddedDefaults, "media")
	assert.Empty(t, registry.Conforms(*result.MigratedProps))
}
