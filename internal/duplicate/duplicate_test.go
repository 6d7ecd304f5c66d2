package duplicate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heroblock/internal/block"
	"heroblock/internal/registry"
)

func authored(t *testing.T, id block.VariantID) block.Instance {
	t.Helper()

	inst, err := registry.DefaultInstance(id)
	require.NoError(t, err)

	return inst
}

func TestDuplicate_FreshIDTitlePrefixed(t *testing.T) {
	inst := authored(t, block.VariantCentered)
	block.Set(inst.Props, block.ParsePath("title.text"), "Launch Week")

	dup, err := Duplicate(inst, DefaultOptions())
	require.NoError(t, err)

	assert.NotEqual(t, inst.ID, dup.ID)
	assert.NotEmpty(t, dup.ID)
	assert.Equal(t, inst.Variant, dup.Variant)
	assert.Equal(t, "Copy of Launch Week", block.GetString(dup.Props, block.ParsePath("title.text")))
}

func TestDuplicate_DefaultOptionsPreserveEverythingElse(t *testing.T) {
	inst := authored(t, block.VariantSplitScreen)
	block.Set(inst.Props, block.ParsePath("media.url"), "https://cdn.example.com/hero.jpg")
	block.Set(inst.Props, block.ParsePath("content.buttons"), []any{
		block.Button{Text: "Go", URL: "https://example.com/go"}.Map(),
	})

	dup, err := Duplicate(inst, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/hero.jpg",
		block.GetString(dup.Props, block.ParsePath("media.url")))

	buttons, _ := block.Get(dup.Props, block.ParsePath("content.buttons"))
	assert.Equal(t, "https://example.com/go", buttons.([]any)[0].(map[string]any)["url"])
}

func TestDuplicate_IdentityModuloIDAndTitle(t *testing.T) {
	for _, id := range block.AllVariants() {
		t.Run(id.String(), func(t *testing.T) {
			inst := authored(t, id)

			dup, err := Duplicate(inst, Options{
				PreserveMedia:   true,
				PreserveButtons: true,
			})
			require.NoError(t, err)

			assert.NotEqual(t, inst.ID, dup.ID)
			assert.Equal(t, inst.Props, dup.Props, "no prefix and full preservation must reproduce the props")
			assert.Empty(t, registry.Conforms(dup))
		})
	}
}

func TestDuplicate_ResetButtonsKeepsText(t *testing.T) {
	inst := authored(t, block.VariantCentered)
	block.Set(inst.Props, block.ParsePath("primaryButton.url"), "https://example.com/signup")
	block.Set(inst.Props, block.ParsePath("secondaryButton.url"), "https://example.com/docs")

	opts := DefaultOptions()
	opts.PreserveButtons = false

	dup, err := Duplicate(inst, opts)
	require.NoError(t, err)

	assert.Equal(t, block.PlaceholderURL, block.GetString(dup.Props, block.ParsePath("primaryButton.url")))
	assert.Equal(t, block.PlaceholderURL, block.GetString(dup.Props, block.ParsePath("secondaryButton.url")))
	assert.Equal(t, "Get Started", block.GetString(dup.Props, block.ParsePath("primaryButton.text")))
	assert.Equal(t, "Learn More", block.GetString(dup.Props, block.ParsePath("secondaryButton.text")))
}

func TestDuplicate_ResetButtonsReachesLists(t *testing.T) {
	inst := authored(t, block.VariantSplitScreen)
	block.Set(inst.Props, block.ParsePath("content.buttons"), []any{
		block.Button{Text: "One", URL: "https://example.com/1"}.Map(),
		block.Button{Text: "Two", URL: "https://example.com/2"}.Map(),
	})

	opts := DefaultOptions()
	opts.PreserveButtons = false

	dup, err := Duplicate(inst, opts)
	require.NoError(t, err)

	buttons, ok := block.Get(dup.Props, block.ParsePath("content.buttons"))
	require.True(t, ok)

	for _, raw := range buttons.([]any) {
		button := raw.(map[string]any)
		assert.Equal(t, block.PlaceholderURL, button["url"])
		assert.NotEmpty(t, button["text"])
	}
}

func TestDuplicate_ResetMediaScalarAndBackground(t *testing.T) {
	inst := authored(t, block.VariantSplitScreen)
	block.Set(inst.Props, block.ParsePath("media.url"), "https://cdn.example.com/authored.jpg")
	block.Set(inst.Props, block.ParsePath("background"), block.Background{
		Kind:  block.BackgroundImage,
		Media: &block.Media{URL: "https://cdn.example.com/bg.jpg", Kind: block.MediaImage},
	}.Map())

	opts := DefaultOptions()
	opts.PreserveMedia = false

	dup, err := Duplicate(inst, opts)
	require.NoError(t, err)

	assert.NotEqual(t, "https://cdn.example.com/authored.jpg",
		block.GetString(dup.Props, block.ParsePath("media.url")))
	assert.NotEqual(t, "https://cdn.example.com/bg.jpg",
		block.GetString(dup.Props, block.ParsePath("background.media.url")))
}

func TestDuplicate_ResetMediaReachesGalleryImages(t *testing.T) {
	inst := authored(t, block.VariantImageGallery)
	block.Set(inst.Props, block.ParsePath("images"), []any{
		block.Media{URL: "https://cdn.example.com/a.jpg", Kind: block.MediaImage}.Map(),
		block.Media{URL: "https://cdn.example.com/b.jpg", Kind: block.MediaImage}.Map(),
	})

	opts := DefaultOptions()
	opts.PreserveMedia = false

	dup, err := Duplicate(inst, opts)
	require.NoError(t, err)

	images, ok := block.Get(dup.Props, block.ParsePath("images"))
	require.True(t, ok)
	require.Len(t, images.([]any), 2)

	for _, raw := range images.([]any) {
		url := raw.(map[string]any)["url"].(string)
		assert.False(t, strings.HasPrefix(url, "https://cdn.example.com/"), url)
	}
}

func TestDuplicate_ResetMediaReachesTestimonialAvatars(t *testing.T) {
	inst := authored(t, block.VariantTestimonialCarousel)
	block.Set(inst.Props, block.ParsePath("testimonials"), []any{
		map[string]any{
			"quote":  "Solid.",
			"author": "Sam",
			"role":   "CTO",
			"avatar": block.Media{URL: "https://cdn.example.com/sam.jpg", Kind: block.MediaImage}.Map(),
		},
	})

	opts := DefaultOptions()
	opts.PreserveMedia = false

	dup, err := Duplicate(inst, opts)
	require.NoError(t, err)

	items, ok := block.Get(dup.Props, block.ParsePath("testimonials"))
	require.True(t, ok)

	item := items.([]any)[0].(map[string]any)
	assert.Equal(t, "Solid.", item["quote"])
	assert.Equal(t, "Sam", item["author"])
	assert.NotEqual(t, "https://cdn.example.com/sam.jpg", item["avatar"].(map[string]any)["url"])
}

func TestDuplicate_CustomPrefixAndMissingTitle(t *testing.T) {
	inst := authored(t, block.VariantMinimal)
	block.Set(inst.Props, block.ParsePath("title.text"), "Hello")

	opts := DefaultOptions()
	opts.NamePrefix = "Draft: "

	dup, err := Duplicate(inst, opts)
	require.NoError(t, err)
	assert.Equal(t, "Draft: Hello", block.GetString(dup.Props, block.ParsePath("title.text")))

	// A removed title is a no-op, never an error.
	block.Delete(inst.Props, block.ParsePath("title"))

	dup, err = Duplicate(inst, opts)
	require.NoError(t, err)

	_, hasTitle := block.Get(dup.Props, block.ParsePath("title"))
	assert.False(t, hasTitle)
}

func TestDuplicate_DoesNotMutateInput(t *testing.T) {
	inst := authored(t, block.VariantImageGallery)
	block.Set(inst.Props, block.ParsePath("images"), []any{
		block.Media{URL: "https://cdn.example.com/a.jpg", Kind: block.MediaImage}.Map(),
	})

	snapshot := inst.Clone()

	opts := Options{NamePrefix: "Copy of "}

	_, err := Duplicate(inst, opts)
	require.NoError(t, err)
	assert.Equal(t, snapshot, inst)
}

func TestDuplicate_UnknownVariant(t *testing.T) {
	inst := authored(t, block.VariantCentered)
	inst.Variant = block.VariantID("holographic")

	_, err := Duplicate(inst, DefaultOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, registry.ErrUnknownVariant)
}
