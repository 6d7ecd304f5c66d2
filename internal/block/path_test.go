package block

import (
	"testing"
)

func TestParsePath_RoundTrip(t *testing.T) {
	tests := []string{
		"title",
		"content.title",
		"content.title.text",
		"images[]",
		"content.buttons[].url",
		"testimonials[].avatar",
	}

	for _, tt := range tests {
		t.Run(tt, func(t *testing.T) {
			if got := ParsePath(tt).String(); got != tt {
				t.Errorf("ParsePath(%q).String() = %q", tt, got)
			}
		})
	}
}

func TestParsePath_Segments(t *testing.T) {
	path := ParsePath("content.buttons[].url")

	if len(path.Segments) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(path.Segments))
	}

	if path.Segments[1].Name != "buttons" || !path.Segments[1].IsSlice {
		t.Errorf("second segment = %+v, want buttons[]", path.Segments[1])
	}

	if path.Segments[2].IsSlice {
		t.Error("url segment should not be a slice segment")
	}

	if !path.HasSlice() {
		t.Error("HasSlice() should be true")
	}

	if path.Root() != "content" {
		t.Errorf("Root() = %q, want content", path.Root())
	}
}

func TestGetSet(t *testing.T) {
	props := map[string]any{}

	Set(props, ParsePath("content.title.text"), "Hello")

	got, ok := Get(props, ParsePath("content.title.text"))
	if !ok || got != "Hello" {
		t.Fatalf("Get after Set = %v, %v", got, ok)
	}

	if _, ok := Get(props, ParsePath("content.missing")); ok {
		t.Error("Get on missing path should report absence")
	}

	if GetString(props, ParsePath("content.title.text")) != "Hello" {
		t.Error("GetString should return the stored string")
	}

	Delete(props, ParsePath("content.title.text"))

	if _, ok := Get(props, ParsePath("content.title.text")); ok {
		t.Error("Get after Delete should report absence")
	}
}

func TestGet_NonMapIntermediate(t *testing.T) {
	props := map[string]any{"title": "flat string"}

	if _, ok := Get(props, ParsePath("title.text")); ok {
		t.Error("descending through a scalar should report absence")
	}
}

func TestVisit_SliceSegments(t *testing.T) {
	props := map[string]any{
		"testimonials": []any{
			map[string]any{"author": "A", "avatar": map[string]any{"url": "a.png"}},
			map[string]any{"author": "B", "avatar": map[string]any{"url": "b.png"}},
		},
	}

	visited := 0

	Visit(props, ParsePath("testimonials[].avatar"), func(value any) any {
		visited++
		return map[string]any{"url": "reset.png"}
	})

	if visited != 2 {
		t.Fatalf("visited %d avatars, want 2", visited)
	}

	for i, item := range props["testimonials"].([]any) {
		avatar := item.(map[string]any)["avatar"].(map[string]any)
		if avatar["url"] != "reset.png" {
			t.Errorf("testimonial %d avatar not replaced: %v", i, avatar)
		}
	}
}

func TestVisit_TerminalSliceSegment(t *testing.T) {
	props := map[string]any{
		"images": []any{
			map[string]any{"url": "1.png"},
			map[string]any{"url": "2.png"},
		},
	}

	Visit(props, ParsePath("images[]"), func(value any) any {
		return map[string]any{"url": "placeholder.png"}
	})

	for i, item := range props["images"].([]any) {
		if item.(map[string]any)["url"] != "placeholder.png" {
			t.Errorf("image %d not replaced", i)
		}
	}
}

func TestVisit_MissingPathIsNoop(t *testing.T) {
	props := map[string]any{"title": map[string]any{"text": "x"}}

	Visit(props, ParsePath("images[]"), func(value any) any {
		t.Error("visitor should not run for a missing path")
		return value
	})
}
