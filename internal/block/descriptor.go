package block

// The descriptor records below are the shared value shapes that appear
// inside variant props. Props themselves are map[string]any graphs (so
// they stay path-navigable and JSON-round-trippable); each descriptor
// offers Map/FromMap bridges between the typed record and its prop form.

// TextBlock is a piece of authored text with its structural tag
// (heading level or paragraph).
type TextBlock struct {
	Text string `json:"text"`
	Tag  string `json:"tag"`
}

// Map returns the prop form of the text block.
func (t TextBlock) Map() map[string]any {
	return map[string]any{"text": t.Text, "tag": t.Tag}
}

// TextBlockFromMap reads a text block out of its prop form.
// Missing keys yield zero fields.
func TextBlockFromMap(m map[string]any) TextBlock {
	return TextBlock{
		Text: stringAt(m, "text"),
		Tag:  stringAt(m, "tag"),
	}
}

// Button describes a call-to-action link.
type Button struct {
	Text    string `json:"text"`
	URL     string `json:"url"`
	Style   string `json:"style"`
	Size    string `json:"size"`
	IconPos string `json:"iconPosition"`
	Target  string `json:"target"`
}

// PlaceholderURL is the neutral target used when button links are reset
// during duplication.
const PlaceholderURL = "#"

// Map returns the prop form of the button.
func (b Button) Map() map[string]any {
	return map[string]any{
		"text":         b.Text,
		"url":          b.URL,
		"style":        b.Style,
		"size":         b.Size,
		"iconPosition": b.IconPos,
		"target":       b.Target,
	}
}

// ButtonFromMap reads a button out of its prop form.
func ButtonFromMap(m map[string]any) Button {
	return Button{
		Text:    stringAt(m, "text"),
		URL:     stringAt(m, "url"),
		Style:   stringAt(m, "style"),
		Size:    stringAt(m, "size"),
		IconPos: stringAt(m, "iconPosition"),
		Target:  stringAt(m, "target"),
	}
}

// IsEmpty reports whether the button carries no authored content.
func (b Button) IsEmpty() bool {
	return b.Text == "" && (b.URL == "" || b.URL == PlaceholderURL)
}

// Media kinds.
const (
	MediaImage = "image"
	MediaVideo = "video"
)

// Media describes an image or video reference.
type Media struct {
	URL      string `json:"url"`
	Kind     string `json:"kind"`
	Alt      string `json:"alt"`
	Fit      string `json:"fit"`
	Priority string `json:"priority"`
}

// Map returns the prop form of the media descriptor.
func (m Media) Map() map[string]any {
	return map[string]any{
		"url":      m.URL,
		"kind":     m.Kind,
		"alt":      m.Alt,
		"fit":      m.Fit,
		"priority": m.Priority,
	}
}

// MediaFromMap reads a media descriptor out of its prop form.
func MediaFromMap(mp map[string]any) Media {
	return Media{
		URL:      stringAt(mp, "url"),
		Kind:     stringAt(mp, "kind"),
		Alt:      stringAt(mp, "alt"),
		Fit:      stringAt(mp, "fit"),
		Priority: stringAt(mp, "priority"),
	}
}

// Background kinds.
const (
	BackgroundNone     = "none"
	BackgroundSolid    = "solid"
	BackgroundGradient = "gradient"
	BackgroundImage    = "image"
	BackgroundVideo    = "video"
)

// Overlay tints a background media payload.
type Overlay struct {
	Color   string  `json:"color"`
	Opacity float64 `json:"opacity"`
}

// Background describes a variant's backdrop: a kind tag plus whichever
// payload fields the kind needs, and an optional overlay.
type Background struct {
	Kind     string   `json:"kind"`
	Color    string   `json:"color"`
	Gradient string   `json:"gradient"`
	Media    *Media   `json:"media,omitempty"`
	Overlay  *Overlay `json:"overlay,omitempty"`
}

// Map returns the prop form of the background.
func (b Background) Map() map[string]any {
	out := map[string]any{
		"kind":     b.Kind,
		"color":    b.Color,
		"gradient": b.Gradient,
	}
	if b.Media != nil {
		out["media"] = b.Media.Map()
	}

	if b.Overlay != nil {
		out["overlay"] = map[string]any{
			"color":   b.Overlay.Color,
			"opacity": b.Overlay.Opacity,
		}
	}

	return out
}

// BackgroundFromMap reads a background out of its prop form.
func BackgroundFromMap(m map[string]any) Background {
	out := Background{
		Kind:     stringAt(m, "kind"),
		Color:    stringAt(m, "color"),
		Gradient: stringAt(m, "gradient"),
	}

	if mm, ok := m["media"].(map[string]any); ok {
		media := MediaFromMap(mm)
		out.Media = &media
	}

	if om, ok := m["overlay"].(map[string]any); ok {
		out.Overlay = &Overlay{
			Color:   stringAt(om, "color"),
			Opacity: floatAt(om, "opacity"),
		}
	}

	return out
}

func stringAt(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func floatAt(m map[string]any, key string) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}
