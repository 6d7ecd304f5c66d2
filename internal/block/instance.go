package block

import "github.com/google/uuid"

// Theme holds the shared visual configuration reused across variants.
// It is a value record: copied by value, never shared between instances.
type Theme struct {
	ColorScheme string `json:"colorScheme"`
	FontScale   string `json:"fontScale"`
	Radius      string `json:"radius"`
}

// Responsive holds per-breakpoint layout hints.
type Responsive struct {
	MobileStack   bool   `json:"mobileStack"`
	TabletColumns int    `json:"tabletColumns"`
	DesktopWidth  string `json:"desktopWidth"`
}

// Accessibility holds the accessibility descriptor shared by all variants.
type Accessibility struct {
	AriaLabel      string `json:"ariaLabel"`
	ReducedMotion  bool   `json:"reducedMotion"`
	FocusRingStyle string `json:"focusRingStyle"`
}

// Instance is a concrete authored hero block of one variant.
// Variant-specific content lives in Props as nested maps and lists so
// that the engine can navigate it by path; the fixed envelope (id,
// variant, theme, responsive, accessibility) is typed.
type Instance struct {
	ID            string         `json:"id"`
	Variant       VariantID      `json:"variant"`
	Theme         Theme          `json:"theme"`
	Responsive    Responsive     `json:"responsive"`
	Accessibility Accessibility  `json:"accessibility"`
	Props         map[string]any `json:"props"`
}

// NewID returns a fresh block identifier.
func NewID() string {
	return uuid.NewString()
}

// DefaultTheme returns the standard theme configuration.
// Constructed fresh on every call so nested config is never aliased.
func DefaultTheme() Theme {
	return Theme{ColorScheme: "light", FontScale: "md", Radius: "md"}
}

// DefaultResponsive returns the standard responsive configuration.
func DefaultResponsive() Responsive {
	return Responsive{MobileStack: true, TabletColumns: 2, DesktopWidth: "contained"}
}

// DefaultAccessibility returns the standard accessibility configuration.
func DefaultAccessibility() Accessibility {
	return Accessibility{AriaLabel: "", ReducedMotion: false, FocusRingStyle: "default"}
}

// Clone returns a deep copy of the instance. The envelope records are
// values and copy implicitly; Props is copied recursively.
func (in Instance) Clone() Instance {
	out := in
	out.Props = CloneProps(in.Props)

	return out
}

// CloneProps deep-copies a prop graph (maps, lists, scalars).
func CloneProps(props map[string]any) map[string]any {
	if props == nil {
		return nil
	}

	out := make(map[string]any, len(props))
	for k, v := range props {
		out[k] = CloneValue(v)
	}

	return out
}

// CloneValue deep-copies a single prop value.
func CloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return CloneProps(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = CloneValue(item)
		}

		return out
	default:
		// Scalars (string, float64, bool, nil) are immutable.
		return val
	}
}
