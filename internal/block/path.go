package block

import "strings"

// Segment is one parsed segment of a prop path.
type Segment struct {
	// Name is the prop key.
	Name string

	// IsSlice indicates the segment addresses every element of a list
	// (e.g. "testimonials[]").
	IsSlice bool
}

// Path is a parsed prop path like "content.buttons[].url".
type Path struct {
	Segments []Segment
}

// ParsePath parses a dotted prop path. "[]" suffixes mark list
// segments whose elements are addressed collectively.
func ParsePath(s string) Path {
	if s == "" {
		return Path{}
	}

	parts := strings.Split(s, ".")
	segments := make([]Segment, 0, len(parts))

	for _, part := range parts {
		seg := Segment{Name: part}
		if strings.HasSuffix(part, "[]") {
			seg.Name = strings.TrimSuffix(part, "[]")
			seg.IsSlice = true
		}

		segments = append(segments, seg)
	}

	return Path{Segments: segments}
}

// String renders the path back to its dotted form.
func (p Path) String() string {
	var sb strings.Builder

	for i, seg := range p.Segments {
		if i > 0 {
			sb.WriteString(".")
		}

		sb.WriteString(seg.Name)

		if seg.IsSlice {
			sb.WriteString("[]")
		}
	}

	return sb.String()
}

// IsEmpty returns true if the path has no segments.
func (p Path) IsEmpty() bool {
	return len(p.Segments) == 0
}

// Root returns the first segment's name, or "" for an empty path.
func (p Path) Root() string {
	if len(p.Segments) == 0 {
		return ""
	}

	return p.Segments[0].Name
}

// HasSlice returns true if any segment addresses list elements.
func (p Path) HasSlice() bool {
	for _, seg := range p.Segments {
		if seg.IsSlice {
			return true
		}
	}

	return false
}

// Get resolves a slice-free path against a prop graph. The second
// return is false when any segment is missing or not a map.
func Get(props map[string]any, path Path) (any, bool) {
	current := any(props)

	for _, seg := range path.Segments {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}

		current, ok = m[seg.Name]
		if !ok {
			return nil, false
		}
	}

	return current, true
}

// GetString resolves a path and returns its string value, or "" when
// absent or not a string.
func GetString(props map[string]any, path Path) string {
	v, ok := Get(props, path)
	if !ok {
		return ""
	}

	s, _ := v.(string)

	return s
}

// Set writes a value at a slice-free path, creating intermediate maps
// as needed. Existing non-map intermediates are replaced.
func Set(props map[string]any, path Path, value any) {
	if path.IsEmpty() {
		return
	}

	current := props

	for _, seg := range path.Segments[:len(path.Segments)-1] {
		next, ok := current[seg.Name].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[seg.Name] = next
		}

		current = next
	}

	current[path.Segments[len(path.Segments)-1].Name] = value
}

// Delete removes the value at a slice-free path. Missing intermediates
// are a no-op.
func Delete(props map[string]any, path Path) {
	if path.IsEmpty() {
		return
	}

	current := props

	for _, seg := range path.Segments[:len(path.Segments)-1] {
		next, ok := current[seg.Name].(map[string]any)
		if !ok {
			return
		}

		current = next
	}

	delete(current, path.Segments[len(path.Segments)-1].Name)
}

// Visit walks a path that may contain slice segments and invokes fn at
// every terminal location. fn receives the current value and returns
// the replacement; returning the same value leaves the graph unchanged.
// Locations missing along the way are skipped.
func Visit(props map[string]any, path Path, fn func(value any) any) {
	visit(props, path.Segments, fn)
}

func visit(container any, segments []Segment, fn func(value any) any) {
	if len(segments) == 0 {
		return
	}

	m, ok := container.(map[string]any)
	if !ok {
		return
	}

	seg := segments[0]
	rest := segments[1:]

	value, exists := m[seg.Name]
	if !exists {
		return
	}

	if seg.IsSlice {
		list, ok := value.([]any)
		if !ok {
			return
		}

		for i, item := range list {
			if len(rest) == 0 {
				list[i] = fn(item)
			} else {
				visit(item, rest, fn)
			}
		}

		return
	}

	if len(rest) == 0 {
		m[seg.Name] = fn(value)
		return
	}

	visit(value, rest, fn)
}
