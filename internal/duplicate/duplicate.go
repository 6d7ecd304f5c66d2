// Package duplicate clones a block instance within its variant, with
// options controlling which substructures are carried and which are
// reset. The input is never mutated; the clone always gets a fresh
// identifier and always conforms to the same schema as the input.
package duplicate

import (
	"heroblock/internal/block"
	"heroblock/internal/registry"
)

// DefaultNamePrefix is prepended to the primary title of a duplicate.
const DefaultNamePrefix = "Copy of "

// Options controls what a duplicate preserves.
type Options struct {
	// PreserveMedia keeps media descriptors as authored. When false,
	// every media descriptor is reset to the variant's placeholder,
	// including ones nested in list items and background payloads.
	PreserveMedia bool `json:"preserveMedia"`

	// PreserveButtons keeps button URLs. When false, every button's
	// URL is reset to a neutral placeholder; button text stays.
	PreserveButtons bool `json:"preserveButtons"`

	// NamePrefix is applied to the variant's primary title field. An
	// absent title is a no-op, never an error.
	NamePrefix string `json:"namePrefix"`
}

// DefaultOptions preserves everything and uses the standard prefix.
func DefaultOptions() Options {
	return Options{
		PreserveMedia:   true,
		PreserveButtons: true,
		NamePrefix:      DefaultNamePrefix,
	}
}

// Duplicate deep-clones an instance, assigns a fresh identifier, and
// applies the configured resets recursively through nested lists.
func Duplicate(inst block.Instance, opts Options) (block.Instance, error) {
	schema, err := registry.Get(inst.Variant)
	if err != nil {
		return block.Instance{}, err
	}

	out := inst.Clone()
	out.ID = block.NewID()

	if opts.NamePrefix != "" {
		prefixTitle(&schema, out.Props, opts.NamePrefix)
	}

	for _, field := range schema.Fields {
		if !opts.PreserveMedia {
			resetMedia(field, out.Props)
		}

		if !opts.PreserveButtons {
			resetButtons(field, out.Props)
		}
	}

	return out, nil
}

func prefixTitle(schema *registry.VariantSchema, props map[string]any, prefix string) {
	title := schema.TitleField()
	if title == nil {
		return
	}

	path := block.ParsePath(title.Path)

	value, ok := block.Get(props, path)
	if !ok {
		return
	}

	m, ok := value.(map[string]any)
	if !ok {
		return
	}

	if text, ok := m["text"].(string); ok && text != "" {
		m["text"] = prefix + text
	}
}

// resetMedia replaces every media descriptor reachable under the field
// with the field's registered placeholder default.
func resetMedia(field registry.FieldSpec, props map[string]any) {
	path := block.ParsePath(field.Path)

	switch field.Type {
	case registry.FieldMedia:
		if _, ok := block.Get(props, path); ok {
			block.Set(props, path, block.CloneValue(field.Default))
		}

	case registry.FieldObject:
		if field.Object != registry.ObjectBackground {
			return
		}

		value, ok := block.Get(props, path)
		if !ok {
			return
		}

		bg, ok := value.(map[string]any)
		if !ok {
			return
		}

		if _, has := bg["media"]; has {
			bg["media"] = placeholderFor(nil)
		}

	case registry.FieldList:
		switch {
		case field.ItemType == registry.FieldMedia:
			block.Visit(props, listElemPath(field.Path), func(any) any {
				return placeholderFor(field.Default)
			})

		default:
			for _, item := range field.Items {
				if item.Type != registry.FieldMedia {
					continue
				}

				itemPath := block.ParsePath(field.Path + "[]." + item.Path)
				def := item.Default

				block.Visit(props, itemPath, func(any) any {
					return placeholderFor(def)
				})
			}
		}
	}
}

// resetButtons blanks the URL of every button reachable under the
// field, keeping the rest of the descriptor.
func resetButtons(field registry.FieldSpec, props map[string]any) {
	reset := func(value any) any {
		button, ok := value.(map[string]any)
		if !ok {
			return value
		}

		button["url"] = block.PlaceholderURL

		return button
	}

	switch {
	case field.Type == registry.FieldObject && field.Object == registry.ObjectButton:
		if value, ok := block.Get(props, block.ParsePath(field.Path)); ok {
			reset(value)
		}

	case field.Type == registry.FieldList && field.ItemObject == registry.ObjectButton:
		block.Visit(props, listElemPath(field.Path), reset)
	}
}

// listElemPath turns a list field path into a path addressing each of
// its elements.
func listElemPath(path string) block.Path {
	return block.ParsePath(path + "[]")
}

// placeholderFor returns a fresh placeholder media map. The field's
// registered default is preferred; a generic placeholder covers
// item defaults that are themselves unset.
func placeholderFor(def any) any {
	if m, ok := def.(map[string]any); ok {
		return block.CloneProps(m)
	}

	return block.Media{
		URL:      "https://placehold.co/1200x800",
		Kind:     block.MediaImage,
		Alt:      "Placeholder image",
		Fit:      "cover",
		Priority: "auto",
	}.Map()
}
