// Package registry is the static catalog of the ten hero-block
// variants: their field schemas, default instances, editor metadata,
// and field-visibility dependency rules. The catalog is built once at
// process start and read-only afterwards; every accessor hands out
// fresh copies so callers can never alias catalog state.
package registry

import (
	"fmt"

	"heroblock/internal/block"
)

// FieldType is the semantic type of a schema field.
type FieldType string

const (
	FieldText    FieldType = "text"
	FieldURL     FieldType = "url"
	FieldColor   FieldType = "color"
	FieldNumber  FieldType = "number"
	FieldBoolean FieldType = "boolean"
	FieldMedia   FieldType = "media"
	FieldList    FieldType = "list"
	FieldObject  FieldType = "object"
)

// ObjectKind distinguishes the descriptor shapes behind FieldObject
// fields (and FieldObject list items).
type ObjectKind string

const (
	ObjectNone       ObjectKind = ""
	ObjectText       ObjectKind = "textBlock"
	ObjectButton     ObjectKind = "button"
	ObjectBackground ObjectKind = "background"
	ObjectOverlay    ObjectKind = "overlay"
)

// Role is the semantic slot a field occupies within its variant. Roles
// are what the migrator matches across variants: two fields with the
// same role carry the same authored meaning even when their paths or
// shapes differ.
type Role string

const (
	RoleNone            Role = ""
	RoleTitle           Role = "title"
	RoleSubtitle        Role = "subtitle"
	RoleDescription     Role = "description"
	RoleEyebrow         Role = "eyebrow"
	RolePrimaryButton   Role = "primaryButton"
	RoleSecondaryButton Role = "secondaryButton"
	RoleButtonList      Role = "buttonList"
	RoleMedia           Role = "media"
	RoleMediaList       Role = "mediaList"
	RoleBackground      Role = "background"
	RoleOverlay         Role = "overlay"
	RoleGridItems       Role = "gridItems"
	RoleTestimonials    Role = "testimonials"
	RolePrice           Role = "price"
	RoleAlignment       Role = "alignment"
	RoleLayout          Role = "layout"
	RoleColumns         Role = "columns"
	RoleSpacing         Role = "spacing"
	RoleWidth           Role = "width"
	RoleMediaPosition   Role = "mediaPosition"
	RoleAutoRotate      Role = "autoRotate"
	RoleInterval        Role = "interval"
	RoleLightbox        Role = "lightbox"
)

// coreRoles are the content-bearing roles. Dropping one of these during
// migration is a real loss for the author; dropping a cosmetic role
// (alignment, columns, ...) is not.
var coreRoles = map[Role]bool{
	RoleTitle:           true,
	RoleSubtitle:        true,
	RoleDescription:     true,
	RoleEyebrow:         true,
	RolePrimaryButton:   true,
	RoleSecondaryButton: true,
	RoleButtonList:      true,
	RoleMedia:           true,
	RoleMediaList:       true,
	RoleBackground:      true,
	RoleGridItems:       true,
	RoleTestimonials:    true,
	RolePrice:           true,
}

// IsCore reports whether the role carries authored content.
func (r Role) IsCore() bool {
	return coreRoles[r]
}

// FieldSpec describes one field of a variant schema.
type FieldSpec struct {
	// Path is the dotted prop path of the field (top-level fields only;
	// item fields live in Items with item-relative paths).
	Path string `json:"path" yaml:"path"`

	// Type is the semantic field type.
	Type FieldType `json:"type" yaml:"type"`

	// Object names the descriptor shape for FieldObject fields.
	Object ObjectKind `json:"object,omitempty" yaml:"object,omitempty"`

	// ItemType / ItemObject describe list elements for FieldList fields.
	ItemType   FieldType  `json:"itemType,omitempty" yaml:"itemType,omitempty"`
	ItemObject ObjectKind `json:"itemObject,omitempty" yaml:"itemObject,omitempty"`

	// Items describes the record shape of FieldList elements that are
	// plain records rather than shared descriptors. Paths are relative
	// to the item.
	Items []FieldSpec `json:"items,omitempty" yaml:"items,omitempty"`

	// Role is the semantic slot this field fills.
	Role Role `json:"role,omitempty" yaml:"role,omitempty"`

	// Required marks fields the variant cannot render without. Every
	// required field carries a default.
	Required bool `json:"required" yaml:"required"`

	// Default is the prop-form default value. Always deep-copied on use.
	Default any `json:"default,omitempty" yaml:"default,omitempty"`

	// Label and Group are editor metadata for the authoring UI.
	Label string `json:"label" yaml:"label"`
	Group string `json:"group,omitempty" yaml:"group,omitempty"`
}

// Condition is the kind of check a visibility rule performs.
type Condition string

const (
	CondEquals   Condition = "equals"
	CondNonEmpty Condition = "nonEmpty"
)

// VisibilityRule declares that Field is only relevant in the editor
// when DependsOn meets the condition.
type VisibilityRule struct {
	Field     string    `json:"field" yaml:"field"`
	DependsOn string    `json:"dependsOn" yaml:"dependsOn"`
	Cond      Condition `json:"cond" yaml:"cond"`
	Value     any       `json:"value,omitempty" yaml:"value,omitempty"`
}

// Applies evaluates the rule against an instance's props: true means
// the dependent field should be shown.
func (r VisibilityRule) Applies(props map[string]any) bool {
	value, ok := block.Get(props, block.ParsePath(r.DependsOn))
	if !ok {
		return false
	}

	switch r.Cond {
	case CondEquals:
		return value == r.Value
	case CondNonEmpty:
		return valueNonEmpty(value)
	default:
		return false
	}
}

func valueNonEmpty(value any) bool {
	switch v := value.(type) {
	case string:
		return v != ""
	case []any:
		return len(v) > 0
	case map[string]any:
		// Descriptor maps count as non-empty when their principal
		// content key is set.
		if s, ok := v["url"].(string); ok {
			return s != ""
		}

		if s, ok := v["text"].(string); ok {
			return s != ""
		}

		return len(v) > 0
	case nil:
		return false
	default:
		return true
	}
}

// VariantSchema is the full static description of one variant.
type VariantSchema struct {
	ID           block.VariantID  `json:"id" yaml:"id"`
	Label        string           `json:"label" yaml:"label"`
	Fields       []FieldSpec      `json:"fields" yaml:"fields"`
	Dependencies []VisibilityRule `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
}

// FieldByPath returns the spec for a top-level prop path, or nil.
func (s *VariantSchema) FieldByPath(path string) *FieldSpec {
	for i := range s.Fields {
		if s.Fields[i].Path == path {
			return &s.Fields[i]
		}
	}

	return nil
}

// FieldsByRole returns every field filling the given role, in schema
// order.
func (s *VariantSchema) FieldsByRole(role Role) []*FieldSpec {
	var out []*FieldSpec

	for i := range s.Fields {
		if s.Fields[i].Role == role {
			out = append(out, &s.Fields[i])
		}
	}

	return out
}

// TitleField returns the variant's primary title field, or nil when the
// variant has none.
func (s *VariantSchema) TitleField() *FieldSpec {
	fields := s.FieldsByRole(RoleTitle)
	if len(fields) == 0 {
		return nil
	}

	return fields[0]
}

// PairString formats a source->target variant pair for diagnostics.
func PairString(source, target block.VariantID) string {
	return fmt.Sprintf("%s->%s", source, target)
}
