// Package migrate transforms a block instance from one variant's shape
// to another under a named strategy, reporting exactly which fields
// were carried, transformed, or dropped. The correspondence between
// variants is declarative: every schema field carries a semantic role,
// and this package matches roles across the pair, layering explicit
// cardinality bridges (button pair into button list, list into scalar)
// on top.
package migrate

import (
	"heroblock/internal/registry"
)

// MappingClass says how a single source field relates to the target
// variant.
type MappingClass int

const (
	// ClassDrop means the field has no correspondence in the target.
	ClassDrop MappingClass = iota
	// ClassCoercion means a best-effort value coercion exists
	// (flexible strategy only).
	ClassCoercion
	// ClassStructural means a documented structural transform exists
	// (balanced and flexible strategies).
	ClassStructural
	// ClassDirect means the field carries over with its shape intact,
	// possibly relocated to a different path.
	ClassDirect
)

// String returns a human-readable class name.
func (c MappingClass) String() string {
	switch c {
	case ClassDirect:
		return "direct"
	case ClassStructural:
		return "structural"
	case ClassCoercion:
		return "coercion"
	case ClassDrop:
		return "drop"
	default:
		return "unknown"
	}
}

// shapeEqual reports whether a source field's value fits the target
// field slot without reshaping. List fields additionally require the
// source item shape to be a subset of the target item shape.
func shapeEqual(src, tgt registry.FieldSpec) bool {
	if src.Type != tgt.Type || src.Object != tgt.Object {
		return false
	}

	if src.Type != registry.FieldList {
		return true
	}

	if src.ItemType != tgt.ItemType || src.ItemObject != tgt.ItemObject {
		return false
	}

	return itemPathsSubset(src.Items, tgt.Items)
}

func itemPathsSubset(src, tgt []registry.FieldSpec) bool {
	if len(src) == 0 {
		return true
	}

	declared := make(map[string]bool, len(tgt))
	for _, item := range tgt {
		declared[item.Path] = true
	}

	for _, item := range src {
		if !declared[item.Path] {
			return false
		}
	}

	return true
}

// ClassifyField determines the mapping class for one source field
// against a target schema, and the primary target field involved (nil
// for drops). The classification is static: it depends on the two
// schemas only, never on instance values, so the compatibility
// classifier can precompute it for every pair.
func ClassifyField(src registry.FieldSpec, tgt *registry.VariantSchema) (MappingClass, *registry.FieldSpec) {
	if src.Role == registry.RoleNone {
		return ClassDrop, nil
	}

	// Same role on both sides.
	for _, t := range tgt.FieldsByRole(src.Role) {
		if shapeEqual(src, *t) {
			return ClassDirect, t
		}
	}

	if sameRole := tgt.FieldsByRole(src.Role); len(sameRole) > 0 {
		// Same semantics, different item shape: reshape the items.
		if src.Role == registry.RoleGridItems {
			return ClassStructural, sameRole[0]
		}
	}

	// Cardinality bridges.
	switch src.Role {
	case registry.RolePrimaryButton, registry.RoleSecondaryButton:
		if list := tgt.FieldsByRole(registry.RoleButtonList); len(list) > 0 {
			return ClassStructural, list[0]
		}
	case registry.RoleButtonList:
		if slot := tgt.FieldsByRole(registry.RolePrimaryButton); len(slot) > 0 {
			return ClassStructural, slot[0]
		}
	}

	// Best-effort coercions.
	switch src.Role {
	case registry.RoleMedia:
		if list := tgt.FieldsByRole(registry.RoleMediaList); len(list) > 0 {
			return ClassCoercion, list[0]
		}

		if bg := tgt.FieldsByRole(registry.RoleBackground); len(bg) > 0 {
			return ClassCoercion, bg[0]
		}
	case registry.RoleMediaList:
		if slot := tgt.FieldsByRole(registry.RoleMedia); len(slot) > 0 {
			return ClassCoercion, slot[0]
		}
	case registry.RoleBackground:
		// A media-bearing background can become the target's media when
		// the target has no background of its own.
		if slot := tgt.FieldsByRole(registry.RoleMedia); len(slot) > 0 {
			return ClassCoercion, slot[0]
		}
	case registry.RoleDescription:
		if slot := tgt.FieldsByRole(registry.RoleSubtitle); len(slot) > 0 {
			return ClassCoercion, slot[0]
		}
	case registry.RoleSubtitle:
		if slot := tgt.FieldsByRole(registry.RoleDescription); len(slot) > 0 {
			return ClassCoercion, slot[0]
		}
	}

	return ClassDrop, nil
}

// PairProfile summarizes how the content-bearing fields of one variant
// map onto another. The compatibility classifier derives its verdicts
// from these counts so that verdicts and migrations can never disagree
// about what maps.
type PairProfile struct {
	CoreTotal      int
	DirectCore     int
	StructuralCore int
	CoercibleCore  int
	DroppedCore    []string // source paths of dropped core fields
	DroppedOther   []string
}

// ProfilePair computes the mapping profile between two schemas.
func ProfilePair(src, tgt *registry.VariantSchema) PairProfile {
	var profile PairProfile

	for _, field := range src.Fields {
		class, _ := ClassifyField(field, tgt)

		if !field.Role.IsCore() {
			if class == ClassDrop {
				profile.DroppedOther = append(profile.DroppedOther, field.Path)
			}

			continue
		}

		profile.CoreTotal++

		switch class {
		case ClassDirect:
			profile.DirectCore++
		case ClassStructural:
			profile.StructuralCore++
		case ClassCoercion:
			profile.CoercibleCore++
		case ClassDrop:
			profile.DroppedCore = append(profile.DroppedCore, field.Path)
		}
	}

	return profile
}
