package registry

import (
	"errors"
	"fmt"
	"strings"

	"heroblock/internal/block"
)

// ErrUnknownVariant is returned when a variant id is not in the
// catalog. There is no default instance to fall back on, so the
// requesting operation is fatal.
var ErrUnknownVariant = errors.New("unknown variant")

// Get returns the schema for a variant id.
func Get(id block.VariantID) (VariantSchema, error) {
	schema, ok := schemaFor(id)
	if !ok {
		return VariantSchema{}, fmt.Errorf("%w: %q", ErrUnknownVariant, id)
	}

	return schema, nil
}

// All returns every variant schema in canonical order.
func All() []VariantSchema {
	out := make([]VariantSchema, 0, len(block.AllVariants()))

	for _, id := range block.AllVariants() {
		schema, ok := schemaFor(id)
		if !ok {
			continue
		}

		out = append(out, schema)
	}

	return out
}

// DefaultInstance builds a fresh instance of the given variant with
// every defaulted field populated. The prop graph is newly allocated on
// each call; nothing is shared with the catalog or other instances.
func DefaultInstance(id block.VariantID) (block.Instance, error) {
	schema, err := Get(id)
	if err != nil {
		return block.Instance{}, err
	}

	props := make(map[string]any)

	for _, field := range schema.Fields {
		if field.Default == nil {
			continue
		}

		block.Set(props, block.ParsePath(field.Path), block.CloneValue(field.Default))
	}

	return block.Instance{
		ID:            block.NewID(),
		Variant:       id,
		Theme:         block.DefaultTheme(),
		Responsive:    block.DefaultResponsive(),
		Accessibility: block.DefaultAccessibility(),
		Props:         props,
	}, nil
}

// Validate structurally checks a single schema: id validity, a
// non-empty field list, defaults behind every required field, and
// dependency rules that reference declared fields. Returns one message
// per problem, empty when valid.
func Validate(schema VariantSchema) []string {
	var problems []string

	if !schema.ID.IsValid() {
		problems = append(problems, fmt.Sprintf("schema id %q is not a known variant", schema.ID))
	}

	if len(schema.Fields) == 0 {
		problems = append(problems, fmt.Sprintf("schema %q has no fields", schema.ID))
	}

	seen := map[string]bool{}

	for _, field := range schema.Fields {
		if field.Path == "" {
			problems = append(problems, fmt.Sprintf("schema %q has a field with an empty path", schema.ID))
			continue
		}

		if seen[field.Path] {
			problems = append(problems, fmt.Sprintf("schema %q declares %q twice", schema.ID, field.Path))
		}

		seen[field.Path] = true

		if field.Required && field.Default == nil {
			problems = append(problems, fmt.Sprintf(
				"schema %q: required field %q has no default", schema.ID, field.Path))
		}

		if field.Type == FieldList {
			for _, item := range field.Items {
				if item.Required && item.Default == nil {
					problems = append(problems, fmt.Sprintf(
						"schema %q: required item field %q.%q has no default", schema.ID, field.Path, item.Path))
				}
			}
		}
	}

	for _, rule := range schema.Dependencies {
		if !seen[rule.Field] {
			problems = append(problems, fmt.Sprintf(
				"schema %q: dependency rule targets undeclared field %q", schema.ID, rule.Field))
		}

		if !seen[rule.DependsOn] {
			problems = append(problems, fmt.Sprintf(
				"schema %q: dependency rule depends on undeclared field %q", schema.ID, rule.DependsOn))
		}

		if rule.Cond != CondEquals && rule.Cond != CondNonEmpty {
			problems = append(problems, fmt.Sprintf(
				"schema %q: dependency rule on %q has unknown condition %q", schema.ID, rule.Field, rule.Cond))
		}
	}

	return problems
}

// SelfCheck validates the whole catalog plus each default instance.
// Meant to run once at process start; an error here is a programming
// mistake in the catalog, not an author mistake.
func SelfCheck() error {
	var problems []string

	for _, id := range block.AllVariants() {
		schema, ok := schemaFor(id)
		if !ok {
			problems = append(problems, fmt.Sprintf("variant %q has no schema constructor", id))
			continue
		}

		problems = append(problems, Validate(schema)...)

		inst, err := DefaultInstance(id)
		if err != nil {
			problems = append(problems, err.Error())
			continue
		}

		for _, issue := range Conforms(inst) {
			problems = append(problems, fmt.Sprintf("default instance of %q: %s", id, issue))
		}
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}

	return nil
}

// Conforms checks an instance against its declared variant's schema:
// required fields present, declared fields well-typed, and no stray
// top-level props. Returns one message per violation.
func Conforms(inst block.Instance) []string {
	schema, err := Get(inst.Variant)
	if err != nil {
		return []string{err.Error()}
	}

	var problems []string

	declaredRoots := map[string]bool{}

	for _, field := range schema.Fields {
		path := block.ParsePath(field.Path)
		declaredRoots[path.Root()] = true

		value, present := block.Get(inst.Props, path)
		if !present {
			if field.Required {
				problems = append(problems, fmt.Sprintf("required field %q is missing", field.Path))
			}

			continue
		}

		problems = append(problems, checkFieldValue(field, value)...)
	}

	for key := range inst.Props {
		if !declaredRoots[key] {
			problems = append(problems, fmt.Sprintf("prop %q is not declared by variant %q", key, inst.Variant))
		}
	}

	return problems
}

func checkFieldValue(field FieldSpec, value any) []string {
	var problems []string

	complain := func(want string) {
		problems = append(problems, fmt.Sprintf("field %q: expected %s, got %T", field.Path, want, value))
	}

	switch field.Type {
	case FieldText, FieldURL, FieldColor:
		if _, ok := value.(string); !ok {
			complain("string")
		}
	case FieldNumber:
		switch value.(type) {
		case float64, int:
		default:
			complain("number")
		}
	case FieldBoolean:
		if _, ok := value.(bool); !ok {
			complain("bool")
		}
	case FieldMedia, FieldObject:
		if _, ok := value.(map[string]any); !ok {
			complain("object")
		}
	case FieldList:
		list, ok := value.([]any)
		if !ok {
			complain("list")
			break
		}

		for i, item := range list {
			problems = append(problems, checkListItem(field, i, item)...)
		}
	}

	return problems
}

func checkListItem(field FieldSpec, index int, item any) []string {
	m, ok := item.(map[string]any)
	if !ok {
		return []string{fmt.Sprintf("field %q[%d]: expected object item, got %T", field.Path, index, item)}
	}

	var problems []string

	for _, itemSpec := range field.Items {
		if !itemSpec.Required {
			continue
		}

		if _, present := m[itemSpec.Path]; !present {
			problems = append(problems, fmt.Sprintf(
				"field %q[%d]: required item field %q is missing", field.Path, index, itemSpec.Path))
		}
	}

	return problems
}
