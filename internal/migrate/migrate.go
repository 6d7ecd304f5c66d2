package migrate

import (
	"fmt"

	"heroblock/internal/block"
	"heroblock/internal/diagnostic"
	"heroblock/internal/registry"
)

// Result is the migration report returned alongside (and containing)
// the migrated instance. Lossy mapping is reported, never failed;
// Success is false only when a variant id cannot be resolved.
type Result struct {
	MigratedProps         *block.Instance `json:"migratedProps,omitempty"`
	Success               bool            `json:"success"`
	MigratedProperties    []string        `json:"migratedProperties"`
	TransformedProperties []string        `json:"transformedProperties"`
	DroppedProperties     []string        `json:"droppedProperties"`
	AddedDefaults         []string        `json:"addedDefaults"`
	Warnings              []string        `json:"warnings"`
	Errors                []string        `json:"errors"`
}

// Migrate transforms an instance into the target variant's shape under
// the named strategy. The input is never mutated; the identifier is
// carried over and the variant tag set to the target. The output, when
// Success is true, always conforms to the target schema.
func Migrate(inst block.Instance, target block.VariantID, strategyName string) Result {
	pair := registry.PairString(inst.Variant, target)
	diags := &diagnostic.Diagnostics{}

	tgtSchema, err := registry.Get(target)
	if err != nil {
		diags.AddError("unknown_target_variant", err.Error(), pair, "")
		return fatal(diags)
	}

	srcSchema, err := registry.Get(inst.Variant)
	if err != nil {
		diags.AddError("unknown_source_variant", err.Error(), pair, "")
		return fatal(diags)
	}

	strat, ok := Lookup(strategyName)
	if !ok {
		diags.AddWarning("unknown_strategy",
			fmt.Sprintf("unknown strategy %q, falling back to %q", strategyName, Balanced.Name), pair, "")

		strat = Balanced
	}

	out := block.Instance{
		ID:            inst.ID,
		Variant:       target,
		Theme:         inst.Theme,
		Responsive:    inst.Responsive,
		Accessibility: inst.Accessibility,
		Props:         make(map[string]any),
	}

	m := &migration{
		src:     &srcSchema,
		tgt:     &tgtSchema,
		strat:   strat,
		pair:    pair,
		diags:   diags,
		out:     out.Props,
		filled:  make(map[string]bool),
		claimed: make(map[string]bool),
	}

	// Pre-claim the targets of direct matches so that a weaker mapping
	// processed earlier in schema order cannot shadow a direct one.
	for _, field := range srcSchema.Fields {
		if _, present := block.Get(inst.Props, block.ParsePath(field.Path)); !present {
			continue
		}

		if class, tgtField := ClassifyField(field, &tgtSchema); class == ClassDirect {
			m.claimed[tgtField.Path] = true
		}
	}

	for _, field := range srcSchema.Fields {
		value, present := block.Get(inst.Props, block.ParsePath(field.Path))
		if !present {
			// Absent optional source fields are normal input.
			continue
		}

		m.mapField(field, value)
	}

	// Every target-required field still unfilled gets the registered
	// default; the output is never left schema-invalid.
	for _, field := range tgtSchema.Fields {
		if !field.Required || m.filled[field.Path] {
			continue
		}

		block.Set(out.Props, block.ParsePath(field.Path), block.CloneValue(field.Default))
		m.addedDefaults = append(m.addedDefaults, field.Path)
	}

	return Result{
		MigratedProps:         &out,
		Success:               true,
		MigratedProperties:    m.migrated,
		TransformedProperties: m.transformed,
		DroppedProperties:     m.dropped,
		AddedDefaults:         m.addedDefaults,
		Warnings:              diags.WarningMessages(),
		Errors:                diags.ErrorMessages(),
	}
}

func fatal(diags *diagnostic.Diagnostics) Result {
	return Result{
		Success:  false,
		Warnings: diags.WarningMessages(),
		Errors:   diags.ErrorMessages(),
	}
}

// migration carries the working state of one Migrate call.
type migration struct {
	src   *registry.VariantSchema
	tgt   *registry.VariantSchema
	strat Strategy
	pair  string
	diags *diagnostic.Diagnostics

	out     map[string]any
	filled  map[string]bool
	claimed map[string]bool

	migrated      []string
	transformed   []string
	dropped       []string
	addedDefaults []string
}

// mapField places one present source field into the output, recording
// it in exactly one of the migrated/transformed/dropped lists.
func (m *migration) mapField(field registry.FieldSpec, value any) {
	class, tgtField := ClassifyField(field, m.tgt)

	// First-non-empty-wins fallback: a secondary button takes the
	// target's single button slot when no primary claimed it.
	if class == ClassDrop && field.Role == registry.RoleSecondaryButton && m.strat.Structural {
		if slots := m.tgt.FieldsByRole(registry.RolePrimaryButton); len(slots) > 0 &&
			!m.filled[slots[0].Path] && !m.claimed[slots[0].Path] {
			class, tgtField = ClassStructural, slots[0]
		}
	}

	switch {
	case class == ClassDirect:
		m.placeDirect(field, *tgtField, value)
	case class == ClassStructural && m.strat.Structural:
		m.placeStructural(field, *tgtField, value)
	case class == ClassCoercion && m.strat.Coerce:
		m.placeCoerced(field, *tgtField, value)
	default:
		m.drop(field, class)
	}
}

func (m *migration) placeDirect(field, tgtField registry.FieldSpec, value any) {
	placed := block.CloneValue(value)

	if tgtField.Type == registry.FieldList && len(tgtField.Items) > 0 {
		if list, ok := placed.([]any); ok {
			placed, _ = conformItems(tgtField, list)
		}
	}

	block.Set(m.out, block.ParsePath(tgtField.Path), placed)
	m.filled[tgtField.Path] = true
	m.migrated = append(m.migrated, field.Path)
}

func (m *migration) placeStructural(field, tgtField registry.FieldSpec, value any) {
	switch {
	case field.Role == registry.RoleGridItems:
		list, ok := value.([]any)
		if !ok {
			m.drop(field, ClassStructural)
			return
		}

		placed, _ := conformItems(tgtField, list)
		block.Set(m.out, block.ParsePath(tgtField.Path), placed)
		m.filled[tgtField.Path] = true
		m.transformed = append(m.transformed, field.Path)

	case tgtField.Role == registry.RoleButtonList:
		m.appendButton(field, tgtField, value)

	case field.Role == registry.RoleButtonList:
		m.splitButtonList(field, tgtField, value)

	default:
		// Secondary button claiming the primary slot.
		button, ok := value.(map[string]any)
		if !ok || block.ButtonFromMap(button).IsEmpty() {
			m.drop(field, ClassStructural)
			return
		}

		block.Set(m.out, block.ParsePath(tgtField.Path), block.CloneValue(value))
		m.filled[tgtField.Path] = true
		m.transformed = append(m.transformed, field.Path)
	}
}

// appendButton merges a single button field into the target's button
// list, preserving source order (primary before secondary, since that
// is schema order).
func (m *migration) appendButton(field, tgtField registry.FieldSpec, value any) {
	button, ok := value.(map[string]any)
	if !ok || block.ButtonFromMap(button).IsEmpty() {
		m.drop(field, ClassStructural)
		return
	}

	path := block.ParsePath(tgtField.Path)

	var list []any
	if existing, ok := block.Get(m.out, path); ok {
		list, _ = existing.([]any)
	}

	list = append(list, block.CloneValue(button))
	block.Set(m.out, path, list)
	m.filled[tgtField.Path] = true
	m.transformed = append(m.transformed, field.Path)
}

// splitButtonList maps a button list onto the target's single button
// slots: first non-empty button wins the primary slot, the next one
// the secondary slot when the target declares it.
func (m *migration) splitButtonList(field, primarySlot registry.FieldSpec, value any) {
	list, ok := value.([]any)
	if !ok {
		m.drop(field, ClassStructural)
		return
	}

	var nonEmpty []map[string]any

	for _, item := range list {
		button, ok := item.(map[string]any)
		if !ok || block.ButtonFromMap(button).IsEmpty() {
			continue
		}

		nonEmpty = append(nonEmpty, button)
	}

	if len(nonEmpty) == 0 {
		m.drop(field, ClassStructural)
		return
	}

	block.Set(m.out, block.ParsePath(primarySlot.Path), block.CloneValue(nonEmpty[0]))
	m.filled[primarySlot.Path] = true

	if len(nonEmpty) > 1 {
		if slots := m.tgt.FieldsByRole(registry.RoleSecondaryButton); len(slots) > 0 && !m.filled[slots[0].Path] {
			block.Set(m.out, block.ParsePath(slots[0].Path), block.CloneValue(nonEmpty[1]))
			m.filled[slots[0].Path] = true
		} else {
			m.diags.AddWarning("buttons_truncated",
				fmt.Sprintf("%q holds %d buttons but %q offers a single button slot; extra buttons were dropped",
					field.Path, len(nonEmpty), m.tgt.ID), m.pair, field.Path)
		}
	}

	m.transformed = append(m.transformed, field.Path)
}

func (m *migration) placeCoerced(field, tgtField registry.FieldSpec, value any) {
	if m.filled[tgtField.Path] || m.claimed[tgtField.Path] {
		// A better-matched source field owns the slot.
		m.drop(field, ClassCoercion)
		return
	}

	path := block.ParsePath(tgtField.Path)

	switch {
	case field.Role == registry.RoleMedia && tgtField.Role == registry.RoleMediaList:
		block.Set(m.out, path, []any{block.CloneValue(value)})

	case field.Role == registry.RoleMediaList && tgtField.Role == registry.RoleMedia:
		list, ok := value.([]any)
		if !ok || len(list) == 0 {
			m.drop(field, ClassCoercion)
			return
		}

		block.Set(m.out, path, block.CloneValue(list[0]))

		if len(list) > 1 {
			m.diags.AddWarning("media_truncated",
				fmt.Sprintf("%q holds %d media items but %q shows one; only the first was kept",
					field.Path, len(list), m.tgt.ID), m.pair, field.Path)
		}

	case field.Role == registry.RoleMedia && tgtField.Role == registry.RoleBackground:
		media, ok := value.(map[string]any)
		if !ok {
			m.drop(field, ClassCoercion)
			return
		}

		kind := block.BackgroundImage
		if block.MediaFromMap(media).Kind == block.MediaVideo {
			kind = block.BackgroundVideo
		}

		block.Set(m.out, path, map[string]any{
			"kind":     kind,
			"color":    "",
			"gradient": "",
			"media":    block.CloneValue(media),
		})

	case field.Role == registry.RoleBackground && tgtField.Role == registry.RoleMedia:
		bg, ok := value.(map[string]any)
		if !ok {
			m.drop(field, ClassCoercion)
			return
		}

		media, ok := bg["media"].(map[string]any)
		if !ok {
			// A solid or gradient background has nothing to carry.
			m.drop(field, ClassCoercion)
			return
		}

		block.Set(m.out, path, block.CloneValue(media))

	case field.Role == registry.RoleDescription && tgtField.Role == registry.RoleSubtitle:
		text, _ := value.(string)
		block.Set(m.out, path, block.TextBlock{Text: text, Tag: "p"}.Map())

	case field.Role == registry.RoleSubtitle && tgtField.Role == registry.RoleDescription:
		sub, ok := value.(map[string]any)
		if !ok {
			m.drop(field, ClassCoercion)
			return
		}

		block.Set(m.out, path, block.TextBlockFromMap(sub).Text)

	default:
		m.drop(field, ClassCoercion)
		return
	}

	m.filled[tgtField.Path] = true
	m.transformed = append(m.transformed, field.Path)
}

// drop records a source field whose value is discarded. Dropping
// authored content gets a warning; cosmetic fields go quietly.
func (m *migration) drop(field registry.FieldSpec, class MappingClass) {
	m.dropped = append(m.dropped, field.Path)

	if field.Role.IsCore() {
		msg := fmt.Sprintf("%q has no equivalent in %q; its content will be lost", field.Path, m.tgt.ID)

		gated := (class == ClassStructural && !m.strat.Structural) ||
			(class == ClassCoercion && !m.strat.Coerce)
		if gated {
			msg = fmt.Sprintf("%q could map to %q via a %s transform, but the %q strategy does not allow it",
				field.Path, m.tgt.ID, class, m.strat.Name)
		}

		m.diags.AddWarning("content_dropped", msg, m.pair, field.Path)
	}
}

// conformItems reshapes record-list items to the target item schema:
// undeclared item fields are trimmed, required item fields filled from
// the item default. The second return reports whether anything changed.
func conformItems(tgtField registry.FieldSpec, list []any) ([]any, bool) {
	declared := make(map[string]bool, len(tgtField.Items))
	for _, item := range tgtField.Items {
		declared[item.Path] = true
	}

	changed := false
	out := make([]any, 0, len(list))

	for _, raw := range list {
		item, ok := raw.(map[string]any)
		if !ok {
			changed = true
			continue
		}

		conformed := make(map[string]any, len(item))

		for key, val := range item {
			if !declared[key] {
				changed = true
				continue
			}

			conformed[key] = block.CloneValue(val)
		}

		for _, spec := range tgtField.Items {
			if _, present := conformed[spec.Path]; present {
				continue
			}

			if spec.Required && spec.Default != nil {
				conformed[spec.Path] = block.CloneValue(spec.Default)
				changed = true
			}
		}

		out = append(out, conformed)
	}

	return out, changed
}
