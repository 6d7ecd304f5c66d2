// Package compat classifies how well one hero-block variant maps onto
// another. Verdicts for all 100 ordered pairs are derived once, at
// package init, from the same role-correspondence table the migrator
// uses, so the classifier can never promise a mapping the migrator
// will not perform. Classify itself is a table lookup and is cheap
// enough to call on every UI hover.
package compat

import (
	"fmt"

	"heroblock/internal/block"
	"heroblock/internal/diagnostic"
	"heroblock/internal/migrate"
	"heroblock/internal/registry"
)

// Tier is the compatibility level of a variant pair.
type Tier int

const (
	// TierLow means the field sets are largely disjoint.
	TierLow Tier = iota
	// TierMedium means the pair shares its category but differs in
	// cardinality or nesting.
	TierMedium
	// TierHigh means most core fields carry over unchanged.
	TierHigh
)

const (
	tierLowStr    = "low"
	tierMediumStr = "medium"
	tierHighStr   = "high"
)

// String returns the wire name of the tier.
func (t Tier) String() string {
	switch t {
	case TierHigh:
		return tierHighStr
	case TierMedium:
		return tierMediumStr
	case TierLow:
		return tierLowStr
	default:
		return "unknown"
	}
}

// Score returns a numeric score for sorting (higher is better).
func (t Tier) Score() int {
	return int(t)
}

// Risk is the data-loss risk of a migration across a pair.
type Risk int

const (
	RiskLow Risk = iota
	RiskMedium
	RiskHigh
)

// String returns the wire name of the risk level.
func (r Risk) String() string {
	switch r {
	case RiskLow:
		return tierLowStr
	case RiskMedium:
		return tierMediumStr
	case RiskHigh:
		return tierHighStr
	default:
		return "unknown"
	}
}

// Verdict is the precomputed assessment of an ordered variant pair.
type Verdict struct {
	Source          block.VariantID `json:"source"`
	Target          block.VariantID `json:"target"`
	Tier            Tier            `json:"-"`
	Risk            Risk            `json:"-"`
	TierName        string          `json:"compatibility"`
	RiskName        string          `json:"dataLossRisk"`
	Warnings        []string        `json:"warnings"`
	Recommendations []string        `json:"recommendations"`
}

type pairKey struct {
	source, target block.VariantID
}

// table holds all 100 verdicts, keyed by ordered pair. Built once at
// init and read-only afterwards.
var table = buildTable()

// Classify returns the verdict for an ordered variant pair. Both ids
// must be known variants.
func Classify(source, target block.VariantID) (Verdict, error) {
	verdict, ok := table[pairKey{source, target}]
	if !ok {
		if !source.IsValid() {
			return Verdict{}, fmt.Errorf("%w: %q", registry.ErrUnknownVariant, source)
		}

		return Verdict{}, fmt.Errorf("%w: %q", registry.ErrUnknownVariant, target)
	}

	// Hand out copies so callers cannot mutate the table.
	verdict.Warnings = append([]string(nil), verdict.Warnings...)
	verdict.Recommendations = append([]string(nil), verdict.Recommendations...)

	return verdict, nil
}

func buildTable() map[pairKey]Verdict {
	schemas := registry.All()
	out := make(map[pairKey]Verdict, len(schemas)*len(schemas))

	for i := range schemas {
		for j := range schemas {
			src, tgt := &schemas[i], &schemas[j]
			out[pairKey{src.ID, tgt.ID}] = buildVerdict(src, tgt)
		}
	}

	return out
}

func buildVerdict(src, tgt *registry.VariantSchema) Verdict {
	verdict := Verdict{Source: src.ID, Target: tgt.ID}

	if src.ID == tgt.ID {
		// Same-variant switches are trivially safe.
		verdict.Tier, verdict.Risk = TierHigh, RiskLow
		verdict.TierName, verdict.RiskName = verdict.Tier.String(), verdict.Risk.String()

		return verdict
	}

	profile := migrate.ProfilePair(src, tgt)
	verdict.Tier = tierFor(profile)
	verdict.Risk = riskFor(profile)

	diags := &diagnostic.Diagnostics{}
	pair := registry.PairString(src.ID, tgt.ID)

	for _, path := range profile.DroppedCore {
		diags.AddWarning("content_dropped",
			fmt.Sprintf("%q has no equivalent in %q and will be lost", path, tgt.ID), pair, path)
	}

	if profile.StructuralCore > 0 {
		diags.AddRecommendation("review_transforms",
			"some content is restructured during this switch; review merged or split fields afterwards", pair, "")
	}

	if profile.CoercibleCore > 0 {
		diags.AddRecommendation("consider_flexible",
			"choose the flexible strategy to carry over loosely matching content instead of dropping it", pair, "")
	}

	if verdict.Tier == TierLow {
		// A low-tier pair always warns and always recommends.
		if len(diags.Warnings) == 0 {
			diags.AddWarning("largely_disjoint",
				fmt.Sprintf("%q and %q share very little structure; most content will be replaced by defaults",
					src.ID, tgt.ID), pair, "")
		}

		diags.AddRecommendation("duplicate_first",
			"duplicate this block before switching so the original stays recoverable", pair, "")
	}

	verdict.Warnings = diags.WarningMessages()
	verdict.Recommendations = diags.RecommendationMessages()
	verdict.TierName = verdict.Tier.String()
	verdict.RiskName = verdict.Risk.String()

	return verdict
}

// tierFor derives the compatibility tier from a mapping profile.
// Direct carry-overs push the pair toward high; structural reshaping
// caps it at medium; a mostly unmappable pair is low.
func tierFor(p migrate.PairProfile) Tier {
	if p.CoreTotal == 0 {
		return TierLow
	}

	mappable := float64(p.DirectCore+p.StructuralCore) / float64(p.CoreTotal)

	switch {
	case mappable >= 0.75 && p.StructuralCore == 0:
		return TierHigh
	case mappable >= 0.4:
		return TierMedium
	default:
		return TierLow
	}
}

// riskFor derives the data-loss risk. Coercible fields count half:
// they survive only under the flexible strategy.
func riskFor(p migrate.PairProfile) Risk {
	if p.CoreTotal == 0 {
		return RiskHigh
	}

	atRisk := (float64(len(p.DroppedCore)) + 0.5*float64(p.CoercibleCore)) / float64(p.CoreTotal)

	switch {
	case atRisk >= 0.55:
		return RiskHigh
	case atRisk >= 0.25 || p.StructuralCore > 0:
		return RiskMedium
	default:
		return RiskLow
	}
}
