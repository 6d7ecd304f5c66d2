// Package block defines the core data model of the hero-block engine:
// the closed set of variant identifiers, the block instance value, the
// shared descriptor records, and dotted prop paths for navigating
// variant-specific content.
package block

// VariantID identifies one of the ten structural shapes a hero block
// may take. The set is closed; ids double as wire identifiers.
type VariantID string

const (
	VariantCentered            VariantID = "centered"
	VariantSplitScreen         VariantID = "split-screen"
	VariantVideoBackground     VariantID = "video-background"
	VariantMinimal             VariantID = "minimal"
	VariantFeatureGrid         VariantID = "feature-grid"
	VariantTestimonialCarousel VariantID = "testimonial-carousel"
	VariantProductShowcase     VariantID = "product-showcase"
	VariantServiceGrid         VariantID = "service-grid"
	VariantCallToAction        VariantID = "call-to-action"
	VariantImageGallery        VariantID = "image-gallery"
)

// allVariants lists every variant in canonical (catalog) order.
var allVariants = []VariantID{
	VariantCentered,
	VariantSplitScreen,
	VariantVideoBackground,
	VariantMinimal,
	VariantFeatureGrid,
	VariantTestimonialCarousel,
	VariantProductShowcase,
	VariantServiceGrid,
	VariantCallToAction,
	VariantImageGallery,
}

// AllVariants returns the variant identifiers in canonical order.
// The returned slice is a fresh copy.
func AllVariants() []VariantID {
	out := make([]VariantID, len(allVariants))
	copy(out, allVariants)

	return out
}

// IsValid returns true if v is one of the ten known variants.
func (v VariantID) IsValid() bool {
	for _, known := range allVariants {
		if v == known {
			return true
		}
	}

	return false
}

// String returns the wire identifier.
func (v VariantID) String() string {
	return string(v)
}
