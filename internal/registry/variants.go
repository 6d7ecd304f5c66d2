package registry

import "heroblock/internal/block"

// The functions below are pure factories: every call builds a fresh
// value graph, so no two schemas or default instances ever share a
// nested map.

func placeholderImage() block.Media {
	return block.Media{
		URL:      "https://placehold.co/1200x800",
		Kind:     block.MediaImage,
		Alt:      "Placeholder image",
		Fit:      "cover",
		Priority: "auto",
	}
}

func primaryButton(text string) block.Button {
	return block.Button{
		Text:    text,
		URL:     "#",
		Style:   "primary",
		Size:    "md",
		IconPos: "none",
		Target:  "_self",
	}
}

func secondaryButton(text string) block.Button {
	b := primaryButton(text)
	b.Style = "outline"

	return b
}

func solidBackground(color string) block.Background {
	return block.Background{Kind: block.BackgroundSolid, Color: color}
}

func titleBlock(text, tag string) block.TextBlock {
	return block.TextBlock{Text: text, Tag: tag}
}

// Shared item shapes.

func gridItemSpecs(withLink bool) []FieldSpec {
	items := []FieldSpec{
		{Path: "icon", Type: FieldText, Label: "Icon", Default: "star"},
		{Path: "title", Type: FieldText, Required: true, Label: "Title", Default: "Item"},
		{Path: "description", Type: FieldText, Label: "Description", Default: ""},
	}
	if withLink {
		items = append(items, FieldSpec{Path: "link", Type: FieldURL, Label: "Link", Default: "#"})
	}

	return items
}

func testimonialItemSpecs() []FieldSpec {
	return []FieldSpec{
		{Path: "quote", Type: FieldText, Required: true, Label: "Quote", Default: ""},
		{Path: "author", Type: FieldText, Required: true, Label: "Author", Default: ""},
		{Path: "role", Type: FieldText, Label: "Role", Default: ""},
		{Path: "avatar", Type: FieldMedia, Label: "Avatar", Default: placeholderImage().Map()},
	}
}

func gridItem(icon, title, description string) map[string]any {
	return map[string]any{"icon": icon, "title": title, "description": description}
}

func serviceItem(icon, title, description, link string) map[string]any {
	item := gridItem(icon, title, description)
	item["link"] = link

	return item
}

func testimonialItem(quote, author, role string) map[string]any {
	return map[string]any{
		"quote":  quote,
		"author": author,
		"role":   role,
		"avatar": placeholderImage().Map(),
	}
}

// schemaFor dispatches to the per-variant schema constructor. The
// switch is exhaustive over the closed variant set; the registry
// self-check fails loudly if a new variant is added without a schema.
func schemaFor(id block.VariantID) (VariantSchema, bool) {
	switch id {
	case block.VariantCentered:
		return centeredSchema(), true
	case block.VariantSplitScreen:
		return splitScreenSchema(), true
	case block.VariantVideoBackground:
		return videoBackgroundSchema(), true
	case block.VariantMinimal:
		return minimalSchema(), true
	case block.VariantFeatureGrid:
		return featureGridSchema(), true
	case block.VariantTestimonialCarousel:
		return testimonialCarouselSchema(), true
	case block.VariantProductShowcase:
		return productShowcaseSchema(), true
	case block.VariantServiceGrid:
		return serviceGridSchema(), true
	case block.VariantCallToAction:
		return callToActionSchema(), true
	case block.VariantImageGallery:
		return imageGallerySchema(), true
	default:
		return VariantSchema{}, false
	}
}

func centeredSchema() VariantSchema {
	return VariantSchema{
		ID:    block.VariantCentered,
		Label: "Centered",
		Fields: []FieldSpec{
			{Path: "title", Type: FieldObject, Object: ObjectText, Role: RoleTitle, Required: true,
				Label: "Title", Group: "content", Default: titleBlock("Welcome to Our Platform", "h1").Map()},
			{Path: "subtitle", Type: FieldObject, Object: ObjectText, Role: RoleSubtitle,
				Label: "Subtitle", Group: "content", Default: titleBlock("", "p").Map()},
			{Path: "description", Type: FieldText, Role: RoleDescription,
				Label: "Description", Group: "content", Default: "Build something great today."},
			{Path: "primaryButton", Type: FieldObject, Object: ObjectButton, Role: RolePrimaryButton, Required: true,
				Label: "Primary button", Group: "actions", Default: primaryButton("Get Started").Map()},
			{Path: "secondaryButton", Type: FieldObject, Object: ObjectButton, Role: RoleSecondaryButton,
				Label: "Secondary button", Group: "actions", Default: secondaryButton("Learn More").Map()},
			{Path: "background", Type: FieldObject, Object: ObjectBackground, Role: RoleBackground, Required: true,
				Label: "Background", Group: "style", Default: solidBackground("#ffffff").Map()},
			{Path: "textAlign", Type: FieldText, Role: RoleAlignment,
				Label: "Text alignment", Group: "style", Default: "center"},
			{Path: "contentWidth", Type: FieldText, Role: RoleWidth,
				Label: "Content width", Group: "style", Default: "normal"},
		},
		Dependencies: []VisibilityRule{
			{Field: "secondaryButton", DependsOn: "primaryButton", Cond: CondNonEmpty},
		},
	}
}

func splitScreenSchema() VariantSchema {
	return VariantSchema{
		ID:    block.VariantSplitScreen,
		Label: "Split media / text",
		Fields: []FieldSpec{
			{Path: "content.title", Type: FieldObject, Object: ObjectText, Role: RoleTitle, Required: true,
				Label: "Title", Group: "content", Default: titleBlock("Tell your story", "h1").Map()},
			{Path: "content.subtitle", Type: FieldObject, Object: ObjectText, Role: RoleSubtitle,
				Label: "Subtitle", Group: "content", Default: titleBlock("", "p").Map()},
			{Path: "content.description", Type: FieldText, Role: RoleDescription,
				Label: "Description", Group: "content", Default: "Pair a strong visual with your message."},
			{Path: "content.buttons", Type: FieldList, ItemType: FieldObject, ItemObject: ObjectButton,
				Role: RoleButtonList, Label: "Buttons", Group: "actions",
				Default: []any{primaryButton("Get Started").Map()}},
			{Path: "media", Type: FieldMedia, Role: RoleMedia, Required: true,
				Label: "Media", Group: "media", Default: placeholderImage().Map()},
			{Path: "mediaPosition", Type: FieldText, Role: RoleMediaPosition,
				Label: "Media position", Group: "style", Default: "right"},
			{Path: "background", Type: FieldObject, Object: ObjectBackground, Role: RoleBackground, Required: true,
				Label: "Background", Group: "style", Default: solidBackground("#ffffff").Map()},
		},
		Dependencies: []VisibilityRule{
			{Field: "mediaPosition", DependsOn: "media", Cond: CondNonEmpty},
		},
	}
}

func videoBackgroundSchema() VariantSchema {
	video := block.Media{URL: "", Kind: block.MediaVideo, Fit: "cover", Priority: "high"}

	return VariantSchema{
		ID:    block.VariantVideoBackground,
		Label: "Video background",
		Fields: []FieldSpec{
			{Path: "title", Type: FieldObject, Object: ObjectText, Role: RoleTitle, Required: true,
				Label: "Title", Group: "content", Default: titleBlock("Experience it in motion", "h1").Map()},
			{Path: "description", Type: FieldText, Role: RoleDescription,
				Label: "Description", Group: "content", Default: ""},
			{Path: "primaryButton", Type: FieldObject, Object: ObjectButton, Role: RolePrimaryButton,
				Label: "Primary button", Group: "actions", Default: primaryButton("Watch Now").Map()},
			{Path: "video", Type: FieldMedia, Role: RoleMedia, Required: true,
				Label: "Background video", Group: "media", Default: video.Map()},
			{Path: "overlay", Type: FieldObject, Object: ObjectOverlay, Role: RoleOverlay,
				Label: "Overlay", Group: "style",
				Default: map[string]any{"color": "#000000", "opacity": 0.5}},
			{Path: "textAlign", Type: FieldText, Role: RoleAlignment,
				Label: "Text alignment", Group: "style", Default: "center"},
		},
		Dependencies: []VisibilityRule{
			{Field: "overlay", DependsOn: "video", Cond: CondNonEmpty},
		},
	}
}

func minimalSchema() VariantSchema {
	return VariantSchema{
		ID:    block.VariantMinimal,
		Label: "Minimal",
		Fields: []FieldSpec{
			{Path: "title", Type: FieldObject, Object: ObjectText, Role: RoleTitle, Required: true,
				Label: "Title", Group: "content", Default: titleBlock("Less is more", "h1").Map()},
			{Path: "button", Type: FieldObject, Object: ObjectButton, Role: RolePrimaryButton,
				Label: "Button", Group: "actions", Default: primaryButton("Get Started").Map()},
			{Path: "alignment", Type: FieldText, Role: RoleAlignment,
				Label: "Alignment", Group: "style", Default: "left"},
			{Path: "spacing", Type: FieldText, Role: RoleSpacing,
				Label: "Spacing", Group: "style", Default: "normal"},
		},
	}
}

func featureGridSchema() VariantSchema {
	return VariantSchema{
		ID:    block.VariantFeatureGrid,
		Label: "Feature grid",
		Fields: []FieldSpec{
			{Path: "title", Type: FieldObject, Object: ObjectText, Role: RoleTitle, Required: true,
				Label: "Title", Group: "content", Default: titleBlock("Everything you need", "h2").Map()},
			{Path: "description", Type: FieldText, Role: RoleDescription,
				Label: "Description", Group: "content", Default: ""},
			{Path: "features", Type: FieldList, ItemType: FieldObject, Items: gridItemSpecs(false),
				Role: RoleGridItems, Required: true, Label: "Features", Group: "content",
				Default: []any{
					gridItem("zap", "Fast", "Ready in seconds."),
					gridItem("shield", "Secure", "Your data stays yours."),
					gridItem("layers", "Flexible", "Compose it your way."),
				}},
			{Path: "columns", Type: FieldNumber, Role: RoleColumns,
				Label: "Columns", Group: "style", Default: float64(3)},
			{Path: "primaryButton", Type: FieldObject, Object: ObjectButton, Role: RolePrimaryButton,
				Label: "Primary button", Group: "actions", Default: primaryButton("See All Features").Map()},
			{Path: "background", Type: FieldObject, Object: ObjectBackground, Role: RoleBackground,
				Label: "Background", Group: "style", Default: solidBackground("#f8fafc").Map()},
		},
	}
}

func testimonialCarouselSchema() VariantSchema {
	return VariantSchema{
		ID:    block.VariantTestimonialCarousel,
		Label: "Testimonial carousel",
		Fields: []FieldSpec{
			{Path: "title", Type: FieldObject, Object: ObjectText, Role: RoleTitle, Required: true,
				Label: "Title", Group: "content", Default: titleBlock("Loved by our customers", "h2").Map()},
			{Path: "subtitle", Type: FieldObject, Object: ObjectText, Role: RoleSubtitle,
				Label: "Subtitle", Group: "content", Default: titleBlock("", "p").Map()},
			{Path: "testimonials", Type: FieldList, ItemType: FieldObject, Items: testimonialItemSpecs(),
				Role: RoleTestimonials, Required: true, Label: "Testimonials", Group: "content",
				Default: []any{
					testimonialItem("This changed how our team works.", "Alex Rivera", "Engineering Lead"),
				}},
			{Path: "autoRotate", Type: FieldBoolean, Role: RoleAutoRotate,
				Label: "Auto-rotate", Group: "behavior", Default: true},
			{Path: "interval", Type: FieldNumber, Role: RoleInterval,
				Label: "Rotation interval (ms)", Group: "behavior", Default: float64(5000)},
		},
		Dependencies: []VisibilityRule{
			{Field: "interval", DependsOn: "autoRotate", Cond: CondEquals, Value: true},
		},
	}
}

func productShowcaseSchema() VariantSchema {
	return VariantSchema{
		ID:    block.VariantProductShowcase,
		Label: "Product showcase",
		Fields: []FieldSpec{
			{Path: "title", Type: FieldObject, Object: ObjectText, Role: RoleTitle, Required: true,
				Label: "Title", Group: "content", Default: titleBlock("Meet the product", "h1").Map()},
			{Path: "description", Type: FieldText, Role: RoleDescription,
				Label: "Description", Group: "content", Default: ""},
			{Path: "media", Type: FieldMedia, Role: RoleMedia, Required: true,
				Label: "Product image", Group: "media", Default: placeholderImage().Map()},
			{Path: "price", Type: FieldText, Role: RolePrice,
				Label: "Price", Group: "content", Default: ""},
			{Path: "primaryButton", Type: FieldObject, Object: ObjectButton, Role: RolePrimaryButton, Required: true,
				Label: "Primary button", Group: "actions", Default: primaryButton("Buy Now").Map()},
			{Path: "features", Type: FieldList, ItemType: FieldObject, Items: gridItemSpecs(false),
				Role: RoleGridItems, Label: "Highlights", Group: "content", Default: []any{}},
			{Path: "background", Type: FieldObject, Object: ObjectBackground, Role: RoleBackground,
				Label: "Background", Group: "style", Default: solidBackground("#ffffff").Map()},
		},
		Dependencies: []VisibilityRule{
			{Field: "price", DependsOn: "primaryButton", Cond: CondNonEmpty},
		},
	}
}

func serviceGridSchema() VariantSchema {
	return VariantSchema{
		ID:    block.VariantServiceGrid,
		Label: "Service grid",
		Fields: []FieldSpec{
			{Path: "title", Type: FieldObject, Object: ObjectText, Role: RoleTitle, Required: true,
				Label: "Title", Group: "content", Default: titleBlock("What we do", "h2").Map()},
			{Path: "description", Type: FieldText, Role: RoleDescription,
				Label: "Description", Group: "content", Default: ""},
			{Path: "services", Type: FieldList, ItemType: FieldObject, Items: gridItemSpecs(true),
				Role: RoleGridItems, Required: true, Label: "Services", Group: "content",
				Default: []any{
					serviceItem("compass", "Strategy", "Plans that hold up.", "#"),
					serviceItem("pen-tool", "Design", "Interfaces people enjoy.", "#"),
					serviceItem("code", "Engineering", "Shipped, not slides.", "#"),
				}},
			{Path: "columns", Type: FieldNumber, Role: RoleColumns,
				Label: "Columns", Group: "style", Default: float64(3)},
			{Path: "background", Type: FieldObject, Object: ObjectBackground, Role: RoleBackground,
				Label: "Background", Group: "style", Default: solidBackground("#ffffff").Map()},
		},
	}
}

func callToActionSchema() VariantSchema {
	return VariantSchema{
		ID:    block.VariantCallToAction,
		Label: "Call to action",
		Fields: []FieldSpec{
			{Path: "title", Type: FieldObject, Object: ObjectText, Role: RoleTitle, Required: true,
				Label: "Title", Group: "content", Default: titleBlock("Ready to get started?", "h2").Map()},
			{Path: "description", Type: FieldText, Role: RoleDescription,
				Label: "Description", Group: "content", Default: "Join thousands of teams already on board."},
			{Path: "urgencyText", Type: FieldText, Role: RoleEyebrow,
				Label: "Urgency text", Group: "content", Default: ""},
			{Path: "primaryButton", Type: FieldObject, Object: ObjectButton, Role: RolePrimaryButton, Required: true,
				Label: "Primary button", Group: "actions", Default: primaryButton("Start Free Trial").Map()},
			{Path: "secondaryButton", Type: FieldObject, Object: ObjectButton, Role: RoleSecondaryButton,
				Label: "Secondary button", Group: "actions", Default: secondaryButton("Talk to Sales").Map()},
			{Path: "background", Type: FieldObject, Object: ObjectBackground, Role: RoleBackground, Required: true,
				Label: "Background", Group: "style", Default: solidBackground("#0f172a").Map()},
		},
		Dependencies: []VisibilityRule{
			{Field: "secondaryButton", DependsOn: "primaryButton", Cond: CondNonEmpty},
		},
	}
}

func imageGallerySchema() VariantSchema {
	return VariantSchema{
		ID:    block.VariantImageGallery,
		Label: "Image gallery",
		Fields: []FieldSpec{
			{Path: "title", Type: FieldObject, Object: ObjectText, Role: RoleTitle,
				Label: "Title", Group: "content", Default: titleBlock("Gallery", "h2").Map()},
			{Path: "description", Type: FieldText, Role: RoleDescription,
				Label: "Description", Group: "content", Default: ""},
			{Path: "images", Type: FieldList, ItemType: FieldMedia, Role: RoleMediaList, Required: true,
				Label: "Images", Group: "media",
				Default: []any{
					placeholderImage().Map(),
					placeholderImage().Map(),
					placeholderImage().Map(),
				}},
			{Path: "layout", Type: FieldText, Role: RoleLayout,
				Label: "Layout", Group: "style", Default: "grid"},
			{Path: "columns", Type: FieldNumber, Role: RoleColumns,
				Label: "Columns", Group: "style", Default: float64(3)},
			{Path: "lightbox", Type: FieldBoolean, Role: RoleLightbox,
				Label: "Lightbox", Group: "behavior", Default: true},
		},
		Dependencies: []VisibilityRule{
			{Field: "columns", DependsOn: "layout", Cond: CondEquals, Value: "grid"},
		},
	}
}
