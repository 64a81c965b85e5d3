package config

import "strings"

// PaintingTags is the built-in catalog of service categories offered as
// hints to the analysis model.
var PaintingTags = []string{
	"Interior House Painting",
	"Exterior House Painting",
	"Deck Painting",
	"Deck Staining",
	"Fence Painting",
	"Fence Staining",
	"Interior Commercial Painting",
	"Exterior Commercial Painting",
	"Arbor Painting",
	"Gazebo Painting",
	"Shed Painting",
	"Shed Staining",
	"Playhouse Staining",
	"Barn Painting",
	"School Painting",
	"Hospital Painting",
	"Medical Facility Painting",
	"Hotel & Motel Painting",
	"Apartment Complex Painting",
	"Restaurant Painting",
	"Church Painting",
	"Religious Building Painting",
	"Gym Painting",
	"Fitness Center Painting",
	"Retail Store Painting",
	"Storefront Painting",
	"Office Painting",
	"Cabinet Painting",
	"Epoxy Floor Coating",
	"Epoxy Countertop Coating",
	"Popcorn Ceiling Removal",
	"Concrete Coating",
	"Pressure Washing",
}

// ResolveTags turns the --tags flag value into a hint list. Empty means
// no hints, "all" selects the whole catalog, anything else is treated as
// a comma-separated free-form list.
func ResolveTags(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if strings.EqualFold(raw, "all") {
		out := make([]string, len(PaintingTags))
		copy(out, PaintingTags)
		return out
	}
	var tags []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			tags = append(tags, part)
		}
	}
	return tags
}
