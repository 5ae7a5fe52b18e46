package skills

import "fmt"

// Category is the closed set of skill categories the backend recognizes.
type Category string

const (
	CategoryTechnical Category = "technical"
	CategorySoft      Category = "soft"
	CategoryHard      Category = "hard"
)

// Categories lists all categories in stable rendering order.
var Categories = []Category{CategoryTechnical, CategorySoft, CategoryHard}

// ClassifyCategory maps a raw category label to one of the three fixed
// categories. Unknown, empty, or missing labels default to technical,
// matching the extraction service's dominant output. Case-insensitive.
func ClassifyCategory(raw string) Category {
	switch Normalize(raw) {
	case "soft", "interpersonal":
		return CategorySoft
	case "hard", "domain":
		return CategoryHard
	default:
		return CategoryTechnical
	}
}

// ParseCategory strictly parses a user-supplied category label.
// Unlike ClassifyCategory it rejects unknown labels instead of defaulting,
// so CLI flag typos surface as errors rather than silent reclassification.
func ParseCategory(raw string) (Category, error) {
	switch Normalize(raw) {
	case "technical":
		return CategoryTechnical, nil
	case "soft":
		return CategorySoft, nil
	case "hard":
		return CategoryHard, nil
	default:
		return "", fmt.Errorf("unknown skill category %q (expected technical, soft, or hard)", raw)
	}
}
