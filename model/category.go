package model

// Category classifies a requirement by the kind of need it expresses.
// The set is closed: regulated projects audit requirements by category,
// so free-form values are rejected at construction time.
type Category string

const (
	CategoryFunctional      Category = "functional"
	CategorySecurity        Category = "security"
	CategoryPerformance     Category = "performance"
	CategoryUsability       Category = "usability"
	CategoryReliability     Category = "reliability"
	CategoryMaintainability Category = "maintainability"
	CategoryPortability     Category = "portability"
	CategoryRegulatory      Category = "regulatory"
	CategorySafety          Category = "safety"
)

// Categories lists every valid requirement category in display order.
var Categories = []Category{
	CategoryFunctional,
	CategorySecurity,
	CategoryPerformance,
	CategoryUsability,
	CategoryReliability,
	CategoryMaintainability,
	CategoryPortability,
	CategoryRegulatory,
	CategorySafety,
}

// IsValid checks if a category is a member of the closed set.
func (c Category) IsValid() bool {
	switch c {
	case CategoryFunctional, CategorySecurity, CategoryPerformance,
		CategoryUsability, CategoryReliability, CategoryMaintainability,
		CategoryPortability, CategoryRegulatory, CategorySafety:
		return true
	}
	return false
}

// String returns the string representation of the category.
func (c Category) String() string {
	return string(c)
}
