// Package entity contains the core business objects of the project.
package entity

// Category is the closed set of product categories understood by pricing rules and filters.
type Category string

const (
	// CategoryFresh covers perishable fresh goods.
	CategoryFresh Category = "fresh"
	// CategoryFrozen covers frozen goods.
	CategoryFrozen Category = "frozen"
	// CategoryCanned covers canned goods.
	CategoryCanned Category = "canned"
	// CategoryOther covers everything else.
	CategoryOther Category = "other"

	// CategoryAll is a filter value only; no product carries it.
	CategoryAll Category = "all"
)

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the Category is a product category.
func (c Category) IsValid() bool {
	switch c {
	case CategoryFresh, CategoryFrozen, CategoryCanned, CategoryOther:
		return true
	default:
		return false
	}
}

// IsAll reports whether the value selects every category.
func (c Category) IsAll() bool {
	return c == "" || c == CategoryAll
}

// IsValidFilter checks if the Category can be used as a filter.
func (c Category) IsValidFilter() bool {
	return c.IsAll() || c.IsValid()
}
