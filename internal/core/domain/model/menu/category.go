package menu

import (
	"fmt"
	"strings"

	"fooddelivery/internal/pkg/errs"
)

// Category is the menu section an item belongs to. The set is fixed.
type Category int

const (
	// UnknownCategory is the zero value and is never valid.
	UnknownCategory Category = iota
	MainCourse
	Appetizer
	Dessert
	Beverage
)

func getCategoryStrings() map[Category]string {
	return map[Category]string{
		MainCourse: "Main Course",
		Appetizer:  "Appetizer",
		Dessert:    "Dessert",
		Beverage:   "Beverage",
	}
}

// Categories lists every valid category in menu order.
func Categories() []Category {
	return []Category{MainCourse, Appetizer, Dessert, Beverage}
}

// ParseCategory maps a display name such as "Main Course" to its Category.
// Matching is exact and case-sensitive.
func ParseCategory(name string) (Category, error) {
	categories := Categories()
	names := make([]string, len(categories))
	for i, category := range categories {
		if category.String() == name {
			return category, nil
		}
		names[i] = category.String()
	}
	return UnknownCategory, errs.NewValueIsInvalidErrorWithCause(
		"category",
		fmt.Errorf("%q is not one of %s", name, strings.Join(names, ", ")),
	)
}

// Validate checks that the category is one of the fixed set.
func (c Category) Validate() error {
	if _, ok := getCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

// String returns the display name, or "Unknown" for invalid values.
func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "Unknown"
}
