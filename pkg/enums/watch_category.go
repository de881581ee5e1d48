package enums

import "fmt"

// WatchCategory classifies a catalog entry.
type WatchCategory string

const (
	WatchCategoryClassic WatchCategory = "Classic"
	WatchCategorySport   WatchCategory = "Sport"
	WatchCategoryDive    WatchCategory = "Dive"
	WatchCategoryAviator WatchCategory = "Aviator"
)

var validWatchCategories = []WatchCategory{
	WatchCategoryClassic,
	WatchCategorySport,
	WatchCategoryDive,
	WatchCategoryAviator,
}

// String implements fmt.Stringer.
func (c WatchCategory) String() string {
	return string(c)
}

// IsValid reports whether the value is a known WatchCategory.
func (c WatchCategory) IsValid() bool {
	for _, candidate := range validWatchCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseWatchCategory converts raw input into a WatchCategory.
func ParseWatchCategory(value string) (WatchCategory, error) {
	for _, candidate := range validWatchCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid watch category %q", value)
}
