package leave

import "errors"

var (
	ErrInvalidCategory = errors.New("invalid leave category")
)

// ValidCategory reports whether a category belongs to the closed set.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryVacation, CategorySick, CategoryPersonal, CategoryOther:
		return true
	}
	return false
}
