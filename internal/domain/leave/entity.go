package leave

import (
	"time"

	"github.com/worklens/worklens-backend-go/internal/pkg/validator"
)

// Category classifies an absence. The analytics engine only counts the
// date; the category passes through untouched.
type Category string

const (
	CategoryVacation Category = "vacation"
	CategorySick     Category = "sick"
	CategoryPersonal Category = "personal"
	CategoryOther    Category = "other"
)

// Leave is a single absence day, with the date kept in its ISO string
// form exactly as supplied by the source system.
type Leave struct {
	ID       string
	Date     string // YYYY-MM-DD
	Category Category

	CreatedAt time.Time
}

// ParseDate parses the ISO date. The boolean is false for malformed
// dates; callers skip those records instead of aborting.
func (l Leave) ParseDate() (time.Time, bool) {
	return validator.IsValidDate(l.Date)
}
