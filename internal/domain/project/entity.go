package project

import (
	"fmt"
	"strings"
	"time"
)

// Project is a display-level grouping for tasks. Tracker fields are the
// optional issue-tracker integration used to build per-task links.
type Project struct {
	ID             string
	Name           string
	TrackerBaseURL *string
	TrackerKey     *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasTracker reports whether the issue-tracker integration is configured.
func (p Project) HasTracker() bool {
	return p.TrackerBaseURL != nil && *p.TrackerBaseURL != "" &&
		p.TrackerKey != nil && *p.TrackerKey != ""
}

// TrackerLink builds the external issue URL for a task number. Pure
// string concatenation; an unconfigured integration yields "".
func (p Project) TrackerLink(number int) string {
	if !p.HasTracker() {
		return ""
	}
	base := strings.TrimSuffix(*p.TrackerBaseURL, "/")
	return fmt.Sprintf("%s/browse/%s-%d", base, *p.TrackerKey, number)
}
