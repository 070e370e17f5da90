package eventdesk

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for event dates. Dates are zero-padded
// so lexicographic comparison of two date strings matches chronological
// order, which the derivation pipeline relies on when sorting by date.
const DateLayout = "2006-01-02"

// Category classifies an event. Only the declared constants are ever
// persisted or displayed.
type Category string

// Valid categories.
const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryOther    Category = "other"
)

// IsValid reports whether c is one of the declared categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryWork, CategoryPersonal, CategoryOther:
		return true
	}
	return false
}

// ParseCategory converts a string tag to a Category.
// Returns ErrUnknownCategory for anything outside the tag set.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

// Status is the completion state of an event.
type Status string

// Valid statuses.
const (
	StatusUpcoming  Status = "upcoming"
	StatusCompleted Status = "completed"
)

// IsValid reports whether s is one of the declared statuses.
func (s Status) IsValid() bool {
	return s == StatusUpcoming || s == StatusCompleted
}

// ParseStatus converts a string tag to a Status.
// Returns ErrUnknownStatus for anything outside the tag set.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
	return st, nil
}

// toggled returns the opposite status.
func (s Status) toggled() Status {
	if s == StatusCompleted {
		return StatusUpcoming
	}
	return StatusCompleted
}

// Event is a single calendar entry. The ID is assigned by the Store at
// creation time and never changes afterwards. JSON tags match the
// persisted snapshot format exactly, including the enum string tags.
type Event struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Date     string   `json:"date"`
	Category Category `json:"category"`
	Status   Status   `json:"status"`
}

// ParseDate parses the event's date string using DateLayout.
func (e Event) ParseDate() (time.Time, error) {
	return time.Parse(DateLayout, e.Date)
}

// Draft is an in-progress event without an ID. It is owned by a Form
// until submission; the Store assigns the ID when the draft is added.
type Draft struct {
	Name     string
	Date     string
	Category Category
	Status   Status
}

// NewDraft returns a draft with the default field values: empty name
// and date, work category, upcoming status.
func NewDraft() Draft {
	return Draft{Category: CategoryWork, Status: StatusUpcoming}
}

// Patch describes a partial update to an event. Nil fields are left
// untouched by Store.Edit.
type Patch struct {
	Name     *string
	Date     *string
	Category *Category
	Status   *Status
}

// PatchFromDraft builds a patch that replaces every user-editable field
// with the draft's values. Used when a form submission targets an
// existing event.
func PatchFromDraft(d Draft) Patch {
	return Patch{
		Name:     &d.Name,
		Date:     &d.Date,
		Category: &d.Category,
		Status:   &d.Status,
	}
}

// apply returns a copy of e with the patch's non-nil fields replaced.
// The ID is never touched.
func (p Patch) apply(e Event) Event {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.Status != nil {
		e.Status = *p.Status
	}
	return e
}
