package eventdesk

import (
	"context"
	"time"

	"github.com/randalmurphal/eventdesk/pkg/eventdesk/notify"
	"github.com/randalmurphal/eventdesk/pkg/eventdesk/observability"
)

// User-facing validation messages.
const (
	msgMissingFields = "Please fill in all fields!"
	msgInvalidDate   = "Please enter a valid date (YYYY-MM-DD)."
	msgPastDate      = "Please select a date that is today or in the future."
)

// Form owns one draft at a time and validates it before handing off to
// the store. A failed submission raises a notification and leaves the
// draft untouched so the user can correct it; the form stays usable.
//
// Form is not safe for concurrent use; it belongs to a single UI loop.
type Form struct {
	store    *Store
	notifier notify.Notifier
	now      func() time.Time

	draft     Draft
	editingID int64
	editing   bool
}

// NewForm creates a form bound to a store, with the draft at its
// default values. The form reports validation failures through the
// store's notifier unless WithFormNotifier overrides it.
func NewForm(store *Store, opts ...FormOption) *Form {
	cfg := formConfig{
		notifier: store.notify,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Form{
		store:    store,
		notifier: cfg.notifier,
		now:      cfg.now,
		draft:    NewDraft(),
	}
}

// Draft returns a copy of the current draft.
func (f *Form) Draft() Draft {
	return f.draft
}

// SetName updates the draft's name. Raw input is never rejected here;
// validation happens at submit time.
func (f *Form) SetName(name string) {
	f.draft.Name = name
}

// SetDate updates the draft's date string.
func (f *Form) SetDate(date string) {
	f.draft.Date = date
}

// SetCategory updates the draft's category.
func (f *Form) SetCategory(c Category) {
	f.draft.Category = c
}

// SetStatus updates the draft's status.
func (f *Form) SetStatus(s Status) {
	f.draft.Status = s
}

// BeginEdit copies an existing event's fields into the draft and
// records its ID as the editing target, so the next successful submit
// edits instead of adding.
func (f *Form) BeginEdit(e Event) {
	f.draft = Draft{
		Name:     e.Name,
		Date:     e.Date,
		Category: e.Category,
		Status:   e.Status,
	}
	f.editingID = e.ID
	f.editing = true
}

// CancelEdit clears the editing target without touching the draft.
func (f *Form) CancelEdit() {
	f.editing = false
	f.editingID = 0
}

// Editing returns the current editing target, if any.
func (f *Form) Editing() (int64, bool) {
	return f.editingID, f.editing
}

// Submit validates the draft and dispatches it to the store. On
// success it resets the draft to defaults, clears any editing target,
// and returns true. On validation failure it raises one error
// notification, leaves the draft as-is, and returns false.
func (f *Form) Submit(ctx context.Context) bool {
	ctx, span := observability.StartSubmitSpan(ctx, f.editing)

	if verr := f.validate(); verr != nil {
		f.send(notify.Error(verr.Message))
		observability.EndSpanWithError(span, verr)
		return false
	}

	if f.editing {
		f.store.Edit(ctx, f.editingID, PatchFromDraft(f.draft))
		f.editing = false
		f.editingID = 0
	} else {
		f.store.Add(ctx, f.draft)
	}

	f.draft = NewDraft()
	observability.EndSpanWithError(span, nil)
	return true
}

// validate checks the draft against the submission rules: required
// fields, parseable date, and today-or-later.
func (f *Form) validate() *ValidationError {
	if f.draft.Name == "" || f.draft.Date == "" {
		return &ValidationError{Message: msgMissingFields}
	}

	selected, err := time.Parse(DateLayout, f.draft.Date)
	if err != nil {
		return &ValidationError{Field: "date", Message: msgInvalidDate}
	}

	// Compare calendar days only: today at local midnight.
	now := f.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if selected.Before(today) {
		return &ValidationError{Field: "date", Message: msgPastDate}
	}
	return nil
}

// send forwards a notification when a notifier is configured.
func (f *Form) send(n notify.Notification) {
	if f.notifier != nil {
		f.notifier.Notify(n)
	}
}
