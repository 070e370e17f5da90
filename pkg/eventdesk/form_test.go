package eventdesk

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/eventdesk/pkg/eventdesk/notify"
)

// fixedToday pins the form's clock to 2026-08-28 local noon.
func fixedToday() time.Time {
	return time.Date(2026, 8, 28, 12, 30, 0, 0, time.Local)
}

// newTestForm builds a store+form pair with a pinned clock and a
// notification recorder.
func newTestForm(t *testing.T) (*Store, *Form, *notify.Recorder) {
	t.Helper()
	rec := notify.NewRecorder()
	store := NewStore(WithNotifier(rec))
	form := NewForm(store, WithFormClock(fixedToday))
	return store, form, rec
}

// TestForm_Submit_MissingFields verifies that empty name or date block
// submission with one error notification.
func TestForm_Submit_MissingFields(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f *Form)
	}{
		{"empty name", func(f *Form) { f.SetDate("2026-09-01") }},
		{"empty date", func(f *Form) { f.SetName("X") }},
		{"both empty", func(f *Form) {}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, form, rec := newTestForm(t)
			before := store.Len()

			tt.setup(form)
			ok := form.Submit(context.Background())

			assert.False(t, ok)
			assert.Equal(t, before, store.Len())

			all := rec.All()
			require.Len(t, all, 1)
			assert.Equal(t, notify.SeverityError, all[0].Severity)
			assert.Equal(t, "Please fill in all fields!", all[0].Message)
		})
	}
}

// TestForm_Submit_PastDate verifies the today-or-later rule.
func TestForm_Submit_PastDate(t *testing.T) {
	store, form, rec := newTestForm(t)
	before := store.Len()

	form.SetName("X")
	form.SetDate("2026-08-27") // yesterday relative to the pinned clock

	assert.False(t, form.Submit(context.Background()))
	assert.Equal(t, before, store.Len())

	all := rec.All()
	require.Len(t, all, 1)
	assert.Equal(t, "Please select a date that is today or in the future.", all[0].Message)
}

// TestForm_Submit_TodayAccepted verifies that today itself passes the
// date rule regardless of time of day.
func TestForm_Submit_TodayAccepted(t *testing.T) {
	store, form, _ := newTestForm(t)

	form.SetName("Same-day")
	form.SetDate("2026-08-28")

	require.True(t, form.Submit(context.Background()))
	assert.Equal(t, 3, store.Len())
}

// TestForm_Submit_InvalidDate verifies that an unparseable date is
// rejected instead of silently accepted.
func TestForm_Submit_InvalidDate(t *testing.T) {
	store, form, rec := newTestForm(t)
	before := store.Len()

	form.SetName("X")
	form.SetDate("next tuesday")

	assert.False(t, form.Submit(context.Background()))
	assert.Equal(t, before, store.Len())
	require.Equal(t, 1, rec.Len())
}

// TestForm_Submit_AddResetsDraft verifies the add path and the draft
// reset after success.
func TestForm_Submit_AddResetsDraft(t *testing.T) {
	store, form, rec := newTestForm(t)

	form.SetName("Conference")
	form.SetDate("2026-10-01")
	form.SetCategory(CategoryOther)

	require.True(t, form.Submit(context.Background()))
	assert.Zero(t, rec.Len())

	events := store.Events()
	added := events[len(events)-1]
	assert.Equal(t, "Conference", added.Name)
	assert.Equal(t, CategoryOther, added.Category)
	assert.Equal(t, StatusUpcoming, added.Status)

	assert.Equal(t, NewDraft(), form.Draft())
}

// TestForm_Submit_FailureKeepsDraft verifies that a rejected draft
// stays editable.
func TestForm_Submit_FailureKeepsDraft(t *testing.T) {
	_, form, _ := newTestForm(t)

	form.SetName("Kept")
	form.SetDate("1999-01-01")
	require.False(t, form.Submit(context.Background()))

	d := form.Draft()
	assert.Equal(t, "Kept", d.Name)
	assert.Equal(t, "1999-01-01", d.Date)

	// Correcting the date makes the same form usable again.
	form.SetDate("2026-09-09")
	assert.True(t, form.Submit(context.Background()))
}

// TestForm_BeginEdit verifies the edit path: prefill, patch on submit,
// target cleared, draft reset.
func TestForm_BeginEdit(t *testing.T) {
	store, form, _ := newTestForm(t)

	target, ok := store.Get(1)
	require.True(t, ok)

	form.BeginEdit(target)
	id, editing := form.Editing()
	assert.True(t, editing)
	assert.Equal(t, target.ID, id)
	assert.Equal(t, target.Name, form.Draft().Name)

	form.SetName("Renamed Meeting")
	form.SetDate("2026-09-01")
	require.True(t, form.Submit(context.Background()))

	got, ok := store.Get(1)
	require.True(t, ok)
	assert.Equal(t, "Renamed Meeting", got.Name)
	assert.Equal(t, "2026-09-01", got.Date)

	// No new event was created and the target is cleared.
	assert.Equal(t, 2, store.Len())
	_, editing = form.Editing()
	assert.False(t, editing)
	assert.Equal(t, NewDraft(), form.Draft())
}

// TestForm_CancelEdit verifies that a cancelled edit falls back to the
// add path.
func TestForm_CancelEdit(t *testing.T) {
	store, form, _ := newTestForm(t)

	target, _ := store.Get(1)
	form.BeginEdit(target)
	form.CancelEdit()

	form.SetName("Fresh")
	form.SetDate("2026-09-01")
	require.True(t, form.Submit(context.Background()))

	assert.Equal(t, 3, store.Len())

	original, _ := store.Get(1)
	assert.Equal(t, "Meeting", original.Name)
}

// TestForm_AddThenFilter verifies the add-then-filter scenario: a new
// "other" event shows up in the other-filtered view.
func TestForm_AddThenFilter(t *testing.T) {
	store, form, _ := newTestForm(t)

	form.SetName("Car service")
	form.SetDate("2026-09-15")
	form.SetCategory(CategoryOther)
	require.True(t, form.Submit(context.Background()))

	view := DeriveView(store.Events(), SortByName, FilterOther)
	require.Len(t, view, 1)
	assert.Equal(t, "Car service", view[0].Name)
}

// TestForm_ValidationError_Message verifies the error string format.
func TestForm_ValidationError_Message(t *testing.T) {
	err := &ValidationError{Field: "date", Message: "too early"}
	assert.Equal(t, "validation error on date: too early", err.Error())

	bare := &ValidationError{Message: "missing fields"}
	assert.Equal(t, "validation error: missing fields", bare.Error())
}
