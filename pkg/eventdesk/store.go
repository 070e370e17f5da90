package eventdesk

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/randalmurphal/eventdesk/pkg/eventdesk/notify"
	"github.com/randalmurphal/eventdesk/pkg/eventdesk/observability"
	"github.com/randalmurphal/eventdesk/pkg/eventdesk/storage"
)

// msgUnsavedChanges is shown when a snapshot write fails. The in-memory
// collection stays authoritative for the rest of the session.
const msgUnsavedChanges = "Your changes could not be saved and will be lost when you leave."

// msgStorageUnreadable is shown once when the stored snapshot cannot be
// read at startup.
const msgStorageUnreadable = "Saved events could not be read; starting from the defaults."

// SeedEvents returns the fixed collection used on first run, before
// anything has been persisted.
func SeedEvents() []Event {
	return []Event{
		{ID: 1, Name: "Meeting", Date: "2024-10-10", Category: CategoryWork, Status: StatusUpcoming},
		{ID: 2, Name: "Birthday Party", Date: "2024-10-11", Category: CategoryPersonal, Status: StatusUpcoming},
	}
}

// Store is the authoritative owner of the event collection and the
// sole writer to durable storage. Every mutation rewrites the full
// snapshot; a failed write is reported but never fatal.
//
// Store is safe for concurrent use, though the intended caller is a
// single-threaded UI loop.
type Store struct {
	mu      sync.RWMutex
	events  []Event
	nextID  int64
	slot    string
	storage storage.Store
	notify  notify.Notifier
	logger  *slog.Logger
	metrics observability.MetricsRecorder
	now     func() time.Time
}

// NewStore creates a store and loads the collection from storage.
// A missing snapshot seeds the collection silently; a corrupt or
// incompatible snapshot seeds it and raises one warning through the
// notifier. NewStore never fails.
func NewStore(opts ...StoreOption) *Store {
	cfg := defaultStoreConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.storage == nil {
		cfg.storage = storage.NewMemoryStore()
	}

	s := &Store{
		slot:    cfg.slot,
		storage: cfg.storage,
		notify:  cfg.notifier,
		logger:  cfg.logger,
		metrics: cfg.metrics,
		now:     cfg.now,
	}
	s.load(cfg.seed)
	return s
}

// load seeds the collection from storage, falling back to seed when no
// readable snapshot exists. Runs once, before the store is shared.
func (s *Store) load(seed []Event) {
	data, err := s.storage.Load(s.slot)
	if err == nil {
		snap, serr := UnmarshalSnapshot(data)
		if serr == nil {
			s.events = append([]Event(nil), snap.Events...)
			s.nextID = maxID(s.events) + 1
			observability.LogStoreLoaded(s.logger, len(s.events), "snapshot")
			return
		}
		err = serr
	}

	// First run loads the seed silently; anything else means the blob
	// exists but can't be trusted, which the user should hear about.
	if !errors.Is(err, storage.ErrNotFound) {
		observability.LogSeedFallback(s.logger, err)
		s.send(notify.Warning(msgStorageUnreadable))
	}
	s.events = append([]Event(nil), seed...)
	s.nextID = maxID(s.events) + 1
	observability.LogStoreLoaded(s.logger, len(s.events), "seed")
}

// maxID returns the largest ID in the collection, or 0 when empty.
func maxID(events []Event) int64 {
	var max int64
	for _, e := range events {
		if e.ID > max {
			max = e.ID
		}
	}
	return max
}

// Add constructs a full event from the draft, assigns the next ID, and
// appends it. The store trusts its caller: validation is the form
// controller's job. Zero-value enum fields get the draft defaults so an
// invalid tag is never persisted.
func (s *Store) Add(ctx context.Context, d Draft) Event {
	ctx, span := observability.StartMutationSpan(ctx, "add")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if d.Category == "" {
		d.Category = CategoryWork
	}
	if d.Status == "" {
		d.Status = StatusUpcoming
	}

	e := Event{
		ID:       s.nextID,
		Name:     d.Name,
		Date:     d.Date,
		Category: d.Category,
		Status:   d.Status,
	}
	s.nextID++
	s.events = append(s.events, e)

	observability.LogMutation(s.logger, "add", e.ID)
	s.metrics.RecordMutation(ctx, "add")
	s.persist(ctx, "add")
	return e
}

// Edit replaces the patch's non-nil fields on the event with the given
// ID. A missing ID is a no-op, not an error; the second return value
// reports whether the event was found.
func (s *Store) Edit(ctx context.Context, id int64, p Patch) (Event, bool) {
	ctx, span := observability.StartMutationSpan(ctx, "edit")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.events {
		if e.ID != id {
			continue
		}
		s.events[i] = p.apply(e)

		observability.LogMutation(s.logger, "edit", id)
		s.metrics.RecordMutation(ctx, "edit")
		s.persist(ctx, "edit")
		return s.events[i], true
	}
	return Event{}, false
}

// Delete removes the event with the given ID. Deleting an absent ID is
// a no-op; the return value reports whether anything was removed.
func (s *Store) Delete(ctx context.Context, id int64) bool {
	ctx, span := observability.StartMutationSpan(ctx, "delete")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.events {
		if e.ID != id {
			continue
		}
		s.events = append(s.events[:i], s.events[i+1:]...)

		observability.LogMutation(s.logger, "delete", id)
		s.metrics.RecordMutation(ctx, "delete")
		s.persist(ctx, "delete")
		return true
	}
	return false
}

// ToggleComplete flips the status of the event with the given ID
// between upcoming and completed. A missing ID is a no-op.
func (s *Store) ToggleComplete(ctx context.Context, id int64) (Event, bool) {
	ctx, span := observability.StartMutationSpan(ctx, "toggle")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.events {
		if e.ID != id {
			continue
		}
		s.events[i].Status = e.Status.toggled()

		observability.LogMutation(s.logger, "toggle", id)
		s.metrics.RecordMutation(ctx, "toggle")
		s.persist(ctx, "toggle")
		return s.events[i], true
	}
	return Event{}, false
}

// Events returns a copy of the collection. Callers may reorder or
// mutate the returned slice freely.
func (s *Store) Events() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// Get returns the event with the given ID.
func (s *Store) Get(id int64) (Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.events {
		if e.ID == id {
			return e, true
		}
	}
	return Event{}, false
}

// Len returns the number of events in the collection.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}

// View derives the filtered, sorted view of the current collection and
// records derivation metrics. The pure pipeline itself is DeriveView.
func (s *Store) View(ctx context.Context, sortField SortField, filter FilterCategory) []Event {
	events := s.Events()

	done := observability.TimedOperation()
	view := DeriveView(events, sortField, filter)
	elapsed := done()

	observability.LogViewDerived(s.logger, len(events), len(view), string(sortField), string(filter), elapsed)
	s.metrics.RecordDerive(ctx, time.Duration(elapsed*float64(time.Millisecond)), len(view))
	return view
}

// persist rewrites the full snapshot. Called with the lock held, after
// every mutation. A write failure leaves the in-memory collection
// authoritative and surfaces a warning instead of an error.
func (s *Store) persist(ctx context.Context, op string) {
	snap := NewSnapshot(s.events, s.now())
	data, err := snap.Marshal()
	if err == nil {
		err = s.storage.Save(s.slot, data)
	}
	if err != nil {
		observability.LogPersistError(s.logger, op, err)
		s.metrics.RecordPersistError(ctx, op)
		s.send(notify.Error(msgUnsavedChanges))
		return
	}
	s.metrics.RecordSnapshot(ctx, int64(len(data)))
}

// send forwards a notification when a notifier is configured.
func (s *Store) send(n notify.Notification) {
	if s.notify != nil {
		s.notify.Notify(n)
	}
}
