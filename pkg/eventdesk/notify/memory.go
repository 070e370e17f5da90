package notify

import (
	"sync"
	"time"
)

// Recorder collects notifications in memory. A UI layer can poll
// Active() each frame to decide what to render; tests use it to assert
// on what the core reported.
type Recorder struct {
	mu        sync.Mutex
	all       []Notification
	dismissed map[string]bool
}

// NewRecorder creates an empty notification recorder.
func NewRecorder() *Recorder {
	return &Recorder{dismissed: make(map[string]bool)}
}

// Notify implements Notifier.
func (r *Recorder) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.all = append(r.all, n)
}

// All returns every notification ever recorded, in order.
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Notification, len(r.all))
	copy(out, r.all)
	return out
}

// Active returns notifications that are neither dismissed nor expired
// at the given time, in arrival order.
func (r *Recorder) Active(now time.Time) []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Notification
	for _, n := range r.all {
		if r.dismissed[n.ID] || n.Expired(now) {
			continue
		}
		out = append(out, n)
	}
	return out
}

// Dismiss marks a notification as dismissed.
// Returns false if no recorded notification has that ID.
func (r *Recorder) Dismiss(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, n := range r.all {
		if n.ID == id {
			r.dismissed[id] = true
			return true
		}
	}
	return false
}

// Len returns the total number of recorded notifications.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.all)
}
