/*
Package eventdesk provides the state-management core of a single-user
event manager: an authoritative event collection with write-through
persistence, a pure filter/sort derivation pipeline, stateless
pagination, and a draft/validation form controller.

# Overview

eventdesk is the headless core behind an interactive event list. A UI
layer feeds user input into a Form, the Form dispatches validated
drafts to the Store, the Store persists the full collection after every
mutation, and the UI rebuilds its table from DeriveView plus a Pager.
Nothing in the core renders anything or talks to a network.

The design goals:
  - Explicitly-owned state: the Store is an injectable value, not a
    global, so it can be unit-tested without a UI harness.
  - Derivation as a pure function: DeriveView(events, sortField,
    filter) recomputes the display order with no hidden triggers.
  - No fatal errors: validation failures and persistence problems
    surface through a pluggable notification channel; lookups of
    missing IDs are defined as no-ops.

# Basic Usage

	store := eventdesk.NewStore(
	    eventdesk.WithStorage(backend),
	    eventdesk.WithNotifier(toasts),
	)

	form := eventdesk.NewForm(store)
	form.SetName("Dentist")
	form.SetDate("2026-09-15")
	form.SetCategory(eventdesk.CategoryPersonal)
	if form.Submit(ctx) {
	    // draft was valid; store mutated and persisted
	}

	view := eventdesk.DeriveView(store.Events(), eventdesk.SortByDate, eventdesk.FilterAll)
	pager := eventdesk.NewPager(5)
	rows := pager.Page(view, 1)

# Persistence

The whole collection is serialized into one versioned Snapshot blob
under a fixed storage slot on every mutation, and read back once when
the store is created. A missing blob seeds the collection with two
example events; a corrupt or incompatible blob seeds it and raises one
warning. A failed write keeps the in-memory collection authoritative
and warns that changes are unsaved. Storage backends live in the
storage subpackage (memory, file, SQLite).

# Editing

Form.BeginEdit copies an event into the draft and records its ID; the
next valid Submit patches that event instead of adding a new one. The
editing target is cleared on success or via CancelEdit. After any
successful submit the draft resets to its defaults (empty name and
date, work category, upcoming status).

# Validation

Submit rejects drafts with an empty name or date, an unparseable date,
or a date before the current local calendar day. Failures are reported
as a single error notification; the controller never returns an error
and remains usable.

# Thread Safety

  - Store IS safe for concurrent use (mutex-guarded)
  - Form is NOT safe for concurrent use; it belongs to one UI loop
  - DeriveView and Pager are pure/stateless

# Subpackages

  - storage: snapshot blob persistence (memory, file, SQLite)
  - notify: transient, dismissible user notifications
  - config: typed settings with YAML/JSON loading
  - observability: slog helpers, OTel metrics and tracing
  - fetch: generic HTTP GET-and-decode helper
*/
package eventdesk
