package service

import (
	"errors"
	"time"
)

// EditorState enumerates the lifecycle of one editable document.
type EditorState int

const (
	EditorLoading EditorState = iota
	EditorReady
	EditorSaving
	EditorSaveError
	EditorSaveSuccess
)

// String returns the wire name of the state.
func (s EditorState) String() string {
	switch s {
	case EditorLoading:
		return "loading"
	case EditorReady:
		return "ready"
	case EditorSaving:
		return "saving"
	case EditorSaveError:
		return "save_error"
	case EditorSaveSuccess:
		return "save_success"
	default:
		return "unknown"
	}
}

// saveSuccessWindow is how long the success status stays visible before
// the editor reverts to Ready.
const saveSuccessWindow = 3 * time.Second

// ErrEditorNotReady is returned when a save is requested before the
// document finished loading.
var ErrEditorNotReady = errors.New("document is still loading")

// DocumentEditor drives the editing workflow of a single document:
// Loading -> Ready (fetch success, or default on NotFound/failure),
// Ready -> Saving -> SaveSuccess | SaveError. A fetch failure never
// reaches SaveError; the editor stays usable with an in-memory default
// and a surfaced warning so a fresh document can be composed. The save
// error message persists until the next save attempt; the success state
// auto-reverts to Ready after saveSuccessWindow.
type DocumentEditor[T any] struct {
	state   EditorState
	doc     T
	warning string
	saveErr string
	savedAt time.Time
	now     func() time.Time
}

// NewDocumentEditor returns an editor in the Loading state.
func NewDocumentEditor[T any]() *DocumentEditor[T] {
	return &DocumentEditor[T]{state: EditorLoading, now: time.Now}
}

// SetClock replaces the time source, for tests.
func (e *DocumentEditor[T]) SetClock(now func() time.Time) {
	if now != nil {
		e.now = now
	}
}

// Load runs fetch and transitions to Ready. When fetch fails the
// fallback document is installed and the failure surfaces as a warning
// rather than an error state.
func (e *DocumentEditor[T]) Load(fetch func() (T, error), fallback T) {
	doc, err := fetch()
	if err != nil {
		e.doc = fallback
		e.warning = "Failed to load content; editing a fresh document"
	} else {
		e.doc = doc
	}
	e.state = EditorReady
}

// Document returns the current in-memory document.
func (e *DocumentEditor[T]) Document() T {
	return e.doc
}

// SetDocument replaces the in-memory document, typically with the form
// payload just submitted.
func (e *DocumentEditor[T]) SetDocument(doc T) {
	e.doc = doc
}

// Save transmits the entire document through persist (full replace,
// never a field-level patch). It clears any previous save error, passes
// through Saving, and lands in SaveSuccess or SaveError.
func (e *DocumentEditor[T]) Save(persist func(T) error) error {
	if e.state == EditorLoading {
		return ErrEditorNotReady
	}

	e.saveErr = ""
	e.state = EditorSaving

	if err := persist(e.doc); err != nil {
		e.state = EditorSaveError
		e.saveErr = err.Error()
		return err
	}

	e.state = EditorSaveSuccess
	e.savedAt = e.now()
	return nil
}

// State reports the current state, reverting SaveSuccess to Ready once
// the display window has elapsed.
func (e *DocumentEditor[T]) State() EditorState {
	if e.state == EditorSaveSuccess && e.now().Sub(e.savedAt) >= saveSuccessWindow {
		e.state = EditorReady
	}
	return e.state
}

// Warning returns the load warning, if any.
func (e *DocumentEditor[T]) Warning() string {
	return e.warning
}

// SaveError returns the message of the last failed save.
func (e *DocumentEditor[T]) SaveError() string {
	return e.saveErr
}
