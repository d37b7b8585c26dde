package main

// NotesEditor tracks the local notes buffer against the last value the
// server confirmed. The pad is dirty whenever the two differ; dirtiness is
// always derived, never stored.
type NotesEditor struct {
	Draft     string
	LastSaved string
}

func (e *NotesEditor) Dirty() bool {
	return e.Draft != e.LastSaved
}

// ApplyServer resets the editor to clean on the given server value. Used
// both for the initial load and after a successful save, where the echoed
// value wins over the draft in case the server normalized it.
func (e *NotesEditor) ApplyServer(value string) {
	e.Draft = value
	e.LastSaved = value
}
