// Package ui models the single-page client's orchestration state as a pure
// reducer, so every flow the browser drives can be unit tested without a
// rendering environment. The embedded web assets mirror these transitions.
package ui

// State is the complete session state of the page: the active transcript,
// the instruction prompt, the current summary, and the transient flags for
// the submit and share flows. The zero value is the initial state.
type State struct {
	FileName   string
	Transcript string
	Prompt     string
	Summary    string

	Loading  bool
	Sending  bool
	EditMode bool
	Dragging bool

	ModalOpen bool
	Email     string
	Message   string
}

// CanSubmit reports whether a summarize request may be dispatched: nothing
// in flight, and at least one of transcript or prompt present.
func (s State) CanSubmit() bool {
	return !s.Loading && (s.Transcript != "" || s.Prompt != "")
}

// CanSend reports whether an email request may be dispatched.
func (s State) CanSend() bool {
	return !s.Sending && s.Email != ""
}
