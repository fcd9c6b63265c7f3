package ui

// Event is a user action or service-call completion applied to the State.
type Event interface {
	isEvent()
}

// FileLoaded carries a selected or dropped file after its content was read.
type FileLoaded struct {
	Name    string
	Content string
}

// FileRemoved clears the active file and its content.
type FileRemoved struct{}

// DragEntered and DragLeft toggle the cosmetic drop-target highlight.
type DragEntered struct{}
type DragLeft struct{}

// PromptChanged replaces the instruction prompt text.
type PromptChanged struct{ Value string }

// SubmitStarted begins a summarize request.
type SubmitStarted struct{}

// SubmitSucceeded delivers the generated summary.
type SubmitSucceeded struct{ Summary string }

// SubmitFailed records a failed summarize request.
type SubmitFailed struct{}

// EditToggled switches between rendered preview and raw editing.
type EditToggled struct{}

// SummaryEdited replaces the summary with the user's manual edit.
type SummaryEdited struct{ Value string }

// ShareOpened and ShareClosed control the share dialog.
type ShareOpened struct{}
type ShareClosed struct{}

// EmailChanged replaces the recipient address in the share dialog.
type EmailChanged struct{ Value string }

// SendStarted begins an email request.
type SendStarted struct{}

// SendSucceeded records a delivered email.
type SendSucceeded struct{}

// SendFailed records a failed email request with an optional reason.
type SendFailed struct{ Reason string }

func (FileLoaded) isEvent()      {}
func (FileRemoved) isEvent()     {}
func (DragEntered) isEvent()     {}
func (DragLeft) isEvent()        {}
func (PromptChanged) isEvent()   {}
func (SubmitStarted) isEvent()   {}
func (SubmitSucceeded) isEvent() {}
func (SubmitFailed) isEvent()    {}
func (EditToggled) isEvent()     {}
func (SummaryEdited) isEvent()   {}
func (ShareOpened) isEvent()     {}
func (ShareClosed) isEvent()     {}
func (EmailChanged) isEvent()    {}
func (SendStarted) isEvent()     {}
func (SendSucceeded) isEvent()   {}
func (SendFailed) isEvent()      {}
