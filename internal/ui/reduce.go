package ui

// User-visible outcome strings. The page never shows a raw error.
const (
	MsgSummaryFailed = "Error generating summary."
	MsgNoSummary     = "No summary generated."
	MsgEmailSent     = "✅ Email sent successfully!"
	MsgEmailInvalid  = "❌ Please enter a valid email."
	MsgEmailFailed   = "❌ Something went wrong."
)

// Reduce applies one event to the state and returns the next state. It is a
// pure function: guards that reject an action return the input unchanged.
func Reduce(s State, e Event) State {
	switch ev := e.(type) {
	case FileLoaded:
		s.FileName = ev.Name
		s.Transcript = ev.Content
		s.Dragging = false

	case FileRemoved:
		s.FileName = ""
		s.Transcript = ""

	case DragEntered:
		s.Dragging = true

	case DragLeft:
		s.Dragging = false

	case PromptChanged:
		s.Prompt = ev.Value

	case SubmitStarted:
		if !s.CanSubmit() {
			return s
		}
		s.Loading = true
		s.Summary = ""

	case SubmitSucceeded:
		s.Summary = ev.Summary
		if s.Summary == "" {
			s.Summary = MsgNoSummary
		}
		s.EditMode = false
		s.Loading = false

	case SubmitFailed:
		s.Summary = MsgSummaryFailed
		s.Loading = false

	case EditToggled:
		s.EditMode = !s.EditMode

	case SummaryEdited:
		if s.EditMode {
			s.Summary = ev.Value
		}

	case ShareOpened:
		s.ModalOpen = true
		s.Email = ""
		s.Message = ""

	case ShareClosed:
		s.ModalOpen = false
		s.Email = ""
		s.Message = ""

	case EmailChanged:
		s.Email = ev.Value

	case SendStarted:
		if s.Sending {
			return s
		}
		if s.Email == "" {
			s.Message = MsgEmailInvalid
			return s
		}
		s.Sending = true
		s.Message = ""

	case SendSucceeded:
		s.Message = MsgEmailSent
		s.Email = ""
		s.Sending = false

	case SendFailed:
		if ev.Reason != "" {
			s.Message = "❌ " + ev.Reason
		} else {
			s.Message = MsgEmailFailed
		}
		s.Sending = false
	}

	return s
}
