// Package paste is the paste command: it asks for a title, gathers the
// content from the host and submits it, with every outcome ending in a single
// notice on the host.
package paste

// Host is what the command needs from the editing environment.
type Host interface {
	// Prompt shows a single-line input prefilled with initial. ok is false
	// when the user dismisses it. onChange runs on every edit.
	Prompt(label, initial string, onChange func(string)) (value string, ok bool)
	// Selections returns the selected text of each region, in region order.
	Selections() []string
	FullText() string
	// FilePath is empty for buffers not saved to disk.
	FilePath() string
	SetClipboard(text string) error
	Notice(msg string)
}

const (
	PromptLabel = "Name your snippet: "

	MsgEditing        = "You are editing the default snippet name"
	MsgCancelled      = "The snippet wasn't sent to Pastery. To send, press Enter in the title prompt."
	MsgNothingToPaste = "There was nothing to paste, aborted."
	MsgError          = "Error while pasting to Pastery."
	MsgPastedPrefix   = "Paste: "
)
