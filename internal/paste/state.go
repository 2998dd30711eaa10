package paste

// State is a step of one invocation.
type State int

const (
	Idle State = iota
	TitlePrompt
	ContentGathered
	SubmittingNative
	SubmittingFallback
	Success
	Failed
	Aborted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case TitlePrompt:
		return "title-prompt"
	case ContentGathered:
		return "content-gathered"
	case SubmittingNative:
		return "submitting-native"
	case SubmittingFallback:
		return "submitting-fallback"
	case Success:
		return "success"
	case Failed:
		return "failed"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Terminal reports whether s ends an invocation.
func (s State) Terminal() bool {
	return s == Success || s == Failed || s == Aborted
}

// Outcome is where an invocation ended. URL is set on Success, Err on Failed
// and Aborted.
type Outcome struct {
	State State
	URL   string
	Err   error
}
