package command

// ResultKind classifies the outcome of a command.
type ResultKind int

const (
	// Success: the effect was applied as specified.
	Success ResultKind = iota
	// Failure: well-formed, target exists, but a precondition failed.
	// May still carry side effects such as an oil penalty.
	Failure
	// Invalid: malformed or unrecognized command shape; no state change.
	Invalid
	// NotFound: well-formed command against an absent target; no state change.
	NotFound
)

func (k ResultKind) String() string {
	switch k {
	case Success:
		return "success"
	case Failure:
		return "failure"
	case Invalid:
		return "invalid"
	case NotFound:
		return "not_found"
	}
	return "unknown"
}

// UIRequest asks the presentation layer to open a UI flow. The
// dispatcher performs no menu logic itself.
type UIRequest int

const (
	UINone UIRequest = iota
	UIHelp
	UISettingsMenu
	UISaveMenu
	UILoadMenu
	UIScroll
)

// Result is the dispatcher's answer: an outcome kind, a human-readable
// message, and an optional UI request instead of a stringly sentinel.
type Result struct {
	Kind    ResultKind
	Message string
	UI      UIRequest
}

func flavor(kind ResultKind, message string) Result {
	return Result{Kind: kind, Message: message}
}

func uiRequest(request UIRequest) Result {
	return Result{Kind: Success, UI: request}
}
