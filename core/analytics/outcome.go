package analytics

// Outcome tells how a result was obtained.
type Outcome int

const (
	// OutcomeOK means the result was computed from the input as requested.
	OutcomeOK Outcome = iota
	// OutcomeEmpty means there was no input to work with.
	OutcomeEmpty
	// OutcomeFallback means the requested computation produced nothing and
	// the unfiltered input was returned instead.
	OutcomeFallback
	// OutcomeFault means a computation error was absorbed.
	OutcomeFault
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeEmpty:
		return "empty"
	case OutcomeFallback:
		return "fallback"
	case OutcomeFault:
		return "fault"
	default:
		return "unknown"
	}
}
