package consts

type CorrectionOutcome int

const (
	OutcomeEmpty CorrectionOutcome = iota
	OutcomeSuccess
	OutcomeFailure
)

func (o CorrectionOutcome) String() string {
	switch o {
	case OutcomeEmpty:
		return "empty"
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	}
	return "unknown"
}

const (
	EmptyInputPrompt = "Please enter some text to correct."
	FallbackMessage  = "Something went wrong. Please try again."
)

const IndexView = "index"
