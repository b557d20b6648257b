package dto

import "github.com/Builder-Lawyers/text-corrector/internal/application/consts"

type CorrectTextRequest struct {
	Text string `form:"text" json:"text"`
}

// Correction is the single result of a correction attempt. Text holds the
// provider output and is only meaningful for OutcomeSuccess.
type Correction struct {
	OriginalText string
	Outcome      consts.CorrectionOutcome
	Text         string
}

// Corrected is the user facing value rendered for the outcome.
func (c Correction) Corrected() string {
	switch c.Outcome {
	case consts.OutcomeEmpty:
		return consts.EmptyInputPrompt
	case consts.OutcomeSuccess:
		return c.Text
	default:
		return consts.FallbackMessage
	}
}

// CorrectionPage is the view model of the index template.
type CorrectionPage struct {
	Corrected    string
	OriginalText string
}

func NewCorrectionPage(c Correction) CorrectionPage {
	return CorrectionPage{
		Corrected:    c.Corrected(),
		OriginalText: c.OriginalText,
	}
}
