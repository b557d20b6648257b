package application

import (
	"github.com/Builder-Lawyers/text-corrector/internal/application/commands"
)

type Handlers struct {
	CorrectText *commands.CorrectText
}
