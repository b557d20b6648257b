package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/Builder-Lawyers/text-corrector/internal/application/consts"
	"github.com/Builder-Lawyers/text-corrector/internal/application/dto"
	"github.com/Builder-Lawyers/text-corrector/internal/application/errs"
	"github.com/Builder-Lawyers/text-corrector/internal/infra/logger"
	"go.uber.org/zap"
)

type Corrector interface {
	CorrectText(ctx context.Context, text string) (string, error)
}

type CorrectText struct {
	corrector Corrector
	log       *zap.Logger
}

func NewCorrectText(corrector Corrector, log *zap.Logger) *CorrectText {
	return &CorrectText{
		corrector: corrector,
		log:       log,
	}
}

// Execute never fails: provider errors are logged and reported as OutcomeFailure.
func (c CorrectText) Execute(ctx context.Context, req dto.CorrectTextRequest) dto.Correction {
	originalText := strings.TrimSpace(req.Text)
	if originalText == "" {
		return dto.Correction{Outcome: consts.OutcomeEmpty}
	}

	corrected, err := c.corrector.CorrectText(ctx, originalText)
	if err != nil {
		fields := []zap.Field{zap.Error(err)}
		var providerErr errs.ProviderError
		if errors.As(err, &providerErr) && providerErr.StatusCode != 0 {
			fields = append(fields, zap.Int("provider_status", providerErr.StatusCode))
		}
		logger.FromContext(ctx, c.log).Error("text correction failed", fields...)
		return dto.Correction{OriginalText: originalText, Outcome: consts.OutcomeFailure}
	}

	return dto.Correction{
		OriginalText: originalText,
		Outcome:      consts.OutcomeSuccess,
		Text:         corrected,
	}
}
