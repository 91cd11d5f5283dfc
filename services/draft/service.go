package draft

import (
	"context"

	"carebrief/models"
	"carebrief/utils"

	"go.uber.org/zap"
)

// Service glues prompt building to the gateway call.
type Service struct {
	Client CompletionClient
}

func NewService(client CompletionClient) *Service {
	return &Service{Client: client}
}

// Generate builds the prompt and performs the one gateway call. A failure is
// reported once and the operation ends; cancellation comes only from ctx.
func (s *Service) Generate(ctx context.Context, req models.DraftRequest) (string, error) {
	logger := utils.GetLogger()

	system, user := BuildPrompt(req.Analysis, req.Patient, req.TechnicalNote)
	logger.Debug("Draft prompt built",
		zap.Int("userPromptLen", len(user)),
		zap.Int("categories", len(req.Analysis.Categories)),
	)

	draft, err := s.Client.Complete(ctx, system, user)
	if err != nil {
		logger.Warn("Draft generation failed", zap.Error(err))
		return "", err
	}
	return draft, nil
}
