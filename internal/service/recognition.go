package service

import (
	"context"

	"billsnap/internal/dto"

	"go.uber.org/zap"
)

// RecognitionService runs the image-record pipeline for one request:
// authorize, compose the prompt, invoke the vision provider, normalize the
// reply. Each request is handled independently; the service holds no mutable
// state beyond its immutable collaborators.
type RecognitionService struct {
	gate     *AccessGate
	composer *PromptComposer
	vision   Recognizer
	logger   *zap.Logger
}

func NewRecognitionService(gate *AccessGate, composer *PromptComposer, vision Recognizer, logger *zap.Logger) *RecognitionService {
	return &RecognitionService{
		gate:     gate,
		composer: composer,
		vision:   vision,
		logger:   logger,
	}
}

// ProcessImage returns the model's reply parsed as a JSON document, or one of
// the typed errors from errors.go. No provider call is made unless the gate
// and the composer both succeed.
func (s *RecognitionService) ProcessImage(ctx context.Context, req *dto.ProcessImageRequest) (any, error) {
	credential, err := s.gate.Authorize(req.Secret, req.APIKey)
	if err != nil {
		return nil, err
	}

	prompt, err := s.composer.Compose(req.Mode, req.Category, req.Account, req.CustomPrompt)
	if err != nil {
		return nil, err
	}

	raw, err := s.vision.Recognize(ctx, credential, prompt, req.Image)
	if err != nil {
		return nil, err
	}

	result, err := NormalizeModelOutput(raw)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Image processed",
		zap.String("request_id", RequestIDFrom(ctx)),
		zap.String("mode", req.Mode),
		zap.Int("categories", len(req.Category)),
		zap.Int("accounts", len(req.Account)),
	)

	return result, nil
}
