package handlers

import (
	"errors"

	"billsnap/internal/dto"
	"billsnap/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProcessHandler struct {
	records  *service.RecognitionService
	validate *validator.Validate
	logger   *zap.Logger
}

func NewProcessHandler(records *service.RecognitionService, logger *zap.Logger) *ProcessHandler {
	return &ProcessHandler{
		records:  records,
		validate: validator.New(),
		logger:   logger,
	}
}

// ProcessImage godoc
// @Summary Extract transaction records from a bill image
// @Description Forwards the image to a vision model with the caller's category/account vocabulary and returns the parsed record list
// @Tags records
// @Accept json
// @Produce json
// @Param request body dto.ProcessImageRequest true "Image and record vocabulary"
// @Success 200 {object} dto.ProcessImageResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /processImage [post]
func (h *ProcessHandler) ProcessImage(c *fiber.Ctx) error {
	requestID := uuid.New().String()

	var req dto.ProcessImageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{
			Error:   "Invalid request body",
			Details: []string{err.Error()},
		})
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{
			Error:   "Invalid request body",
			Details: validationDetails(err),
		})
	}

	ctx := service.WithRequestID(c.Context(), requestID)
	result, err := h.records.ProcessImage(ctx, &req)
	if err != nil {
		return h.renderError(c, requestID, err)
	}

	return c.JSON(dto.ProcessImageResponse{
		Success: true,
		Result:  result,
	})
}

// renderError maps pipeline errors to the HTTP contract. Authorization
// reasons are surfaced verbatim; provider and parse failures are logged with
// their detail but answered with a generic message.
func (h *ProcessHandler) renderError(c *fiber.Ctx, requestID string, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidSecret),
		errors.Is(err, service.ErrCredentialRequired),
		errors.Is(err, service.ErrNoProviderKey),
		errors.Is(err, service.ErrCallerKeyDisabled):
		h.logger.Warn("Request rejected by access gate",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false,
			Error:   err.Error(),
		})
	}

	var upstreamErr *service.UpstreamError
	if errors.As(err, &upstreamErr) {
		h.logger.Error("Provider call failed",
			zap.String("request_id", requestID),
			zap.Int("provider_status", upstreamErr.Status),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false,
			Error:   "Failed to generate result",
		})
	}

	if errors.Is(err, service.ErrEmptyCompletion) {
		h.logger.Error("Provider returned no completion text",
			zap.String("request_id", requestID),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false,
			Error:   "Failed to generate result",
		})
	}

	var malformedErr *service.MalformedOutputError
	if errors.As(err, &malformedErr) {
		h.logger.Error("Model output is not valid JSON",
			zap.String("request_id", requestID),
			zap.String("raw_output", malformedErr.Raw),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false,
			// Historical message kept for client compatibility.
			Error: "Failed to parse generated email content",
		})
	}

	h.logger.Error("Unexpected processing failure",
		zap.String("request_id", requestID),
		zap.Error(err),
	)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Success: false,
		Error:   "Internal server error",
	})
}

func validationDetails(err error) []string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		details = append(details, fieldErr.Error())
	}
	return details
}
