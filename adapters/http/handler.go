package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/satriahrh/fanfic/domain"
	"github.com/satriahrh/fanfic/usecase"
	"github.com/satriahrh/fanfic/utils/log"
)

const (
	DefaultGenerationTimeout = 60 * time.Second
	DefaultMaxConcurrent     = 10
)

// StoryGenerator writes a story for a validated request.
type StoryGenerator interface {
	Generate(ctx context.Context, req domain.GenerationRequest) (*domain.Story, error)
}

type StoryHandler struct {
	stories   StoryGenerator
	validator *usecase.Validator
	timeout   time.Duration
	semaphore chan struct{}
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func NewStoryHandler(stories StoryGenerator, validator *usecase.Validator, timeout time.Duration, maxConcurrent int) *StoryHandler {
	if validator == nil {
		validator = usecase.NewValidator(usecase.DefaultMinCharacters)
	}
	if timeout <= 0 {
		timeout = DefaultGenerationTimeout
	}
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultMaxConcurrent
	}
	return &StoryHandler{
		stories:   stories,
		validator: validator,
		timeout:   timeout,
		semaphore: make(chan struct{}, maxConcurrent),
	}
}

// Home is the liveness probe the frontend pings.
func (h *StoryHandler) Home(c echo.Context) error {
	return c.String(http.StatusOK, "API funcionando")
}

// CreateFanfic validates the request, generates the story and returns it.
// Validation failures are 400; generation failures are 200 with an error body.
func (h *StoryHandler) CreateFanfic(c echo.Context) error {
	ctx := c.Request().Context()

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		// BodyLimit reports oversized bodies through the read error
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return he
		}
		return h.respondError(c, domain.WrapError(domain.KindInvalidBody, "Não foi possível ler a requisição.", err))
	}

	decoded, err := usecase.DecodeBody(body)
	if err != nil {
		return h.respondError(c, err)
	}
	req, err := h.validator.Validate(decoded)
	if err != nil {
		return h.respondError(c, err)
	}

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	story, err := h.stories.Generate(ctx, req)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, story)
}

// HealthCheck reports that the process is serving.
func (h *StoryHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"service":   "fanfic",
	})
}

// RateLimitMiddleware caps concurrent generations.
func (h *StoryHandler) RateLimitMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		select {
		case h.semaphore <- struct{}{}:
			defer func() { <-h.semaphore }()
			return next(c)
		default:
			return echo.NewHTTPError(http.StatusTooManyRequests, "Muitas requisições simultâneas. Tente novamente em instantes.")
		}
	}
}

// ErrorHandler renders every error as {"error": message}.
func (h *StoryHandler) ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := err.Error()

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		if he.Internal != nil {
			log.WithCtx(c.Request().Context()).Debug("HTTP error", zap.Error(he.Internal))
		}
		if m, ok := he.Message.(string); ok {
			message = m
		} else {
			message = fmt.Sprint(he.Message)
		}
	} else {
		status = domain.KindOf(err).HTTPStatus()
		message = domain.MessageOf(err)
	}

	if status >= http.StatusInternalServerError {
		log.WithCtx(c.Request().Context()).Error("Request failed", zap.Error(err))
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, ErrorResponse{Error: message})
	}
	if writeErr != nil {
		log.WithCtx(c.Request().Context()).Error("Writing error response", zap.Error(writeErr))
	}
}

func (h *StoryHandler) respondError(c echo.Context, err error) error {
	kind := domain.KindOf(err)
	logger := log.WithCtx(c.Request().Context()).With(zap.String("kind", string(kind)))
	switch {
	case kind.IsClient():
		logger.Info("Rejected request", zap.Error(err))
	case kind.IsGeneration():
		logger.Warn("Generation failed", zap.Error(err))
	default:
		// let ErrorHandler log and render it
		return err
	}
	return c.JSON(kind.HTTPStatus(), ErrorResponse{Error: domain.MessageOf(err)})
}
