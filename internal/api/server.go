// Package api exposes the assistant over HTTP.
package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/pathakanu/myAssistant/internal/assistant"
	"github.com/pathakanu/myAssistant/internal/locale"
	"github.com/pathakanu/myAssistant/internal/metrics"
	"github.com/pathakanu/myAssistant/internal/model"
)

// AskPath is the single chat endpoint.
const AskPath = "/api/ask"

// Response status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// ErrorAIUnavailable marks replies produced because the AI collaborator failed.
const ErrorAIUnavailable = "ai_unavailable"

type askRequest struct {
	Message *string `json:"message"`
}

// AskResponse is the body of every answer from AskPath except validation failures.
type AskResponse struct {
	Reply    string          `json:"reply"`
	Status   string          `json:"status"`
	Intent   string          `json:"intent,omitempty"`
	Reminder *model.Reminder `json:"reminder,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// ErrorResponse is returned for malformed requests and unsupported methods.
type ErrorResponse struct {
	Error string `json:"error"`
}

type handler struct {
	assistant *assistant.Assistant
	locale    locale.Locale
	metrics   *metrics.Metrics
	logger    *log.Logger
}

// NewRouter builds the gin engine. m may be nil, in which case /metrics is not served.
// The gin mode is left to the caller.
func NewRouter(a *assistant.Assistant, loc locale.Locale, m *metrics.Metrics, logger *log.Logger) *gin.Engine {
	h := &handler{assistant: a, locale: loc, metrics: m, logger: logger}

	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	engine.Use(gin.LoggerWithWriter(logger.Writer()))
	engine.Use(gin.CustomRecoveryWithWriter(logger.Writer(), h.onPanic))

	corsConfig := cors.Config{
		AllowAllOrigins:           true,
		AllowMethods:              []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:              []string{"Content-Type"},
		OptionsResponseStatusCode: http.StatusOK,
	}
	engine.Use(cors.New(corsConfig))

	engine.POST(AskPath, h.ask)
	engine.OPTIONS(AskPath, h.preflight)
	engine.NoMethod(h.methodNotAllowed)

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if m != nil {
		engine.GET("/metrics", gin.WrapH(m.Handler()))
	}
	return engine
}

func (h *handler) ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == nil || strings.TrimSpace(*req.Message) == "" {
		h.respond(c, http.StatusBadRequest, ErrorResponse{Error: h.locale.InvalidMessage})
		return
	}

	res, err := h.assistant.Process(c.Request.Context(), *req.Message)
	switch {
	case errors.Is(err, assistant.ErrAIUnavailable):
		h.logger.Printf("api: ai collaborator: %v", err)
		h.respond(c, http.StatusBadGateway, AskResponse{
			Reply:  res.Reply,
			Status: StatusError,
			Intent: string(res.Intent),
			Error:  ErrorAIUnavailable,
		})
	case err != nil:
		h.logger.Printf("api: process message: %v", err)
		h.respond(c, http.StatusInternalServerError, h.internalError())
	default:
		h.respond(c, http.StatusOK, AskResponse{
			Reply:    res.Reply,
			Status:   StatusSuccess,
			Intent:   string(res.Intent),
			Reminder: res.Reminder,
		})
	}
}

// preflight answers OPTIONS requests that carry no Origin header; CORS
// preflights are answered by the cors middleware before reaching it.
func (h *handler) preflight(c *gin.Context) {
	c.Status(http.StatusOK)
}

func (h *handler) methodNotAllowed(c *gin.Context) {
	h.respond(c, http.StatusMethodNotAllowed, ErrorResponse{Error: h.locale.MethodNotAllowed})
}

func (h *handler) onPanic(c *gin.Context, recovered any) {
	h.logger.Printf("api: panic: %v", recovered)
	h.metrics.ObserveRequest(strconv.Itoa(http.StatusInternalServerError))
	c.AbortWithStatusJSON(http.StatusInternalServerError, h.internalError())
}

func (h *handler) internalError() AskResponse {
	return AskResponse{
		Reply:  h.assistant.Formatter().InternalFailure(),
		Status: StatusError,
		Error:  h.locale.InternalError,
	}
}

func (h *handler) respond(c *gin.Context, code int, body any) {
	h.metrics.ObserveRequest(strconv.Itoa(code))
	c.JSON(code, body)
}
