package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/streamlens/content-analysis/internal/analyzer"
	"github.com/streamlens/content-analysis/internal/logger"
	"github.com/streamlens/content-analysis/internal/telemetry"
	"github.com/streamlens/content-analysis/internal/textutil"
)

// Handler handles HTTP requests for the analysis API.
type Handler struct {
	analyzer  *analyzer.ContentAnalyzer
	logger    logger.Logger
	telemetry *telemetry.Provider
}

// NewHandler creates an API handler.
func NewHandler(contentAnalyzer *analyzer.ContentAnalyzer, log logger.Logger, tp *telemetry.Provider) *Handler {
	return &Handler{
		analyzer:  contentAnalyzer,
		logger:    log,
		telemetry: tp,
	}
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{Status: "ok"})
}

// rawAnalyzeRequest defers type checking of both fields so each mismatch can
// be reported with its own error code.
type rawAnalyzeRequest struct {
	Text     json.RawMessage `json:"text"`
	Messages json.RawMessage `json:"messages"`
}

// Analyze handles POST /analyze. The validation pipeline short-circuits on
// the first failure: content type, schema, size limits, then analysis.
// Authentication and rate limiting run as route middleware before this.
func (h *Handler) Analyze(c *gin.Context) {
	if !strings.HasPrefix(c.ContentType(), "application/json") {
		c.JSON(http.StatusBadRequest, errBody(errExpectedJSON))
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			c.JSON(http.StatusRequestEntityTooLarge, errBody(errPayloadTooLarge))
			return
		}
		c.Error(err) //nolint:errcheck // collected by ObserveMiddleware
		c.JSON(http.StatusInternalServerError, errBody(errAnalysisFailed))
		return
	}

	// A malformed JSON body is treated as an empty request rather than an
	// error, matching the documented contract.
	var raw rawAnalyzeRequest
	_ = json.Unmarshal(body, &raw)

	text, messages, errCode := validateRequest(raw)
	if errCode != "" {
		c.JSON(http.StatusBadRequest, errBody(errCode))
		return
	}

	if code, resp := checkSizeLimits(text, messages); code != 0 {
		c.JSON(code, resp)
		return
	}

	wordCount := textutil.WordCount(text)

	var done func()
	if h.telemetry != nil {
		_, done = h.telemetry.StartAnalysis(c.Request.Context(), wordCount, len(messages))
	}

	result := h.analyzer.Analyze(text, messages)
	if done != nil {
		done()
	}

	// Raw text and messages are never logged, only their shapes.
	h.logger.Info("analyze called",
		logger.String("path", c.Request.URL.Path),
		logger.String("client_ip", c.ClientIP()),
		logger.Int("words", wordCount),
		logger.Int("messages", len(messages)),
	)

	c.JSON(http.StatusOK, result)
}

// validateRequest enforces the schema: text is a string defaulting to "",
// messages is a list of strings defaulting to []. Returns the first error
// code hit, or "".
func validateRequest(raw rawAnalyzeRequest) (text string, messages []string, errCode string) {
	if raw.Text != nil {
		if err := json.Unmarshal(raw.Text, &text); err != nil {
			return "", nil, errTextNotString
		}
	}

	if raw.Messages == nil {
		return text, []string{}, ""
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(raw.Messages, &elements); err != nil {
		return "", nil, errMessagesNotList
	}

	messages = make([]string, len(elements))
	for i, elem := range elements {
		if err := json.Unmarshal(elem, &messages[i]); err != nil {
			return "", nil, errInvalidMessages
		}
	}
	return text, messages, ""
}

// checkSizeLimits enforces the per-field character limits. Returns 0 when
// everything fits.
func checkSizeLimits(text string, messages []string) (status int, resp errorResponse) {
	if utf8.RuneCountInString(text) > maxTextLength {
		return http.StatusRequestEntityTooLarge, errBodyMax(errTextTooLarge, maxTextLength)
	}
	if len(messages) > maxMessages {
		return http.StatusRequestEntityTooLarge, errBodyMax(errTooManyMessages, maxMessages)
	}
	for i, m := range messages {
		if utf8.RuneCountInString(m) > maxMessageLength {
			return http.StatusRequestEntityTooLarge, errBodyIndex(errMessageTooLarge, i, maxMessageLength)
		}
	}
	return 0, errorResponse{}
}
