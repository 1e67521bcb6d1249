package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saqibullah/diabetes-predictor/buildinfo"
	"github.com/saqibullah/diabetes-predictor/logging"
	"github.com/saqibullah/diabetes-predictor/page"
	"github.com/saqibullah/diabetes-predictor/predictor"
)

const htmlContentType = "text/html; charset=utf-8"

type Handlers struct {
	predictor    predictor.Predictor
	maxBodyBytes int64
}

func NewHandlers(p predictor.Predictor, maxBodyBytes int64) *Handlers {
	return &Handlers{
		predictor:    p,
		maxBodyBytes: maxBodyBytes,
	}
}

// failure is the message shown to the caller for any input error.
type failure struct {
	cause error
}

func (f failure) Error() string {
	return fmt.Sprintf("An error occurred: %v. Please ensure all fields are filled correctly.", f.cause)
}

func (f failure) Unwrap() error {
	return f.cause
}

// IndexHandler serves the empty form.
func (h *Handlers) IndexHandler(c *gin.Context) {
	h.renderPage(c, nil, nil)
}

// PredictHandler answers form submissions with a page and JSON requests with
// JSON. Form submissions get a 200 even when the input is rejected.
func (h *Handlers) PredictHandler(c *gin.Context) {
	mode := predictor.ModeFor(c.ContentType())
	logger := logging.FromContext(c.Request.Context()).With("mode", mode.String())

	vec, err := h.extract(c, mode)
	if err != nil {
		fail := failure{cause: err}
		logger.Warnw("prediction request rejected", "error", fail.Error())
		if mode == predictor.ModeJSON {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fail.Error()})
			return
		}
		h.renderPage(c, nil, fail)
		return
	}

	result := h.predictor.Predict(vec)
	logger.Debugw("prediction served",
		"glucose", vec.Glucose(),
		"prediction", result.Prediction,
		"probability", result.Probability,
	)

	if mode == predictor.ModeJSON {
		c.JSON(http.StatusOK, result)
		return
	}
	h.renderPage(c, &result, nil)
}

// HealthHandler reports liveness and the running build.
func (h *Handlers) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": buildinfo.Info.Name(),
		"version": buildinfo.Info.Tag(),
	})
}

func (h *Handlers) extract(c *gin.Context, mode predictor.Mode) (predictor.Vector, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes)

	if mode == predictor.ModeJSON {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			return predictor.Vector{}, &predictor.InputError{Err: fmt.Errorf("read body: %w", err)}
		}
		return predictor.ParseJSON(body)
	}

	// gin only debug-logs form parse failures, so surface them here before
	// the lookups see an empty form.
	if err := c.Request.ParseForm(); err != nil {
		return predictor.Vector{}, &predictor.InputError{Err: fmt.Errorf("read body: %w", err)}
	}
	if err := c.Request.ParseMultipartForm(h.maxBodyBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return predictor.Vector{}, &predictor.InputError{Err: fmt.Errorf("read body: %w", err)}
	}
	return predictor.ParseForm(c.GetPostForm)
}

func (h *Handlers) renderPage(c *gin.Context, result *predictor.Result, err error) {
	body, renderErr := page.Render(predictor.FeatureNames(), result, err)
	if renderErr != nil {
		logging.FromContext(c.Request.Context()).Errorw("failed to render page", "error", renderErr)
		c.String(http.StatusInternalServerError, "failed to render page")
		return
	}
	c.Data(http.StatusOK, htmlContentType, body)
}
