// Package client calls the prediction service over HTTP.
package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/kelseyhightower/envconfig"
	"github.com/saqibullah/diabetes-predictor/buildinfo"
	"github.com/saqibullah/diabetes-predictor/config"
	"github.com/saqibullah/diabetes-predictor/predictor"
	"golang.org/x/sync/errgroup"
)

type Config struct {
	BaseURL string        `envconfig:"DIABETES_CLIENT_BASE_URL" default:"http://localhost:5000" validate:"required,url"`
	Timeout time.Duration `envconfig:"DIABETES_CLIENT_TIMEOUT" default:"10s" validate:"gt=0"`
	Retries int           `envconfig:"DIABETES_CLIENT_RETRIES" default:"0" validate:"min=0"`

	// Concurrency caps the in-flight requests of PredictBatch; zero means no cap.
	Concurrency int `envconfig:"DIABETES_CLIENT_CONCURRENCY" default:"4" validate:"min=0"`
}

func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("error loading environment variables: %w", err)
	}
	if err := config.Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// APIError is returned when the service answers with a non-200 status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("prediction service error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("prediction service error: status %d: %s", e.StatusCode, e.Message)
}

type errorBody struct {
	Error string `json:"error"`
}

type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

type Client struct {
	http        *resty.Client
	concurrency int
}

func New(cfg Config) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(cfg.BaseURL).
			SetTimeout(cfg.Timeout).
			SetRetryCount(cfg.Retries).
			SetHeader("Accept", "application/json").
			SetHeader("User-Agent", buildinfo.Info.UserAgent("client")),
		concurrency: cfg.Concurrency,
	}
}

// Predict posts v as a JSON payload to /predict.
func (c *Client) Predict(ctx context.Context, v predictor.Vector) (predictor.Result, error) {
	var result predictor.Result
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(v.Map()).
		SetResult(&result).
		SetError(&errorBody{}).
		Post("/predict")
	if err != nil {
		return predictor.Result{}, fmt.Errorf("failed to connect to prediction service: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return predictor.Result{}, apiError(resp)
	}
	return result, nil
}

// PredictBatch predicts every vector concurrently. Results follow the order of
// vs; the first failure cancels the requests still in flight.
func (c *Client) PredictBatch(ctx context.Context, vs []predictor.Vector) ([]predictor.Result, error) {
	results := make([]predictor.Result, len(vs))
	g, gctx := errgroup.WithContext(ctx)
	if c.concurrency > 0 {
		g.SetLimit(c.concurrency)
	}
	for i, v := range vs {
		i, v := i, v
		g.Go(func() error {
			result, err := c.Predict(gctx, v)
			if err != nil {
				return fmt.Errorf("vector %d: %w", i, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (c *Client) Health(ctx context.Context) (HealthStatus, error) {
	var status HealthStatus
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&status).
		Get("/health")
	if err != nil {
		return HealthStatus{}, fmt.Errorf("failed to connect to prediction service: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return HealthStatus{}, apiError(resp)
	}
	return status, nil
}

func apiError(resp *resty.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode()}
	if body, ok := resp.Error().(*errorBody); ok && body != nil {
		apiErr.Message = body.Error
	}
	return apiErr
}
