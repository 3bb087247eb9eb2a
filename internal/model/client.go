package model

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"health-report/internal/domain"
)

// Client obtiene una etiqueta de clasificacion por fila del request.
type Client interface {
	Predict(ctx context.Context, req domain.HealthRequest) ([]string, error)
}

// StatusError describe una respuesta HTTP no exitosa del servicio del modelo.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("model http error: status=%d", e.StatusCode)
}

// HTTPClient implementa Client contra el endpoint POST /predict del servicio de ML.
type HTTPClient struct {
	baseURL     string
	client      *http.Client
	maxAttempts int
	baseDelay   time.Duration
	logger      *zap.Logger
}

// NewHTTPClient construye el cliente; maxAttempts<=0 equivale a un solo intento.
func NewHTTPClient(baseURL string, timeout time.Duration, maxAttempts int, logger *zap.Logger) *HTTPClient {
	if baseURL == "" {
		baseURL = "http://ml-model:5000"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if maxAttempts <= 0 {
		maxAttempts = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPClient{
		baseURL:     strings.TrimRight(baseURL, "/"),
		client:      &http.Client{Timeout: timeout},
		maxAttempts: maxAttempts,
		baseDelay:   200 * time.Millisecond,
		logger:      logger,
	}
}

func (c *HTTPClient) Predict(ctx context.Context, req domain.HealthRequest) ([]string, error) {
	bodyBytes, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	var preds []string
	err = retry(ctx, c.maxAttempts, c.baseDelay, func() error {
		var callErr error
		preds, callErr = c.predictOnce(ctx, bodyBytes)
		if callErr != nil && isRetriable(callErr) {
			c.logger.Warn("model call failed, retrying", zap.Error(callErr))
		}
		return callErr
	})
	if err != nil {
		return nil, err
	}
	return preds, nil
}

func (c *HTTPClient) predictOnce(ctx context.Context, body []byte) ([]string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		c.logger.Warn("model error response", zap.Int("status", resp.StatusCode), zap.String("body", string(respBody)))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var pr predictResponse
	if err := json.Unmarshal(respBody, &pr); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	if pr.Predictions == nil {
		return nil, errors.New("model response without predictions")
	}
	return pr.Predictions, nil
}

type predictResponse struct {
	Predictions []string `json:"predictions"`
}

// retry ejecuta fn con backoff exponencial (tope 2s). Solo reintenta errores transitorios.
func retry(ctx context.Context, attempts int, baseDelay time.Duration, fn func() error) error {
	var err error
	delay := baseDelay
	for i := 0; i < attempts; i++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		err = fn()
		if err == nil || !isRetriable(err) {
			return err
		}
		if i == attempts-1 {
			break
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		delay *= 2
		if delay > 2*time.Second {
			delay = 2 * time.Second
		}
	}
	return err
}

// isRetriable acepta errores de red y respuestas 5xx.
func isRetriable(err error) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode >= 500
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
