package model

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClientPredict(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/predict", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"predictions":["Normal_Weight"]}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL+"/", time.Second, 1, nil)
	preds, err := c.Predict(context.Background(), sampleRequest())
	require.NoError(t, err)
	assert.Equal(t, []string{"Normal_Weight"}, preds)
	assert.Contains(t, body, "dataframe_split")
}

func TestHTTPClientRetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"predictions":["Obesity_Type_II"]}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second, 2, nil)
	c.baseDelay = time.Millisecond
	preds, err := c.Predict(context.Background(), sampleRequest())
	require.NoError(t, err)
	assert.Equal(t, []string{"Obesity_Type_II"}, preds)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestHTTPClientDoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"bad input"}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second, 3, nil)
	c.baseDelay = time.Millisecond
	_, err := c.Predict(context.Background(), sampleRequest())

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusBadRequest {
		t.Fatalf("unexpected status %d", statusErr.StatusCode)
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("expected a single attempt, got %d", got)
	}
}

func TestHTTPClientMissingPredictions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result":"ok"}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second, 1, nil)
	if _, err := c.Predict(context.Background(), sampleRequest()); err == nil {
		t.Fatalf("expected error for response without predictions")
	}
}

func TestMockClientRepeatsLabelPerRow(t *testing.T) {
	req := sampleRequest()
	req.DataFrameSplit.Data = append(req.DataFrameSplit.Data, req.DataFrameSplit.Data[0])
	m := &MockClient{Label: "Normal_Weight"}
	preds, err := m.Predict(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, []string{"Normal_Weight", "Normal_Weight"}, preds)
}
