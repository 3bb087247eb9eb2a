package model

import (
	"context"

	"health-report/internal/domain"
)

// MockClient permite tests sin llamar al servicio del modelo.
// Sin Predictions fijas devuelve Label una vez por fila.
type MockClient struct {
	Predictions []string
	Label       string
	Err         error
	Calls       int
}

func (m *MockClient) Predict(ctx context.Context, req domain.HealthRequest) ([]string, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Predictions != nil {
		return m.Predictions, nil
	}
	rows := 0
	if req.DataFrameSplit != nil {
		rows = len(req.DataFrameSplit.Data)
	}
	out := make([]string, rows)
	for i := range out {
		out[i] = m.Label
	}
	return out, nil
}
