package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"health-report/internal/domain"
)

// TypeAnalysisCompleted identifica el evento emitido tras un reporte avanzado.
const TypeAnalysisCompleted = "health.analysis.completed"

// AnalysisCompleted resume un reporte avanzado para consumidores externos.
type AnalysisCompleted struct {
	ID               string    `json:"id"`
	Type             string    `json:"type"`
	AnalysisID       string    `json:"analysisId"`
	Prediction       string    `json:"prediction"`
	HealthScore      int       `json:"healthScore"`
	OverallRiskLevel string    `json:"overallRiskLevel"`
	RiskScore        int       `json:"riskScore"`
	Timestamp        time.Time `json:"timestamp"`
}

// NewAnalysisCompleted arma el evento a partir del resultado del motor.
func NewAnalysisCompleted(analysisID string, res domain.AdvancedHealthAnalysisResult) AnalysisCompleted {
	return AnalysisCompleted{
		ID:               uuid.NewString(),
		Type:             TypeAnalysisCompleted,
		AnalysisID:       analysisID,
		Prediction:       res.Prediction,
		HealthScore:      res.HealthScore,
		OverallRiskLevel: res.RiskFactorAnalysis.OverallRiskLevel,
		RiskScore:        res.RiskFactorAnalysis.RiskScore,
		Timestamp:        time.Now().UTC(),
	}
}

// Publisher entrega eventos de analisis.
type Publisher interface {
	PublishAnalysisCompleted(ctx context.Context, event AnalysisCompleted) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher publica en un topic de Kafka con clave = id del analisis.
type KafkaPublisher struct {
	writer messageWriter
	topic  string
	logger *zap.Logger
}

// NewKafkaPublisher devuelve un NoopPublisher cuando no hay brokers configurados.
func NewKafkaPublisher(brokers []string, topic string, logger *zap.Logger) Publisher {
	if len(brokers) == 0 {
		return NoopPublisher{}
	}
	if topic == "" {
		topic = TypeAnalysisCompleted
	}
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchSize:    1,
		BatchTimeout: 10 * time.Millisecond,
	}
	return newKafkaPublisher(writer, topic, logger)
}

func newKafkaPublisher(writer messageWriter, topic string, logger *zap.Logger) *KafkaPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &KafkaPublisher{writer: writer, topic: topic, logger: logger}
}

func (p *KafkaPublisher) PublishAnalysisCompleted(ctx context.Context, event AnalysisCompleted) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.AnalysisID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
			{Key: "event-id", Value: []byte(event.ID)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish %s: %w", event.Type, err)
	}

	p.logger.Debug("event published",
		zap.String("event_id", event.ID),
		zap.String("event_type", event.Type),
		zap.String("topic", p.topic),
	)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher descarta los eventos.
type NoopPublisher struct{}

func (NoopPublisher) PublishAnalysisCompleted(context.Context, AnalysisCompleted) error { return nil }

func (NoopPublisher) Close() error { return nil }
