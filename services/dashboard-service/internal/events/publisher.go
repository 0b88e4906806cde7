package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/clinicboard/clinicboard/libs/kafkax"
	"github.com/clinicboard/clinicboard/services/dashboard-service/internal/model"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const TopicDashboardViewed = "dashboard.viewed.v1"

type DashboardViewed struct {
	ClinicID string    `json:"clinic_id"`
	UserID   string    `json:"user_id"`
	From     string    `json:"from"`
	To       string    `json:"to"`
	ViewedAt time.Time `json:"viewed_at"`
}

func NewDashboardViewed(clinicID, userID string, rng model.DateRange, now time.Time) DashboardViewed {
	return DashboardViewed{
		ClinicID: clinicID,
		UserID:   userID,
		From:     rng.From.Format("2006-01-02"),
		To:       rng.To.Format("2006-01-02"),
		ViewedAt: now.UTC(),
	}
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher emits dashboard view events. Publishing is best effort: failures are
// logged and never returned to the caller.
type Publisher struct {
	writer messageWriter
	logger *slog.Logger
}

// NewPublisher returns a disabled publisher when brokers is empty.
func NewPublisher(brokers string, logger *slog.Logger) *Publisher {
	list := kafkax.SplitBrokers(brokers)
	if len(list) == 0 {
		logger.Warn("dashboard view events disabled (no kafka brokers configured)")
		return &Publisher{logger: logger}
	}
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(list...),
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
		Async:                  true,
		BatchTimeout:           50 * time.Millisecond,
		Completion: func(msgs []kafka.Message, err error) {
			if err != nil {
				logger.Error("dashboard view event publish failed", "err", err, "count", len(msgs))
			}
		},
	}
	return &Publisher{writer: writer, logger: logger}
}

func (p *Publisher) Enabled() bool {
	return p != nil && p.writer != nil
}

func (p *Publisher) DashboardViewed(ctx context.Context, e DashboardViewed) {
	if !p.Enabled() {
		return
	}
	msg, err := buildMessage(ctx, e)
	if err != nil {
		p.logger.ErrorContext(ctx, "encode dashboard view event", "err", err)
		return
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.ErrorContext(ctx, "dashboard view event publish failed", "err", err, "clinic_id", e.ClinicID)
	}
}

func (p *Publisher) Close() error {
	if !p.Enabled() {
		return nil
	}
	return p.writer.Close()
}

func buildMessage(ctx context.Context, e DashboardViewed) (kafka.Message, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return kafka.Message{}, err
	}
	msg := kafka.Message{
		Topic:   TopicDashboardViewed,
		Key:     []byte(e.ClinicID),
		Value:   payload,
		Headers: kafkax.EventHeaders(uuid.NewString(), TopicDashboardViewed),
	}
	msg.Headers = kafkax.InjectTraceHeaders(ctx, msg.Headers)
	return msg, nil
}
