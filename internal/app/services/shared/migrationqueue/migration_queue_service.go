package migrationqueue

import (
	"carebridge-service/internal/app/contracts"
	"carebridge-service/internal/app/models"
	"carebridge-service/internal/pkg/constvars"
	"carebridge-service/internal/pkg/exceptions"
	"context"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// MigrationCompletedMessage is the payload published after a migration
// attempt settles, consumed by the status-display and notification services.
type MigrationCompletedMessage struct {
	SessionID     string         `json:"session_id"`
	MigrationDate time.Time      `json:"migration_date"`
	Counts        map[string]int `json:"counts"`
	FailedTypes   []string       `json:"failed_types,omitempty"`
}

type Service struct {
	ch        *amqp.Channel
	log       *zap.Logger
	queueName string
}

// NewService declares the durable migration-events queue and enables
// publisher confirms.
func NewService(conn *amqp.Connection, log *zap.Logger, queueName string) (*Service, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	return &Service{
		ch:        ch,
		log:       log,
		queueName: queueName,
	}, nil
}

var _ contracts.MigrationEventPublisher = (*Service)(nil)

func (s *Service) PublishMigrationCompleted(ctx context.Context, result *models.MigrationResult) error {
	counts := make(map[string]int, len(result.Counts))
	for resourceType, count := range result.Counts {
		counts[string(resourceType)] = count
	}
	var failedTypes []string
	for _, resourceType := range result.FailedTypes() {
		failedTypes = append(failedTypes, string(resourceType))
	}

	message := MigrationCompletedMessage{
		SessionID:     result.SessionID,
		MigrationDate: result.MigrationDate,
		Counts:        counts,
		FailedTypes:   failedTypes,
	}

	body, err := json.Marshal(message)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = s.ch.PublishWithContext(ctx,
		"",          // exchange
		s.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  constvars.MIMEApplicationJSON,
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, s.queueName)
	}

	s.log.Info("migrationqueue.PublishMigrationCompleted succeeded",
		zap.String(constvars.LoggingSessionIDKey, result.SessionID),
	)
	return nil
}
