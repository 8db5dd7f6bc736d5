package rabbitmq

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/suchimauz/dentist-timeslots-generator/internal/core/ports/out"
)

type InvalidateResourceType string

const (
	InvalidateResourceTypeAll     InvalidateResourceType = "_all_"
	InvalidateResourceTypeClinic  InvalidateResourceType = "clinic"
	InvalidateResourceTypeDentist InvalidateResourceType = "dentist"
)

type InvalidateRoutingKey struct {
	Source       string
	Receiver     string
	ResourceType InvalidateResourceType
	Action       string
}

type InvalidateMessage struct {
	Clinic string `json:"clinic"`
}

func (l *TimeSlotsListener) startInvalidateQueue(ctx context.Context) error {
	queue, err := l.channel.QueueDeclare(
		l.cfg.RabbitMQ.InvalidateQueue,
		true,  // durable
		true,  // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	err = l.channel.QueueBind(
		queue.Name,
		l.cfg.RabbitMQ.InvalidateBind,
		l.cfg.RabbitMQ.InvalidateExchange,
		false,
		nil,
	)
	if err != nil {
		return err
	}

	msgs, err := l.consume(queue.Name)
	if err != nil {
		return err
	}

	go l.serve(ctx, msgs, func(ctx context.Context, msg amqp.Delivery) error {
		return l.processInvalidation(ctx, msg.RoutingKey, msg.Body)
	})

	return nil
}

// Пример routingKey:
// booking.timeslots-svc.clinic.update
// admin.timeslots-svc.dentist.delete
// admin.timeslots-svc._all_.invalidate
func parseRoutingKey(routingKey string) (InvalidateRoutingKey, error) {
	parts := strings.Split(routingKey, ".")
	if len(parts) < 4 {
		return InvalidateRoutingKey{}, fmt.Errorf("invalid routing key %q: %w", routingKey, errMalformedMessage)
	}

	return InvalidateRoutingKey{
		Source:       parts[0],
		Receiver:     parts[1],
		ResourceType: InvalidateResourceType(parts[2]),
		Action:       parts[len(parts)-1],
	}, nil
}

func (l *TimeSlotsListener) processInvalidation(ctx context.Context, routingKey string, body []byte) error {
	key, err := parseRoutingKey(routingKey)
	if err != nil {
		return err
	}

	logger := l.logger.WithFields(out.LogFields{
		"source":       key.Source,
		"resourceType": key.ResourceType,
		"action":       key.Action,
	})

	switch key.ResourceType {
	case InvalidateResourceTypeAll:
		logger.Info("rabbitmq.invalidate.all", out.LogFields{})
		return l.useCase.InvalidateAllCache(ctx)

	case InvalidateResourceTypeClinic, InvalidateResourceTypeDentist:
		var msg InvalidateMessage
		if err := json.Unmarshal(body, &msg); err != nil {
			return fmt.Errorf("invalid invalidate body: %v: %w", err, errMalformedMessage)
		}
		if msg.Clinic == "" {
			return fmt.Errorf("invalidate body without clinic: %w", errMalformedMessage)
		}

		logger.Info("rabbitmq.invalidate.clinic", out.LogFields{
			"clinicId": msg.Clinic,
		})
		return l.useCase.InvalidateClinicCache(ctx, msg.Clinic)

	default:
		logger.Warn("rabbitmq.invalidate.unknown_resource", out.LogFields{})
		return nil
	}
}
