package rabbitmq

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/suchimauz/dentist-timeslots-generator/internal/core/domain"
	"github.com/suchimauz/dentist-timeslots-generator/internal/core/json_types"
	"github.com/suchimauz/dentist-timeslots-generator/internal/core/ports/out"
)

type TimeSlotsRequestMessage struct {
	Clinic string             `json:"clinic"`
	Start  *json_types.Millis `json:"start"`
	End    *json_types.Millis `json:"end"`
}

func (l *TimeSlotsListener) startRequestQueue(ctx context.Context) error {
	queue, err := l.channel.QueueDeclare(
		l.cfg.RabbitMQ.RequestQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	msgs, err := l.consume(queue.Name)
	if err != nil {
		return err
	}

	go l.serve(ctx, msgs, l.processRequestMessage)

	return nil
}

func (l *TimeSlotsListener) processRequestMessage(ctx context.Context, msg amqp.Delivery) error {
	correlationID := msg.CorrelationId
	if correlationID == "" {
		correlationID = uuid.NewString()
	}

	reply := l.handleRequest(ctx, msg.Body)

	if msg.ReplyTo == "" {
		l.logger.Warn("rabbitmq.requests.no_reply_to", out.LogFields{
			"correlationId": correlationID,
		})
		return nil
	}

	err := l.channel.PublishWithContext(ctx,
		"",          // exchange
		msg.ReplyTo, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:   "application/json",
			CorrelationId: correlationID,
			Body:          reply,
		},
	)
	if err != nil {
		return fmt.Errorf("rabbitmq.requests.reply: %w", err)
	}

	return nil
}

// handleRequest всегда возвращает тело ответа: массив слотов или конверт ошибки
func (l *TimeSlotsListener) handleRequest(ctx context.Context, body []byte) []byte {
	var req TimeSlotsRequestMessage
	if err := json.Unmarshal(body, &req); err != nil {
		l.logger.Warn("rabbitmq.requests.malformed", out.LogFields{
			"error": err.Error(),
		})
		return l.encodeReply(domain.NewBadRequestEnvelope("Malformed request"))
	}
	if req.Clinic == "" || req.Start == nil || req.End == nil {
		return l.encodeReply(domain.NewBadRequestEnvelope("Missing clinic, start or end"))
	}

	slots, err := l.useCase.GetTimeSlots(ctx, req.Clinic, req.Start.Time, req.End.Time)
	if err != nil {
		return l.encodeReply(domain.ToErrorEnvelope(err))
	}
	if slots == nil {
		slots = []domain.TimeSlot{}
	}

	return l.encodeReply(slots)
}

func (l *TimeSlotsListener) encodeReply(value interface{}) []byte {
	data, err := json.Marshal(value)
	if err != nil {
		l.logger.Error("rabbitmq.requests.encode_failed", out.LogFields{
			"error": err.Error(),
		})
		data, _ = json.Marshal(domain.ToErrorEnvelope(err))
	}
	return data
}
