package rabbitmq

import (
	"context"
	"errors"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/suchimauz/dentist-timeslots-generator/internal/config"
	"github.com/suchimauz/dentist-timeslots-generator/internal/core/ports/in"
	"github.com/suchimauz/dentist-timeslots-generator/internal/core/ports/out"
)

// errMalformedMessage помечает сообщения, которые бесполезно возвращать в очередь
var errMalformedMessage = errors.New("malformed message")

type TimeSlotsListener struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	useCase in.TimeSlotsUseCase
	cfg     *config.Config
	logger  out.LoggerPort
}

func NewTimeSlotsListener(useCase in.TimeSlotsUseCase, cfg *config.Config, logger out.LoggerPort) (*TimeSlotsListener, error) {
	if !cfg.RabbitMQ.Enabled {
		logger.Info("rabbitmq.disabled", out.LogFields{
			"message": "RabbitMQ is disabled, listener will not be started",
		})
		return nil, nil
	}

	conn, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Error("rabbitmq.connect.failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		logger.Error("rabbitmq.channel.failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	return &TimeSlotsListener{
		conn:    conn,
		channel: channel,
		useCase: useCase,
		cfg:     cfg,
		logger:  logger.WithModule("RabbitMQListener"),
	}, nil
}

func (l *TimeSlotsListener) Start(ctx context.Context) error {
	if err := l.startRequestQueue(ctx); err != nil {
		return err
	}
	l.logger.Info("rabbitmq.requests.queue.started", out.LogFields{
		"queue": l.cfg.RabbitMQ.RequestQueue,
	})

	if err := l.startInvalidateQueue(ctx); err != nil {
		return err
	}
	l.logger.Info("rabbitmq.invalidate.queue.started", out.LogFields{
		"queue":    l.cfg.RabbitMQ.InvalidateQueue,
		"exchange": l.cfg.RabbitMQ.InvalidateExchange,
		"bind":     l.cfg.RabbitMQ.InvalidateBind,
	})

	return nil
}

func (l *TimeSlotsListener) Stop() error {
	if l == nil || l.channel == nil {
		return nil
	}

	if err := l.channel.Close(); err != nil {
		return err
	}
	return l.conn.Close()
}

func (l *TimeSlotsListener) consume(queueName string) (<-chan amqp.Delivery, error) {
	return l.channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
}

// serve обрабатывает сообщения до отмены ctx или закрытия канала
func (l *TimeSlotsListener) serve(ctx context.Context, msgs <-chan amqp.Delivery, handle func(context.Context, amqp.Delivery) error) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-msgs:
			if !ok {
				l.logger.Warn("rabbitmq.consumer.closed", out.LogFields{})
				return
			}
			if err := handle(ctx, msg); err != nil {
				requeue := !errors.Is(err, errMalformedMessage)
				l.logger.Error("rabbitmq.message.failed", out.LogFields{
					"routingKey": msg.RoutingKey,
					"requeue":    requeue,
					"error":      err.Error(),
				})
				msg.Nack(false, requeue)
				continue
			}
			msg.Ack(false)
		}
	}
}
