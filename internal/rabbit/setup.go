// setup.go
package rabbit

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"miniattic-api/internal/service"
)

const (
	ExchangeOrderPlaced        = "order_placed"
	ExchangeOrderStatusChanged = "order_status_changed"
	queueOrderStatus           = "miniattic_order_status"
)

// SetupConsumers declara la cola propia, la bindea al fanout de estados y consume
// hasta que se cancele ctx.
func SetupConsumers(ctx context.Context, ch *amqp091.Channel, svc StatusUpdater, logger *zap.Logger) error {
	consumer := NewOrderStatusConsumer(svc, logger)

	// 1. Declarar exchange y queue
	if err := ch.ExchangeDeclare(ExchangeOrderStatusChanged, "fanout", true, false, false, false, nil); err != nil {
		return errors.Wrap(err, "declare exchange")
	}
	q, err := ch.QueueDeclare(
		queueOrderStatus,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return errors.Wrap(err, "declare queue")
	}

	// 2. Bindear al exchange fanout
	if err := ch.QueueBind(q.Name, "", ExchangeOrderStatusChanged, false, nil); err != nil {
		return errors.Wrap(err, "bind queue")
	}

	// 3. Consumir con ack manual
	msgs, err := ch.Consume(q.Name, "", false, false, false, false, nil)
	if err != nil {
		return errors.Wrap(err, "consume")
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case m, ok := <-msgs:
				if !ok {
					return
				}
				settle(m, consumer.Handle(ctx, m.Body))
			}
		}
	}()

	logger.Info("subscribed", zap.String("exchange", ExchangeOrderStatusChanged))
	return nil
}

type acknowledger interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

// settle confirma el mensaje según el resultado de Handle. Un fallo de la base
// se reencola; un mensaje inválido o una orden inexistente se descarta.
func settle(d acknowledger, err error) {
	if err == nil {
		_ = d.Ack(false)
		return
	}
	var perr *service.PersistenceError
	_ = d.Nack(false, errors.As(err, &perr))
}
