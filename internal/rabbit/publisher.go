package rabbit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"

	"miniattic-api/internal/model"
)

// Channel es la parte de *amqp091.Channel que usa el publisher.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type Publisher struct {
	ch Channel
}

func NewPublisher(ch Channel) (*Publisher, error) {
	if err := ch.ExchangeDeclare(ExchangeOrderPlaced, "fanout", true, false, false, false, nil); err != nil {
		return nil, errors.Wrap(err, "declare exchange")
	}
	return &Publisher{ch: ch}, nil
}

type OrderPlacedMessage struct {
	CorrelationID string `json:"correlation_id"`
	Exchange      string `json:"exchange"`
	RoutingKey    string `json:"routing_key"`
	Message       struct {
		OrderID  string             `json:"orderId"`
		Account  string             `json:"account"`
		Products []model.LineItem   `json:"products"`
		Payment  model.OrderPayment `json:"payment"`
	} `json:"message"`
}

func (p *Publisher) PublishOrderPlaced(ctx context.Context, o *model.Order) error {
	var event OrderPlacedMessage
	event.CorrelationID = uuid.NewString()
	event.Exchange = ExchangeOrderPlaced
	event.Message.OrderID = o.Item
	event.Message.Account = o.Account
	event.Message.Products = o.Products
	event.Message.Payment = o.Payment

	body, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "encode order_placed")
	}

	err = p.ch.PublishWithContext(ctx, ExchangeOrderPlaced, "", false, false, amqp091.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp091.Persistent,
		CorrelationId: event.CorrelationID,
		Timestamp:     time.Now(),
		Body:          body,
	})
	if err != nil {
		return errors.Wrap(err, "publish order_placed")
	}
	return nil
}
