package rabbit

import (
	"context"
	"encoding/json"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"miniattic-api/internal/model"
)

// StatusUpdater es el mismo camino que usa el PATCH administrativo.
type StatusUpdater interface {
	UpdateOrder(ctx context.Context, item string, patch model.OrderPatch) (*model.Order, error)
}

type OrderStatusConsumer struct {
	Service StatusUpdater
	logger  *zap.Logger
}

func NewOrderStatusConsumer(s StatusUpdater, logger *zap.Logger) *OrderStatusConsumer {
	return &OrderStatusConsumer{Service: s, logger: logger}
}

type OrderStatusMessage struct {
	CorrelationID string `json:"correlation_id"`
	Message       struct {
		OrderID string `json:"orderId"`
		Status  *int   `json:"status"`
	} `json:"message"`
}

func (c *OrderStatusConsumer) Handle(ctx context.Context, msg []byte) error {
	var event OrderStatusMessage
	if err := json.Unmarshal(msg, &event); err != nil {
		c.logger.Warn("invalid order_status_changed message", zap.Error(err))
		return errors.Wrap(err, "decode message")
	}
	if event.Message.OrderID == "" || event.Message.Status == nil {
		c.logger.Warn("order_status_changed without orderId or status", zap.String("correlation_id", event.CorrelationID))
		return errors.New("incomplete message")
	}

	_, err := c.Service.UpdateOrder(ctx, event.Message.OrderID, model.OrderPatch{Status: event.Message.Status})
	if err != nil {
		c.logger.Error("apply order status failed",
			zap.String("order", event.Message.OrderID), zap.Error(err))
		return err
	}

	c.logger.Info("order status applied",
		zap.String("order", event.Message.OrderID), zap.Int("status", *event.Message.Status))
	return nil
}
