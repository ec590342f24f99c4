package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/ports"

	"github.com/shopspring/decimal"
)

// publisher is the part of Client the adapters need.
type publisher interface {
	Publish(ctx context.Context, exchange, key string, body []byte) error
}

type deliveryRequest struct {
	OrderID         string          `json:"order_id"`
	DeliveryAddress string          `json:"delivery_address"`
	TotalPrice      decimal.Decimal `json:"total_price"`
}

// DeliveryClient implements ports.DeliveryClient by publishing a delivery
// request and waiting for the broker to confirm it.
type DeliveryClient struct {
	publisher  publisher
	exchange   string
	routingKey string
}

func NewDeliveryClient(p publisher, exchange, routingKey string) *DeliveryClient {
	return &DeliveryClient{publisher: p, exchange: exchange, routingKey: routingKey}
}

// RequestDelivery publishes the request and waits for the broker to confirm
// it. Broker errors are wrapped in ports.ErrDeliveryDispatchFailed.
func (c *DeliveryClient) RequestDelivery(
	ctx context.Context,
	orderID kernel.UUID,
	address string,
	totalPrice decimal.Decimal,
) error {
	body, err := json.Marshal(deliveryRequest{
		OrderID:         orderID.String(),
		DeliveryAddress: address,
		TotalPrice:      totalPrice,
	})
	if err != nil {
		return err
	}

	if err := c.publisher.Publish(ctx, c.exchange, c.routingKey, body); err != nil {
		return fmt.Errorf("%w: %w", ports.ErrDeliveryDispatchFailed, err)
	}
	return nil
}
