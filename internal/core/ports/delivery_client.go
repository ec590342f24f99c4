package ports

import (
	"context"
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// ErrDeliveryDispatchFailed marks errors raised by the delivery service call
// itself, as opposed to errors of the surrounding transaction.
var ErrDeliveryDispatchFailed = errors.New("delivery dispatch failed")

// DeliveryClient requests riders for accepted DELIVERY orders. It is called
// once per acceptance and never retried; any returned error aborts the
// acceptance and reaches the caller unchanged. Implementations wrap failures
// of the remote call in ErrDeliveryDispatchFailed.
type DeliveryClient interface {
	RequestDelivery(ctx context.Context, orderID kernel.UUID, address string, totalPrice decimal.Decimal) error
}
