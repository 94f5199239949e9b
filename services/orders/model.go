package orders

import "time"

type OrderStatus string

const (
	OrderStatusPaid OrderStatus = "paid"
)

// Order is the durable record of a payment that the processor confirmed out-of-band.
// Its uid is the payment-intent uid, so replayed webhook events collapse onto one record.
type Order struct {
	UID           string
	CreatedAt     time.Time
	AmountInCents int64
	Currency      string
	Status        OrderStatus
}
