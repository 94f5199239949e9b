package orders

import (
	"context"
	"fmt"

	"github.com/MarcGrol/meatshop/lib/myerrors"
	"github.com/MarcGrol/meatshop/lib/myhttp"
	"github.com/MarcGrol/meatshop/lib/mylog"
	"github.com/MarcGrol/meatshop/services/paymentevents"
)

func (s *service) Subscribe(c context.Context) error {
	err := s.subscriber.Subscribe(c, paymentevents.TopicName, myhttp.GuessHostnameWithScheme()+"/order/event")
	if err != nil {
		return fmt.Errorf("error subscribing to topic %s: %s", paymentevents.TopicName, err)
	}

	return nil
}

// OnPaymentIntentSucceeded records the confirmed payment as an order
func (s *service) OnPaymentIntentSucceeded(c context.Context, topic string, event paymentevents.PaymentIntentSucceeded) error {
	s.logger.Log(c, event.IntentUID, mylog.SeverityInfo, "Payment confirmed for intent %s -> recording order", event.IntentUID)

	now := s.nower.Now()

	return s.orderStore.RunInTransaction(c, func(c context.Context) error {
		// must be idempotent: the processor delivers events at-least-once
		_, found, err := s.orderStore.Get(c, event.IntentUID)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		if found {
			return nil
		}

		err = s.orderStore.Put(c, event.IntentUID, Order{
			UID:           event.IntentUID,
			CreatedAt:     now,
			AmountInCents: event.AmountInCents,
			Currency:      event.Currency,
			Status:        OrderStatusPaid,
		})
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		return nil
	})
}
