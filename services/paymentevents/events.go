package paymentevents

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MarcGrol/meatshop/lib/myerrors"
	"github.com/MarcGrol/meatshop/lib/myevents"
)

const (
	TopicName                  = "payment"
	paymentIntentSucceededName = TopicName + ".intentSucceeded"
)

type PaymentEventService interface {
	Subscribe(c context.Context) error
	OnPaymentIntentSucceeded(c context.Context, topic string, event PaymentIntentSucceeded) error
}

func DispatchEvent(c context.Context, reader io.Reader, service PaymentEventService) error {
	envelope, err := myevents.ParseEventEnvelope(reader)
	if err != nil {
		return myerrors.NewInvalidInputError(err)
	}

	switch envelope.EventTypeName {
	case paymentIntentSucceededName:
		{
			event := PaymentIntentSucceeded{}
			err := json.Unmarshal([]byte(envelope.EventPayload), &event)
			if err != nil {
				return myerrors.NewInvalidInputError(err)
			}
			return service.OnPaymentIntentSucceeded(c, envelope.Topic, event)
		}
	default:
		return myerrors.NewNotImplementedError(fmt.Errorf("unknown event type %s", envelope.EventTypeName))
	}
}

// PaymentIntentSucceeded is published when the processor confirmed a payment out-of-band
type PaymentIntentSucceeded struct {
	IntentUID     string
	AmountInCents int64
	Currency      string
}

func (e PaymentIntentSucceeded) GetEventTypeName() string {
	return paymentIntentSucceededName
}

func (e PaymentIntentSucceeded) GetAggregateName() string {
	return e.IntentUID
}
