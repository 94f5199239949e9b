package paymentbroker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/webhook"

	"github.com/MarcGrol/meatshop/lib/myerrors"
	"github.com/MarcGrol/meatshop/lib/mylog"
	"github.com/MarcGrol/meatshop/lib/mypublisher"
	"github.com/MarcGrol/meatshop/services/paymentevents"
)

// service is a stateless facade in front of the payment processor:
// the processor remains the system-of-record for payment-intents.
type service struct {
	webhookSecret string
	payer         Payer
	logger        mylog.Logger
	publisher     mypublisher.Publisher
}

// Use dependency injection to isolate the infrastructure and easy testing
func newService(apiKey string, webhookSecret string, payer Payer, logger mylog.Logger, publisher mypublisher.Publisher) (*service, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("missing stripe api-key")
	}
	if webhookSecret == "" {
		return nil, fmt.Errorf("missing stripe webhook-secret")
	}

	payer.UseAPIKey(apiKey)

	return &service{
		webhookSecret: webhookSecret,
		payer:         payer,
		logger:        logger,
		publisher:     publisher,
	}, nil
}

func (s *service) CreateTopics(c context.Context) error {
	err := s.publisher.CreateTopic(c, paymentevents.TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %s", paymentevents.TopicName, err)
	}

	return nil
}

// createPaymentSheet creates a payment-intent on the processor and hands back its client-secret
func (s *service) createPaymentSheet(c context.Context, req CreatePaymentSheetRequest) (CreatePaymentSheetResponse, error) {
	amount := int64(defaultAmount)
	if req.Amount != nil {
		amount = *req.Amount
	}

	if amount < minimumAmount || amount > maximumAmount {
		return CreatePaymentSheetResponse{}, myerrors.NewInvalidInputErrorf("amount must be between %d and %d", minimumAmount, maximumAmount)
	}

	s.logger.Log(c, "", mylog.SeverityInfo, "Creating payment-intent for amount %d %s", amount, currency)

	intent, err := s.payer.CreatePaymentIntent(c, stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	})
	if err != nil {
		return CreatePaymentSheetResponse{}, mapProcessorError(err)
	}

	s.logger.Log(c, intent.ID, mylog.SeverityInfo, "Created payment-intent %s for amount %d %s", intent.ID, amount, currency)

	return CreatePaymentSheetResponse{
		PaymentIntent:   intent.ClientSecret,
		PaymentIntentID: intent.ID,
	}, nil
}

// getPaymentDetails fetches the billing-details that were collected while paying intent with uid intentUID
func (s *service) getPaymentDetails(c context.Context, intentUID string) (BillingDetails, error) {
	s.logger.Log(c, intentUID, mylog.SeverityInfo, "Fetching billing-details of payment-intent %s", intentUID)

	params := stripe.PaymentIntentParams{}
	params.AddExpand("payment_method")

	intent, err := s.payer.GetPaymentIntent(c, intentUID, params)
	if err != nil {
		return BillingDetails{}, mapProcessorError(err)
	}

	if intent.PaymentMethod == nil || intent.PaymentMethod.BillingDetails == nil {
		return BillingDetails{}, myerrors.NewNotFoundError(fmt.Errorf("billing details not found"))
	}

	details := intent.PaymentMethod.BillingDetails
	resp := BillingDetails{
		Name:  details.Name,
		Phone: details.Phone,
	}
	if details.Address != nil {
		resp.Address = Address{
			City:       details.Address.City,
			Country:    details.Address.Country,
			Line1:      details.Address.Line1,
			Line2:      details.Address.Line2,
			PostalCode: details.Address.PostalCode,
			State:      details.Address.State,
		}
	}

	return resp, nil
}

// handleWebhookEvent verifies the signature over the exact raw payload bytes:
// re-serialized json would break the signature check.
func (s *service) handleWebhookEvent(c context.Context, payload []byte, signature string) error {
	event, err := webhook.ConstructEvent(payload, signature, s.webhookSecret)
	if err != nil {
		return myerrors.NewInvalidInputError(fmt.Errorf("webhook signature verification failed: %s", err))
	}

	switch event.Type {
	case "payment_intent.succeeded":
		intent := stripe.PaymentIntent{}
		err := json.Unmarshal(event.Data.Raw, &intent)
		if err != nil {
			return myerrors.NewInvalidInputError(fmt.Errorf("error parsing payment-intent out of webhook event: %s", err))
		}

		s.logger.Log(c, intent.ID, mylog.SeverityInfo, "Webhook: payment succeeded for intent %s", intent.ID)

		err = s.publisher.Publish(c, paymentevents.TopicName, paymentevents.PaymentIntentSucceeded{
			IntentUID:     intent.ID,
			AmountInCents: intent.Amount,
			Currency:      string(intent.Currency),
		})
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error publishing event: %s", err))
		}
	default:
		s.logger.Log(c, "", mylog.SeverityInfo, "Webhook: ignoring event of type %s", event.Type)
	}

	return nil
}

// mapProcessorError translates known processor error-codes into the right http status
func mapProcessorError(err error) error {
	stripeErr, ok := err.(*stripe.Error)
	if !ok {
		return myerrors.NewInternalError(err)
	}

	if stripeErr.Code == stripe.ErrorCodeResourceMissing {
		return myerrors.NewNotFoundError(fmt.Errorf("%s", stripeErr.Msg))
	}

	return myerrors.NewInternalError(fmt.Errorf("%s", stripeErr.Msg))
}
