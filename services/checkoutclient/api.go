package checkoutclient

import (
	"context"
	"fmt"
)

//go:generate mockgen -source=api.go -package checkoutclient -destination api_mock.go BrokerClient,PaymentSheet,Alerter

// PaymentSheetResult is what the broker hands back on intent creation
type PaymentSheetResult struct {
	ClientSecret string
	IntentUID    string
}

// BrokerClient talks to the payment broker service
type BrokerClient interface {
	CreatePaymentSheet(c context.Context, amountInCents int64) (PaymentSheetResult, error)
	GetPaymentDetails(c context.Context, intentUID string) (BillingDetails, error)
}

type SheetConfig struct {
	ClientSecret        string
	MerchantDisplayName string
	PrimaryButtonLabel  string
	Prefill             BillingDetails
	CollectFullAddress  bool
	CollectPhone        bool
}

// PaymentSheet abstracts the on-device payment-sheet sdk.
// Present blocks until the user completed or abandoned the sheet.
type PaymentSheet interface {
	Init(c context.Context, cfg SheetConfig) error
	Present(c context.Context) error
}

// SheetError carries the processor's code and message through the sheet seam
type SheetError struct {
	Code    string
	Message string
}

func (e SheetError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Alerter shows modal alerts to the user
type Alerter interface {
	Alert(c context.Context, title string, message string)
}
