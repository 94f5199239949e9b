package paymentbroker

const (
	// Amounts are in JPY, which has no decimals
	currency      = "jpy"
	minimumAmount = 100
	maximumAmount = 500000
	defaultAmount = 1000
)

type CreatePaymentSheetRequest struct {
	// Amount is optional: when absent the default is used
	Amount *int64 `json:"amount"`
}

type CreatePaymentSheetResponse struct {
	// PaymentIntent carries the client-secret that the payment-sheet on the device needs
	PaymentIntent   string `json:"paymentIntent"`
	PaymentIntentID string `json:"paymentIntentId"`
}

type BillingDetails struct {
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
	Address Address `json:"address"`
}

type Address struct {
	City       string `json:"city"`
	Country    string `json:"country"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	PostalCode string `json:"postal_code"`
	State      string `json:"state"`
}

type WebhookResponse struct {
	Received bool `json:"received"`
}
