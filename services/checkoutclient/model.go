package checkoutclient

const (
	// Amounts are in JPY, which has no decimals
	minimumPurchaseAmount = 100

	merchantDisplayName = "美味しいお肉屋さん"
	purchaseButtonLabel = "購入する"
	defaultBillingName  = "テスト 太郎"

	// billingDetailsUID is the single key under which the billing blob is stored
	billingDetailsUID = "billing_details"
)

type CartLine struct {
	ProductUID  string
	ProductName string
	Price       int64
	Quantity    int
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

func defaultBillingDetails() BillingDetails {
	return BillingDetails{
		Name: defaultBillingName,
	}
}
