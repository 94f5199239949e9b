package checkoutclient

import (
	"context"
	"sync"
	"time"

	"github.com/MarcGrol/meatshop/lib/myerrors"
	"github.com/MarcGrol/meatshop/lib/mylog"
	"github.com/MarcGrol/meatshop/lib/mystore"
	"github.com/MarcGrol/meatshop/lib/myuuid"
	"github.com/MarcGrol/meatshop/services/catalog"
)

const (
	// safetyTimeout force-clears the loading state when a purchase step never resolves
	safetyTimeout = 90 * time.Second

	alertTitleError   = "エラー"
	alertTitleSuccess = "成功"

	alertPaymentCompleted  = "決済が完了しました！"
	alertServerUnreachable = "サーバーに接続できませんでした"
	alertServerTimedOut    = "サーバーへの接続がタイムアウトしました"
)

type CheckoutService struct {
	broker       BrokerClient
	sheet        PaymentSheet
	alerter      Alerter
	billingStore mystore.Store[BillingDetails]
	uuider       myuuid.UUIDer
	logger       mylog.Logger

	mutex       sync.Mutex
	cart        Cart
	loading     bool
	generation  int
	safetyTimer *time.Timer
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewCheckoutService(broker BrokerClient, sheet PaymentSheet, alerter Alerter,
	billingStore mystore.Store[BillingDetails], uuider myuuid.UUIDer) *CheckoutService {
	return &CheckoutService{
		broker:       broker,
		sheet:        sheet,
		alerter:      alerter,
		billingStore: billingStore,
		uuider:       uuider,
		logger:       mylog.New("checkoutclient"),
		cart:         NewCart(),
	}
}

func (s *CheckoutService) AddToCart(product catalog.Product) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.cart = s.cart.Add(product)
}

func (s *CheckoutService) UpdateQuantity(productUID string, delta int) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.cart = s.cart.UpdateQuantity(productUID, delta)
}

func (s *CheckoutService) RemoveFromCart(productUID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.cart = s.cart.Remove(productUID)
}

func (s *CheckoutService) Cart() Cart {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.cart
}

func (s *CheckoutService) TotalAmount() int64 {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.cart.TotalAmount()
}

func (s *CheckoutService) IsLoading() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.loading
}

// Purchase drives the payment handshake: create intent via the broker, init and
// present the payment sheet, then record billing details for future prefill.
// All user-facing failures surface as alerts, never as errors.
func (s *CheckoutService) Purchase(c context.Context) {
	totalAmount, generation, proceed := s.startPurchase()
	if !proceed {
		return
	}
	defer s.finishPurchase(generation)

	purchaseUID := s.uuider.Create()
	s.logger.Log(c, purchaseUID, mylog.SeverityInfo, "Start purchase of %d", totalAmount)

	result, err := s.broker.CreatePaymentSheet(c, totalAmount)
	if err != nil {
		s.logger.Log(c, purchaseUID, mylog.SeverityWarn, "Error creating payment-sheet: %s", err)
		if myerrors.IsTimeoutError(err) {
			s.alerter.Alert(c, alertTitleError, alertServerTimedOut)
		} else {
			s.alerter.Alert(c, alertTitleError, alertServerUnreachable)
		}
		return
	}

	err = s.sheet.Init(c, SheetConfig{
		ClientSecret:        result.ClientSecret,
		MerchantDisplayName: merchantDisplayName,
		PrimaryButtonLabel:  purchaseButtonLabel,
		Prefill:             s.savedBillingDetails(c, purchaseUID),
		CollectFullAddress:  true,
		CollectPhone:        true,
	})
	if err != nil {
		s.logger.Log(c, purchaseUID, mylog.SeverityWarn, "Error initializing payment-sheet: %s", err)
		s.alerter.Alert(c, alertTitleError, sheetErrorMessage(err))
		return
	}

	err = s.sheet.Present(c)
	if err != nil {
		s.logger.Log(c, purchaseUID, mylog.SeverityWarn, "Payment-sheet not completed: %s", err)
		s.alerter.Alert(c, alertTitleError+": "+sheetErrorCode(err), sheetErrorMessage(err))
		return
	}

	s.rememberBillingDetails(c, purchaseUID, result.IntentUID)

	s.clearCart()
	s.logger.Log(c, purchaseUID, mylog.SeverityInfo, "Purchase of %d completed", totalAmount)
	s.alerter.Alert(c, alertTitleSuccess, alertPaymentCompleted)
}

// startPurchase decides whether a purchase may proceed and, when it may,
// marks the controller busy and arms the safety timer.
// The generation ties timer and teardown to this one purchase: a purchase that
// outlived the backstop must not clear the state of a newer purchase.
func (s *CheckoutService) startPurchase() (int64, int, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	totalAmount := s.cart.TotalAmount()
	if s.cart.IsEmpty() || totalAmount < minimumPurchaseAmount {
		return 0, 0, false
	}
	if s.loading {
		return 0, 0, false
	}

	s.loading = true
	s.generation++
	generation := s.generation
	s.safetyTimer = time.AfterFunc(safetyTimeout, func() {
		s.mutex.Lock()
		defer s.mutex.Unlock()

		if s.generation == generation {
			s.loading = false
		}
	})

	return totalAmount, generation, true
}

func (s *CheckoutService) finishPurchase(generation int) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.generation != generation {
		// a newer purchase owns the state by now
		return
	}

	s.loading = false
	if s.safetyTimer != nil {
		s.safetyTimer.Stop()
		s.safetyTimer = nil
	}
}

func (s *CheckoutService) clearCart() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.cart = NewCart()
}

// savedBillingDetails is best-effort: any failure degrades to defaults
func (s *CheckoutService) savedBillingDetails(c context.Context, purchaseUID string) BillingDetails {
	details, found, err := s.billingStore.Get(c, billingDetailsUID)
	if err != nil {
		s.logger.Log(c, purchaseUID, mylog.SeverityWarn, "Error reading saved billing details: %s", err)
		return defaultBillingDetails()
	}
	if !found || details.Name == "" {
		return defaultBillingDetails()
	}

	return details
}

// rememberBillingDetails is best-effort: failures are logged, never surfaced
func (s *CheckoutService) rememberBillingDetails(c context.Context, purchaseUID string, intentUID string) {
	details, err := s.broker.GetPaymentDetails(c, intentUID)
	if err != nil {
		s.logger.Log(c, purchaseUID, mylog.SeverityWarn, "Error fetching billing details of intent %s: %s", intentUID, err)
		return
	}

	err = s.billingStore.Put(c, billingDetailsUID, details)
	if err != nil {
		s.logger.Log(c, purchaseUID, mylog.SeverityWarn, "Error storing billing details: %s", err)
	}
}

func sheetErrorMessage(err error) string {
	sheetErr, ok := err.(SheetError)
	if ok {
		return sheetErr.Message
	}

	return err.Error()
}

func sheetErrorCode(err error) string {
	sheetErr, ok := err.(SheetError)
	if ok {
		return sheetErr.Code
	}

	return "Failed"
}
