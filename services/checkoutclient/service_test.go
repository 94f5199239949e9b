package checkoutclient

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/meatshop/lib/myerrors"
	"github.com/MarcGrol/meatshop/lib/mystore"
	"github.com/MarcGrol/meatshop/lib/myuuid"
	"github.com/MarcGrol/meatshop/services/catalog"
)

var (
	wagyu   = catalog.Product{UID: "1", Name: "極上の和牛セット", Price: 1000}
	chicken = catalog.Product{UID: "3", Name: "鶏もも肉", Price: 450}
)

func TestPurchase(t *testing.T) {

	t.Run("Successful purchase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, service, broker, sheet, alerter, billingStore := setup(t, ctrl)
		service.AddToCart(wagyu)
		service.AddToCart(wagyu)
		service.AddToCart(chicken)

		// given
		broker.EXPECT().CreatePaymentSheet(gomock.Any(), int64(2450)).Return(PaymentSheetResult{
			ClientSecret: "pi_123_secret_456",
			IntentUID:    "pi_123",
		}, nil)
		sheet.EXPECT().Init(gomock.Any(), gomock.Any()).DoAndReturn(
			func(c context.Context, cfg SheetConfig) error {
				assert.Equal(t, "pi_123_secret_456", cfg.ClientSecret)
				assert.Equal(t, "美味しいお肉屋さん", cfg.MerchantDisplayName)
				assert.Equal(t, "購入する", cfg.PrimaryButtonLabel)
				assert.Equal(t, "テスト 太郎", cfg.Prefill.Name)
				assert.True(t, cfg.CollectFullAddress)
				assert.True(t, cfg.CollectPhone)
				return nil
			})
		sheet.EXPECT().Present(gomock.Any()).Return(nil)
		broker.EXPECT().GetPaymentDetails(gomock.Any(), "pi_123").Return(BillingDetails{
			Name:  "山田 太郎",
			Phone: "+81312345678",
		}, nil)
		alerter.EXPECT().Alert(gomock.Any(), "成功", "決済が完了しました！")

		// when
		service.Purchase(c)

		// then
		assert.True(t, service.Cart().IsEmpty())
		assert.False(t, service.IsLoading())
		saved, found, err := billingStore.Get(c, "billing_details")
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "山田 太郎", saved.Name)
	})

	t.Run("Purchase with empty cart is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup: no calls on any collaborator are expected
		c, service, _, _, _, _ := setup(t, ctrl)

		// when
		service.Purchase(c)

		// then
		assert.True(t, service.Cart().IsEmpty())
		assert.False(t, service.IsLoading())
	})

	t.Run("Purchase below minimum amount is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup: no calls on any collaborator are expected
		c, service, _, _, _, _ := setup(t, ctrl)
		service.AddToCart(catalog.Product{UID: "9", Name: "おまけ", Price: 50})

		// when
		service.Purchase(c)

		// then
		assert.Equal(t, int64(50), service.TotalAmount())
		assert.False(t, service.IsLoading())
	})

	t.Run("Broker timeout surfaces distinguished alert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, service, broker, _, alerter, _ := setup(t, ctrl)
		service.AddToCart(wagyu)

		// given
		broker.EXPECT().CreatePaymentSheet(gomock.Any(), int64(1000)).Return(
			PaymentSheetResult{}, myerrors.NewTimeoutError(fmt.Errorf("deadline exceeded")))
		alerter.EXPECT().Alert(gomock.Any(), "エラー", "サーバーへの接続がタイムアウトしました")

		// when
		service.Purchase(c)

		// then: cart is kept so the user can retry
		assert.Equal(t, int64(1000), service.TotalAmount())
		assert.False(t, service.IsLoading())
	})

	t.Run("Broker connectivity failure surfaces generic alert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, service, broker, _, alerter, _ := setup(t, ctrl)
		service.AddToCart(wagyu)

		// given
		broker.EXPECT().CreatePaymentSheet(gomock.Any(), int64(1000)).Return(
			PaymentSheetResult{}, myerrors.NewUnavailableError(fmt.Errorf("connection refused")))
		alerter.EXPECT().Alert(gomock.Any(), "エラー", "サーバーに接続できませんでした")

		// when
		service.Purchase(c)

		// then
		assert.Equal(t, int64(1000), service.TotalAmount())
		assert.False(t, service.IsLoading())
	})

	t.Run("Sheet init failure surfaces processor message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, service, broker, sheet, alerter, _ := setup(t, ctrl)
		service.AddToCart(wagyu)

		// given
		broker.EXPECT().CreatePaymentSheet(gomock.Any(), int64(1000)).Return(PaymentSheetResult{
			ClientSecret: "pi_123_secret_456",
			IntentUID:    "pi_123",
		}, nil)
		sheet.EXPECT().Init(gomock.Any(), gomock.Any()).Return(SheetError{
			Code:    "Failed",
			Message: "Invalid client secret",
		})
		alerter.EXPECT().Alert(gomock.Any(), "エラー", "Invalid client secret")

		// when
		service.Purchase(c)

		// then
		assert.Equal(t, int64(1000), service.TotalAmount())
		assert.False(t, service.IsLoading())
	})

	t.Run("Sheet cancellation surfaces code and message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, service, broker, sheet, alerter, _ := setup(t, ctrl)
		service.AddToCart(wagyu)

		// given
		broker.EXPECT().CreatePaymentSheet(gomock.Any(), int64(1000)).Return(PaymentSheetResult{
			ClientSecret: "pi_123_secret_456",
			IntentUID:    "pi_123",
		}, nil)
		sheet.EXPECT().Init(gomock.Any(), gomock.Any()).Return(nil)
		sheet.EXPECT().Present(gomock.Any()).Return(SheetError{
			Code:    "Canceled",
			Message: "The payment flow has been canceled",
		})
		alerter.EXPECT().Alert(gomock.Any(), "エラー: Canceled", "The payment flow has been canceled")

		// when
		service.Purchase(c)

		// then
		assert.Equal(t, int64(1000), service.TotalAmount())
		assert.False(t, service.IsLoading())
	})

	t.Run("Billing detail fetch failure does not spoil success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, service, broker, sheet, alerter, billingStore := setup(t, ctrl)
		service.AddToCart(wagyu)

		// given
		broker.EXPECT().CreatePaymentSheet(gomock.Any(), int64(1000)).Return(PaymentSheetResult{
			ClientSecret: "pi_123_secret_456",
			IntentUID:    "pi_123",
		}, nil)
		sheet.EXPECT().Init(gomock.Any(), gomock.Any()).Return(nil)
		sheet.EXPECT().Present(gomock.Any()).Return(nil)
		broker.EXPECT().GetPaymentDetails(gomock.Any(), "pi_123").Return(
			BillingDetails{}, myerrors.NewNotFoundError(fmt.Errorf("no billing details")))
		alerter.EXPECT().Alert(gomock.Any(), "成功", "決済が完了しました！")

		// when
		service.Purchase(c)

		// then
		assert.True(t, service.Cart().IsEmpty())
		_, found, err := billingStore.Get(c, "billing_details")
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Saved billing details are used for prefill", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, service, broker, sheet, alerter, billingStore := setup(t, ctrl)
		err := billingStore.Put(c, "billing_details", BillingDetails{
			Name:  "山田 太郎",
			Phone: "+81312345678",
		})
		assert.NoError(t, err)
		service.AddToCart(wagyu)

		// given
		broker.EXPECT().CreatePaymentSheet(gomock.Any(), int64(1000)).Return(PaymentSheetResult{
			ClientSecret: "pi_123_secret_456",
			IntentUID:    "pi_123",
		}, nil)
		sheet.EXPECT().Init(gomock.Any(), gomock.Any()).DoAndReturn(
			func(c context.Context, cfg SheetConfig) error {
				assert.Equal(t, "山田 太郎", cfg.Prefill.Name)
				return nil
			})
		sheet.EXPECT().Present(gomock.Any()).Return(nil)
		broker.EXPECT().GetPaymentDetails(gomock.Any(), "pi_123").Return(BillingDetails{
			Name: "山田 太郎",
		}, nil)
		alerter.EXPECT().Alert(gomock.Any(), "成功", "決済が完了しました！")

		// when
		service.Purchase(c)

		// then
		assert.True(t, service.Cart().IsEmpty())
	})

	t.Run("Purchase outliving the backstop does not tear down a newer one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, service, _, _, _, _ := setup(t, ctrl)
		service.AddToCart(wagyu)

		// given: a first purchase starts, then the safety backstop force-clears loading
		_, first, proceed := service.startPurchase()
		assert.True(t, proceed)
		service.mutex.Lock()
		service.loading = false
		service.mutex.Unlock()

		// and a second purchase starts while the first is still in flight
		_, second, proceedAgain := service.startPurchase()
		assert.True(t, proceedAgain)

		// when: the stale first purchase finally finishes
		service.finishPurchase(first)

		// then: the second purchase is still busy until it finishes itself
		assert.True(t, service.IsLoading())
		service.finishPurchase(second)
		assert.False(t, service.IsLoading())
	})

	t.Run("Concurrent purchase is rejected while loading", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, service, broker, sheet, alerter, _ := setup(t, ctrl)
		service.AddToCart(wagyu)

		// given: a second Purchase issued mid-flight must not reach the broker
		broker.EXPECT().CreatePaymentSheet(gomock.Any(), int64(1000)).DoAndReturn(
			func(c context.Context, amountInCents int64) (PaymentSheetResult, error) {
				service.Purchase(c)
				return PaymentSheetResult{ClientSecret: "pi_123_secret_456", IntentUID: "pi_123"}, nil
			})
		sheet.EXPECT().Init(gomock.Any(), gomock.Any()).Return(nil)
		sheet.EXPECT().Present(gomock.Any()).Return(nil)
		broker.EXPECT().GetPaymentDetails(gomock.Any(), "pi_123").Return(BillingDetails{Name: "山田 太郎"}, nil)
		alerter.EXPECT().Alert(gomock.Any(), "成功", "決済が完了しました！")

		// when
		service.Purchase(c)

		// then
		assert.True(t, service.Cart().IsEmpty())
		assert.False(t, service.IsLoading())
	})
}

func setup(t *testing.T, ctrl *gomock.Controller) (context.Context, *CheckoutService, *MockBrokerClient, *MockPaymentSheet, *MockAlerter, mystore.Store[BillingDetails]) {
	c := context.TODO()

	broker := NewMockBrokerClient(ctrl)
	sheet := NewMockPaymentSheet(ctrl)
	alerter := NewMockAlerter(ctrl)

	billingStore, cleanup, err := mystore.NewInMemoryStore[BillingDetails](c)
	assert.NoError(t, err)
	t.Cleanup(cleanup)

	uuider := myuuid.NewMockUUIDer(ctrl)
	uuider.EXPECT().Create().Return("41f173cb-403d-4de5-a0e5-30ef2a69a39d").AnyTimes()

	service := NewCheckoutService(broker, sheet, alerter, billingStore, uuider)

	return c, service, broker, sheet, alerter, billingStore
}
