package checkoutclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MarcGrol/meatshop/lib/myerrors"
)

const (
	createSheetTimeout = 15 * time.Second
	getDetailsTimeout  = 10 * time.Second
)

type httpBrokerClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPBrokerClient resolves the broker over plain http+json.
// The base-url comes from the environment (API_BASE_URL).
func NewHTTPBrokerClient(baseURL string) BrokerClient {
	return &httpBrokerClient{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

func (bc httpBrokerClient) CreatePaymentSheet(c context.Context, amountInCents int64) (PaymentSheetResult, error) {
	c, cancel := context.WithTimeout(c, createSheetTimeout)
	defer cancel()

	requestBody, err := json.Marshal(struct {
		Amount int64 `json:"amount"`
	}{Amount: amountInCents})
	if err != nil {
		return PaymentSheetResult{}, myerrors.NewInternalError(err)
	}

	respPayload, err := bc.send(c, http.MethodPost, bc.baseURL+"/payment-sheet", requestBody)
	if err != nil {
		return PaymentSheetResult{}, err
	}

	resp := struct {
		PaymentIntent   string `json:"paymentIntent"`
		PaymentIntentID string `json:"paymentIntentId"`
	}{}
	err = json.Unmarshal(respPayload, &resp)
	if err != nil {
		return PaymentSheetResult{}, myerrors.NewInternalError(fmt.Errorf("error parsing payment-sheet response: %s", err))
	}

	return PaymentSheetResult{
		ClientSecret: resp.PaymentIntent,
		IntentUID:    resp.PaymentIntentID,
	}, nil
}

func (bc httpBrokerClient) GetPaymentDetails(c context.Context, intentUID string) (BillingDetails, error) {
	c, cancel := context.WithTimeout(c, getDetailsTimeout)
	defer cancel()

	respPayload, err := bc.send(c, http.MethodGet, bc.baseURL+"/payment-details/"+intentUID, nil)
	if err != nil {
		return BillingDetails{}, err
	}

	details := BillingDetails{}
	err = json.Unmarshal(respPayload, &details)
	if err != nil {
		return BillingDetails{}, myerrors.NewInternalError(fmt.Errorf("error parsing payment-details response: %s", err))
	}

	return details, nil
}

func (bc httpBrokerClient) send(c context.Context, method string, url string, body []byte) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(c, method, url, bytes.NewReader(body))
	if err != nil {
		return nil, myerrors.NewInternalError(fmt.Errorf("error creating http request for %s %s: %s", method, url, err))
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	httpResp, err := bc.client.Do(httpReq)
	if err != nil {
		return nil, classifyTransportError(method, url, err)
	}
	defer httpResp.Body.Close()

	respPayload := bytes.Buffer{}
	_, err = respPayload.ReadFrom(httpResp.Body)
	if err != nil {
		return nil, classifyTransportError(method, url, err)
	}

	if httpResp.StatusCode != http.StatusOK {
		errorResp := struct {
			Error string `json:"error"`
		}{}
		// the broker returns a json error body, but do not rely on it
		_ = json.Unmarshal(respPayload.Bytes(), &errorResp)
		if errorResp.Error == "" {
			errorResp.Error = fmt.Sprintf("%s %s returned status %d", method, url, httpResp.StatusCode)
		}
		if httpResp.StatusCode == http.StatusNotFound {
			return nil, myerrors.NewNotFoundError(errors.New(errorResp.Error))
		}
		return nil, myerrors.NewInternalError(errors.New(errorResp.Error))
	}

	return respPayload.Bytes(), nil
}

// classifyTransportError keeps deadline expiry distinguishable from generic connectivity failure
func classifyTransportError(method string, url string, err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return myerrors.NewTimeoutError(fmt.Errorf("timeout calling %s %s: %s", method, url, err))
	}

	return myerrors.NewUnavailableError(fmt.Errorf("error calling %s %s: %s", method, url, err))
}
