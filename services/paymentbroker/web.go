package paymentbroker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/meatshop/lib/mycontext"
	"github.com/MarcGrol/meatshop/lib/myerrors"
	"github.com/MarcGrol/meatshop/lib/myhttp"
	"github.com/MarcGrol/meatshop/lib/mylog"
	"github.com/MarcGrol/meatshop/lib/mypublisher"
)

type webService struct {
	logger  mylog.Logger
	service *service
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(apiKey string, webhookSecret string, payer Payer, publisher mypublisher.Publisher) (*webService, error) {
	logger := mylog.New("paymentbroker")
	s, err := newService(apiKey, webhookSecret, payer, logger, publisher)
	if err != nil {
		return nil, err
	}

	return &webService{
		logger:  logger,
		service: s,
	}, nil
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/payment-sheet", s.createPaymentSheetPage()).Methods("POST")
	router.HandleFunc("/payment-details/{paymentIntentId}", s.getPaymentDetailsPage()).Methods("GET")

	// Stripe calls this endpoint to confirm events out-of-band
	router.HandleFunc("/webhook", s.webhookNotification()).Methods("POST")

	return s.service.CreateTopics(c)
}

// createPaymentSheetPage creates a payment-intent that the on-device payment-sheet can be fed with
func (s *webService) createPaymentSheetPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		req, err := parsePaymentSheetRequest(r)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		resp, err := s.service.createPaymentSheet(c, req)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, resp)
	}
}

func (s *webService) getPaymentDetailsPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		intentUID := mux.Vars(r)["paymentIntentId"]

		resp, err := s.service.getPaymentDetails(c, intentUID)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, resp)
	}
}

// webhookNotification verifies the signature over the raw request body before anything else
func (s *webService) webhookNotification() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		payload, err := io.ReadAll(r.Body)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(fmt.Errorf("error reading webhook payload: %s", err)))
			return
		}

		err = s.service.handleWebhookEvent(c, payload, r.Header.Get("Stripe-Signature"))
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, WebhookResponse{Received: true})
	}
}

func parsePaymentSheetRequest(r *http.Request) (CreatePaymentSheetRequest, error) {
	req := CreatePaymentSheetRequest{}

	// an absent or empty body means: use the default amount
	if r.Body == nil {
		return req, nil
	}

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil && !errors.Is(err, io.EOF) {
		return CreatePaymentSheetRequest{}, myerrors.NewInvalidInputError(fmt.Errorf("error parsing request: %s", err))
	}

	return req, nil
}
