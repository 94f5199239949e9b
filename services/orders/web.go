package orders

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/meatshop/lib/mycontext"
	"github.com/MarcGrol/meatshop/lib/myhttp"
	"github.com/MarcGrol/meatshop/lib/mylog"
	"github.com/MarcGrol/meatshop/lib/mypubsub"
	"github.com/MarcGrol/meatshop/lib/mystore"
	"github.com/MarcGrol/meatshop/lib/mytime"
	"github.com/MarcGrol/meatshop/services/paymentevents"
)

type webService struct {
	service *service
	logger  mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(store mystore.Store[Order], subscriber mypubsub.PubSub, nower mytime.Nower) *webService {
	logger := mylog.New("orders")
	return &webService{
		service: newService(store, subscriber, nower, logger),
		logger:  logger,
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/order", s.listOrdersPage()).Methods("GET")
	router.HandleFunc("/order/event", s.handleEventEnvelope()).Methods("POST")
	router.HandleFunc("/order/{orderUID}", s.getOrderPage()).Methods("GET")

	err := s.service.Subscribe(c)
	if err != nil {
		return err
	}

	return nil
}

func (s *webService) listOrdersPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		orders, err := s.service.listOrders(c)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, orders)
	}
}

func (s *webService) getOrderPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		orderUID := mux.Vars(r)["orderUID"]

		order, err := s.service.getOrder(c, orderUID)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, order)
	}
}

// handleEventEnvelope is the endpoint that the pubsub push subscription delivers to
func (s *webService) handleEventEnvelope() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		err := paymentevents.DispatchEvent(c, r.Body, s.service)
		if err != nil {
			errorWriter.WriteError(c, w, 3, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{Message: "Event processed"})
	}
}
