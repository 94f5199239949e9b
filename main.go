package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/meatshop/lib/mypublisher"
	"github.com/MarcGrol/meatshop/lib/mypubsub"
	"github.com/MarcGrol/meatshop/lib/myqueue"
	"github.com/MarcGrol/meatshop/lib/mystore"
	"github.com/MarcGrol/meatshop/lib/mytime"
	"github.com/MarcGrol/meatshop/services/catalog"
	"github.com/MarcGrol/meatshop/services/orders"
	"github.com/MarcGrol/meatshop/services/paymentbroker"
)

func main() {
	c := context.Background()

	apiKey := os.Getenv("STRIPE_SECRET_KEY")
	if apiKey == "" {
		log.Fatalf("Missing env-var STRIPE_SECRET_KEY")
	}
	webhookSecret := os.Getenv("STRIPE_WEBHOOK_SECRET")
	if webhookSecret == "" {
		log.Fatalf("Missing env-var STRIPE_WEBHOOK_SECRET")
	}

	router := mux.NewRouter()

	queue, queueCleanup, err := myqueue.New(c)
	if err != nil {
		log.Fatalf("Error creating task-queue: %s", err)
	}
	defer queueCleanup()

	pubsub, pubsubCleanup, err := mypubsub.New(c)
	if err != nil {
		log.Fatalf("Error creating pubsub: %s", err)
	}
	defer pubsubCleanup()

	publisher, publisherCleanup, err := mypublisher.New(c, pubsub, queue, mytime.RealNower{})
	if err != nil {
		log.Fatalf("Error creating event-publisher: %s", err)
	}
	defer publisherCleanup()
	publisher.RegisterEndpoints(c, router)

	catalogService := catalog.NewWebService()
	catalogService.RegisterEndpoints(c, router)

	brokerService, err := paymentbroker.NewWebService(apiKey, webhookSecret, paymentbroker.NewPayer(), publisher)
	if err != nil {
		log.Fatalf("Error creating payment-broker service: %s", err)
	}
	err = brokerService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering payment-broker service: %s", err)
	}

	orderStore, orderStoreCleanup, err := mystore.New[orders.Order](c)
	if err != nil {
		log.Fatalf("Error creating order-store: %s", err)
	}
	defer orderStoreCleanup()
	orderService := orders.NewWebService(orderStore, pubsub, mytime.RealNower{})
	err = orderService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering order service: %s", err)
	}

	startWebServerBlocking(router)
}

func startWebServerBlocking(router *mux.Router) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting webserver on port %s (try http://localhost:%s)", port, port)
	err := http.ListenAndServe(fmt.Sprintf(":%s", port), router)
	if err != nil {
		log.Fatalf("Error starting webserver on port %s: %s", port, err)
	}
}
