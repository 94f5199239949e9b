package orders

import (
	"github.com/MarcGrol/meatshop/lib/mylog"
	"github.com/MarcGrol/meatshop/lib/mypubsub"
	"github.com/MarcGrol/meatshop/lib/mystore"
	"github.com/MarcGrol/meatshop/lib/mytime"
)

type service struct {
	orderStore mystore.Store[Order]
	subscriber mypubsub.PubSub
	nower      mytime.Nower
	logger     mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func newService(store mystore.Store[Order], subscriber mypubsub.PubSub, nower mytime.Nower, logger mylog.Logger) *service {
	return &service{
		orderStore: store,
		subscriber: subscriber,
		nower:      nower,
		logger:     logger,
	}
}
