package catalog

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/meatshop/lib/mycontext"
	"github.com/MarcGrol/meatshop/lib/myerrors"
	"github.com/MarcGrol/meatshop/lib/myhttp"
	"github.com/MarcGrol/meatshop/lib/mylog"
)

type webService struct {
	logger   mylog.Logger
	products []Product
}

func NewWebService() *webService {
	return &webService{
		logger:   mylog.New("catalog"),
		products: Products(),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/products", s.listProductsPage()).Methods("GET")
	router.HandleFunc("/products/{productUID}", s.getProductPage()).Methods("GET")
}

func (s *webService) listProductsPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		errorWriter.Write(c, w, http.StatusOK, s.products)
	}
}

func (s *webService) getProductPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		productUID := mux.Vars(r)["productUID"]

		for _, p := range s.products {
			if p.UID == productUID {
				errorWriter.Write(c, w, http.StatusOK, p)
				return
			}
		}

		errorWriter.WriteError(c, w, 1, myerrors.NewNotFoundError(fmt.Errorf("product with uid %s not found", productUID)))
	}
}
