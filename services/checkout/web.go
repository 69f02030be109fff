package checkout

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/aoigroupbuy/storefront/lib/mycontext"
	"github.com/aoigroupbuy/storefront/lib/myhttp"
	"github.com/aoigroupbuy/storefront/lib/mylog"
	"github.com/aoigroupbuy/storefront/lib/mypublisher"
	"github.com/aoigroupbuy/storefront/lib/myuuid"
	"github.com/aoigroupbuy/storefront/services/checkout/checkoutevents"
)

type webService struct {
	service *service
	logger  mylog.Logger
}

// Use dependency injection to isolate the infrastructure and ease testing
func NewService(lineAccountID string, cartReader CartReader, catalog CatalogReader, publisher mypublisher.Publisher, uuider myuuid.UUIDer) *webService {
	logger := mylog.New("checkout")
	return &webService{
		service: newService(lineAccountID, cartReader, catalog, publisher, uuider, logger),
		logger:  logger,
	}
}

func (s webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	err := s.service.publisher.CreateTopic(c, checkoutevents.TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %s", checkoutevents.TopicName, err)
	}

	router.HandleFunc("/api/cart/{visitorUID}/checkout", s.checkoutPage()).Methods("POST")
	router.HandleFunc("/api/products/{productUID}/order", s.orderPage()).Methods("POST")

	return nil
}

func (s webService) checkoutPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		link, err := s.service.checkoutCart(c, mux.Vars(r)["visitorUID"])
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		http.Redirect(w, r, link, http.StatusSeeOther)
	}
}

func (s webService) orderPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		form, err := NewOrderFormFromRequest(r)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		link, err := s.service.orderSingleProduct(c, mux.Vars(r)["productUID"], form)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		http.Redirect(w, r, link, http.StatusSeeOther)
	}
}
