package cart

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/aoigroupbuy/storefront/lib/mycontext"
	"github.com/aoigroupbuy/storefront/lib/myhttp"
	"github.com/aoigroupbuy/storefront/lib/mylog"
	"github.com/aoigroupbuy/storefront/lib/mystore"
	"github.com/aoigroupbuy/storefront/lib/mytime"
)

type cartResponse struct {
	Cart       Cart `json:"cart"`
	ItemCount  int  `json:"itemCount"`
	TotalPrice int  `json:"totalPrice"`
}

type webService struct {
	service *service
	logger  mylog.Logger
}

// Use dependency injection to isolate the infrastructure and ease testing
func NewService(store mystore.Store[Cart], catalog CatalogReader, nower mytime.Nower) *webService {
	logger := mylog.New("cart")
	return &webService{
		service: newService(store, catalog, nower, logger),
		logger:  logger,
	}
}

func (s webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/api/cart/{visitorUID}", s.getPage()).Methods("GET")
	router.HandleFunc("/api/cart/{visitorUID}/items", s.addItemPage()).Methods("POST")
	router.HandleFunc("/api/cart/{visitorUID}/items/{productUID}", s.removeItemPage()).Methods("DELETE")
	router.HandleFunc("/api/cart/{visitorUID}", s.clearPage()).Methods("DELETE")
}

// GetCart exposes cart lookup to the checkout flow.
func (s webService) GetCart(c context.Context, visitorUID string) (Cart, error) {
	return s.service.getCart(c, visitorUID)
}

func (s webService) getPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		cart, err := s.service.getCart(c, mux.Vars(r)["visitorUID"])
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, newCartResponse(cart))
	}
}

func (s webService) addItemPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		form, err := NewAddItemFormFromRequest(r)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		cart, err := s.service.addItem(c, mux.Vars(r)["visitorUID"], form)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, newCartResponse(cart))
	}
}

func (s webService) removeItemPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		vars := mux.Vars(r)
		variant := r.URL.Query().Get("variant")

		cart, err := s.service.removeItem(c, vars["visitorUID"], vars["productUID"], variant)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, newCartResponse(cart))
	}
}

func (s webService) clearPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		err := s.service.clearCart(c, mux.Vars(r)["visitorUID"])
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, myhttp.EmptyResponse{})
	}
}

func newCartResponse(cart Cart) cartResponse {
	return cartResponse{
		Cart:       cart,
		ItemCount:  cart.ItemCount(),
		TotalPrice: cart.TotalPrice(),
	}
}
