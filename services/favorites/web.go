package favorites

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

type favoritesResponse struct {
	Favorites Favorites `json:"favorites"`
}

type webService struct {
	service *service
	logger  mylog.Logger
}

// Use dependency injection to isolate the infrastructure and ease testing
func NewService(store mystore.Store[Favorites], nower mytime.Nower) *webService {
	logger := mylog.New("favorites")
	return &webService{
		service: newService(store, nower, logger),
		logger:  logger,
	}
}

func (s webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/api/favorites/{visitorUID}", s.listPage()).Methods("GET")
	router.HandleFunc("/api/favorites/{visitorUID}/{productUID}", s.togglePage()).Methods("PUT")
}

func (s webService) listPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		favorites, err := s.service.list(c, mux.Vars(r)["visitorUID"])
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, favoritesResponse{
			Favorites: favorites,
		})
	}
}

func (s webService) togglePage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		vars := mux.Vars(r)

		favorites, err := s.service.toggle(c, vars["visitorUID"], vars["productUID"])
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, favoritesResponse{
			Favorites: favorites,
		})
	}
}
