package warmup

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/aoigroupbuy/storefront/lib/mycontext"
	"github.com/aoigroupbuy/storefront/lib/myerrors"
	"github.com/aoigroupbuy/storefront/lib/myhttp"
	"github.com/aoigroupbuy/storefront/lib/mylog"
	"github.com/aoigroupbuy/storefront/lib/mystore"
	"github.com/aoigroupbuy/storefront/lib/myvault"
	"github.com/aoigroupbuy/storefront/services/catalog"
)

type webService struct {
	logger       mylog.Logger
	vault        myvault.VaultReader
	productStore mystore.Store[catalog.Product]
}

// Use dependency injection to isolate the infrastructure and ease testing
func NewService(vault myvault.VaultReader, productStore mystore.Store[catalog.Product]) *webService {
	logger := mylog.New("warmup")
	return &webService{
		logger:       logger,
		vault:        vault,
		productStore: productStore,
	}
}

func (s webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/_ah/warmup", s.warmupPage()).Methods("GET")
}

// warmupPage touches the datastore-backed collaborators so a fresh
// instance has warmed its connections before serving visitors.
func (s *webService) warmupPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		_, _, err := s.vault.Get(c, "warmup")
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInternalError(err))
			return
		}

		_, err = s.productStore.List(c)
		if err != nil {
			errorWriter.WriteError(c, w, 2, myerrors.NewInternalError(err))
			return
		}

		errorWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: "Successfully processed warmup request",
		})
	}
}
