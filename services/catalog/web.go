package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/aoigroupbuy/storefront/lib/mycontext"
	"github.com/aoigroupbuy/storefront/lib/myerrors"
	"github.com/aoigroupbuy/storefront/lib/myhttp"
	"github.com/aoigroupbuy/storefront/lib/mylog"
	"github.com/aoigroupbuy/storefront/lib/mypublisher"
	"github.com/aoigroupbuy/storefront/lib/mystore"
	"github.com/aoigroupbuy/storefront/lib/mytime"
	"github.com/aoigroupbuy/storefront/lib/myuuid"
	"github.com/aoigroupbuy/storefront/services/admin"
	"github.com/aoigroupbuy/storefront/services/catalog/catalogevents"
)

type productListResponse struct {
	Products []Product `json:"products"`
}

type productResponse struct {
	Product Product `json:"product"`
}

type webService struct {
	service  *service
	verifier admin.SessionVerifier
	logger   mylog.Logger
}

// Use dependency injection to isolate the infrastructure and ease testing
func NewService(store mystore.Store[Product], syncer Syncer, verifier admin.SessionVerifier, nower mytime.Nower, uuider myuuid.UUIDer, pub mypublisher.Publisher) *webService {
	logger := mylog.New("catalog")
	return &webService{
		service:  newService(store, syncer, nower, uuider, logger, pub),
		verifier: verifier,
		logger:   logger,
	}
}

func (s webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	err := s.service.publisher.CreateTopic(c, catalogevents.TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %s", catalogevents.TopicName, err)
	}

	err = s.service.load(c)
	if err != nil {
		return fmt.Errorf("error loading catalog: %s", err)
	}

	router.HandleFunc("/api/products", s.listPage()).Methods("GET")
	router.HandleFunc("/api/products/countdown", s.countdownPage()).Methods("GET")
	router.HandleFunc("/api/products/carousel", s.carouselPage()).Methods("GET")
	router.HandleFunc("/api/products/{productUID}", s.getPage()).Methods("GET")
	router.HandleFunc("/api/products", s.upsertPage()).Methods("PUT")
	router.HandleFunc("/api/products/{productUID}", s.deletePage()).Methods("DELETE")

	return nil
}

// GetProduct exposes product lookup to other services.
func (s webService) GetProduct(c context.Context, productUID string) (Product, error) {
	return s.service.getProduct(c, productUID)
}

func (s webService) listPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		products, err := s.service.listProducts(c, r.URL.Query().Get("category"))
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, productListResponse{
			Products: products,
		})
	}
}

func (s webService) countdownPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		product, found, err := s.service.activeCountdownProduct(c, s.service.nower.Now())
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}
		if !found {
			errorWriter.WriteError(c, w, 2, myerrors.NewNotFoundError(fmt.Errorf("no active countdown")))
			return
		}

		errorWriter.Write(c, w, http.StatusOK, productResponse{
			Product: product,
		})
	}
}

func (s webService) carouselPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		products, err := s.service.carouselProducts(c)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, productListResponse{
			Products: products,
		})
	}
}

func (s webService) getPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		productUID := mux.Vars(r)["productUID"]

		product, err := s.service.getProduct(c, productUID)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, productResponse{
			Product: product,
		})
	}
}

func (s webService) upsertPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		err := s.verifier.Verify(c, r.Header.Get(admin.SessionHeader))
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		product := Product{}
		err = json.NewDecoder(r.Body).Decode(&product)
		if err != nil {
			errorWriter.WriteError(c, w, 2, myerrors.NewInvalidInputError(fmt.Errorf("error parsing product: %s", err)))
			return
		}

		product, err = s.service.upsertProduct(c, product)
		if err != nil {
			errorWriter.WriteError(c, w, 3, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, productResponse{
			Product: product,
		})
	}
}

func (s webService) deletePage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		err := s.verifier.Verify(c, r.Header.Get(admin.SessionHeader))
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		productUID := mux.Vars(r)["productUID"]

		err = s.service.deleteProduct(c, productUID)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: fmt.Sprintf("product %s removed", productUID),
		})
	}
}
