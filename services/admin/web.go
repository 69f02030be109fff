package admin

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/aoigroupbuy/storefront/lib/mycontext"
	"github.com/aoigroupbuy/storefront/lib/myerrors"
	"github.com/aoigroupbuy/storefront/lib/myhttp"
	"github.com/aoigroupbuy/storefront/lib/mylog"
	"github.com/aoigroupbuy/storefront/lib/mytime"
	"github.com/aoigroupbuy/storefront/lib/myuuid"
	"github.com/aoigroupbuy/storefront/lib/myvault"
)

// SessionHeader carries the admin session uid on admin-only requests.
const SessionHeader = "X-Session-UID"

type sessionResponse struct {
	SessionUID string
}

type webService struct {
	service *service
	logger  mylog.Logger
}

// Use dependency injection to isolate the infrastructure and ease testing
func NewService(authenticator Authenticator, vault myvault.Vault, nower mytime.Nower, uuider myuuid.UUIDer) *webService {
	logger := mylog.New("admin")
	return &webService{
		service: newService(authenticator, vault, nower, uuider, logger),
		logger:  logger,
	}
}

func (s webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/api/admin/login", s.loginPage()).Methods("POST")
	router.HandleFunc("/api/admin/logout", s.logoutPage()).Methods("POST")
}

// Verify exposes session verification to other services.
func (s webService) Verify(c context.Context, sessionUID string) error {
	return s.service.Verify(c, sessionUID)
}

func (s webService) loginPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		err := r.ParseForm()
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(err))
			return
		}

		username := r.Form.Get("username")
		password := r.Form.Get("password")
		if username == "" || password == "" {
			errorWriter.WriteError(c, w, 2, myerrors.NewInvalidInputError(fmt.Errorf("missing username or password")))
			return
		}

		session, err := s.service.login(c, username, password)
		if err != nil {
			errorWriter.WriteError(c, w, 3, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, sessionResponse{
			SessionUID: session.UID,
		})
	}
}

func (s webService) logoutPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		err := s.service.logout(c, r.Header.Get(SessionHeader))
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, myhttp.EmptyResponse{})
	}
}
