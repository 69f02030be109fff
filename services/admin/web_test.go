package admin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/aoigroupbuy/storefront/lib/mytime"
	"github.com/aoigroupbuy/storefront/lib/myuuid"
	"github.com/aoigroupbuy/storefront/lib/myvault"
)

func TestAdminService(t *testing.T) {

	t.Run("Login", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, router, sut, vault, nower, uuider := setup(t, ctrl)

		// given
		nower.EXPECT().Now().Return(mytime.ExampleTime)
		uuider.EXPECT().Create().Return("session-123")

		// when
		response := postLogin(t, router, "admin", "secret")

		// then
		assert.Equal(t, 200, response.Code)
		assert.Contains(t, response.Body.String(), "session-123")
		session, exists, _ := vault.Get(ctx, "session-123")
		assert.True(t, exists)
		assert.Equal(t, mytime.ExampleTime.Add(30*24*time.Hour), session.ExpiresAt)

		// verification accepts the fresh session
		nower.EXPECT().Now().Return(mytime.ExampleTime)
		assert.NoError(t, sut.Verify(ctx, "session-123"))
	})

	t.Run("Login with wrong credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, _, _ := setup(t, ctrl)

		// when
		response := postLogin(t, router, "admin", "guessed")

		// then
		assert.Equal(t, 403, response.Code)
	})

	t.Run("Login with missing credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, _, _ := setup(t, ctrl)

		// when
		response := postLogin(t, router, "", "")

		// then
		assert.Equal(t, 400, response.Code)
	})

	t.Run("Verify unknown session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, _, sut, _, _, _ := setup(t, ctrl)

		// then
		assert.Error(t, sut.Verify(ctx, "no-such-session"))
		assert.Error(t, sut.Verify(ctx, ""))
	})

	t.Run("Verify expired session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, _, sut, vault, nower, _ := setup(t, ctrl)

		// given
		vault.Put(ctx, "session-old", myvault.Session{
			UID:       "session-old",
			CreatedAt: mytime.ExampleTime.Add(-31 * 24 * time.Hour),
			ExpiresAt: mytime.ExampleTime.Add(-24 * time.Hour),
		})
		nower.EXPECT().Now().Return(mytime.ExampleTime)

		// then
		assert.Error(t, sut.Verify(ctx, "session-old"))
	})

	t.Run("Logout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, router, _, vault, _, _ := setup(t, ctrl)

		// given
		vault.Put(ctx, "session-123", myvault.Session{
			UID:       "session-123",
			CreatedAt: mytime.ExampleTime,
			ExpiresAt: mytime.ExampleTime.Add(30 * 24 * time.Hour),
		})

		// when
		request, err := http.NewRequest(http.MethodPost, "/api/admin/logout", nil)
		assert.NoError(t, err)
		request.Header.Set(SessionHeader, "session-123")
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		_, exists, _ := vault.Get(ctx, "session-123")
		assert.False(t, exists)
	})
}

func setup(t *testing.T, ctrl *gomock.Controller) (context.Context, *mux.Router, *webService, myvault.Vault, *mytime.MockNower, *myuuid.MockUUIDer) {
	c := context.TODO()
	vault, _, err := myvault.New(c)
	assert.NoError(t, err)
	nower := mytime.NewMockNower(ctrl)
	uuider := myuuid.NewMockUUIDer(ctrl)

	sut := NewService(NewStaticAuthenticator("admin", "secret"), vault, nower, uuider)
	router := mux.NewRouter()
	sut.RegisterEndpoints(c, router)

	return c, router, sut, vault, nower, uuider
}

func postLogin(t *testing.T, router *mux.Router, username string, password string) *httptest.ResponseRecorder {
	values := url.Values{}
	if username != "" {
		values.Set("username", username)
	}
	if password != "" {
		values.Set("password", password)
	}
	request, err := http.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(values.Encode()))
	assert.NoError(t, err)
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	response := httptest.NewRecorder()
	router.ServeHTTP(response, request)
	return response
}
