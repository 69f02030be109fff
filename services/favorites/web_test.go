package favorites

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/aoigroupbuy/storefront/lib/mystore"
	"github.com/aoigroupbuy/storefront/lib/mytime"
)

func TestFavoritesService(t *testing.T) {

	t.Run("List favorites of unknown visitor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _ := setup(t, ctrl)

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/favorites/visitor-1", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		assert.Contains(t, response.Body.String(), `"ProductUIDs": []`)
	})

	t.Run("Toggle adds absent product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, router, storer, nower := setup(t, ctrl)
		nower.EXPECT().Now().Return(mytime.ExampleTime)

		// when
		request, err := http.NewRequest(http.MethodPut, "/api/favorites/visitor-1/1", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		favorites, exists, _ := storer.Get(ctx, "visitor-1")
		assert.True(t, exists)
		assert.Equal(t, []string{"1"}, favorites.ProductUIDs)
	})

	t.Run("Toggle removes present product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, router, storer, nower := setup(t, ctrl)
		nower.EXPECT().Now().Return(mytime.ExampleTime)

		// given
		storer.Put(ctx, "visitor-1", Favorites{
			UID:         "visitor-1",
			ProductUIDs: []string{"1", "3"},
		})

		// when
		request, err := http.NewRequest(http.MethodPut, "/api/favorites/visitor-1/1", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		favorites, _, _ := storer.Get(ctx, "visitor-1")
		assert.Equal(t, []string{"3"}, favorites.ProductUIDs)
	})
}

func setup(t *testing.T, ctrl *gomock.Controller) (context.Context, *mux.Router, mystore.Store[Favorites], *mytime.MockNower) {
	c := context.TODO()
	storer, _, _ := mystore.New[Favorites](c)
	nower := mytime.NewMockNower(ctrl)

	sut := NewService(storer, nower)
	router := mux.NewRouter()
	sut.RegisterEndpoints(c, router)

	return c, router, storer, nower
}
