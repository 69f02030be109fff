package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/aoigroupbuy/storefront/lib/myerrors"
	"github.com/aoigroupbuy/storefront/lib/mypublisher"
	"github.com/aoigroupbuy/storefront/lib/mystore"
	"github.com/aoigroupbuy/storefront/lib/mytime"
	"github.com/aoigroupbuy/storefront/lib/myuuid"
	"github.com/aoigroupbuy/storefront/services/admin"
	"github.com/aoigroupbuy/storefront/services/catalog/catalogevents"
)

func TestCatalogService(t *testing.T) {

	t.Run("Seed fallback on fetch failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _ := setup(t, ctrl, nil, fmt.Errorf("sheet unreachable"))

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/products", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		got := response.Body.String()
		assert.Contains(t, got, "膠原蛋白粉")
		assert.Contains(t, got, "純棉水洗涼被")
		assert.NotContains(t, got, "抽獎活動")
	})

	t.Run("Fetch replaces remotely deleted products", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// given a store that still holds a product the sheet no longer has
		c := context.TODO()
		storer, _, _ := mystore.New[Product](c)
		storer.Put(c, "stale", Product{UID: "stale", Name: "已下架商品", Category: CategoryDaily, Price: 100})

		syncer := NewMockSyncer(ctrl)
		verifier := admin.NewMockSessionVerifier(ctrl)
		nower := mytime.NewMockNower(ctrl)
		uuider := myuuid.NewMockUUIDer(ctrl)
		publisher := mypublisher.NewMockPublisher(ctrl)

		sut := NewService(storer, syncer, verifier, nower, uuider, publisher)
		router := mux.NewRouter()

		// These are called by the following call to RegisterEndpoints()
		publisher.EXPECT().CreateTopic(c, catalogevents.TopicName).Return(nil)
		syncer.EXPECT().Fetch(c).Return(exampleCatalog(), nil)

		// when
		err := sut.RegisterEndpoints(c, router)
		assert.NoError(t, err)

		// then
		_, exists, _ := storer.Get(c, "stale")
		assert.False(t, exists)
		_, exists, _ = storer.Get(c, "p1")
		assert.True(t, exists)
	})

	t.Run("List products filtered on category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _ := setup(t, ctrl, exampleCatalog(), nil)

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/products?category=health", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		got := response.Body.String()
		assert.Contains(t, got, "魚油")
		assert.NotContains(t, got, "洗碗精")
	})

	t.Run("Get product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _ := setup(t, ctrl, exampleCatalog(), nil)

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/products/p1", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		assert.Contains(t, response.Body.String(), "魚油")
	})

	t.Run("Get product not exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _ := setup(t, ctrl, exampleCatalog(), nil)

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/products/unknown", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 404, response.Code)
	})

	t.Run("Active countdown product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, deps := setup(t, ctrl, exampleCatalog(), nil)
		deps.nower.EXPECT().Now().Return(mytime.ExampleTime)

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/products/countdown", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		assert.Contains(t, response.Body.String(), "人蔘精華飲")
	})

	t.Run("Upsert product without session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, deps := setup(t, ctrl, exampleCatalog(), nil)

		// given
		deps.verifier.EXPECT().Verify(gomock.Any(), "").Return(myerrors.NewAuthenticationError(fmt.Errorf("no session")))

		// when
		request, err := http.NewRequest(http.MethodPut, "/api/products", strings.NewReader(`{"name":"新品","category":"daily","price":100}`))
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 403, response.Code)
	})

	t.Run("Upsert product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, router, storer, deps := setup(t, ctrl, exampleCatalog(), nil)

		// given
		deps.verifier.EXPECT().Verify(gomock.Any(), "session-123").Return(nil)
		deps.uuider.EXPECT().Create().Return("p9")
		deps.publisher.EXPECT().Publish(gomock.Any(), catalogevents.TopicName, catalogevents.ProductUpserted{ProductUID: "p9"}).Return(nil)
		deps.syncer.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

		// when
		request, err := http.NewRequest(http.MethodPut, "/api/products", strings.NewReader(`{"name":"新品","category":"daily","price":100}`))
		assert.NoError(t, err)
		request.Header.Set(admin.SessionHeader, "session-123")
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		product, exists, _ := storer.Get(ctx, "p9")
		assert.True(t, exists)
		assert.Equal(t, "新品", product.Name)
		assert.Equal(t, 100, product.Price)
	})

	t.Run("Upsert product with sheet down keeps local edit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, router, storer, deps := setup(t, ctrl, exampleCatalog(), nil)

		// given
		deps.verifier.EXPECT().Verify(gomock.Any(), "session-123").Return(nil)
		deps.publisher.EXPECT().Publish(gomock.Any(), catalogevents.TopicName, catalogevents.ProductUpserted{ProductUID: "p1"}).Return(nil)
		deps.syncer.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(fmt.Errorf("sheet down"))

		// when
		request, err := http.NewRequest(http.MethodPut, "/api/products", strings.NewReader(`{"id":"p1","name":"深海魚油改版","category":"health","price":750}`))
		assert.NoError(t, err)
		request.Header.Set(admin.SessionHeader, "session-123")
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 503, response.Code)
		product, exists, _ := storer.Get(ctx, "p1")
		assert.True(t, exists)
		assert.Equal(t, "深海魚油改版", product.Name)
	})

	t.Run("Delete product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, router, storer, deps := setup(t, ctrl, exampleCatalog(), nil)

		// given
		deps.verifier.EXPECT().Verify(gomock.Any(), "session-123").Return(nil)
		deps.publisher.EXPECT().Publish(gomock.Any(), catalogevents.TopicName, catalogevents.ProductDeleted{ProductUID: "p1"}).Return(nil)
		deps.syncer.EXPECT().Delete(gomock.Any(), "p1").Return(nil)

		// when
		request, err := http.NewRequest(http.MethodDelete, "/api/products/p1", nil)
		assert.NoError(t, err)
		request.Header.Set(admin.SessionHeader, "session-123")
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		_, exists, _ := storer.Get(ctx, "p1")
		assert.False(t, exists)
	})
}

type testDeps struct {
	syncer    *MockSyncer
	verifier  *admin.MockSessionVerifier
	nower     *mytime.MockNower
	uuider    *myuuid.MockUUIDer
	publisher *mypublisher.MockPublisher
}

func setup(t *testing.T, ctrl *gomock.Controller, fetched []Product, fetchErr error) (context.Context, *mux.Router, mystore.Store[Product], testDeps) {
	c := context.TODO()
	storer, _, _ := mystore.New[Product](c)
	deps := testDeps{
		syncer:    NewMockSyncer(ctrl),
		verifier:  admin.NewMockSessionVerifier(ctrl),
		nower:     mytime.NewMockNower(ctrl),
		uuider:    myuuid.NewMockUUIDer(ctrl),
		publisher: mypublisher.NewMockPublisher(ctrl),
	}

	sut := NewService(storer, deps.syncer, deps.verifier, deps.nower, deps.uuider, deps.publisher)
	router := mux.NewRouter()

	// These are called by the following call to RegisterEndpoints()
	deps.publisher.EXPECT().CreateTopic(c, catalogevents.TopicName).Return(nil)
	deps.syncer.EXPECT().Fetch(c).Return(fetched, fetchErr)
	if fetchErr != nil {
		deps.nower.EXPECT().Now().Return(mytime.ExampleTime)
	}

	err := sut.RegisterEndpoints(c, router)
	assert.NoError(t, err)

	return c, router, storer, deps
}

func exampleCatalog() []Product {
	countdown := mytime.ExampleTime.Add(24 * time.Hour)

	return []Product{
		{
			UID:      "p1",
			Name:     "挪威深海魚油",
			Category: CategoryHealth,
			Price:    680,
			Status:   StatusAvailable,
			Variants: []string{"90顆裝", "180顆裝"},
			MaxLimit: 3,
		},
		{
			UID:        "p2",
			Name:       "環保濃縮洗碗精",
			Category:   CategoryDaily,
			Price:      199,
			Status:     StatusAvailable,
			Variants:   []string{},
			InCarousel: true,
		},
		{
			UID:             "p3",
			Name:            "【限量】韓國人蔘精華飲",
			Category:        CategoryLimited,
			Price:           2980,
			Status:          StatusLimited,
			Variants:        []string{"一盒(30入)"},
			CountdownTarget: &countdown,
		},
	}
}
