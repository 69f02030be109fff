package checkout

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/aoigroupbuy/storefront/lib/mypublisher"
	"github.com/aoigroupbuy/storefront/lib/myuuid"
	"github.com/aoigroupbuy/storefront/services/cart"
	"github.com/aoigroupbuy/storefront/services/catalog"
	"github.com/aoigroupbuy/storefront/services/checkout/checkoutevents"
)

var exampleCart = cart.Cart{
	UID:       "visitor-1",
	CreatedAt: time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC),
	Lines: []cart.Line{
		{ProductUID: "1", ProductName: "日本原裝進口 膠原蛋白粉", UnitPrice: 899, Variant: "30天份袋裝", Quantity: 2},
		{ProductUID: "3", ProductName: "【限量】韓國頂級人蔘精華飲", UnitPrice: 2980, Variant: "一盒(30入)", Quantity: 1},
	},
}

var ginseng = catalog.Product{
	UID:      "3",
	Name:     "【限量】韓國頂級人蔘精華飲",
	Category: catalog.CategoryLimited,
	Price:    2980,
	Status:   catalog.StatusLimited,
	Variants: []string{"一盒(30入)", "三盒優惠組"},
}

func TestCheckoutService(t *testing.T) {

	t.Run("Checkout cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, cartReader, _, uuider, publisher := setup(t, ctrl)

		// given
		cartReader.EXPECT().GetCart(gomock.Any(), "visitor-1").Return(exampleCart, nil)
		uuider.EXPECT().Create().Return("order-123")
		publisher.EXPECT().Publish(gomock.Any(), checkoutevents.TopicName, checkoutevents.OrderSubmitted{
			OrderUID: "order-123",
			Items: []checkoutevents.OrderedItem{
				{ProductUID: "1", Quantity: 2},
				{ProductUID: "3", Quantity: 1},
			},
		}).Return(nil)

		// when
		request, err := http.NewRequest(http.MethodPost, "/api/cart/visitor-1/checkout", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 303, response.Code)
		location := response.Header().Get("Location")
		assert.True(t, strings.HasPrefix(location, "https://line.me/R/oaMessage/@234csaak/?"))

		decoded, err := url.QueryUnescape(strings.TrimPrefix(location, "https://line.me/R/oaMessage/@234csaak/?"))
		assert.NoError(t, err)
		assert.Contains(t, decoded, "訂單預約")
		assert.Contains(t, decoded, "1. 日本原裝進口 膠原蛋白粉")
		assert.Contains(t, decoded, "總計金額：$4778")
	})

	t.Run("Checkout empty cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, cartReader, _, _, _ := setup(t, ctrl)

		// given
		cartReader.EXPECT().GetCart(gomock.Any(), "visitor-1").Return(cart.Cart{UID: "visitor-1"}, nil)

		// when
		request, err := http.NewRequest(http.MethodPost, "/api/cart/visitor-1/checkout", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 400, response.Code)
	})

	t.Run("Checkout redirects even when publication fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, cartReader, _, uuider, publisher := setup(t, ctrl)

		// given
		cartReader.EXPECT().GetCart(gomock.Any(), "visitor-1").Return(exampleCart, nil)
		uuider.EXPECT().Create().Return("order-123")
		publisher.EXPECT().Publish(gomock.Any(), checkoutevents.TopicName, gomock.Any()).Return(fmt.Errorf("queue down"))

		// when
		request, err := http.NewRequest(http.MethodPost, "/api/cart/visitor-1/checkout", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 303, response.Code)
	})

	t.Run("Order single product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, catalogMock, uuider, publisher := setup(t, ctrl)

		// given
		catalogMock.EXPECT().GetProduct(gomock.Any(), "3").Return(ginseng, nil)
		uuider.EXPECT().Create().Return("order-456")
		publisher.EXPECT().Publish(gomock.Any(), checkoutevents.TopicName, checkoutevents.OrderSubmitted{
			OrderUID: "order-456",
			Items: []checkoutevents.OrderedItem{
				{ProductUID: "3", Quantity: 2},
			},
		}).Return(nil)

		// when
		values := url.Values{"variant": {"一盒(30入)"}, "quantity": {"2"}}
		request, err := http.NewRequest(http.MethodPost, "/api/products/3/order", strings.NewReader(values.Encode()))
		assert.NoError(t, err)
		request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 303, response.Code)
		location := response.Header().Get("Location")

		decoded, err := url.QueryUnescape(strings.TrimPrefix(location, "https://line.me/R/oaMessage/@234csaak/?"))
		assert.NoError(t, err)
		assert.Contains(t, decoded, "立即詢問")
		assert.Contains(t, decoded, "我想詢問商品：【限量】韓國頂級人蔘精華飲")
		assert.Contains(t, decoded, "數量：2")
	})

	t.Run("Order single product without mandatory variant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, catalogMock, _, _ := setup(t, ctrl)

		// given
		catalogMock.EXPECT().GetProduct(gomock.Any(), "3").Return(ginseng, nil)

		// when
		request, err := http.NewRequest(http.MethodPost, "/api/products/3/order", strings.NewReader("quantity=1"))
		assert.NoError(t, err)
		request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 400, response.Code)
	})
}

func setup(t *testing.T, ctrl *gomock.Controller) (context.Context, *mux.Router, *MockCartReader, *MockCatalogReader, *myuuid.MockUUIDer, *mypublisher.MockPublisher) {
	c := context.TODO()
	cartReader := NewMockCartReader(ctrl)
	catalogMock := NewMockCatalogReader(ctrl)
	uuider := myuuid.NewMockUUIDer(ctrl)
	publisher := mypublisher.NewMockPublisher(ctrl)

	sut := NewService("@234csaak", cartReader, catalogMock, publisher, uuider)
	router := mux.NewRouter()

	// These are called by the following call to RegisterEndpoints()
	publisher.EXPECT().CreateTopic(c, checkoutevents.TopicName).Return(nil)

	err := sut.RegisterEndpoints(c, router)
	assert.NoError(t, err)

	return c, router, cartReader, catalogMock, uuider, publisher
}
