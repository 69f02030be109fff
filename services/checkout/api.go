package checkout

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	formcodec "github.com/go-playground/form/v4"

	"github.com/aoigroupbuy/storefront/lib/myerrors"
	"github.com/aoigroupbuy/storefront/services/cart"
	"github.com/aoigroupbuy/storefront/services/catalog"
)

//go:generate mockgen -source=api.go -package checkout -destination checkout_mock.go CartReader,CatalogReader
type CartReader interface {
	GetCart(c context.Context, visitorUID string) (cart.Cart, error)
}

type CatalogReader interface {
	GetProduct(c context.Context, productUID string) (catalog.Product, error)
}

type OrderForm struct {
	Variant  string `form:"variant"`
	Quantity int    `form:"quantity"`
}

func NewOrderFormFromRequest(r *http.Request) (OrderForm, error) {
	err := r.ParseForm()
	if err != nil {
		return OrderForm{}, myerrors.NewInvalidInputError(err)
	}
	return newOrderFormFromValues(r.Form)
}

func newOrderFormFromValues(values url.Values) (OrderForm, error) {
	form := OrderForm{}
	err := formcodec.NewDecoder().Decode(&form, values)
	if err != nil {
		return form, myerrors.NewInvalidInputError(fmt.Errorf("error decoding form: %s", err))
	}

	if form.Quantity == 0 {
		form.Quantity = 1
	}
	if form.Quantity < 0 {
		return form, myerrors.NewInvalidInputErrorf("invalid quantity %d", form.Quantity)
	}

	return form, nil
}
