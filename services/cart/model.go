package cart

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	formcodec "github.com/go-playground/form/v4"

	"github.com/aoigroupbuy/storefront/lib/myerrors"
	"github.com/aoigroupbuy/storefront/services/pricing"
)

// Cart holds the pending order of a single visitor. A visitor is keyed by
// the uid its browser presents, a line by product plus variant.
type Cart struct {
	UID          string
	CreatedAt    time.Time
	LastModified *time.Time
	Lines        []Line
}

type Line struct {
	ProductUID  string
	ProductName string
	UnitPrice   int
	Variant     string
	Quantity    int
}

// SubTotal applies the variant price override before multiplying.
func (l Line) SubTotal() int {
	return pricing.EffectiveUnitPrice(l.UnitPrice, l.Variant) * l.Quantity
}

func (c Cart) ItemCount() int {
	count := 0
	for _, l := range c.Lines {
		count += l.Quantity
	}
	return count
}

func (c Cart) TotalPrice() int {
	total := 0
	for _, l := range c.Lines {
		total += l.SubTotal()
	}
	return total
}

func (c Cart) lineIndex(productUID string, variant string) int {
	for i, l := range c.Lines {
		if l.ProductUID == productUID && l.Variant == variant {
			return i
		}
	}
	return -1
}

type AddItemForm struct {
	ProductUID string `form:"productUid"`
	Variant    string `form:"variant"`
	Quantity   int    `form:"quantity"`
}

func NewAddItemFormFromRequest(r *http.Request) (AddItemForm, error) {
	err := r.ParseForm()
	if err != nil {
		return AddItemForm{}, myerrors.NewInvalidInputError(err)
	}
	return newAddItemFormFromValues(r.Form)
}

func newAddItemFormFromValues(values url.Values) (AddItemForm, error) {
	form := AddItemForm{}
	err := formcodec.NewDecoder().Decode(&form, values)
	if err != nil {
		return form, myerrors.NewInvalidInputError(fmt.Errorf("error decoding form: %s", err))
	}

	if form.ProductUID == "" {
		return form, myerrors.NewInvalidInputError(fmt.Errorf("missing productUid"))
	}
	if form.Quantity == 0 {
		form.Quantity = 1
	}
	if form.Quantity < 0 {
		return form, myerrors.NewInvalidInputErrorf("invalid quantity %d", form.Quantity)
	}

	return form, nil
}
