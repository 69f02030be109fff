package cart

import (
	"context"
	"fmt"

	"github.com/aoigroupbuy/storefront/lib/myerrors"
	"github.com/aoigroupbuy/storefront/lib/mylog"
	"github.com/aoigroupbuy/storefront/lib/mystore"
	"github.com/aoigroupbuy/storefront/lib/mytime"
)

type service struct {
	cartStore mystore.Store[Cart]
	catalog   CatalogReader
	nower     mytime.Nower
	logger    mylog.Logger
}

// Use dependency injection to isolate the infrastructure and ease testing
func newService(store mystore.Store[Cart], catalog CatalogReader, nower mytime.Nower, logger mylog.Logger) *service {
	return &service{
		cartStore: store,
		catalog:   catalog,
		nower:     nower,
		logger:    logger,
	}
}

func (s *service) getCart(c context.Context, visitorUID string) (Cart, error) {
	cart, found, err := s.cartStore.Get(c, visitorUID)
	if err != nil {
		return Cart{}, myerrors.NewInternalError(err)
	}
	if !found {
		return Cart{
			UID:       visitorUID,
			CreatedAt: s.nower.Now(),
			Lines:     []Line{},
		}, nil
	}

	return cart, nil
}

// addItem adds quantity of (product, variant) to the visitor's cart. The
// purchase limit applies when accumulating onto an existing line; a fresh
// (product, variant) line is always appended. A rejected add leaves the
// cart exactly as it was.
func (s *service) addItem(c context.Context, visitorUID string, form AddItemForm) (Cart, error) {
	product, err := s.catalog.GetProduct(c, form.ProductUID)
	if err != nil {
		return Cart{}, err
	}

	if !product.IsOrderable() {
		return Cart{}, myerrors.NewInvalidInputError(fmt.Errorf("product %s cannot be ordered", product.UID))
	}
	if product.HasVariants() && form.Variant == "" {
		return Cart{}, myerrors.NewInvalidInputError(fmt.Errorf("product %s requires a variant", product.UID))
	}
	if product.HasVariants() && !contains(product.Variants, form.Variant) {
		return Cart{}, myerrors.NewInvalidInputErrorf("unknown variant %q for product %s", form.Variant, product.UID)
	}

	var cart Cart
	err = s.cartStore.RunInTransaction(c, func(c context.Context) error {
		var err error
		cart, err = s.getCart(c, visitorUID)
		if err != nil {
			return err
		}

		idx := cart.lineIndex(form.ProductUID, form.Variant)
		if idx >= 0 {
			newQuantity := cart.Lines[idx].Quantity + form.Quantity
			if product.HasPurchaseLimit() && newQuantity > product.MaxLimit {
				return myerrors.NewInvalidInputError(fmt.Errorf("product %s is limited to %d per person", product.UID, product.MaxLimit))
			}
			cart.Lines[idx].Quantity = newQuantity
		} else {
			cart.Lines = append(cart.Lines, Line{
				ProductUID:  product.UID,
				ProductName: product.Name,
				UnitPrice:   product.Price,
				Variant:     form.Variant,
				Quantity:    form.Quantity,
			})
		}

		now := s.nower.Now()
		cart.LastModified = &now

		return s.cartStore.Put(c, visitorUID, cart)
	})
	if err != nil {
		return Cart{}, err
	}

	s.logger.Log(c, visitorUID, mylog.SeverityInfo, "Added %d x %s (%s) to cart %s", form.Quantity, product.UID, form.Variant, visitorUID)

	return cart, nil
}

// removeItem drops the (product, variant) line entirely. Removing an
// absent line is not an error.
func (s *service) removeItem(c context.Context, visitorUID string, productUID string, variant string) (Cart, error) {
	var cart Cart
	err := s.cartStore.RunInTransaction(c, func(c context.Context) error {
		var err error
		cart, err = s.getCart(c, visitorUID)
		if err != nil {
			return err
		}

		idx := cart.lineIndex(productUID, variant)
		if idx < 0 {
			return nil
		}

		cart.Lines = append(cart.Lines[:idx], cart.Lines[idx+1:]...)
		now := s.nower.Now()
		cart.LastModified = &now

		return s.cartStore.Put(c, visitorUID, cart)
	})
	if err != nil {
		return Cart{}, err
	}

	return cart, nil
}

func (s *service) clearCart(c context.Context, visitorUID string) error {
	err := s.cartStore.Remove(c, visitorUID)
	if err != nil {
		return myerrors.NewInternalError(err)
	}

	return nil
}

func contains(haystack []string, needle string) bool {
	for _, h := range haystack {
		if h == needle {
			return true
		}
	}
	return false
}
