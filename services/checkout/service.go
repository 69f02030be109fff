package checkout

import (
	"context"
	"fmt"

	"github.com/aoigroupbuy/storefront/lib/myerrors"
	"github.com/aoigroupbuy/storefront/lib/mylog"
	"github.com/aoigroupbuy/storefront/lib/mypublisher"
	"github.com/aoigroupbuy/storefront/lib/myuuid"
	"github.com/aoigroupbuy/storefront/services/checkout/checkoutevents"
)

type service struct {
	lineAccountID string
	cartReader    CartReader
	catalog       CatalogReader
	publisher     mypublisher.Publisher
	uuider        myuuid.UUIDer
	logger        mylog.Logger
}

// Use dependency injection to isolate the infrastructure and ease testing
func newService(lineAccountID string, cartReader CartReader, catalog CatalogReader, publisher mypublisher.Publisher, uuider myuuid.UUIDer, logger mylog.Logger) *service {
	return &service{
		lineAccountID: lineAccountID,
		cartReader:    cartReader,
		catalog:       catalog,
		publisher:     publisher,
		uuider:        uuider,
		logger:        logger,
	}
}

// checkoutCart turns the visitor's cart into a chat deep link. The cart is
// left untouched, fulfillment happens in the chat.
func (s *service) checkoutCart(c context.Context, visitorUID string) (string, error) {
	visitorCart, err := s.cartReader.GetCart(c, visitorUID)
	if err != nil {
		return "", err
	}
	if visitorCart.ItemCount() == 0 {
		return "", myerrors.NewInvalidInputError(fmt.Errorf("cart %s is empty", visitorUID))
	}

	orderUID := s.uuider.Create()

	items := []checkoutevents.OrderedItem{}
	for _, l := range visitorCart.Lines {
		items = append(items, checkoutevents.OrderedItem{
			ProductUID: l.ProductUID,
			Quantity:   l.Quantity,
		})
	}
	s.publishOrder(c, orderUID, items)

	return deepLink(s.lineAccountID, composeOrderMessage(visitorCart.Lines)), nil
}

// orderSingleProduct is the "order now" shortcut on a product page. It
// bypasses the cart entirely.
func (s *service) orderSingleProduct(c context.Context, productUID string, form OrderForm) (string, error) {
	product, err := s.catalog.GetProduct(c, productUID)
	if err != nil {
		return "", err
	}

	if product.HasVariants() && form.Variant == "" {
		return "", myerrors.NewInvalidInputError(fmt.Errorf("product %s requires a variant", product.UID))
	}

	orderUID := s.uuider.Create()
	s.publishOrder(c, orderUID, []checkoutevents.OrderedItem{
		{ProductUID: product.UID, Quantity: form.Quantity},
	})

	return deepLink(s.lineAccountID, composeInquiryMessage(product.Name, form.Variant, form.Quantity)), nil
}

// publishOrder feeds the sales notification pipeline. Delivery must never
// stand between the visitor and the chat handoff, so failure is only logged.
func (s *service) publishOrder(c context.Context, orderUID string, items []checkoutevents.OrderedItem) {
	err := s.publisher.Publish(c, checkoutevents.TopicName, checkoutevents.OrderSubmitted{
		OrderUID: orderUID,
		Items:    items,
	})
	if err != nil {
		s.logger.Log(c, orderUID, mylog.SeverityWarn, "Error publishing order %s: %s", orderUID, err)
	}
}
