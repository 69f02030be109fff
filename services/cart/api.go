package cart

import (
	"context"

	"github.com/aoigroupbuy/storefront/services/catalog"
)

// CatalogReader is the slice of the catalog this service needs. Adding a
// line snapshots the product's name and base price.
//
//go:generate mockgen -source=api.go -package cart -destination catalog_mock.go CatalogReader
type CatalogReader interface {
	GetProduct(c context.Context, productUID string) (catalog.Product, error)
}
