package catalog

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/aoigroupbuy/storefront/lib/myerrors"
	"github.com/aoigroupbuy/storefront/lib/mylog"
	"github.com/aoigroupbuy/storefront/services/catalog/catalogevents"
)

// load fetches the catalog from the spreadsheet endpoint. It is called
// once at startup: on success the remote list replaces whatever the store
// held, including products that were deleted remotely. On failure the
// store keeps its previous content (seeded when empty) and no retry is
// scheduled.
func (s *service) load(c context.Context) error {
	existing, err := s.productStore.List(c)
	if err != nil {
		return myerrors.NewInternalError(err)
	}

	products, err := s.syncer.Fetch(c)
	if err != nil {
		s.logger.Log(c, "", mylog.SeverityWarn, "Error fetching remote catalog, keeping local state: %s", err)

		if len(existing) > 0 {
			return nil
		}

		s.logger.Log(c, "", mylog.SeverityInfo, "Empty catalog, falling back to seed set")
		return s.storeProducts(c, seedProducts(s.nower.Now()))
	}

	err = s.storeProducts(c, products)
	if err != nil {
		return err
	}

	fetched := map[string]bool{}
	for _, p := range products {
		fetched[p.UID] = true
	}
	for _, p := range existing {
		if !fetched[p.UID] {
			err := s.productStore.Remove(c, p.UID)
			if err != nil {
				return myerrors.NewInternalError(err)
			}
		}
	}

	return nil
}

func (s *service) storeProducts(c context.Context, products []Product) error {
	for _, p := range products {
		err := s.productStore.Put(c, p.UID, p)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
	}

	s.logger.Log(c, "", mylog.SeverityInfo, "Catalog loaded with %d products", len(products))

	return nil
}

func (s *service) listProducts(c context.Context, category string) ([]Product, error) {
	s.logger.Log(c, "", mylog.SeverityInfo, "Fetch products with category filter %q", category)

	products, err := s.productStore.List(c)
	if err != nil {
		return nil, myerrors.NewInternalError(err)
	}

	filtered := []Product{}
	for _, p := range products {
		if category == "" || category == "all" {
			// announcements are kept out of the overall listing
			if !p.IsAnnouncement {
				filtered = append(filtered, p)
			}
			continue
		}
		if p.Category == Category(category) {
			filtered = append(filtered, p)
		}
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].UID < filtered[j].UID
	})

	return filtered, nil
}

func (s *service) getProduct(c context.Context, productUID string) (Product, error) {
	product, found, err := s.productStore.Get(c, productUID)
	if err != nil {
		return Product{}, myerrors.NewInternalError(err)
	}
	if !found {
		return Product{}, myerrors.NewNotFoundError(fmt.Errorf("product with uid %s not found", productUID))
	}

	return product, nil
}

// activeCountdownProduct returns the limited-deal product whose deadline is
// nearest in the future, if any.
func (s *service) activeCountdownProduct(c context.Context, now time.Time) (Product, bool, error) {
	products, err := s.productStore.List(c)
	if err != nil {
		return Product{}, false, myerrors.NewInternalError(err)
	}

	candidates := []Product{}
	for _, p := range products {
		if p.Category == CategoryLimited && p.HasActiveCountdown(now) {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return Product{}, false, nil
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].CountdownTarget.Before(*candidates[j].CountdownTarget)
	})

	return candidates[0], true, nil
}

func (s *service) carouselProducts(c context.Context) ([]Product, error) {
	products, err := s.productStore.List(c)
	if err != nil {
		return nil, myerrors.NewInternalError(err)
	}

	carousel := []Product{}
	for _, p := range products {
		if p.InCarousel {
			carousel = append(carousel, p)
		}
	}

	sort.Slice(carousel, func(i, j int) bool {
		return carousel[i].UID < carousel[j].UID
	})

	return carousel, nil
}

// upsertProduct applies the edit locally first and then pushes it to the
// spreadsheet endpoint. The push is the one network call an admin waits
// for: its failure is returned so the admin can retry, the local edit
// stays applied either way.
func (s *service) upsertProduct(c context.Context, product Product) (Product, error) {
	if product.Name == "" {
		return Product{}, myerrors.NewInvalidInputError(fmt.Errorf("product name is mandatory"))
	}
	if !product.Category.IsValid() {
		return Product{}, myerrors.NewInvalidInputErrorf("invalid category %q", product.Category)
	}

	if product.UID == "" {
		product.UID = s.uuider.Create()
	}

	s.logger.Log(c, product.UID, mylog.SeverityInfo, "Storing product %s (%s)", product.UID, product.Name)

	err := s.productStore.RunInTransaction(c, func(c context.Context) error {
		err := s.productStore.Put(c, product.UID, product)
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		err = s.publisher.Publish(c, catalogevents.TopicName, catalogevents.ProductUpserted{
			ProductUID: product.UID,
		})
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		return nil
	})
	if err != nil {
		return Product{}, err
	}

	err = s.syncer.Upsert(c, product)
	if err != nil {
		return Product{}, myerrors.NewUnavailableError(fmt.Errorf("error syncing product %s to sheet: %s", product.UID, err))
	}

	return product, nil
}

func (s *service) deleteProduct(c context.Context, productUID string) error {
	s.logger.Log(c, productUID, mylog.SeverityInfo, "Deleting product %s", productUID)

	err := s.productStore.RunInTransaction(c, func(c context.Context) error {
		_, found, err := s.productStore.Get(c, productUID)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		if !found {
			return myerrors.NewNotFoundError(fmt.Errorf("product with uid %s not found", productUID))
		}

		err = s.productStore.Remove(c, productUID)
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		err = s.publisher.Publish(c, catalogevents.TopicName, catalogevents.ProductDeleted{
			ProductUID: productUID,
		})
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	err = s.syncer.Delete(c, productUID)
	if err != nil {
		return myerrors.NewUnavailableError(fmt.Errorf("error syncing removal of product %s to sheet: %s", productUID, err))
	}

	return nil
}
