package favorites

import (
	"context"

	"github.com/aoigroupbuy/storefront/lib/myerrors"
	"github.com/aoigroupbuy/storefront/lib/mylog"
	"github.com/aoigroupbuy/storefront/lib/mystore"
	"github.com/aoigroupbuy/storefront/lib/mytime"
)

type service struct {
	favoritesStore mystore.Store[Favorites]
	nower          mytime.Nower
	logger         mylog.Logger
}

// Use dependency injection to isolate the infrastructure and ease testing
func newService(store mystore.Store[Favorites], nower mytime.Nower, logger mylog.Logger) *service {
	return &service{
		favoritesStore: store,
		nower:          nower,
		logger:         logger,
	}
}

func (s *service) list(c context.Context, visitorUID string) (Favorites, error) {
	favorites, found, err := s.favoritesStore.Get(c, visitorUID)
	if err != nil {
		return Favorites{}, myerrors.NewInternalError(err)
	}
	if !found {
		return Favorites{
			UID:         visitorUID,
			ProductUIDs: []string{},
		}, nil
	}

	return favorites, nil
}

// toggle adds the product when absent and removes it when present.
func (s *service) toggle(c context.Context, visitorUID string, productUID string) (Favorites, error) {
	var favorites Favorites
	err := s.favoritesStore.RunInTransaction(c, func(c context.Context) error {
		var err error
		favorites, err = s.list(c, visitorUID)
		if err != nil {
			return err
		}

		if favorites.contains(productUID) {
			kept := []string{}
			for _, uid := range favorites.ProductUIDs {
				if uid != productUID {
					kept = append(kept, uid)
				}
			}
			favorites.ProductUIDs = kept
		} else {
			favorites.ProductUIDs = append(favorites.ProductUIDs, productUID)
		}

		now := s.nower.Now()
		favorites.LastModified = &now

		return s.favoritesStore.Put(c, visitorUID, favorites)
	})
	if err != nil {
		return Favorites{}, err
	}

	s.logger.Log(c, visitorUID, mylog.SeverityInfo, "Toggled favorite %s for visitor %s", productUID, visitorUID)

	return favorites, nil
}
