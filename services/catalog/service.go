package catalog

import (
	"github.com/aoigroupbuy/storefront/lib/mylog"
	"github.com/aoigroupbuy/storefront/lib/mypublisher"
	"github.com/aoigroupbuy/storefront/lib/mystore"
	"github.com/aoigroupbuy/storefront/lib/mytime"
	"github.com/aoigroupbuy/storefront/lib/myuuid"
)

type service struct {
	productStore mystore.Store[Product]
	syncer       Syncer
	publisher    mypublisher.Publisher
	nower        mytime.Nower
	uuider       myuuid.UUIDer
	logger       mylog.Logger
}

// Use dependency injection to isolate the infrastructure and ease testing
func newService(store mystore.Store[Product], syncer Syncer, nower mytime.Nower, uuider myuuid.UUIDer, logger mylog.Logger, pub mypublisher.Publisher) *service {
	return &service{
		productStore: store,
		syncer:       syncer,
		publisher:    pub,
		nower:        nower,
		uuider:       uuider,
		logger:       logger,
	}
}
