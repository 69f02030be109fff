package catalog

import "context"

// Syncer is the spreadsheet-backed endpoint that owns the master copy of
// the catalog.
//
//go:generate mockgen -source=api.go -package catalog -destination syncer_mock.go Syncer
type Syncer interface {
	Fetch(c context.Context) ([]Product, error)
	Upsert(c context.Context, product Product) error
	Delete(c context.Context, productUID string) error
}
