package favorites

import "time"

// Favorites is the per-visitor set of marked products.
type Favorites struct {
	UID          string
	ProductUIDs  []string
	LastModified *time.Time
}

func (f Favorites) contains(productUID string) bool {
	for _, uid := range f.ProductUIDs {
		if uid == productUID {
			return true
		}
	}
	return false
}
