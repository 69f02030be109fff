package mystore

import (
	"fmt"
	"strings"
)

// kindOf derives an entity name from the type, eg. "Cart" for cart.Cart.
func kindOf[T any]() string {
	val := new(T)
	kind := fmt.Sprintf("%T", *val)
	if strings.Contains(kind, ".") {
		kind = strings.Split(kind, ".")[1]
	}
	return kind
}
