package pricing

import (
	"regexp"
	"strconv"
)

// A variant label may carry its own price, eg. "奶茶色:1280" or with a
// full-width colon "三盒優惠組：2980". Everything after the last colon must
// be an integer for the override to apply.
var variantPricePattern = regexp.MustCompile(`^.+[:：](\d+)$`)

// EffectiveUnitPrice resolves the unit price for a product variant. Labels
// without an embedded price, malformed labels and the empty label all fall
// back to the base price. Every place that computes a line total must go
// through here, otherwise cart and detail totals drift apart.
func EffectiveUnitPrice(basePrice int, variantLabel string) int {
	match := variantPricePattern.FindStringSubmatch(variantLabel)
	if match == nil {
		return basePrice
	}

	override, err := strconv.Atoi(match[1])
	if err != nil {
		return basePrice
	}

	return override
}
