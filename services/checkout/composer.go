package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/aoigroupbuy/storefront/services/cart"
)

const shopBanner = "葵葵開團好物區"

// composeOrderMessage renders the cart as the chat message a visitor sends
// to the shop owner. Subtotals honor variant price overrides.
func composeOrderMessage(lines []cart.Line) string {
	var sb strings.Builder

	sb.WriteString("🌟 " + shopBanner + " - 訂單預約 🌟\n\n")
	sb.WriteString("您好！我想訂購以下商品：\n")
	sb.WriteString("--------------------------\n")

	total := 0
	for i, l := range lines {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, l.ProductName)
		if l.Variant != "" {
			fmt.Fprintf(&sb, "   規格：%s\n", l.Variant)
		}
		fmt.Fprintf(&sb, "   數量：%d\n", l.Quantity)
		fmt.Fprintf(&sb, "   小計：$%d\n\n", l.SubTotal())
		total += l.SubTotal()
	}

	sb.WriteString("--------------------------\n")
	fmt.Fprintf(&sb, "💰 總計金額：$%d\n\n", total)
	sb.WriteString("請幫我確認訂單，謝謝！")

	return sb.String()
}

// composeInquiryMessage is the single-product variant, also used for
// announcements and welfare posts where no price applies.
func composeInquiryMessage(productName string, variant string, quantity int) string {
	var sb strings.Builder

	sb.WriteString("🌟 " + shopBanner + " - 立即詢問 🌟\n\n")
	fmt.Fprintf(&sb, "我想詢問商品：%s\n", productName)
	if variant != "" {
		fmt.Fprintf(&sb, "規格：%s\n", variant)
	}
	fmt.Fprintf(&sb, "數量：%d\n", quantity)
	sb.WriteString("\n請幫我確認是否有現貨，謝謝！")

	return sb.String()
}

// deepLink builds the chat handoff URL. The message rides in the query
// part, percent-encoded the way browsers encode URI components.
func deepLink(accountID string, message string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return fmt.Sprintf("https://line.me/R/oaMessage/%s/?%s", accountID, encoded)
}
