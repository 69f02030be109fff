package checkout

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aoigroupbuy/storefront/services/cart"
)

func TestComposeOrderMessage(t *testing.T) {
	lines := []cart.Line{
		{ProductUID: "1", ProductName: "日本原裝進口 膠原蛋白粉", UnitPrice: 899, Variant: "30天份袋裝", Quantity: 2},
		{ProductUID: "3", ProductName: "【限量】韓國頂級人蔘精華飲", UnitPrice: 2980, Variant: "三盒優惠組:8500", Quantity: 1},
	}

	got := composeOrderMessage(lines)

	want := "🌟 葵葵開團好物區 - 訂單預約 🌟\n\n" +
		"您好！我想訂購以下商品：\n" +
		"--------------------------\n" +
		"1. 日本原裝進口 膠原蛋白粉\n" +
		"   規格：30天份袋裝\n" +
		"   數量：2\n" +
		"   小計：$1798\n\n" +
		"2. 【限量】韓國頂級人蔘精華飲\n" +
		"   規格：三盒優惠組:8500\n" +
		"   數量：1\n" +
		"   小計：$8500\n\n" +
		"--------------------------\n" +
		"💰 總計金額：$10298\n\n" +
		"請幫我確認訂單，謝謝！"
	assert.Equal(t, want, got)
}

func TestComposeOrderMessageWithoutVariant(t *testing.T) {
	lines := []cart.Line{
		{ProductUID: "2", ProductName: "北歐風純棉水洗涼被", UnitPrice: 1280, Quantity: 1},
	}

	got := composeOrderMessage(lines)

	assert.Contains(t, got, "1. 北歐風純棉水洗涼被\n   數量：1\n")
	assert.NotContains(t, got, "規格")
}

func TestComposeInquiryMessage(t *testing.T) {
	got := composeInquiryMessage("【限量】韓國頂級人蔘精華飲", "一盒(30入)", 2)

	want := "🌟 葵葵開團好物區 - 立即詢問 🌟\n\n" +
		"我想詢問商品：【限量】韓國頂級人蔘精華飲\n" +
		"規格：一盒(30入)\n" +
		"數量：2\n" +
		"\n請幫我確認是否有現貨，謝謝！"
	assert.Equal(t, want, got)
}

func TestDeepLink(t *testing.T) {
	link := deepLink("@234csaak", "hello 世界")

	assert.True(t, strings.HasPrefix(link, "https://line.me/R/oaMessage/@234csaak/?"))
	assert.NotContains(t, link, "+")

	decoded, err := url.QueryUnescape(strings.TrimPrefix(link, "https://line.me/R/oaMessage/@234csaak/?"))
	assert.NoError(t, err)
	assert.Equal(t, "hello 世界", decoded)
}
