package catalog

import "time"

// seedProducts is the fallback catalog used when the spreadsheet endpoint
// cannot be reached at startup.
func seedProducts(now time.Time) []Product {
	countdown := now.Add(48 * time.Hour)

	return []Product{
		{
			UID:           "1",
			Name:          "日本原裝進口 膠原蛋白粉",
			Category:      CategoryHealth,
			Price:         899,
			OriginalPrice: 1200,
			Images:        []string{"https://images.unsplash.com/photo-1584308666744-24d5c474f2ae?auto=format&fit=crop&q=80&w=800"},
			Description:   "嚴選日本專利膠原蛋白，分子小好吸收。每天一匙，養顏美容，青春美麗！",
			Features:      []string{"日本專利技術", "無腥味好入口", "添加維生素C促進吸收"},
			Status:        StatusAvailable,
			Variants:      []string{"30天份袋裝", "60天份罐裝"},
			MaxLimit:      5,
		},
		{
			UID:           "2",
			Name:          "北歐風純棉水洗涼被",
			Category:      CategoryDaily,
			Price:         1280,
			OriginalPrice: 1680,
			Images:        []string{"https://images.unsplash.com/photo-1522771739844-6a9f6d5f14af?auto=format&fit=crop&q=80&w=800"},
			Description:   "100%純棉材質，水洗工藝處理，柔軟親膚，透氣不悶熱，給您一夜好眠。",
			Features:      []string{"100%純棉", "可機洗好清理", "多種莫蘭迪色系可選"},
			Status:        StatusAvailable,
			Variants:      []string{"奶茶色", "霧霾藍", "灰綠色"},
		},
		{
			UID:             "3",
			Name:            "【限量】韓國頂級人蔘精華飲",
			Category:        CategoryLimited,
			Price:           2980,
			OriginalPrice:   3980,
			Images:          []string{"https://images.unsplash.com/photo-1620916566398-39f1143ab7be?auto=format&fit=crop&q=80&w=800"},
			Description:     "韓國原裝進口，高濃度人蔘精華，補充元氣的最佳選擇。限量開團，售完不補！",
			Features:        []string{"6年根高麗蔘", "隨身包設計", "無添加防腐劑"},
			Status:          StatusLimited,
			Variants:        []string{"一盒(30入)", "三盒優惠組"},
			CountdownTarget: &countdown,
		},
		{
			UID:            "4",
			Name:           "🎉 粉絲回饋抽獎活動",
			Category:       CategoryWelfare,
			Price:          0,
			Images:         []string{"https://images.unsplash.com/photo-1513201099705-a9746e1e201f?auto=format&fit=crop&q=80&w=800"},
			Description:    "感謝大家一直以來的支持！只要在本文下方留言並分享，就有機會獲得神秘好禮一份喔！",
			Features:       []string{"活動時間：即日起至月底", "獎品：神秘驚喜盲盒", "名額：抽出5位幸運兒"},
			Status:         StatusAvailable,
			Variants:       []string{},
			IsAnnouncement: true,
		},
	}
}
