package store

import (
	"time"

	"sanctuary-api/internal/models"
)

func mustTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

func timePtr(value string) *time.Time {
	t := mustTime(value)
	return &t
}

// seedDataset builds a fresh copy of the static dataset. Every call returns
// independent values so a reset never shares state with prior mutations.
func seedDataset() *dataset {
	categories := []models.Category{
		{
			ID:          "cat-daoist-philosophy",
			Name:        "Daoist Philosophy",
			Slug:        "daoist-philosophy",
			Description: "Explorations of the Dao De Jing, Zhuangzi, and the subtle dialectics of Daoist thought.",
			Featured:    true,
			Image:       "/images/categories/daoist-philosophy.jpg",
		},
		{
			ID:          "cat-internal-alchemy",
			Name:        "Internal Alchemy (Neidan)",
			Slug:        "internal-alchemy",
			Description: "Classical and contemporary methods for refining jing, qi, and shen in the inner cauldrons.",
			Featured:    true,
			Image:       "/images/categories/internal-alchemy.jpg",
		},
		{
			ID:          "cat-qigong",
			Name:        "Qigong & Breathwork",
			Slug:        "qigong-breathwork",
			Description: "Lineage practices for cultivating vitality through movement, breath, and intent.",
			Image:       "/images/categories/qigong.jpg",
		},
		{
			ID:          "cat-herbal",
			Name:        "Daoist Herbal Traditions",
			Slug:        "daoist-herbalism",
			Description: "Materia medica, tonic formulations, and mountain-harvested herbs revered in Daoist clinics.",
			Image:       "/images/categories/herbal.jpg",
		},
		{
			ID:          "cat-ritual",
			Name:        "Ritual & Talismans",
			Slug:        "ritual-talismans",
			Description: "Celestial invocations, talismanic arts, and the liturgical cadence of Daoist ceremonies.",
		},
		{
			ID:          "cat-mountain-retreats",
			Name:        "Sacred Mountains & Retreats",
			Slug:        "sacred-mountains",
			Description: "Journeys into the breathing landscapes of Wudang, Qingcheng, Longhu, and Mao Shan.",
		},
	}

	articles := []models.Article{
		{
			ID:      "art-celestial-pivots",
			Title:   "Tracing the Celestial Pivots: Aligning Breath with the Big Dipper",
			Slug:    "celestial-pivots-breath-big-dipper",
			Summary: "A step-by-step night meditation aligning the microcosmic orbit with the handle of the Northern Dipper.",
			Content: "In the Jade Library scrolls of the Wudang adept Chen Tuan, star-stepping is described as a gateway to harmonising breath with the celestial tides. Begin by facing north, allowing the breath to mirror the slow turn of the heavens. Visualise the Big Dipper arcing over the crown, each star awakening a point along the Du Mai...\n\nBreath Regulation:\n1. Inhale to the Jade Pillow, exhale to the Heavenly Pool.\n2. Synchronise each breath with the pacing mantra of the Seven Stars.\n3. Anchor the awareness in the Lower Dantian as the orbit completes.\n\nWhen practised at the Zi hour, the adept experiences a spacious clarity where thought thins and the Dao silently responds.",
			HeroImage:          "/images/articles/celestial-pivots.jpg",
			Tags:               []string{"star-stepping", "meditation", "astral alignment"},
			CategoryIDs:        []string{"cat-daoist-philosophy", "cat-qigong"},
			PublishedAt:        mustTime("2024-03-01T08:00:00.000Z"),
			UpdatedAt:          mustTime("2024-03-12T08:00:00.000Z"),
			AuthorID:           "user-master-li",
			ReadingTimeMinutes: 12,
			IsFeatured:         true,
			Metrics:            models.ArticleMetrics{Reads: 4820, Bookmarks: 920, Shares: 312},
		},
		{
			ID:      "art-golden-elixir-tea",
			Title:   "Golden Elixir Tea Ritual for Harmonising the Three Treasures",
			Slug:    "golden-elixir-tea-ritual",
			Summary: "An aromatic infusion favoured by Quanzhen adepts to nourish jing, kindle qi, and brighten shen.",
			Content: "The Golden Elixir tea blends aged white peony leaves with chrysanthemum, goji berry, and a whisper of wild ginseng. Heat spring water to 82°C to honour the delicate aroma. Pour in a slow spiral while intoning the Jade Purity mantra.\n\nSip in three breaths:\n- First to settle Jing in the kidneys\n- Second to open the chest and circulate Qi\n- Third to brighten Shen behind the eyes\n\nAccompany the tea with five minutes of bellows breathing through the nose, concluding with the Immortal Crane mudra.",
			HeroImage:          "/images/articles/golden-elixir-tea.jpg",
			Tags:               []string{"tea", "ritual", "neidan"},
			CategoryIDs:        []string{"cat-internal-alchemy", "cat-herbal"},
			PublishedAt:        mustTime("2024-02-10T05:30:00.000Z"),
			UpdatedAt:          mustTime("2024-02-18T10:00:00.000Z"),
			AuthorID:           "user-adept-wei",
			ReadingTimeMinutes: 8,
			Metrics:            models.ArticleMetrics{Reads: 3680, Bookmarks: 744, Shares: 210},
		},
		{
			ID:      "art-dragon-gate-seal",
			Title:   "Dragon Gate Seal: Glyphs for Calming Storm Spirits",
			Slug:    "dragon-gate-seal-spirit-calm",
			Summary: "A talismanic sequence from the Longmen Canon used to disband turbulent qi within the household.",
			Content: "Within the Dragon Gate corpus, the Storm-Calming talisman is drawn in a single flowing breath. Begin with the Azure Dragon curve, followed by the Celestial Seal that anchors the glyph to the home altar.\n\nTo activate: burn mugwort, intone the Nine Sovereigns incantation, and press the talisman above the lintel. Practitioners report a palpable hush as the spirit of the wind bows to stillness.",
			HeroImage:          "/images/articles/dragon-gate-seal.jpg",
			Tags:               []string{"talisman", "ritual", "longmen"},
			CategoryIDs:        []string{"cat-ritual"},
			PublishedAt:        mustTime("2024-01-25T09:00:00.000Z"),
			UpdatedAt:          mustTime("2024-01-26T15:40:00.000Z"),
			AuthorID:           "user-master-li",
			ReadingTimeMinutes: 6,
			Metrics:            models.ArticleMetrics{Reads: 2920, Bookmarks: 612, Shares: 184},
		},
		{
			ID:      "art-immortal-cuisine",
			Title:   "Immortal Cuisine: Mineral Broths from Mount Mao",
			Slug:    "immortal-cuisine-mineral-broths",
			Summary: "Recipes from the Shangqing retreat kitchens using dew condensate and pine pollen to replenish yin.",
			Content: "Master Xu Ling records that each dawn the adepts gathered dew from the Jade Bamboo groves. Combined with stone-marrow mushrooms and slow simmered astragalus, the broth restores the delicate balance of yin fluids.\n\nSeason with fermented chrysanthemum leaves and a pinch of sea salt harvested during the Dragon Boat festival.",
			HeroImage:          "/images/articles/immortal-cuisine.jpg",
			Tags:               []string{"cuisine", "mountain retreat", "yin tonics"},
			CategoryIDs:        []string{"cat-herbal", "cat-mountain-retreats"},
			PublishedAt:        mustTime("2024-04-05T04:00:00.000Z"),
			UpdatedAt:          mustTime("2024-04-05T04:00:00.000Z"),
			AuthorID:           "user-seeker-mei",
			ReadingTimeMinutes: 7,
			IsFeatured:         true,
			Metrics:            models.ArticleMetrics{Reads: 2150, Bookmarks: 505, Shares: 162},
		},
		{
			ID:      "art-wudang-iron-robes",
			Title:   "Wudang Iron Robes: Layering Qi Shields in Spring Thunderstorms",
			Slug:    "wudang-iron-robes-qi-shields",
			Summary: "Martial qigong from Purple Cloud Monastery for protecting the protective wei qi during sudden thunder.",
			Content: "The Iron Robes set weaves together rooted stances with spiralling fascia tension. Practise along the cliff edge to feel the ionic charge in the clouds. The key is to wrap qi along the Ren channel while the outer skin tingles with charged air.",
			HeroImage:          "/images/articles/wudang-iron-robes.jpg",
			Tags:               []string{"martial", "qigong", "protective practices"},
			CategoryIDs:        []string{"cat-qigong"},
			PublishedAt:        mustTime("2024-03-18T11:15:00.000Z"),
			UpdatedAt:          mustTime("2024-03-22T06:20:00.000Z"),
			AuthorID:           "user-adept-wei",
			ReadingTimeMinutes: 10,
			Metrics:            models.ArticleMetrics{Reads: 3310, Bookmarks: 588, Shares: 198},
		},
		{
			ID:      "art-azure-mists",
			Title:   "Azure Mists of Qingcheng: Dawn Walking Meditation Trail",
			Slug:    "azure-mists-qingcheng-trail",
			Summary: "A contemplative walking meditation along the moss-lined paths of Qingcheng Shan.",
			Content: "The trail begins at the Tianshi Cave, winding through bamboo groves humming with cicadas. Each step synchronises with a silent mantra of “Qing Jing Jing”. Pause at the dew-collecting basins to refresh the senses and offer gratitude to the mountain guardians.",
			HeroImage:          "/images/articles/azure-mists.jpg",
			Tags:               []string{"walking meditation", "mountain"},
			CategoryIDs:        []string{"cat-mountain-retreats", "cat-daoist-philosophy"},
			PublishedAt:        mustTime("2024-04-12T05:45:00.000Z"),
			UpdatedAt:          mustTime("2024-04-12T05:45:00.000Z"),
			AuthorID:           "user-seeker-mei",
			ReadingTimeMinutes: 9,
			IsFeatured:         true,
			Metrics:            models.ArticleMetrics{Reads: 2605, Bookmarks: 490, Shares: 174},
		},
	}

	products := []models.Product{
		{
			ID:          "prod-celestial-incense",
			Name:        "Celestial Pivot Incense Cones",
			Slug:        "celestial-pivot-incense",
			Summary:     "Hand-rolled sandalwood and agarwood cones tuned to the Northern Dipper rites.",
			Description: "Crafted within the Azure Cloud Monastery, these cones blend 12-year aged sandalwood, agarwood resin, and powdered oyster shell. Burn during star pacing to align breath with celestial rotations.",
			SKU:         "DAO-INC-108",
			Price:       38,
			Currency:    "USD",
			Stock:       120,
			CategoryIDs: []string{"cat-ritual"},
			Images:      []string{"/images/products/celestial-incense.jpg"},
			Tags:        []string{"ritual", "incense", "star pacing"},
			Attributes: []models.ProductAttribute{
				{Key: "element", Label: "Element", Value: "Water"},
				{Key: "batch", Label: "Batch", Value: "Spring Thunder 2024"},
			},
			IsFeatured: true,
			CreatedAt:  mustTime("2023-11-02T09:00:00.000Z"),
			UpdatedAt:  mustTime("2024-03-15T02:30:00.000Z"),
			Metrics:    models.ProductMetrics{Rating: 4.9, ReviewCount: 128, Sold: 540},
		},
		{
			ID:          "prod-lacquered-luopan",
			Name:        "Lacquered Luopan Compass",
			Slug:        "lacquered-luopan-compass",
			Summary:     "Hand-painted luopan aligned to Longhu Shan magnetic bearings.",
			Description: "Designed for geomantic surveys and altar placement, each luopan is calibrated against Longhu Shan's magnetic field with hand-carved cinnabar markings.",
			SKU:         "DAO-LUP-042",
			Price:       146,
			Currency:    "USD",
			Stock:       24,
			CategoryIDs: []string{"cat-ritual", "cat-daoist-philosophy"},
			Images:      []string{"/images/products/lacquered-luopan.jpg"},
			Tags:        []string{"feng shui", "ritual"},
			Attributes: []models.ProductAttribute{
				{Key: "material", Label: "Material", Value: "Rosewood & Brass"},
				{Key: "calibration", Label: "Calibration", Value: "Dragon Tiger Alignment"},
			},
			IsFeatured: true,
			CreatedAt:  mustTime("2023-08-18T03:30:00.000Z"),
			UpdatedAt:  mustTime("2024-02-26T13:50:00.000Z"),
			Metrics:    models.ProductMetrics{Rating: 4.8, ReviewCount: 86, Sold: 210, RestockExpectedAt: timePtr("2024-06-01T00:00:00.000Z")},
		},
		{
			ID:          "prod-qi-tonic-elixir",
			Name:        "Azure Qi Tonic Elixir",
			Slug:        "azure-qi-tonic-elixir",
			Summary:     "Daily tonic of cordyceps, astragalus, and snow chrysanthemum for nourishing lung qi.",
			Description: "Brewed in small batches with Tibetan cordyceps, wild astragalus root, and snow chrysanthemum, this elixir gently brightens lung qi while grounding the Earth element.",
			SKU:         "DAO-TON-314",
			Price:       52,
			Currency:    "USD",
			Stock:       64,
			CategoryIDs: []string{"cat-herbal"},
			Images:      []string{"/images/products/azure-qi-elixir.jpg"},
			Tags:        []string{"tonic", "herbal"},
			Attributes: []models.ProductAttribute{
				{Key: "dosage", Label: "Dosage", Value: "10 ml twice daily"},
				{Key: "harvest", Label: "Harvest", Value: "Winter Solstice 2023"},
			},
			CreatedAt: mustTime("2024-01-12T07:10:00.000Z"),
			UpdatedAt: mustTime("2024-03-28T08:15:00.000Z"),
			Metrics:   models.ProductMetrics{Rating: 4.7, ReviewCount: 64, Sold: 320, RestockExpectedAt: timePtr("2024-05-20T00:00:00.000Z")},
		},
		{
			ID:          "prod-wudang-robes",
			Name:        "Wudang Cloud Silk Robes",
			Slug:        "wudang-cloud-silk-robes",
			Summary:     "Meditation robes woven with breathable cloud-pattern silk for long sits.",
			Description: "Tailored in the Purple Cloud workshops, the robes use mulberry silk infused with mugwort smoke to calm the shen. Perfect for dawn practice on the terraces.",
			SKU:         "DAO-ROB-512",
			Price:       168,
			Currency:    "USD",
			Stock:       36,
			CategoryIDs: []string{"cat-mountain-retreats", "cat-qigong"},
			Images:      []string{"/images/products/wudang-cloud-robe.jpg"},
			Tags:        []string{"apparel", "meditation"},
			Attributes: []models.ProductAttribute{
				{Key: "fabric", Label: "Fabric", Value: "Mulberry Silk"},
				{Key: "weave", Label: "Weave", Value: "Cloud Whisper Pattern"},
			},
			CreatedAt: mustTime("2023-12-01T06:50:00.000Z"),
			UpdatedAt: mustTime("2024-02-02T09:20:00.000Z"),
			Metrics:   models.ProductMetrics{Rating: 4.6, ReviewCount: 43, Sold: 138},
		},
		{
			ID:          "prod-qi-stone-kit",
			Name:        "Breath Stone Grounding Kit",
			Slug:        "breath-stone-grounding-kit",
			Summary:     "Polished river stones and pine resin oil for Daoist walking meditation.",
			Description: "Collected from the Nine Bends River, the stones are paired with pine resin oil to anoint the Yongquan point before mindful walking.",
			SKU:         "DAO-KIT-207",
			Price:       44,
			Currency:    "USD",
			Stock:       85,
			CategoryIDs: []string{"cat-qigong", "cat-mountain-retreats"},
			Images:      []string{"/images/products/breath-stone-kit.jpg"},
			Tags:        []string{"meditation", "grounding"},
			Attributes: []models.ProductAttribute{
				{Key: "stones", Label: "Stones", Value: "Nine Bends River quartz"},
				{Key: "oil", Label: "Anointing Oil", Value: "Pine Resin & Mugwort"},
			},
			IsFeatured: true,
			CreatedAt:  mustTime("2024-02-20T04:00:00.000Z"),
			UpdatedAt:  mustTime("2024-03-22T12:00:00.000Z"),
			Metrics:    models.ProductMetrics{Rating: 4.8, ReviewCount: 51, Sold: 188},
		},
	}

	users := []models.User{
		{
			ID:        "user-master-li",
			Name:      "Master Li Wen",
			Email:     "abbot@wudangsanctuary.org",
			Role:      models.RoleAdmin,
			AvatarURL: "/images/users/master-li.jpg",
			Bio:       "Abbot of the Azure Cloud Monastery and lineage keeper of the Northern Dipper liturgy.",
			Location:  "Wudang Mountains, Hubei",
			Preferences: models.UserPreferences{
				Locale:    "zh-CN",
				Currency:  "CNY",
				Interests: []string{"internal alchemy", "ritual arts"},
			},
			CreatedAt:   mustTime("2020-01-18T00:00:00.000Z"),
			UpdatedAt:   mustTime("2024-03-05T11:00:00.000Z"),
			LastLoginAt: timePtr("2024-03-20T03:00:00.000Z"),
		},
		{
			ID:        "user-adept-wei",
			Name:      "Wei Ling",
			Email:     "wei.ling@example.com",
			Role:      models.RolePractitioner,
			AvatarURL: "/images/users/wei-ling.jpg",
			Bio:       "Daoist herbalist sharing seasonal tonic recipes from Chengdu clinics.",
			Location:  "Chengdu, Sichuan",
			Preferences: models.UserPreferences{
				Locale:         "zh-CN",
				Currency:       "CNY",
				MarketingOptIn: true,
				Interests:      []string{"herbal alchemy", "qigong"},
			},
			CreatedAt:   mustTime("2021-06-10T00:00:00.000Z"),
			UpdatedAt:   mustTime("2024-03-18T07:45:00.000Z"),
			LastLoginAt: timePtr("2024-04-01T05:22:00.000Z"),
		},
		{
			ID:        "user-seeker-mei",
			Name:      "Mei Chen",
			Email:     "mei.chen@example.com",
			Role:      models.RoleMember,
			AvatarURL: "/images/users/mei-chen.jpg",
			Bio:       "Documenting pilgrimages to Daoist mountains and their living rituals.",
			Location:  "Hangzhou, Zhejiang",
			Preferences: models.UserPreferences{
				Locale:         "en-US",
				Currency:       "USD",
				MarketingOptIn: true,
				Interests:      []string{"mountain retreats", "tea rituals"},
			},
			CreatedAt:   mustTime("2022-11-22T00:00:00.000Z"),
			UpdatedAt:   mustTime("2024-04-08T02:10:00.000Z"),
			LastLoginAt: timePtr("2024-04-12T05:45:00.000Z"),
		},
	}

	orders := []models.Order{
		{
			ID:     "order-202403-001",
			UserID: "user-adept-wei",
			Items: []models.OrderItem{
				{ProductID: "prod-celestial-incense", Quantity: 2, UnitPrice: 38, Currency: "USD"},
				{ProductID: "prod-lacquered-luopan", Quantity: 1, UnitPrice: 146, Currency: "USD"},
			},
			Status:      models.OrderStatusCompleted,
			TotalAmount: 222,
			Currency:    "USD",
			CreatedAt:   mustTime("2024-03-02T09:30:00.000Z"),
			UpdatedAt:   mustTime("2024-03-10T11:00:00.000Z"),
			ShippingAddress: models.ShippingAddress{
				FullName:   "Wei Ling",
				Line1:      "No. 12, Lotus Clinic Lane",
				City:       "Chengdu",
				Region:     "Sichuan",
				Country:    "China",
				PostalCode: "610000",
			},
			Notes: "Leave at meditation hall side door.",
			Timeline: []models.OrderTimelineEvent{
				{Status: models.OrderStatusPending, OccurredAt: mustTime("2024-03-02T09:30:00.000Z"), Note: "Awaiting payment confirmation."},
				{Status: models.OrderStatusProcessing, OccurredAt: mustTime("2024-03-03T12:45:00.000Z"), Note: "Items anointed and packed."},
				{Status: models.OrderStatusShipped, OccurredAt: mustTime("2024-03-05T07:10:00.000Z"), Note: "Dispatched via crane courier."},
				{Status: models.OrderStatusCompleted, OccurredAt: mustTime("2024-03-10T11:00:00.000Z"), Note: "Order delivered and blessed."},
			},
		},
		{
			ID:     "order-202404-002",
			UserID: "user-seeker-mei",
			Items: []models.OrderItem{
				{ProductID: "prod-qi-stone-kit", Quantity: 1, UnitPrice: 44, Currency: "USD"},
				{ProductID: "prod-wudang-robes", Quantity: 1, UnitPrice: 168, Currency: "USD"},
			},
			Status:      models.OrderStatusProcessing,
			TotalAmount: 212,
			Currency:    "USD",
			CreatedAt:   mustTime("2024-04-07T06:05:00.000Z"),
			UpdatedAt:   mustTime("2024-04-10T04:15:00.000Z"),
			ShippingAddress: models.ShippingAddress{
				FullName:   "Mei Chen",
				Line1:      "28 Cloud Terrace Road",
				City:       "Hangzhou",
				Region:     "Zhejiang",
				Country:    "China",
				PostalCode: "310000",
				Phone:      "+86 571 0000 1234",
			},
			Timeline: []models.OrderTimelineEvent{
				{Status: models.OrderStatusPending, OccurredAt: mustTime("2024-04-07T06:05:00.000Z")},
				{Status: models.OrderStatusProcessing, OccurredAt: mustTime("2024-04-08T09:40:00.000Z"), Note: "Robes infused with mugwort smoke."},
			},
		},
		{
			ID:     "order-202403-003",
			UserID: "user-adept-wei",
			Items: []models.OrderItem{
				{ProductID: "prod-qi-tonic-elixir", Quantity: 3, UnitPrice: 52, Currency: "USD"},
			},
			Status:      models.OrderStatusCompleted,
			TotalAmount: 156,
			Currency:    "USD",
			CreatedAt:   mustTime("2024-03-18T05:50:00.000Z"),
			UpdatedAt:   mustTime("2024-03-22T12:25:00.000Z"),
			ShippingAddress: models.ShippingAddress{
				FullName:   "Wei Ling",
				Line1:      "No. 12, Lotus Clinic Lane",
				City:       "Chengdu",
				Region:     "Sichuan",
				Country:    "China",
				PostalCode: "610000",
			},
			Timeline: []models.OrderTimelineEvent{
				{Status: models.OrderStatusPending, OccurredAt: mustTime("2024-03-18T05:50:00.000Z")},
				{Status: models.OrderStatusProcessing, OccurredAt: mustTime("2024-03-19T08:10:00.000Z"), Note: "Herbal tonic bottled."},
				{Status: models.OrderStatusShipped, OccurredAt: mustTime("2024-03-20T14:00:00.000Z"), Note: "Sent with cooled ice pack."},
				{Status: models.OrderStatusCompleted, OccurredAt: mustTime("2024-03-22T12:25:00.000Z"), Note: "Package received by clinic apprentice."},
			},
		},
	}

	credentials := []models.Credential{
		{Email: "abbot@wudangsanctuary.org", Password: "celestialpine", UserID: "user-master-li"},
		{Email: "wei.ling@example.com", Password: "lotuscloud", UserID: "user-adept-wei"},
		{Email: "mei.chen@example.com", Password: "riverstone", UserID: "user-seeker-mei"},
	}

	var seedRevenue float64
	customers := map[string]struct{}{}
	for _, order := range orders {
		seedRevenue += order.TotalAmount
		customers[order.UserID] = struct{}{}
	}

	stats := models.SiteStats{
		TotalRevenue:              seedRevenue,
		TotalOrders:               len(orders),
		TotalCustomers:            len(customers),
		NewsletterSubscribers:     1845,
		RetreatBookings:           86,
		MeditationSessionsTracked: 12840,
		TrendingCategories: []models.CategoryTrend{
			{CategoryID: "cat-internal-alchemy", GrowthPercentage: 22},
			{CategoryID: "cat-mountain-retreats", GrowthPercentage: 18},
			{CategoryID: "cat-ritual", GrowthPercentage: 15},
		},
		TopProducts: []models.ProductRevenue{
			{ProductID: "prod-celestial-incense", Revenue: 20520},
			{ProductID: "prod-qi-tonic-elixir", Revenue: 16640},
			{ProductID: "prod-lacquered-luopan", Revenue: 30660},
		},
		TopArticles: []models.ArticleReads{
			{ArticleID: "art-celestial-pivots", Reads: 4820},
			{ArticleID: "art-golden-elixir-tea", Reads: 3680},
			{ArticleID: "art-wudang-iron-robes", Reads: 3310},
		},
	}

	return &dataset{
		categories:  categories,
		articles:    articles,
		products:    products,
		users:       users,
		orders:      orders,
		credentials: credentials,
		stats:       stats,
	}
}
