package models

// Structural cloning, written out per entity. Every read path hands callers a
// clone so internal state can never be mutated from outside the store.

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}

func (c Category) Clone() Category {
	return c
}

func (a Article) Clone() Article {
	out := a
	out.Tags = cloneStrings(a.Tags)
	out.CategoryIDs = cloneStrings(a.CategoryIDs)
	return out
}

func (m ProductMetrics) Clone() ProductMetrics {
	out := m
	if m.RestockExpectedAt != nil {
		restock := *m.RestockExpectedAt
		out.RestockExpectedAt = &restock
	}
	return out
}

func (p Product) Clone() Product {
	out := p
	out.CategoryIDs = cloneStrings(p.CategoryIDs)
	out.Images = cloneStrings(p.Images)
	out.Tags = cloneStrings(p.Tags)
	if p.Attributes != nil {
		out.Attributes = make([]ProductAttribute, len(p.Attributes))
		copy(out.Attributes, p.Attributes)
	}
	out.Metrics = p.Metrics.Clone()
	return out
}

func (u User) Clone() User {
	out := u
	out.Preferences.Interests = cloneStrings(u.Preferences.Interests)
	if u.LastLoginAt != nil {
		last := *u.LastLoginAt
		out.LastLoginAt = &last
	}
	return out
}

func (o Order) Clone() Order {
	out := o
	if o.Items != nil {
		out.Items = make([]OrderItem, len(o.Items))
		copy(out.Items, o.Items)
	}
	if o.Timeline != nil {
		out.Timeline = make([]OrderTimelineEvent, len(o.Timeline))
		copy(out.Timeline, o.Timeline)
	}
	return out
}

func (s SiteStats) Clone() SiteStats {
	out := s
	if s.TrendingCategories != nil {
		out.TrendingCategories = make([]CategoryTrend, len(s.TrendingCategories))
		copy(out.TrendingCategories, s.TrendingCategories)
	}
	if s.TopProducts != nil {
		out.TopProducts = make([]ProductRevenue, len(s.TopProducts))
		copy(out.TopProducts, s.TopProducts)
	}
	if s.TopArticles != nil {
		out.TopArticles = make([]ArticleReads, len(s.TopArticles))
		copy(out.TopArticles, s.TopArticles)
	}
	return out
}
