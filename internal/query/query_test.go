package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sequence(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return items
}

func TestPaginateDefaults(t *testing.T) {
	page := Paginate(sequence(25), Params{})

	assert.Equal(t, 1, page.Meta.Page)
	assert.Equal(t, DefaultPageSize, page.Meta.PageSize)
	assert.Equal(t, 25, page.Meta.TotalItems)
	assert.Equal(t, 3, page.Meta.TotalPages)
	assert.Len(t, page.Data, 10)
	assert.Equal(t, 0, page.Data[0])
}

func TestPaginateCoercesOutOfRangeParams(t *testing.T) {
	page := Paginate(sequence(5), Params{Page: -3, PageSize: 0})
	assert.Equal(t, 1, page.Meta.Page)
	assert.Equal(t, DefaultPageSize, page.Meta.PageSize)

	page = Paginate(sequence(5), Params{Page: 1, PageSize: 500})
	assert.Equal(t, MaxPageSize, page.Meta.PageSize)
	assert.Len(t, page.Data, 5)
}

func TestPaginatePastLastPage(t *testing.T) {
	page := Paginate(sequence(12), Params{Page: 9, PageSize: 10})

	assert.Equal(t, 9, page.Meta.Page)
	assert.Empty(t, page.Data)
	assert.Equal(t, 12, page.Meta.TotalItems)
	assert.Equal(t, 2, page.Meta.TotalPages)
}

func TestPaginateEmptyCollection(t *testing.T) {
	page := Paginate([]int{}, Params{})

	assert.Empty(t, page.Data)
	assert.Equal(t, 0, page.Meta.TotalItems)
	assert.Equal(t, 1, page.Meta.TotalPages)
}

func TestPaginateCopiesWindow(t *testing.T) {
	items := sequence(10)
	page := Paginate(items, Params{PageSize: 5})

	page.Data[0] = 99
	assert.Equal(t, 0, items[0])
}

func TestSearchFoldsCaseAndDiacritics(t *testing.T) {
	items := []string{"Café Crème Ritual", "Plain Broth"}

	out := Search(items, "cafe", func(s string) string { return s })
	assert.Equal(t, []string{"Café Crème Ritual"}, out)

	out = Search(items, "BROTH", func(s string) string { return s })
	assert.Equal(t, []string{"Plain Broth"}, out)
}

func TestSearchMatchesAnySelector(t *testing.T) {
	type doc struct{ title, body string }
	items := []doc{
		{title: "Star Pacing", body: "night practice"},
		{title: "Tea Ritual", body: "morning practice"},
	}

	out := Search(items, "night",
		func(d doc) string { return d.title },
		func(d doc) string { return d.body },
	)
	assert.Len(t, out, 1)
	assert.Equal(t, "Star Pacing", out[0].title)
}

func TestSearchEmptyTermKeepsEverything(t *testing.T) {
	items := []string{"a", "b"}
	assert.Equal(t, items, Search(items, "", func(s string) string { return s }))
}

func TestFilterSkipsNilPredicates(t *testing.T) {
	items := sequence(10)

	out := Filter(items, nil, func(i int) bool { return i%2 == 0 }, nil)
	assert.Equal(t, []int{0, 2, 4, 6, 8}, out)

	out = Filter(items, nil, nil)
	assert.Equal(t, items, out)
}

func TestFilterConjoinsPredicates(t *testing.T) {
	out := Filter(sequence(20),
		func(i int) bool { return i%2 == 0 },
		func(i int) bool { return i > 10 },
	)
	assert.Equal(t, []int{12, 14, 16, 18}, out)
}

func TestSortStablePreservesEqualOrder(t *testing.T) {
	type row struct {
		key   int
		label string
	}
	items := []row{
		{2, "first-two"},
		{1, "one"},
		{2, "second-two"},
	}

	SortStable(items, func(a, b row) bool { return a.key < b.key })

	assert.Equal(t, "one", items[0].label)
	assert.Equal(t, "first-two", items[1].label)
	assert.Equal(t, "second-two", items[2].label)
}
