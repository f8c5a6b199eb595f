package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID     int
	Status string
}

func seed() []record {
	statuses := []string{"Pending", "Confirmed", "Pending", "Cancelled", "Confirmed", "Pending", "Rejected", "Pending", "Confirmed", "Pending"}
	out := make([]record, len(statuses))
	for i, s := range statuses {
		out[i] = record{ID: i + 1, Status: s}
	}
	return out
}

func TestFilter_PreservesSourceOrder(t *testing.T) {
	items := seed()
	byStatus := func(status string) Predicate[record] {
		return func(r record) bool { return r.Status == status }
	}

	filtered := Filter(items, byStatus("Confirmed"))

	require.Len(t, filtered, 3)
	assert.Equal(t, []int{2, 5, 9}, []int{filtered[0].ID, filtered[1].ID, filtered[2].ID})
}

func TestFilter_AllPredicatesMustPass(t *testing.T) {
	items := seed()
	pending := func(r record) bool { return r.Status == "Pending" }
	evenID := func(r record) bool { return r.ID%2 == 0 }

	filtered := Filter(items, pending, evenID)

	require.Len(t, filtered, 2)
	assert.Equal(t, 6, filtered[0].ID)
	assert.Equal(t, 8, filtered[1].ID)
}

func TestFilter_NoPredicatesReturnsCopy(t *testing.T) {
	items := seed()
	filtered := Filter(items)

	assert.Equal(t, items, filtered)
	// the result is a new backing slice
	filtered[0].Status = "mutated"
	assert.Equal(t, "Pending", items[0].Status)
}

func TestFilter_IsIdempotent(t *testing.T) {
	items := seed()
	pending := func(r record) bool { return r.Status == "Pending" }

	first := Filter(items, pending)
	second := Filter(first, pending)

	assert.Equal(t, first, second)
}

func TestPaginate_TwelveItemsPageSizeFive(t *testing.T) {
	items := make([]int, 12)
	for i := range items {
		items[i] = i + 1
	}

	first := Paginate(items, 1, 5)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, first.Items)
	assert.Equal(t, 12, first.Total)
	assert.Equal(t, 3, first.TotalPages)

	last := Paginate(items, 3, 5)
	assert.Equal(t, []int{11, 12}, last.Items)
}

func TestPaginate_OutOfRangePageIsEmpty(t *testing.T) {
	items := []int{1, 2, 3}

	page := Paginate(items, 9, 5)
	assert.Empty(t, page.Items)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 1, page.TotalPages)
}

func TestPaginate_EmptyCollectionHasZeroPages(t *testing.T) {
	page := Paginate([]int{}, 1, 5)
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.Total)
	assert.Equal(t, 0, page.TotalPages)
}

func TestMatchesSearchTerm(t *testing.T) {
	assert.True(t, MatchesSearchTerm("", "anything"))
	assert.True(t, MatchesSearchTerm("RAVI", "Ravi Kumar", "ravi@example.com"))
	assert.True(t, MatchesSearchTerm("98765", "Ravi Kumar", "+91 98765 43210"))
	assert.False(t, MatchesSearchTerm("priya", "Ravi Kumar", "ravi@example.com"))
}
