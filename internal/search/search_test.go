package search

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/atomicstack/navshell/internal/catalog"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(
		[]catalog.Category{
			{ID: "y", Name: "Why", Order: 2},
			{ID: "x", Name: "Ex", Order: 1},
			{ID: "z", Name: "Zed", Order: 3},
		},
		[]catalog.MenuItem{
			{ID: "b", Name: "Beta match", Category: "y"},
			{ID: "a", Name: "Alpha MATCH", Category: "x"},
			{ID: "c", Name: "Gamma", Category: "z"},
			{ID: "d", Name: "Delta match", Category: "y"},
			{ID: "e", Name: "Orphan match", Category: "gone"},
		},
	)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return cat
}

func matchIDs(matches []Match) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.ID
	}
	return out
}

func TestSearchBlankQueryIsEmpty(t *testing.T) {
	cat := testCatalog(t)
	for _, q := range []string{"", "   ", "\t"} {
		if got := Search(q, cat); len(got) != 0 {
			t.Fatalf("expected no matches for %q, got %v", q, matchIDs(got))
		}
	}
}

func TestSearchKeepsSurroundingSpaces(t *testing.T) {
	cat := testCatalog(t)
	cases := []struct {
		query string
		want  []string
	}{
		{"a m", []string{"a", "b", "d"}},
		{"ta ", []string{"b", "d"}},
		{" match", []string{"b", "a", "d", "e"}},
		{"ma ", []string{}},
	}
	for _, tc := range cases {
		if diff := cmp.Diff(tc.want, matchIDs(Search(tc.query, cat))); diff != "" {
			t.Fatalf("unexpected matches for %q (-want +got):\n%s", tc.query, diff)
		}
	}
}

func TestSearchIsCaseInsensitiveSubstring(t *testing.T) {
	cat := testCatalog(t)
	got := Search("Match", cat)
	if diff := cmp.Diff([]string{"b", "a", "d", "e"}, matchIDs(got)); diff != "" {
		t.Fatalf("unexpected matches (-want +got):\n%s", diff)
	}
	if got[1].CategoryName != "Ex" {
		t.Fatalf("expected category name annotation, got %q", got[1].CategoryName)
	}
	if got[3].CategoryName != "gone" {
		t.Fatalf("expected unknown category to fall back to its id, got %q", got[3].CategoryName)
	}
}

func TestGroupByCategoryPreservesOrder(t *testing.T) {
	groups := GroupByCategory(Search("match", testCatalog(t)))
	if diff := cmp.Diff([]string{"b", "d"}, matchIDs(groups["y"])); diff != "" {
		t.Fatalf("unexpected group order (-want +got):\n%s", diff)
	}
	if len(groups["z"]) != 0 {
		t.Fatalf("expected no group for z, got %v", matchIDs(groups["z"]))
	}
}

func TestFilterOptionsOrdering(t *testing.T) {
	cat, err := catalog.New(
		[]catalog.Category{{ID: "x", Name: "X", Order: 1}, {ID: "y", Name: "Y", Order: 2}},
		[]catalog.MenuItem{{ID: "A", Name: "A item", Category: "x"}, {ID: "B", Name: "B item", Category: "y"}},
	)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	matches := Search("item", cat)
	got := FilterOptions(matches, GroupByCategory(matches), cat.Categories())
	want := []FilterOption{
		{ID: "all", Name: "All", Count: 2},
		{ID: "x", Name: "X", Count: 1},
		{ID: "y", Name: "Y", Count: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected options (-want +got):\n%s", diff)
	}
}

func TestFilterOptionsOmitEmptyCategories(t *testing.T) {
	cat := testCatalog(t)
	matches := Search("match", cat)
	got := FilterOptions(matches, GroupByCategory(matches), cat.Categories())
	want := []FilterOption{
		{ID: "all", Name: "All", Count: 4},
		{ID: "x", Name: "Ex", Count: 1},
		{ID: "y", Name: "Why", Count: 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected options (-want +got):\n%s", diff)
	}
}

func TestEngineActiveResults(t *testing.T) {
	e := NewEngine(testCatalog(t))
	if len(e.ActiveResults()) != 0 {
		t.Fatal("expected no results before a query")
	}
	e.SetQuery("match")
	if len(e.ActiveResults()) != 4 {
		t.Fatalf("expected all matches under all filter, got %v", matchIDs(e.ActiveResults()))
	}
	e.SetActiveFilter("y")
	if diff := cmp.Diff([]string{"b", "d"}, matchIDs(e.ActiveResults())); diff != "" {
		t.Fatalf("unexpected filtered results (-want +got):\n%s", diff)
	}
	if e.Query() != "match" || len(e.Matches()) != 4 {
		t.Fatal("changing the filter must not change query or matches")
	}
}

func TestEngineStaleFilterDegradesToEmpty(t *testing.T) {
	e := NewEngine(testCatalog(t))
	e.SetQuery("match")
	e.SetActiveFilter("x")
	e.SetQuery("delta")
	if e.ActiveFilter() != "x" {
		t.Fatalf("expected filter kept across queries, got %q", e.ActiveFilter())
	}
	if got := e.ActiveResults(); len(got) != 0 {
		t.Fatalf("expected stale filter to yield nothing, got %v", matchIDs(got))
	}
	e.SetActiveFilter("z")
	if got := e.ActiveResults(); len(got) != 0 {
		t.Fatalf("expected no results for zero-match category, got %v", matchIDs(got))
	}
}

func TestEngineCyclesFiltersAndResets(t *testing.T) {
	e := NewEngine(testCatalog(t))
	e.SetQuery("match")

	e.NextFilter()
	if e.ActiveFilter() != "x" {
		t.Fatalf("expected x after all, got %q", e.ActiveFilter())
	}
	e.NextFilter()
	e.NextFilter()
	if e.ActiveFilter() != AllFilter {
		t.Fatalf("expected wrap to all, got %q", e.ActiveFilter())
	}
	e.PrevFilter()
	if e.ActiveFilter() != "y" {
		t.Fatalf("expected y before all, got %q", e.ActiveFilter())
	}

	e.Reset()
	if e.Query() != "" || e.ActiveFilter() != AllFilter || len(e.Matches()) != 0 {
		t.Fatalf("expected reset state, got query=%q filter=%q", e.Query(), e.ActiveFilter())
	}
}
