package ui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kvisser/shopfront/internal/catalog"
	"github.com/kvisser/shopfront/internal/shop"
	"github.com/kvisser/shopfront/internal/toast"
)

func testProducts() []catalog.Product {
	return []catalog.Product{
		{ID: 1, Name: "Essence Mascara Lash Princess", Price: 9.99, Category: "beauty", Rating: 2.56, Stock: 99},
		{ID: 2, Name: "Eyeshadow Palette with Mirror", Price: 19.99, Category: "beauty", Rating: 2.86, Stock: 34},
		{ID: 3, Name: "Calvin Klein CK One", Price: 49.99, Category: "fragrances", Rating: 4.37, Stock: 29},
	}
}

func testModel(t *testing.T) (Model, *shop.Store) {
	t.Helper()
	store := shop.New(testProducts())
	m := New(Options{
		Store:     store,
		Toasts:    toast.NewQueue(time.Minute),
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
	})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(Model), store
}

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	panic("unhandled key " + s)
}

func TestUpdate_SearchCommitDropsStaleSequence(t *testing.T) {
	m, store := testModel(t)
	m.searchInput.SetValue("mascara")
	m.searchSeq = 3

	next, _ := m.Update(searchCommitMsg{seq: 2})
	m = next.(Model)
	if got := store.State().SearchTerm; got != "" {
		t.Fatalf("stale commit applied, SearchTerm = %q", got)
	}

	next, _ = m.Update(searchCommitMsg{seq: 3})
	m = next.(Model)
	if got := store.State().SearchTerm; got != "mascara" {
		t.Fatalf("SearchTerm = %q, want %q", got, "mascara")
	}
	_ = m
}

func TestUpdate_EnterCommitsSearchImmediately(t *testing.T) {
	m, store := testModel(t)

	next, _ := m.Update(keyMsg("/"))
	m = next.(Model)
	if !m.searching {
		t.Fatal("slash should focus the search input")
	}

	for _, r := range "ck" {
		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	seqBefore := m.searchSeq

	next, _ = m.Update(keyMsg("enter"))
	m = next.(Model)
	if m.searching {
		t.Fatal("enter should blur the search input")
	}
	if got := store.State().SearchTerm; got != "ck" {
		t.Fatalf("SearchTerm = %q, want %q", got, "ck")
	}
	if m.searchSeq <= seqBefore {
		t.Fatal("enter should invalidate any pending debounce commit")
	}
}

func TestUpdate_EscapeClearsSearch(t *testing.T) {
	m, store := testModel(t)
	store.Dispatch(shop.SetSearchTerm{Term: "mascara"})
	m.searchInput.SetValue("mascara")

	next, _ := m.Update(keyMsg("esc"))
	m = next.(Model)
	if got := store.State().SearchTerm; got != "" {
		t.Fatalf("SearchTerm = %q, want empty", got)
	}
	if m.searchInput.Value() != "" {
		t.Fatalf("draft = %q, want empty", m.searchInput.Value())
	}
}

func TestHandleKey_AddToCartPushesToast(t *testing.T) {
	m, store := testModel(t)
	store.Dispatch(shop.SetCategoryFilter{Category: "All"})

	next, _ := m.Update(keyMsg("a"))
	m = next.(Model)

	if got := len(store.State().Cart); got != 1 {
		t.Fatalf("cart has %d lines, want 1", got)
	}
	toasts := m.toasts.Toasts()
	if len(toasts) != 1 || toasts[0].Type != toast.Cart {
		t.Fatalf("toasts = %#v, want one cart toast", toasts)
	}
}

func TestHandleKey_WishlistToggle(t *testing.T) {
	m, store := testModel(t)
	store.Dispatch(shop.SetCategoryFilter{Category: "All"})

	next, _ := m.Update(keyMsg("w"))
	m = next.(Model)
	if got := store.WishlistCount(); got != 1 {
		t.Fatalf("wishlist count = %d, want 1", got)
	}

	next, _ = m.Update(keyMsg("w"))
	m = next.(Model)
	if got := store.WishlistCount(); got != 0 {
		t.Fatalf("wishlist count after toggle = %d, want 0", got)
	}
}

func TestHandleKey_CartSidebarQuantities(t *testing.T) {
	m, store := testModel(t)
	store.Dispatch(shop.AddToCart{Product: testProducts()[0]})
	store.Dispatch(shop.ToggleCartSidebar{})

	next, _ := m.Update(keyMsg("+"))
	m = next.(Model)
	if got := store.State().Cart[0].Quantity; got != 2 {
		t.Fatalf("quantity = %d, want 2", got)
	}

	next, _ = m.Update(keyMsg("-"))
	m = next.(Model)
	next, _ = m.Update(keyMsg("-"))
	m = next.(Model)
	if got := len(store.State().Cart); got != 0 {
		t.Fatalf("cart has %d lines, want 0 after decrementing to zero", got)
	}
	_ = m
}

func TestNextCategory_CyclesThroughWelcomeState(t *testing.T) {
	m, _ := testModel(t)

	got := m.nextCategory("")
	if got != "All" {
		t.Fatalf("nextCategory(\"\") = %q, want All", got)
	}
	if got = m.nextCategory("All"); got != "beauty" {
		t.Fatalf("nextCategory(All) = %q, want beauty", got)
	}
	if got = m.nextCategory("fragrances"); got != "" {
		t.Fatalf("nextCategory(fragrances) = %q, want welcome state", got)
	}
}

func TestNextSortKey_Cycles(t *testing.T) {
	seen := map[shop.SortKey]bool{}
	k := shop.SortName
	for range sortOrder {
		seen[k] = true
		k = nextSortKey(k)
	}
	if k != shop.SortName {
		t.Fatalf("cycle did not return to start, got %q", k)
	}
	if len(seen) != len(sortOrder) {
		t.Fatalf("cycle visited %d keys, want %d", len(seen), len(sortOrder))
	}
}

func TestRenderRegion_PanicShowsFallbackUntilRetry(t *testing.T) {
	m, _ := testModel(t)

	calls := 0
	out := m.renderRegion("products", func() string {
		calls++
		panic("boom")
	})
	if !strings.Contains(out, "Something went wrong in products") {
		t.Fatalf("fallback not rendered:\n%s", out)
	}

	// The failure is remembered; the region is not re-run.
	out = m.renderRegion("products", func() string {
		calls++
		return "fine"
	})
	if calls != 1 {
		t.Fatalf("failed region re-rendered, calls = %d", calls)
	}
	if !strings.Contains(out, "press r to retry") {
		t.Fatalf("fallback missing retry hint:\n%s", out)
	}

	// Retry clears the failure and the region renders again.
	next, _ := m.Update(keyMsg("r"))
	m = next.(Model)
	out = m.renderRegion("products", func() string { return "fine" })
	if out != "fine" {
		t.Fatalf("region did not recover after retry, got %q", out)
	}
}

func TestRenderRegion_FailureIsIsolated(t *testing.T) {
	m, _ := testModel(t)

	m.renderRegion("header", func() string { panic("header broke") })
	if out := m.renderRegion("footer", func() string { return "ok" }); out != "ok" {
		t.Fatalf("unrelated region affected, got %q", out)
	}
}

func TestView_RendersBeforeAndAfterResize(t *testing.T) {
	store := shop.New(testProducts())
	m := New(Options{
		Store:     store,
		Toasts:    toast.NewQueue(time.Minute),
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
	})

	if got := m.View(); got != "Loading..." {
		t.Fatalf("View before resize = %q, want Loading...", got)
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)
	out := m.View()
	if !strings.Contains(out, "shopfront") {
		t.Fatalf("View missing header logo:\n%s", out)
	}
	if !strings.Contains(out, "Welcome to shopfront") {
		t.Fatalf("View missing welcome state:\n%s", out)
	}
}

func TestView_ShowsProductsWhenFiltered(t *testing.T) {
	m, store := testModel(t)
	store.Dispatch(shop.SetCategoryFilter{Category: "fragrances"})

	out := m.View()
	if !strings.Contains(out, "Calvin Klein CK One") {
		t.Fatalf("View missing filtered product:\n%s", out)
	}
}
