package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/ropen/internal/records"
	statepkg "github.com/kk-code-lab/ropen/internal/state"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	scr := tcell.NewSimulationScreen("")
	if err := scr.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(scr.Fini)
	scr.SetSize(w, h)
	return scr
}

func openedState(t *testing.T, query string, w, h int) *statepkg.AppState {
	t.Helper()
	store := records.NewStore([]statepkg.Record{
		{Name: "Foo.cs", Dir: "/a", Group: "P"},
		{Name: "Bar.cs", Dir: "/b", Group: "P"},
		{Name: "foobar.txt", Dir: "/c", Group: "Q"},
	})
	reducer := statepkg.NewStateReducer()
	state := statepkg.NewAppState(store, statepkg.Options{})
	state.SeedSession(query, "")
	for _, action := range []statepkg.Action{statepkg.ResizeAction{Width: w, Height: h}, statepkg.OpenAction{}} {
		if _, err := reducer.Reduce(state, action); err != nil {
			t.Fatalf("reduce: %v", err)
		}
	}
	return state
}

func rowText(scr tcell.SimulationScreen, y int) string {
	w, _ := scr.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		ru, _, _, _ := scr.GetContent(x, y)
		if ru == 0 {
			ru = ' '
		}
		b.WriteRune(ru)
	}
	return strings.TrimRight(b.String(), " ")
}

func TestRenderShowsTitleQueryAndHeader(t *testing.T) {
	scr := newTestScreen(t, 80, 10)
	state := openedState(t, "foo", 80, 10)

	NewRenderer(scr).Render(state)

	if got := rowText(scr, 0); got != "Open file (2/3)" {
		t.Fatalf("title row = %q", got)
	}
	if got := rowText(scr, 1); got != "Search: foo" {
		t.Fatalf("query row = %q", got)
	}
	header := rowText(scr, 2)
	if !strings.HasPrefix(header, "File ▲") || !strings.Contains(header, "Path") || !strings.Contains(header, "Project") {
		t.Fatalf("header row = %q", header)
	}
}

func TestRenderListsRecordsAndMarksSelection(t *testing.T) {
	scr := newTestScreen(t, 80, 10)
	state := openedState(t, "foo", 80, 10)

	renderer := NewRenderer(scr)
	renderer.Render(state)
	layout := renderer.LastLayout()

	first := rowText(scr, layout.ListStartRow)
	second := rowText(scr, layout.ListStartRow+1)
	if !strings.HasPrefix(first, "Foo.cs") || !strings.Contains(first, "/a") {
		t.Fatalf("first row = %q", first)
	}
	if !strings.HasPrefix(second, "foobar.txt") || !strings.Contains(second, "Q") {
		t.Fatalf("second row = %q", second)
	}

	theme := GetColorTheme()
	_, _, style, _ := scr.GetContent(layout.Width-1, layout.ListStartRow)
	if _, bg, _ := style.Decompose(); bg != theme.SelectionBg {
		t.Fatalf("selected row should use the selection background, got %v", bg)
	}
	_, _, style, _ = scr.GetContent(layout.Width-1, layout.ListStartRow+1)
	if _, bg, _ := style.Decompose(); bg == theme.SelectionBg {
		t.Fatalf("unselected row should not be highlighted")
	}
}

func TestRenderHighlightsMatchedSubstring(t *testing.T) {
	scr := newTestScreen(t, 80, 10)
	state := openedState(t, "bar", 80, 10)

	renderer := NewRenderer(scr)
	renderer.Render(state)
	y := renderer.LastLayout().ListStartRow + 1 // foobar.txt, unselected

	_, _, plain, _ := scr.GetContent(0, y)
	_, _, match, _ := scr.GetContent(3, y)
	if _, _, attrs := plain.Decompose(); attrs&tcell.AttrBold != 0 {
		t.Fatalf("unmatched rune should not be bold")
	}
	if fg, _, attrs := match.Decompose(); attrs&tcell.AttrBold == 0 || fg != GetColorTheme().MatchFg {
		t.Fatalf("matched rune should use the match style")
	}
}

func TestRenderEmptyResult(t *testing.T) {
	scr := newTestScreen(t, 80, 10)
	state := openedState(t, "zzz", 80, 10)

	NewRenderer(scr).Render(state)

	if got := rowText(scr, 0); got != "Open file (0/3)" {
		t.Fatalf("title row = %q", got)
	}
	if got := rowText(scr, 3); !strings.Contains(got, "no matching files") {
		t.Fatalf("list row = %q", got)
	}
	if got := rowText(scr, 9); !strings.HasPrefix(got, " 0 matches out of 3") {
		t.Fatalf("status row = %q", got)
	}
}

func TestRenderStatusShowsError(t *testing.T) {
	scr := newTestScreen(t, 80, 10)
	state := openedState(t, "", 80, 10)
	state.LastError = errors.New("clipboard unavailable")

	NewRenderer(scr).Render(state)

	if got := rowText(scr, 9); got != " error: clipboard unavailable" {
		t.Fatalf("status row = %q", got)
	}
}

func TestRenderScrolledList(t *testing.T) {
	scr := newTestScreen(t, 80, 6)
	state := openedState(t, "", 80, 6)
	reducer := statepkg.NewStateReducer()
	if _, err := reducer.Reduce(state, statepkg.EndAction{}); err != nil {
		t.Fatal(err)
	}

	renderer := NewRenderer(scr)
	renderer.Render(state)

	if state.ScrollOffset != 1 {
		t.Fatalf("expected scroll offset 1, got %d", state.ScrollOffset)
	}
	if got := rowText(scr, 3); !strings.HasPrefix(got, "Foo.cs") {
		t.Fatalf("first list row after scroll = %q", got)
	}
	if got := rowText(scr, 4); !strings.HasPrefix(got, "foobar.txt") {
		t.Fatalf("second list row after scroll = %q", got)
	}
}

func TestComputeColumnsScalesProportions(t *testing.T) {
	xs, widths := computeColumns(83, statepkg.DefaultColumnWidths)
	if widths != [statepkg.ColumnCount]int{20, 40, 21} {
		t.Fatalf("widths = %v", widths)
	}
	if xs != [statepkg.ColumnCount]int{0, 21, 62} {
		t.Fatalf("xs = %v", xs)
	}

	_, widths = computeColumns(2, statepkg.DefaultColumnWidths)
	if widths != [statepkg.ColumnCount]int{2, 0, 0} {
		t.Fatalf("tiny screen widths = %v", widths)
	}
}

func TestLayoutHitTesting(t *testing.T) {
	state := openedState(t, "", 83, 10)
	layout := computeLayout(83, 10, state)

	tests := []struct {
		x    int
		want statepkg.Column
	}{
		{0, statepkg.ColumnName},
		{20, statepkg.ColumnName},
		{21, statepkg.ColumnDir},
		{61, statepkg.ColumnDir},
		{62, statepkg.ColumnGroup},
		{82, statepkg.ColumnGroup},
	}
	for _, tt := range tests {
		got, ok := layout.ColumnAt(tt.x)
		if !ok || got != tt.want {
			t.Fatalf("ColumnAt(%d) = %v, %v; want %v", tt.x, got, ok, tt.want)
		}
	}
	if _, ok := layout.ColumnAt(83); ok {
		t.Fatalf("x beyond width should miss")
	}

	if row, ok := layout.RowAt(layout.ListStartRow + 2); !ok || row != 2 {
		t.Fatalf("RowAt = %d, %v", row, ok)
	}
	if _, ok := layout.RowAt(layout.HeaderRow); ok {
		t.Fatalf("header row is not a list row")
	}
	if _, ok := layout.RowAt(9); ok {
		t.Fatalf("status row is not a list row")
	}
}
