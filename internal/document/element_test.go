package document

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func ys(fs []FocusableElement) []int {
	out := make([]int, len(fs))
	for i, f := range fs {
		out[i] = f.Y
	}
	return out
}

func TestHeights(t *testing.T) {
	tests := []struct {
		name string
		elem Element
		want int
	}{
		{"text single line", Text{Content: "a"}, 1},
		{"text three lines", Text{Content: "a\nb\nc"}, 3},
		{"heading level 1", Heading{Level: 1, Content: "T"}, 2},
		{"heading level 2", Heading{Level: 2, Content: "T"}, 1},
		{"section title", SectionTitle{Content: "S"}, 2},
		{"section title underlined", SectionTitle{Content: "S", Underline: true}, 3},
		{"separator", Separator{}, 1},
		{"spacer", Spacer{Lines: 4}, 4},
		{"negative spacer", Spacer{Lines: -1}, 0},
		{"link", Link{ID: LinkID("a"), Label: "a"}, 1},
		{"group sums", Group{Children: []Element{Text{Content: "a\nb"}, Spacer{Lines: 3}, Link{}}}, 6},
		{"row takes max", Row{Children: []Element{Text{Content: "a\nb"}, Spacer{Lines: 5}, Link{}}}, 5},
		{"empty row", Row{}, 0},
		{"indented", Indented{Child: Heading{Level: 1, Content: "x"}, Margin: 4}, 2},
		{"button", Button{Lines: []string{"a", "b", "c"}}, 3},
		{"empty button", Button{}, 1},
		{"table with header", Table{Grid: Grid{Columns: []Column{{Title: "Team"}}, Rows: [][]Cell{{TextCell("a")}, {TextCell("b")}}}}, 4},
		{"table without header", Table{Grid: Grid{Columns: []Column{{}}, Rows: [][]Cell{{TextCell("a")}}}}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.elem.Height(); got != tt.want {
				t.Errorf("Height() = %d, want %d", got, tt.want)
			}
			if lines := tt.elem.Render(RenderContext{Width: 40}); len(lines) != tt.want {
				t.Errorf("Render() returned %d lines, want %d", len(lines), tt.want)
			}
		})
	}
}

func TestCollectFocusable_HeadingSpacerLinks(t *testing.T) {
	elems := []Element{
		Heading{Level: 1, Content: "T"},
		Spacer{Lines: 1},
		Link{ID: LinkID("a"), Label: "a"},
		Link{ID: LinkID("b"), Label: "b"},
	}

	got := CollectFocusable(elems, 0)
	if diff := cmp.Diff([]int{3, 4}, ys(got)); diff != "" {
		t.Errorf("focusable y mismatch (-want +got):\n%s", diff)
	}
	if got[0].ID != LinkID("a") || got[1].ID != LinkID("b") {
		t.Errorf("ids = %v, %v", got[0].ID, got[1].ID)
	}
}

func TestCollectFocusable_YOffset(t *testing.T) {
	got := CollectFocusable([]Element{Text{Content: "x"}, Link{ID: LinkID("a")}}, 10)
	if len(got) != 1 || got[0].Y != 11 {
		t.Errorf("focusables = %+v, want one entry at y=11", got)
	}
}

func TestCollectFocusable_StaticElementsContributeNothing(t *testing.T) {
	elems := []Element{
		Text{Content: "a\nb"},
		Heading{Level: 1, Content: "h"},
		SectionTitle{Content: "s", Underline: true},
		Separator{},
		Spacer{Lines: 2},
	}
	if got := CollectFocusable(elems, 0); len(got) != 0 {
		t.Errorf("got %d focusables, want 0", len(got))
	}
}

func TestTable_OneEntryPerLinkCell(t *testing.T) {
	target := Target{Kind: "team"}
	grid := Grid{
		Name:    "standings",
		Columns: []Column{{Title: "Team"}, {Title: "GP"}, {Title: "Pts"}},
		Rows: [][]Cell{
			{LinkCell("TOR", target), TextCell("10"), TextCell("15")},
			{LinkCell("MTL", target), TextCell("10"), LinkCell("12", target)},
			{TextCell("BOS"), TextCell("10"), TextCell("11")},
		},
	}

	got := CollectFocusable([]Element{Table{Grid: grid}}, 0)

	wantIDs := []FocusableID{
		CellID("standings", 0, 0),
		CellID("standings", 1, 0),
		CellID("standings", 1, 2),
	}
	if len(got) != len(wantIDs) {
		t.Fatalf("got %d focusables, want %d", len(got), len(wantIDs))
	}
	for i, f := range got {
		if f.ID != wantIDs[i] {
			t.Errorf("entry %d id = %v, want %v", i, f.ID, wantIDs[i])
		}
		if f.Target == nil || f.Target.Kind != "team" {
			t.Errorf("entry %d target = %+v", i, f.Target)
		}
	}
	// Row r sits below the two-line header
	if diff := cmp.Diff([]int{2, 3, 3}, ys(got)); diff != "" {
		t.Errorf("table y mismatch (-want +got):\n%s", diff)
	}
}

func TestTable_CellXOffsets(t *testing.T) {
	grid := Grid{
		Name:    "t",
		Columns: []Column{{Title: "Team"}, {Title: "Pts"}},
		Rows:    [][]Cell{{LinkCell("TOR", Target{}), LinkCell("15", Target{})}},
	}
	got := CollectFocusable([]Element{Table{Grid: grid}}, 0)
	if len(got) != 2 {
		t.Fatalf("got %d focusables", len(got))
	}
	if got[0].Rect.X != markerWidth {
		t.Errorf("first cell x = %d, want %d", got[0].Rect.X, markerWidth)
	}
	if want := markerWidth + 4 + ColumnGap; got[1].Rect.X != want {
		t.Errorf("second cell x = %d, want %d", got[1].Rect.X, want)
	}
}

func TestFocusableID_InTableRow(t *testing.T) {
	id := CellID("east", 3, 2)
	if !id.InTableRow("east", 3) {
		t.Error("cell should be in its own row")
	}
	if id.InTableRow("east", 2) || id.InTableRow("west", 3) {
		t.Error("cell matched the wrong row or table")
	}
	if LinkID("east").InTableRow("east", 0) {
		t.Error("a link is never in a table row")
	}
	if CellID("a", 1, 2) != CellID("a", 1, 2) {
		t.Error("equal payloads should compare equal")
	}
	if EntityID("game", 1) == EntityID("team", 1) {
		t.Error("different entity kinds should differ")
	}
}

func TestRow_TagsPositionsAndMergesByY(t *testing.T) {
	row := Row{
		Gap: 2,
		Children: []Element{
			Group{Children: []Element{Link{ID: LinkID("a0")}, Link{ID: LinkID("a1")}}},
			Group{Children: []Element{Link{ID: LinkID("b0")}}},
		},
	}
	elems := []Element{Spacer{Lines: 3}, row}
	got := CollectFocusable(elems, 0)

	wantOrder := []FocusableID{LinkID("a0"), LinkID("b0"), LinkID("a1")}
	for i, f := range got {
		if f.ID != wantOrder[i] {
			t.Errorf("entry %d = %v, want %v", i, f.ID, wantOrder[i])
		}
		if f.RowPos == nil || f.RowPos.RowY != 3 {
			t.Errorf("entry %d row position = %+v, want row y 3", i, f.RowPos)
		}
	}
	if got[2].RowPos.Child != 0 || got[2].RowPos.Index != 1 {
		t.Errorf("a1 row position = %+v", got[2].RowPos)
	}
	if got[1].RowPos.Child != 1 || got[1].RowPos.Index != 0 {
		t.Errorf("b0 row position = %+v", got[1].RowPos)
	}
}

func TestRow_NestedRowKeepsInnerPosition(t *testing.T) {
	inner := Row{Children: []Element{Link{ID: LinkID("x")}, Link{ID: LinkID("y")}}}
	outer := Row{Children: []Element{inner, Link{ID: LinkID("z")}}}

	got := CollectFocusable([]Element{outer}, 0)
	byID := map[FocusableID]*RowPosition{}
	for _, f := range got {
		byID[f.ID] = f.RowPos
	}
	if byID[LinkID("y")].Child != 1 {
		t.Errorf("y child = %d, want inner child index 1", byID[LinkID("y")].Child)
	}
	if byID[LinkID("z")].Child != 1 {
		t.Errorf("z child = %d, want outer child index 1", byID[LinkID("z")].Child)
	}
}

func TestRow_ShiftsRectsIntoColumns(t *testing.T) {
	row := Row{
		Gap:   2,
		Width: 22,
		Children: []Element{
			Group{Children: []Element{Text{Content: "left"}, Link{ID: LinkID("l"), Label: "first"}}},
			Indented{Child: Link{ID: LinkID("r"), Label: "right"}, Margin: 1},
		},
	}
	got := CollectFocusable([]Element{row}, 0)
	xs := map[FocusableID]int{}
	for _, f := range got {
		xs[f.ID] = f.Rect.X
	}
	want := map[FocusableID]int{LinkID("l"): 0, LinkID("r"): 13}
	if diff := cmp.Diff(want, xs); diff != "" {
		t.Errorf("rect x (-want +got):\n%s", diff)
	}

	lines := row.Render(RenderContext{Width: 40, Styles: PlainStyles()})
	if line := lines[0]; len(line) < 13 || line[13:] != "  right" {
		t.Errorf("rendered line %q does not place the right column at x=13", line)
	}
}

func TestRow_WithoutWidthKeepsColumnRelativeRects(t *testing.T) {
	row := Row{Gap: 2, Children: []Element{Link{ID: LinkID("a")}, Link{ID: LinkID("b")}}}
	for _, f := range CollectFocusable([]Element{row}, 0) {
		if f.Rect.X != 0 {
			t.Errorf("%v rect x = %d, want 0", f.ID, f.Rect.X)
		}
	}
}

func TestIndented_ShiftsRect(t *testing.T) {
	got := CollectFocusable([]Element{Indented{Child: Link{ID: LinkID("a"), Label: "a"}, Margin: 4}}, 0)
	if len(got) != 1 || got[0].Rect.X != 4 {
		t.Errorf("focusables = %+v, want x=4", got)
	}
}

// randomTree builds an arbitrary element tree for property tests
func randomTree(r *rand.Rand, depth int, n *int) Element {
	leaf := func() Element {
		*n++
		switch r.Intn(7) {
		case 0:
			return Text{Content: "t\nt"}
		case 1:
			return Heading{Level: 1 + r.Intn(2), Content: "h"}
		case 2:
			return Spacer{Lines: r.Intn(3)}
		case 3:
			return Button{ID: LinkID("b" + string(rune('a'+*n%26))), Lines: make([]string, 1+r.Intn(3))}
		case 4:
			rows := make([][]Cell, r.Intn(4))
			for i := range rows {
				rows[i] = []Cell{LinkCell("x", Target{}), TextCell("y")}
			}
			return Table{Grid: Grid{Name: "t", Columns: []Column{{Title: "A"}, {}}, Rows: rows}}
		default:
			return Link{ID: EntityID("e", *n), Label: "l"}
		}
	}
	if depth == 0 {
		return leaf()
	}
	children := make([]Element, 1+r.Intn(4))
	for i := range children {
		children[i] = randomTree(r, depth-1, n)
	}
	switch r.Intn(4) {
	case 0:
		return Row{Children: children, Gap: 1}
	case 1:
		return Indented{Child: Group{Children: children}, Margin: 2}
	case 2:
		return leaf()
	default:
		return Group{Children: children}
	}
}

func randomDocument(seed int64) []Element {
	r := rand.New(rand.NewSource(seed))
	var n int
	elems := make([]Element, 1+r.Intn(6))
	for i := range elems {
		elems[i] = randomTree(r, 3, &n)
	}
	return elems
}

func TestCollectFocusable_NonDecreasingY(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		elems := randomDocument(seed)
		got := CollectFocusable(elems, 0)
		for i := 1; i < len(got); i++ {
			if got[i].Y < got[i-1].Y {
				t.Fatalf("seed %d: entry %d y=%d before entry %d y=%d", seed, i-1, got[i-1].Y, i, got[i].Y)
			}
		}
		total := Height(elems)
		for _, f := range got {
			if f.Y < 0 || f.Y+f.Height > total {
				t.Fatalf("seed %d: entry %v spans [%d,%d) outside content height %d", seed, f.ID, f.Y, f.Y+f.Height, total)
			}
		}
	}
}

func TestRowHeight_IsMaxNeverSum(t *testing.T) {
	for seed := int64(0); seed < 100; seed++ {
		r := rand.New(rand.NewSource(seed))
		var n int
		children := make([]Element, 1+r.Intn(5))
		want, sum := 0, 0
		for i := range children {
			children[i] = randomTree(r, 2, &n)
			want = max(want, children[i].Height())
			sum += children[i].Height()
		}
		row := Row{Children: children}
		if row.Height() != want {
			t.Fatalf("seed %d: Height() = %d, want max %d (sum %d)", seed, row.Height(), want, sum)
		}
	}
}

func TestRender_Plain(t *testing.T) {
	grid := Grid{
		Name:    "t",
		Columns: []Column{{Title: "Team"}, {Title: "Pts", Align: AlignRight}},
		Rows: [][]Cell{
			{LinkCell("TOR", Target{}), TextCell("15")},
			{LinkCell("MTL", Target{}), TextCell("9")},
		},
	}
	elems := []Element{
		Heading{Level: 1, Content: "Standings"},
		Table{Grid: grid},
		Link{ID: LinkID("more"), Label: "More"},
	}

	ctx := RenderContext{Width: 40, Focused: CellID("t", 1, 0), Styles: PlainStyles()}
	var got []string
	for _, e := range elems {
		got = append(got, e.Render(ctx)...)
	}

	want := []string{
		"Standings",
		"═════════",
		"  Team  Pts",
		"  ─────────",
		"  TOR    15",
		"> MTL     9",
		"  More",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_RowSideBySide(t *testing.T) {
	row := Row{
		Gap: 2,
		Children: []Element{
			Text{Content: "left\nl2"},
			Link{ID: LinkID("r"), Label: "right"},
		},
	}
	got := row.Render(RenderContext{Width: 22, Styles: PlainStyles()})
	want := []string{
		"left          right",
		"l2",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
}
