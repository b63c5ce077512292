package document

import "fmt"

// FocusKind discriminates FocusableID payloads
type FocusKind uint8

const (
	KindNone FocusKind = iota
	KindLink
	KindCell
	KindEntity
)

// FocusableID identifies a focusable element across rebuilds of a document.
// Two ids are equal (==) iff their kind and payload match.
type FocusableID struct {
	Kind FocusKind

	// Name is the link name, the table name, or the entity kind
	Name string

	// Row and Col are set for table cells
	Row int
	Col int

	// Entity is set for entity links
	Entity int
}

// LinkID identifies a plain named link
func LinkID(name string) FocusableID {
	return FocusableID{Kind: KindLink, Name: name}
}

// CellID identifies one cell of a named table
func CellID(table string, row, col int) FocusableID {
	return FocusableID{Kind: KindCell, Name: table, Row: row, Col: col}
}

// EntityID identifies a link to a domain entity, e.g. EntityID("game", 42)
func EntityID(kind string, id int) FocusableID {
	return FocusableID{Kind: KindEntity, Name: kind, Entity: id}
}

// IsZero reports whether the id is unset
func (id FocusableID) IsZero() bool {
	return id == FocusableID{}
}

// InTableRow reports whether id is any cell in row of table. Renderers use
// it to highlight the whole row of the focused cell.
func (id FocusableID) InTableRow(table string, row int) bool {
	return id.Kind == KindCell && id.Name == table && id.Row == row
}

func (id FocusableID) String() string {
	switch id.Kind {
	case KindLink:
		return "link:" + id.Name
	case KindCell:
		return fmt.Sprintf("cell:%s[%d,%d]", id.Name, id.Row, id.Col)
	case KindEntity:
		return fmt.Sprintf("%s:%d", id.Name, id.Entity)
	default:
		return "none"
	}
}

// Target is what activating a focusable element opens
type Target struct {
	Kind string
	ID   int
	Key  string
}

// Rect is a position in document coordinates
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// RowPosition places a focusable element inside a Row: the y of the row,
// the index of the row child that contains it, and its index among that
// child's focusable elements.
type RowPosition struct {
	RowY  int
	Child int
	Index int
}

// FocusableElement is one entry of the flat focus list extracted from an
// element tree
type FocusableElement struct {
	ID     FocusableID
	Y      int
	Height int
	Rect   Rect
	Target *Target
	RowPos *RowPosition
}

// FocusContext is passed to Document.Build
type FocusContext struct {
	Focused FocusableID
}

// IsFocused reports whether id is the focused element
func (fc FocusContext) IsFocused(id FocusableID) bool {
	return !id.IsZero() && fc.Focused == id
}
