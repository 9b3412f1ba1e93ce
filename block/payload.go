package block

import (
	"github.com/gilesknap/notiondata/enum"
	"github.com/gilesknap/notiondata/file"
	"github.com/gilesknap/notiondata/richtext"
)

// Payload is the variant-specific inner data of a block, stored on the wire
// under a key equal to the block's type tag. Variants with the same shape
// share a payload type; Block.Type tells them apart.
type Payload interface {
	blockPayload()
}

// TextPayload is the payload of paragraph, quote, toggle, bulleted_list_item,
// and numbered_list_item blocks: styled text plus optional nested children.
type TextPayload struct {
	RichText richtext.RichText
	Color    enum.Color

	// Children is the ordered nested blocks. Nil when absent on input; an
	// empty non-nil slice round-trips an explicit empty array.
	Children []*Block
}

// HeadingPayload is the payload of heading_1, heading_2, and heading_3.
type HeadingPayload struct {
	RichText     richtext.RichText
	Color        enum.Color
	IsToggleable bool
}

// ToDoPayload is the payload of to_do blocks.
type ToDoPayload struct {
	RichText richtext.RichText
	Checked  bool
	Color    enum.Color
	Children []*Block
}

// CalloutPayload is the payload of callout blocks.
type CalloutPayload struct {
	RichText richtext.RichText
	Icon     *string
	Color    enum.Color
}

// CodePayload is the payload of code blocks.
type CodePayload struct {
	Caption  richtext.RichText
	RichText richtext.RichText
	Language enum.Language
}

// BookmarkPayload is the payload of bookmark blocks.
type BookmarkPayload struct {
	URL     string
	Caption richtext.RichText
}

// URLPayload is the payload of embed and link_preview blocks.
type URLPayload struct {
	URL string
}

// MediaPayload is the payload of image and video blocks: a file union
// wrapped under a "file" key.
type MediaPayload struct {
	File *file.File
}

// FilePayload is the payload of file blocks, where the payload is the file
// union itself.
type FilePayload struct {
	File *file.File
}

// EmptyPayload is the placeholder payload of the structurally trivial
// variants: breadcrumb, divider, column, and column_list.
type EmptyPayload struct{}

// TitlePayload is the payload of child_page and child_database blocks.
type TitlePayload struct {
	Title string
}

// EquationPayload is the payload of equation blocks.
type EquationPayload struct {
	Expression string
}

// SyncedPayload is the payload of synced_block blocks. SyncedFrom is nil on
// the original block and set on every synced duplicate.
type SyncedPayload struct {
	SyncedFrom *SyncedFrom
	Children   []*Block
}

// SyncedFrom references the original block a synced duplicate mirrors.
type SyncedFrom struct {
	BlockID string
}

// TablePayload is the payload of table blocks.
type TablePayload struct {
	TableWidth      int
	HasColumnHeader bool
	HasRowHeader    bool
}

// TableRowPayload is the payload of table_row blocks: one rich text
// collection per cell.
type TableRowPayload struct {
	Cells []richtext.RichText
}

func (*TextPayload) blockPayload()     {}
func (*HeadingPayload) blockPayload()  {}
func (*ToDoPayload) blockPayload()     {}
func (*CalloutPayload) blockPayload()  {}
func (*CodePayload) blockPayload()     {}
func (*BookmarkPayload) blockPayload() {}
func (*URLPayload) blockPayload()      {}
func (*MediaPayload) blockPayload()    {}
func (*FilePayload) blockPayload()     {}
func (*EmptyPayload) blockPayload()    {}
func (*TitlePayload) blockPayload()    {}
func (*EquationPayload) blockPayload() {}
func (*SyncedPayload) blockPayload()   {}
func (*TablePayload) blockPayload()    {}
func (*TableRowPayload) blockPayload() {}
