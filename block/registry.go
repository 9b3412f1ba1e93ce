package block

// Type is a block variant's discriminator tag.
type Type string

// The full set of block types the API defines, one registry entry each.
const (
	TypeBookmark         Type = "bookmark"
	TypeBreadcrumb       Type = "breadcrumb"
	TypeBulletedListItem Type = "bulleted_list_item"
	TypeCallout          Type = "callout"
	TypeChildDatabase    Type = "child_database"
	TypeChildPage        Type = "child_page"
	TypeCode             Type = "code"
	TypeColumn           Type = "column"
	TypeColumnList       Type = "column_list"
	TypeDivider          Type = "divider"
	TypeEmbed            Type = "embed"
	TypeEquation         Type = "equation"
	TypeFile             Type = "file"
	TypeHeading1         Type = "heading_1"
	TypeHeading2         Type = "heading_2"
	TypeHeading3         Type = "heading_3"
	TypeImage            Type = "image"
	TypeLinkPreview      Type = "link_preview"
	TypeNumberedListItem Type = "numbered_list_item"
	TypeParagraph        Type = "paragraph"
	TypeQuote            Type = "quote"
	TypeSyncedBlock      Type = "synced_block"
	TypeTable            Type = "table"
	TypeTableRow         Type = "table_row"
	TypeToDo             Type = "to_do"
	TypeToggle           Type = "toggle"
	TypeVideo            Type = "video"
)

// codec pairs a variant's payload parser with its serializer. The parser
// receives the mapping found under the variant's tag key and the path of
// that mapping for error reporting; the serializer is its exact inverse.
type codec struct {
	parse     func(path string, raw map[string]any) (Payload, error)
	serialize func(p Payload) map[string]any
}

// optionalPayload marks the placeholder variants whose payload defaults to
// an empty object when the key is missing entirely.
var optionalPayload = map[Type]struct{}{
	TypeBreadcrumb: {},
	TypeColumn:     {},
	TypeColumnList: {},
	TypeDivider:    {},
}

// registry is the closed table of block variants. Variants sharing a payload
// shape share a codec; adding a variant means adding one entry here.
var registry map[Type]codec

// The table is populated in init rather than a composite literal so the
// serializers may refer back to registry without an initialization cycle.
func init() {
	registry = map[Type]codec{
		TypeBookmark:         {parseBookmarkPayload, serializeBookmarkPayload},
		TypeBreadcrumb:       {parseEmptyPayload, serializeEmptyPayload},
		TypeBulletedListItem: {parseTextPayload, serializeTextPayload},
		TypeCallout:          {parseCalloutPayload, serializeCalloutPayload},
		TypeChildDatabase:    {parseTitlePayload, serializeTitlePayload},
		TypeChildPage:        {parseTitlePayload, serializeTitlePayload},
		TypeCode:             {parseCodePayload, serializeCodePayload},
		TypeColumn:           {parseEmptyPayload, serializeEmptyPayload},
		TypeColumnList:       {parseEmptyPayload, serializeEmptyPayload},
		TypeDivider:          {parseEmptyPayload, serializeEmptyPayload},
		TypeEmbed:            {parseURLPayload, serializeURLPayload},
		TypeEquation:         {parseEquationPayload, serializeEquationPayload},
		TypeFile:             {parseFilePayload, serializeFilePayload},
		TypeHeading1:         {parseHeadingPayload, serializeHeadingPayload},
		TypeHeading2:         {parseHeadingPayload, serializeHeadingPayload},
		TypeHeading3:         {parseHeadingPayload, serializeHeadingPayload},
		TypeImage:            {parseMediaPayload, serializeMediaPayload},
		TypeLinkPreview:      {parseURLPayload, serializeURLPayload},
		TypeNumberedListItem: {parseTextPayload, serializeTextPayload},
		TypeParagraph:        {parseTextPayload, serializeTextPayload},
		TypeQuote:            {parseTextPayload, serializeTextPayload},
		TypeSyncedBlock:      {parseSyncedPayload, serializeSyncedPayload},
		TypeTable:            {parseTablePayload, serializeTablePayload},
		TypeTableRow:         {parseTableRowPayload, serializeTableRowPayload},
		TypeToDo:             {parseToDoPayload, serializeToDoPayload},
		TypeToggle:           {parseTextPayload, serializeTextPayload},
		TypeVideo:            {parseMediaPayload, serializeMediaPayload},
	}
}

// Types returns every registered block type, for callers that want to
// enumerate the closed set. The result is a fresh slice in no particular
// order.
func Types() []Type {
	out := make([]Type, 0, len(registry))
	for t := range registry {
		out = append(out, t)
	}
	return out
}
