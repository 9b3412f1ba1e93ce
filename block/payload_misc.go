package block

import (
	"github.com/gilesknap/notiondata"
	"github.com/gilesknap/notiondata/identify"
	"github.com/gilesknap/notiondata/richtext"
)

// Codecs for the structural and table payload shapes.

func parseEmptyPayload(string, map[string]any) (Payload, error) {
	return &EmptyPayload{}, nil
}

func serializeEmptyPayload(Payload) map[string]any {
	return map[string]any{}
}

func parseTitlePayload(path string, raw map[string]any) (Payload, error) {
	title, err := requiredString(path, raw, "title")
	if err != nil {
		return nil, err
	}
	return &TitlePayload{Title: title}, nil
}

func serializeTitlePayload(p Payload) map[string]any {
	return map[string]any{"title": p.(*TitlePayload).Title}
}

func parseEquationPayload(path string, raw map[string]any) (Payload, error) {
	expr, err := requiredString(path, raw, "expression")
	if err != nil {
		return nil, err
	}
	return &EquationPayload{Expression: expr}, nil
}

func serializeEquationPayload(p Payload) map[string]any {
	return map[string]any{"expression": p.(*EquationPayload).Expression}
}

func parseSyncedPayload(path string, raw map[string]any) (Payload, error) {
	sp := &SyncedPayload{}
	if v, present := raw["synced_from"]; present && v != nil {
		m, ok := v.(map[string]any)
		if !ok {
			return nil, &notiondata.ValidationError{
				Path:    fieldPath(path, "synced_from"),
				Value:   v,
				Message: "synced_from must be an object or null",
			}
		}
		fromPath := fieldPath(path, "synced_from")
		id, err := requiredString(fromPath, m, "block_id")
		if err != nil {
			return nil, err
		}
		if err := identify.ValidateID(fieldPath(fromPath, "block_id"), id); err != nil {
			return nil, err
		}
		sp.SyncedFrom = &SyncedFrom{BlockID: id}
	}
	children, err := parseChildren(path, raw)
	if err != nil {
		return nil, err
	}
	sp.Children = children
	return sp, nil
}

func serializeSyncedPayload(p Payload) map[string]any {
	sp := p.(*SyncedPayload)
	// synced_from distinguishes an original (null) from a duplicate, so it
	// always emits.
	raw := map[string]any{"synced_from": nil}
	if sp.SyncedFrom != nil {
		raw["synced_from"] = map[string]any{"block_id": sp.SyncedFrom.BlockID}
	}
	if sp.Children != nil {
		raw["children"] = rawChildren(sp.Children)
	}
	return raw
}

func parseTablePayload(path string, raw map[string]any) (Payload, error) {
	width, err := requiredInt(path, raw, "table_width")
	if err != nil {
		return nil, err
	}
	colHeader, err := requiredBool(path, raw, "has_column_header")
	if err != nil {
		return nil, err
	}
	rowHeader, err := requiredBool(path, raw, "has_row_header")
	if err != nil {
		return nil, err
	}
	return &TablePayload{
		TableWidth:      width,
		HasColumnHeader: colHeader,
		HasRowHeader:    rowHeader,
	}, nil
}

func serializeTablePayload(p Payload) map[string]any {
	tp := p.(*TablePayload)
	return map[string]any{
		"table_width":       tp.TableWidth,
		"has_column_header": tp.HasColumnHeader,
		"has_row_header":    tp.HasRowHeader,
	}
}

func parseTableRowPayload(path string, raw map[string]any) (Payload, error) {
	v, present := raw["cells"]
	if !present || v == nil {
		return nil, &notiondata.ValidationError{
			Path:    fieldPath(path, "cells"),
			Message: "cells is required",
		}
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, &notiondata.ValidationError{
			Path:    fieldPath(path, "cells"),
			Value:   v,
			Message: "cells must be an array of rich text collections",
		}
	}
	cellsPath := fieldPath(path, "cells")
	cells := make([]richtext.RichText, 0, len(arr))
	for i, item := range arr {
		cell, err := richtext.Parse(indexPath(cellsPath, i), item)
		if err != nil {
			return nil, err
		}
		cells = append(cells, cell)
	}
	return &TableRowPayload{Cells: cells}, nil
}

func serializeTableRowPayload(p Payload) map[string]any {
	tp := p.(*TableRowPayload)
	cells := make([]any, 0, len(tp.Cells))
	for _, cell := range tp.Cells {
		cells = append(cells, cell.Raw())
	}
	return map[string]any{"cells": cells}
}
