package dto

import "github.com/danielgtaylor/huma/v2"

// Schema describes Fecha in generated API documents.
func (Fecha) Schema(huma.Registry) *huma.Schema {
	return &huma.Schema{Type: huma.TypeString, Format: "date", Examples: []any{"2006-01-02"}}
}
