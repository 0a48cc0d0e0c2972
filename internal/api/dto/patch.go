package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/brayannhc07/webapiautores/internal/domain"
	jsonpatch "github.com/evanphx/json-patch/v5"
)

// ErrInvalidPatch is returned when a JSON Patch document cannot be decoded
// or applied to a book.
var ErrInvalidPatch = errors.New("invalid patch document")

// BookPatcher applies RFC 6902 documents to the patchable view of a book.
type BookPatcher struct {
	validator *Validator
}

// NewBookPatcher creates a BookPatcher that revalidates with v.
func NewBookPatcher(v *Validator) *BookPatcher {
	return &BookPatcher{validator: v}
}

// Apply runs the patch document against the LibroPatchDTO view of book,
// revalidates the result with the creation rules and, only on success,
// copies the fields back onto book.
func (p *BookPatcher) Apply(document []byte, book *domain.Book) error {
	trimmed := bytes.TrimSpace(document)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return fmt.Errorf("%w: empty document", ErrInvalidPatch)
	}

	patch, err := jsonpatch.DecodePatch(trimmed)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPatch, err)
	}

	original, err := json.Marshal(ToLibroPatchDTO(*book))
	if err != nil {
		return fmt.Errorf("failed to encode patch target: %w", err)
	}

	patched, err := patch.Apply(original)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPatch, err)
	}

	var result LibroPatchDTO
	dec := json.NewDecoder(bytes.NewReader(patched))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&result); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPatch, err)
	}

	if err := p.validator.Validate(result); err != nil {
		return err
	}

	ApplyLibroPatchDTO(result, book)
	return nil
}
