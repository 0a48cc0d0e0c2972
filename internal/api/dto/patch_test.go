package dto

import (
	"testing"
	"time"

	"github.com/brayannhc07/webapiautores/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func patchTarget() *domain.Book {
	return &domain.Book{
		ID:      1,
		Title:   "Original",
		Authors: []domain.AuthorBook{{AuthorID: 2, Order: 0}},
	}
}

func TestBookPatcher_Apply(t *testing.T) {
	t.Parallel()

	p := NewBookPatcher(NewValidator())
	book := patchTarget()

	err := p.Apply([]byte(`[
		{"op": "replace", "path": "/titulo", "value": "Rayuela"},
		{"op": "replace", "path": "/fechaPublicacion", "value": "1963-06-28"}
	]`), book)
	require.NoError(t, err)

	assert.Equal(t, "Rayuela", book.Title)
	require.NotNil(t, book.PublicationDate)
	assert.True(t, time.Date(1963, 6, 28, 0, 0, 0, 0, time.UTC).Equal(*book.PublicationDate))
	assert.Len(t, book.Authors, 1)
}

func TestBookPatcher_Apply_TestAndCopy(t *testing.T) {
	t.Parallel()

	p := NewBookPatcher(NewValidator())
	book := patchTarget()

	err := p.Apply([]byte(`[{"op": "test", "path": "/titulo", "value": "Original"}, {"op": "remove", "path": "/fechaPublicacion"}, {"op": "add", "path": "/fechaPublicacion", "value": "2001-02-03T10:00:00Z"}]`), book)
	require.NoError(t, err)
	require.NotNil(t, book.PublicationDate)
	assert.Equal(t, "2001-02-03", book.PublicationDate.Format(DateLayout))

	err = p.Apply([]byte(`[{"op": "test", "path": "/titulo", "value": "Otro"}]`), book)
	assert.ErrorIs(t, err, ErrInvalidPatch)
}

func TestBookPatcher_Apply_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		document string
		wantErr  error
		wantVErr bool
	}{
		{name: "empty body", document: ``, wantErr: ErrInvalidPatch},
		{name: "null document", document: `null`, wantErr: ErrInvalidPatch},
		{name: "not an array", document: `{"op":"replace"}`, wantErr: ErrInvalidPatch},
		{name: "unknown path", document: `[{"op":"remove","path":"/autores"}]`, wantErr: ErrInvalidPatch},
		{name: "unknown field added", document: `[{"op":"add","path":"/isbn","value":"x"}]`, wantErr: ErrInvalidPatch},
		{name: "bad date", document: `[{"op":"replace","path":"/fechaPublicacion","value":"ayer"}]`, wantErr: ErrInvalidPatch},
		{name: "lowercase title", document: `[{"op":"replace","path":"/titulo","value":"rayuela"}]`, wantVErr: true},
		{name: "removed title", document: `[{"op":"replace","path":"/titulo","value":""}]`, wantVErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p := NewBookPatcher(NewValidator())
			book := patchTarget()

			err := p.Apply([]byte(tc.document), book)
			require.Error(t, err)
			if tc.wantVErr {
				var verrs ValidationErrors
				assert.ErrorAs(t, err, &verrs)
				assert.Contains(t, verrs, "titulo")
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
			assert.Equal(t, "Original", book.Title, "book must be untouched on failure")
			assert.Nil(t, book.PublicationDate)
		})
	}
}
