package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgarcia/palabra/internal/content"
)

func TestParseValid(t *testing.T) {
	data := []byte(`{
	  "categories": [
	    {"title": "My Words", "items": [{"en": "the dog", "es": "el perro"}]}
	  ]
	}`)

	extras, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, extras.Categories, 1)
	assert.Equal(t, "My Words", extras.Categories[0].Title)
	assert.Equal(t, "el perro", extras.Categories[0].Items[0].Spanish)
}

func TestParseRejectsBadShape(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing categories", `{}`},
		{"untitled category", `{"categories":[{"items":[]}]}`},
		{"empty translation", `{"categories":[{"title":"x","items":[{"en":"a","es":""}]}]}`},
		{"not json", `nope`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	extras := &Extras{Categories: []Category{
		{Title: "Animals", Items: []Entry{{English: "the cat", Spanish: "el gato"}}},
	}}

	data, err := Marshal(extras)
	require.NoError(t, err)

	parsed, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, extras, parsed)
}

func TestMergeInto(t *testing.T) {
	doc := &content.Document{Sections: []content.Section{
		{Title: "Food", Items: []content.Item{{English: "the bread", Spanish: "el pan"}}},
	}}
	extras := &Extras{Categories: []Category{
		{Title: "Food", Items: []Entry{{English: "the apple", Spanish: "la manzana"}}},
		{Title: "Mine", Items: []Entry{{English: "the dog", Spanish: "el perro"}, {English: "", Spanish: "x"}}},
		{Title: "Empty", Items: []Entry{{English: "", Spanish: ""}}},
	}}

	MergeInto(doc, extras)

	require.Len(t, doc.Sections, 2)
	assert.Len(t, doc.Sections[0].Items, 2, "existing category should gain the entry")
	assert.Equal(t, "Mine", doc.Sections[1].Title)
	assert.Len(t, doc.Sections[1].Items, 1, "blank entries are skipped")
}
