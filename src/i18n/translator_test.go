package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestNew_EmbeddedCatalogues(t *testing.T) {
	tr, err := New("en")
	require.NoError(t, err)

	assert.Equal(t, []language.Tag{language.English, language.Spanish}, tr.Locales())

	en := tr.For(language.English)
	assert.Equal(t, "can't be blank", en.T("errors.messages.blank"))
	assert.Equal(t, "has already been used for a quant", en.T("errors.quant_attribute_reader.assay_barcode.used"))

	es := tr.For(language.Spanish)
	assert.Equal(t, "no puede estar en blanco", es.T("errors.messages.blank"))
	assert.Equal(t, "Código de ensayo", es.Attribute("assay_barcode"))
}

func TestMatch(t *testing.T) {
	tr, err := New("en")
	require.NoError(t, err)

	assert.Equal(t, language.Spanish, tr.Match("es-AR,es;q=0.9,en;q=0.5"))
	assert.Equal(t, language.English, tr.Match("fr-FR"))
	assert.Equal(t, language.English, tr.Match(""))
	assert.Equal(t, language.English, tr.Match("en-GB"))
}

func TestLocalizer_Fallbacks(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en.yml": {Data: []byte("en:\n  greeting: \"hello %s\"\n  only_en: \"english\"\n")},
		"locales/de.yml": {Data: []byte("de:\n  greeting: \"hallo %s\"\n")},
	}
	tr, err := Load(fsys, "locales", "en")
	require.NoError(t, err)

	de := tr.For(language.German)
	assert.Equal(t, "hallo Ana", de.T("greeting", "Ana"))
	assert.Equal(t, "english", de.T("only_en"), "missing keys use the default locale")
	assert.Equal(t, "translation missing: de.nope", de.T("nope"))
	assert.Equal(t, "input barcode", de.Attribute("input_barcode"))

	fr := tr.For(language.French)
	assert.Equal(t, language.English, fr.Tag())
}

func TestLoad_Errors(t *testing.T) {
	t.Run("unknown default locale", func(t *testing.T) {
		fsys := fstest.MapFS{"locales/en.yml": {Data: []byte("en:\n  a: b\n")}}
		_, err := Load(fsys, "locales", "pt")
		assert.ErrorContains(t, err, "no catalogue")
	})

	t.Run("non string leaf", func(t *testing.T) {
		fsys := fstest.MapFS{"locales/en.yml": {Data: []byte("en:\n  count: 3\n")}}
		_, err := Load(fsys, "locales", "en")
		assert.ErrorContains(t, err, "unsupported value")
	})
}
