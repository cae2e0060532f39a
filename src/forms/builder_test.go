package forms

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_TextField(t *testing.T) {
	b := NewBuilder("quant", WithValues(map[string]string{"assay_barcode": `AS1"><script>`}))

	html, err := b.TextField("assay_barcode")
	require.NoError(t, err)

	out := string(html)
	assert.True(t, strings.HasPrefix(out, `<div class="form-group">`), out)
	assert.Contains(t, out, `<label class="col-sm-3 control-label" for="quant_assay_barcode">assay barcode</label>`)
	assert.Contains(t, out, `<div class="col-sm-9"><input type="text" class="form-control" name="quant[assay_barcode]" id="quant_assay_barcode"`)
	assert.NotContains(t, out, "<script>")
}

func TestBuilder_NumberAndPasswordFields(t *testing.T) {
	b := NewBuilder("quant", WithValues(map[string]string{"swipecard_code": "secret", "count": "3"}))

	number, err := b.NumberField("count")
	require.NoError(t, err)
	assert.Contains(t, string(number), `type="number"`)
	assert.Contains(t, string(number), `value="3"`)

	password, err := b.PasswordField("swipecard_code")
	require.NoError(t, err)
	assert.Contains(t, string(password), `type="password"`)
	assert.NotContains(t, string(password), "secret")
}

func TestBuilder_SelectPrompt(t *testing.T) {
	choices := []Choice{{Value: "1", Label: "Picogreen"}, {Value: "2", Label: "Ribogreen"}}

	html, err := NewBuilder("quant").Select("quant_type", choices)
	require.NoError(t, err)
	assert.Contains(t, string(html), `<option value="">Select...</option>`)
	assert.Contains(t, string(html), `<select class="form-control" name="quant[quant_type]" id="quant_quant_type">`)

	html, err = NewBuilder("quant",
		WithValues(map[string]string{"quant_type": "2"}),
		WithPrompt("Elegir..."),
	).Select("quant_type", choices)
	require.NoError(t, err)
	assert.NotContains(t, string(html), "Elegir...")
	assert.Contains(t, string(html), `<option value="2" selected="selected">Ribogreen</option>`)
}

func TestBuilder_CheckBox(t *testing.T) {
	html, err := NewBuilder("quant").CheckBox("override_expiry_date")
	require.NoError(t, err)
	assert.Contains(t, string(html), `<input name="quant[override_expiry_date]" type="hidden" value="0">`)
	assert.Contains(t, string(html), `<input type="checkbox" value="1" name="quant[override_expiry_date]" id="quant_override_expiry_date">`)

	html, err = NewBuilder("quant", WithValues(map[string]string{"override_expiry_date": "1"})).CheckBox("override_expiry_date")
	require.NoError(t, err)
	assert.Contains(t, string(html), `checked="checked"`)
}

func TestBuilder_Submit(t *testing.T) {
	html, err := NewBuilder("quant").Submit("Create Quant")
	require.NoError(t, err)
	assert.Equal(t,
		`<div class="form-group"><div class="col-sm-offset-3 col-sm-9"><input type="submit" name="commit" value="Create Quant" class="btn btn-default"></div></div>`,
		string(html))
}

func TestBuilder_Errors(t *testing.T) {
	b := NewBuilder("quant",
		WithErrors(func(field string) []string {
			if field == "assay_barcode" {
				return []string{"has already been used for a quant"}
			}
			return nil
		}),
		WithLabels(func(field string) string { return "Assay barcode" }),
	)

	html, err := b.TextField("assay_barcode")
	require.NoError(t, err)
	assert.Contains(t, string(html), `<div class="form-group has-error">`)
	assert.Contains(t, string(html), `<span class="help-block">has already been used for a quant</span>`)
	assert.Contains(t, string(html), `>Assay barcode</label>`)
}

func TestRenderQuantForm(t *testing.T) {
	var buf bytes.Buffer
	err := RenderQuantForm(&buf, QuantPage{
		Lang:        "en",
		Title:       "New quant",
		Action:      "/quants/form",
		Errors:      []string{"Swipecard can't be blank"},
		Form:        NewBuilder("quant"),
		QuantTypes:  []Choice{{Value: "1", Label: "Picogreen"}},
		SubmitLabel: "Create Quant",
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `<form class="form-horizontal" action="/quants/form" method="post"`)
	assert.Contains(t, out, "<li>Swipecard can&#39;t be blank</li>")
	for _, field := range []string{"swipecard_code", "quant_type", "assay_barcode", "standard_barcode", "override_expiry_date", "input_barcode"} {
		assert.Contains(t, out, `name="quant[`+field+`]"`)
	}
}
