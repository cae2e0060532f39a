// Package forms renders bootstrap styled form controls. Every control is wrapped
// in a form-group with a label column, and field errors render below the control.
package forms

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
)

const (
	submitClass    = "btn btn-default"
	defaultPrompt  = "Select..."
	checkedValue   = "1"
	uncheckedValue = "0"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Choice is one option of a select
type Choice struct {
	Value string
	Label string
}

// Option configures a Builder
type Option func(*Builder)

// WithValues pre-fills controls with submitted values
func WithValues(values map[string]string) Option {
	return func(b *Builder) { b.values = values }
}

// WithErrors supplies the error messages of each field
func WithErrors(errorsFor func(field string) []string) Option {
	return func(b *Builder) { b.errorsFor = errorsFor }
}

// WithLabels supplies the label text of each field
func WithLabels(label func(field string) string) Option {
	return func(b *Builder) { b.label = label }
}

// WithPrompt replaces the first option shown by selects with no value
func WithPrompt(prompt string) Option {
	return func(b *Builder) { b.prompt = prompt }
}

// Builder renders the controls of one object, naming them object[field]
type Builder struct {
	object    string
	values    map[string]string
	errorsFor func(string) []string
	label     func(string) string
	prompt    string
}

// NewBuilder returns a builder for object
func NewBuilder(object string, opts ...Option) *Builder {
	b := &Builder{
		object: object,
		values: map[string]string{},
		errorsFor: func(string) []string {
			return nil
		},
		label: func(field string) string {
			return strings.ReplaceAll(field, "_", " ")
		},
		prompt: defaultPrompt,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Builder) name(field string) string { return b.object + "[" + field + "]" }
func (b *Builder) id(field string) string   { return b.object + "_" + field }

type group struct {
	ID      string
	Label   string
	Control template.HTML
	Errors  []string
}

func render(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

func (b *Builder) wrap(field string, control template.HTML) (template.HTML, error) {
	return render("group", group{
		ID:      b.id(field),
		Label:   b.label(field),
		Control: control,
		Errors:  b.errorsFor(field),
	})
}

func (b *Builder) input(kind, field string, keepValue bool) (template.HTML, error) {
	data := struct{ Type, Name, ID, Value string }{kind, b.name(field), b.id(field), ""}
	if keepValue {
		data.Value = b.values[field]
	}
	control, err := render("input", data)
	if err != nil {
		return "", err
	}
	return b.wrap(field, control)
}

// TextField renders a text input
func (b *Builder) TextField(field string) (template.HTML, error) {
	return b.input("text", field, true)
}

// NumberField renders a number input
func (b *Builder) NumberField(field string) (template.HTML, error) {
	return b.input("number", field, true)
}

// PasswordField renders a password input. Its value is never echoed back.
func (b *Builder) PasswordField(field string) (template.HTML, error) {
	return b.input("password", field, false)
}

// Select renders a select of choices. The prompt is offered while nothing is selected.
func (b *Builder) Select(field string, choices []Choice) (template.HTML, error) {
	type option struct {
		Value, Label string
		Selected     bool
	}
	current := b.values[field]
	data := struct {
		Name, ID, Prompt string
		Options          []option
	}{Name: b.name(field), ID: b.id(field)}

	selected := false
	for _, choice := range choices {
		isCurrent := current != "" && choice.Value == current
		selected = selected || isCurrent
		data.Options = append(data.Options, option{Value: choice.Value, Label: choice.Label, Selected: isCurrent})
	}
	if !selected {
		data.Prompt = b.prompt
	}

	control, err := render("select", data)
	if err != nil {
		return "", err
	}
	return b.wrap(field, control)
}

// CheckBox renders a checkbox posting 1 when ticked and 0 otherwise
func (b *Builder) CheckBox(field string) (template.HTML, error) {
	control, err := render("checkbox", struct {
		Name, ID, Checked, Unchecked string
		On                           bool
	}{b.name(field), b.id(field), checkedValue, uncheckedValue, b.values[field] == checkedValue})
	if err != nil {
		return "", err
	}
	return b.wrap(field, control)
}

// Submit renders the submit button in the control column
func (b *Builder) Submit(label string) (template.HTML, error) {
	return render("submit", struct{ Label, Class string }{label, submitClass})
}

// QuantPage is the data of the quant creation page
type QuantPage struct {
	Lang        string
	Title       string
	Action      string
	Notice      string
	Errors      []string
	Form        *Builder
	QuantTypes  []Choice
	SubmitLabel string
}

// RenderQuantForm writes the quant creation page
func RenderQuantForm(w io.Writer, page QuantPage) error {
	if err := templates.ExecuteTemplate(w, "quant_form.html", page); err != nil {
		return fmt.Errorf("failed to render quant form: %w", err)
	}
	return nil
}
