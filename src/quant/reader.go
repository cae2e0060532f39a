// Package quant reads the quant creation form, resolves the barcodes it carries
// and creates the quant once every reference is suitable.
package quant

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ARQAP/quanti-backend/src/models"
	"github.com/google/uuid"
)

// Store persists a new quant. It returns *RecordInvalidError when the quant
// breaks a persistence rule.
type Store interface {
	CreateQuant(ctx context.Context, quant *models.QuantModel) error
}

// Messages translates error keys for the current locale
type Messages interface {
	T(key string, args ...any) string
}

// Option configures a Reader
type Option func(*Reader)

// WithRules replaces the default rule list
func WithRules(rules ...Rule) Option {
	return func(r *Reader) { r.rules = rules }
}

// WithClock sets the clock used for expiry checks
func WithClock(now func() time.Time) Option {
	return func(r *Reader) { r.now = now }
}

// WithObserver registers a callback invoked for every failure recorded
func WithObserver(observe func(Field, Kind)) Option {
	return func(r *Reader) { r.observe = observe }
}

// Reader validates one AttributeRequest and creates the quant it describes.
// A Reader is single use: build one per submission.
type Reader struct {
	request  AttributeRequest
	refs     *Resolved
	store    Store
	messages Messages
	rules    []Rule
	now      func() time.Time
	observe  func(Field, Kind)
}

// NewReader builds a reader for request
func NewReader(request AttributeRequest, locator Locator, store Store, messages Messages, opts ...Option) *Reader {
	r := &Reader{
		request:  request,
		refs:     NewResolved(locator, request),
		store:    store,
		messages: messages,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.rules == nil {
		r.rules = DefaultRules(r.now)
	}
	return r
}

// Request returns the request being read
func (r *Reader) Request() AttributeRequest {
	return r.request
}

// Resolved exposes the lookup cache shared by every rule
func (r *Reader) Resolved() *Resolved {
	return r.refs
}

func (r *Reader) message(field Field, kind Kind) string {
	if kind == KindBlank {
		return r.messages.T("errors.messages.blank")
	}
	return r.messages.T(fmt.Sprintf("errors.quant_attribute_reader.%s.%s", field, kind))
}

func (r *Reader) fail(errs *Errors, field Field, kind Kind, message string) {
	errs.Add(field, message)
	if r.observe != nil {
		r.observe(field, kind)
	}
}

// Validate checks every required field, then runs each rule whose field is present.
// The returned error is set only when a lookup itself failed.
func (r *Reader) Validate(ctx context.Context) (Errors, error) {
	var errs Errors

	for _, field := range requiredFields {
		if !r.request.Present(field) {
			r.fail(&errs, field, KindBlank, r.message(field, KindBlank))
		}
	}

	for _, rule := range r.rules {
		if !r.request.Present(rule.Field()) {
			continue
		}
		kinds, err := rule.Evaluate(ctx, r.request, r.refs)
		if err != nil {
			return Errors{}, fmt.Errorf("failed to check %s: %w", rule.Field(), err)
		}
		for _, kind := range kinds {
			r.fail(&errs, rule.Field(), kind, r.message(rule.Field(), kind))
		}
	}

	return errs, nil
}

// CreateIfValid validates the request and, when it is valid, saves the quant.
// A non-empty Errors means the quant was rejected and nothing was saved by this call.
func (r *Reader) CreateIfValid(ctx context.Context) (*models.QuantModel, Errors, error) {
	errs, err := r.Validate(ctx)
	if err != nil {
		return nil, Errors{}, err
	}
	if !errs.Empty() {
		return nil, errs, nil
	}

	quant, err := r.build(ctx)
	if err != nil {
		return nil, Errors{}, err
	}

	if err := r.store.CreateQuant(ctx, quant); err != nil {
		var invalid *RecordInvalidError
		if errors.As(err, &invalid) {
			for _, message := range invalid.Messages {
				r.fail(&errs, FieldQuant, KindInvalid, message)
			}
			return nil, errs, nil
		}
		return nil, Errors{}, fmt.Errorf("failed to save quant: %w", err)
	}
	return quant, Errors{}, nil
}

// build assembles the quant from the cached references. A quant type that could not
// be resolved is left unset so the store rejects it.
func (r *Reader) build(ctx context.Context) (*models.QuantModel, error) {
	user, err := r.refs.User(ctx)
	if err != nil {
		return nil, err
	}
	assay, err := r.refs.Assay(ctx)
	if err != nil {
		return nil, err
	}
	standard, err := r.refs.Standard(ctx)
	if err != nil {
		return nil, err
	}
	input, err := r.refs.Input(ctx)
	if err != nil {
		return nil, err
	}
	quantType, err := r.refs.QuantType(ctx)
	if err != nil {
		return nil, err
	}

	quant := &models.QuantModel{
		UUID:      uuid.New().String(),
		QuantType: quantType,
		Assay:     assay,
		Standard:  standard,
		Input:     input,
		User:      user,
	}
	if quantType != nil {
		quant.QuantTypeId = quantType.Id
	}
	if assay != nil {
		quant.AssayId = assay.Id
	}
	if standard != nil {
		quant.StandardId = standard.Id
	}
	if input != nil {
		quant.InputId = input.Id
	}
	if user != nil {
		quant.UserId = user.Id
	}
	return quant, nil
}
