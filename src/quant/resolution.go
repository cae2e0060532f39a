package quant

import (
	"context"

	"github.com/ARQAP/quanti-backend/src/models"
)

// Locator finds the lab resources referenced by a quant form.
// Every method returns (nil, nil) when nothing matches.
type Locator interface {
	FindUserBySwipecard(ctx context.Context, swipecard string) (*models.UserModel, error)
	FindAssayByBarcode(ctx context.Context, barcode string) (*models.AssayModel, error)
	FindStandardByBarcode(ctx context.Context, barcode string) (*models.StandardModel, error)
	FindInputByBarcode(ctx context.Context, barcode string) (*models.InputModel, error)
	FindQuantType(ctx context.Context, key string) (*models.QuantTypeModel, error)
}

type resolution struct {
	value any
	err   error
}

// Resolved caches the lookups of one request, keyed by field.
// Each field is looked up at most once, whether or not it was found.
// It is not safe for concurrent use.
type Resolved struct {
	locator Locator
	request AttributeRequest
	entries map[Field]resolution
}

// NewResolved returns an empty cache for request
func NewResolved(locator Locator, request AttributeRequest) *Resolved {
	return &Resolved{
		locator: locator,
		request: request,
		entries: make(map[Field]resolution),
	}
}

func (r *Resolved) resolve(ctx context.Context, field Field, lookup func(context.Context, string) (any, error)) (any, error) {
	if entry, ok := r.entries[field]; ok {
		return entry.value, entry.err
	}
	value, err := lookup(ctx, r.request.Value(field))
	r.entries[field] = resolution{value: value, err: err}
	return value, err
}

// User resolves the swipecard code
func (r *Resolved) User(ctx context.Context) (*models.UserModel, error) {
	v, err := r.resolve(ctx, FieldSwipecardCode, func(ctx context.Context, key string) (any, error) {
		return r.locator.FindUserBySwipecard(ctx, key)
	})
	user, _ := v.(*models.UserModel)
	return user, err
}

// Assay resolves the assay barcode
func (r *Resolved) Assay(ctx context.Context) (*models.AssayModel, error) {
	v, err := r.resolve(ctx, FieldAssayBarcode, func(ctx context.Context, key string) (any, error) {
		return r.locator.FindAssayByBarcode(ctx, key)
	})
	assay, _ := v.(*models.AssayModel)
	return assay, err
}

// Standard resolves the standard barcode
func (r *Resolved) Standard(ctx context.Context) (*models.StandardModel, error) {
	v, err := r.resolve(ctx, FieldStandardBarcode, func(ctx context.Context, key string) (any, error) {
		return r.locator.FindStandardByBarcode(ctx, key)
	})
	standard, _ := v.(*models.StandardModel)
	return standard, err
}

// Input resolves the input barcode
func (r *Resolved) Input(ctx context.Context) (*models.InputModel, error) {
	v, err := r.resolve(ctx, FieldInputBarcode, func(ctx context.Context, key string) (any, error) {
		return r.locator.FindInputByBarcode(ctx, key)
	})
	input, _ := v.(*models.InputModel)
	return input, err
}

// QuantType resolves the quant type
func (r *Resolved) QuantType(ctx context.Context) (*models.QuantTypeModel, error) {
	v, err := r.resolve(ctx, FieldQuantType, func(ctx context.Context, key string) (any, error) {
		return r.locator.FindQuantType(ctx, key)
	})
	quantType, _ := v.(*models.QuantTypeModel)
	return quantType, err
}
