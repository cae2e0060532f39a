package quant

import (
	"context"
	"time"
)

// Rule checks the suitability of the resource behind one field.
// It only runs when the field is present.
type Rule interface {
	Field() Field
	Evaluate(ctx context.Context, req AttributeRequest, refs *Resolved) ([]Kind, error)
}

// DefaultRules returns the rules run for every quant, in order
func DefaultRules(now func() time.Time) []Rule {
	return []Rule{
		AssayRule{},
		StandardRule{Now: now},
		UserRule{},
		InputRule{},
	}
}

// AssayRule requires an unused assay plate
type AssayRule struct{}

func (AssayRule) Field() Field { return FieldAssayBarcode }

func (AssayRule) Evaluate(ctx context.Context, _ AttributeRequest, refs *Resolved) ([]Kind, error) {
	assay, err := refs.Assay(ctx)
	if err != nil {
		return nil, err
	}
	if assay == nil {
		return []Kind{KindNotFound}, nil
	}
	if assay.Used() {
		return []Kind{KindUsed}, nil
	}
	return nil, nil
}

// StandardRule requires an existing, unexpired standard matching the quant type
type StandardRule struct {
	Now func() time.Time
}

func (StandardRule) Field() Field { return FieldStandardBarcode }

func (r StandardRule) Evaluate(ctx context.Context, req AttributeRequest, refs *Resolved) ([]Kind, error) {
	standard, err := refs.Standard(ctx)
	if err != nil {
		return nil, err
	}
	if standard == nil {
		return []Kind{KindNotFound}, nil
	}

	var kinds []Kind
	if req.Present(FieldQuantType) {
		quantType, err := refs.QuantType(ctx)
		if err != nil {
			return nil, err
		}
		if quantType != nil && !standard.SameStandardType(quantType.StandardTypeId) {
			kinds = append(kinds, KindUnsuitable)
		}
	}

	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	if req.CheckExpiry() && standard.Expired(now()) {
		kinds = append(kinds, KindExpired)
	}
	return kinds, nil
}

// UserRule requires a known swipecard
type UserRule struct{}

func (UserRule) Field() Field { return FieldSwipecardCode }

func (UserRule) Evaluate(ctx context.Context, _ AttributeRequest, refs *Resolved) ([]Kind, error) {
	user, err := refs.User(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return []Kind{KindNotFound}, nil
	}
	return nil, nil
}

// InputRule requires a known input plate
type InputRule struct{}

func (InputRule) Field() Field { return FieldInputBarcode }

func (InputRule) Evaluate(ctx context.Context, _ AttributeRequest, refs *Resolved) ([]Kind, error) {
	input, err := refs.Input(ctx)
	if err != nil {
		return nil, err
	}
	if input == nil {
		return []Kind{KindNotFound}, nil
	}
	return nil, nil
}
