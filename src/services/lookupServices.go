package services

import (
	"context"
	"errors"

	"github.com/ARQAP/quanti-backend/src/sequencescape"
)

// ErrRemoteDisabled is returned when no Sequencescape API root is configured
var ErrRemoteDisabled = errors.New("sequencescape lookups are disabled")

// LookupService exposes the raw Sequencescape searches
type LookupService struct {
	remote RemoteFinder
}

// NewLookupService creates a new instance of LookupService. remote may be nil.
func NewLookupService(remote RemoteFinder) *LookupService {
	return &LookupService{remote: remote}
}

// LookupUser runs the swipecard search
func (s *LookupService) LookupUser(ctx context.Context, swipecard string) (sequencescape.Result, error) {
	return s.find(ctx, sequencescape.SwipecardSearch, swipecard)
}

// LookupPlate runs the plate barcode search
func (s *LookupService) LookupPlate(ctx context.Context, barcode string) (sequencescape.Result, error) {
	return s.find(ctx, sequencescape.PlateBarcodeSearch, barcode)
}

func (s *LookupService) find(ctx context.Context, endpoint sequencescape.Endpoint, query string) (sequencescape.Result, error) {
	if s.remote == nil {
		return nil, ErrRemoteDisabled
	}
	return s.remote.Find(ctx, endpoint, query)
}
