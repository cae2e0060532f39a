package services

import (
	"context"
	"testing"

	"github.com/ARQAP/quanti-backend/src/sequencescape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLookupService(t *testing.T) {
	_, err := NewLookupService(nil).LookupUser(context.Background(), "SC1")
	assert.ErrorIs(t, err, ErrRemoteDisabled)

	remote := new(mockRemote)
	remote.On("Find", mock.Anything, sequencescape.PlateBarcodeSearch, "DN1").
		Return(sequencescape.Result{"uuid": "P1"}, nil)

	result, err := NewLookupService(remote).LookupPlate(context.Background(), "DN1")
	require.NoError(t, err)
	assert.Equal(t, "P1", result.String("uuid"))
}
