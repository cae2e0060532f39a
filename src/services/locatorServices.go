package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/ARQAP/quanti-backend/src/logging"
	"github.com/ARQAP/quanti-backend/src/models"
	"github.com/ARQAP/quanti-backend/src/sequencescape"
	"gorm.io/gorm"
)

// RemoteFinder runs a Sequencescape search
type RemoteFinder interface {
	Find(ctx context.Context, endpoint sequencescape.Endpoint, query string) (sequencescape.Result, error)
}

// LocatorService finds the resources a quant form refers to.
// Users and inputs missing locally are looked up in Sequencescape when a remote finder is set.
type LocatorService struct {
	db     *gorm.DB
	remote RemoteFinder
}

// NewLocatorService creates a new instance of LocatorService. remote may be nil.
func NewLocatorService(db *gorm.DB, remote RemoteFinder) *LocatorService {
	return &LocatorService{db: db, remote: remote}
}

// first loads the first match into dest, reporting false when nothing matched
func first(query *gorm.DB, dest any) (bool, error) {
	err := query.First(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// FindUserBySwipecard returns the user holding swipecard, registering them from Sequencescape if needed
func (s *LocatorService) FindUserBySwipecard(ctx context.Context, swipecard string) (*models.UserModel, error) {
	var user models.UserModel
	found, err := first(s.db.WithContext(ctx).Where("swipecard_code = ?", swipecard), &user)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if found {
		return &user, nil
	}
	if s.remote == nil {
		return nil, nil
	}

	result, err := s.remote.Find(ctx, sequencescape.SwipecardSearch, swipecard)
	if err != nil {
		return nil, err
	}
	remoteUUID := result.String("uuid")
	if remoteUUID == "" {
		return nil, nil
	}
	login := result.String("login")
	if login == "" {
		login = remoteUUID
	}

	// The swipecard may have been reassigned, so match on uuid or login before creating
	found, err = first(s.db.WithContext(ctx).Where("uuid = ? OR login = ?", remoteUUID, login), &user)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if found {
		user.SwipecardCode = swipecard
		user.UUID = remoteUUID
		if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
			return nil, fmt.Errorf("failed to update user %s: %w", user.Login, err)
		}
	} else {
		user = models.UserModel{Login: login, SwipecardCode: swipecard, UUID: remoteUUID}
		if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
			return nil, fmt.Errorf("failed to register user %s: %w", login, err)
		}
	}

	logging.Get().InfoCtx(ctx, "User registered from Sequencescape", slog.String("login", user.Login))
	return &user, nil
}

// FindAssayByBarcode returns the assay plate with its quant preloaded
func (s *LocatorService) FindAssayByBarcode(ctx context.Context, barcode string) (*models.AssayModel, error) {
	var assay models.AssayModel
	found, err := first(s.db.WithContext(ctx).Preload("Quant").Where("barcode = ?", barcode), &assay)
	if err != nil || !found {
		return nil, wrapLookup("assay", err)
	}
	return &assay, nil
}

// FindStandardByBarcode returns the standard with its type preloaded
func (s *LocatorService) FindStandardByBarcode(ctx context.Context, barcode string) (*models.StandardModel, error) {
	var standard models.StandardModel
	found, err := first(s.db.WithContext(ctx).Preload("StandardType").Where("barcode = ?", barcode), &standard)
	if err != nil || !found {
		return nil, wrapLookup("standard", err)
	}
	return &standard, nil
}

// FindInputByBarcode returns the input plate, registering it from Sequencescape if needed
func (s *LocatorService) FindInputByBarcode(ctx context.Context, barcode string) (*models.InputModel, error) {
	var input models.InputModel
	found, err := first(s.db.WithContext(ctx).Where("barcode = ?", barcode), &input)
	if err != nil {
		return nil, wrapLookup("input", err)
	}
	if found {
		return &input, nil
	}
	if s.remote == nil {
		return nil, nil
	}

	result, err := s.remote.Find(ctx, sequencescape.PlateBarcodeSearch, barcode)
	if err != nil {
		return nil, err
	}
	if result.String("uuid") == "" {
		return nil, nil
	}

	input = models.InputModel{
		Barcode:      barcode,
		UUID:         optionalString(result.String("uuid")),
		Name:         optionalString(result.String("name")),
		ExternalType: optionalString(result.String("external_type")),
	}
	if err := s.db.WithContext(ctx).Create(&input).Error; err != nil {
		return nil, fmt.Errorf("failed to register input %s: %w", barcode, err)
	}
	return &input, nil
}

// FindQuantType accepts either the numeric id or the name of the quant type.
// A numeric key that matches no id is tried as a name.
func (s *LocatorService) FindQuantType(ctx context.Context, key string) (*models.QuantTypeModel, error) {
	var quantType models.QuantTypeModel
	if id, err := strconv.Atoi(strings.TrimSpace(key)); err == nil {
		found, err := first(s.db.WithContext(ctx).Where("id = ?", id), &quantType)
		if err != nil {
			return nil, wrapLookup("quant type", err)
		}
		if found {
			return &quantType, nil
		}
	}
	found, err := first(s.db.WithContext(ctx).Where("name = ?", strings.TrimSpace(key)), &quantType)
	if err != nil || !found {
		return nil, wrapLookup("quant type", err)
	}
	return &quantType, nil
}

func wrapLookup(what string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("failed to find %s: %w", what, err)
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
