package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ARQAP/quanti-backend/src/dtos"
	"github.com/ARQAP/quanti-backend/src/i18n"
	"github.com/ARQAP/quanti-backend/src/logging"
	"github.com/ARQAP/quanti-backend/src/metrics"
	"github.com/ARQAP/quanti-backend/src/models"
	"github.com/ARQAP/quanti-backend/src/quant"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuantService struct {
	db      *gorm.DB
	locator quant.Locator
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewQuantService creates a new instance of QuantService. m may be nil.
func NewQuantService(db *gorm.DB, locator quant.Locator, m *metrics.Metrics) *QuantService {
	return &QuantService{db: db, locator: locator, metrics: m, now: time.Now}
}

// NewReader builds a reader for one submitted form, translating messages with localizer
func (s *QuantService) NewReader(request quant.AttributeRequest, localizer *i18n.Localizer) *quant.Reader {
	opts := []quant.Option{quant.WithClock(s.now)}
	if s.metrics != nil {
		opts = append(opts, quant.WithObserver(func(field quant.Field, kind quant.Kind) {
			s.metrics.ObserveValidationFailure(string(field), string(kind))
		}))
	}
	store := &quantStore{db: s.db, messages: localizer}
	return quant.NewReader(request, s.locator, store, localizer, opts...)
}

// CreateQuant validates the form and saves the quant it describes.
// A non-empty quant.Errors means the form was rejected.
func (s *QuantService) CreateQuant(ctx context.Context, request quant.AttributeRequest, localizer *i18n.Localizer) (*models.QuantModel, quant.Errors, error) {
	ctx, span := otel.Tracer("quanti/services").Start(ctx, "quant.create")
	defer span.End()

	created, errs, err := s.NewReader(request, localizer).CreateIfValid(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, quant.Errors{}, err
	}
	if !errs.Empty() {
		span.SetAttributes(attribute.Int("quant.errors", errs.Len()))
		logging.Get().InfoCtx(ctx, "Quant rejected",
			slog.String("assay_barcode", logging.SanitizeLogMessage(request.AssayBarcode)),
			slog.Int("errors", errs.Len()),
		)
		return nil, errs, nil
	}

	if s.metrics != nil {
		s.metrics.QuantsCreated.Inc()
	}
	span.SetAttributes(attribute.String("quant.uuid", created.UUID))
	logging.Get().InfoCtx(ctx, "Quant created",
		slog.String("uuid", created.UUID),
		slog.Int("assay_id", created.AssayId),
	)
	return created, quant.Errors{}, nil
}

// GetAllQuants retrieves all Quant records with their references
func (s *QuantService) GetAllQuants() ([]models.QuantModel, error) {
	var quants []models.QuantModel
	result := s.withReferences(s.db).Order("id").Find(&quants)
	if result.Error != nil {
		return nil, result.Error
	}
	return quants, nil
}

// GetQuantByID retrieves a Quant record by its ID
func (s *QuantService) GetQuantByID(id int) (*models.QuantModel, error) {
	var q models.QuantModel
	result := s.withReferences(s.db).First(&q, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &q, nil
}

// GetQuantSummaries lists every quant flattened for tables, newest first
func (s *QuantService) GetQuantSummaries() ([]dtos.QuantSummaryDTO, error) {
	var quants []models.QuantModel
	if err := s.withReferences(s.db).Order("created_at desc, id desc").Find(&quants).Error; err != nil {
		return nil, err
	}

	summaries := make([]dtos.QuantSummaryDTO, 0, len(quants))
	for _, q := range quants {
		summary := dtos.QuantSummaryDTO{ID: q.Id, UUID: q.UUID, CreatedAt: q.CreatedAt}
		if q.QuantType != nil {
			summary.QuantType = q.QuantType.Name
		}
		if q.Assay != nil {
			summary.AssayBarcode = q.Assay.Barcode
		}
		if q.Standard != nil {
			summary.StandardBarcode = q.Standard.Barcode
		}
		if q.Input != nil {
			summary.InputBarcode = q.Input.Barcode
			summary.InputName = q.Input.Name
		}
		if q.User != nil {
			summary.UserLogin = q.User.Login
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *QuantService) withReferences(db *gorm.DB) *gorm.DB {
	return db.Preload("QuantType").Preload("Assay").Preload("Standard").Preload("Input").Preload("User")
}

// quantStore saves quants for a single request
type quantStore struct {
	db       *gorm.DB
	messages *i18n.Localizer
}

// CreateQuant inserts the quant, rejecting a second quant for the same assay
func (st *quantStore) CreateQuant(ctx context.Context, q *models.QuantModel) error {
	return st.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var problems []string
		if q.QuantTypeId == 0 {
			problems = append(problems, st.fullMessage("quant_type_id", "errors.messages.blank"))
		}

		var count int64
		if err := tx.Model(&models.QuantModel{}).Where("assay_id = ?", q.AssayId).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check assay usage: %w", err)
		}
		if count > 0 {
			problems = append(problems, st.fullMessage("assay", "errors.messages.taken"))
		}

		if len(problems) > 0 {
			return &quant.RecordInvalidError{Messages: problems}
		}

		err := tx.Omit(clause.Associations).Create(q).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// another request saved a quant for this assay after the count
			return &quant.RecordInvalidError{Messages: []string{st.fullMessage("assay", "errors.messages.taken")}}
		}
		return err
	})
}

func (st *quantStore) fullMessage(name, key string) string {
	return st.messages.Attribute(name) + " " + st.messages.T(key)
}
