package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/amirhossein-jamali/image2code-backend/internal/domain/entity"
	errs "github.com/amirhossein-jamali/image2code-backend/internal/domain/error"
	coreport "github.com/amirhossein-jamali/image2code-backend/internal/domain/port/core"
	"github.com/amirhossein-jamali/image2code-backend/internal/infrastructure/adapter/model"
)

// DesignRepository stores designs in the imagetocode table
type DesignRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewDesignRepository creates a new DesignRepository instance
func NewDesignRepository(db *gorm.DB, logger coreport.Logger) *DesignRepository {
	return &DesignRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func designToModel(d *entity.Design) (*model.Design, error) {
	options := d.Options
	if options == nil {
		options = []string{}
	}
	encoded, err := json.Marshal(options)
	if err != nil {
		return nil, fmt.Errorf("%w: options: %s", errs.ErrInvalidInput, err.Error())
	}
	return &model.Design{
		ID:          d.ID,
		UID:         d.UID,
		UserEmail:   d.UserEmail,
		Model:       d.Model,
		ImageURL:    d.ImageURL,
		Description: d.Description,
		Language:    d.Language,
		Code:        datatypes.JSON(d.Code),
		Options:     datatypes.JSON(encoded),
		CreatedAt:   d.CreatedAt,
	}, nil
}

func modelToDesign(m *model.Design) *entity.Design {
	var options []string
	if len(m.Options) > 0 {
		// Options that are not a string array are dropped
		_ = json.Unmarshal(m.Options, &options)
	}
	return &entity.Design{
		ID:          m.ID,
		UID:         m.UID,
		UserEmail:   m.UserEmail,
		ImageURL:    m.ImageURL,
		Description: m.Description,
		Model:       m.Model,
		Language:    m.Language,
		Code:        json.RawMessage(m.Code),
		Options:     options,
		CreatedAt:   m.CreatedAt,
	}
}

func (r *DesignRepository) handleDatabaseError(operation string, err error, uid string) error {
	mapped := r.errorClassifier.mapError(err, errs.ErrDesignNotFound, errs.ErrDuplicateDesign)
	if !errs.IsNotFoundError(mapped) {
		r.logger.Error("Database error on designs", map[string]any{
			"uid":        uid,
			"operation":  operation,
			"error":      err.Error(),
			"error_type": string(r.errorClassifier.Classify(err)),
		})
	}
	return mapped
}

// Create inserts a new design and fills its ID
func (r *DesignRepository) Create(ctx context.Context, design *entity.Design) error {
	m, err := designToModel(design)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return r.handleDatabaseError("create", err, design.UID)
	}
	design.ID = m.ID

	r.logger.Info("Design stored", map[string]any{
		"uid":   design.UID,
		"id":    design.ID,
		"owner": design.UserEmail,
	})
	return nil
}

// GetByUID returns the newest design with uid
func (r *DesignRepository) GetByUID(ctx context.Context, uid string) (*entity.Design, error) {
	var m model.Design
	err := r.db.WithContext(ctx).Where("uid = ?", uid).Order("id DESC").Take(&m).Error
	if err != nil {
		return nil, r.handleDatabaseError("get", err, uid)
	}
	return modelToDesign(&m), nil
}

// Update overwrites the mutable fields of the design with the same uid
func (r *DesignRepository) Update(ctx context.Context, design *entity.Design) error {
	result := r.db.WithContext(ctx).Model(&model.Design{}).
		Where("uid = ?", design.UID).
		Updates(map[string]any{
			"code":        datatypes.JSON(design.Code),
			"image_url":   design.ImageURL,
			"description": design.Description,
			"created_at":  design.CreatedAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("update", result.Error, design.UID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrDesignNotFound
	}
	return nil
}

// ListByOwner returns the owner's designs, newest first
func (r *DesignRepository) ListByOwner(ctx context.Context, email string) ([]*entity.Design, error) {
	var rows []model.Design
	err := r.db.WithContext(ctx).Where("user_email = ?", email).Order("id DESC").Find(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("list", err, "")
	}

	designs := make([]*entity.Design, 0, len(rows))
	for i := range rows {
		designs = append(designs, modelToDesign(&rows[i]))
	}
	return designs, nil
}

// Delete removes the design with uid
func (r *DesignRepository) Delete(ctx context.Context, uid string) error {
	result := r.db.WithContext(ctx).Where("uid = ?", uid).Delete(&model.Design{})
	if result.Error != nil {
		return r.handleDatabaseError("delete", result.Error, uid)
	}
	if result.RowsAffected == 0 {
		return errs.ErrDesignNotFound
	}

	r.logger.Info("Design deleted", map[string]any{"uid": uid})
	return nil
}
