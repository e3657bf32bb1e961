package repository

import (
	"go-storepos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReportRepository interface {
	Create(report *model.Report) error
	FindAll(ownerID uuid.UUID) ([]model.Report, error)
	FindByID(ownerID, id uuid.UUID) (*model.Report, error)
	// UpdateMeta edits title and description only. The data column is frozen
	// at creation and never written again.
	UpdateMeta(ownerID, id uuid.UUID, title, description, updatedBy string) error
	Delete(ownerID, id uuid.UUID) error
}

type reportRepo struct {
	db *gorm.DB
}

func NewReportRepo(db *gorm.DB) ReportRepository {
	return &reportRepo{db}
}

func (r *reportRepo) Create(report *model.Report) error {
	return r.db.Create(report).Error
}

func (r *reportRepo) FindAll(ownerID uuid.UUID) ([]model.Report, error) {
	var reports []model.Report
	err := r.db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&reports).Error
	return reports, err
}

func (r *reportRepo) FindByID(ownerID, id uuid.UUID) (*model.Report, error) {
	var report model.Report
	err := r.db.First(&report, "owner_id = ? AND id = ?", ownerID, id).Error
	return &report, err
}

func (r *reportRepo) UpdateMeta(ownerID, id uuid.UUID, title, description, updatedBy string) error {
	return r.db.Model(&model.Report{}).
		Where("owner_id = ? AND id = ?", ownerID, id).
		Updates(map[string]interface{}{
			"title":       title,
			"description": description,
			"updated_by":  updatedBy,
		}).Error
}

func (r *reportRepo) Delete(ownerID, id uuid.UUID) error {
	return r.db.Where("owner_id = ?", ownerID).Delete(&model.Report{}, "id = ?", id).Error
}
