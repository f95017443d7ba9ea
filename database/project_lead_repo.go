package database

import (
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/storefront-site-backend/models"
	"gorm.io/gorm"
)

type ProjectLeadRepo struct {
	db *gorm.DB
}

func NewProjectLeadRepo(db *gorm.DB) *ProjectLeadRepo {
	return &ProjectLeadRepo{db}
}

// LeadFilter narrows FindAll; zero values match everything
type LeadFilter struct {
	Status      models.LeadStatus
	InquiryType models.InquiryType
	ProjectID   *uuid.UUID
}

// FindAll returns leads newest first
func (r *ProjectLeadRepo) FindAll(filter LeadFilter) ([]*models.ProjectLead, error) {
	query := r.db.Preload("Project")
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.InquiryType != "" {
		query = query.Where("inquiry_type = ?", filter.InquiryType)
	}
	if filter.ProjectID != nil {
		query = query.Where("project_id = ?", *filter.ProjectID)
	}

	var leads []*models.ProjectLead
	err := query.Order("created_at DESC").Find(&leads).Error
	return leads, err
}

// FindBetween returns leads created in (since, until], oldest first
func (r *ProjectLeadRepo) FindBetween(since, until time.Time) ([]*models.ProjectLead, error) {
	var leads []*models.ProjectLead
	err := r.db.Preload("Project").
		Where("created_at > ? AND created_at <= ?", since, until).
		Order("created_at ASC").
		Find(&leads).Error
	return leads, err
}

// FindByID returns a lead by its ID
func (r *ProjectLeadRepo) FindByID(id uuid.UUID) (*models.ProjectLead, error) {
	var lead models.ProjectLead
	err := r.db.Preload("Project").First(&lead, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// Add inserts a new lead into the database
func (r *ProjectLeadRepo) Add(lead *models.ProjectLead) error {
	return r.db.Omit("Project").Create(lead).Error
}

// UpdateStatus moves a lead to another pipeline stage
func (r *ProjectLeadRepo) UpdateStatus(id uuid.UUID, status models.LeadStatus) error {
	result := r.db.Model(&models.ProjectLead{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a lead from the database by id
func (r *ProjectLeadRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ProjectLead{}, "id = ?", id).Error
}
