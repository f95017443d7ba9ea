package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InquiryType tags what a lead asked for
type InquiryType string

const (
	InquiryDemo        InquiryType = "demo"
	InquiryInvestment  InquiryType = "investment"
	InquiryPurchase    InquiryType = "purchase"
	InquiryContact     InquiryType = "contact"
	InquiryPartnership InquiryType = "partnership"
)

func (t InquiryType) Valid() bool {
	switch t {
	case InquiryDemo, InquiryInvestment, InquiryPurchase, InquiryContact, InquiryPartnership:
		return true
	}
	return false
}

// LeadStatus is the CRM pipeline stage of a lead
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQualified LeadStatus = "qualified"
	LeadStatusWon       LeadStatus = "won"
	LeadStatusLost      LeadStatus = "lost"
)

func (s LeadStatus) Valid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified, LeadStatusWon, LeadStatusLost:
		return true
	}
	return false
}

// ProjectLead is a captured expression of interest
type ProjectLead struct {
	ID          uuid.UUID   `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	ProjectID   *uuid.UUID  `json:"project_id,omitempty" db:"project_id" gorm:"type:uuid;index:idx_project_lead_project_id"`
	Name        string      `json:"name" db:"name" gorm:"type:text;not null"`
	Email       string      `json:"email" db:"email" gorm:"type:text;not null"`
	InquiryType InquiryType `json:"inquiry_type" db:"inquiry_type" gorm:"type:text;not null;index:idx_project_lead_inquiry_type"`
	Message     string      `json:"message" db:"message" gorm:"type:text;not null;default:''"`
	Status      LeadStatus  `json:"status" db:"status" gorm:"type:text;not null;default:'new'"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at" gorm:"index:idx_project_lead_created_at"`

	Project *Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:SET NULL"`
}

func (l *ProjectLead) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.Status == "" {
		l.Status = LeadStatusNew
	}
	return nil
}
