package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Category groups projects on the marketing site
type Category string

const (
	CategoryFeatured   Category = "Featured"
	CategoryInvestment Category = "Investment"
	CategoryForSale    Category = "For Sale"
	CategoryInternal   Category = "Internal"
)

// Status is the lifecycle badge shown on a project
type Status string

const (
	StatusMVP     Status = "MVP"
	StatusLive    Status = "Live"
	StatusBeta    Status = "Beta"
	StatusPrivate Status = "Private"
	StatusForSale Status = "For Sale"
	StatusConcept Status = "Concept"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryFeatured, CategoryInvestment, CategoryForSale, CategoryInternal:
		return true
	}
	return false
}

func (s Status) Valid() bool {
	switch s {
	case StatusMVP, StatusLive, StatusBeta, StatusPrivate, StatusForSale, StatusConcept:
		return true
	}
	return false
}

// Project represents a sellable or showcased product
type Project struct {
	ID                 uuid.UUID                          `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name               string                             `json:"name" db:"name" gorm:"type:text;not null"`
	Description        string                             `json:"description" db:"description" gorm:"type:text;not null;default:''"`
	Category           Category                           `json:"category" db:"category" gorm:"type:text;not null;index:idx_project_category"`
	Status             Status                             `json:"status" db:"status" gorm:"type:text;not null"`
	HeroImageURL       *string                            `json:"hero_image_url,omitempty" db:"hero_image_url" gorm:"type:text"`
	Route              *string                            `json:"route,omitempty" db:"route" gorm:"type:text;uniqueIndex:idx_project_route"`
	Price              *float64                           `json:"price,omitempty" db:"price" gorm:"type:numeric"`
	InvestmentAmount   *float64                           `json:"investment_amount,omitempty" db:"investment_amount" gorm:"type:numeric"`
	InvestmentReceived *float64                           `json:"investment_received,omitempty" db:"investment_received" gorm:"type:numeric"`
	Content            datatypes.JSONType[ProjectContent] `json:"content" db:"content"`
	KeyFeatures        datatypes.JSONSlice[KeyFeature]    `json:"key_features" db:"key_features"`
	Stats              datatypes.JSONSlice[Stat]          `json:"stats" db:"stats"`
	UseCases           datatypes.JSONSlice[UseCase]       `json:"use_cases" db:"use_cases"`
	PurchaseInfo       datatypes.JSONType[PurchaseInfo]   `json:"purchase_info" db:"purchase_info"`
	LeadCount          int                                `json:"lead_count" db:"lead_count" gorm:"type:integer;not null;default:0"`
	CreatedAt          time.Time                          `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time                          `json:"updated_at" db:"updated_at"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// RouteValue returns the explicit route or "" when none is stored
func (p *Project) RouteValue() string {
	if p.Route == nil {
		return ""
	}
	return *p.Route
}
