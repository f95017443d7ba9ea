package database

import (
	"github.com/rpupo63/storefront-site-backend/errs"
	"gorm.io/gorm"
)

type Database struct {
	projectRepo     *ProjectRepo
	projectLeadRepo *ProjectLeadRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		projectRepo:     NewProjectRepo(db),
		projectLeadRepo: NewProjectLeadRepo(db),
	}
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) ProjectLeadRepo() *ProjectLeadRepo {
	return d.projectLeadRepo
}

// Ping checks that the underlying connection still answers
func (d Database) Ping() error {
	sqlDB, err := d.projectRepo.GetDB().DB()
	if err != nil {
		return errs.NewDatabaseError("open", "connection", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return errs.NewDatabaseError("ping", "connection", err)
	}
	return nil
}
