package api

import (
	"time"

	"github.com/rpupo63/storefront-site-backend/config"
	"github.com/rpupo63/storefront-site-backend/database"
	"github.com/rpupo63/storefront-site-backend/showcase"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, router router, jwtSecret []byte) (*routeHandlers, error) {
	siteName := config.GetString(router.config, "SITE_NAME", "Storefront")

	renderer, err := newRenderer(siteName)
	if err != nil {
		return nil, err
	}

	projectRepo := database.ProjectRepo()
	leadRepo := database.ProjectLeadRepo()
	capturer := showcase.NewCapturer(leadRepo, projectRepo, router.submitter, router.notices)

	return &routeHandlers{
		healthHandler:  newHealthHandler(database, router.startupTime),
		projectHandler: newProjectHandler(projectRepo),
		pageHandler:    newPageHandler(projectRepo, router.notices, renderer),
		leadHandler: newLeadHandler(leadRepo, projectRepo, capturer, router.submitter, router.mailer, contactSettings{
			siteName:   siteName,
			recipients: config.GetList(router.config, "SALES_NOTIFICATION_EMAILS"),
		}),
		noticeHandler: newNoticeHandler(router.notices),
		authHandler: newAuthHandler(
			config.GetString(router.config, "BACKEND_PASSWORD_HASH", ""),
			jwtSecret,
			config.GetDuration(router.config, "JWT_TTL_HOURS", time.Hour, 12),
		),
		analyticsHandler: newAnalyticsHandler(projectRepo, leadRepo),
	}, nil
}
