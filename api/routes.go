package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Get("/health", handlers.healthHandler.getHealth())
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Public JSON API
		r.Route("/api", func(r chi.Router) {
			r.Get("/projects", handlers.projectHandler.listProjects())
			r.Get("/pages/{segment}", handlers.pageHandler.getPage())
			r.Post("/projects/{projectID}/inquiries/{inquiryType}", handlers.leadHandler.captureInquiry())
			r.Post("/contact", handlers.leadHandler.submitContact())
			r.Get("/notices", handlers.noticeHandler.getNotices())
		})

		r.Post("/auth/login", handlers.authHandler.login())

		// Admin routes
		r.Route("/admin", func(r chi.Router) {
			r.Use(authMiddleware.authenticate)

			r.Get("/projects", handlers.projectHandler.getAllProjects())
			r.Post("/projects", handlers.projectHandler.createProject())
			r.Get("/projects/{projectID}", handlers.projectHandler.getProject())
			r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
			r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())

			r.Get("/leads", handlers.leadHandler.getLeads())
			r.Patch("/leads/{leadID}", handlers.leadHandler.updateLeadStatus())
			r.Delete("/leads/{leadID}", handlers.leadHandler.deleteLead())

			r.Get("/analytics", handlers.analyticsHandler.getAnalytics())
		})

		// Site pages. Concrete routes above win over the catch-all segment.
		r.Get("/", handlers.pageHandler.home())
		r.Get("/contact", handlers.pageHandler.contact())
		r.Get("/{segment}", handlers.pageHandler.projectPage())
	})
}
