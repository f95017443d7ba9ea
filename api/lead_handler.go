package api

import (
	"fmt"
	"net/http"
	"net/mail"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rpupo63/storefront-site-backend/database"
	"github.com/rpupo63/storefront-site-backend/errs"
	"github.com/rpupo63/storefront-site-backend/models"
	"github.com/rpupo63/storefront-site-backend/services"
	"github.com/rpupo63/storefront-site-backend/showcase"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type contactSettings struct {
	siteName   string
	recipients []string
}

type leadHandler struct {
	responder   Responder
	logger      zerolog.Logger
	leadRepo    *database.ProjectLeadRepo
	projectRepo *database.ProjectRepo
	capturer    *showcase.Capturer
	submitter   showcase.Submitter
	mailer      services.Mailer
	contact     contactSettings
}

func newLeadHandler(
	leadRepo *database.ProjectLeadRepo,
	projectRepo *database.ProjectRepo,
	capturer *showcase.Capturer,
	submitter showcase.Submitter,
	mailer services.Mailer,
	contact contactSettings,
) leadHandler {
	logger := log.With().Str("handlerName", "leadHandler").Logger()

	return leadHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		leadRepo:    leadRepo,
		projectRepo: projectRepo,
		capturer:    capturer,
		submitter:   submitter,
		mailer:      mailer,
		contact:     contact,
	}
}

// captureInquiry records a page button press as a placeholder lead
// @Summary Capture inquiry
// @Description Queues the lead and returns immediately; failures reach the session through /api/notices
// @Tags Leads
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Param inquiryType path string true "demo, investment, purchase, contact or partnership"
// @Success 202 {object} CaptureResponse
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid projectID or inquiry type"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 503 {object} ErrorResponse "Service Unavailable - Too many captures in flight"
// @Router /api/projects/{projectID}/inquiries/{inquiryType} [post]
func (h leadHandler) captureInquiry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuidParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		inquiry := models.InquiryType(strings.ToLower(chi.URLParam(r, "inquiryType")))
		if !inquiry.Valid() {
			h.responder.WriteError(w, errs.NewInvalidFieldError("inquiryType", fmt.Sprintf("unknown inquiry type %q", inquiry)))
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}

		audience := ensureSession(w, r)
		if err := h.capturer.Capture(project, inquiry, audience); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusAccepted, CaptureResponse{
			Status:      "accepted",
			ProjectID:   project.ID,
			InquiryType: inquiry,
		})
	}
}

// submitContact stores a contact form message as a lead and notifies sales
// @Summary Submit contact form
// @Tags Leads
// @Accept json
// @Produce json
// @Param body body services.ContactRequest true "Contact form"
// @Success 201 {object} models.ProjectLead
// @Failure 400 {object} ErrorResponse "Bad Request - Missing or invalid fields"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /api/contact [post]
func (h leadHandler) submitContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req services.ContactRequest
		if err := decodeJSON(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		lead, err := contactLead(req)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var project *models.Project
		if lead.ProjectID != nil {
			project, err = h.projectRepo.FindByID(*lead.ProjectID)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
				return
			}
		}

		if err := h.leadRepo.Add(lead); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "lead", err))
			return
		}

		projectName := ""
		if project != nil {
			projectName = project.Name
			if err := h.projectRepo.IncrementLeadCount(project.ID); err != nil {
				h.logger.Error().Err(err).Str("projectID", project.ID.String()).Msg("failed to increment lead count")
			}
		}

		h.notifySales(req, projectName)

		h.responder.WriteJSONStatus(w, http.StatusCreated, lead)
	}
}

// contactLead validates a contact form and turns it into a lead
func contactLead(req services.ContactRequest) (*models.ProjectLead, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errs.NewMissingRequiredFieldError("name")
	}
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return nil, errs.NewMissingRequiredFieldError("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, errs.NewInvalidFieldError("email", "not a valid email address")
	}
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, errs.NewMissingRequiredFieldError("message")
	}

	inquiry := models.InquiryContact
	if req.InquiryType != "" {
		inquiry = models.InquiryType(strings.ToLower(req.InquiryType))
		if !inquiry.Valid() {
			return nil, errs.NewInvalidFieldError("inquiry_type", fmt.Sprintf("unknown inquiry type %q", req.InquiryType))
		}
	}

	lead := &models.ProjectLead{
		Name:        name,
		Email:       email,
		InquiryType: inquiry,
		Message:     message,
		Status:      models.LeadStatusNew,
	}

	if req.ProjectID != "" {
		id, err := uuid.Parse(req.ProjectID)
		if err != nil {
			return nil, errs.NewInvalidFieldError("project_id", "not a valid UUID")
		}
		lead.ProjectID = &id
	}

	return lead, nil
}

// notifySales emails the contact request off the request path. Best effort.
func (h leadHandler) notifySales(req services.ContactRequest, projectName string) {
	if len(h.contact.recipients) == 0 {
		return
	}

	subject, body := services.ContactEmail(h.contact.siteName, req, projectName)
	err := h.submitter.Submit(func() {
		if err := h.mailer.SendEmail(subject, body, h.contact.recipients); err != nil {
			h.logger.Error().Err(err).Str("email", req.Email).Msg("failed to send contact notification")
		}
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("contact notification not queued")
	}
}

// getLeads lists leads for the CRM view, newest first
// @Summary List leads
// @Tags Leads
// @Produce json
// @Security BearerAuth
// @Param status query string false "Pipeline stage"
// @Param inquiry_type query string false "Inquiry type"
// @Param project_id query string false "Project ID" format(uuid)
// @Success 200 {object} LeadCollection
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid filter"
// @Router /admin/leads [get]
func (h leadHandler) getLeads() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		var filter database.LeadFilter

		if status := query.Get("status"); status != "" {
			filter.Status = models.LeadStatus(status)
			if !filter.Status.Valid() {
				h.responder.WriteError(w, errs.NewInvalidFieldError("status", fmt.Sprintf("unknown status %q", status)))
				return
			}
		}

		if inquiry := query.Get("inquiry_type"); inquiry != "" {
			filter.InquiryType = models.InquiryType(inquiry)
			if !filter.InquiryType.Valid() {
				h.responder.WriteError(w, errs.NewInvalidFieldError("inquiry_type", fmt.Sprintf("unknown inquiry type %q", inquiry)))
				return
			}
		}

		if projectID := query.Get("project_id"); projectID != "" {
			id, err := uuid.Parse(projectID)
			if err != nil {
				h.responder.WriteError(w, errs.NewInvalidFieldError("project_id", "not a valid UUID"))
				return
			}
			filter.ProjectID = &id
		}

		leads, err := h.leadRepo.FindAll(filter)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "leads", err))
			return
		}
		if leads == nil {
			leads = []*models.ProjectLead{}
		}

		h.responder.WriteJSON(w, LeadCollection{Leads: leads, Total: len(leads)})
	}
}

// updateLeadStatus moves a lead to another pipeline stage
// @Summary Update lead status
// @Tags Leads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param leadID path string true "Lead ID" format(uuid)
// @Param body body LeadStatusUpdate true "New status"
// @Success 200 {object} models.ProjectLead
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid status"
// @Failure 404 {object} ErrorResponse "Not Found - Lead not found"
// @Router /admin/leads/{leadID} [patch]
func (h leadHandler) updateLeadStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leadID, err := uuidParam(r, "leadID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var update LeadStatusUpdate
		if err := decodeJSON(r, &update); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if update.Status == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("status"))
			return
		}
		if !update.Status.Valid() {
			h.responder.WriteError(w, errs.NewInvalidFieldError("status", fmt.Sprintf("unknown status %q", update.Status)))
			return
		}

		if err := h.leadRepo.UpdateStatus(leadID, update.Status); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "lead", err))
			return
		}

		lead, err := h.leadRepo.FindByID(leadID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "lead", err))
			return
		}

		h.logger.Info().
			Str("actor", ctxGetUserID(r.Context())).
			Str("leadID", leadID.String()).
			Str("status", string(update.Status)).
			Msg("lead status updated")

		h.responder.WriteJSON(w, lead)
	}
}

// deleteLead removes a lead
// @Summary Delete lead
// @Tags Leads
// @Produce json
// @Security BearerAuth
// @Param leadID path string true "Lead ID" format(uuid)
// @Success 200 {object} map[string]string "Success message"
// @Failure 404 {object} ErrorResponse "Not Found - Lead not found"
// @Router /admin/leads/{leadID} [delete]
func (h leadHandler) deleteLead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leadID, err := uuidParam(r, "leadID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.leadRepo.FindByID(leadID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "lead", err))
			return
		}

		if err := h.leadRepo.Delete(leadID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "lead", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "lead deleted successfully",
		})
	}
}
