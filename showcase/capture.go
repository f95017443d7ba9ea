package showcase

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rpupo63/storefront-site-backend/errs"
	"github.com/rpupo63/storefront-site-backend/metrics"
	"github.com/rpupo63/storefront-site-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LeadSaver persists inquiry records
type LeadSaver interface {
	Add(lead *models.ProjectLead) error
}

// LeadCounter bumps a project's lead_count by one
type LeadCounter interface {
	IncrementLeadCount(id uuid.UUID) error
}

// Submitter runs tasks off the request path; *ants.Pool satisfies it
type Submitter interface {
	Submit(task func()) error
}

type placeholder struct {
	name    string
	email   string
	message string
}

var placeholders = map[models.InquiryType]placeholder{
	models.InquiryDemo:        {"Demo Request", "demo@placeholder.com", "Demo requested for %s"},
	models.InquiryInvestment:  {"Investment Inquiry", "investment@placeholder.com", "Investment information requested for %s"},
	models.InquiryPurchase:    {"Purchase Inquiry", "purchase@placeholder.com", "License purchase requested for %s"},
	models.InquiryContact:     {"Contact Request", "contact@placeholder.com", "Contact requested about %s"},
	models.InquiryPartnership: {"Partnership Inquiry", "partnership@placeholder.com", "Partnership requested for %s"},
}

// PlaceholderLead builds the record stored when a page button is pressed.
// The visitor is anonymous at that point, so name and email are fixed per inquiry type.
func PlaceholderLead(project *models.Project, inquiry models.InquiryType) *models.ProjectLead {
	p := placeholders[inquiry]
	id := project.ID
	return &models.ProjectLead{
		ProjectID:   &id,
		Name:        p.name,
		Email:       p.email,
		InquiryType: inquiry,
		Message:     fmt.Sprintf(p.message, project.Name),
		Status:      models.LeadStatusNew,
	}
}

// Capturer records page button presses as leads without holding up the page.
// Every call is independent: pressing twice stores two leads and adds two.
type Capturer struct {
	leads    LeadSaver
	counter  LeadCounter
	pool     Submitter
	notifier Notifier
	logger   zerolog.Logger
}

func NewCapturer(leads LeadSaver, counter LeadCounter, pool Submitter, notifier Notifier) *Capturer {
	return &Capturer{
		leads:    leads,
		counter:  counter,
		pool:     pool,
		notifier: notifier,
		logger:   log.With().Str("component", "capturer").Logger(),
	}
}

// Capture schedules the lead for project. It returns once the task is queued;
// failures inside the task reach audience through the notifier and are not retried.
func (c *Capturer) Capture(project *models.Project, inquiry models.InquiryType, audience string) error {
	if !inquiry.Valid() {
		return errs.NewInvalidFieldError("inquiryType", fmt.Sprintf("unknown inquiry type %q", inquiry))
	}

	lead := PlaceholderLead(project, inquiry)
	projectID, projectName := project.ID, project.Name

	err := c.pool.Submit(func() {
		c.run(lead, projectID, projectName, audience)
	})
	if err != nil {
		metrics.RecordLeadCapture(string(inquiry), "rejected")
		c.logger.Error().Err(err).
			Str("projectID", projectID.String()).
			Str("inquiryType", string(inquiry)).
			Msg("capture task rejected")
		return errs.NewCaptureRejectedError(err)
	}
	return nil
}

func (c *Capturer) run(lead *models.ProjectLead, projectID uuid.UUID, projectName, audience string) {
	defer func() {
		if r := recover(); r != nil {
			c.fail(lead, projectID, projectName, audience, fmt.Errorf("panic: %v", r))
		}
	}()

	if err := c.leads.Add(lead); err != nil {
		c.fail(lead, projectID, projectName, audience, fmt.Errorf("save lead: %w", err))
		return
	}

	if err := c.counter.IncrementLeadCount(projectID); err != nil {
		c.fail(lead, projectID, projectName, audience, fmt.Errorf("increment lead count: %w", err))
		return
	}

	metrics.RecordLeadCapture(string(lead.InquiryType), "saved")
	c.logger.Debug().
		Str("leadID", lead.ID.String()).
		Str("projectID", projectID.String()).
		Str("inquiryType", string(lead.InquiryType)).
		Msg("lead captured")
}

func (c *Capturer) fail(lead *models.ProjectLead, projectID uuid.UUID, projectName, audience string, err error) {
	metrics.RecordLeadCapture(string(lead.InquiryType), "failed")
	c.logger.Error().Err(err).
		Str("projectID", projectID.String()).
		Str("inquiryType", string(lead.InquiryType)).
		Str("audience", audience).
		Msg("lead capture failed")

	if c.notifier == nil {
		return
	}
	c.notifier.Notify(audience, Notice{
		Level:       NoticeError,
		Message:     fmt.Sprintf("We could not record your request for %s. Please try again or use the contact form.", projectName),
		ProjectID:   projectID,
		InquiryType: lead.InquiryType,
	})
}
