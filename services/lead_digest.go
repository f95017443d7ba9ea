package services

import (
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rpupo63/storefront-site-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LeadSource lists leads created in (since, until], oldest first
type LeadSource interface {
	FindBetween(since, until time.Time) ([]*models.ProjectLead, error)
}

// LeadDigestJob mails sales a summary of the leads captured since its last run
type LeadDigestJob struct {
	leads      LeadSource
	mailer     Mailer
	recipients []string
	interval   time.Duration
	siteName   string
	logger     zerolog.Logger

	now     func() time.Time
	lastRun time.Time
}

func NewLeadDigestJob(leads LeadSource, mailer Mailer, recipients []string, interval time.Duration, siteName string) *LeadDigestJob {
	return &LeadDigestJob{
		leads:      leads,
		mailer:     mailer,
		recipients: recipients,
		interval:   interval,
		siteName:   siteName,
		logger:     log.With().Str("job", "lead_digest").Logger(),
		now:        time.Now,
	}
}

func (j *LeadDigestJob) GetName() string {
	return "lead_digest"
}

func (j *LeadDigestJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(j.interval)
}

// Execute sends one digest covering (lastRun, now]. The window only advances
// after a successful send, so leads from a failed run are included in the next one.
func (j *LeadDigestJob) Execute() {
	now := j.now()
	since := j.lastRun
	if since.IsZero() {
		since = now.Add(-j.interval)
	}

	if len(j.recipients) == 0 {
		j.logger.Debug().Msg("no digest recipients configured")
		return
	}

	leads, err := j.leads.FindBetween(since, now)
	if err != nil {
		j.logger.Error().Err(err).Msg("Failed to fetch leads for digest")
		return
	}

	if len(leads) == 0 {
		j.logger.Debug().Time("since", since).Msg("no new leads")
		j.lastRun = now
		return
	}

	subject, body := LeadDigestEmail(j.siteName, leads, since)
	if err := j.mailer.SendEmail(subject, body, j.recipients); err != nil {
		j.logger.Error().Err(err).Int("leads", len(leads)).Msg("Failed to send lead digest")
		return
	}

	j.logger.Info().Int("leads", len(leads)).Msg("lead digest sent")
	j.lastRun = now
}
