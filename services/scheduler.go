package services

import (
	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
)

// Job is a unit of recurring work
type Job interface {
	GetName() string
	GetSchedule() gocron.JobDefinition
	Execute()
}

type Scheduler struct {
	scheduler gocron.Scheduler
}

// NewScheduler registers every job. Runs of the same job never overlap.
func NewScheduler(jobs ...Job) (*Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	for _, job := range jobs {
		_, err := s.NewJob(
			job.GetSchedule(),
			gocron.NewTask(job.Execute),
			gocron.WithName(job.GetName()),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		)
		if err != nil {
			log.Error().Err(err).Str("job", job.GetName()).Msg("Failed to register job")
			continue
		}
		log.Info().Str("job", job.GetName()).Msg("job registered")
	}

	return &Scheduler{scheduler: s}, nil
}

func (s *Scheduler) Start() {
	s.scheduler.Start()
	log.Info().Int("jobs", len(s.scheduler.Jobs())).Msg("scheduler started")
}

func (s *Scheduler) Stop() {
	if err := s.scheduler.Shutdown(); err != nil {
		log.Error().Err(err).Msg("Failed to shutdown scheduler")
		return
	}
	log.Info().Msg("scheduler stopped")
}
