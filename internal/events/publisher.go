package events

import (
	"encoding/json"
	"fmt"
	"time"

	"joblink/internal/api/models"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
)

const (
	TypeJobPosted            = "job.posted"
	TypeApplicationSubmitted = "application.submitted"
	TypeApplicationStatus    = "application.status_changed"
)

// ApplicationEvent is the payload published for submissions and status
// changes. It carries ids and status only; applicant contact data stays
// behind the authenticated applicants endpoint.
type ApplicationEvent struct {
	Type          string                   `json:"type"`
	ApplicationID string                   `json:"applicationId"`
	JobID         string                   `json:"jobId"`
	JobTitle      string                   `json:"jobTitle"`
	Status        models.ApplicationStatus `json:"status"`
	OccurredAt    time.Time                `json:"occurredAt"`
}

type JobEvent struct {
	Type     string             `json:"type"`
	JobID    string             `json:"jobId"`
	Category models.JobCategory `json:"category"`
	PostedAt time.Time          `json:"postedAt"`
}

// Publisher emits domain events to NATS. A nil *Publisher is a valid
// no-op, so callers never branch on whether NATS is configured.
type Publisher struct {
	conn   *nats.Conn
	logger zerolog.Logger
}

// NewPublisher connects to NATS, or returns nil when natsURL is empty.
func NewPublisher(natsURL string, logger zerolog.Logger) (*Publisher, error) {
	if natsURL == "" {
		return nil, nil
	}

	nc, err := nats.Connect(natsURL)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}
	return &Publisher{conn: nc, logger: logger}, nil
}

// Close drains the NATS connection.
func (slf *Publisher) Close() {
	if slf == nil {
		return
	}
	if err := slf.conn.Drain(); err != nil {
		slf.logger.Error().Err(err).Msg("nats drain failed")
	}
}

// JobPosted announces a new posting on "jobs.posted".
func (slf *Publisher) JobPosted(job *models.Job) {
	slf.publish("jobs.posted", JobEvent{
		Type:     TypeJobPosted,
		JobID:    job.ID,
		Category: job.Category,
		PostedAt: job.PostedTime,
	})
}

// ApplicationSubmitted announces a submission on
// "jobs.<jobId>.applications", the subject employers watch.
func (slf *Publisher) ApplicationSubmitted(app *models.Application) {
	slf.publish(fmt.Sprintf("jobs.%s.applications", app.JobID), ApplicationEvent{
		Type:          TypeApplicationSubmitted,
		ApplicationID: app.ID,
		JobID:         app.JobID,
		JobTitle:      app.JobTitle,
		Status:        app.Status,
		OccurredAt:    app.AppliedDate,
	})
}

// ApplicationStatusChanged announces a status change on the same per-job
// subject as submissions.
func (slf *Publisher) ApplicationStatusChanged(app *models.Application) {
	occurred := time.Now()
	if app.UpdatedAt != nil {
		occurred = *app.UpdatedAt
	}
	slf.publish(fmt.Sprintf("jobs.%s.applications", app.JobID), ApplicationEvent{
		Type:          TypeApplicationStatus,
		ApplicationID: app.ID,
		JobID:         app.JobID,
		JobTitle:      app.JobTitle,
		Status:        app.Status,
		OccurredAt:    occurred,
	})
}

// publish never fails the caller; event delivery is best-effort.
func (slf *Publisher) publish(subject string, event any) {
	if slf == nil {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		slf.logger.Error().Err(err).Str("subject", subject).Msg("marshal event failed")
		return
	}
	if err := slf.conn.Publish(subject, data); err != nil {
		slf.logger.Error().Err(err).Str("subject", subject).Msg("publish event failed")
	}
}
