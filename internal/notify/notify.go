// Package notify delivers fire-and-forget user notifications through a
// persistent task queue, so a slow or failing presenter never blocks a
// mutation.
package notify

import (
	"context"

	"github.com/mikestefanello/backlite"
	"github.com/rs/zerolog/log"
)

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

type Notifier interface {
	Notify(ctx context.Context, userID, message string, severity Severity) error
}

type queueImpl struct {
	queues *backlite.Client
}

func New(ctx context.Context, blClient *backlite.Client) Notifier {
	q := &queueImpl{
		queues: blClient,
	}
	q.register()
	q.queues.Start(ctx)
	log.Info().Msg("started notification queue")
	return q
}

func (q *queueImpl) Notify(ctx context.Context, userID, message string, severity Severity) error {
	task := NotificationJob{
		UserID:   userID,
		Message:  message,
		Severity: string(severity),
	}
	_, err := q.queues.Add(task).Ctx(ctx).Save()
	return err
}
