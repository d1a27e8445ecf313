package notify

import (
	"context"

	"github.com/mikestefanello/backlite"
	"github.com/rs/zerolog/log"
)

func (q *queueImpl) register() {
	notificationQueue := backlite.NewQueue[NotificationJob](q.deliver())
	q.queues.Register(notificationQueue)
}

// deliver hands the notification to the presenter. There is no push channel
// in this deployment, so delivery is a structured log line the presenter
// tails.
func (q *queueImpl) deliver() func(context.Context, NotificationJob) error {
	return func(ctx context.Context, task NotificationJob) error {
		log.Info().
			Str("user", task.UserID).
			Str("severity", task.Severity).
			Str("message", task.Message).
			Msg("notification delivered")
		return nil
	}
}
