package notify

import (
	"time"

	"github.com/mikestefanello/backlite"
)

const NotificationQueue = "Notification"

type NotificationJob struct {
	UserID   string
	Message  string
	Severity string
}

func (j NotificationJob) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        NotificationQueue,
		MaxAttempts: 5,
		Backoff:     5 * time.Second,
		Timeout:     10 * time.Second,
		Retention: &backlite.Retention{
			Duration:   12 * time.Hour,
			OnlyFailed: false,
			Data: &backlite.RetainData{
				OnlyFailed: true,
			},
		},
	}
}
