package service

import (
	"context"
)

// NotificationService sends push notifications to registered user devices.
// Badge awards are its main producer: when a recheck grants new badges, one
// message fans out to every device token the user has registered.
type NotificationService interface {
	// SendBatchNotification delivers the same notification to multiple device
	// tokens. Tokens FCM reports as unregistered come back in invalidTokens so
	// the caller can purge the matching device records.
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)

	// SendSingleNotification delivers a notification to one device token.
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error
}
