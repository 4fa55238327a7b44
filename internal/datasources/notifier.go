package datasources

import "context"

// Notifier delivers a templated notification to a single recipient.
// Delivery is best-effort from every caller's perspective.
type Notifier interface {
	SendEmail(ctx context.Context, to, subject, templateName string, data map[string]string) error
}

// NullNotifier discards every notification. Used when no mail transport is
// configured.
type NullNotifier struct{}

func (NullNotifier) SendEmail(_ context.Context, _, _, _ string, _ map[string]string) error {
	return nil
}
