package models

import "time"

type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
	NotificationWarning NotificationKind = "warning"
)

// Notification is a transient message shown to the user for TTL after
// CreatedAt.
type Notification struct {
	Kind      NotificationKind `json:"type"`
	Message   string           `json:"message"`
	TTL       time.Duration    `json:"-"`
	CreatedAt time.Time        `json:"createdAt"`
}

func (n *Notification) Expired(now time.Time) bool {
	if n == nil {
		return true
	}
	return !now.Before(n.CreatedAt.Add(n.TTL))
}
