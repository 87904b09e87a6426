// Package notify defines the notification contract between the repository
// and whatever surfaces user feedback.
package notify

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Severity classifies a notification.
type Severity string

const (
	SeverityNormal      Severity = "normal"
	SeverityDestructive Severity = "destructive"
)

// Notification is a human-readable notice about the outcome of a mutation.
type Notification struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
}

// Sink receives notifications. Implementations must not fail; delivery is
// fire and forget.
type Sink interface {
	Notify(n Notification)
}

// LogSink writes notifications to the log.
type LogSink struct{}

func (LogSink) Notify(n Notification) {
	event := log.Info()
	if n.Severity == SeverityDestructive {
		event = log.Warn()
	}

	event.Str("title", n.Title).Msg(n.Description)
}

// Recorder captures notifications for inspection in tests.
type Recorder struct {
	mu            sync.Mutex
	notifications []Notification
}

func (r *Recorder) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.notifications = append(r.notifications, n)
}

// Notifications returns all notifications received so far.
func (r *Recorder) Notifications() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Notification(nil), r.notifications...)
}

// Last returns the most recent notification and whether one exists.
func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.notifications) == 0 {
		return Notification{}, false
	}

	return r.notifications[len(r.notifications)-1], true
}

// Reset discards all recorded notifications.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.notifications = nil
}
