package providers

import (
	"focustimer/internal/models"
	"focustimer/internal/structures"

	"github.com/gen2brain/beeep"
)

type NotifierProviderInterface interface {
	Notify(n models.Notification)
}

// LogNotifier writes every notification to the timer log.
type LogNotifier struct {
	logger Logger
}

func (l *LogNotifier) Notify(n models.Notification) {
	switch n.Kind {
	case models.NotificationError:
		l.logger.Errorf(TypeTimer, "%s", n.Message)
	case models.NotificationWarning:
		l.logger.Warnf(TypeTimer, "%s", n.Message)
	default:
		l.logger.Infof(TypeTimer, "%s", n.Message)
	}
}

// DesktopNotifier forwards notifications to the OS notification center.
// Errors are alerted, everything else is a plain notification.
type DesktopNotifier struct {
	logger Logger
	notify func(title, message string, icon any) error
	alert  func(title, message string, icon any) error
}

func (d *DesktopNotifier) Notify(n models.Notification) {
	send := d.notify
	if n.Kind == models.NotificationError {
		send = d.alert
	}
	if err := send(beeep.AppName, n.Message, ""); err != nil {
		d.logger.Debugf(TypeTimer, "Desktop notification failed: %s", err)
	}
}

type multiNotifier []NotifierProviderInterface

func (m multiNotifier) Notify(n models.Notification) {
	for _, notifier := range m {
		notifier.Notify(n)
	}
}

func NewNotifierProvider(conf *structures.Config, logger Logger) NotifierProviderInterface {
	notifiers := multiNotifier{&LogNotifier{logger: logger}}
	if conf.Notifications.Desktop {
		beeep.AppName = conf.AppName
		notifiers = append(notifiers, &DesktopNotifier{
			logger: logger,
			notify: beeep.Notify,
			alert:  beeep.Alert,
		})
	}
	return notifiers
}
