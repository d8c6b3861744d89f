package members

import "log/slog"

type Level int

const (
	LevelSuccess Level = iota
	LevelError
)

func (l Level) String() string {
	if l == LevelError {
		return "error"
	}
	return "success"
}

// Notification is a short, non-blocking message for the user.
type Notification struct {
	Level   Level
	Title   string
	Message string
}

// Notifier receives every success and failure the Store reports.
// Implementations must not block.
type Notifier interface {
	Notify(Notification)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(Notification)

func (f NotifierFunc) Notify(n Notification) {
	f(n)
}

// LogNotifier writes notifications to logger.
func LogNotifier(logger *slog.Logger) Notifier {
	return NotifierFunc(func(n Notification) {
		if n.Level == LevelError {
			logger.Warn(n.Message, "title", n.Title)
			return
		}
		logger.Info(n.Message, "title", n.Title)
	})
}

func discard() Notifier {
	return NotifierFunc(func(Notification) {})
}
