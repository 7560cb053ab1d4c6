package debug

import (
	"log/slog"

	"github.com/bassclefstudio/streams/events"
	"github.com/bassclefstudio/streams/nodes"
)

// Watch subscribes a logging callback to s and returns s unchanged. Every
// event is logged at debug level under the given stream name before any
// subscriber registered later observes it. A nil logger uses slog.Default.
func Watch[T any](s nodes.Stream[T], logger *slog.Logger, name string) nodes.Stream[T] {
	if logger == nil {
		logger = slog.Default()
	}
	s.Events().Subscribe(func(ev events.Event[T]) {
		switch ev.Kind() {
		case events.KindResult:
			logger.Debug("stream event",
				slog.String("stream", name),
				slog.String("kind", "result"),
				slog.Any("value", ev.Value()),
			)
		case events.KindError:
			logger.Debug("stream event",
				slog.String("stream", name),
				slog.String("kind", "error"),
				slog.Any("err", ev.Err()),
			)
		case events.KindCompleted:
			logger.Debug("stream event",
				slog.String("stream", name),
				slog.String("kind", "completed"),
			)
		}
	})
	return s
}
