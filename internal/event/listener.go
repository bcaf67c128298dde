package event

import (
	"context"
	"log/slog"
	"sync"
)

type Handler func(ctx context.Context, e Event) error

// Listener fans events out to registered handlers on its own goroutine.
// Emitting never blocks the producer beyond the channel buffer.
type Listener struct {
	logger   *slog.Logger
	events   chan Event
	mu       sync.Mutex
	handlers []Handler
}

func NewListener(logger *slog.Logger) *Listener {
	return &Listener{
		logger: logger,
		events: make(chan Event, 64),
	}
}

func (l *Listener) Register(h Handler) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.handlers = append(l.handlers, h)
}

func (l *Listener) Emit(e Event) {
	select {
	case l.events <- e:
	default:
		l.logger.Warn("event channel full, dropping event", slog.String("message", e.Message()))
	}
}

func (l *Listener) Listen(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case e := <-l.events:
			l.mu.Lock()
			handlers := make([]Handler, len(l.handlers))
			copy(handlers, l.handlers)
			l.mu.Unlock()

			for _, h := range handlers {
				if err := h(ctx, e); err != nil {
					l.logger.Error("error running event handler", slog.Any("error", err))
				}
			}
		}
	}
}
