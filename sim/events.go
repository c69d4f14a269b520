package sim

import (
	"sync"

	"go.uber.org/zap"
)

// EventType names a simulator lifecycle event.
type EventType string

const (
	// EventStepStart fires when a step transitions to running.
	EventStepStart EventType = "stepStart"
	// EventStepComplete fires when a step transitions to success.
	EventStepComplete EventType = "stepComplete"
	// EventStepFailed fires when a step transitions to failed.
	EventStepFailed EventType = "stepFailed"
	// EventBreakpoint fires when a breakpoint pauses the trace.
	EventBreakpoint EventType = "breakpoint"
)

// Listener receives lifecycle events. The trace and step pointers are the
// simulator's live records; listeners must not mutate them.
type Listener func(trace *ExecutionTrace, step *ExecutionStep)

// Subscription identifies a registered listener for removal via Off.
type Subscription uint64

// eventBus is a minimal named-event pub/sub. Listener panics are recovered
// and logged per listener so one failing callback never breaks emission to
// the others or the simulator's own control flow.
type eventBus struct {
	mu        sync.RWMutex
	listeners map[EventType]map[Subscription]Listener
	nextID    Subscription
	logger    *zap.Logger
}

func newEventBus(logger *zap.Logger) *eventBus {
	return &eventBus{
		listeners: make(map[EventType]map[Subscription]Listener),
		logger:    logger,
	}
}

func (b *eventBus) on(event EventType, fn Listener) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	id := b.nextID
	if b.listeners[event] == nil {
		b.listeners[event] = make(map[Subscription]Listener)
	}
	b.listeners[event][id] = fn
	return id
}

func (b *eventBus) off(event EventType, sub Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.listeners[event], sub)
}

func (b *eventBus) emit(event EventType, trace *ExecutionTrace, step *ExecutionStep) {
	b.mu.RLock()
	fns := make([]Listener, 0, len(b.listeners[event]))
	for _, fn := range b.listeners[event] {
		fns = append(fns, fn)
	}
	b.mu.RUnlock()

	for _, fn := range fns {
		b.dispatch(event, fn, trace, step)
	}
}

func (b *eventBus) dispatch(event EventType, fn Listener, trace *ExecutionTrace, step *ExecutionStep) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event listener panicked",
				zap.String("event", string(event)),
				zap.Any("panic", r),
			)
		}
	}()
	fn(trace, step)
}
