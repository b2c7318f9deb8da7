package tetris

import "sync"

// EventKind identifies a notification emitted by the game.
type EventKind uint8

const (
	EventBoardUpdated EventKind = iota + 1
	EventScoreChanged
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventBoardUpdated:
		return "BoardUpdated"
	case EventScoreChanged:
		return "ScoreChanged"
	case EventGameOver:
		return "GameOver"
	}
	return "EventKind(?)"
}

// Event is a notification for renderers and UIs. Delta is set for
// EventScoreChanged only and holds the new score minus the old one.
type Event struct {
	Kind  EventKind
	Delta int
}

// Events buffers notifications until a consumer drains them. Pushing never
// blocks: consecutive board updates collapse into one, and once the buffer
// is full the oldest event is dropped.
type Events struct {
	mu      sync.Mutex
	buf     []Event
	limit   int
	dropped uint64
}

func newEvents(limit int) *Events {
	return &Events{
		buf:   make([]Event, 0, min(limit, 64)),
		limit: limit,
	}
}

// Push queues ev.
func (e *Events) Push(ev Event) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if ev.Kind == EventBoardUpdated && len(e.buf) > 0 && e.buf[len(e.buf)-1].Kind == EventBoardUpdated {
		return
	}
	if len(e.buf) >= e.limit {
		copy(e.buf, e.buf[1:])
		e.buf = e.buf[:len(e.buf)-1]
		e.dropped++
	}
	e.buf = append(e.buf, ev)
}

// Drain returns the queued events in order and empties the buffer.
func (e *Events) Drain() []Event {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.buf) == 0 {
		return nil
	}
	out := make([]Event, len(e.buf))
	copy(out, e.buf)
	e.buf = e.buf[:0]
	return out
}

// Len returns the number of queued events.
func (e *Events) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.buf)
}

// Dropped returns how many events were discarded because nobody drained
// the buffer in time.
func (e *Events) Dropped() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dropped
}
