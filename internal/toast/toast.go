// Package toast implements the transient notification queue.
//
// The queue is deliberately independent of the shop store: toasts are
// ephemeral UI messages, not application state. Each pushed toast
// schedules its own removal after its duration; dismissal cancels the
// timer and is idempotent. Display order is insertion order, duplicates
// are not coalesced.
package toast

import (
	"sync"
	"time"
)

// Type classifies a toast for presentation.
type Type string

const (
	Info           Type = "info"
	Success        Type = "success"
	Warning        Type = "warning"
	Error          Type = "error"
	Cart           Type = "cart"
	WishlistAdd    Type = "wishlist_add"
	WishlistRemove Type = "wishlist_remove"
)

// DefaultDuration is applied when a toast is pushed without one.
const DefaultDuration = 2500 * time.Millisecond

// Toast is a single notification. ID is assigned by the queue.
type Toast struct {
	ID       int
	Type     Type
	Title    string
	Message  string
	Duration time.Duration
}

// Queue is an insertion-ordered set of live toasts with per-toast
// auto-dismiss scheduling. The zero value is not usable; use NewQueue.
type Queue struct {
	mu       sync.Mutex
	nextID   int
	toasts   []Toast
	timers   map[int]*time.Timer
	fallback time.Duration
	notify   func()
}

// NewQueue creates a queue. A non-positive defaultDuration falls back
// to DefaultDuration.
func NewQueue(defaultDuration time.Duration) *Queue {
	if defaultDuration <= 0 {
		defaultDuration = DefaultDuration
	}
	return &Queue{
		nextID:   1,
		timers:   make(map[int]*time.Timer),
		fallback: defaultDuration,
	}
}

// SetNotify registers a callback fired after every queue change, on
// whatever goroutine caused it (including timer goroutines). The UI
// runtime uses this to request a repaint.
func (q *Queue) SetNotify(fn func()) {
	q.mu.Lock()
	q.notify = fn
	q.mu.Unlock()
}

// Push assigns the toast a unique id, appends it, and schedules its
// auto-dismiss. It returns the assigned id.
func (q *Queue) Push(t Toast) int {
	q.mu.Lock()
	if t.Duration <= 0 {
		t.Duration = q.fallback
	}
	t.ID = q.nextID
	q.nextID++
	q.toasts = append(q.toasts, t)
	id := t.ID
	q.timers[id] = time.AfterFunc(t.Duration, func() { q.Dismiss(id) })
	notify := q.notify
	q.mu.Unlock()

	if notify != nil {
		notify()
	}
	return id
}

// Dismiss removes the toast with the given id and cancels its timer.
// Dismissing an id that is already gone is a no-op.
func (q *Queue) Dismiss(id int) {
	q.mu.Lock()
	if timer, ok := q.timers[id]; ok {
		timer.Stop()
		delete(q.timers, id)
	}
	removed := false
	for i, t := range q.toasts {
		if t.ID == id {
			q.toasts = append(q.toasts[:i:i], q.toasts[i+1:]...)
			removed = true
			break
		}
	}
	notify := q.notify
	q.mu.Unlock()

	if removed && notify != nil {
		notify()
	}
}

// Clear drops every toast and cancels all pending timers.
func (q *Queue) Clear() {
	q.mu.Lock()
	for id, timer := range q.timers {
		timer.Stop()
		delete(q.timers, id)
	}
	had := len(q.toasts) > 0
	q.toasts = nil
	notify := q.notify
	q.mu.Unlock()

	if had && notify != nil {
		notify()
	}
}

// Toasts returns the live toasts in insertion order.
func (q *Queue) Toasts() []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.toasts) == 0 {
		return nil
	}
	out := make([]Toast, len(q.toasts))
	copy(out, q.toasts)
	return out
}

// Typed helpers mirroring the notification surface the views use.

func (q *Queue) Success(title, message string) int {
	return q.Push(Toast{Type: Success, Title: title, Message: message})
}

func (q *Queue) Error(title, message string) int {
	return q.Push(Toast{Type: Error, Title: title, Message: message})
}

func (q *Queue) Warning(title, message string) int {
	return q.Push(Toast{Type: Warning, Title: title, Message: message})
}

func (q *Queue) Info(title, message string) int {
	return q.Push(Toast{Type: Info, Title: title, Message: message})
}

func (q *Queue) CartNote(title, message string) int {
	return q.Push(Toast{Type: Cart, Title: title, Message: message})
}

func (q *Queue) WishlistAdded(title, message string) int {
	return q.Push(Toast{Type: WishlistAdd, Title: title, Message: message})
}

func (q *Queue) WishlistRemoved(title, message string) int {
	return q.Push(Toast{Type: WishlistRemove, Title: title, Message: message})
}
