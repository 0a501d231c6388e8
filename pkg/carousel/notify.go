package carousel

import (
	"sync"
	"time"
)

// Notification is the payload announced on every committed navigation.
type Notification struct {
	Index int
	When  time.Time
}

// Listener receives notifications over a channel. External observers
// (anything outside the UI goroutine) should read from C and eventually
// call Notifier.Drop.
type Listener struct {
	C  <-chan Notification
	ch chan Notification
}

// Notifier announces committed navigations. In-process observers are
// invoked synchronously, in registration order, after the carousel's
// selection state has changed — an observer that queries the carousel
// re-entrantly always sees the new state. Channel listeners are fed with
// a non-blocking send so a slow consumer can never stall navigation.
type Notifier struct {
	mu        sync.RWMutex
	observers []func(Notification)
	listeners map[*Listener]struct{}
}

func newNotifier() *Notifier {
	return &Notifier{listeners: make(map[*Listener]struct{})}
}

// Observe registers a synchronous observer. Observers registered after
// construction receive all subsequent notifications.
func (n *Notifier) Observe(fn func(Notification)) {
	n.mu.Lock()
	n.observers = append(n.observers, fn)
	n.mu.Unlock()
}

// Listen creates a channel listener with the given buffer size.
func (n *Notifier) Listen(bufSize int) *Listener {
	ch := make(chan Notification, bufSize)
	l := &Listener{C: ch, ch: ch}

	n.mu.Lock()
	n.listeners[l] = struct{}{}
	n.mu.Unlock()

	return l
}

// Drop removes a channel listener and closes its channel. Dropping a
// listener twice is a no-op.
func (n *Notifier) Drop(l *Listener) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, ok := n.listeners[l]; ok {
		delete(n.listeners, l)
		close(l.ch)
	}
}

// publish delivers the notification to every observer, then to every
// listener. Full listener buffers drop the notification for that listener.
func (n *Notifier) publish(index int) {
	note := Notification{Index: index, When: time.Now()}

	n.mu.RLock()
	observers := n.observers
	n.mu.RUnlock()

	for _, fn := range observers {
		fn(note)
	}

	n.mu.RLock()
	defer n.mu.RUnlock()

	for l := range n.listeners {
		select {
		case l.ch <- note:
		default:
		}
	}
}
