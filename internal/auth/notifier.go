package auth

import "sync"

const subscriberBuffer = 16

// notifier fans session events out to subscribers.
// A subscriber whose buffer is full misses the event instead of blocking sign-in.
type notifier struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan SessionEvent
}

func newNotifier() *notifier {
	return &notifier{subs: make(map[int]chan SessionEvent)}
}

func (n *notifier) subscribe() (<-chan SessionEvent, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	ch := make(chan SessionEvent, subscriberBuffer)
	n.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			n.mu.Lock()
			defer n.mu.Unlock()
			delete(n.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}

func (n *notifier) publish(ev SessionEvent) (dropped int) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, ch := range n.subs {
		select {
		case ch <- ev:
		default:
			dropped++
		}
	}
	return dropped
}
