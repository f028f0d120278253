package reactor

import "sync"

// Mailbox is a Publisher that keeps only the newest unread snapshot.
// Publish never blocks; a snapshot nobody has read yet is replaced.
type Mailbox struct {
	mu sync.Mutex
	ch chan Snapshot
}

// NewMailbox creates an empty mailbox.
func NewMailbox() *Mailbox {
	return &Mailbox{ch: make(chan Snapshot, 1)}
}

// Publish stores s, replacing any unread snapshot.
func (m *Mailbox) Publish(s Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	select {
	case <-m.ch:
	default:
	}
	m.ch <- s
}

// C delivers published snapshots.
func (m *Mailbox) C() <-chan Snapshot {
	return m.ch
}
