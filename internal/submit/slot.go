package submit

import "sync"

// Slot is a single-slot mailbox holding the most recent Result. Each publish
// bumps a sequence number so readers can consume every update exactly once.
type Slot struct {
	mu     sync.Mutex
	result Result
	seq    uint64
	filled bool

	nextID uint64
	subs   []subscriber
}

type subscriber struct {
	id uint64
	fn func(Result, uint64)
}

// NewSlot returns an empty slot.
func NewSlot() *Slot {
	return &Slot{}
}

// Publish stores r and notifies subscribers in subscription order.
func (s *Slot) Publish(r Result) uint64 {
	s.mu.Lock()
	s.seq++
	s.result = r
	s.filled = true
	seq := s.seq
	subs := append([]subscriber(nil), s.subs...)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(r, seq)
	}
	return seq
}

// Latest returns the last published result. ok is false until the first publish.
func (s *Slot) Latest() (Result, uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result, s.seq, s.filled
}

// Reset empties the slot. The sequence keeps counting.
func (s *Slot) Reset() {
	s.mu.Lock()
	s.result = Result{}
	s.filled = false
	s.mu.Unlock()
}

// Subscribe registers fn for future publishes and returns its cancel func.
func (s *Slot) Subscribe(fn func(Result, uint64)) (cancel func()) {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}
