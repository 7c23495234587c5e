package pad

import "time"

// manualScheduler fires tasks only when tick is called.
type manualScheduler struct {
	next  int
	tasks map[int]func()
}

func newManualScheduler() *manualScheduler {
	return &manualScheduler{tasks: make(map[int]func())}
}

func (s *manualScheduler) Every(_ time.Duration, fn func()) func() {
	id := s.next
	s.next++
	s.tasks[id] = fn
	return func() { delete(s.tasks, id) }
}

func (s *manualScheduler) tick() {
	for _, fn := range s.tasks {
		fn()
	}
}

func (s *manualScheduler) live() int { return len(s.tasks) }

// typeKeys dispatches each key through the coordinator.
func typeKeys(c *Coordinator, keys ...Key) {
	for _, k := range keys {
		c.DispatchKey(k)
	}
}

// activeCount counts fields reporting Active.
func activeCount(fields ...*Field) int {
	n := 0
	for _, f := range fields {
		if f.State().Active {
			n++
		}
	}
	return n
}
