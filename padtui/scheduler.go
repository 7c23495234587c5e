package padtui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// blinkMsg fires a scheduled task.
type blinkMsg struct {
	id int
}

type task struct {
	period time.Duration
	fn     func()
}

// TickScheduler implements pad.Scheduler on top of tea.Tick.
//
// Every only queues the first tick; the model drains the queue with Flush
// after each update and feeds blink messages back through Handle.
type TickScheduler struct {
	next    int
	tasks   map[int]task
	pending []tea.Cmd
}

// NewTickScheduler creates an empty scheduler.
func NewTickScheduler() *TickScheduler {
	return &TickScheduler{tasks: make(map[int]task)}
}

// Every implements pad.Scheduler.
func (s *TickScheduler) Every(period time.Duration, fn func()) func() {
	id := s.next
	s.next++
	s.tasks[id] = task{period: period, fn: fn}
	s.pending = append(s.pending, tick(id, period))
	return func() { delete(s.tasks, id) }
}

// Flush returns the ticks queued since the last call.
func (s *TickScheduler) Flush() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

// Handle runs the task behind msg and schedules its next tick. Ticks for
// cancelled tasks are dropped.
func (s *TickScheduler) Handle(msg blinkMsg) tea.Cmd {
	t, ok := s.tasks[msg.id]
	if !ok {
		return nil
	}
	t.fn()
	if _, ok := s.tasks[msg.id]; !ok {
		return nil
	}
	return tick(msg.id, t.period)
}

// Live returns the number of running tasks.
func (s *TickScheduler) Live() int {
	return len(s.tasks)
}

func tick(id int, period time.Duration) tea.Cmd {
	return tea.Tick(period, func(time.Time) tea.Msg {
		return blinkMsg{id: id}
	})
}
