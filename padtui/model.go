package padtui

import (
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/muurk/numpad/internal/logging"
	"github.com/muurk/numpad/pad"
)

// FieldConfig describes one field of the form.
type FieldConfig struct {
	Label  string
	Suffix string
	Field  pad.FieldOptions
}

// Animation tunes the show/hide springs.
type Animation struct {
	FPS       int
	Frequency float64
	Damping   float64
}

// DefaultAnimation settles in roughly 200ms at 60 FPS.
func DefaultAnimation() Animation {
	return Animation{FPS: 60, Frequency: 14.0, Damping: 1.0}
}

// Options configures a Model.
type Options struct {
	Title     string
	Fields    []FieldConfig
	Keypad    pad.KeypadOptions
	Animation Animation
	Styles    *Styles

	// Width and Height seed the layout until the first WindowSizeMsg.
	// Zero means query the terminal.
	Width  int
	Height int
}

type animTickMsg struct{}

type fieldEntry struct {
	label  string
	suffix string
	field  *pad.Field
}

// Model is the Bubble Tea model for a form of numeric fields sharing one keypad.
type Model struct {
	coord   *pad.Coordinator
	keypad  *pad.Keypad
	shifter *pad.Shifter
	fields  []*fieldEntry
	sched   *TickScheduler

	kpTween   tween
	shTween   tween
	frame     time.Duration
	animating bool

	title  string
	status string
	styles Styles
	keys   keyMap
	help   help.Model

	width  int
	height int
}

// New builds the coordinator, keypad, shifter and fields described by opts.
func New(opts Options) *Model {
	anim := opts.Animation
	if anim == (Animation{}) {
		anim = DefaultAnimation()
	}
	if anim.FPS <= 0 {
		anim.FPS = DefaultAnimation().FPS
	}
	spring := harmonica.NewSpring(harmonica.FPS(anim.FPS), anim.Frequency, anim.Damping)

	styles := DefaultStyles()
	if opts.Styles != nil {
		styles = *opts.Styles
	}

	m := &Model{
		coord:   pad.NewCoordinator(),
		sched:   NewTickScheduler(),
		kpTween: newTween(spring),
		shTween: newTween(spring),
		frame:   time.Second / time.Duration(anim.FPS),
		title:   opts.Title,
		styles:  styles,
		keys:    defaultKeyMap(),
		help:    help.New(),
		width:   opts.Width,
		height:  opts.Height,
	}
	if m.width == 0 || m.height == 0 {
		m.width, m.height = terminalSize()
	}
	m.help.Width = m.width

	m.keypad = pad.NewKeypad(m.coord, opts.Keypad)
	m.shifter = pad.NewShifter(m.coord)

	for _, fc := range opts.Fields {
		e := &fieldEntry{label: fc.Label, suffix: fc.Suffix}
		fo := fc.Field
		if fo.Scheduler == nil {
			fo.Scheduler = m.sched
		}
		onChange := fo.OnChange
		fo.OnChange = func(v float64) {
			m.status = e.label + " = " + strconv.FormatFloat(v, 'f', -1, 64)
			if onChange != nil {
				onChange(v)
			}
		}
		e.field = pad.NewField(m.coord, fo)
		m.fields = append(m.fields, e)
	}

	logging.Info("Form created",
		zap.Int("fields", len(m.fields)),
		zap.String("position", string(m.keypad.Position())),
		zap.Int("keypad_height", m.keypad.Height()),
	)

	m.sync()
	return m
}

// Coordinator returns the form's coordinator.
func (m *Model) Coordinator() *pad.Coordinator { return m.coord }

// Keypad returns the shared keypad.
func (m *Model) Keypad() *pad.Keypad { return m.keypad }

// Field returns the i-th field.
func (m *Model) Field(i int) *pad.Field { return m.fields[i].field }

// Values returns every field's numeric value keyed by label.
func (m *Model) Values() map[string]float64 {
	out := make(map[string]float64, len(m.fields))
	for _, e := range m.fields {
		out[e.label] = e.field.Value()
	}
	return out
}

// Displays returns every field's display string keyed by label.
func (m *Model) Displays() map[string]string {
	out := make(map[string]string, len(m.fields))
	for _, e := range m.fields {
		out[e.label] = e.field.Display()
	}
	return out
}

// Close commits any edit in progress and releases fields, keypad and shifter.
func (m *Model) Close() {
	m.coord.RequestBlur()
	for _, e := range m.fields {
		e.field.Close()
	}
	m.shifter.Close()
	m.keypad.Close()
	m.coord.Close()
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.sched.Flush(), m.animate())
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		cmds = append(cmds, m.handleKey(msg))

	case tea.MouseMsg:
		m.handleMouse(msg)

	case blinkMsg:
		cmds = append(cmds, m.sched.Handle(msg))

	case animTickMsg:
		m.animating = false
		m.kpTween.step()
		m.shTween.step()
	}

	m.sync()
	cmds = append(cmds, m.sched.Flush(), m.animate())
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	editing := false
	if _, ok := m.coord.Active(); ok {
		editing = true
	}

	switch {
	case msg.String() == "ctrl+c":
		return tea.Quit
	case key.Matches(msg, m.keys.Quit) && !editing:
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Next):
		m.coord.FocusNext()
	case key.Matches(msg, m.keys.Prev):
		m.coord.FocusPrev()
	case key.Matches(msg, m.keys.Dismiss):
		m.keypad.Dismiss()
	default:
		if k, ok := pad.ParseKey(msg.String()); ok {
			m.keypad.Press(k)
		}
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}

	if hit, ok := m.keypadHit(msg.X, msg.Y); ok {
		switch {
		case hit.dismiss:
			m.keypad.Dismiss()
		case hit.key != "":
			m.keypad.Press(hit.key)
		}
		return
	}

	if i := msg.Y - fieldsTop; i >= 0 && i < len(m.fields) {
		m.fields[i].field.Tap()
	}
}

// sync points the tweens at the visibility machines' targets and reports
// settled transitions back.
func (m *Model) sync() {
	kt := m.keypad.Transition()
	target := 0.0
	if kt.Target == pad.Visible {
		target = float64(m.keypad.Height())
	}
	m.kpTween.retarget(target, kt.Seq)
	m.shTween.retarget(float64(m.shifter.Offset()), m.shifter.Transition().Seq)

	if seq, ok := m.kpTween.completed(); ok {
		m.keypad.Complete(seq)
	}
	if seq, ok := m.shTween.completed(); ok {
		m.shifter.Complete(seq)
	}
}

// animate schedules the next frame while a tween is moving.
func (m *Model) animate() tea.Cmd {
	if m.animating || (m.kpTween.done && m.shTween.done) {
		return nil
	}
	m.animating = true
	return tea.Tick(m.frame, func(time.Time) tea.Msg {
		return animTickMsg{}
	})
}

// terminalSize returns the current terminal size, with fallback
func terminalSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return 80, 24
	}
	return width, height
}
