package pad

import (
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/muurk/numpad/internal/logging"
)

// FieldID identifies a registered field for as long as it stays registered.
type FieldID string

// ShifterID identifies a registered content shifter.
type ShifterID string

// NewFieldID returns a fresh random field identity.
func NewFieldID() FieldID { return FieldID(uuid.NewString()) }

// NewShifterID returns a fresh random shifter identity.
func NewShifterID() ShifterID { return ShifterID(uuid.NewString()) }

// FieldHandle is the capability set the coordinator needs from a field.
// fromCoordinator is true when the call originates from the coordinator,
// which tells the field not to report back.
type FieldHandle interface {
	Activate(fromCoordinator bool)
	Deactivate(fromCoordinator bool)
	ReceiveKey(key Key)
}

// ShifterHandle is the capability set the coordinator needs from a shifter.
type ShifterHandle interface {
	Show()
	Hide()
}

// KeypadHandle is the capability set the coordinator needs from the keypad.
type KeypadHandle interface {
	Show()
	Hide()
}

// Coordinator arbitrates focus between fields and routes keystrokes to the
// active one. The zero value is not usable; call NewCoordinator.
type Coordinator struct {
	active FieldID

	fields   map[FieldID]FieldHandle
	order    []FieldID
	shifters map[ShifterID]ShifterHandle

	keypad       KeypadHandle
	keypadHeight int
}

// NewCoordinator creates an empty coordinator.
func NewCoordinator() *Coordinator {
	return &Coordinator{
		fields:   make(map[FieldID]FieldHandle),
		shifters: make(map[ShifterID]ShifterHandle),
	}
}

// Active returns the active field, if any.
func (c *Coordinator) Active() (FieldID, bool) {
	return c.active, c.active != ""
}

// IsActive reports whether id is the active field.
func (c *Coordinator) IsActive(id FieldID) bool {
	return id != "" && c.active == id
}

// Fields returns the registered field ids in registration order.
func (c *Coordinator) Fields() []FieldID {
	return slices.Clone(c.order)
}

// RequestFocus makes id the active field. Every other field is deactivated
// first, so at no point are two fields active. The latest request wins.
func (c *Coordinator) RequestFocus(id FieldID) {
	target, ok := c.fields[id]
	if !ok {
		logging.Warn("Focus requested for unregistered field", zap.String("field_id", string(id)))
		return
	}

	if c.active == id {
		c.showSurfaces()
		return
	}

	for _, other := range slices.Clone(c.order) {
		if other == id {
			continue
		}
		if h, ok := c.fields[other]; ok {
			h.Deactivate(true)
		}
	}

	c.active = id
	logging.LogFocus(string(id), "focus")
	target.Activate(true)

	// onFocus may have moved focus elsewhere.
	if c.active != "" {
		c.showSurfaces()
	}
}

// RequestBlur deactivates the active field and hides the keypad and shifters.
func (c *Coordinator) RequestBlur() {
	prev := c.active
	c.active = ""

	if h, ok := c.fields[prev]; ok {
		logging.LogFocus(string(prev), "blur")
		h.Deactivate(true)
	}

	// onBlur may have focused another field.
	if c.active == "" {
		c.hideSurfaces()
	}
}

// FocusNext moves focus to the field registered after the active one,
// wrapping around. With nothing active it focuses the first field.
func (c *Coordinator) FocusNext() {
	c.focusStep(1)
}

// FocusPrev moves focus to the field registered before the active one.
func (c *Coordinator) FocusPrev() {
	c.focusStep(-1)
}

func (c *Coordinator) focusStep(step int) {
	n := len(c.order)
	if n == 0 {
		return
	}
	idx := slices.Index(c.order, c.active)
	switch {
	case idx < 0 && step > 0:
		idx = 0
	case idx < 0:
		idx = n - 1
	default:
		idx = ((idx+step)%n + n) % n
	}
	c.RequestFocus(c.order[idx])
}

// DispatchKey forwards key to the active field. It reports whether a field
// received it.
func (c *Coordinator) DispatchKey(key Key) bool {
	if c.active == "" {
		logging.Debug("Key dropped, no active field", zap.String("key", string(key)))
		return false
	}
	h, ok := c.fields[c.active]
	if !ok {
		c.active = ""
		c.hideSurfaces()
		return false
	}
	h.ReceiveKey(key)
	return true
}

// RegisterField adds h under id. Registering an id twice replaces the
// earlier handle; if that handle held focus it is deactivated and the
// keypad and shifters hide.
func (c *Coordinator) RegisterField(id FieldID, h FieldHandle) {
	prev, exists := c.fields[id]
	if !exists {
		c.order = append(c.order, id)
		c.fields[id] = h
		return
	}

	logging.Debug("Field re-registered, replacing handle", zap.String("field_id", string(id)))
	c.fields[id] = h
	if prev == h || c.active != id {
		return
	}

	logging.LogFocus(string(id), "replaced_while_active")
	c.active = ""
	prev.Deactivate(true)
	if c.active == "" {
		c.hideSurfaces()
	}
}

// UnregisterField removes h from id. A handle that has since been replaced
// under the same id is ignored. If id was active the coordinator forgets it
// and hides the keypad and shifters.
func (c *Coordinator) UnregisterField(id FieldID, h FieldHandle) {
	if cur, ok := c.fields[id]; !ok || cur != h {
		return
	}
	delete(c.fields, id)
	c.order = slices.DeleteFunc(c.order, func(o FieldID) bool { return o == id })

	if c.active == id {
		logging.LogFocus(string(id), "unregistered_while_active")
		c.active = ""
		c.hideSurfaces()
	}
}

// RegisterShifter adds h under id. A shifter registered while a field is
// active is shown immediately.
func (c *Coordinator) RegisterShifter(id ShifterID, h ShifterHandle) {
	c.shifters[id] = h
	if c.active != "" {
		h.Show()
	}
}

// UnregisterShifter removes id.
func (c *Coordinator) UnregisterShifter(id ShifterID) {
	delete(c.shifters, id)
}

// RegisterKeypad installs the shared keypad, replacing any previous one.
func (c *Coordinator) RegisterKeypad(h KeypadHandle) {
	c.keypad = h
	if c.active != "" {
		h.Show()
	}
}

// UnregisterKeypad removes h if it is the installed keypad.
func (c *Coordinator) UnregisterKeypad(h KeypadHandle) {
	if c.keypad == h {
		c.keypad = nil
	}
}

// SetKeypadHeight records the height shifters reserve for the keypad.
func (c *Coordinator) SetKeypadHeight(height int) {
	c.keypadHeight = height
}

// KeypadHeight returns the recorded keypad height.
func (c *Coordinator) KeypadHeight() int {
	return c.keypadHeight
}

// Close blurs the active field and drops every registration.
func (c *Coordinator) Close() {
	c.RequestBlur()
	c.fields = make(map[FieldID]FieldHandle)
	c.order = nil
	c.shifters = make(map[ShifterID]ShifterHandle)
	c.keypad = nil
}

func (c *Coordinator) showSurfaces() {
	if c.keypad != nil {
		c.keypad.Show()
	}
	for _, s := range c.shifters {
		s.Show()
	}
}

func (c *Coordinator) hideSurfaces() {
	if c.keypad != nil {
		c.keypad.Hide()
	}
	for _, s := range c.shifters {
		s.Hide()
	}
}
