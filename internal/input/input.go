package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical demo action, not a physical key
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionQuit
	ActionReloadShaders
	ActionToggleCapture
	ActionCount // Sentinel value for array sizing
)

var actionNames = [ActionCount]string{
	ActionMoveForward:   "move_forward",
	ActionMoveBackward:  "move_backward",
	ActionMoveLeft:      "move_left",
	ActionMoveRight:     "move_right",
	ActionQuit:          "quit",
	ActionReloadShaders: "reload_shaders",
	ActionToggleCapture: "toggle_capture",
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// Manager maps physical keys to actions and tracks held and edge state.
// GLFW delivers key events on the main thread during PollEvents, but the
// lock keeps the manager safe to query from anywhere.
type Manager struct {
	mu sync.RWMutex

	// one key can map to multiple actions
	keyToActions map[glfw.Key][]Action

	current      [ActionCount]bool
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool
}

// NewManager creates a Manager with the default WASD bindings
func NewManager() *Manager {
	m := &Manager{
		keyToActions: make(map[glfw.Key][]Action),
	}

	m.BindKey(glfw.KeyW, ActionMoveForward)
	m.BindKey(glfw.KeyS, ActionMoveBackward)
	m.BindKey(glfw.KeyA, ActionMoveLeft)
	m.BindKey(glfw.KeyD, ActionMoveRight)
	m.BindKey(glfw.KeyUp, ActionMoveForward)
	m.BindKey(glfw.KeyDown, ActionMoveBackward)
	m.BindKey(glfw.KeyLeft, ActionMoveLeft)
	m.BindKey(glfw.KeyRight, ActionMoveRight)
	m.BindKey(glfw.KeyEscape, ActionQuit)
	m.BindKey(glfw.KeyR, ActionReloadShaders)
	m.BindKey(glfw.KeyTab, ActionToggleCapture)

	return m
}

// BindKey binds a physical key to a logical action
func (m *Manager) BindKey(key glfw.Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.keyToActions[key] = append(m.keyToActions[key], action)
}

// UnbindKey removes all action bindings for a key
func (m *Manager) UnbindKey(key glfw.Key) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.keyToActions, key)
}

// HandleKeyEvent processes a key event and updates internal state
func (m *Manager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	m.mu.Lock()
	defer m.mu.Unlock()

	actions, ok := m.keyToActions[key]
	if !ok {
		return
	}

	pressed := action == glfw.Press || action == glfw.Repeat
	for _, act := range actions {
		if pressed && !m.current[act] {
			m.justPressed[act] = true
		}
		if !pressed && m.current[act] {
			m.justReleased[act] = true
		}
		m.current[act] = pressed
	}
}

// SetKeyCallback installs the GLFW key callback for this manager
func (m *Manager) SetKeyCallback(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		m.HandleKeyEvent(key, action)
	})
}

// PostUpdate clears the edge flags; call once at the end of every frame
func (m *Manager) PostUpdate() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range ActionCount {
		m.justPressed[i] = false
		m.justReleased[i] = false
	}
}

// IsActive returns true while the action is held down
func (m *Manager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current[action]
}

// JustPressed returns true only in the frame the action went down
func (m *Manager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.justPressed[action]
}

// JustReleased returns true only in the frame the action went up
func (m *Manager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.justReleased[action]
}
