package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestHeldState(t *testing.T) {
	m := NewManager()
	assert.False(t, m.IsActive(ActionMoveForward))

	m.HandleKeyEvent(glfw.KeyW, glfw.Press)
	assert.True(t, m.IsActive(ActionMoveForward))
	assert.True(t, m.JustPressed(ActionMoveForward))

	m.PostUpdate()
	m.HandleKeyEvent(glfw.KeyW, glfw.Repeat)
	assert.True(t, m.IsActive(ActionMoveForward), "repeat keeps the key held")
	assert.False(t, m.JustPressed(ActionMoveForward), "repeat is not a new press")

	m.HandleKeyEvent(glfw.KeyW, glfw.Release)
	assert.False(t, m.IsActive(ActionMoveForward))
	assert.True(t, m.JustReleased(ActionMoveForward))

	m.PostUpdate()
	assert.False(t, m.JustReleased(ActionMoveForward))
}

func TestArrowKeysShareActions(t *testing.T) {
	m := NewManager()
	m.HandleKeyEvent(glfw.KeyLeft, glfw.Press)
	assert.True(t, m.IsActive(ActionMoveLeft))
	m.HandleKeyEvent(glfw.KeyLeft, glfw.Release)
	assert.False(t, m.IsActive(ActionMoveLeft))
}

func TestUnboundKeyIgnored(t *testing.T) {
	m := NewManager()
	m.HandleKeyEvent(glfw.KeyF12, glfw.Press)
	for a := Action(0); a < ActionCount; a++ {
		assert.False(t, m.IsActive(a), a.String())
	}
}

func TestRebind(t *testing.T) {
	m := NewManager()
	m.UnbindKey(glfw.KeyEscape)
	m.BindKey(glfw.KeyQ, ActionQuit)
	m.BindKey(glfw.KeyQ, ActionCount) // out of range, dropped

	m.HandleKeyEvent(glfw.KeyEscape, glfw.Press)
	assert.False(t, m.JustPressed(ActionQuit))
	m.HandleKeyEvent(glfw.KeyQ, glfw.Press)
	assert.True(t, m.JustPressed(ActionQuit))
}

func TestOutOfRangeQueries(t *testing.T) {
	m := NewManager()
	assert.False(t, m.IsActive(-1))
	assert.False(t, m.JustPressed(ActionCount))
	assert.False(t, m.JustReleased(ActionCount+3))
	assert.Equal(t, "unknown", ActionCount.String())
	assert.Equal(t, "reload_shaders", ActionReloadShaders.String())
}
