package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeScreen struct {
	closed int
}

func (s *fakeScreen) Close() { s.closed++ }

func TestSetScreenClosesPrevious(t *testing.T) {
	sm := NewManager()
	first, second := &fakeScreen{}, &fakeScreen{}

	sm.SetScreen(1, first)
	sm.SetScreen(1, second)

	assert.Equal(t, 1, first.closed)
	assert.Equal(t, 0, second.closed)
	assert.Same(t, second, sm.GetScreen(1))
}

func TestSetScreenSameScreenIsNotClosed(t *testing.T) {
	sm := NewManager()
	screen := &fakeScreen{}

	sm.SetScreen(1, screen)
	sm.SetScreen(1, screen)

	assert.Equal(t, 0, screen.closed)
}

func TestSetStateNoneKeepsScreen(t *testing.T) {
	sm := NewManager()
	screen := &fakeScreen{}
	sm.SetScreen(1, screen)
	sm.SetState(1, StateFormInput)
	sm.SetData(1, "field", "guest_name")

	sm.SetState(1, StateNone)

	assert.Equal(t, StateNone, sm.GetState(1))
	_, ok := sm.GetData(1, "field")
	assert.False(t, ok)
	assert.Same(t, screen, sm.GetScreen(1))
	assert.Equal(t, 0, screen.closed)
}

func TestClearStateClosesScreen(t *testing.T) {
	sm := NewManager()
	screen := &fakeScreen{}
	sm.SetScreen(1, screen)
	sm.SetState(1, StateLoginUsername)

	sm.ClearState(1)

	assert.Equal(t, 1, screen.closed)
	assert.Nil(t, sm.GetScreen(1))
	assert.Equal(t, StateNone, sm.GetState(1))
}

func TestStatesAreIsolatedPerUser(t *testing.T) {
	sm := NewManager()
	sm.SetState(1, StateLoginPassword)
	sm.SetData(1, "username", "admin")

	assert.Equal(t, StateNone, sm.GetState(2))
	_, ok := sm.GetData(2, "username")
	assert.False(t, ok)

	value, ok := sm.GetData(1, "username")
	assert.True(t, ok)
	assert.Equal(t, "admin", value)
}
