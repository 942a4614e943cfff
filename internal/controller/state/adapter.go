package state

import (
	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/callbacktypes"
)

// Adapter адаптирует state.Manager к интерфейсу callbacktypes.StateManager
type Adapter struct {
	sm *Manager
}

// NewAdapter создает адаптер для Manager
func NewAdapter(sm *Manager) *Adapter {
	return &Adapter{sm: sm}
}

func (a *Adapter) SetState(telegramID int64, state callbacktypes.UserState) {
	a.sm.SetState(telegramID, UserState(state))
}

func (a *Adapter) ClearState(telegramID int64) {
	a.sm.ClearState(telegramID)
}

func (a *Adapter) SetScreen(telegramID int64, screen callbacktypes.Screen) {
	a.sm.SetScreen(telegramID, screen)
}

func (a *Adapter) GetScreen(telegramID int64) callbacktypes.Screen {
	return a.sm.GetScreen(telegramID)
}
