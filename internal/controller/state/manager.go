package state

import (
	"sync"
)

// Manager управляет состояниями пользователей
type Manager struct {
	mu     sync.RWMutex
	states map[int64]*UserData // telegramID -> UserData
}

// NewManager создаёт новый менеджер состояний
func NewManager() *Manager {
	return &Manager{
		states: make(map[int64]*UserData),
	}
}

// entry возвращает запись пользователя, создавая её при необходимости; вызывается под mu
func (sm *Manager) entry(telegramID int64) *UserData {
	userData, exists := sm.states[telegramID]
	if !exists {
		userData = &UserData{
			State: StateNone,
			Data:  make(map[string]interface{}),
		}
		sm.states[telegramID] = userData
	}
	return userData
}

// GetState получает текущее состояние пользователя
func (sm *Manager) GetState(telegramID int64) UserState {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if userData, exists := sm.states[telegramID]; exists {
		return userData.State
	}
	return StateNone
}

// SetState устанавливает состояние пользователя.
// StateNone сбрасывает данные диалога, открытый экран остаётся.
func (sm *Manager) SetState(telegramID int64, state UserState) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if state == StateNone {
		userData, exists := sm.states[telegramID]
		if !exists {
			return
		}
		if userData.Screen == nil {
			delete(sm.states, telegramID)
			return
		}
		userData.State = StateNone
		userData.Data = make(map[string]interface{})
		return
	}

	sm.entry(telegramID).State = state
}

// GetData получает временные данные пользователя
func (sm *Manager) GetData(telegramID int64, key string) (interface{}, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if userData, exists := sm.states[telegramID]; exists {
		value, ok := userData.Data[key]
		return value, ok
	}
	return nil, false
}

// SetData устанавливает временные данные пользователя
func (sm *Manager) SetData(telegramID int64, key string, value interface{}) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.entry(telegramID).Data[key] = value
}

// SetScreen делает screen текущим экраном пользователя и закрывает предыдущий
func (sm *Manager) SetScreen(telegramID int64, screen Screen) {
	sm.mu.Lock()
	userData := sm.entry(telegramID)
	previous := userData.Screen
	userData.Screen = screen
	sm.mu.Unlock()

	if previous != nil && previous != screen {
		previous.Close()
	}
}

// GetScreen текущий экран пользователя или nil
func (sm *Manager) GetScreen(telegramID int64) Screen {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if userData, exists := sm.states[telegramID]; exists {
		return userData.Screen
	}
	return nil
}

// ClearState очищает состояние и данные пользователя и закрывает открытый экран
func (sm *Manager) ClearState(telegramID int64) {
	sm.mu.Lock()
	userData, exists := sm.states[telegramID]
	delete(sm.states, telegramID)
	sm.mu.Unlock()

	if exists && userData.Screen != nil {
		userData.Screen.Close()
	}
}
