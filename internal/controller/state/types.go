package state

// UserState текущий шаг диалога с пользователем
type UserState string

const (
	StateNone UserState = "" // Нет активного состояния

	// Вход в систему
	StateLoginUsername UserState = "login_username"
	StateLoginPassword UserState = "login_password"

	// Ввод текстового поля открытой формы
	StateFormInput UserState = "form_input"
)

// Screen открытый экран (список, карточка или форма).
// Close вызывается, когда экран заменяется другим или диалог сбрасывается.
type Screen interface {
	Close()
}

// UserData хранит временные данные пользователя во время диалога
type UserData struct {
	State  UserState
	Data   map[string]interface{}
	Screen Screen
}
