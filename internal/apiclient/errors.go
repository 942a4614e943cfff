package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorKind классифицирует ошибку обращения к API
type ErrorKind string

const (
	KindTransport ErrorKind = "transport" // сеть, DNS, обрыв соединения
	KindServer    ErrorKind = "server"    // ответ не 2xx
	KindDecode    ErrorKind = "decode"    // тело ответа не разобрано
)

// GenericMessage текст ошибки, когда сервер не прислал своего сообщения
const GenericMessage = "Не удалось выполнить запрос к серверу"

// APIError нормализованная ошибка Resource Client
type APIError struct {
	Kind       ErrorKind
	Method     string
	Path       string
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Describe полное описание для логов
func (e *APIError) Describe() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: %s (HTTP %d): %s", e.Method, e.Path, e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s %s: %s: %s", e.Method, e.Path, e.Kind, e.Message)
}

// IsNotFound проверяет что сервер ответил 404
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// serverMessage достаёт сообщение из тела вида {"error": "..."} или {"message": "..."}
func serverMessage(body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if msg := strings.TrimSpace(payload.Error); msg != "" {
			return msg
		}
		if msg := strings.TrimSpace(payload.Message); msg != "" {
			return msg
		}
	}
	return ""
}
