package bookingapi

import (
	"errors"
	"fmt"
)

var (
	// ErrInternal возвращается при внутренних ошибках клиента и сетевых сбоях
	ErrInternal = errors.New("bookingapi client: internal error")

	// ErrInvalidResponse возвращается, когда ответ не JSON или не той формы
	ErrInvalidResponse = errors.New("bookingapi client: invalid response")

	// ErrServer совпадает с любой *ServerError через errors.Is
	ErrServer = errors.New("bookingapi client: server error")
)

// ServerError логическая ошибка, которую вернул сервер в поле error/message
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("bookingapi client: server error (status %d): %s", e.Status, e.Message)
}

// Is позволяет проверять errors.Is(err, ErrServer)
func (e *ServerError) Is(target error) bool {
	return target == ErrServer
}

// UserMessage возвращает текст ошибки, который можно показать пользователю
func UserMessage(err error, fallback string) string {
	var se *ServerError
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	return fallback
}
