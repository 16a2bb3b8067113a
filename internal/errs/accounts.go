package errs

import (
	"errors"
	"fmt"
)

// ErrSnapshotNotFound В хранилище еще нет ни одного снимка состояния сервера.
var ErrSnapshotNotFound = errors.New("снимок состояния сервера не найден")

// ErrValidation Кастомная ошибка, сообщающая о невалидных входных данных.
// Текст ошибки безопасно отдавать клиенту.
type ErrValidation struct {
	Field   string
	Message string
}

func (v *ErrValidation) Error() string {
	return v.Message
}

func NewErrValidation(field string, message string) *ErrValidation {
	return &ErrValidation{
		Field:   field,
		Message: message,
	}
}

// ErrUsernameIsTaken Кастомная ошибка, сообщающая, что SSH-пользователь с таким именем уже существует.
type ErrUsernameIsTaken struct {
	Username string
	Err      error
}

func (ut *ErrUsernameIsTaken) Error() string {
	return fmt.Sprintf("SSH-пользователь `%s` уже существует. Ошибка: %v", ut.Username, ut.Err)
}

func (ut *ErrUsernameIsTaken) Unwrap() error {
	return ut.Err
}

func NewErrUsernameIsTaken(username string, err error) *ErrUsernameIsTaken {
	return &ErrUsernameIsTaken{
		Username: username,
		Err:      err,
	}
}
