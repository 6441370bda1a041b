package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound возвращается хранилищем, когда запись с таким id отсутствует
var ErrNotFound = errors.New("record not found")

// PersistenceError оборачивает ошибку слоя бд при записи
// (нарушение ограничения, внешнего ключа, потеря соединения)
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NewPersistenceError оборачивает err, сохраняя nil как nil
func NewPersistenceError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &PersistenceError{Op: op, Err: err}
}

// IsPersistence сообщает, вызвана ли ошибка слоем хранения
func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
