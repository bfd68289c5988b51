package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrOrderNotFound возвращается хранилищем, если заказ не найден или принадлежит другому владельцу.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderNumberConflict - нарушение уникальности order_number при вставке.
	ErrOrderNumberConflict = errors.New("order number already exists")
	// ErrOrderIDConflict - заказ с таким ID уже существует.
	ErrOrderIDConflict = errors.New("order id already exists")
	// ErrOwnerRequired - операция вызвана без идентификатора владельца.
	ErrOwnerRequired = errors.New("owner_id is required")
	// ErrOutboxPublish - ошибка при публикации сообщения из outbox.
	ErrOutboxPublish = errors.New("outbox publish failed")
)

// ErrorKind - класс ошибки, который видит вызывающая сторона.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation_error"
	KindNotFound   ErrorKind = "not_found"
	KindStorage    ErrorKind = "storage_error"
)

// Пользовательские сообщения об ошибках.
const (
	MsgOrderNameRequired       = "Order name is required"
	MsgItemsRequired           = "At least one item is required"
	MsgDeliveryAddressRequired = "Delivery address is required"
	MsgOnlyPendingCancellable  = "Only pending orders can be cancelled"
	MsgOrderNotFound           = "Order not found"
)

// Error - типизированная ошибка сервиса заказов.
type Error struct {
	Kind ErrorKind
	// Field заполняется только для validation_error.
	Field   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidationError создаёт ошибку валидации для поля field.
func NewValidationError(field, message string) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: message}
}

// NewNotFoundError создаёт ошибку not_found. Причина (чужой заказ или отсутствие) не раскрывается.
func NewNotFoundError() *Error {
	return &Error{Kind: KindNotFound, Message: MsgOrderNotFound, Err: ErrOrderNotFound}
}

// NewStorageError оборачивает ошибку хранилища, сохраняя её текст.
func NewStorageError(err error) *Error {
	msg := "storage failure"
	if err != nil {
		msg = err.Error()
	}
	return &Error{Kind: KindStorage, Message: msg, Err: err}
}

// KindOf возвращает класс ошибки; любые неклассифицированные ошибки считаются storage_error.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}
	return KindStorage
}

// MessageOf возвращает человекочитаемое сообщение ошибки.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}
	return err.Error()
}

func IsValidation(err error) bool { return KindOf(err) == KindValidation }

func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

func IsStorage(err error) bool { return KindOf(err) == KindStorage }
