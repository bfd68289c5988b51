package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{name: "nil", err: nil, want: ""},
		{name: "validation", err: NewValidationError("order_name", MsgOrderNameRequired), want: KindValidation},
		{name: "not found", err: NewNotFoundError(), want: KindNotFound},
		{name: "storage", err: NewStorageError(errors.New("db down")), want: KindStorage},
		{name: "wrapped validation", err: fmt.Errorf("create: %w", NewValidationError("items", MsgItemsRequired)), want: KindValidation},
		{name: "plain error", err: errors.New("boom"), want: KindStorage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorHelpers(t *testing.T) {
	notFound := NewNotFoundError()
	if !IsNotFound(notFound) || IsValidation(notFound) || IsStorage(notFound) {
		t.Fatal("unexpected classification for not found error")
	}
	if !errors.Is(notFound, ErrOrderNotFound) {
		t.Fatal("not found error must unwrap to ErrOrderNotFound")
	}
	if MessageOf(notFound) != MsgOrderNotFound {
		t.Fatalf("unexpected message %q", MessageOf(notFound))
	}

	cause := errors.New("connection refused")
	storageErr := NewStorageError(cause)
	if !errors.Is(storageErr, cause) {
		t.Fatal("storage error must unwrap to its cause")
	}
	if MessageOf(storageErr) != "connection refused" {
		t.Fatalf("storage message must pass through, got %q", MessageOf(storageErr))
	}

	validation := NewValidationError("delivery_address", MsgDeliveryAddressRequired)
	if validation.Error() != "validation_error: delivery_address: Delivery address is required" {
		t.Fatalf("unexpected error string %q", validation.Error())
	}
	if MessageOf(errors.New("raw")) != "raw" {
		t.Fatal("MessageOf must fall back to err.Error()")
	}
}
