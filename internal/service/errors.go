package service

import (
	"errors"
	"fmt"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrProductNotFound    = errors.New("product not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrStorage            = errors.New("storage failure")
	ErrProductInUse       = fmt.Errorf("%w: product referenced by order items", ErrStorage)
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already exists")
)

func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func productNotFound(id uint) error {
	return fmt.Errorf("%w: product_id=%d", ErrProductNotFound, id)
}

func orderNotFound(id uint) error {
	return fmt.Errorf("%w: order_id=%d", ErrOrderNotFound, id)
}

// storageError 包装底层存储错误，保留原始错误链
func storageError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}
