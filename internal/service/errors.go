package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Business error kinds. Services wrap these with a user-facing message
// (fmt.Errorf("%w: ...")) and handlers map them to HTTP status codes via
// errors.Is. Every failure is a rule violation raised synchronously —
// nothing here is retryable.
var (
	ErrPermissao     = errors.New("permissão negada")
	ErrNaoEncontrado = errors.New("não encontrado")
	ErrConflito      = errors.New("conflito de estado")
	ErrValidacao     = errors.New("dados inválidos")
)

// naoEncontrado maps a repository lookup failure to ErrNaoEncontrado only
// when the row genuinely does not exist. Anything else is an infrastructure
// fault and propagates untouched, never dressed up as a business error.
func naoEncontrado(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s", ErrNaoEncontrado, msg)
	}
	return err
}
