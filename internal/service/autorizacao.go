package service

import (
	"fmt"

	"github.com/alencarrgabriel/GeradorRecibos/internal/model"

	"github.com/google/uuid"
)

// Ator is the acting user as seen by the permission predicates: an opaque
// capability carrier extracted from the JWT claims. Never persisted here.
type Ator struct {
	ID    uuid.UUID
	Admin bool
}

// Permission predicates shared by every use case. Each returns nil when the
// action is allowed, or ErrPermissao wrapped with a human-readable reason.
// Keeping them in one place avoids divergent copies of the admin/responsável
// rules across operations.

func PodeAbrirGaveta(ator Ator) error {
	if !ator.Admin {
		return fmt.Errorf("%w: somente administradores podem abrir gavetas", ErrPermissao)
	}
	return nil
}

func PodeFecharGaveta(ator Ator, sessao *model.GavetaSessao) error {
	if !ator.Admin {
		return fmt.Errorf("%w: somente administradores podem fechar gavetas", ErrPermissao)
	}
	if sessao.ResponsavelID == ator.ID {
		return fmt.Errorf("%w: o responsável pela gaveta não pode fechar a própria gaveta", ErrPermissao)
	}
	return nil
}

func PodeRegistrarEntrada(ator Ator) error {
	if !ator.Admin {
		return fmt.Errorf("%w: somente administradores podem registrar entradas de dinheiro", ErrPermissao)
	}
	return nil
}

func PodeRegistrarSaida(ator Ator, sessao *model.GavetaSessao) error {
	if !ator.Admin && sessao.ResponsavelID != ator.ID {
		return fmt.Errorf("%w: você não tem permissão para registrar saídas nesta gaveta", ErrPermissao)
	}
	return nil
}

func PodeConsultarSaldo(ator Ator, sessao *model.GavetaSessao) error {
	if !ator.Admin && sessao.ResponsavelID != ator.ID {
		return fmt.Errorf("%w: você não tem permissão para consultar o saldo desta gaveta", ErrPermissao)
	}
	return nil
}
