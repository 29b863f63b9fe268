package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CriarClienteRequest struct {
	Nome  string `json:"nome"  validate:"required,min=2,max=255"`
	Email string `json:"email" validate:"required,email"`
	CPF   string `json:"cpf"   validate:"required,min=11,max=14"`
}

// AtualizarClienteRequest is a partial update: only non-nil fields are
// applied.
type AtualizarClienteRequest struct {
	Nome  *string `json:"nome"  validate:"omitempty,min=2,max=255"`
	Email *string `json:"email" validate:"omitempty,email"`
	CPF   *string `json:"cpf"   validate:"omitempty,min=11,max=14"`
	Ativo *bool   `json:"ativo"`
}

// Vazio reports whether the request carries no mutable field at all.
func (r AtualizarClienteRequest) Vazio() bool {
	return r.Nome == nil && r.Email == nil && r.CPF == nil && r.Ativo == nil
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ClienteData struct {
	ID    uint   `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
	CPF   string `json:"cpf"`
	Ativo bool   `json:"ativo"`
}
