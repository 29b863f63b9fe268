package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ImagemRequest struct {
	URL string `json:"url" validate:"required,url"`
}

type CriarProdutoRequest struct {
	Nome         string          `json:"nome"          validate:"required,max=255"`
	Descricao    *string         `json:"descricao"     validate:"omitempty,max=255"`
	Preco        decimal.Decimal `json:"preco"         validate:"min=0"`
	CodBarras    string          `json:"cod_barras"    validate:"required,len=13"`
	Secao        *string         `json:"secao"         validate:"omitempty,max=50"`
	Estoque      int             `json:"estoque"       validate:"min=0"`
	DataValidade *Date           `json:"data_validade"`
	Imagens      []ImagemRequest `json:"imagens"       validate:"dive"`
}

// AtualizarProdutoRequest is a partial update. Imagens follows replace
// semantics: nil leaves the set untouched, an empty slice clears it.
type AtualizarProdutoRequest struct {
	Nome         *string          `json:"nome"          validate:"omitempty,max=255"`
	Descricao    *string          `json:"descricao"     validate:"omitempty,max=255"`
	Preco        *decimal.Decimal `json:"preco"`
	CodBarras    *string          `json:"cod_barras"    validate:"omitempty,len=13"`
	Secao        *string          `json:"secao"         validate:"omitempty,max=50"`
	Estoque      *int             `json:"estoque"       validate:"omitempty,min=0"`
	DataValidade *Date            `json:"data_validade"`
	Imagens      *[]ImagemRequest `json:"imagens"       validate:"omitempty,dive"`
}

func (r AtualizarProdutoRequest) Vazio() bool {
	return r.Nome == nil && r.Descricao == nil && r.Preco == nil &&
		r.CodBarras == nil && r.Secao == nil && r.Estoque == nil &&
		r.DataValidade == nil && r.Imagens == nil
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ImagemData struct {
	URL string `json:"url"`
}

type ProdutoData struct {
	ID           uint            `json:"id"`
	Nome         string          `json:"nome"`
	Descricao    *string         `json:"descricao"`
	Preco        decimal.Decimal `json:"preco"`
	CodBarras    string          `json:"cod_barras"`
	Secao        *string         `json:"secao"`
	Estoque      int             `json:"estoque"`
	DataValidade *Date           `json:"data_validade"`
	Imagens      []ImagemData    `json:"imagens"`
}
