package service

import (
	"context"

	"github.com/Henrique42/mercado-api/internal/apierror"
	"github.com/Henrique42/mercado-api/internal/dto"
	"github.com/Henrique42/mercado-api/internal/model"
	"github.com/Henrique42/mercado-api/internal/repository"

	"gorm.io/gorm"
)

// ProdutoService defines business operations for produtos and their owned
// image set.
type ProdutoService interface {
	Criar(ctx context.Context, req dto.CriarProdutoRequest) (dto.ProdutoData, error)
	Obter(ctx context.Context, id uint) (dto.ProdutoData, error)
	Listar(ctx context.Context, q dto.ListQuery) ([]dto.ProdutoData, error)
	Atualizar(ctx context.Context, id uint, req dto.AtualizarProdutoRequest) (dto.ProdutoData, error)
	Remover(ctx context.Context, id uint) error
}

type produtoService struct {
	repo repository.ProdutoRepository
}

func NewProdutoService(repo repository.ProdutoRepository) ProdutoService {
	return &produtoService{repo: repo}
}

func mapProduto(p model.Produto) dto.ProdutoData {
	imagens := make([]dto.ImagemData, 0, len(p.Imagens))
	for _, img := range p.Imagens {
		imagens = append(imagens, dto.ImagemData{URL: img.URL})
	}
	return dto.ProdutoData{
		ID:           p.ID,
		Nome:         p.Nome,
		Descricao:    p.Descricao,
		Preco:        p.Preco,
		CodBarras:    p.CodBarras,
		Secao:        p.Secao,
		Estoque:      p.Estoque,
		DataValidade: dto.DateFrom(p.DataValidade),
		Imagens:      imagens,
	}
}

func imagensFrom(reqs []dto.ImagemRequest) []model.ProdutoImagem {
	imagens := make([]model.ProdutoImagem, 0, len(reqs))
	for _, img := range reqs {
		imagens = append(imagens, model.ProdutoImagem{URL: img.URL})
	}
	return imagens
}

func (s *produtoService) Criar(ctx context.Context, req dto.CriarProdutoRequest) (dto.ProdutoData, error) {
	p := model.Produto{
		Nome:         req.Nome,
		Descricao:    req.Descricao,
		Preco:        req.Preco,
		CodBarras:    req.CodBarras,
		Secao:        req.Secao,
		Estoque:      req.Estoque,
		DataValidade: req.DataValidade.TimePtr(),
		Imagens:      imagensFrom(req.Imagens),
	}

	var out model.Produto
	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		// Parent and children go in one unit; either everything is stored
		// with consistent FKs or nothing is.
		if err := s.repo.Create(ctx, tx, &p); err != nil {
			return err
		}
		criado, err := s.repo.FindByID(ctx, tx, p.ID)
		if err != nil {
			return err
		}
		out = *criado
		return nil
	})
	if err != nil {
		return dto.ProdutoData{}, normalizar(err, "produto")
	}
	return mapProduto(out), nil
}

func (s *produtoService) Obter(ctx context.Context, id uint) (dto.ProdutoData, error) {
	p, err := s.repo.FindByID(ctx, nil, id)
	if err != nil {
		return dto.ProdutoData{}, normalizar(err, "produto")
	}
	return mapProduto(*p), nil
}

func (s *produtoService) Listar(ctx context.Context, q dto.ListQuery) ([]dto.ProdutoData, error) {
	produtos, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, normalizar(err, "produto")
	}
	result := make([]dto.ProdutoData, 0, len(produtos))
	for _, p := range produtos {
		result = append(result, mapProduto(p))
	}
	return result, nil
}

func (s *produtoService) Atualizar(ctx context.Context, id uint, req dto.AtualizarProdutoRequest) (dto.ProdutoData, error) {
	if req.Vazio() {
		return dto.ProdutoData{}, apierror.BadRequest("Campo(s) inválido(s).")
	}

	var out model.Produto
	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if _, err := s.repo.FindByID(ctx, tx, id); err != nil {
			return err
		}

		campos := map[string]any{}
		if req.Nome != nil {
			campos["nome"] = *req.Nome
		}
		if req.Descricao != nil {
			campos["descricao"] = *req.Descricao
		}
		if req.Preco != nil {
			campos["preco"] = *req.Preco
		}
		if req.CodBarras != nil {
			campos["cod_barras"] = *req.CodBarras
		}
		if req.Secao != nil {
			campos["secao"] = *req.Secao
		}
		if req.Estoque != nil {
			campos["estoque"] = *req.Estoque
		}
		if req.DataValidade != nil {
			campos["data_validade"] = req.DataValidade.TimePtr()
		}
		if len(campos) > 0 {
			if err := s.repo.UpdateCampos(ctx, tx, id, campos); err != nil {
				return err
			}
		}

		// Scalar changes and image replacement share the transaction, so a
		// failed replacement never leaves a half-applied update behind.
		if req.Imagens != nil {
			if err := s.repo.ReplaceImagens(ctx, tx, id, imagensFrom(*req.Imagens)); err != nil {
				return err
			}
		}

		atualizado, err := s.repo.FindByID(ctx, tx, id)
		if err != nil {
			return err
		}
		out = *atualizado
		return nil
	})
	if err != nil {
		return dto.ProdutoData{}, normalizar(err, "produto")
	}
	return mapProduto(out), nil
}

func (s *produtoService) Remover(ctx context.Context, id uint) error {
	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if _, err := s.repo.FindByID(ctx, tx, id); err != nil {
			return err
		}
		return s.repo.Delete(ctx, tx, id)
	})
	if err != nil {
		return normalizar(err, "produto")
	}
	return nil
}
