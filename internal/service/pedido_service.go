package service

import (
	"context"

	"github.com/Henrique42/mercado-api/internal/apierror"
	"github.com/Henrique42/mercado-api/internal/dto"
	"github.com/Henrique42/mercado-api/internal/model"
	"github.com/Henrique42/mercado-api/internal/repository"

	"gorm.io/gorm"
)

// PedidoService defines business operations for pedidos and their owned line
// items.
type PedidoService interface {
	Criar(ctx context.Context, req dto.CriarPedidoRequest) (dto.PedidoData, error)
	Obter(ctx context.Context, id uint) (dto.PedidoData, error)
	Listar(ctx context.Context, q dto.PedidoListQuery) ([]dto.PedidoData, error)
	Atualizar(ctx context.Context, id uint, req dto.AtualizarPedidoRequest) (dto.PedidoData, error)
	Remover(ctx context.Context, id uint) error
}

type pedidoService struct {
	repo repository.PedidoRepository
}

func NewPedidoService(repo repository.PedidoRepository) PedidoService {
	return &pedidoService{repo: repo}
}

func mapPedido(p model.Pedido) dto.PedidoData {
	itens := make([]dto.ItemPedidoData, 0, len(p.Produtos))
	for _, item := range p.Produtos {
		itens = append(itens, dto.ItemPedidoData{
			ID:         item.ID,
			ProdutoID:  item.ProdutoID,
			Quantidade: item.Quantidade,
		})
	}
	return dto.PedidoData{
		ID:            p.ID,
		ClienteID:     p.ClienteID,
		DPedido:       p.DPedido,
		Status:        string(p.Status),
		PeriodoInicio: dto.DateFrom(p.PeriodoInicio),
		PeriodoFim:    dto.DateFrom(p.PeriodoFim),
		Produtos:      itens,
	}
}

func itensFrom(reqs []dto.ItemPedidoRequest) []model.PedidoProduto {
	itens := make([]model.PedidoProduto, 0, len(reqs))
	for _, item := range reqs {
		itens = append(itens, model.PedidoProduto{
			ProdutoID:  item.ProdutoID,
			Quantidade: item.Quantidade,
		})
	}
	return itens
}

func (s *pedidoService) Criar(ctx context.Context, req dto.CriarPedidoRequest) (dto.PedidoData, error) {
	status := model.StatusPendente
	if req.Status != nil {
		status = model.StatusPedido(*req.Status)
	}
	p := model.Pedido{
		ClienteID:     req.ClienteID,
		Status:        status,
		PeriodoInicio: req.PeriodoInicio.TimePtr(),
		PeriodoFim:    req.PeriodoFim.TimePtr(),
		Produtos:      itensFrom(req.Produtos),
	}

	var out model.Pedido
	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.Create(ctx, tx, &p); err != nil {
			return err
		}
		// Re-read so server-assigned fields (id, d_pedido, item ids) come
		// back exactly as stored.
		criado, err := s.repo.FindByID(ctx, tx, p.ID)
		if err != nil {
			return err
		}
		out = *criado
		return nil
	})
	if err != nil {
		return dto.PedidoData{}, normalizar(err, "pedido")
	}
	return mapPedido(out), nil
}

func (s *pedidoService) Obter(ctx context.Context, id uint) (dto.PedidoData, error) {
	p, err := s.repo.FindByID(ctx, nil, id)
	if err != nil {
		return dto.PedidoData{}, normalizar(err, "pedido")
	}
	return mapPedido(*p), nil
}

func (s *pedidoService) Listar(ctx context.Context, q dto.PedidoListQuery) ([]dto.PedidoData, error) {
	pedidos, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, normalizar(err, "pedido")
	}
	result := make([]dto.PedidoData, 0, len(pedidos))
	for _, p := range pedidos {
		result = append(result, mapPedido(p))
	}
	return result, nil
}

func (s *pedidoService) Atualizar(ctx context.Context, id uint, req dto.AtualizarPedidoRequest) (dto.PedidoData, error) {
	if req.Vazio() {
		return dto.PedidoData{}, apierror.BadRequest("Campo(s) inválido(s).")
	}

	var out model.Pedido
	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if _, err := s.repo.FindByID(ctx, tx, id); err != nil {
			return err
		}

		campos := map[string]any{}
		if req.Status != nil {
			campos["status"] = *req.Status
		}
		if req.PeriodoInicio != nil {
			campos["periodo_inicio"] = req.PeriodoInicio.TimePtr()
		}
		if req.PeriodoFim != nil {
			campos["periodo_fim"] = req.PeriodoFim.TimePtr()
		}
		if len(campos) > 0 {
			if err := s.repo.UpdateCampos(ctx, tx, id, campos); err != nil {
				return err
			}
		}

		if req.Produtos != nil {
			if err := s.repo.ReplaceItens(ctx, tx, id, itensFrom(*req.Produtos)); err != nil {
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
		return dto.PedidoData{}, normalizar(err, "pedido")
	}
	return mapPedido(out), nil
}

func (s *pedidoService) Remover(ctx context.Context, id uint) error {
	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if _, err := s.repo.FindByID(ctx, tx, id); err != nil {
			return err
		}
		return s.repo.Delete(ctx, tx, id)
	})
	if err != nil {
		return normalizar(err, "pedido")
	}
	return nil
}
