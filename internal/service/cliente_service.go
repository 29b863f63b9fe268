package service

import (
	"context"

	"github.com/Henrique42/mercado-api/internal/apierror"
	"github.com/Henrique42/mercado-api/internal/dto"
	"github.com/Henrique42/mercado-api/internal/model"
	"github.com/Henrique42/mercado-api/internal/repository"

	"gorm.io/gorm"
)

// ClienteService defines business operations for clientes.
type ClienteService interface {
	Criar(ctx context.Context, req dto.CriarClienteRequest) (dto.ClienteData, error)
	Obter(ctx context.Context, id uint) (dto.ClienteData, error)
	Listar(ctx context.Context, q dto.ListQuery) ([]dto.ClienteData, error)
	Atualizar(ctx context.Context, id uint, req dto.AtualizarClienteRequest) (dto.ClienteData, error)
	Remover(ctx context.Context, id uint) error
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func mapCliente(c model.Cliente) dto.ClienteData {
	return dto.ClienteData{
		ID:    c.ID,
		Nome:  c.Nome,
		Email: c.Email,
		CPF:   c.CPF,
		Ativo: c.Ativo,
	}
}

func (s *clienteService) Criar(ctx context.Context, req dto.CriarClienteRequest) (dto.ClienteData, error) {
	c := model.Cliente{
		Nome:  req.Nome,
		Email: req.Email,
		CPF:   req.CPF,
		Ativo: true,
	}
	if err := s.repo.Create(ctx, nil, &c); err != nil {
		return dto.ClienteData{}, normalizar(err, "cliente")
	}
	return mapCliente(c), nil
}

func (s *clienteService) Obter(ctx context.Context, id uint) (dto.ClienteData, error) {
	c, err := s.repo.FindByID(ctx, nil, id)
	if err != nil {
		return dto.ClienteData{}, normalizar(err, "cliente")
	}
	return mapCliente(*c), nil
}

func (s *clienteService) Listar(ctx context.Context, q dto.ListQuery) ([]dto.ClienteData, error) {
	clientes, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, normalizar(err, "cliente")
	}
	result := make([]dto.ClienteData, 0, len(clientes))
	for _, c := range clientes {
		result = append(result, mapCliente(c))
	}
	return result, nil
}

func (s *clienteService) Atualizar(ctx context.Context, id uint, req dto.AtualizarClienteRequest) (dto.ClienteData, error) {
	if req.Vazio() {
		return dto.ClienteData{}, apierror.BadRequest("Campo(s) inválido(s).")
	}

	var out model.Cliente
	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if _, err := s.repo.FindByID(ctx, tx, id); err != nil {
			return err
		}

		campos := map[string]any{}
		if req.Nome != nil {
			campos["nome"] = *req.Nome
		}
		if req.Email != nil {
			campos["email"] = *req.Email
		}
		if req.CPF != nil {
			campos["cpf"] = *req.CPF
		}
		if req.Ativo != nil {
			campos["ativo"] = *req.Ativo
		}
		if err := s.repo.UpdateCampos(ctx, tx, id, campos); err != nil {
			return err
		}

		atualizado, err := s.repo.FindByID(ctx, tx, id)
		if err != nil {
			return err
		}
		out = *atualizado
		return nil
	})
	if err != nil {
		return dto.ClienteData{}, normalizar(err, "cliente")
	}
	return mapCliente(out), nil
}

func (s *clienteService) Remover(ctx context.Context, id uint) error {
	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if _, err := s.repo.FindByID(ctx, tx, id); err != nil {
			return err
		}
		return s.repo.Delete(ctx, tx, id)
	})
	if err != nil {
		return normalizar(err, "cliente")
	}
	return nil
}
