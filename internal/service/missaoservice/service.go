package missaoservice

import (
	"context"

	"github.com/google/uuid"

	"commitchronicles/internal/domain"
	apperror "commitchronicles/internal/errors"
	"commitchronicles/internal/pkg/logger"
)

// Service implementa a interface domain.MissaoService.
type Service struct {
	repo   domain.MissaoRepository
	logger logger.Logger
}

// NewService cria uma nova instância do serviço de Missão.
func NewService(repo domain.MissaoRepository, logger logger.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Criar registra uma nova missão. O status de conclusão é forçado para false
// independentemente do payload: toda missão nasce não concluída. Retorna o
// registro persistido, não o eco da entrada.
func (s *Service) Criar(ctx context.Context, registro domain.MissaoRegistro) (domain.Missao, error) {
	if registro.Titulo == "" {
		return domain.Missao{}, apperror.NewValidationError("O título da missão é obrigatório.")
	}
	if registro.ComandoEsperado == "" {
		return domain.Missao{}, apperror.NewValidationError("O comando esperado da missão é obrigatório.")
	}

	novaMissao := domain.Missao{
		ID:                  uuid.NewString(),
		Titulo:              registro.Titulo,
		Descricao:           registro.Descricao,
		ComandoEsperado:     registro.ComandoEsperado,
		Objetivo:            registro.Objetivo,
		PontosDeExperiencia: registro.PontosDeExperiencia,
		StatusConclusao:     false,
	}

	missao, err := s.repo.Save(ctx, novaMissao)
	if err != nil {
		return domain.Missao{}, err
	}

	s.logger.Info("Nova missão registrada.", map[string]interface{}{"titulo": missao.Titulo})
	return missao, nil
}

// ObterTodas retorna todas as missões.
func (s *Service) ObterTodas(ctx context.Context) ([]domain.Missao, error) {
	return s.repo.FindAll(ctx)
}

// ObterPorTitulo retorna uma missão pela chave natural.
func (s *Service) ObterPorTitulo(ctx context.Context, titulo string) (domain.Missao, error) {
	if titulo == "" {
		return domain.Missao{}, apperror.NewValidationError("O título da missão é obrigatório.")
	}

	return s.repo.FindByTitulo(ctx, titulo)
}

// Atualizar aplica o update de campos na missão casada pelo título e retorna
// o registro persistido após a atualização. O status de conclusão nunca é
// alterado por esta operação.
func (s *Service) Atualizar(ctx context.Context, titulo string, registro domain.MissaoRegistro) (domain.Missao, error) {
	if titulo == "" || registro.Titulo == "" {
		return domain.Missao{}, apperror.NewValidationError("O título da missão é obrigatório.")
	}

	if err := s.repo.UpdateByTitulo(ctx, titulo, registro); err != nil {
		return domain.Missao{}, err
	}

	// Relê pelo título novo para responder com o estado autoritativo do banco.
	return s.repo.FindByTitulo(ctx, registro.Titulo)
}

// Remover exclui a missão pela chave natural.
func (s *Service) Remover(ctx context.Context, titulo string) error {
	if titulo == "" {
		return apperror.NewValidationError("O título da missão é obrigatório.")
	}

	return s.repo.DeleteByTitulo(ctx, titulo)
}

// AlterarStatusConclusao inverte o status de conclusão da missão e retorna o
// registro já atualizado. A inversão é atômica no repositório, então dois
// toggles em sequência devolvem a missão ao status original.
func (s *Service) AlterarStatusConclusao(ctx context.Context, titulo string) (domain.Missao, error) {
	if titulo == "" {
		return domain.Missao{}, apperror.NewValidationError("O título da missão é obrigatório.")
	}

	return s.repo.ToggleStatus(ctx, titulo)
}
