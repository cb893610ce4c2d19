package jogadorservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"commitchronicles/internal/domain"
	apperror "commitchronicles/internal/errors"
	"commitchronicles/internal/pkg/logger"
)

// TokenService é o contrato da camada de token (internal/pkg/token).
type TokenService interface {
	GenerateToken(jogador domain.Jogador) (string, error)
}

// Service implementa a interface domain.JogadorService.
type Service struct {
	repo     domain.JogadorRepository
	tokenSvc TokenService
	logger   logger.Logger
}

// NewService cria uma nova instância do serviço de Jogador, injetando o
// Repositório, o serviço de Token e o Logger.
func NewService(repo domain.JogadorRepository, tokenSvc TokenService, logger logger.Logger) *Service {
	return &Service{
		repo:     repo,
		tokenSvc: tokenSvc,
		logger:   logger,
	}
}

// Login autentica um jogador e emite um JWT.
// A busca casa e-mail e nome simultaneamente; se o jogador tiver uma senha
// cadastrada, ela também é exigida e conferida contra o hash.
func (s *Service) Login(ctx context.Context, registro domain.JogadorRegistro) (string, error) {
	// 1. Validação básica
	if registro.UserEmail == "" || registro.UserName == "" {
		return "", apperror.NewUnauthorizedError("Credenciais inválidas. Tente novamente.")
	}

	// 2. Buscar o jogador pelas credenciais de identidade
	jogador, err := s.repo.FindByCredenciais(ctx, registro.UserEmail, registro.UserName)
	if err != nil {
		// NotFound vira Unauthorized para não dar dicas a invasores.
		var notFoundErr *apperror.NotFoundError
		if errors.As(err, &notFoundErr) {
			return "", apperror.NewUnauthorizedError("Credenciais inválidas. Tente novamente.")
		}
		return "", err
	}

	// 3. Conferir a senha quando o jogador tem uma cadastrada
	if jogador.SenhaHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(jogador.SenhaHash), []byte(registro.Senha)); err != nil {
			return "", apperror.NewUnauthorizedError("Credenciais inválidas. Tente novamente.")
		}
	}

	// 4. Gerar o JWT
	tokenString, err := s.tokenSvc.GenerateToken(jogador)
	if err != nil {
		return "", apperror.NewInternalError("Falha ao gerar token de autenticação.", err)
	}

	return tokenString, nil
}

// Adicionar registra um novo jogador.
// A unicidade do e-mail é garantida pelo índice único do repositório: a
// inserção é uma única ida ao banco e a duplicata volta como ConflictError.
func (s *Service) Adicionar(ctx context.Context, registro domain.JogadorRegistro) (domain.Jogador, error) {
	// 1. Validação básica
	if registro.UserName == "" || registro.UserEmail == "" {
		return domain.Jogador{}, apperror.NewValidationError("userName e userEmail são obrigatórios.")
	}

	// 2. Hashing da senha, quando informada
	senhaHash := ""
	if registro.Senha != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(registro.Senha), bcrypt.DefaultCost)
		if err != nil {
			return domain.Jogador{}, apperror.NewInternalError("Falha ao gerar hash da senha.", err)
		}
		senhaHash = string(hash)
	}

	// 3. Montagem da entidade com os valores iniciais de progressão
	novoJogador := domain.Jogador{
		ID:                  uuid.NewString(),
		UserName:            registro.UserName,
		UserEmail:           registro.UserEmail,
		SenhaHash:           senhaHash,
		Nivel:               1,
		PontosDeExperiencia: 0,
		MissoesConcluidas:   []string{},
	}

	// 4. Persistência
	jogador, err := s.repo.Save(ctx, novoJogador)
	if err != nil {
		return domain.Jogador{}, err
	}

	s.logger.Info("Novo jogador registrado.", map[string]interface{}{"jogador_id": jogador.ID})
	return jogador, nil
}

// ObterTodos retorna todos os jogadores na projeção pública canônica.
func (s *Service) ObterTodos(ctx context.Context) ([]domain.Jogador, error) {
	return s.repo.FindAll(ctx)
}

// ObterPorID retorna um jogador pelo identificador.
func (s *Service) ObterPorID(ctx context.Context, id string) (domain.Jogador, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.Jogador{}, apperror.NewValidationError("O ID do jogador deve ser um UUID válido.")
	}

	return s.repo.FindByID(ctx, id)
}

// Atualizar substitui integralmente o registro do jogador no identificador.
// A substituição parte do payload de entrada com os valores iniciais de
// progressão. O hash de senha armazenado é preservado quando o payload não
// traz uma senha nova: a atualização é aberta e não pode remover a senha de
// um jogador.
func (s *Service) Atualizar(ctx context.Context, id string, registro domain.JogadorRegistro) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperror.NewValidationError("O ID do jogador deve ser um UUID válido.")
	}
	if registro.UserName == "" || registro.UserEmail == "" {
		return apperror.NewValidationError("userName e userEmail são obrigatórios.")
	}

	atual, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	senhaHash := atual.SenhaHash
	if registro.Senha != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(registro.Senha), bcrypt.DefaultCost)
		if err != nil {
			return apperror.NewInternalError("Falha ao gerar hash da senha.", err)
		}
		senhaHash = string(hash)
	}

	jogadorAtualizado := domain.Jogador{
		ID:                  id,
		UserName:            registro.UserName,
		UserEmail:           registro.UserEmail,
		SenhaHash:           senhaHash,
		Nivel:               1,
		PontosDeExperiencia: 0,
		MissoesConcluidas:   []string{},
	}

	return s.repo.Replace(ctx, jogadorAtualizado)
}

// Remover exclui o jogador pelo identificador.
func (s *Service) Remover(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperror.NewValidationError("O ID do jogador deve ser um UUID válido.")
	}

	return s.repo.Delete(ctx, id)
}
