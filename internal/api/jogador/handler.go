package jogador

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"commitchronicles/internal/domain"
	apperror "commitchronicles/internal/errors"
	"commitchronicles/internal/pkg/logger"
	"commitchronicles/internal/pkg/middleware"
)

// JogadorService define o contrato que o Handler espera da camada de Serviço.
type JogadorService interface {
	Login(ctx context.Context, registro domain.JogadorRegistro) (string, error)
	Adicionar(ctx context.Context, registro domain.JogadorRegistro) (domain.Jogador, error)
	ObterTodos(ctx context.Context) ([]domain.Jogador, error)
	ObterPorID(ctx context.Context, id string) (domain.Jogador, error)
	Atualizar(ctx context.Context, id string, registro domain.JogadorRegistro) error
	Remover(ctx context.Context, id string) error
}

// LoginResponse é o corpo de resposta do login bem-sucedido.
type LoginResponse struct {
	Mensagem string `json:"mensagem" example:"Login realizado com sucesso."`
	Token    string `json:"token"`
}

// Handler agrupa todos os métodos de Handler do jogador.
type Handler struct {
	Service JogadorService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc JogadorService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// handleServiceResponse processa erros de serviço e envia respostas padronizadas ao cliente.
func (h *Handler) handleServiceResponse(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	if err == nil {
		// Sucesso
		if data == nil {
			w.WriteHeader(successStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(successStatus)
		if jsonErr := json.NewEncoder(w).Encode(data); jsonErr != nil {
			h.Logger.Error("Falha ao codificar JSON de resposta", jsonErr)
		}
		return
	}

	// TRATAMENTO DE ERROS
	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= 500 {
		h.Logger.Error(fmt.Sprintf("Erro de Servidor: %s", category), err)
	} else {
		h.Logger.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category), map[string]interface{}{"path": r.URL.Path})
	}

	errorResponse := domain.ErrorResponse{
		Code:     status,
		Category: category,
		Message:  message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse)
}

// LoginHandler lida com a requisição POST /v1/jogadores/login.
// @Summary Autentica um jogador e retorna um JWT
// @Description Casa userEmail e userName (e a senha, se o jogador tiver uma cadastrada) e emite um bearer token com validade de 1h.
// @Tags jogadores
// @Accept json
// @Produce json
// @Param credenciais body domain.JogadorRegistro true "Credenciais do jogador"
// @Success 200 {object} LoginResponse "Token JWT emitido"
// @Failure 401 {object} domain.ErrorResponse "Credenciais inválidas"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /jogadores/login [post]
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var registro domain.JogadorRegistro
	if err := json.NewDecoder(r.Body).Decode(&registro); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload JSON inválido."), http.StatusOK)
		return
	}

	token, err := h.Service.Login(ctx, registro)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	response := LoginResponse{
		Mensagem: "Login realizado com sucesso.",
		Token:    token,
	}
	h.handleServiceResponse(w, r, response, nil, http.StatusOK)
}

// AdicionarJogadorHandler lida com a requisição POST /v1/jogadores.
// @Summary Registra um novo jogador
// @Description Cria um jogador com nível 1 e 0 pontos de experiência. O e-mail deve ser único.
// @Tags jogadores
// @Accept json
// @Produce json
// @Param registro body domain.JogadorRegistro true "Dados do jogador (senha opcional)"
// @Success 201 {object} domain.Jogador "Jogador criado; header Location aponta para o recurso"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 409 {object} domain.ErrorResponse "E-mail já cadastrado"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /jogadores [post]
func (h *Handler) AdicionarJogadorHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var registro domain.JogadorRegistro
	if err := json.NewDecoder(r.Body).Decode(&registro); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload JSON inválido."), http.StatusCreated)
		return
	}

	novoJogador, err := h.Service.Adicionar(ctx, registro)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusCreated)
		return
	}

	// Location aponta para o get-by-id do recurso recém-criado.
	w.Header().Set("Location", fmt.Sprintf("/v1/jogadores/%s", novoJogador.ID))
	h.handleServiceResponse(w, r, novoJogador, nil, http.StatusCreated)
}

// ObterJogadoresHandler lida com a requisição GET /v1/jogadores.
// @Summary Lista todos os jogadores
// @Tags jogadores
// @Produce json
// @Success 200 {array} domain.Jogador
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /jogadores [get]
func (h *Handler) ObterJogadoresHandler(w http.ResponseWriter, r *http.Request) {
	jogadores, err := h.Service.ObterTodos(r.Context())
	h.handleServiceResponse(w, r, jogadores, err, http.StatusOK)
}

// ObterJogadorPorIDHandler lida com a requisição GET /v1/jogadores/{id}.
// @Summary Busca um jogador pelo ID
// @Tags jogadores
// @Produce json
// @Param id path string true "ID do jogador (UUID)"
// @Success 200 {object} domain.Jogador
// @Failure 404 {object} domain.ErrorResponse "Jogador não encontrado"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /jogadores/{id} [get]
func (h *Handler) ObterJogadorPorIDHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	jogador, err := h.Service.ObterPorID(r.Context(), id)
	h.handleServiceResponse(w, r, jogador, err, http.StatusOK)
}

// ObterMeuPerfilHandler lida com a requisição GET /v1/jogadores/me (autenticada).
// @Summary Retorna o perfil do jogador autenticado
// @Description Usa as claims do bearer token validado pelo middleware de autenticação.
// @Tags jogadores
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.Jogador
// @Failure 401 {object} domain.ErrorResponse "Token ausente ou inválido"
// @Failure 404 {object} domain.ErrorResponse "Jogador não encontrado"
// @Router /jogadores/me [get]
func (h *Handler) ObterMeuPerfilHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetJogadorClaimsFromContext(r.Context())
	if !ok {
		h.handleServiceResponse(w, r, nil, apperror.NewUnauthorizedError("Autorização necessária. Token não processado."), http.StatusOK)
		return
	}

	jogador, err := h.Service.ObterPorID(r.Context(), claims.UserID)
	h.handleServiceResponse(w, r, jogador, err, http.StatusOK)
}

// AtualizarJogadorHandler lida com a requisição PUT /v1/jogadores/{id}.
// @Summary Atualiza um jogador (substituição integral)
// @Tags jogadores
// @Accept json
// @Param id path string true "ID do jogador (UUID)"
// @Param registro body domain.JogadorRegistro true "Novos dados do jogador"
// @Success 204 "Jogador atualizado"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 404 {object} domain.ErrorResponse "Jogador não encontrado"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /jogadores/{id} [put]
func (h *Handler) AtualizarJogadorHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var registro domain.JogadorRegistro
	if err := json.NewDecoder(r.Body).Decode(&registro); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload JSON inválido."), http.StatusNoContent)
		return
	}

	err := h.Service.Atualizar(r.Context(), id, registro)
	h.handleServiceResponse(w, r, nil, err, http.StatusNoContent)
}

// RemoverJogadorHandler lida com a requisição DELETE /v1/jogadores/{id}.
// @Summary Remove um jogador
// @Tags jogadores
// @Param id path string true "ID do jogador (UUID)"
// @Success 204 "Jogador removido"
// @Failure 404 {object} domain.ErrorResponse "Jogador não encontrado"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /jogadores/{id} [delete]
func (h *Handler) RemoverJogadorHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	err := h.Service.Remover(r.Context(), id)
	h.handleServiceResponse(w, r, nil, err, http.StatusNoContent)
}
