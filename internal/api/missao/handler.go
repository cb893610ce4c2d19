package missao

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"commitchronicles/internal/domain"
	apperror "commitchronicles/internal/errors"
	"commitchronicles/internal/pkg/logger"
)

// MissaoService define o contrato que o Handler espera da camada de Serviço.
type MissaoService interface {
	Criar(ctx context.Context, registro domain.MissaoRegistro) (domain.Missao, error)
	ObterTodas(ctx context.Context) ([]domain.Missao, error)
	ObterPorTitulo(ctx context.Context, titulo string) (domain.Missao, error)
	Atualizar(ctx context.Context, titulo string, registro domain.MissaoRegistro) (domain.Missao, error)
	Remover(ctx context.Context, titulo string) error
	AlterarStatusConclusao(ctx context.Context, titulo string) (domain.Missao, error)
}

// Handler agrupa todos os métodos de Handler de missão.
type Handler struct {
	Service MissaoService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc MissaoService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// handleServiceResponse processa erros de serviço e envia respostas padronizadas ao cliente.
func (h *Handler) handleServiceResponse(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	if err == nil {
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

// CriarMissaoHandler lida com a requisição POST /v1/missoes.
// @Summary Registra uma nova missão
// @Description Cria uma missão com status de conclusão false, independentemente do payload. Retorna o registro persistido.
// @Tags missoes
// @Accept json
// @Produce json
// @Param registro body domain.MissaoRegistro true "Dados da missão"
// @Success 201 {object} domain.Missao "Missão criada"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 409 {object} domain.ErrorResponse "Título já cadastrado"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /missoes [post]
func (h *Handler) CriarMissaoHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var registro domain.MissaoRegistro
	if err := json.NewDecoder(r.Body).Decode(&registro); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload JSON inválido."), http.StatusCreated)
		return
	}

	novaMissao, err := h.Service.Criar(ctx, registro)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusCreated)
		return
	}

	// O título é chave natural e pode conter espaços; escapamos para o header.
	w.Header().Set("Location", fmt.Sprintf("/v1/missoes/%s", url.PathEscape(novaMissao.Titulo)))
	h.handleServiceResponse(w, r, novaMissao, nil, http.StatusCreated)
}

// ObterMissoesHandler lida com a requisição GET /v1/missoes.
// @Summary Lista todas as missões
// @Tags missoes
// @Produce json
// @Success 200 {array} domain.Missao
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /missoes [get]
func (h *Handler) ObterMissoesHandler(w http.ResponseWriter, r *http.Request) {
	missoes, err := h.Service.ObterTodas(r.Context())
	h.handleServiceResponse(w, r, missoes, err, http.StatusOK)
}

// ObterMissaoHandler lida com a requisição GET /v1/missoes/{titulo}.
// @Summary Busca uma missão pelo título
// @Tags missoes
// @Produce json
// @Param titulo path string true "Título da missão (chave natural)"
// @Success 200 {object} domain.Missao
// @Failure 404 {object} domain.ErrorResponse "Missão não encontrada"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /missoes/{titulo} [get]
func (h *Handler) ObterMissaoHandler(w http.ResponseWriter, r *http.Request) {
	titulo := r.PathValue("titulo")

	missao, err := h.Service.ObterPorTitulo(r.Context(), titulo)
	h.handleServiceResponse(w, r, missao, err, http.StatusOK)
}

// AtualizarMissaoHandler lida com a requisição PUT /v1/missoes/{titulo}.
// @Summary Atualiza os campos de uma missão
// @Description Atualiza título, descrição, comando esperado, objetivo e pontos. O status de conclusão não é alterado por esta operação.
// @Tags missoes
// @Accept json
// @Produce json
// @Param titulo path string true "Título atual da missão"
// @Param registro body domain.MissaoRegistro true "Novos dados da missão"
// @Success 200 {object} domain.Missao "Missão atualizada"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 404 {object} domain.ErrorResponse "Missão não encontrada"
// @Failure 500 {object} domain.ErrorResponse "Atualização sem efeito ou erro interno"
// @Router /missoes/{titulo} [put]
func (h *Handler) AtualizarMissaoHandler(w http.ResponseWriter, r *http.Request) {
	titulo := r.PathValue("titulo")

	var registro domain.MissaoRegistro
	if err := json.NewDecoder(r.Body).Decode(&registro); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload JSON inválido."), http.StatusOK)
		return
	}

	missaoAtualizada, err := h.Service.Atualizar(r.Context(), titulo, registro)
	h.handleServiceResponse(w, r, missaoAtualizada, err, http.StatusOK)
}

// RemoverMissaoHandler lida com a requisição DELETE /v1/missoes/{titulo}.
// @Summary Remove uma missão
// @Tags missoes
// @Param titulo path string true "Título da missão"
// @Success 204 "Missão removida"
// @Failure 404 {object} domain.ErrorResponse "Missão não encontrada"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /missoes/{titulo} [delete]
func (h *Handler) RemoverMissaoHandler(w http.ResponseWriter, r *http.Request) {
	titulo := r.PathValue("titulo")

	err := h.Service.Remover(r.Context(), titulo)
	h.handleServiceResponse(w, r, nil, err, http.StatusNoContent)
}

// AlterarStatusConclusaoHandler lida com a requisição PATCH /v1/missoes/{titulo}/concluir.
// @Summary Inverte o status de conclusão de uma missão
// @Description Alterna StatusConclusao atomicamente e retorna o registro pós-atualização. Duas chamadas seguidas devolvem a missão ao status original.
// @Tags missoes
// @Produce json
// @Param titulo path string true "Título da missão"
// @Success 200 {object} domain.Missao "Missão com o status invertido"
// @Failure 404 {object} domain.ErrorResponse "Missão não encontrada"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /missoes/{titulo}/concluir [patch]
func (h *Handler) AlterarStatusConclusaoHandler(w http.ResponseWriter, r *http.Request) {
	titulo := r.PathValue("titulo")

	missao, err := h.Service.AlterarStatusConclusao(r.Context(), titulo)
	h.handleServiceResponse(w, r, missao, err, http.StatusOK)
}
