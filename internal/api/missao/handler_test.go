package missao_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"commitchronicles/internal/api/missao"
	"commitchronicles/internal/domain"
	apperror "commitchronicles/internal/errors"
	"commitchronicles/internal/pkg/logger"
)

// MockMissaoService é o mock da camada de serviço vista pelo Handler.
type MockMissaoService struct {
	mock.Mock
}

func (m *MockMissaoService) Criar(ctx context.Context, registro domain.MissaoRegistro) (domain.Missao, error) {
	args := m.Called(ctx, registro)
	return args.Get(0).(domain.Missao), args.Error(1)
}

func (m *MockMissaoService) ObterTodas(ctx context.Context) ([]domain.Missao, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Missao), args.Error(1)
}

func (m *MockMissaoService) ObterPorTitulo(ctx context.Context, titulo string) (domain.Missao, error) {
	args := m.Called(ctx, titulo)
	return args.Get(0).(domain.Missao), args.Error(1)
}

func (m *MockMissaoService) Atualizar(ctx context.Context, titulo string, registro domain.MissaoRegistro) (domain.Missao, error) {
	args := m.Called(ctx, titulo, registro)
	return args.Get(0).(domain.Missao), args.Error(1)
}

func (m *MockMissaoService) Remover(ctx context.Context, titulo string) error {
	args := m.Called(ctx, titulo)
	return args.Error(0)
}

func (m *MockMissaoService) AlterarStatusConclusao(ctx context.Context, titulo string) (domain.Missao, error) {
	args := m.Called(ctx, titulo)
	return args.Get(0).(domain.Missao), args.Error(1)
}

// newTestMux registra as rotas de missão num ServeMux para que os handlers
// recebam os path values como em produção.
func newTestMux(h *missao.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/missoes", h.CriarMissaoHandler)
	mux.HandleFunc("GET /v1/missoes", h.ObterMissoesHandler)
	mux.HandleFunc("GET /v1/missoes/{titulo}", h.ObterMissaoHandler)
	mux.HandleFunc("PUT /v1/missoes/{titulo}", h.AtualizarMissaoHandler)
	mux.HandleFunc("DELETE /v1/missoes/{titulo}", h.RemoverMissaoHandler)
	mux.HandleFunc("PATCH /v1/missoes/{titulo}/concluir", h.AlterarStatusConclusaoHandler)
	return mux
}

// TestCriarMissaoHandler_Success testa o POST de missão com Location e corpo persistido.
func TestCriarMissaoHandler_Success(t *testing.T) {
	mockSvc := new(MockMissaoService)
	h := missao.NewHandler(mockSvc, logger.NewLogger("error"))

	criada := domain.Missao{
		ID:                  "id-1",
		Titulo:              "init-repo",
		ComandoEsperado:     "git init",
		PontosDeExperiencia: 10,
		StatusConclusao:     false,
	}
	mockSvc.On("Criar", mock.Anything, mock.Anything).Return(criada, nil)

	body := `{"titulo":"init-repo","comandoEsperado":"git init","pontosDeExperiencia":10,"statusConclusao":true}`
	req := httptest.NewRequest(http.MethodPost, "/v1/missoes", strings.NewReader(body))
	rec := httptest.NewRecorder()

	newTestMux(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/v1/missoes/init-repo", rec.Header().Get("Location"))

	var resposta domain.Missao
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resposta))
	assert.False(t, resposta.StatusConclusao)
	assert.Equal(t, "init-repo", resposta.Titulo)
	mockSvc.AssertExpectations(t)
}

// TestCriarMissaoHandler_LocationEscapado testa que títulos com espaços e
// caracteres reservados produzem um Location escapado válido.
func TestCriarMissaoHandler_LocationEscapado(t *testing.T) {
	mockSvc := new(MockMissaoService)
	h := missao.NewHandler(mockSvc, logger.NewLogger("error"))

	criada := domain.Missao{
		ID:              "id-2",
		Titulo:          "primeiro commit/push",
		ComandoEsperado: "git push",
	}
	mockSvc.On("Criar", mock.Anything, mock.Anything).Return(criada, nil)

	body := `{"titulo":"primeiro commit/push","comandoEsperado":"git push"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/missoes", strings.NewReader(body))
	rec := httptest.NewRecorder()

	newTestMux(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/v1/missoes/primeiro%20commit%2Fpush", rec.Header().Get("Location"))
	mockSvc.AssertExpectations(t)
}

// TestCriarMissaoHandler_Fail_PayloadInvalido testa JSON malformado.
func TestCriarMissaoHandler_Fail_PayloadInvalido(t *testing.T) {
	mockSvc := new(MockMissaoService)
	h := missao.NewHandler(mockSvc, logger.NewLogger("error"))

	req := httptest.NewRequest(http.MethodPost, "/v1/missoes", strings.NewReader(`{nao é json`))
	rec := httptest.NewRecorder()

	newTestMux(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockSvc.AssertNotCalled(t, "Criar")
}

// TestObterMissaoHandler_Fail_NotFound testa o 404 com corpo de erro padronizado.
func TestObterMissaoHandler_Fail_NotFound(t *testing.T) {
	mockSvc := new(MockMissaoService)
	h := missao.NewHandler(mockSvc, logger.NewLogger("error"))

	mockSvc.On("ObterPorTitulo", mock.Anything, "fantasma").
		Return(domain.Missao{}, apperror.NewNotFoundError("Missão não encontrada."))

	req := httptest.NewRequest(http.MethodGet, "/v1/missoes/fantasma", nil)
	rec := httptest.NewRecorder()

	newTestMux(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resposta domain.ErrorResponse
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resposta))
	assert.Equal(t, http.StatusNotFound, resposta.Code)
	assert.Equal(t, "NOT_FOUND", resposta.Category)
}

// TestAtualizarMissaoHandler_Success testa o PUT retornando o registro atualizado.
func TestAtualizarMissaoHandler_Success(t *testing.T) {
	mockSvc := new(MockMissaoService)
	h := missao.NewHandler(mockSvc, logger.NewLogger("error"))

	atualizada := domain.Missao{ID: "id-1", Titulo: "init-repo", Descricao: "nova", ComandoEsperado: "git init"}
	mockSvc.On("Atualizar", mock.Anything, "init-repo", mock.Anything).Return(atualizada, nil)

	body := `{"titulo":"init-repo","descricao":"nova","comandoEsperado":"git init"}`
	req := httptest.NewRequest(http.MethodPut, "/v1/missoes/init-repo", strings.NewReader(body))
	rec := httptest.NewRecorder()

	newTestMux(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resposta domain.Missao
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resposta))
	assert.Equal(t, "nova", resposta.Descricao)
	mockSvc.AssertExpectations(t)
}

// TestRemoverMissaoHandler_Success testa o DELETE com 204 sem corpo.
func TestRemoverMissaoHandler_Success(t *testing.T) {
	mockSvc := new(MockMissaoService)
	h := missao.NewHandler(mockSvc, logger.NewLogger("error"))

	mockSvc.On("Remover", mock.Anything, "init-repo").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/missoes/init-repo", nil)
	rec := httptest.NewRecorder()

	newTestMux(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

// TestAlterarStatusConclusaoHandler_Success testa o PATCH de conclusão.
func TestAlterarStatusConclusaoHandler_Success(t *testing.T) {
	mockSvc := new(MockMissaoService)
	h := missao.NewHandler(mockSvc, logger.NewLogger("error"))

	concluida := domain.Missao{ID: "id-1", Titulo: "init-repo", ComandoEsperado: "git init", StatusConclusao: true}
	mockSvc.On("AlterarStatusConclusao", mock.Anything, "init-repo").Return(concluida, nil)

	req := httptest.NewRequest(http.MethodPatch, "/v1/missoes/init-repo/concluir", nil)
	rec := httptest.NewRecorder()

	newTestMux(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resposta domain.Missao
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resposta))
	assert.True(t, resposta.StatusConclusao)
}

// TestAlterarStatusConclusaoHandler_Fail_NotFound testa o PATCH de missão inexistente.
func TestAlterarStatusConclusaoHandler_Fail_NotFound(t *testing.T) {
	mockSvc := new(MockMissaoService)
	h := missao.NewHandler(mockSvc, logger.NewLogger("error"))

	mockSvc.On("AlterarStatusConclusao", mock.Anything, "fantasma").
		Return(domain.Missao{}, apperror.NewNotFoundError("Missão não encontrada."))

	req := httptest.NewRequest(http.MethodPatch, "/v1/missoes/fantasma/concluir", nil)
	rec := httptest.NewRecorder()

	newTestMux(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// TestObterMissoesHandler_Success testa a listagem.
func TestObterMissoesHandler_Success(t *testing.T) {
	mockSvc := new(MockMissaoService)
	h := missao.NewHandler(mockSvc, logger.NewLogger("error"))

	missoes := []domain.Missao{
		{ID: "id-1", Titulo: "init-repo", ComandoEsperado: "git init"},
		{ID: "id-2", Titulo: "primeiro-commit", ComandoEsperado: "git commit"},
	}
	mockSvc.On("ObterTodas", mock.Anything).Return(missoes, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/missoes", nil)
	rec := httptest.NewRecorder()

	newTestMux(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resposta []domain.Missao
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resposta))
	assert.Len(t, resposta, 2)
}
