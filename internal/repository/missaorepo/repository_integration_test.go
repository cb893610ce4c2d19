//go:build integration

package missaorepo_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commitchronicles/internal/domain"
	apperror "commitchronicles/internal/errors"
	"commitchronicles/internal/pkg/database"
	"commitchronicles/internal/pkg/logger"
	"commitchronicles/internal/repository/missaorepo"
)

// newTestRepository conecta num MongoDB real (MONGO_TEST_URI) e devolve um
// repositório sobre um banco descartável, com índices criados e drop no final.
//
//	MONGO_TEST_URI=mongodb://localhost:27017 go test -tags integration ./...
func newTestRepository(t *testing.T) *missaorepo.MissaoRepository {
	t.Helper()

	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI não definida; pulando testes de integração")
	}

	client, err := database.NewMongoClient(uri)
	require.NoError(t, err)

	db := client.Database("commitchronicles_test_" + uuid.NewString()[:8])
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})

	repo := missaorepo.NewMissaoRepository(db, 5*time.Second, logger.NewLogger("error"))
	require.NoError(t, repo.EnsureIndexes(context.Background()))
	return repo
}

func novaMissao(titulo string) domain.Missao {
	return domain.Missao{
		ID:                  uuid.NewString(),
		Titulo:              titulo,
		Descricao:           "Inicialize um repositório Git.",
		ComandoEsperado:     "git init",
		Objetivo:            "Criar o diretório .git",
		PontosDeExperiencia: 10,
		StatusConclusao:     false,
	}
}

// TestIntegracao_Save_Fail_TituloDuplicado testa que o índice único do título
// rejeita a segunda inserção como ConflictError.
func TestIntegracao_Save_Fail_TituloDuplicado(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.Save(ctx, novaMissao("init-repo"))
	require.NoError(t, err)

	_, err = repo.Save(ctx, novaMissao("init-repo"))

	assert.Error(t, err)
	var conflictErr *apperror.ConflictError
	assert.True(t, errors.As(err, &conflictErr))
}

// TestIntegracao_UpdateByTitulo testa o $set de campos preservando o status.
func TestIntegracao_UpdateByTitulo(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	missao := novaMissao("init-repo")
	missao.StatusConclusao = true
	_, err := repo.Save(ctx, missao)
	require.NoError(t, err)

	registro := domain.MissaoRegistro{
		Titulo:              "init-repo",
		Descricao:           "Descrição nova.",
		ComandoEsperado:     "git init .",
		Objetivo:            "Criar o diretório .git",
		PontosDeExperiencia: 20,
	}
	assert.NoError(t, repo.UpdateByTitulo(ctx, "init-repo", registro))

	atualizada, err := repo.FindByTitulo(ctx, "init-repo")
	assert.NoError(t, err)
	assert.Equal(t, "Descrição nova.", atualizada.Descricao)
	assert.Equal(t, 20, atualizada.PontosDeExperiencia)
	// O status de conclusão fica fora do $set e sobrevive à atualização.
	assert.True(t, atualizada.StatusConclusao)
}

// TestIntegracao_UpdateByTitulo_Fail_NotFound testa MatchedCount == 0.
func TestIntegracao_UpdateByTitulo_Fail_NotFound(t *testing.T) {
	repo := newTestRepository(t)

	err := repo.UpdateByTitulo(context.Background(), "fantasma", domain.MissaoRegistro{Titulo: "fantasma"})

	assert.Error(t, err)
	var notFoundErr *apperror.NotFoundError
	assert.True(t, errors.As(err, &notFoundErr))
}

// TestIntegracao_UpdateByTitulo_Fail_SemMudanca testa o documento que casa mas
// não muda nenhum campo (ModifiedCount == 0).
func TestIntegracao_UpdateByTitulo_Fail_SemMudanca(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	missao := novaMissao("init-repo")
	_, err := repo.Save(ctx, missao)
	require.NoError(t, err)

	registro := domain.MissaoRegistro{
		Titulo:              missao.Titulo,
		Descricao:           missao.Descricao,
		ComandoEsperado:     missao.ComandoEsperado,
		Objetivo:            missao.Objetivo,
		PontosDeExperiencia: missao.PontosDeExperiencia,
	}
	err = repo.UpdateByTitulo(ctx, "init-repo", registro)

	assert.Error(t, err)
	var updateErr *apperror.UpdateNotAppliedError
	assert.True(t, errors.As(err, &updateErr))
}

// TestIntegracao_DeleteByTitulo testa a remoção e o 404 da segunda tentativa.
func TestIntegracao_DeleteByTitulo(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.Save(ctx, novaMissao("init-repo"))
	require.NoError(t, err)

	assert.NoError(t, repo.DeleteByTitulo(ctx, "init-repo"))

	err = repo.DeleteByTitulo(ctx, "init-repo")
	var notFoundErr *apperror.NotFoundError
	assert.True(t, errors.As(err, &notFoundErr))
}

// TestIntegracao_ToggleStatus testa o pipeline $not de verdade: duas inversões
// devolvem o documento ao status original.
func TestIntegracao_ToggleStatus(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.Save(ctx, novaMissao("init-repo"))
	require.NoError(t, err)

	primeira, err := repo.ToggleStatus(ctx, "init-repo")
	assert.NoError(t, err)
	assert.True(t, primeira.StatusConclusao)

	segunda, err := repo.ToggleStatus(ctx, "init-repo")
	assert.NoError(t, err)
	assert.False(t, segunda.StatusConclusao)

	// O documento persistido reflete o retorno do find-and-modify.
	lida, err := repo.FindByTitulo(ctx, "init-repo")
	assert.NoError(t, err)
	assert.False(t, lida.StatusConclusao)
}

// TestIntegracao_ToggleStatus_Fail_NotFound testa a inversão de um título
// inexistente.
func TestIntegracao_ToggleStatus_Fail_NotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.ToggleStatus(context.Background(), "fantasma")

	assert.Error(t, err)
	var notFoundErr *apperror.NotFoundError
	assert.True(t, errors.As(err, &notFoundErr))
}
