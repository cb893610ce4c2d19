package missaorepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"commitchronicles/internal/domain"
	apperror "commitchronicles/internal/errors"
	"commitchronicles/internal/pkg/logger"
)

// MissaoRepository implementa a interface domain.MissaoRepository sobre a
// coleção "missoes" do MongoDB. O título é a chave natural das operações.
type MissaoRepository struct {
	collection *mongo.Collection
	dbTimeout  time.Duration
	logger     logger.Logger
}

// NewMissaoRepository cria uma nova instância do MissaoRepository.
func NewMissaoRepository(db *mongo.Database, dbTimeout time.Duration, logger logger.Logger) *MissaoRepository {
	return &MissaoRepository{
		collection: db.Collection("missoes"),
		dbTimeout:  dbTimeout,
		logger:     logger,
	}
}

// EnsureIndexes cria o índice único do título, que sustenta o uso do título
// como chave natural de busca, atualização e remoção.
func (r *MissaoRepository) EnsureIndexes(ctx context.Context) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.dbTimeout)
	defer cancel()

	_, err := r.collection.Indexes().CreateOne(ctxTimeout, mongo.IndexModel{
		Keys:    bson.D{{Key: "titulo", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("falha ao criar índice único de titulo: %w", err)
	}
	return nil
}

// Save insere uma nova missão. Títulos duplicados violam o índice único e são
// traduzidos para ConflictError (409).
func (r *MissaoRepository) Save(ctx context.Context, missao domain.Missao) (domain.Missao, error) {
	r.logger.Debug("Iniciando Save de missão no repositório.", map[string]interface{}{"titulo": missao.Titulo})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.dbTimeout)
	defer cancel()

	_, err := r.collection.InsertOne(ctxTimeout, missao)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.Missao{}, apperror.NewConflictError(
				fmt.Sprintf("A missão '%s' já está cadastrada.", missao.Titulo),
			)
		}
		r.logger.Error("Falha ao inserir missão no DB.", err)
		return domain.Missao{}, apperror.NewDBError("failed to insert missao", err)
	}

	r.logger.Info("Missão salva com sucesso no repositório.", map[string]interface{}{"titulo": missao.Titulo})
	return missao, nil
}

// FindAll busca todas as missões.
func (r *MissaoRepository) FindAll(ctx context.Context) ([]domain.Missao, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.dbTimeout)
	defer cancel()

	cursor, err := r.collection.Find(ctxTimeout, bson.M{})
	if err != nil {
		r.logger.Error("Falha ao buscar missões no DB.", err)
		return nil, apperror.NewDBError("failed to find missoes", err)
	}

	missoes := []domain.Missao{}
	if err := cursor.All(ctxTimeout, &missoes); err != nil {
		r.logger.Error("Falha ao decodificar missões do cursor.", err)
		return nil, apperror.NewDBError("failed to decode missoes", err)
	}

	return missoes, nil
}

// FindByTitulo busca uma missão pela chave natural.
func (r *MissaoRepository) FindByTitulo(ctx context.Context, titulo string) (domain.Missao, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.dbTimeout)
	defer cancel()

	var missao domain.Missao
	err := r.collection.FindOne(ctxTimeout, bson.M{"titulo": titulo}).Decode(&missao)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Missao{}, apperror.NewNotFoundError("Missão não encontrada.")
		}
		r.logger.Error("Falha ao buscar missão por título no DB.", err)
		return domain.Missao{}, apperror.NewDBError("failed to find missao by titulo", err)
	}

	return missao, nil
}

// UpdateByTitulo aplica um update de campos (título, descrição, comando
// esperado, objetivo e pontos) à missão casada pelo título atual.
// StatusConclusao fica deliberadamente fora do $set.
func (r *MissaoRepository) UpdateByTitulo(ctx context.Context, titulo string, registro domain.MissaoRegistro) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.dbTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"titulo":                registro.Titulo,
		"descricao":             registro.Descricao,
		"comando_esperado":      registro.ComandoEsperado,
		"objetivo":              registro.Objetivo,
		"pontos_de_experiencia": registro.PontosDeExperiencia,
	}}

	resultado, err := r.collection.UpdateOne(ctxTimeout, bson.M{"titulo": titulo}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperror.NewConflictError(
				fmt.Sprintf("A missão '%s' já está cadastrada.", registro.Titulo),
			)
		}
		r.logger.Error("Falha ao atualizar missão no DB.", err)
		return apperror.NewDBError("failed to update missao", err)
	}

	if resultado.MatchedCount == 0 {
		return apperror.NewNotFoundError("Missão não encontrada.")
	}

	if resultado.ModifiedCount == 0 {
		// O documento casou mas nenhum campo mudou de valor.
		return apperror.NewUpdateNotAppliedError("A atualização não foi realizada.")
	}

	r.logger.Info("Missão atualizada no repositório.", map[string]interface{}{"titulo": titulo})
	return nil
}

// DeleteByTitulo remove a missão pela chave natural.
func (r *MissaoRepository) DeleteByTitulo(ctx context.Context, titulo string) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.dbTimeout)
	defer cancel()

	resultado, err := r.collection.DeleteOne(ctxTimeout, bson.M{"titulo": titulo})
	if err != nil {
		r.logger.Error("Falha ao remover missão no DB.", err)
		return apperror.NewDBError("failed to delete missao", err)
	}

	if resultado.DeletedCount == 0 {
		return apperror.NewNotFoundError("Missão não encontrada.")
	}

	r.logger.Info("Missão removida do repositório.", map[string]interface{}{"titulo": titulo})
	return nil
}

// ToggleStatus inverte StatusConclusao numa única operação atômica de
// find-and-modify com pipeline de agregação, retornando o documento já
// atualizado. Dois toggles concorrentes serializam no banco, então cada um
// inverte exatamente uma vez.
func (r *MissaoRepository) ToggleStatus(ctx context.Context, titulo string) (domain.Missao, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.dbTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "status_conclusao", Value: bson.D{{Key: "$not", Value: "$status_conclusao"}}},
		}}},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var missao domain.Missao
	err := r.collection.FindOneAndUpdate(ctxTimeout, bson.M{"titulo": titulo}, pipeline, opts).Decode(&missao)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Missao{}, apperror.NewNotFoundError("Missão não encontrada.")
		}
		r.logger.Error("Falha ao alternar status de conclusão no DB.", err)
		return domain.Missao{}, apperror.NewDBError("failed to toggle status_conclusao", err)
	}

	r.logger.Info("Status de conclusão alternado.", map[string]interface{}{
		"titulo":           missao.Titulo,
		"status_conclusao": missao.StatusConclusao,
	})
	return missao, nil
}
