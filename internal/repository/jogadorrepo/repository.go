package jogadorrepo

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

// JogadorRepository implementa a interface domain.JogadorRepository sobre a
// coleção "jogadores" do MongoDB.
type JogadorRepository struct {
	collection *mongo.Collection
	dbTimeout  time.Duration
	logger     logger.Logger
}

// NewJogadorRepository cria uma nova instância do JogadorRepository.
func NewJogadorRepository(db *mongo.Database, dbTimeout time.Duration, logger logger.Logger) *JogadorRepository {
	return &JogadorRepository{
		collection: db.Collection("jogadores"),
		dbTimeout:  dbTimeout,
		logger:     logger,
	}
}

// EnsureIndexes cria o índice único de e-mail. A unicidade do e-mail é
// garantida pelo banco, não por um read-then-check: duas criações concorrentes
// com o mesmo e-mail não podem ambas inserir.
func (r *JogadorRepository) EnsureIndexes(ctx context.Context) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.dbTimeout)
	defer cancel()

	_, err := r.collection.Indexes().CreateOne(ctxTimeout, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("falha ao criar índice único de user_email: %w", err)
	}
	return nil
}

// Save insere um novo jogador. Violações do índice único de e-mail são
// traduzidas para ConflictError (409).
func (r *JogadorRepository) Save(ctx context.Context, jogador domain.Jogador) (domain.Jogador, error) {
	r.logger.Debug("Iniciando Save de jogador no repositório.", map[string]interface{}{"user_email": jogador.UserEmail})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.dbTimeout)
	defer cancel()

	_, err := r.collection.InsertOne(ctxTimeout, jogador)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			r.logger.Debug("E-mail de jogador já cadastrado.", map[string]interface{}{"user_email": jogador.UserEmail})
			return domain.Jogador{}, apperror.NewConflictError(
				fmt.Sprintf("O e-mail '%s' já está em uso.", jogador.UserEmail),
			)
		}
		r.logger.Error("Falha ao inserir jogador no DB.", err)
		return domain.Jogador{}, apperror.NewDBError("failed to insert jogador", err)
	}

	r.logger.Info("Jogador salvo com sucesso no repositório.", map[string]interface{}{"jogador_id": jogador.ID})
	return jogador, nil
}

// FindAll busca todos os jogadores.
func (r *JogadorRepository) FindAll(ctx context.Context) ([]domain.Jogador, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.dbTimeout)
	defer cancel()

	cursor, err := r.collection.Find(ctxTimeout, bson.M{})
	if err != nil {
		r.logger.Error("Falha ao buscar jogadores no DB.", err)
		return nil, apperror.NewDBError("failed to find jogadores", err)
	}

	jogadores := []domain.Jogador{}
	if err := cursor.All(ctxTimeout, &jogadores); err != nil {
		r.logger.Error("Falha ao decodificar jogadores do cursor.", err)
		return nil, apperror.NewDBError("failed to decode jogadores", err)
	}

	return jogadores, nil
}

// FindByID busca um jogador pelo identificador.
func (r *JogadorRepository) FindByID(ctx context.Context, id string) (domain.Jogador, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.dbTimeout)
	defer cancel()

	var jogador domain.Jogador
	err := r.collection.FindOne(ctxTimeout, bson.M{"_id": id}).Decode(&jogador)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Jogador{}, apperror.NewNotFoundError(
				fmt.Sprintf("Jogador com o ID '%s' não foi encontrado.", id),
			)
		}
		r.logger.Error("Falha ao buscar jogador por ID no DB.", err)
		return domain.Jogador{}, apperror.NewDBError("failed to find jogador by id", err)
	}

	return jogador, nil
}

// FindByCredenciais busca um jogador que case simultaneamente e-mail e nome.
func (r *JogadorRepository) FindByCredenciais(ctx context.Context, userEmail string, userName string) (domain.Jogador, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.dbTimeout)
	defer cancel()

	filtro := bson.M{"user_email": userEmail, "user_name": userName}

	var jogador domain.Jogador
	err := r.collection.FindOne(ctxTimeout, filtro).Decode(&jogador)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			r.logger.Debug("Nenhum jogador casou com as credenciais informadas.", map[string]interface{}{"user_email": userEmail})
			return domain.Jogador{}, apperror.NewNotFoundError("Jogador não encontrado para as credenciais informadas.")
		}
		r.logger.Error("Falha ao buscar jogador por credenciais no DB.", err)
		return domain.Jogador{}, apperror.NewDBError("failed to find jogador by credentials", err)
	}

	return jogador, nil
}

// Replace substitui integralmente o documento do jogador identificado por ID.
// MatchedCount == 0 significa que o jogador não existe (404), numa única ida
// ao banco, sem checagem prévia de existência.
func (r *JogadorRepository) Replace(ctx context.Context, jogador domain.Jogador) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.dbTimeout)
	defer cancel()

	resultado, err := r.collection.ReplaceOne(ctxTimeout, bson.M{"_id": jogador.ID}, jogador)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperror.NewConflictError(
				fmt.Sprintf("O e-mail '%s' já está em uso.", jogador.UserEmail),
			)
		}
		r.logger.Error("Falha ao substituir jogador no DB.", err)
		return apperror.NewDBError("failed to replace jogador", err)
	}

	if resultado.MatchedCount == 0 {
		return apperror.NewNotFoundError(
			fmt.Sprintf("Jogador com o ID '%s' não foi encontrado para atualização.", jogador.ID),
		)
	}

	r.logger.Info("Jogador atualizado no repositório.", map[string]interface{}{"jogador_id": jogador.ID})
	return nil
}

// Delete remove o jogador pelo identificador.
// DeletedCount == 0 significa que o jogador não existe (404).
func (r *JogadorRepository) Delete(ctx context.Context, id string) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.dbTimeout)
	defer cancel()

	resultado, err := r.collection.DeleteOne(ctxTimeout, bson.M{"_id": id})
	if err != nil {
		r.logger.Error("Falha ao remover jogador no DB.", err)
		return apperror.NewDBError("failed to delete jogador", err)
	}

	if resultado.DeletedCount == 0 {
		return apperror.NewNotFoundError(
			fmt.Sprintf("Jogador com o ID '%s' não foi encontrado para remoção.", id),
		)
	}

	r.logger.Info("Jogador removido do repositório.", map[string]interface{}{"jogador_id": id})
	return nil
}
