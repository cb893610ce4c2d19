package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// NewMongoClient inicializa o cliente MongoDB e valida a conexão com um ping.
// O *mongo.Client retornado é seguro para uso concorrente e deve viver pelo
// processo inteiro (Disconnect no shutdown).
func NewMongoClient(uri string) (*mongo.Client, error) {

	// 1. Abrir a conexão (o driver gerencia o pool internamente)
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar ao MongoDB: %w", err)
	}

	// 2. Testar a conexão imediatamente
	// Garante que a URI e o servidor estão corretos antes de servir requisições.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx, nil); err != nil {
		// Fecha o cliente aberto se o ping falhar
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("falha ao realizar o ping inicial no MongoDB: %w", err)
	}

	return client, nil
}
