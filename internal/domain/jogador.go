package domain

import "context"

// Jogador representa um participante do jogo (a Entidade).
// É também a projeção pública canônica: o hash da senha nunca sai no JSON.
type Jogador struct {
	ID                  string   `json:"id" bson:"_id"`
	UserName            string   `json:"userName" bson:"user_name"`
	UserEmail           string   `json:"userEmail" bson:"user_email"`
	SenhaHash           string   `json:"-" bson:"senha_hash,omitempty"`
	Nivel               int      `json:"nivel" bson:"nivel"`
	PontosDeExperiencia int      `json:"pontosDeExperiencia" bson:"pontos_de_experiencia"`
	MissoesConcluidas   []string `json:"missoesConcluidas" bson:"missoes_concluidas"`
}

// JogadorRegistro representa o payload de entrada para criação/atualização.
// A senha é opcional: quando informada, o login passa a exigi-la.
type JogadorRegistro struct {
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
	Senha     string `json:"senha,omitempty"`
}

// JogadorRepository define o contrato de persistência para a entidade Jogador.
type JogadorRepository interface {
	Save(ctx context.Context, jogador Jogador) (Jogador, error)
	FindAll(ctx context.Context) ([]Jogador, error)
	FindByID(ctx context.Context, id string) (Jogador, error)
	FindByCredenciais(ctx context.Context, userEmail string, userName string) (Jogador, error)
	Replace(ctx context.Context, jogador Jogador) error
	Delete(ctx context.Context, id string) error
}

// JogadorService define o contrato de lógica de negócio para a entidade Jogador.
type JogadorService interface {
	Login(ctx context.Context, registro JogadorRegistro) (string, error)
	Adicionar(ctx context.Context, registro JogadorRegistro) (Jogador, error)
	ObterTodos(ctx context.Context) ([]Jogador, error)
	ObterPorID(ctx context.Context, id string) (Jogador, error)
	Atualizar(ctx context.Context, id string, registro JogadorRegistro) error
	Remover(ctx context.Context, id string) error
}
