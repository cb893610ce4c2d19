package domain

import "context"

// Missao representa uma tarefa de aprendizado de um comando Git.
// O título funciona como chave natural: buscas, atualizações e remoções
// são feitas por ele, não pelo ID gerado.
type Missao struct {
	ID                  string `json:"id" bson:"_id"`
	Titulo              string `json:"titulo" bson:"titulo"`
	Descricao           string `json:"descricao" bson:"descricao"`
	ComandoEsperado     string `json:"comandoEsperado" bson:"comando_esperado"`
	Objetivo            string `json:"objetivo" bson:"objetivo"`
	PontosDeExperiencia int    `json:"pontosDeExperiencia" bson:"pontos_de_experiencia"`
	StatusConclusao     bool   `json:"statusConclusao" bson:"status_conclusao"`
}

// MissaoRegistro representa o payload de entrada para criação/atualização.
// StatusConclusao é ignorado na criação (toda missão nasce não concluída)
// e nunca é alterado pelo update de campos.
type MissaoRegistro struct {
	Titulo              string `json:"titulo"`
	Descricao           string `json:"descricao"`
	ComandoEsperado     string `json:"comandoEsperado"`
	Objetivo            string `json:"objetivo"`
	PontosDeExperiencia int    `json:"pontosDeExperiencia"`
	StatusConclusao     bool   `json:"statusConclusao"`
}

// MissaoRepository define o contrato de persistência para a entidade Missao.
type MissaoRepository interface {
	Save(ctx context.Context, missao Missao) (Missao, error)
	FindAll(ctx context.Context) ([]Missao, error)
	FindByTitulo(ctx context.Context, titulo string) (Missao, error)
	UpdateByTitulo(ctx context.Context, titulo string, registro MissaoRegistro) error
	DeleteByTitulo(ctx context.Context, titulo string) error
	// ToggleStatus inverte StatusConclusao de forma atômica e retorna o
	// documento já atualizado.
	ToggleStatus(ctx context.Context, titulo string) (Missao, error)
}

// MissaoService define o contrato de lógica de negócio para a entidade Missao.
type MissaoService interface {
	Criar(ctx context.Context, registro MissaoRegistro) (Missao, error)
	ObterTodas(ctx context.Context) ([]Missao, error)
	ObterPorTitulo(ctx context.Context, titulo string) (Missao, error)
	Atualizar(ctx context.Context, titulo string, registro MissaoRegistro) (Missao, error)
	Remover(ctx context.Context, titulo string) error
	AlterarStatusConclusao(ctx context.Context, titulo string) (Missao, error)
}
