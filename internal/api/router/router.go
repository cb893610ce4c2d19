package router

import (
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "commitchronicles/docs" // registro da especificação swagger gerada
	"commitchronicles/internal/api/jogador"
	"commitchronicles/internal/api/missao"
	"commitchronicles/internal/pkg/cache"
	"commitchronicles/internal/pkg/middleware"
)

// NewRouter configura e retorna o roteador HTTP principal.
// Recebe os Handlers já inicializados por injeção de dependências.
func NewRouter(
	jogadorHandler *jogador.Handler,
	missaoHandler *missao.Handler,
	tokenSvc middleware.TokenService,
	cacheClient cache.Client,
	rateLimitMax int,
	rateLimitPeriod time.Duration,
) http.Handler {

	// Usamos o ServeMux padrão do net/http com method patterns.
	// Em projetos maiores, pode-se usar um mux de terceiros (e.g., gorilla/mux, chi)
	mux := http.NewServeMux()

	// --- 1. Health Check e Documentação ---
	mux.HandleFunc("GET /ping", PingHandler)
	mux.Handle("GET /swagger/", httpSwagger.Handler())

	// --- 2. Rotas do Módulo de Jogadores (v1) ---
	auth := middleware.NewAuthMiddleware(tokenSvc)

	mux.HandleFunc("POST /v1/jogadores/login", jogadorHandler.LoginHandler)
	mux.HandleFunc("POST /v1/jogadores", jogadorHandler.AdicionarJogadorHandler)
	mux.HandleFunc("GET /v1/jogadores", jogadorHandler.ObterJogadoresHandler)
	mux.HandleFunc("GET /v1/jogadores/me", auth(jogadorHandler.ObterMeuPerfilHandler))
	mux.HandleFunc("GET /v1/jogadores/{id}", jogadorHandler.ObterJogadorPorIDHandler)
	mux.HandleFunc("PUT /v1/jogadores/{id}", jogadorHandler.AtualizarJogadorHandler)
	mux.HandleFunc("DELETE /v1/jogadores/{id}", jogadorHandler.RemoverJogadorHandler)

	// --- 3. Rotas do Módulo de Missões (v1) ---
	// O título é a chave natural das rotas parametrizadas.
	mux.HandleFunc("POST /v1/missoes", missaoHandler.CriarMissaoHandler)
	mux.HandleFunc("GET /v1/missoes", missaoHandler.ObterMissoesHandler)
	mux.HandleFunc("GET /v1/missoes/{titulo}", missaoHandler.ObterMissaoHandler)
	mux.HandleFunc("PUT /v1/missoes/{titulo}", missaoHandler.AtualizarMissaoHandler)
	mux.HandleFunc("DELETE /v1/missoes/{titulo}", missaoHandler.RemoverMissaoHandler)
	mux.HandleFunc("PATCH /v1/missoes/{titulo}/concluir", missaoHandler.AlterarStatusConclusaoHandler)

	// --- 4. Middlewares Globais ---
	return middleware.RateLimiter(cacheClient, rateLimitMax, rateLimitPeriod)(mux)
}

// PingHandler é o health check da API.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
