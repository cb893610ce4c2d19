package main

import (
	"context"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	// Pacotes de infraestrutura e utilitários
	"commitchronicles/config"
	"commitchronicles/internal/pkg/cache"
	"commitchronicles/internal/pkg/database"
	"commitchronicles/internal/pkg/logger"
	"commitchronicles/internal/pkg/token"

	// Camadas para Injeção de Dependências
	"commitchronicles/internal/api/jogador"
	"commitchronicles/internal/api/missao"
	"commitchronicles/internal/api/router"
	"commitchronicles/internal/repository/jogadorrepo"
	"commitchronicles/internal/repository/missaorepo"
	"commitchronicles/internal/service/jogadorservice"
	"commitchronicles/internal/service/missaoservice"
)

// @title CommitChronicles API
// @version 1.0
// @description API gamificada para aprendizado de comandos Git: jogadores, missões e autenticação JWT.
// @BasePath /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 0. Carregar variáveis de ambiente (.env)
	// Se o arquivo não existir, seguimos: as variáveis essenciais podem
	// estar no ambiente do sistema (ex: Docker).
	if err := godotenv.Load(); err != nil {
		stdlog.Println("Aviso: arquivo .env não encontrado. Carregando configs apenas do ambiente do sistema.")
	}

	// 1. Configuração e Logger
	cfg := config.LoadConfig()
	log := logger.NewLogger(cfg.LogLevel)
	log.Info("Configurações carregadas.", nil)

	// 2. Conexão com Recursos de Infraestrutura

	// A. Banco de Dados (MongoDB)
	client, err := database.NewMongoClient(cfg.MongoURI)
	if err != nil {
		log.Fatal("Falha ao conectar ao MongoDB.", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error("Falha ao desconectar do MongoDB.", err)
		}
	}()
	db := client.Database(cfg.MongoDatabase)
	log.Info("Conexão MongoDB estabelecida.", map[string]interface{}{"database": cfg.MongoDatabase})

	// B. Cache (Redis) - backend do rate limiter
	// Com o Redis fora, o servidor sobe mesmo assim: o rate limiter degrada
	// para 500 nas rotas até o cache voltar.
	cacheClient, err := cache.NewRedisClient(cfg.RedisAddr)
	if err != nil {
		log.Error("Redis indisponível no PING inicial.", err)
	} else {
		log.Info("Conexão Redis estabelecida.", nil)
	}

	// 3. Injeção de Dependências (Repository -> Service -> Handler)

	// A. Repositórios (Camada de Acesso a Dados)
	jogadorRepo := jogadorrepo.NewJogadorRepository(db, cfg.DBTimeout, log)
	missaoRepo := missaorepo.NewMissaoRepository(db, cfg.DBTimeout, log)

	// Índices únicos (e-mail do jogador, título da missão) são a garantia
	// atômica de unicidade: sem eles, duas criações concorrentes passariam.
	bootCtx, bootCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer bootCancel()
	if err := jogadorRepo.EnsureIndexes(bootCtx); err != nil {
		log.Fatal("Falha ao criar índices da coleção de jogadores.", err)
	}
	if err := missaoRepo.EnsureIndexes(bootCtx); err != nil {
		log.Fatal("Falha ao criar índices da coleção de missões.", err)
	}
	log.Debug("Repositórios inicializados e índices garantidos.", nil)

	// B. Serviço de Tokens (JWT)
	tokenSvc := token.NewService(cfg.JWTSecretKey, cfg.JWTIssuer, cfg.JWTAudience, cfg.TokenExpiry)
	log.Debug("Serviço de Tokens JWT inicializado.", nil)

	// C. Serviços (Camada de Lógica de Negócio)
	jogadorSvc := jogadorservice.NewService(jogadorRepo, tokenSvc, log)
	missaoSvc := missaoservice.NewService(missaoRepo, log)
	log.Debug("Serviços de Jogador e Missão inicializados.", nil)

	// D. Handlers (Camada de Apresentação)
	jogadorHandler := jogador.NewHandler(jogadorSvc, log)
	missaoHandler := missao.NewHandler(missaoSvc, log)
	log.Debug("Handlers inicializados.", nil)

	// 4. Configuração e Início do Roteador/Servidor
	r := router.NewRouter(jogadorHandler, missaoHandler, tokenSvc, cacheClient, cfg.RateLimitMaxRequests, cfg.RateLimitPeriod)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 5. Execução e Graceful Shutdown
	go func() {
		log.Info("Servidor CommitChronicles ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Desligamento do servidor forçado.", err)
	}

	log.Info("Servidor encerrado com sucesso.", nil)
}
