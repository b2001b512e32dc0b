package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"
	_ "github.com/willjrcristo/mentoria-api/docs" // Importa a pasta docs gerada

	// Nossos pacotes internos da aplicação!
	"github.com/willjrcristo/mentoria-api/internal/auth"
	"github.com/willjrcristo/mentoria-api/internal/cache"
	"github.com/willjrcristo/mentoria-api/internal/config"
	"github.com/willjrcristo/mentoria-api/internal/domain"
	httphandler "github.com/willjrcristo/mentoria-api/internal/handler/http"
	"github.com/willjrcristo/mentoria-api/internal/mailer"
	"github.com/willjrcristo/mentoria-api/internal/repository"
	"github.com/willjrcristo/mentoria-api/internal/service"
)

// @title           API de Mentoria
// @version         1.0
// @description     API da plataforma de mentoria: perfis, cursos, matrículas, agendamentos e a integração com contas conectadas do Stripe.
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   Will Cristo
// @contact.url    https://linkedin.com/in/willjrcristo
// @contact.email  willjrcristo@gmail.com
//
// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	// --- 1. CONFIGURAÇÃO DO LOGGER E DO AMBIENTE ---
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)
	slog.Info("🚀 Iniciando a API de Mentoria...")

	cfg, err := config.Carregar()
	if err != nil {
		slog.Error("Erro ao carregar a configuração", "error", err)
		os.Exit(1)
	}

	// Fora de produção o log desce para o nível debug.
	if !cfg.Producao() {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
		slog.SetDefault(logger)
	}

	// --- 2. CONEXÃO COM O BANCO DE DADOS ---
	db, err := repository.AbrirPostgres(cfg.DatabaseURL)
	if err != nil {
		slog.Error("Erro ao conectar no banco de dados", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := repository.RodarMigracoes(cfg.DatabaseURL); err != nil {
		slog.Error("Erro ao rodar as migrações", "error", err)
		os.Exit(1)
	}
	slog.Info("💾 Conexão com o banco de dados estabelecida e migrações aplicadas.")

	// --- 3. INJEÇÃO DE DEPENDÊNCIAS (WIRING) ---
	// Criamos as instâncias de cada camada, passando a dependência para a
	// camada seguinte. DB -> Repository -> Service -> Handler

	// Camada de Repositório
	perfilRepo := repository.NewPerfilRepository(db)
	cursoRepo := repository.NewCursoRepository(db)
	matriculaRepo := repository.NewMatriculaRepository(db)
	notificacaoRepo := repository.NewNotificacaoRepository(db)
	agendamentoRepo := repository.NewAgendamentoRepository(db)
	slog.Info("Camada de repositório inicializada")

	// Cache de status de conta (Redis). Sem REDIS_ADDR a API continua de
	// pé, só consulta o Stripe a cada requisição.
	var cacheStatus service.CacheStatus = cache.Desligado{}
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		cacheStatus = cache.NewStatusConta(rdb, cfg.StatusContaTTL)
		slog.Info("⚡ Cache de status conectado ao Redis", "addr", cfg.RedisAddr)
	}

	// Clientes do Stripe e o registrador de eventos de rede
	stripeClients := service.NewStripeClients(cfg.StripeSecretKey)
	registrador := service.RegistradorSlog{}

	// E-mail transacional
	transporte := mailer.NewSMTPTransporte(cfg.SMTPHost, cfg.SMTPPorta, cfg.SMTPUsuario, cfg.SMTPSenha, cfg.EmailRemetente)
	despachante := mailer.New(transporte)

	// Camada de Serviço
	contaService := service.NewContaStripeService(stripeClients, cacheStatus)
	catalogoService := service.NewCatalogoService(stripeClients, registrador)
	documentoService := service.NewDocumentoService(stripeClients)
	saldoService := service.NewSaldoService(stripeClients)
	onboardingService := service.NewOnboardingService(perfilRepo, contaService, documentoService)
	perfilService := service.NewPerfilService(perfilRepo, despachante)
	cursoService := service.NewCursoService(cursoRepo, perfilRepo, catalogoService)
	matriculaService := service.NewMatriculaService(matriculaRepo, cursoRepo, notificacaoRepo)
	notificacaoService := service.NewNotificacaoService(notificacaoRepo, perfilRepo)
	agendamentoService := service.NewAgendamentoService(agendamentoRepo, despachante)
	slog.Info("Camada de serviço inicializada")

	// Camada de Handler
	stripeHandler := httphandler.NewStripeHandler(contaService, onboardingService, saldoService, registrador)
	catalogoHandler := httphandler.NewCatalogoHandler(catalogoService)
	documentoHandler := httphandler.NewDocumentoHandler(documentoService)
	onboardingHandler := httphandler.NewOnboardingHandler(onboardingService)
	perfilHandler := httphandler.NewPerfilHandler(perfilService)
	cursoHandler := httphandler.NewCursoHandler(cursoService)
	matriculaHandler := httphandler.NewMatriculaHandler(matriculaService)
	notificacaoHandler := httphandler.NewNotificacaoHandler(notificacaoService)
	agendamentoHandler := httphandler.NewAgendamentoHandler(agendamentoService)
	emailHandler := httphandler.NewEmailHandler(perfilService, despachante)
	slog.Info("Camada de handler inicializada")

	// --- 4. CONFIGURAÇÃO DO ROTEADOR E ROTAS ---
	r := chi.NewRouter()

	// Middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(prometheusMiddleware)

	// Rota de Health Check
	r.Get("/api/status", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"status":"ok"}`))
	})

	// Métricas do Prometheus
	r.Handle("/metrics", promhttp.Handler())

	// Rota para a documentação Swagger
	// A URL será http://localhost:8080/swagger/index.html
	r.Get("/swagger/*", httpSwagger.WrapHandler)
	slog.Info("📖 Documentação Swagger disponível em http://localhost:8080/swagger/index.html")

	// Coletor de logs de rede do front-end (sem autenticação, corpo livre)
	r.Post("/api/stripe-network-logs", stripeHandler.ReceberLogRede)

	// Rotas públicas de e-mail transacional e diagnóstico
	r.Post("/api/email/boas-vindas", emailHandler.BoasVindas)
	r.Post("/api/test-email/{template}", emailHandler.TesteEmail)

	// Agendamentos: o formulário público de marcação chama sem sessão,
	// então ficam fora do grupo autenticado.
	r.Mount("/api/appointments", agendamentoHandler.Routes())

	// Rotas autenticadas (JWT do Supabase)
	validador := auth.NewValidador(cfg.SupabaseJWTSecret)
	r.Group(func(r chi.Router) {
		r.Use(validador.Middleware)

		r.Mount("/api/perfis", perfilHandler.Routes())
		r.Mount("/api/cursos", cursoHandler.Routes())
		r.Mount("/api/matriculas", matriculaHandler.Routes())
		r.Mount("/api/notificacoes", notificacaoHandler.Routes())
		r.Mount("/api/mentores", notificacaoHandler.RoutesSeguidores())

		// Integração Stripe: restrita a mentores (e admins)
		r.Group(func(r chi.Router) {
			r.Use(auth.ExigirPapel(domain.PapelMentor))

			r.Mount("/api/stripe", stripeHandler.Routes())
			r.Mount("/api/stripe/products", catalogoHandler.RoutesProdutos())
			r.Mount("/api/stripe/prices", catalogoHandler.RoutesPrecos())
			r.Mount("/api/stripe/documents", documentoHandler.Routes())
			r.Mount("/api/onboarding", onboardingHandler.Routes())
		})
	})
	slog.Info("🛰️  Rotas registradas")

	// --- 5. INICIALIZAÇÃO DO SERVIDOR HTTP ---
	endereco := ":" + cfg.Porta
	slog.Info("✅ Servidor pronto para receber requisições", "endereco", endereco)
	if err := http.ListenAndServe(endereco, r); err != nil {
		slog.Error("Erro ao iniciar o servidor", "error", err)
		os.Exit(1)
	}
}
