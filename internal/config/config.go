package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config reúne toda a configuração lida do ambiente. Carregamos uma vez
// no main e injetamos nas camadas; nenhum pacote lê os.Getenv por conta
// própria.
type Config struct {
	Porta    string
	Ambiente string // "development" ou "production"

	DatabaseURL string

	StripeSecretKey string

	RedisAddr     string
	RedisPassword string

	// Segredo HS256 usado pelo Supabase para assinar os JWTs de sessão.
	SupabaseJWTSecret string

	SMTPHost       string
	SMTPPorta      string
	SMTPUsuario    string
	SMTPSenha      string
	EmailRemetente string

	// TTL do cache de status de conta conectada. Espelha o intervalo de
	// polling do front-end (60s).
	StatusContaTTL time.Duration
}

// Carregar lê o .env (se existir) e monta a Config. Retorna erro quando
// alguma variável obrigatória está ausente, para o processo falhar logo
// na subida e não no meio de uma requisição.
func Carregar() (*Config, error) {
	// Em produção as variáveis vêm do ambiente; o .env é conveniência
	// de desenvolvimento, então a ausência do arquivo não é erro.
	_ = godotenv.Load()

	cfg := &Config{
		Porta:           getenv("PORT", "8080"),
		Ambiente:        getenv("APP_ENV", "development"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		// Sem valor padrão: REDIS_ADDR vazio desliga o cache de status e a
		// API passa a consultar o Stripe diretamente.
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		SupabaseJWTSecret: os.Getenv("SUPABASE_JWT_SECRET"),
		SMTPHost:          os.Getenv("SMTP_HOST"),
		SMTPPorta:         getenv("SMTP_PORT", "465"),
		SMTPUsuario:       os.Getenv("SMTP_USER"),
		SMTPSenha:         os.Getenv("SMTP_PASS"),
		EmailRemetente:    getenv("EMAIL_FROM", "nao-responda@mentoria.app"),
		StatusContaTTL:    60 * time.Second,
	}

	obrigatorias := map[string]string{
		"DATABASE_URL":        cfg.DatabaseURL,
		"STRIPE_SECRET_KEY":   cfg.StripeSecretKey,
		"SUPABASE_JWT_SECRET": cfg.SupabaseJWTSecret,
	}
	for nome, valor := range obrigatorias {
		if valor == "" {
			return nil, fmt.Errorf("variável de ambiente obrigatória ausente: %s", nome)
		}
	}

	return cfg, nil
}

// Producao indica se estamos rodando em ambiente de produção.
func (c *Config) Producao() bool {
	return c.Ambiente == "production"
}

func getenv(chave, padrao string) string {
	if v := os.Getenv(chave); v != "" {
		return v
	}
	return padrao
}
