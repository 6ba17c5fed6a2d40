package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config representa a superfície de configuração da aplicação.
type Config struct {
	Server   ServerConfig
	DB       DBConfig
	Supabase SupabaseConfig
	Digest   DigestConfig
}

// ServerConfig guarda as opções do servidor HTTP.
type ServerConfig struct {
	Port string
}

// DBConfig guarda a conexão Postgres. DSN vazio usa storage in-memory.
type DBConfig struct {
	DSN string
}

// SupabaseConfig guarda as credenciais do Supabase Auth. URL vazia
// liga o modo dev (header X-Debug-User-ID).
type SupabaseConfig struct {
	URL     string
	AnonKey string
}

// DigestConfig guarda as opções do resumo diário agendado.
type DigestConfig struct {
	CronSchedule string
}

// Load lê as variáveis de ambiente (opcionalmente do arquivo indicado)
// e materializa um Config.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// .env ausente é aceitável quando a configuração vem direto do
		// ambiente.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		DB: DBConfig{
			DSN: os.Getenv("DB_DSN"),
		},
		Supabase: SupabaseConfig{
			URL:     os.Getenv("SUPABASE_URL"),
			AnonKey: os.Getenv("SUPABASE_ANON_KEY"),
		},
		Digest: DigestConfig{
			CronSchedule: getenvWithDefault("DIGEST_CRON_SCHEDULE", "0 6 * * *"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate garante que os campos obrigatórios estão preenchidos.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.Supabase.URL != "" && c.Supabase.AnonKey == "" {
		return errors.New("SUPABASE_ANON_KEY must be provided when SUPABASE_URL is set")
	}

	if c.Digest.CronSchedule == "" {
		return errors.New("DIGEST_CRON_SCHEDULE must be provided")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
