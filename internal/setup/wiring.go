package setup

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jeonsilai/guardrails-server/internal/audit"
	"github.com/jeonsilai/guardrails-server/internal/rails"
	red "github.com/jeonsilai/guardrails-server/internal/redis"
	"github.com/jeonsilai/guardrails-server/internal/rules"
	"github.com/rs/zerolog"
)

type Config struct {
	Host           string
	Port           string
	AllowedOrigins []string
	RulesPath      string
	LogLevel       string
	RedisAddr      string
	RedisPassword  string
	AuditStream    string
}

type Dependencies struct {
	Rules      *rules.RuleSet
	InputRail  *rails.InputRail
	OutputRail *rails.OutputRail
	Publisher  audit.Publisher
	Logger     *zerolog.Logger
}

func LoadConfig() *Config {
	return &Config{
		Host:           getEnv("HOST", "0.0.0.0"),
		Port:           getEnv("PORT", "8000"),
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		RulesPath:      getEnv("RULES_CONFIG_PATH", rules.DefaultPath),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		AuditStream:    getEnv("AUDIT_STREAM", "guardrails-verdicts"),
	}
}

// Wire builds the dependency graph. A malformed rule table fails here, so
// the process refuses to start instead of failing per request.
func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	ruleSet, err := rules.Load(cfg.RulesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load validation rules: %w", err)
	}

	// Audit publishing is optional: without a Redis address the verdicts
	// are only logged.
	var publisher audit.Publisher = audit.NopPublisher{}
	if cfg.RedisAddr != "" {
		client, err := red.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword, 3, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		publisher = audit.NewStreamPublisher(client, cfg.AuditStream, logger)
	}

	return &Dependencies{
		Rules:      ruleSet,
		InputRail:  rails.NewInputRail(ruleSet, logger),
		OutputRail: rails.NewOutputRail(ruleSet, logger),
		Publisher:  publisher,
		Logger:     logger,
	}, nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}
