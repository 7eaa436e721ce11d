package app

import (
	"time"

	"github.com/torvund/wildskills-backend/internal/pkg/logger"
	"github.com/torvund/wildskills-backend/internal/utils"
)

type Config struct {
	Environment    string
	JWTSecretKey   string
	AccessTokenTTL time.Duration
	RequestTimeout time.Duration
}

func LoadConfig(log *logger.Logger) Config {
	environment := utils.GetEnv("APP_ENV", "development", log)
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTLSeconds := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	requestTimeoutSeconds := utils.GetEnvAsInt("REQUEST_TIMEOUT_SECONDS", 5, log)
	return Config{
		Environment:    environment,
		JWTSecretKey:   jwtSecretKey,
		AccessTokenTTL: time.Duration(accessTokenTTLSeconds) * time.Second,
		RequestTimeout: time.Duration(requestTimeoutSeconds) * time.Second,
	}
}
