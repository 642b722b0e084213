package auth

import (
	"fmt"
	"os"

	jwt "github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/library-service/internal/config"
)

// LoadTokenManager reads the PEM-encoded RSA key pair referenced by the auth
// config and builds a TokenManager from it.
func LoadTokenManager(cfg config.AuthConfig, logger *zap.Logger) (*TokenManager, error) {
	privatePEM, err := os.ReadFile(cfg.PrivateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("read private key: %w", err)
	}
	private, err := jwt.ParseRSAPrivateKeyFromPEM(privatePEM)
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}

	publicPEM, err := os.ReadFile(cfg.PublicKeyPath)
	if err != nil {
		return nil, fmt.Errorf("read public key: %w", err)
	}
	public, err := jwt.ParseRSAPublicKeyFromPEM(publicPEM)
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}

	logger.Info("loaded token signing keys",
		zap.String("private_key", cfg.PrivateKeyPath),
		zap.String("public_key", cfg.PublicKeyPath))

	return NewTokenManager(private, public, cfg.AccessTokenTTL()), nil
}
