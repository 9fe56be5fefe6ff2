package domain

import (
	"context"
	"time"
)

const (
	DefaultTokenDuration = 30 * time.Minute
	DefaultTokenSubject  = "api-client"
)

// TokenConfig holds what the token issuer and verifier need
type TokenConfig struct {
	SecretKey []byte
	Issuer    string
	Audience  string
	Subject   string
	Duration  time.Duration
}

// TokenIssuer issues signed bearer tokens
type TokenIssuer interface {
	IssueToken(ctx context.Context) (string, error)
}
