package domain

import (
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/x-xyz/staking/base/ctx"
)

// JwtCustomClaims carries the signing principal of a bearer token
type JwtCustomClaims struct {
	Principal string `json:"data"`
	jwt.StandardClaims
}

type AuthUsecase interface {
	SignToken(ctx ctx.Ctx, principal Name, ttl time.Duration) (string, error)
	ParseToken(ctx ctx.Ctx, token string) (principal Name, err error)
}
