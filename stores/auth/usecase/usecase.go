package usecase

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/x-xyz/staking/base/ctx"
	"github.com/x-xyz/staking/domain"
)

const defaultTtl = 24 * time.Hour

type impl struct {
	jwtSecret []byte
	now       func() time.Time
}

func New(jwtSecret string) domain.AuthUsecase {
	return &impl{
		jwtSecret: []byte(jwtSecret),
		now:       time.Now,
	}
}

// SignToken issues a bearer token naming principal as the signer of later requests
func (im *impl) SignToken(ctx ctx.Ctx, principal domain.Name, ttl time.Duration) (string, error) {
	if err := principal.Validate(); err != nil {
		return "", err
	}
	if ttl <= 0 {
		ttl = defaultTtl
	}

	now := im.now()
	claims := domain.JwtCustomClaims{
		Principal: principal.String(),
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(ttl).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	if ss, err := token.SignedString(im.jwtSecret); err != nil {
		ctx.WithField("err", err).Error("token.SignedString failed")
		return "", err
	} else {
		return ss, nil
	}
}

func (im *impl) ParseToken(ctx ctx.Ctx, str string) (domain.Name, error) {
	token, err := jwt.ParseWithClaims(str, &domain.JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		return im.jwtSecret, nil
	})
	if err != nil {
		return "", domain.Errorf(domain.ErrAuthorization, "invalid token: %s", err)
	}

	if claims, ok := token.Claims.(*domain.JwtCustomClaims); ok && token.Valid {
		name := domain.Name(claims.Principal)
		if err := name.Validate(); err != nil {
			return "", domain.Errorf(domain.ErrAuthorization, "invalid token principal")
		}
		return name, nil
	}

	return "", domain.Errorf(domain.ErrAuthorization, "invalid token")
}
