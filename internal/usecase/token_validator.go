package usecase

//go:generate mockgen -source=token_validator.go -destination=../../tests/mock/usecase/token_validator_mock.go -package=usecasemock

import (
	"hotel-booking/internal/pkg/jwt"
	"hotel-booking/internal/usecase/shared"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (shared.AdminIdentity, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (shared.AdminIdentity, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return shared.AdminIdentity{}, err
	}

	if claims.Role != jwt.RoleAdmin || claims.Username == "" {
		return shared.AdminIdentity{}, jwt.ErrInvalidToken
	}

	return shared.AdminIdentity{Username: claims.Username}, nil
}
