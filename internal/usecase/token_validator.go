package usecase

import (
	"stay-booking/internal/domain/user"
	"stay-booking/internal/pkg/errs"
	"stay-booking/internal/pkg/jwt"

	"github.com/google/uuid"
)

var ErrUnauthenticated = errs.New("unauthenticated")

// Actor is the caller identity extracted from a verified access token.
type Actor struct {
	UserID uuid.UUID
	Role   user.Role
}

type TokenValidator interface {
	ValidateToken(token string) (Actor, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService}
}

func (t *tokenValidatorImpl) ValidateToken(token string) (Actor, error) {
	claims, err := t.jwtService.ValidateToken(token)
	if err != nil {
		return Actor{}, errs.Mark(err, ErrUnauthenticated)
	}
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return Actor{}, errs.Mark(errs.Wrapf(err, "token for %s", claims.UserID), ErrUnauthenticated)
	}
	return Actor{UserID: claims.UserID, Role: role}, nil
}
