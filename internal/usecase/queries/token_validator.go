package queries

import (
	"sejour/internal/domain/user"
	"sejour/internal/pkg/errs"
	"sejour/internal/pkg/jwt"
)

var ErrInvalidToken = errs.New("invalid or expired token")

// AuthenticatedUser is the identity extracted from a verified access token.
// Accounts live in an external identity service; this is all we know locally.
type AuthenticatedUser struct {
	ID   int64
	Role user.Role
}

type TokenValidator interface {
	Validate(token string) (*AuthenticatedUser, error)
}

type tokenValidatorImpl struct {
	verifier *jwt.Verifier
}

func NewTokenValidator(verifier *jwt.Verifier) TokenValidator {
	return &tokenValidatorImpl{verifier: verifier}
}

func (v *tokenValidatorImpl) Validate(token string) (*AuthenticatedUser, error) {
	claims, err := v.verifier.ValidateToken(token)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidToken)
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidToken)
	}

	return &AuthenticatedUser{ID: claims.UserID, Role: role}, nil
}
