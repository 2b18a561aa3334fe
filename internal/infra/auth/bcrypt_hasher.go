// Package auth implements password hashing, admin tokens and customer
// identity verification.
package auth

import (
	"strconv"
	"unicode"

	"verdeluxe/config"
	domainerrors "verdeluxe/internal/domain/errors"
	"verdeluxe/internal/domain/service"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt ignores input beyond 72 bytes.
const bcryptMaxPasswordBytes = 72

var defaultPasswordStrength = config.PasswordStrengthConfig{
	MinLength:        8,
	MaxLength:        bcryptMaxPasswordBytes,
	RequireUppercase: true,
	RequireLowercase: true,
	RequireNumbers:   true,
}

type bcryptHasher struct {
	cost     int
	strength config.PasswordStrengthConfig
}

func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	strength := defaultPasswordStrength
	if cfg.PasswordStrength != nil {
		strength = *cfg.PasswordStrength
	}
	if strength.MaxLength <= 0 || strength.MaxLength > bcryptMaxPasswordBytes {
		strength.MaxLength = bcryptMaxPasswordBytes
	}

	return &bcryptHasher{cost: cost, strength: strength}
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return string(hash), nil
}

func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if len(password) < h.strength.MinLength {
		return domainerrors.ErrPasswordStrength.WithDetails("password must be at least " + strconv.Itoa(h.strength.MinLength) + " characters")
	}
	if len(password) > h.strength.MaxLength {
		return domainerrors.ErrPasswordStrength.WithDetails("password must be at most " + strconv.Itoa(h.strength.MaxLength) + " bytes")
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	switch {
	case h.strength.RequireUppercase && !hasUpper:
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain an uppercase letter")
	case h.strength.RequireLowercase && !hasLower:
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain a lowercase letter")
	case h.strength.RequireNumbers && !hasDigit:
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain a digit")
	case h.strength.RequireSpecial && !hasSpecial:
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain a special character")
	}

	return nil
}
