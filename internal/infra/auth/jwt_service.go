package auth

import (
	"time"

	"verdeluxe/config"
	domainerrors "verdeluxe/internal/domain/errors"
	"verdeluxe/internal/domain/service"
	"verdeluxe/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	defaultAccessTokenTTL  = 15 * time.Minute
	defaultRefreshTokenTTL = 7 * 24 * time.Hour
)

// jwtService signs HS256 tokens. Access and refresh tokens use different
// secrets; the "type" claim selects which one verifies a token.
type jwtService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}
	if cfg.SecretKey.Access == cfg.SecretKey.Refresh {
		return nil, errors.New("access and refresh secrets must differ")
	}

	svc := &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		accessTTL:     defaultAccessTokenTTL,
		refreshTTL:    defaultRefreshTokenTTL,
		now:           time.Now,
	}
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			svc.accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.RefreshTokenTTL > 0 {
			svc.refreshTTL = cfg.Auth.RefreshTokenTTL
		}
	}

	return svc, nil
}

func (s *jwtService) GenerateTokens(userID uuid.UUID, roles []string) (accessToken string, refreshToken string, err error) {
	accessToken, err = s.sign(userID, roles, s.accessTTL, s.accessSecret, service.TokenTypeAccess)
	if err != nil {
		return "", "", err
	}

	// Refresh tokens carry no roles; they are re-read on refresh.
	refreshToken, err = s.sign(userID, nil, s.refreshTTL, s.refreshSecret, service.TokenTypeRefresh)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, s.keyFor,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("parse token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domainerrors.ErrTokenInvalid
	}

	return claimsFromMap(mapClaims)
}

func (s *jwtService) GetAccessTokenDuration() time.Duration {
	return s.accessTTL
}

func (s *jwtService) keyFor(token *jwt.Token) (any, error) {
	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	switch mapClaims["type"] {
	case service.TokenTypeAccess:
		return s.accessSecret, nil
	case service.TokenTypeRefresh:
		return s.refreshSecret, nil
	default:
		return nil, jwt.ErrTokenInvalidClaims
	}
}

func (s *jwtService) sign(userID uuid.UUID, roles []string, ttl time.Duration, secret []byte, tokenType string) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
		"jti":  uuid.NewString(),
		"type": tokenType,
	}
	if roles != nil {
		claims["roles"] = roles
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

func claimsFromMap(mapClaims jwt.MapClaims) (*service.Claims, error) {
	sub, err := mapClaims.GetSubject()
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid
	}

	tokenType, _ := mapClaims["type"].(string)

	var roles []string
	if rawRoles, ok := mapClaims["roles"].([]any); ok {
		roles = make([]string, 0, len(rawRoles))
		for _, raw := range rawRoles {
			if role, ok := raw.(string); ok {
				roles = append(roles, role)
			}
		}
	}

	claims := &service.Claims{UserID: userID, Roles: roles, Type: tokenType}
	claims.Subject = sub
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp
	}
	if iat, err := mapClaims.GetIssuedAt(); err == nil && iat != nil {
		claims.IssuedAt = iat
	}
	if jti, ok := mapClaims["jti"].(string); ok {
		claims.ID = jti
	}

	return claims, nil
}
