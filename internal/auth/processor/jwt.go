package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"loyalty-server/internal/observability"

	"github.com/golang-jwt/jwt/v5"
)

// IssueToken signs a token for the given subject. Business tokens must name their business.
func (p *AuthProcessor) IssueToken(ctx context.Context, subject, businessID, role string, ttl time.Duration) (string, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "subject", Value: subject},
		observability.Field{Key: "business_id", Value: businessID},
		observability.Field{Key: "role", Value: role},
	)

	switch role {
	case RoleOperator:
	case RoleBusiness:
		if businessID == "" {
			return "", ErrMissingBusiness
		}
	default:
		return "", ErrInvalidRole
	}

	now := p.now()
	claims := &BusinessClaims{
		ExpirationTime: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:       jwt.NewNumericDate(now),
		Issuer:         tokenIssuer,
		Subject:        subject,
		Audience:       jwt.ClaimStrings{tokenIssuer},
		BusinessID:     businessID,
		Role:           role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(p.jwtSecret))
	if err != nil {
		p.logger.Error(ctx, "failed to sign token", err)
		return "", ErrFailedSignToken
	}
	return tokenString, nil
}

func (b *BusinessClaims) GetExpirationTime() (*jwt.NumericDate, error) {
	return b.ExpirationTime, nil
}

func (b *BusinessClaims) GetIssuedAt() (*jwt.NumericDate, error) {
	return b.IssuedAt, nil
}

func (b *BusinessClaims) GetNotBefore() (*jwt.NumericDate, error) {
	return b.NotBefore, nil
}

func (b *BusinessClaims) GetIssuer() (string, error) {
	return b.Issuer, nil
}

func (b *BusinessClaims) GetSubject() (string, error) {
	return b.Subject, nil
}

func (b *BusinessClaims) GetAudience() (jwt.ClaimStrings, error) {
	return b.Audience, nil
}

func (p *AuthProcessor) ValidateJWTToken(ctx context.Context, token string) (BusinessClaims, error) {
	var claims BusinessClaims
	t, err := jwt.ParseWithClaims(token, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(p.jwtSecret), nil
	}, jwt.WithTimeFunc(p.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			p.logger.Error(ctx, "token expired", err)
			return BusinessClaims{}, ErrExpiredToken
		}

		p.logger.Error(ctx, "failed to parse token", err)
		return BusinessClaims{}, ErrParseJWTToken
	}
	if !t.Valid {
		return BusinessClaims{}, ErrInvalidJWTToken
	}

	parsed, ok := t.Claims.(*BusinessClaims)
	if !ok {
		p.logger.Error(ctx, "failed to extract claims", nil)
		return BusinessClaims{}, ErrParseJWTToken
	}

	switch parsed.Role {
	case RoleOperator:
	case RoleBusiness:
		if parsed.BusinessID == "" {
			return BusinessClaims{}, ErrMissingBusiness
		}
	default:
		return BusinessClaims{}, ErrInvalidRole
	}

	return *parsed, nil
}
