package processor

import (
	"errors"
	"time"

	"loyalty-server/internal/observability"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// RoleBusiness tokens act only on the business named in their claims
	RoleBusiness = "business"
	// RoleOperator tokens act on any business and reach the operator-only endpoints
	RoleOperator = "operator"

	tokenIssuer = "loyalty-server"
)

var (
	ErrInvalidJWTToken = errors.New("invalid jwt token")
	ErrParseJWTToken   = errors.New("failed to parse jwt token")
	ErrExpiredToken    = errors.New("token expired")
	ErrInvalidRole     = errors.New("invalid token role")
	ErrMissingBusiness = errors.New("business token without business id")
	ErrFailedSignToken = errors.New("failed to sign token")
)

type AuthProcessor struct {
	jwtSecret string
	logger    *observability.Logger
	now       func() time.Time
}

func New(jwtSecret string, logger *observability.Logger) AuthProcessor {
	return AuthProcessor{
		jwtSecret: jwtSecret,
		logger:    logger,
		now:       time.Now,
	}
}

// BusinessClaims are issued by the auth collaborator to business staff and operators
type BusinessClaims struct {
	ExpirationTime *jwt.NumericDate `json:"exp"`
	IssuedAt       *jwt.NumericDate `json:"iat"`
	NotBefore      *jwt.NumericDate `json:"nbf"`
	Issuer         string           `json:"iss"`
	Subject        string           `json:"sub"`
	Audience       jwt.ClaimStrings `json:"aud"`
	BusinessID     string           `json:"business_id"`
	Role           string           `json:"role"`
}

// CanAccess reports whether the token may act on businessID
func (b BusinessClaims) CanAccess(businessID string) bool {
	if b.Role == RoleOperator {
		return true
	}
	return b.Role == RoleBusiness && b.BusinessID != "" && b.BusinessID == businessID
}
