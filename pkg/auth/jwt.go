package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/chainsafe/castpay-relayer/pkg/app/errors"
	apphttp "github.com/chainsafe/castpay-relayer/pkg/app/http"
)

// OperatorRole is the role claim required on operator tokens
const OperatorRole = "operator"

// ErrOperatorAuthDisabled is returned when no operator secret is configured
var ErrOperatorAuthDisabled = errors.New("operator authentication is not configured")

// OperatorClaims are the claims carried by an operator bearer token
type OperatorClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// OperatorValidator validates HS256 operator tokens guarding endpoints that
// spend relay funds.
type OperatorValidator struct {
	secret []byte
	issuer string
	leeway time.Duration
}

// NewOperatorValidator creates a validator. An empty secret disables every
// protected route.
func NewOperatorValidator(secret, issuer string) *OperatorValidator {
	return &OperatorValidator{
		secret: []byte(secret),
		issuer: issuer,
		leeway: 30 * time.Second,
	}
}

// IsConfigured returns true if a signing secret is available
func (v *OperatorValidator) IsConfigured() bool {
	return len(v.secret) > 0
}

// ValidateToken parses tokenString and returns its claims
func (v *OperatorValidator) ValidateToken(tokenString string) (*OperatorClaims, error) {
	if !v.IsConfigured() {
		return nil, ErrOperatorAuthDisabled
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(v.leeway),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &OperatorClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.Role != OperatorRole {
		return nil, fmt.Errorf("token role %q is not %q", claims.Role, OperatorRole)
	}

	return claims, nil
}

// IssueToken signs an operator token valid for ttl. Used by tooling and tests.
func (v *OperatorValidator) IssueToken(subject string, ttl time.Duration) (string, error) {
	if !v.IsConfigured() {
		return "", ErrOperatorAuthDisabled
	}
	now := time.Now()
	claims := OperatorClaims{
		Role: OperatorRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}

// RequireOperator is chi-compatible middleware enforcing a valid operator
// bearer token.
func (v *OperatorValidator) RequireOperator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !v.IsConfigured() {
			apphttp.DefaultErrorHandler(w, apperrors.ForbiddenError(ErrOperatorAuthDisabled, "operator endpoints are disabled"))
			return
		}

		token, ok := bearerToken(r)
		if !ok {
			apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(nil, "missing bearer token"))
			return
		}

		claims, err := v.ValidateToken(token)
		if err != nil {
			apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(err, "invalid operator token"))
			return
		}

		next.ServeHTTP(w, r.WithContext(WithOperator(r.Context(), claims.Subject)))
	})
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
