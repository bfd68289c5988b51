package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	defaultTokenTTL = 2 * time.Hour
	bearerScheme    = "bearer"
)

var (
	// ErrMissingToken - в запросе нет bearer-токена.
	ErrMissingToken = errors.New("missing bearer token")
	// ErrInvalidToken - токен не прошёл проверку подписи, срока или не содержит владельца.
	ErrInvalidToken = errors.New("invalid bearer token")
	// ErrSecretRequired - секрет подписи не задан.
	ErrSecretRequired = errors.New("jwt secret is required")
)

// Claims - содержимое токена. Subject хранит owner_id.
type Claims struct {
	jwt.RegisteredClaims
}

// OwnerID возвращает владельца, от имени которого выполняются операции.
func (c Claims) OwnerID() string {
	return c.Subject
}

// Tokens выпускает и проверяет HS256-токены.
type Tokens struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// Option настраивает Tokens.
type Option func(*Tokens)

// WithTTL задаёт время жизни выпускаемых токенов.
func WithTTL(ttl time.Duration) Option {
	return func(t *Tokens) {
		if ttl > 0 {
			t.ttl = ttl
		}
	}
}

// WithIssuer задаёт iss; при проверке iss тоже сверяется.
func WithIssuer(issuer string) Option {
	return func(t *Tokens) {
		t.issuer = issuer
	}
}

// WithClock подменяет часы (для тестов).
func WithClock(now func() time.Time) Option {
	return func(t *Tokens) {
		if now != nil {
			t.now = now
		}
	}
}

// NewTokens создаёт выпускающий/проверяющий объект.
func NewTokens(secret string, opts ...Option) (*Tokens, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrSecretRequired
	}
	t := &Tokens{
		secret: []byte(secret),
		ttl:    defaultTokenTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Issue выпускает токен для владельца.
func (t *Tokens) Issue(ownerID string) (string, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return "", fmt.Errorf("issue token: %w", ErrInvalidToken)
	}

	now := t.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   ownerID,
			Issuer:    t.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse проверяет подпись, срок действия и наличие sub.
func (t *Tokens) Parse(raw string) (Claims, error) {
	if strings.TrimSpace(raw) == "" {
		return Claims{}, ErrMissingToken
	}

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(t.now),
		jwt.WithExpirationRequired(),
	}
	if t.issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(t.issuer))
	}

	var claims Claims
	token, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	}, parserOpts...)
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || strings.TrimSpace(claims.Subject) == "" {
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}

// Authenticate разбирает значение заголовка Authorization и возвращает owner_id.
func (t *Tokens) Authenticate(header string) (string, error) {
	raw, err := BearerToken(header)
	if err != nil {
		return "", err
	}
	claims, err := t.Parse(raw)
	if err != nil {
		return "", err
	}
	return claims.OwnerID(), nil
}

// BearerToken извлекает токен из "Bearer <token>". Схема регистронезависима.
func BearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", ErrMissingToken
	}
	scheme, token, _ := strings.Cut(header, " ")
	if !strings.EqualFold(scheme, bearerScheme) {
		return "", ErrInvalidToken
	}
	// "Bearer" без токена - токена нет, а не чужая схема
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrMissingToken
	}
	return token, nil
}

type ownerKey struct{}

// WithOwner кладёт owner_id в контекст запроса.
func WithOwner(ctx context.Context, ownerID string) context.Context {
	return context.WithValue(ctx, ownerKey{}, ownerID)
}

// OwnerFromContext достаёт owner_id, положенный middleware или interceptor.
func OwnerFromContext(ctx context.Context) (string, bool) {
	owner, ok := ctx.Value(ownerKey{}).(string)
	return owner, ok && owner != ""
}
