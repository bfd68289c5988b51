package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestTokens_IssueAndParse(t *testing.T) {
	now := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	tokens, err := NewTokens("secret", WithClock(fixedClock(now)), WithIssuer("wholesale-orders"))
	require.NoError(t, err)

	raw, err := tokens.Issue("owner-1")
	require.NoError(t, err)

	claims, err := tokens.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "owner-1", claims.OwnerID())
	assert.Equal(t, "wholesale-orders", claims.Issuer)
	assert.True(t, now.Add(defaultTokenTTL).Equal(claims.ExpiresAt.Time))
}

func TestTokens_RequiresSecret(t *testing.T) {
	_, err := NewTokens("  ")
	require.ErrorIs(t, err, ErrSecretRequired)
}

func TestTokens_IssueRequiresOwner(t *testing.T) {
	tokens, err := NewTokens("secret")
	require.NoError(t, err)

	_, err = tokens.Issue(" ")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokens_ParseRejectsExpired(t *testing.T) {
	issuedAt := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	issuer, err := NewTokens("secret", WithClock(fixedClock(issuedAt)), WithTTL(time.Minute))
	require.NoError(t, err)
	raw, err := issuer.Issue("owner-1")
	require.NoError(t, err)

	verifier, err := NewTokens("secret", WithClock(fixedClock(issuedAt.Add(time.Hour))))
	require.NoError(t, err)

	_, err = verifier.Parse(raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokens_ParseRejectsForeignSecret(t *testing.T) {
	issuer, err := NewTokens("secret-a")
	require.NoError(t, err)
	raw, err := issuer.Issue("owner-1")
	require.NoError(t, err)

	verifier, err := NewTokens("secret-b")
	require.NoError(t, err)

	_, err = verifier.Parse(raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokens_ParseRejectsOtherAlgorithm(t *testing.T) {
	tokens, err := NewTokens("secret")
	require.NoError(t, err)

	claims := jwt.RegisteredClaims{
		Subject:   "owner-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = tokens.Parse(raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokens_ParseRequiresSubject(t *testing.T) {
	tokens, err := NewTokens("secret")
	require.NoError(t, err)

	claims := jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = tokens.Parse(raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestBearerToken(t *testing.T) {
	cases := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "ok", header: "Bearer abc", want: "abc"},
		{name: "lowercase scheme", header: "bearer abc", want: "abc"},
		{name: "empty", header: "", wantErr: ErrMissingToken},
		{name: "scheme only", header: "Bearer ", wantErr: ErrMissingToken},
		{name: "bare scheme lowercase", header: "bearer", wantErr: ErrMissingToken},
		{name: "scheme with spaces", header: "BEARER    ", wantErr: ErrMissingToken},
		{name: "extra spaces before token", header: "Bearer   abc ", want: "abc"},
		{name: "basic", header: "Basic abc", wantErr: ErrInvalidToken},
		{name: "scheme prefix glued", header: "Bearerabc", wantErr: ErrInvalidToken},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := BearerToken(tc.header)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTokens_Authenticate(t *testing.T) {
	tokens, err := NewTokens("secret")
	require.NoError(t, err)
	raw, err := tokens.Issue("owner-7")
	require.NoError(t, err)

	owner, err := tokens.Authenticate("Bearer " + raw)
	require.NoError(t, err)
	assert.Equal(t, "owner-7", owner)
}

func TestOwnerContext(t *testing.T) {
	_, ok := OwnerFromContext(context.Background())
	assert.False(t, ok)

	owner, ok := OwnerFromContext(WithOwner(context.Background(), "owner-1"))
	assert.True(t, ok)
	assert.Equal(t, "owner-1", owner)
}
