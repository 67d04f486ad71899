package security

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/avolkov/hrdesk/internal/domain"
)

func TestJWTSigner_SignAndVerify_Success(t *testing.T) {
	t.Parallel()

	s := NewJWTSigner("secret", "hrdesk")
	tok, err := s.SignAccessToken("u1", "a@x.com", "user", 2*time.Minute)
	if err != nil {
		t.Fatalf("sign err: %v", err)
	}
	if tok == "" {
		t.Fatalf("expected non-empty token")
	}
	if parts := strings.Split(tok, "."); len(parts) != 3 {
		t.Fatalf("expected header.claims.signature, got %d segments", len(parts))
	}

	claims, err := s.VerifyAccessToken(tok)
	if err != nil {
		t.Fatalf("verify err: %v", err)
	}
	if claims.UserID != "u1" || claims.Email != "a@x.com" || claims.Role != "user" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.Exp.IsZero() || claims.IssuedAt.IsZero() {
		t.Fatalf("expected iat and exp to be set")
	}
	if got := claims.Exp.Sub(claims.IssuedAt); got != 2*time.Minute {
		t.Fatalf("expected 2m lifetime, got %s", got)
	}
}

func TestJWTSigner_Verify_Expired_ReturnsTokenExpired(t *testing.T) {
	t.Parallel()

	s := NewJWTSigner("secret", "hrdesk")
	tok, err := s.SignAccessToken("u1", "a@x.com", "user", -1*time.Second) // already expired
	if err != nil {
		t.Fatalf("sign err: %v", err)
	}

	_, verr := s.VerifyAccessToken(tok)
	if verr == nil {
		t.Fatalf("expected error, got nil")
	}
	if !domain.Is(verr, "token_expired") {
		t.Fatalf("expected token_expired, got %v", verr)
	}
}

func TestJWTSigner_Verify_WrongSecret_ReturnsSignatureInvalid(t *testing.T) {
	t.Parallel()

	s1 := NewJWTSigner("secret1", "hrdesk")
	s2 := NewJWTSigner("secret2", "hrdesk")

	tok, err := s1.SignAccessToken("u1", "a@x.com", "user", time.Minute)
	if err != nil {
		t.Fatalf("sign err: %v", err)
	}

	_, verr := s2.VerifyAccessToken(tok)
	if !domain.Is(verr, "token_signature_invalid") {
		t.Fatalf("expected token_signature_invalid, got %v", verr)
	}
}

func TestJWTSigner_Verify_TamperedSignature_ReturnsSignatureInvalid(t *testing.T) {
	t.Parallel()

	s := NewJWTSigner("secret", "hrdesk")
	tok, err := s.SignAccessToken("u1", "a@x.com", "user", time.Minute)
	if err != nil {
		t.Fatalf("sign err: %v", err)
	}

	parts := strings.Split(tok, ".")
	sig := []byte(parts[2])
	// flip one character well inside the signature segment
	if sig[5] != 'A' {
		sig[5] = 'A'
	} else {
		sig[5] = 'B'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, verr := s.VerifyAccessToken(tampered)
	if !domain.Is(verr, "token_signature_invalid") {
		t.Fatalf("expected token_signature_invalid, got %v", verr)
	}
}

func TestJWTSigner_Verify_TamperedClaims_ReturnsSignatureInvalid(t *testing.T) {
	t.Parallel()

	s := NewJWTSigner("secret", "hrdesk")
	userTok, err := s.SignAccessToken("u1", "a@x.com", "user", time.Minute)
	if err != nil {
		t.Fatalf("sign err: %v", err)
	}
	adminTok, err := s.SignAccessToken("u1", "a@x.com", "admin", time.Minute)
	if err != nil {
		t.Fatalf("sign err: %v", err)
	}

	// graft the admin claims onto the user token's signature
	userParts := strings.Split(userTok, ".")
	adminParts := strings.Split(adminTok, ".")
	frankenstein := adminParts[0] + "." + adminParts[1] + "." + userParts[2]

	_, verr := s.VerifyAccessToken(frankenstein)
	if !domain.Is(verr, "token_signature_invalid") {
		t.Fatalf("expected token_signature_invalid, got %v", verr)
	}
}

func TestJWTSigner_Verify_Garbage_ReturnsMalformed(t *testing.T) {
	t.Parallel()

	s := NewJWTSigner("secret", "hrdesk")

	for _, tok := range []string{"garbage", "a.b", "a.b.c.d", "!!.!!.!!"} {
		_, verr := s.VerifyAccessToken(tok)
		if !domain.Is(verr, "token_malformed") {
			t.Fatalf("expected token_malformed for %q, got %v", tok, verr)
		}
	}
}

func TestJWTSigner_Verify_AlgConfusion_Rejected(t *testing.T) {
	t.Parallel()

	// Create a token with "none" alg (unsigned). Verify must reject it.
	claims := jwt.MapClaims{
		"uid":  "u1",
		"role": "admin",
		"exp":  time.Now().Add(time.Minute).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	unsigned, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign err: %v", err)
	}

	s := NewJWTSigner("secret", "hrdesk")
	if _, verr := s.VerifyAccessToken(unsigned); verr == nil {
		t.Fatalf("expected unsigned token to be rejected")
	}
}
