package security

import (
	"errors"
	"testing"

	"github.com/avolkov/hrdesk/internal/application/auth"
)

func TestBcryptHasher_HashAndCompare_RoundTrip(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(4) // min cost keeps the test fast

	hash, err := h.Hash("pw123")
	if err != nil {
		t.Fatalf("hash err: %v", err)
	}
	if hash == "" || hash == "pw123" {
		t.Fatalf("hash must not equal or contain the plaintext, got %q", hash)
	}

	if err := h.Compare(hash, "pw123"); err != nil {
		t.Fatalf("expected match, got %v", err)
	}
}

func TestBcryptHasher_Compare_WrongPassword(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(4)
	hash, err := h.Hash("pw123")
	if err != nil {
		t.Fatalf("hash err: %v", err)
	}

	err = h.Compare(hash, "wrong")
	if !errors.Is(err, auth.ErrPasswordMismatch) {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}
}

func TestBcryptHasher_Compare_CorruptHash(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(4)

	err := h.Compare("not-a-bcrypt-hash", "pw")
	if err == nil {
		t.Fatalf("expected error for corrupt hash")
	}
	if errors.Is(err, auth.ErrPasswordMismatch) {
		t.Fatalf("corrupt hash must not report as mismatch")
	}
}

func TestBcryptHasher_SaltedHashesDiffer(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(4)

	h1, err := h.Hash("same")
	if err != nil {
		t.Fatalf("hash err: %v", err)
	}
	h2, err := h.Hash("same")
	if err != nil {
		t.Fatalf("hash err: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("expected per-password salts to yield distinct hashes")
	}
}

func TestNewBcryptHasher_NonPositiveCost_UsesDefault(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(0)
	if h.cost <= 0 {
		t.Fatalf("expected a sane default cost, got %d", h.cost)
	}
}
