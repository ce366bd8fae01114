package primitive

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"testing"

	"github.com/cloudflare/circl/sign/ed448"
)

func ed25519Sig(t *testing.T, msg []byte) []byte {
	t.Helper()
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generate ed25519 key: %v", err)
	}
	return ed25519.Sign(priv, msg)
}

func ed448Sig(t *testing.T, msg []byte) []byte {
	t.Helper()
	_, priv, err := ed448.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generate ed448 key: %v", err)
	}
	return ed448.Sign(priv, msg, "")
}

func TestSigerRoundTrip(t *testing.T) {
	sig := ed25519Sig(t, []byte("serialized event"))
	s, err := NewSiger(IdxEd25519Sig, 2, -1, sig)
	if err != nil {
		t.Fatalf("NewSiger: %v", err)
	}
	if s.Ondex() != 2 {
		t.Fatalf("ondex must default to index, got %d", s.Ondex())
	}
	q, err := s.QB64()
	if err != nil {
		t.Fatalf("QB64: %v", err)
	}
	if len(q) != 88 || q[:2] != "AC" {
		t.Fatalf("qb64 %q: want 88 characters starting with AC", q)
	}
	got, rest, err := ParseSiger([]byte(q + "more"))
	if err != nil {
		t.Fatalf("ParseSiger: %v", err)
	}
	if got.Code() != IdxEd25519Sig || got.Index() != 2 || got.Ondex() != 2 {
		t.Fatalf("parsed %s index=%d ondex=%d", got.Code(), got.Index(), got.Ondex())
	}
	if !bytes.Equal(got.Raw(), sig) {
		t.Fatalf("raw mismatch after round trip")
	}
	if string(rest) != "more" {
		t.Fatalf("remainder %q", rest)
	}
}

func TestSigerBinaryRoundTrip(t *testing.T) {
	sig := ed25519Sig(t, []byte("binary domain"))
	s, err := NewSiger(IdxEd25519CrtSig, 5, -1, sig)
	if err != nil {
		t.Fatalf("NewSiger: %v", err)
	}
	b2, err := s.QB2()
	if err != nil {
		t.Fatalf("QB2: %v", err)
	}
	if len(b2) != 66 {
		t.Fatalf("qb2 length %d, want 66", len(b2))
	}
	got, rest, err := ParseSigerB2(b2)
	if err != nil {
		t.Fatalf("ParseSigerB2: %v", err)
	}
	if len(rest) != 0 {
		t.Fatalf("unexpected remainder of %d bytes", len(rest))
	}
	if got.Code() != IdxEd25519CrtSig || got.Index() != 5 || got.Ondex() != -1 {
		t.Fatalf("parsed %s index=%d ondex=%d", got.Code(), got.Index(), got.Ondex())
	}
	if !bytes.Equal(got.Raw(), sig) {
		t.Fatalf("raw mismatch after binary round trip")
	}
}

func TestSigerEd448(t *testing.T) {
	sig := ed448Sig(t, []byte("dual index"))
	s, err := NewSiger(IdxEd448Sig, 3, 7, sig)
	if err != nil {
		t.Fatalf("NewSiger: %v", err)
	}
	q, err := s.QB64()
	if err != nil {
		t.Fatalf("QB64: %v", err)
	}
	if len(q) != 156 || q[:2] != IdxEd448Sig {
		t.Fatalf("qb64 length %d prefix %q", len(q), q[:2])
	}
	got, rest, err := ParseSiger([]byte(q))
	if err != nil {
		t.Fatalf("ParseSiger: %v", err)
	}
	if got.Index() != 3 || got.Ondex() != 7 {
		t.Fatalf("parsed index=%d ondex=%d", got.Index(), got.Ondex())
	}
	if !bytes.Equal(got.Raw(), sig) || len(rest) != 0 {
		t.Fatalf("ed448 round trip mismatch")
	}
}

func TestSigerCurrentOnlyRules(t *testing.T) {
	sig := ed25519Sig(t, []byte("rules"))
	if _, err := NewSiger(IdxEd25519CrtSig, 0, 0, sig); err == nil {
		t.Fatalf("current-only code must reject an explicit ondex")
	}
	if _, err := NewSiger(IdxEd25519Sig, 1, 2, sig); err == nil {
		t.Fatalf("single-index code must reject ondex != index")
	}
	if _, err := NewSiger(IdxEd25519Sig, 64, -1, sig); err == nil {
		t.Fatalf("index must fit one soft character")
	}
	if _, err := NewSiger(IdxEd25519Sig, 0, -1, sig[:63]); err == nil {
		t.Fatalf("short raw must be rejected")
	}
}

func TestSigerRejectsMalformed(t *testing.T) {
	if _, _, err := ParseSiger(nil); err == nil || !IsKind(err, KindDecode) {
		t.Fatalf("expected Decode kind for empty stream, got %v", err)
	}
	if _, _, err := ParseSiger([]byte("-AAB")); err == nil || !IsKind(err, KindCode) {
		t.Fatalf("expected Code kind for counter byte, got %v", err)
	}
	sig := ed25519Sig(t, []byte("short"))
	s, _ := NewSiger(IdxEd25519Sig, 0, -1, sig)
	q, _ := s.QB64()
	if _, _, err := ParseSiger([]byte(q[:87])); err == nil || !IsKind(err, KindDecode) {
		t.Fatalf("expected Decode kind for truncated signature, got %v", err)
	}
}
