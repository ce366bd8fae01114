package primitive

import (
	"bytes"
	"strings"
	"testing"
)

func patternRaw(n int, seed byte) []byte {
	raw := make([]byte, n)
	for i := range raw {
		raw[i] = seed + byte(i)
	}
	return raw
}

func TestMatterTextRoundTrip(t *testing.T) {
	cases := []struct {
		code string
		rize int
	}{
		{MtrEd25519N, 32},
		{MtrEd25519, 32},
		{MtrBlake3_256, 32},
		{MtrSalt128, 16},
		{MtrEd25519Sig, 64},
		{MtrSHA2_512, 64},
		{MtrShort, 2},
		{MtrBig, 8},
		{MtrLong, 4},
		{MtrSecp256k1, 33},
		{MtrEd448, 57},
		{MtrEd448Sig, 114},
		{MtrX448, 56},
	}
	for _, tc := range cases {
		m, err := NewMatter(tc.code, patternRaw(tc.rize, 0x11))
		if err != nil {
			t.Fatalf("NewMatter(%s): %v", tc.code, err)
		}
		q, err := m.QB64()
		if err != nil {
			t.Fatalf("QB64(%s): %v", tc.code, err)
		}
		if len(q) != m.FullSize() {
			t.Fatalf("code %s: qb64 length %d != full size %d", tc.code, len(q), m.FullSize())
		}
		if !strings.HasPrefix(q, tc.code) {
			t.Fatalf("code %s: qb64 %q does not start with its code", tc.code, q)
		}
		got, rest, err := ParseMatter([]byte(q))
		if err != nil {
			t.Fatalf("ParseMatter(%s): %v", tc.code, err)
		}
		if len(rest) != 0 {
			t.Fatalf("code %s: unexpected remainder %q", tc.code, rest)
		}
		if got.Code() != tc.code || !bytes.Equal(got.Raw(), m.Raw()) {
			t.Fatalf("code %s: round trip mismatch", tc.code)
		}
	}
}

func TestMatterBinaryRoundTrip(t *testing.T) {
	m, err := NewMatter(MtrEd25519Sig, patternRaw(64, 0x42))
	if err != nil {
		t.Fatalf("NewMatter: %v", err)
	}
	b2, err := m.QB2()
	if err != nil {
		t.Fatalf("QB2: %v", err)
	}
	if len(b2) != m.FullSize()/4*3 {
		t.Fatalf("qb2 length %d != %d", len(b2), m.FullSize()/4*3)
	}
	got, rest, err := ParseMatterB2(b2)
	if err != nil {
		t.Fatalf("ParseMatterB2: %v", err)
	}
	if len(rest) != 0 {
		t.Fatalf("unexpected remainder of %d bytes", len(rest))
	}
	if got.Code() != m.Code() || !bytes.Equal(got.Raw(), m.Raw()) {
		t.Fatalf("binary round trip mismatch")
	}
}

func TestMatterRemainderThreading(t *testing.T) {
	a, _ := NewMatter(MtrEd25519N, patternRaw(32, 0x01))
	b, _ := NewMatter(MtrBlake3_256, patternRaw(32, 0x02))
	qa, _ := a.QB64()
	qb, _ := b.QB64()
	stream := []byte(qa + qb + "trailing")

	first, rest, err := ParseMatter(stream)
	if err != nil {
		t.Fatalf("first parse: %v", err)
	}
	if first.Code() != MtrEd25519N {
		t.Fatalf("first code %s", first.Code())
	}
	second, rest, err := ParseMatter(rest)
	if err != nil {
		t.Fatalf("second parse: %v", err)
	}
	if second.Code() != MtrBlake3_256 {
		t.Fatalf("second code %s", second.Code())
	}
	if string(rest) != "trailing" {
		t.Fatalf("remainder %q", rest)
	}
}

func TestMatterTruncated(t *testing.T) {
	m, _ := NewMatter(MtrEd25519N, patternRaw(32, 0x07))
	q, _ := m.QB64()
	_, _, err := ParseMatter([]byte(q[:43]))
	if err == nil {
		t.Fatalf("expected truncation error")
	}
	if !IsKind(err, KindDecode) {
		t.Fatalf("expected Decode kind, got %v", err)
	}

	b2, _ := m.QB2()
	_, _, err = ParseMatterB2(b2[:20])
	if err == nil || !IsKind(err, KindDecode) {
		t.Fatalf("expected Decode kind for truncated binary, got %v", err)
	}
}

func TestMatterUnknownCode(t *testing.T) {
	_, _, err := ParseMatter([]byte(strings.Repeat("z", 44)))
	if err == nil || !IsKind(err, KindCode) {
		t.Fatalf("expected Code kind for unsupported code, got %v", err)
	}
	_, _, err = ParseMatter([]byte("#garbage"))
	if err == nil || !IsKind(err, KindCode) {
		t.Fatalf("expected Code kind for non-code byte, got %v", err)
	}
	if _, err := NewMatter("??", nil); err == nil {
		t.Fatalf("expected error for unknown construction code")
	}
}

func TestMatterRawSizeEnforced(t *testing.T) {
	if _, err := NewMatter(MtrEd25519N, patternRaw(31, 0)); err == nil {
		t.Fatalf("expected raw size error")
	}
	if _, err := NewMatter(MtrEd25519N, patternRaw(33, 0)); err == nil {
		t.Fatalf("expected raw size error")
	}
}

func TestMatterRejectsNonZeroPadBits(t *testing.T) {
	// A valid 44-character frame whose first body character sets the two
	// pad bits that must be zero for code alignment.
	q := "B_" + strings.Repeat("A", 42)
	_, _, err := ParseMatter([]byte(q))
	if err == nil || !IsKind(err, KindDecode) {
		t.Fatalf("expected Decode kind for non-zero pad bits, got %v", err)
	}
}
