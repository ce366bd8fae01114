package primitive

import (
	"strings"
	"testing"
	"time"
)

func TestDigestOfAllCodes(t *testing.T) {
	ser := []byte(`{"v":"KERI10JSON0000fb_","t":"icp"}`)
	for _, code := range []string{
		MtrBlake3_256, MtrBlake3_512,
		MtrBlake2b_256, MtrBlake2b_512, MtrBlake2s_256,
		MtrSHA3_256, MtrSHA3_512,
		MtrSHA2_256, MtrSHA2_512,
	} {
		d, err := DigestOf(code, ser)
		if err != nil {
			t.Fatalf("DigestOf(%s): %v", code, err)
		}
		if d.Code() != code {
			t.Fatalf("digest code %s, want %s", d.Code(), code)
		}
		q, err := d.QB64()
		if err != nil {
			t.Fatalf("QB64(%s): %v", code, err)
		}
		m, rest, err := ParseMatter([]byte(q))
		if err != nil || len(rest) != 0 {
			t.Fatalf("reparse %s: %v (remainder %d)", code, err, len(rest))
		}
		if m.Code() != code {
			t.Fatalf("reparsed code %s, want %s", m.Code(), code)
		}
	}
	if _, err := DigestOf(MtrEd25519, ser); err == nil || !IsKind(err, KindUnsupported) {
		t.Fatalf("expected Unsupported kind for non-digest code, got %v", err)
	}
}

func TestSaiderMatches(t *testing.T) {
	ser := []byte("self addressed content")
	d, err := DigestOf(MtrBlake3_256, ser)
	if err != nil {
		t.Fatalf("DigestOf: %v", err)
	}
	s, err := NewSaider(&d.Matter)
	if err != nil {
		t.Fatalf("NewSaider: %v", err)
	}
	ok, err := s.Matches(ser)
	if err != nil {
		t.Fatalf("Matches: %v", err)
	}
	if !ok {
		t.Fatalf("identifier must match its own content")
	}
	ok, err = s.Matches([]byte("tampered content"))
	if err != nil {
		t.Fatalf("Matches: %v", err)
	}
	if ok {
		t.Fatalf("identifier must not match altered content")
	}
}

func TestVerferTransferable(t *testing.T) {
	m, err := NewMatter(MtrEd25519N, patternRaw(32, 0x30))
	if err != nil {
		t.Fatalf("NewMatter: %v", err)
	}
	v, err := NewVerfer(m)
	if err != nil {
		t.Fatalf("NewVerfer: %v", err)
	}
	if v.Transferable() {
		t.Fatalf("code B is non-transferable")
	}
	m, _ = NewMatter(MtrEd25519, patternRaw(32, 0x31))
	v, err = NewVerfer(m)
	if err != nil {
		t.Fatalf("NewVerfer: %v", err)
	}
	if !v.Transferable() {
		t.Fatalf("code D is transferable")
	}
	m, _ = NewMatter(MtrSHA2_256, patternRaw(32, 0x32))
	if _, err := NewVerfer(m); err == nil || !IsKind(err, KindCode) {
		t.Fatalf("digest code must not build a verification key, got %v", err)
	}
}

func TestSeqnerRoundTrip(t *testing.T) {
	s, err := NewSeqnerFromSn(1234567890)
	if err != nil {
		t.Fatalf("NewSeqnerFromSn: %v", err)
	}
	sn, err := s.Sn()
	if err != nil {
		t.Fatalf("Sn: %v", err)
	}
	if sn != 1234567890 {
		t.Fatalf("sn %d", sn)
	}
	q, err := s.QB64()
	if err != nil {
		t.Fatalf("QB64: %v", err)
	}
	if len(q) != 24 || !strings.HasPrefix(q, MtrSalt128) {
		t.Fatalf("seqner qb64 %q", q)
	}
}

func TestSeqnerOverflow(t *testing.T) {
	raw := patternRaw(16, 0x01) // non-zero high half
	m, err := NewMatter(MtrSalt128, raw)
	if err != nil {
		t.Fatalf("NewMatter: %v", err)
	}
	s, err := NewSeqner(m)
	if err != nil {
		t.Fatalf("NewSeqner: %v", err)
	}
	if _, err := s.Sn(); err == nil || !IsKind(err, KindSize) {
		t.Fatalf("expected Size kind for 128-bit value, got %v", err)
	}
}

func TestDaterRoundTrip(t *testing.T) {
	at := time.Date(2020, 8, 22, 17, 50, 9, 988921000, time.UTC)
	d, err := NewDaterFromTime(at)
	if err != nil {
		t.Fatalf("NewDaterFromTime: %v", err)
	}
	dts, err := d.DTS()
	if err != nil {
		t.Fatalf("DTS: %v", err)
	}
	if dts != "2020-08-22T17:50:09.988921+00:00" {
		t.Fatalf("dts %q", dts)
	}
	got, err := d.DateTime()
	if err != nil {
		t.Fatalf("DateTime: %v", err)
	}
	if !got.Equal(at) {
		t.Fatalf("datetime %v, want %v", got, at)
	}

	q, err := d.QB64()
	if err != nil {
		t.Fatalf("QB64: %v", err)
	}
	if len(q) != 36 || !strings.HasPrefix(q, MtrDateTime) {
		t.Fatalf("dater qb64 %q", q)
	}
	m, rest, err := ParseMatter([]byte(q))
	if err != nil || len(rest) != 0 {
		t.Fatalf("reparse: %v", err)
	}
	d2, err := NewDater(m)
	if err != nil {
		t.Fatalf("NewDater: %v", err)
	}
	dts2, err := d2.DTS()
	if err != nil {
		t.Fatalf("DTS: %v", err)
	}
	if dts2 != dts {
		t.Fatalf("round trip dts %q != %q", dts2, dts)
	}
}
