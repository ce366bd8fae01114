package primitive

import (
	"bytes"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"fmt"
	"strings"
	"time"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"
)

// Code sets accepted by the typed wrappers below. A wrapper constructor fails
// with a Code error when handed matter outside its set, so a parsed group can
// never hold a primitive of the wrong kind.

var prefixerCodes = codeSet(
	MtrEd25519N, MtrEd25519, MtrBlake3_256, MtrBlake2b_256, MtrBlake2s_256,
	MtrSHA3_256, MtrSHA2_256, MtrSecp256k1N, MtrSecp256k1, MtrEd448N, MtrEd448,
)

var verferCodes = codeSet(
	MtrEd25519N, MtrEd25519, MtrSecp256k1N, MtrSecp256k1, MtrEd448N, MtrEd448,
)

var nonTransCodes = codeSet(MtrEd25519N, MtrSecp256k1N, MtrEd448N)

var digestCodes = codeSet(
	MtrBlake3_256, MtrBlake2b_256, MtrBlake2s_256, MtrSHA3_256, MtrSHA2_256,
	MtrBlake3_512, MtrBlake2b_512, MtrSHA3_512, MtrSHA2_512,
)

var cigarCodes = codeSet(MtrEd25519Sig, MtrSecp256k1Sig, MtrEd448Sig)

func codeSet(codes ...string) map[string]bool {
	m := make(map[string]bool, len(codes))
	for _, c := range codes {
		m[c] = true
	}
	return m
}

func checkCode(m *Matter, set map[string]bool, what, ruleID string) error {
	if m == nil {
		return newError(KindCode, ruleID, fmt.Sprintf("nil matter for %s", what))
	}
	if !set[m.Code()] {
		return newError(KindCode, ruleID, fmt.Sprintf("code %q is not a %s code", m.Code(), what))
	}
	return nil
}

// Prefixer is an identifier prefix: a verification key or a digest of an
// inception event.
type Prefixer struct{ Matter }

func NewPrefixer(m *Matter) (*Prefixer, error) {
	if err := checkCode(m, prefixerCodes, "prefix", "CESR-PRE-001"); err != nil {
		return nil, err
	}
	return &Prefixer{Matter: *m}, nil
}

// Verfer is a verification (public) key.
type Verfer struct{ Matter }

func NewVerfer(m *Matter) (*Verfer, error) {
	if err := checkCode(m, verferCodes, "verification key", "CESR-VER-001"); err != nil {
		return nil, err
	}
	return &Verfer{Matter: *m}, nil
}

// Transferable reports whether the key's controlling identifier may rotate.
func (v *Verfer) Transferable() bool { return !nonTransCodes[v.Code()] }

// Cigar is an unindexed (receipt) signature.
type Cigar struct{ Matter }

func NewCigar(m *Matter) (*Cigar, error) {
	if err := checkCode(m, cigarCodes, "signature", "CESR-CIG-001"); err != nil {
		return nil, err
	}
	return &Cigar{Matter: *m}, nil
}

// Diger is a cryptographic digest.
type Diger struct{ Matter }

func NewDiger(m *Matter) (*Diger, error) {
	if err := checkCode(m, digestCodes, "digest", "CESR-DIG-001"); err != nil {
		return nil, err
	}
	return &Diger{Matter: *m}, nil
}

// DigestOf computes the digest of ser under the algorithm named by code and
// returns it as a Diger.
func DigestOf(code string, ser []byte) (*Diger, error) {
	raw, err := digest(code, ser)
	if err != nil {
		return nil, err
	}
	m, err := NewMatter(code, raw)
	if err != nil {
		return nil, err
	}
	return &Diger{Matter: *m}, nil
}

func digest(code string, ser []byte) ([]byte, error) {
	switch code {
	case MtrBlake3_256:
		s := blake3.Sum256(ser)
		return s[:], nil
	case MtrBlake3_512:
		s := blake3.Sum512(ser)
		return s[:], nil
	case MtrBlake2b_256:
		s := blake2b.Sum256(ser)
		return s[:], nil
	case MtrBlake2b_512:
		s := blake2b.Sum512(ser)
		return s[:], nil
	case MtrBlake2s_256:
		s := blake2s.Sum256(ser)
		return s[:], nil
	case MtrSHA3_256:
		s := sha3.Sum256(ser)
		return s[:], nil
	case MtrSHA3_512:
		s := sha3.Sum512(ser)
		return s[:], nil
	case MtrSHA2_256:
		s := sha256.Sum256(ser)
		return s[:], nil
	case MtrSHA2_512:
		s := sha512.Sum512(ser)
		return s[:], nil
	default:
		return nil, newError(KindUnsupported, "CESR-DIG-002",
			fmt.Sprintf("code %q names no supported digest", code))
	}
}

// Saider is a self-addressing identifier: a digest embedded in the content it
// identifies.
type Saider struct{ Matter }

func NewSaider(m *Matter) (*Saider, error) {
	if err := checkCode(m, digestCodes, "self-addressing identifier", "CESR-SAD-001"); err != nil {
		return nil, err
	}
	return &Saider{Matter: *m}, nil
}

// Matches reports whether the identifier's digest equals the digest of ser
// under the identifier's own algorithm.
func (s *Saider) Matches(ser []byte) (bool, error) {
	raw, err := digest(s.Code(), ser)
	if err != nil {
		return false, err
	}
	return bytes.Equal(raw, s.Raw()), nil
}

// Seqner is a sequence number held in the 128-bit salt/number code.
type Seqner struct{ Matter }

func NewSeqner(m *Matter) (*Seqner, error) {
	if m == nil || m.Code() != MtrSalt128 {
		return nil, newError(KindCode, "CESR-SEQ-001", "sequence numbers use the 128-bit number code")
	}
	return &Seqner{Matter: *m}, nil
}

// NewSeqnerFromSn builds the 128-bit primitive holding sn.
func NewSeqnerFromSn(sn uint64) (*Seqner, error) {
	raw := make([]byte, 16)
	binary.BigEndian.PutUint64(raw[8:], sn)
	m, err := NewMatter(MtrSalt128, raw)
	if err != nil {
		return nil, err
	}
	return &Seqner{Matter: *m}, nil
}

// Sn returns the sequence number, failing when the value does not fit in 64
// bits.
func (s *Seqner) Sn() (uint64, error) {
	raw := s.Raw()
	for _, b := range raw[:8] {
		if b != 0 {
			return 0, newError(KindSize, "CESR-SEQ-002", "sequence number exceeds 64 bits")
		}
	}
	return binary.BigEndian.Uint64(raw[8:]), nil
}

// Dater is an ISO-8601 datestamp. The text body encodes the datetime
// directly in Base64 characters with ':' as 'c', '.' as 'd' and '+' as 'p'.
type Dater struct{ Matter }

const daterLayout = "2006-01-02T15:04:05.000000-07:00"

func NewDater(m *Matter) (*Dater, error) {
	if m == nil || m.Code() != MtrDateTime {
		return nil, newError(KindCode, "CESR-DTR-001", "datestamps use the datetime code")
	}
	d := &Dater{Matter: *m}
	if _, err := d.DateTime(); err != nil {
		return nil, err
	}
	return d, nil
}

// NewDaterFromTime builds a datestamp primitive for t at microsecond
// precision.
func NewDaterFromTime(t time.Time) (*Dater, error) {
	dts := t.Format(daterLayout)
	body := strings.NewReplacer(":", "c", ".", "d", "+", "p").Replace(dts)
	raw, err := b64Raw.DecodeString(body)
	if err != nil {
		return nil, wrapError(KindDecode, "CESR-DTR-002", "datetime text is not base64 clean", err)
	}
	m, err := NewMatter(MtrDateTime, raw)
	if err != nil {
		return nil, err
	}
	return &Dater{Matter: *m}, nil
}

// DTS returns the ISO-8601 text of the datestamp.
func (d *Dater) DTS() (string, error) {
	q, err := d.QB64()
	if err != nil {
		return "", err
	}
	body := q[4:]
	return strings.NewReplacer("c", ":", "d", ".", "p", "+").Replace(body), nil
}

// DateTime returns the datestamp as a time.Time.
func (d *Dater) DateTime() (time.Time, error) {
	dts, err := d.DTS()
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(daterLayout, dts)
	if err != nil {
		return time.Time{}, wrapError(KindDecode, "CESR-DTR-003", "malformed datetime body", err)
	}
	return t, nil
}
