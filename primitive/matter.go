// Package primitive implements the CESR primitive codec: qualified
// cryptographic material that renders as Base64URL text (qb64), the byte form
// of that text (qb64b), and the equivalent raw binary (qb2), all prefixed by
// a self-describing derivation code.
//
// Only fixed-width ("hard") codes are supported; see the tables in this file
// and in counter.go and indexer.go for the exact subset.
package primitive

import "fmt"

// Matter derivation codes.
const (
	MtrEd25519Seed   = "A"    // Ed25519 256-bit random seed
	MtrEd25519N      = "B"    // Ed25519 non-transferable verification key
	MtrX25519        = "C"    // X25519 public encryption key
	MtrEd25519       = "D"    // Ed25519 verification key
	MtrBlake3_256    = "E"    // Blake3-256 digest
	MtrBlake2b_256   = "F"    // Blake2b-256 digest
	MtrBlake2s_256   = "G"    // Blake2s-256 digest
	MtrSHA3_256      = "H"    // SHA3-256 digest
	MtrSHA2_256      = "I"    // SHA2-256 digest
	MtrSecp256k1Seed = "J"    // ECDSA secp256k1 256-bit random seed
	MtrX448          = "L"    // X448 public encryption key
	MtrShort         = "M"    // 16-bit number
	MtrBig           = "N"    // 64-bit number
	MtrSalt128       = "0A"   // 128-bit salt or number (sequence numbers)
	MtrEd25519Sig    = "0B"   // Ed25519 signature
	MtrSecp256k1Sig  = "0C"   // ECDSA secp256k1 signature
	MtrBlake3_512    = "0D"   // Blake3-512 digest
	MtrBlake2b_512   = "0E"   // Blake2b-512 digest
	MtrSHA3_512      = "0F"   // SHA3-512 digest
	MtrSHA2_512      = "0G"   // SHA2-512 digest
	MtrLong          = "0H"   // 32-bit number
	MtrSecp256k1N    = "1AAA" // ECDSA secp256k1 non-transferable verification key
	MtrSecp256k1     = "1AAB" // ECDSA secp256k1 verification key
	MtrEd448N        = "1AAC" // Ed448 non-transferable verification key
	MtrEd448         = "1AAD" // Ed448 verification key
	MtrEd448Sig      = "1AAE" // Ed448 signature
	MtrDateTime      = "1AAG" // ISO-8601 datetime in Base64 custom text
)

// sizage is the fixed-width layout of one code: hard (code) size, soft
// (count/index) size, full primitive size, and lead size, all in qb64
// characters (lead in bytes). The supported subset has ls == 0 throughout.
type sizage struct {
	hs int
	ss int
	fs int
	ls int
}

var matterSizes = map[string]sizage{
	MtrEd25519Seed:   {hs: 1, fs: 44},
	MtrEd25519N:      {hs: 1, fs: 44},
	MtrX25519:        {hs: 1, fs: 44},
	MtrEd25519:       {hs: 1, fs: 44},
	MtrBlake3_256:    {hs: 1, fs: 44},
	MtrBlake2b_256:   {hs: 1, fs: 44},
	MtrBlake2s_256:   {hs: 1, fs: 44},
	MtrSHA3_256:      {hs: 1, fs: 44},
	MtrSHA2_256:      {hs: 1, fs: 44},
	MtrSecp256k1Seed: {hs: 1, fs: 44},
	MtrX448:          {hs: 1, fs: 76},
	MtrShort:         {hs: 1, fs: 4},
	MtrBig:           {hs: 1, fs: 12},
	MtrSalt128:       {hs: 2, fs: 24},
	MtrEd25519Sig:    {hs: 2, fs: 88},
	MtrSecp256k1Sig:  {hs: 2, fs: 88},
	MtrBlake3_512:    {hs: 2, fs: 88},
	MtrBlake2b_512:   {hs: 2, fs: 88},
	MtrSHA3_512:      {hs: 2, fs: 88},
	MtrSHA2_512:      {hs: 2, fs: 88},
	MtrLong:          {hs: 2, fs: 8},
	MtrSecp256k1N:    {hs: 4, fs: 48},
	MtrSecp256k1:     {hs: 4, fs: 48},
	MtrEd448N:        {hs: 4, fs: 80},
	MtrEd448:         {hs: 4, fs: 80},
	MtrEd448Sig:      {hs: 4, fs: 156},
	MtrDateTime:      {hs: 4, fs: 36},
}

// matterHardSize maps a code's first character to its hard size.
// Zero means the character starts no known matter code family.
func matterHardSize(c byte) int {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z':
		return 1
	case c == '0':
		return 2
	case c == '1':
		return 4
	default:
		return 0
	}
}

// rawSize returns the raw byte length encoded by a code's body.
func (s sizage) rawSize() int {
	return (s.fs - s.hs - s.ss) * 3 / 4
}

// Matter is qualified cryptographic material: a derivation code plus the raw
// bytes it qualifies. Immutable once constructed.
type Matter struct {
	code string
	raw  []byte
}

// NewMatter constructs a Matter from a known code and raw material of the
// exact size that code requires. The raw bytes are copied.
func NewMatter(code string, raw []byte) (*Matter, error) {
	sz, ok := matterSizes[code]
	if !ok {
		return nil, newError(KindCode, "CESR-MTR-001", fmt.Sprintf("unknown matter code %q", code))
	}
	if len(raw) != sz.rawSize() {
		return nil, newError(KindSize, "CESR-MTR-002",
			fmt.Sprintf("matter code %q requires %d raw bytes, got %d", code, sz.rawSize(), len(raw)))
	}
	return &Matter{code: code, raw: append([]byte(nil), raw...)}, nil
}

// Code returns the derivation code.
func (m *Matter) Code() string { return m.code }

// Raw returns the raw material. Callers must not mutate the result.
func (m *Matter) Raw() []byte { return m.raw }

// FullSize returns the total qb64 character length, code included.
func (m *Matter) FullSize() int { return matterSizes[m.code].fs }

// QB64 returns the fully qualified Base64URL text rendering.
func (m *Matter) QB64() (string, error) {
	return infil(m.code, matterSizes[m.code], "", m.raw)
}

// QB64B returns the byte form of the text rendering.
func (m *Matter) QB64B() ([]byte, error) {
	s, err := m.QB64()
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// QB2 returns the binary-domain rendering.
func (m *Matter) QB2() ([]byte, error) {
	s, err := m.QB64()
	if err != nil {
		return nil, err
	}
	return textToBinary(s)
}

// infil assembles code || soft || b64(raw) with the pad characters that
// realign the code to a 24-bit boundary stripped from the body.
func infil(code string, sz sizage, soft string, raw []byte) (string, error) {
	cs := sz.hs + sz.ss
	ps := cs % 4
	buf := make([]byte, ps+len(raw))
	copy(buf[ps:], raw)
	body := b64Raw.EncodeToString(buf)
	out := code + soft + body[ps:]
	if len(out) != sz.fs {
		return "", newError(KindSize, "CESR-MTR-003",
			fmt.Sprintf("assembled size %d != full size %d for code %q", len(out), sz.fs, code))
	}
	return out, nil
}

// exfil recovers raw material from the body of a qb64 primitive, rejecting
// non-zero pad bits so every raw value has exactly one text rendering.
func exfil(ruleID string, cs int, body []byte) ([]byte, error) {
	ps := cs % 4
	padded := make([]byte, ps+len(body))
	for i := 0; i < ps; i++ {
		padded[i] = 'A'
	}
	copy(padded[ps:], body)
	dec, err := b64Raw.DecodeString(string(padded))
	if err != nil {
		return nil, wrapError(KindDecode, ruleID, "invalid base64 in primitive body", err)
	}
	for i := 0; i < ps; i++ {
		if dec[i] != 0 {
			return nil, newError(KindDecode, ruleID, "non-zero pad bits in primitive body")
		}
	}
	return dec[ps:], nil
}

// textToBinary converts an aligned qb64 string to its qb2 bytes.
func textToBinary(s string) ([]byte, error) {
	if len(s)%4 != 0 {
		return nil, newError(KindSize, "CESR-MTR-004", "text form not 24-bit aligned")
	}
	b, err := b64Raw.DecodeString(s)
	if err != nil {
		return nil, wrapError(KindDecode, "CESR-MTR-005", "invalid base64 in text form", err)
	}
	return b, nil
}

// ParseMatter decodes one matter primitive from the head of a text-domain
// stream and returns it with the unconsumed remainder.
func ParseMatter(b []byte) (*Matter, []byte, error) {
	if len(b) == 0 {
		return nil, nil, newError(KindDecode, "CESR-MTR-010", "empty stream at matter primitive")
	}
	hs := matterHardSize(b[0])
	if hs == 0 {
		return nil, nil, newError(KindCode, "CESR-MTR-011",
			fmt.Sprintf("no matter code starts with %q", string(b[0])))
	}
	if len(b) < hs {
		return nil, nil, newError(KindDecode, "CESR-MTR-012", "truncated matter code")
	}
	code := string(b[:hs])
	sz, ok := matterSizes[code]
	if !ok {
		return nil, nil, newError(KindCode, "CESR-MTR-013", fmt.Sprintf("unsupported matter code %q", code))
	}
	if len(b) < sz.fs {
		return nil, nil, newError(KindDecode, "CESR-MTR-014",
			fmt.Sprintf("truncated matter primitive: need %d characters for code %q, have %d", sz.fs, code, len(b)))
	}
	raw, err := exfil("CESR-MTR-015", hs, b[hs:sz.fs])
	if err != nil {
		return nil, nil, err
	}
	return &Matter{code: code, raw: raw}, b[sz.fs:], nil
}

// ParseMatterB2 decodes one matter primitive from the head of a binary-domain
// stream and returns it with the unconsumed remainder.
func ParseMatterB2(b []byte) (*Matter, []byte, error) {
	if len(b) == 0 {
		return nil, nil, newError(KindDecode, "CESR-MTR-020", "empty stream at matter primitive")
	}
	first, err := b2ToB64Prefix(b, 1)
	if err != nil {
		return nil, nil, err
	}
	hs := matterHardSize(first[0])
	if hs == 0 {
		return nil, nil, newError(KindCode, "CESR-MTR-021",
			fmt.Sprintf("no matter code starts with %q", first))
	}
	code, err := b2ToB64Prefix(b, hs)
	if err != nil {
		return nil, nil, err
	}
	sz, ok := matterSizes[code]
	if !ok {
		return nil, nil, newError(KindCode, "CESR-MTR-022", fmt.Sprintf("unsupported matter code %q", code))
	}
	bfs := sz.fs * 3 / 4
	if len(b) < bfs {
		return nil, nil, newError(KindDecode, "CESR-MTR-023",
			fmt.Sprintf("truncated matter primitive: need %d bytes for code %q, have %d", bfs, code, len(b)))
	}
	m, rest, err := ParseMatter([]byte(b64Raw.EncodeToString(b[:bfs])))
	if err != nil {
		return nil, nil, err
	}
	if len(rest) != 0 {
		return nil, nil, newError(KindSize, "CESR-MTR-024", "internal: binary width mismatch")
	}
	return m, b[bfs:], nil
}
