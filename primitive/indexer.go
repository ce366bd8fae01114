package primitive

import "fmt"

// Indexed signature codes. The "Crt" variants attach to the current key list
// only and carry no ondex (prior-rotation offset).
const (
	IdxEd25519Sig      = "A"  // Ed25519, index == ondex
	IdxEd25519CrtSig   = "B"  // Ed25519, current only
	IdxSecp256k1Sig    = "C"  // ECDSA secp256k1, index == ondex
	IdxSecp256k1CrtSig = "D"  // ECDSA secp256k1, current only
	IdxEd448Sig        = "0A" // Ed448, separate ondex character
	IdxEd448CrtSig     = "0B" // Ed448, current only
)

// xizage extends sizage with the ondex width os inside the soft part.
type xizage struct {
	hs int
	ss int
	os int
	fs int
}

var sigerSizes = map[string]xizage{
	IdxEd25519Sig:      {hs: 1, ss: 1, fs: 88},
	IdxEd25519CrtSig:   {hs: 1, ss: 1, fs: 88},
	IdxSecp256k1Sig:    {hs: 1, ss: 1, fs: 88},
	IdxSecp256k1CrtSig: {hs: 1, ss: 1, fs: 88},
	IdxEd448Sig:        {hs: 2, ss: 2, os: 1, fs: 156},
	IdxEd448CrtSig:     {hs: 2, ss: 2, os: 1, fs: 156},
}

func sigerHardSize(c byte) int {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z':
		return 1
	case c == '0':
		return 2
	default:
		return 0
	}
}

func sigerCurrentOnly(code string) bool {
	return code == IdxEd25519CrtSig || code == IdxSecp256k1CrtSig || code == IdxEd448CrtSig
}

// Siger is an indexed signature: signature raw material plus the index of the
// signing key in the controller's key list and, for dual-indexed codes, the
// ondex into the prior rotation's key list.
type Siger struct {
	code  string
	index uint32
	ondex int64 // -1 when the code carries no ondex
	raw   []byte
}

// NewSiger constructs an indexed signature. ondex must be negative for the
// current-only codes; for the remaining codes a negative ondex defaults to
// the index.
func NewSiger(code string, index uint32, ondex int64, raw []byte) (*Siger, error) {
	sz, ok := sigerSizes[code]
	if !ok {
		return nil, newError(KindCode, "CESR-IDX-001", fmt.Sprintf("unknown indexed signature code %q", code))
	}
	rize := (sz.fs - sz.hs - sz.ss) * 3 / 4
	if len(raw) != rize {
		return nil, newError(KindSize, "CESR-IDX-002",
			fmt.Sprintf("indexed code %q requires %d raw bytes, got %d", code, rize, len(raw)))
	}
	is := sz.ss - sz.os
	if uint64(index) >= uint64(1)<<(6*uint(is)) {
		return nil, newError(KindSize, "CESR-IDX-003", fmt.Sprintf("index %d exceeds code %q field", index, code))
	}
	if sigerCurrentOnly(code) {
		if ondex >= 0 {
			return nil, newError(KindSize, "CESR-IDX-004",
				fmt.Sprintf("code %q does not carry an ondex", code))
		}
	} else {
		if ondex < 0 {
			ondex = int64(index)
		}
		if sz.os > 0 && uint64(ondex) >= uint64(1)<<(6*uint(sz.os)) {
			return nil, newError(KindSize, "CESR-IDX-005", fmt.Sprintf("ondex %d exceeds code %q field", ondex, code))
		}
		if sz.os == 0 && ondex != int64(index) {
			return nil, newError(KindSize, "CESR-IDX-006",
				fmt.Sprintf("code %q requires ondex equal to index", code))
		}
	}
	return &Siger{code: code, index: index, ondex: ondex, raw: append([]byte(nil), raw...)}, nil
}

// Code returns the indexed signature code.
func (s *Siger) Code() string { return s.code }

// Index returns the signing key index.
func (s *Siger) Index() uint32 { return s.index }

// Ondex returns the prior-rotation key index, or -1 when the code carries none.
func (s *Siger) Ondex() int64 { return s.ondex }

// Raw returns the signature material. Callers must not mutate the result.
func (s *Siger) Raw() []byte { return s.raw }

// FullSize returns the total qb64 character length, code and indexes included.
func (s *Siger) FullSize() int { return sigerSizes[s.code].fs }

func (s *Siger) QB64() (string, error) {
	sz := sigerSizes[s.code]
	soft, err := intToB64(uint64(s.index), sz.ss-sz.os)
	if err != nil {
		return "", err
	}
	if sz.os > 0 {
		o := uint64(0)
		if s.ondex >= 0 {
			o = uint64(s.ondex)
		}
		osoft, err := intToB64(o, sz.os)
		if err != nil {
			return "", err
		}
		soft += osoft
	}
	return infil(s.code, sizage{hs: sz.hs, ss: sz.ss, fs: sz.fs}, soft, s.raw)
}

func (s *Siger) QB64B() ([]byte, error) {
	q, err := s.QB64()
	if err != nil {
		return nil, err
	}
	return []byte(q), nil
}

func (s *Siger) QB2() ([]byte, error) {
	q, err := s.QB64()
	if err != nil {
		return nil, err
	}
	return textToBinary(q)
}

// ParseSiger decodes one indexed signature from the head of a text-domain
// stream and returns it with the unconsumed remainder.
func ParseSiger(b []byte) (*Siger, []byte, error) {
	if len(b) == 0 {
		return nil, nil, newError(KindDecode, "CESR-IDX-010", "empty stream at indexed signature")
	}
	hs := sigerHardSize(b[0])
	if hs == 0 {
		return nil, nil, newError(KindCode, "CESR-IDX-011",
			fmt.Sprintf("no indexed signature code starts with %q", string(b[0])))
	}
	if len(b) < hs {
		return nil, nil, newError(KindDecode, "CESR-IDX-012", "truncated indexed signature code")
	}
	code := string(b[:hs])
	sz, ok := sigerSizes[code]
	if !ok {
		return nil, nil, newError(KindCode, "CESR-IDX-013",
			fmt.Sprintf("unsupported indexed signature code %q", code))
	}
	if len(b) < sz.fs {
		return nil, nil, newError(KindDecode, "CESR-IDX-014",
			fmt.Sprintf("truncated indexed signature: need %d characters for code %q, have %d", sz.fs, code, len(b)))
	}
	is := sz.ss - sz.os
	index, err := b64ToInt(b[hs : hs+is])
	if err != nil {
		return nil, nil, err
	}
	ondex := int64(-1)
	if sz.os > 0 {
		o, err := b64ToInt(b[hs+is : hs+sz.ss])
		if err != nil {
			return nil, nil, err
		}
		if !sigerCurrentOnly(code) {
			ondex = int64(o)
		}
	} else if !sigerCurrentOnly(code) {
		ondex = int64(index)
	}
	raw, err := exfil("CESR-IDX-015", sz.hs+sz.ss, b[hs+sz.ss:sz.fs])
	if err != nil {
		return nil, nil, err
	}
	return &Siger{code: code, index: uint32(index), ondex: ondex, raw: raw}, b[sz.fs:], nil
}

// ParseSigerB2 decodes one indexed signature from the head of a binary-domain
// stream and returns it with the unconsumed remainder.
func ParseSigerB2(b []byte) (*Siger, []byte, error) {
	if len(b) == 0 {
		return nil, nil, newError(KindDecode, "CESR-IDX-020", "empty stream at indexed signature")
	}
	first, err := b2ToB64Prefix(b, 1)
	if err != nil {
		return nil, nil, err
	}
	hs := sigerHardSize(first[0])
	if hs == 0 {
		return nil, nil, newError(KindCode, "CESR-IDX-021",
			fmt.Sprintf("no indexed signature code starts with %q", first))
	}
	code, err := b2ToB64Prefix(b, hs)
	if err != nil {
		return nil, nil, err
	}
	sz, ok := sigerSizes[code]
	if !ok {
		return nil, nil, newError(KindCode, "CESR-IDX-022",
			fmt.Sprintf("unsupported indexed signature code %q", code))
	}
	bfs := sz.fs * 3 / 4
	if len(b) < bfs {
		return nil, nil, newError(KindDecode, "CESR-IDX-023",
			fmt.Sprintf("truncated indexed signature: need %d bytes for code %q, have %d", bfs, code, len(b)))
	}
	s, rest, err := ParseSiger([]byte(b64Raw.EncodeToString(b[:bfs])))
	if err != nil {
		return nil, nil, err
	}
	if len(rest) != 0 {
		return nil, nil, newError(KindSize, "CESR-IDX-024", "internal: binary width mismatch")
	}
	return s, b[bfs:], nil
}
