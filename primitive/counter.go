package primitive

import "fmt"

// Counter (framing header) codes. A counter announces a group type and the
// number of repeated items (or quadlets, for the attachment codes) that
// follow it in the stream.
const (
	CtrControllerIdxSigs           = "-A"
	CtrWitnessIdxSigs              = "-B"
	CtrNonTransReceiptCouples      = "-C"
	CtrTransReceiptQuadruples      = "-D"
	CtrFirstSeenReplayCouples      = "-E"
	CtrTransIdxSigGroups           = "-F"
	CtrSealSourceCouples           = "-G"
	CtrTransLastIdxSigGroups       = "-H"
	CtrSealSourceTriples           = "-I"
	CtrSadPathSig                  = "-J"
	CtrSadPathSigGroup             = "-K"
	CtrPathedMaterialQuadlets      = "-L"
	CtrAttachedMaterialQuadlets    = "-V"
	CtrBigAttachedMaterialQuadlets = "-0V"
)

var counterSizes = map[string]sizage{
	CtrControllerIdxSigs:           {hs: 2, ss: 2, fs: 4},
	CtrWitnessIdxSigs:              {hs: 2, ss: 2, fs: 4},
	CtrNonTransReceiptCouples:      {hs: 2, ss: 2, fs: 4},
	CtrTransReceiptQuadruples:      {hs: 2, ss: 2, fs: 4},
	CtrFirstSeenReplayCouples:      {hs: 2, ss: 2, fs: 4},
	CtrTransIdxSigGroups:           {hs: 2, ss: 2, fs: 4},
	CtrSealSourceCouples:           {hs: 2, ss: 2, fs: 4},
	CtrTransLastIdxSigGroups:       {hs: 2, ss: 2, fs: 4},
	CtrSealSourceTriples:           {hs: 2, ss: 2, fs: 4},
	CtrSadPathSig:                  {hs: 2, ss: 2, fs: 4},
	CtrSadPathSigGroup:             {hs: 2, ss: 2, fs: 4},
	CtrPathedMaterialQuadlets:      {hs: 2, ss: 2, fs: 4},
	CtrAttachedMaterialQuadlets:    {hs: 2, ss: 2, fs: 4},
	CtrBigAttachedMaterialQuadlets: {hs: 3, ss: 5, fs: 8},
}

// counterHardSize returns the code width implied by the head of a counter.
// All counter codes start with '-'; the big codes continue with '0'.
func counterHardSize(b []byte) int {
	if len(b) == 0 || b[0] != '-' {
		return 0
	}
	if len(b) >= 2 && b[1] == '0' {
		return 3
	}
	return 2
}

// CounterTextSize returns the header width in qb64 characters for code, or 0
// for an unknown code.
func CounterTextSize(code string) int { return counterSizes[code].fs }

// Counter is the framing header that precedes a group: a counter code and the
// declared repeat count. Immutable once constructed.
type Counter struct {
	code  string
	count uint32
}

// NewCounter constructs a counter, enforcing the count field width of the
// given code (4095 for standard codes, 64^5-1 for the big codes).
func NewCounter(code string, count uint32) (*Counter, error) {
	sz, ok := counterSizes[code]
	if !ok {
		return nil, newError(KindCode, "CESR-CTR-001", fmt.Sprintf("unknown counter code %q", code))
	}
	if uint64(count) >= uint64(1)<<(6*uint(sz.ss)) {
		return nil, newError(KindSize, "CESR-CTR-002",
			fmt.Sprintf("count %d exceeds code %q field width", count, code))
	}
	return &Counter{code: code, count: count}, nil
}

// Code returns the counter code.
func (c *Counter) Code() string { return c.code }

// Count returns the declared repeat count.
func (c *Counter) Count() uint32 { return c.count }

// FullSize returns the header width in qb64 characters.
func (c *Counter) FullSize() int { return counterSizes[c.code].fs }

// BinarySize returns the header width in qb2 bytes.
func (c *Counter) BinarySize() int { return counterSizes[c.code].fs * 3 / 4 }

func (c *Counter) QB64() (string, error) {
	sz := counterSizes[c.code]
	soft, err := intToB64(uint64(c.count), sz.ss)
	if err != nil {
		return "", err
	}
	return c.code + soft, nil
}

func (c *Counter) QB64B() ([]byte, error) {
	q, err := c.QB64()
	if err != nil {
		return nil, err
	}
	return []byte(q), nil
}

func (c *Counter) QB2() ([]byte, error) {
	q, err := c.QB64()
	if err != nil {
		return nil, err
	}
	return textToBinary(q)
}

// ParseCounter decodes one counter from the head of a text-domain stream and
// returns it with the unconsumed remainder.
func ParseCounter(b []byte) (*Counter, []byte, error) {
	hs := counterHardSize(b)
	if hs == 0 {
		return nil, nil, newError(KindDecode, "CESR-CTR-010", "stream does not start with a counter code")
	}
	if len(b) < hs {
		return nil, nil, newError(KindDecode, "CESR-CTR-011", "truncated counter code")
	}
	code := string(b[:hs])
	sz, ok := counterSizes[code]
	if !ok {
		return nil, nil, newError(KindCode, "CESR-CTR-012", fmt.Sprintf("unrecognized counter code %q", code))
	}
	if len(b) < sz.fs {
		return nil, nil, newError(KindDecode, "CESR-CTR-013",
			fmt.Sprintf("truncated counter: need %d characters for code %q, have %d", sz.fs, code, len(b)))
	}
	count, err := b64ToInt(b[hs:sz.fs])
	if err != nil {
		return nil, nil, err
	}
	return &Counter{code: code, count: uint32(count)}, b[sz.fs:], nil
}

// ParseCounterB2 decodes one counter from the head of a binary-domain stream
// and returns it with the unconsumed remainder.
func ParseCounterB2(b []byte) (*Counter, []byte, error) {
	prefix, err := b2ToB64Prefix(b, 2)
	if err != nil {
		return nil, nil, err
	}
	hs := counterHardSize([]byte(prefix))
	if hs == 0 {
		return nil, nil, newError(KindDecode, "CESR-CTR-020", "stream does not start with a counter code")
	}
	code, err := b2ToB64Prefix(b, hs)
	if err != nil {
		return nil, nil, err
	}
	sz, ok := counterSizes[code]
	if !ok {
		return nil, nil, newError(KindCode, "CESR-CTR-021", fmt.Sprintf("unrecognized counter code %q", code))
	}
	bfs := sz.fs * 3 / 4
	if len(b) < bfs {
		return nil, nil, newError(KindDecode, "CESR-CTR-022",
			fmt.Sprintf("truncated counter: need %d bytes for code %q, have %d", bfs, code, len(b)))
	}
	c, rest, err := ParseCounter([]byte(b64Raw.EncodeToString(b[:bfs])))
	if err != nil {
		return nil, nil, err
	}
	if len(rest) != 0 {
		return nil, nil, newError(KindSize, "CESR-CTR-023", "internal: binary width mismatch")
	}
	return c, b[bfs:], nil
}
