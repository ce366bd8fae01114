// Package message implements the CESR group engine: cold-start domain
// classification, domain-configured primitive parsers, the counted-group
// parse loop, the concrete attachment group variants, and message-body
// payload extraction.
//
// All parse entry points consume a prefix of the caller's byte slice and
// return the decoded value together with the unconsumed remainder. The
// remainder aliases the input; callers must keep the input alive while any
// remainder derived from it is in use.
package message

import "fmt"

// ColdCode names the encoding domain a stream segment begins in. It is
// determined once per independent stream from the tritet (top three bits) of
// the first byte and threaded by value into every parser for that stream.
type ColdCode uint8

const (
	ColdFree   ColdCode = 0b000 // unused/reserved; always rejected
	ColdCtB64  ColdCode = 0b001 // text-domain count code ('-')
	ColdOpB64  ColdCode = 0b010 // text-domain op code ('_'); reserved
	ColdJSON   ColdCode = 0b011 // JSON message body ('{')
	ColdMGPK1  ColdCode = 0b100 // MessagePack fixmap body
	ColdCBOR   ColdCode = 0b101 // CBOR map body
	ColdMGPK2  ColdCode = 0b110 // MessagePack map16/map32 body
	ColdCtOpB2 ColdCode = 0b111 // binary-domain count or op code
)

func (c ColdCode) String() string {
	switch c {
	case ColdFree:
		return "Free"
	case ColdCtB64:
		return "CtB64"
	case ColdOpB64:
		return "OpB64"
	case ColdJSON:
		return "JSON"
	case ColdMGPK1:
		return "MGPK1"
	case ColdCBOR:
		return "CBOR"
	case ColdMGPK2:
		return "MGPK2"
	case ColdCtOpB2:
		return "CtOpB2"
	default:
		return fmt.Sprintf("ColdCode(%d)", uint8(c))
	}
}

// Classify inspects the first byte of a stream without consuming anything
// and reports its encoding domain. The free tritet is a hard failure, never
// a default.
func Classify(b []byte) (ColdCode, error) {
	if len(b) == 0 {
		return ColdFree, newError(KindClassification, "CESR-COLD-001", "empty stream has no cold-start byte")
	}
	c := ColdCode(b[0] >> 5)
	if c == ColdFree {
		return ColdFree, newError(KindClassification, "CESR-COLD-002",
			fmt.Sprintf("leading byte 0x%02x is in the free tritet", b[0]))
	}
	return c, nil
}

// cesrDomain reports whether c is one of the two CESR primitive domains.
func cesrDomain(c ColdCode) bool {
	return c == ColdCtB64 || c == ColdCtOpB2
}
