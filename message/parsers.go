package message

import (
	"fmt"

	"xdao.co/cesr/primitive"
)

// Parser factories: one per primitive kind, each configured once with the
// stream's cold code. The returned closures are pure; calling a factory
// twice with the same domain yields behaviorally identical parsers.

// ParserFn consumes a prefix of its input and returns the decoded value with
// the unconsumed remainder.
type ParserFn[T any] func(b []byte) (T, []byte, error)

func domainError(cc ColdCode) error {
	return newError(KindClassification, "CESR-COLD-003",
		fmt.Sprintf("domain %s carries no CESR primitives", cc))
}

// MatterParser returns a parser for one bare matter primitive in the given
// domain.
func MatterParser(cc ColdCode) (ParserFn[*primitive.Matter], error) {
	switch cc {
	case ColdCtB64:
		return primitive.ParseMatter, nil
	case ColdCtOpB2:
		return primitive.ParseMatterB2, nil
	default:
		return nil, domainError(cc)
	}
}

// SigerParser returns a parser for one indexed signature in the given domain.
func SigerParser(cc ColdCode) (ParserFn[*primitive.Siger], error) {
	switch cc {
	case ColdCtB64:
		return primitive.ParseSiger, nil
	case ColdCtOpB2:
		return primitive.ParseSigerB2, nil
	default:
		return nil, domainError(cc)
	}
}

// CounterParser returns a parser for one framing header in the given domain.
func CounterParser(cc ColdCode) (ParserFn[*primitive.Counter], error) {
	switch cc {
	case ColdCtB64:
		return primitive.ParseCounter, nil
	case ColdCtOpB2:
		return primitive.ParseCounterB2, nil
	default:
		return nil, domainError(cc)
	}
}

// wrapMatter builds a typed parser from the matter parser and a validating
// constructor.
func wrapMatter[T any](cc ColdCode, make func(*primitive.Matter) (T, error)) (ParserFn[T], error) {
	mp, err := MatterParser(cc)
	if err != nil {
		return nil, err
	}
	return func(b []byte) (T, []byte, error) {
		var zero T
		m, rest, err := mp(b)
		if err != nil {
			return zero, nil, err
		}
		v, err := make(m)
		if err != nil {
			return zero, nil, err
		}
		return v, rest, nil
	}, nil
}

// PrefixerParser returns a parser for one identifier prefix.
func PrefixerParser(cc ColdCode) (ParserFn[*primitive.Prefixer], error) {
	return wrapMatter(cc, primitive.NewPrefixer)
}

// VerferParser returns a parser for one verification key.
func VerferParser(cc ColdCode) (ParserFn[*primitive.Verfer], error) {
	return wrapMatter(cc, primitive.NewVerfer)
}

// CigarParser returns a parser for one unindexed signature.
func CigarParser(cc ColdCode) (ParserFn[*primitive.Cigar], error) {
	return wrapMatter(cc, primitive.NewCigar)
}

// DigerParser returns a parser for one digest.
func DigerParser(cc ColdCode) (ParserFn[*primitive.Diger], error) {
	return wrapMatter(cc, primitive.NewDiger)
}

// SaiderParser returns a parser for one self-addressing identifier.
func SaiderParser(cc ColdCode) (ParserFn[*primitive.Saider], error) {
	return wrapMatter(cc, primitive.NewSaider)
}

// SeqnerParser returns a parser for one sequence number.
func SeqnerParser(cc ColdCode) (ParserFn[*primitive.Seqner], error) {
	return wrapMatter(cc, primitive.NewSeqner)
}

// DaterParser returns a parser for one datestamp.
func DaterParser(cc ColdCode) (ParserFn[*primitive.Dater], error) {
	return wrapMatter(cc, primitive.NewDater)
}
