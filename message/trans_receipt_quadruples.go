package message

import "xdao.co/cesr/primitive"

// TransReceiptQuadruples is the group of receipt quadruples from
// transferable identifiers: the receipter's prefix, the sequence number and
// digest of its latest establishment event, and the indexed signature.
type TransReceiptQuadruples struct {
	Value []*TransReceiptQuadruple
}

// TransReceiptQuadruple is one {prefix, sequence, digest, signature} item in
// that field order.
type TransReceiptQuadruple struct {
	Prefixer *primitive.Prefixer
	Seqner   *primitive.Seqner
	Diger    *primitive.Diger
	Siger    *primitive.Siger
}

func NewTransReceiptQuadruples(value []*TransReceiptQuadruple) *TransReceiptQuadruples {
	return &TransReceiptQuadruples{Value: value}
}

func TransReceiptQuadruplesFromStream(b []byte, ctr *primitive.Counter, cc ColdCode) (*TransReceiptQuadruples, []byte, error) {
	if err := expectCode(ctr, primitive.CtrTransReceiptQuadruples); err != nil {
		return nil, nil, err
	}
	pp, err := PrefixerParser(cc)
	if err != nil {
		return nil, nil, err
	}
	np, err := SeqnerParser(cc)
	if err != nil {
		return nil, nil, err
	}
	dp, err := DigerParser(cc)
	if err != nil {
		return nil, nil, err
	}
	sp, err := SigerParser(cc)
	if err != nil {
		return nil, nil, err
	}
	parse := func(b []byte) (*TransReceiptQuadruple, []byte, error) {
		prefixer, rest, err := pp(b)
		if err != nil {
			return nil, nil, err
		}
		seqner, rest, err := np(rest)
		if err != nil {
			return nil, nil, err
		}
		diger, rest, err := dp(rest)
		if err != nil {
			return nil, nil, err
		}
		siger, rest, err := sp(rest)
		if err != nil {
			return nil, nil, err
		}
		return &TransReceiptQuadruple{Prefixer: prefixer, Seqner: seqner, Diger: diger, Siger: siger}, rest, nil
	}
	items, rest, err := parseItems(b, int(ctr.Count()), parse)
	if err != nil {
		return nil, nil, err
	}
	return &TransReceiptQuadruples{Value: items}, rest, nil
}

func (q *TransReceiptQuadruple) FullSize() int {
	return sumFullSize(q.Prefixer, q.Seqner, q.Diger, q.Siger)
}

func (q *TransReceiptQuadruple) QB64() (string, error) {
	return concatQB64(q.Prefixer, q.Seqner, q.Diger, q.Siger)
}

func (q *TransReceiptQuadruple) QB64B() ([]byte, error) {
	return concatQB64B(q.Prefixer, q.Seqner, q.Diger, q.Siger)
}

func (q *TransReceiptQuadruple) QB2() ([]byte, error) {
	return concatQB2(q.Prefixer, q.Seqner, q.Diger, q.Siger)
}

func (g *TransReceiptQuadruples) Code() string           { return primitive.CtrTransReceiptQuadruples }
func (g *TransReceiptQuadruples) Count() int             { return len(g.Value) }
func (g *TransReceiptQuadruples) QB64() (string, error)  { return groupQB64(g.Code(), g.Value) }
func (g *TransReceiptQuadruples) QB64B() ([]byte, error) { return groupQB64B(g.Code(), g.Value) }
func (g *TransReceiptQuadruples) QB2() ([]byte, error)   { return groupQB2(g.Code(), g.Value) }
func (g *TransReceiptQuadruples) FullSize() int          { return groupFullSize(g.Code(), g.Value) }
func (g *TransReceiptQuadruples) group()                 {}
