package message

import "xdao.co/cesr/primitive"

// SealSourceTriples is the group of seal source triples: the identifier
// prefix, sequence number and self-addressing identifier of the event a seal
// points back to.
type SealSourceTriples struct {
	Value []*SealSourceTriple
}

// SealSourceTriple is one {prefix, sequence, digest} triple in that field
// order.
type SealSourceTriple struct {
	Prefixer *primitive.Prefixer
	Seqner   *primitive.Seqner
	Saider   *primitive.Saider
}

func NewSealSourceTriples(value []*SealSourceTriple) *SealSourceTriples {
	return &SealSourceTriples{Value: value}
}

func SealSourceTriplesFromStream(b []byte, ctr *primitive.Counter, cc ColdCode) (*SealSourceTriples, []byte, error) {
	if err := expectCode(ctr, primitive.CtrSealSourceTriples); err != nil {
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
	sp, err := SaiderParser(cc)
	if err != nil {
		return nil, nil, err
	}
	parse := func(b []byte) (*SealSourceTriple, []byte, error) {
		prefixer, rest, err := pp(b)
		if err != nil {
			return nil, nil, err
		}
		seqner, rest, err := np(rest)
		if err != nil {
			return nil, nil, err
		}
		saider, rest, err := sp(rest)
		if err != nil {
			return nil, nil, err
		}
		return &SealSourceTriple{Prefixer: prefixer, Seqner: seqner, Saider: saider}, rest, nil
	}
	items, rest, err := parseItems(b, int(ctr.Count()), parse)
	if err != nil {
		return nil, nil, err
	}
	return &SealSourceTriples{Value: items}, rest, nil
}

func (t *SealSourceTriple) FullSize() int {
	return sumFullSize(t.Prefixer, t.Seqner, t.Saider)
}

func (t *SealSourceTriple) QB64() (string, error) {
	return concatQB64(t.Prefixer, t.Seqner, t.Saider)
}

func (t *SealSourceTriple) QB64B() ([]byte, error) {
	return concatQB64B(t.Prefixer, t.Seqner, t.Saider)
}

func (t *SealSourceTriple) QB2() ([]byte, error) {
	return concatQB2(t.Prefixer, t.Seqner, t.Saider)
}

func (g *SealSourceTriples) Code() string           { return primitive.CtrSealSourceTriples }
func (g *SealSourceTriples) Count() int             { return len(g.Value) }
func (g *SealSourceTriples) QB64() (string, error)  { return groupQB64(g.Code(), g.Value) }
func (g *SealSourceTriples) QB64B() ([]byte, error) { return groupQB64B(g.Code(), g.Value) }
func (g *SealSourceTriples) QB2() ([]byte, error)   { return groupQB2(g.Code(), g.Value) }
func (g *SealSourceTriples) FullSize() int          { return groupFullSize(g.Code(), g.Value) }
func (g *SealSourceTriples) group()                 {}
