package message

import "xdao.co/cesr/primitive"

// SealSourceCouples is the group of seal source couples: the sequence number
// and self-addressing identifier of the event a seal points back to.
type SealSourceCouples struct {
	Value []*SealSourceCouple
}

// SealSourceCouple is one {sequence, digest} couple.
type SealSourceCouple struct {
	Seqner *primitive.Seqner
	Saider *primitive.Saider
}

func NewSealSourceCouples(value []*SealSourceCouple) *SealSourceCouples {
	return &SealSourceCouples{Value: value}
}

func SealSourceCouplesFromStream(b []byte, ctr *primitive.Counter, cc ColdCode) (*SealSourceCouples, []byte, error) {
	if err := expectCode(ctr, primitive.CtrSealSourceCouples); err != nil {
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
	parse := func(b []byte) (*SealSourceCouple, []byte, error) {
		seqner, rest, err := np(b)
		if err != nil {
			return nil, nil, err
		}
		saider, rest, err := sp(rest)
		if err != nil {
			return nil, nil, err
		}
		return &SealSourceCouple{Seqner: seqner, Saider: saider}, rest, nil
	}
	items, rest, err := parseItems(b, int(ctr.Count()), parse)
	if err != nil {
		return nil, nil, err
	}
	return &SealSourceCouples{Value: items}, rest, nil
}

func (c *SealSourceCouple) FullSize() int          { return sumFullSize(c.Seqner, c.Saider) }
func (c *SealSourceCouple) QB64() (string, error)  { return concatQB64(c.Seqner, c.Saider) }
func (c *SealSourceCouple) QB64B() ([]byte, error) { return concatQB64B(c.Seqner, c.Saider) }
func (c *SealSourceCouple) QB2() ([]byte, error)   { return concatQB2(c.Seqner, c.Saider) }

func (g *SealSourceCouples) Code() string           { return primitive.CtrSealSourceCouples }
func (g *SealSourceCouples) Count() int             { return len(g.Value) }
func (g *SealSourceCouples) QB64() (string, error)  { return groupQB64(g.Code(), g.Value) }
func (g *SealSourceCouples) QB64B() ([]byte, error) { return groupQB64B(g.Code(), g.Value) }
func (g *SealSourceCouples) QB2() ([]byte, error)   { return groupQB2(g.Code(), g.Value) }
func (g *SealSourceCouples) FullSize() int          { return groupFullSize(g.Code(), g.Value) }
func (g *SealSourceCouples) group()                 {}
