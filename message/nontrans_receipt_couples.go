package message

import "xdao.co/cesr/primitive"

// NonTransReceiptCouples is the group of receipt couples from
// non-transferable identifiers: the receipting key followed by its
// unindexed signature.
type NonTransReceiptCouples struct {
	Value []*NonTransReceiptCouple
}

// NonTransReceiptCouple is one {verification key, signature} couple.
type NonTransReceiptCouple struct {
	Verfer *primitive.Verfer
	Cigar  *primitive.Cigar
}

func NewNonTransReceiptCouples(value []*NonTransReceiptCouple) *NonTransReceiptCouples {
	return &NonTransReceiptCouples{Value: value}
}

func NonTransReceiptCouplesFromStream(b []byte, ctr *primitive.Counter, cc ColdCode) (*NonTransReceiptCouples, []byte, error) {
	if err := expectCode(ctr, primitive.CtrNonTransReceiptCouples); err != nil {
		return nil, nil, err
	}
	vp, err := VerferParser(cc)
	if err != nil {
		return nil, nil, err
	}
	cp, err := CigarParser(cc)
	if err != nil {
		return nil, nil, err
	}
	parse := func(b []byte) (*NonTransReceiptCouple, []byte, error) {
		verfer, rest, err := vp(b)
		if err != nil {
			return nil, nil, err
		}
		cigar, rest, err := cp(rest)
		if err != nil {
			return nil, nil, err
		}
		return &NonTransReceiptCouple{Verfer: verfer, Cigar: cigar}, rest, nil
	}
	items, rest, err := parseItems(b, int(ctr.Count()), parse)
	if err != nil {
		return nil, nil, err
	}
	return &NonTransReceiptCouples{Value: items}, rest, nil
}

func (c *NonTransReceiptCouple) FullSize() int          { return sumFullSize(c.Verfer, c.Cigar) }
func (c *NonTransReceiptCouple) QB64() (string, error)  { return concatQB64(c.Verfer, c.Cigar) }
func (c *NonTransReceiptCouple) QB64B() ([]byte, error) { return concatQB64B(c.Verfer, c.Cigar) }
func (c *NonTransReceiptCouple) QB2() ([]byte, error)   { return concatQB2(c.Verfer, c.Cigar) }

func (g *NonTransReceiptCouples) Code() string           { return primitive.CtrNonTransReceiptCouples }
func (g *NonTransReceiptCouples) Count() int             { return len(g.Value) }
func (g *NonTransReceiptCouples) QB64() (string, error)  { return groupQB64(g.Code(), g.Value) }
func (g *NonTransReceiptCouples) QB64B() ([]byte, error) { return groupQB64B(g.Code(), g.Value) }
func (g *NonTransReceiptCouples) QB2() ([]byte, error)   { return groupQB2(g.Code(), g.Value) }
func (g *NonTransReceiptCouples) FullSize() int          { return groupFullSize(g.Code(), g.Value) }
func (g *NonTransReceiptCouples) group()                 {}
