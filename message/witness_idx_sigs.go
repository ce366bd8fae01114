package message

import "xdao.co/cesr/primitive"

// WitnessIdxSigs is the group of witness signatures, each indexed into the
// witness list of the signed event.
type WitnessIdxSigs struct {
	Value []*primitive.Siger
}

func NewWitnessIdxSigs(value []*primitive.Siger) *WitnessIdxSigs {
	return &WitnessIdxSigs{Value: value}
}

func WitnessIdxSigsFromStream(b []byte, ctr *primitive.Counter, cc ColdCode) (*WitnessIdxSigs, []byte, error) {
	if err := expectCode(ctr, primitive.CtrWitnessIdxSigs); err != nil {
		return nil, nil, err
	}
	parse, err := SigerParser(cc)
	if err != nil {
		return nil, nil, err
	}
	items, rest, err := parseItems(b, int(ctr.Count()), parse)
	if err != nil {
		return nil, nil, err
	}
	return &WitnessIdxSigs{Value: items}, rest, nil
}

func (g *WitnessIdxSigs) Code() string           { return primitive.CtrWitnessIdxSigs }
func (g *WitnessIdxSigs) Count() int             { return len(g.Value) }
func (g *WitnessIdxSigs) QB64() (string, error)  { return groupQB64(g.Code(), g.Value) }
func (g *WitnessIdxSigs) QB64B() ([]byte, error) { return groupQB64B(g.Code(), g.Value) }
func (g *WitnessIdxSigs) QB2() ([]byte, error)   { return groupQB2(g.Code(), g.Value) }
func (g *WitnessIdxSigs) FullSize() int          { return groupFullSize(g.Code(), g.Value) }
func (g *WitnessIdxSigs) group()                 {}
