package message

import "xdao.co/cesr/primitive"

// ControllerIdxSigs is the group of signatures by the controlling
// identifier's current keys, each indexed into the controller's key list.
type ControllerIdxSigs struct {
	Value []*primitive.Siger
}

func NewControllerIdxSigs(value []*primitive.Siger) *ControllerIdxSigs {
	return &ControllerIdxSigs{Value: value}
}

// ControllerIdxSigsFromStream decodes the counted signature items following
// an already-parsed counter and returns the group with the unconsumed
// remainder.
func ControllerIdxSigsFromStream(b []byte, ctr *primitive.Counter, cc ColdCode) (*ControllerIdxSigs, []byte, error) {
	if err := expectCode(ctr, primitive.CtrControllerIdxSigs); err != nil {
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
	return &ControllerIdxSigs{Value: items}, rest, nil
}

func (g *ControllerIdxSigs) Code() string           { return primitive.CtrControllerIdxSigs }
func (g *ControllerIdxSigs) Count() int             { return len(g.Value) }
func (g *ControllerIdxSigs) QB64() (string, error)  { return groupQB64(g.Code(), g.Value) }
func (g *ControllerIdxSigs) QB64B() ([]byte, error) { return groupQB64B(g.Code(), g.Value) }
func (g *ControllerIdxSigs) QB2() ([]byte, error)   { return groupQB2(g.Code(), g.Value) }
func (g *ControllerIdxSigs) FullSize() int          { return groupFullSize(g.Code(), g.Value) }
func (g *ControllerIdxSigs) group()                 {}
