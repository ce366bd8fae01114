package message

import "xdao.co/cesr/primitive"

// TransLastIdxSigGroups is the group of indexed-signature groups attached by
// transferable identifiers signing with their latest establishment keys.
// Each item is the signer's prefix followed by a nested ControllerIdxSigs
// group, counter included.
type TransLastIdxSigGroups struct {
	Value []*TransLastIdxSigGroup
}

// TransLastIdxSigGroup is one {prefix, signature group} item.
type TransLastIdxSigGroup struct {
	Prefixer *primitive.Prefixer
	IdxSigs  *ControllerIdxSigs
}

func NewTransLastIdxSigGroups(value []*TransLastIdxSigGroup) *TransLastIdxSigGroups {
	return &TransLastIdxSigGroups{Value: value}
}

func TransLastIdxSigGroupsFromStream(b []byte, ctr *primitive.Counter, cc ColdCode) (*TransLastIdxSigGroups, []byte, error) {
	if err := expectCode(ctr, primitive.CtrTransLastIdxSigGroups); err != nil {
		return nil, nil, err
	}
	pp, err := PrefixerParser(cc)
	if err != nil {
		return nil, nil, err
	}
	parse := func(b []byte) (*TransLastIdxSigGroup, []byte, error) {
		prefixer, rest, err := pp(b)
		if err != nil {
			return nil, nil, err
		}
		isigs, rest, err := parseNestedIdxSigs(rest, cc)
		if err != nil {
			return nil, nil, err
		}
		return &TransLastIdxSigGroup{Prefixer: prefixer, IdxSigs: isigs}, rest, nil
	}
	items, rest, err := parseItems(b, int(ctr.Count()), parse)
	if err != nil {
		return nil, nil, err
	}
	return &TransLastIdxSigGroups{Value: items}, rest, nil
}

func (t *TransLastIdxSigGroup) FullSize() int {
	return t.Prefixer.FullSize() + t.IdxSigs.FullSize()
}

func (t *TransLastIdxSigGroup) QB64() (string, error) {
	return concatQB64(t.Prefixer, nestedItem{t.IdxSigs})
}

func (t *TransLastIdxSigGroup) QB64B() ([]byte, error) {
	return concatQB64B(t.Prefixer, nestedItem{t.IdxSigs})
}

func (t *TransLastIdxSigGroup) QB2() ([]byte, error) {
	return concatQB2(t.Prefixer, nestedItem{t.IdxSigs})
}

func (g *TransLastIdxSigGroups) Code() string           { return primitive.CtrTransLastIdxSigGroups }
func (g *TransLastIdxSigGroups) Count() int             { return len(g.Value) }
func (g *TransLastIdxSigGroups) QB64() (string, error)  { return groupQB64(g.Code(), g.Value) }
func (g *TransLastIdxSigGroups) QB64B() ([]byte, error) { return groupQB64B(g.Code(), g.Value) }
func (g *TransLastIdxSigGroups) QB2() ([]byte, error)   { return groupQB2(g.Code(), g.Value) }
func (g *TransLastIdxSigGroups) FullSize() int          { return groupFullSize(g.Code(), g.Value) }
func (g *TransLastIdxSigGroups) group()                 {}
