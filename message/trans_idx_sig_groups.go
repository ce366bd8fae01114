package message

import (
	"fmt"

	"xdao.co/cesr/primitive"
)

// TransIdxSigGroups is the group of indexed-signature groups from
// transferable identifiers. Each item names the signer's prefix and the
// establishment event the signatures are valid under, then nests a complete
// ControllerIdxSigs group (its own counter included).
type TransIdxSigGroups struct {
	Value []*TransIdxSigGroup
}

// TransIdxSigGroup is one {prefix, sequence, digest, signature group} item
// in that field order.
type TransIdxSigGroup struct {
	Prefixer *primitive.Prefixer
	Seqner   *primitive.Seqner
	Saider   *primitive.Saider
	IdxSigs  *ControllerIdxSigs
}

func NewTransIdxSigGroups(value []*TransIdxSigGroup) *TransIdxSigGroups {
	return &TransIdxSigGroups{Value: value}
}

// parseNestedIdxSigs reads the inner ControllerIdxSigs group, counter
// included, that terminates a trans-idx item.
func parseNestedIdxSigs(b []byte, cc ColdCode) (*ControllerIdxSigs, []byte, error) {
	cp, err := CounterParser(cc)
	if err != nil {
		return nil, nil, err
	}
	ctr, rest, err := cp(b)
	if err != nil {
		return nil, nil, wrapError(KindFraming, "CESR-GRP-020", "malformed nested counter", err)
	}
	if ctr.Code() != primitive.CtrControllerIdxSigs {
		return nil, nil, newError(KindFraming, "CESR-GRP-021",
			fmt.Sprintf("expected nested %q group, found counter %q", primitive.CtrControllerIdxSigs, ctr.Code()))
	}
	return ControllerIdxSigsFromStream(rest, ctr, cc)
}

func TransIdxSigGroupsFromStream(b []byte, ctr *primitive.Counter, cc ColdCode) (*TransIdxSigGroups, []byte, error) {
	if err := expectCode(ctr, primitive.CtrTransIdxSigGroups); err != nil {
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
	parse := func(b []byte) (*TransIdxSigGroup, []byte, error) {
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
		isigs, rest, err := parseNestedIdxSigs(rest, cc)
		if err != nil {
			return nil, nil, err
		}
		return &TransIdxSigGroup{Prefixer: prefixer, Seqner: seqner, Saider: saider, IdxSigs: isigs}, rest, nil
	}
	items, rest, err := parseItems(b, int(ctr.Count()), parse)
	if err != nil {
		return nil, nil, err
	}
	return &TransIdxSigGroups{Value: items}, rest, nil
}

func (t *TransIdxSigGroup) FullSize() int {
	return sumFullSize(t.Prefixer, t.Seqner, t.Saider) + t.IdxSigs.FullSize()
}

func (t *TransIdxSigGroup) QB64() (string, error) {
	return concatQB64(t.Prefixer, t.Seqner, t.Saider, nestedItem{t.IdxSigs})
}

func (t *TransIdxSigGroup) QB64B() ([]byte, error) {
	return concatQB64B(t.Prefixer, t.Seqner, t.Saider, nestedItem{t.IdxSigs})
}

func (t *TransIdxSigGroup) QB2() ([]byte, error) {
	return concatQB2(t.Prefixer, t.Seqner, t.Saider, nestedItem{t.IdxSigs})
}

// nestedItem adapts a whole group (counter included) into an item field.
type nestedItem struct {
	g Group
}

func (n nestedItem) QB64() (string, error)  { return n.g.QB64() }
func (n nestedItem) QB64B() ([]byte, error) { return n.g.QB64B() }
func (n nestedItem) QB2() ([]byte, error)   { return n.g.QB2() }
func (n nestedItem) FullSize() int          { return n.g.FullSize() }

func (g *TransIdxSigGroups) Code() string           { return primitive.CtrTransIdxSigGroups }
func (g *TransIdxSigGroups) Count() int             { return len(g.Value) }
func (g *TransIdxSigGroups) QB64() (string, error)  { return groupQB64(g.Code(), g.Value) }
func (g *TransIdxSigGroups) QB64B() ([]byte, error) { return groupQB64B(g.Code(), g.Value) }
func (g *TransIdxSigGroups) QB2() ([]byte, error)   { return groupQB2(g.Code(), g.Value) }
func (g *TransIdxSigGroups) FullSize() int          { return groupFullSize(g.Code(), g.Value) }
func (g *TransIdxSigGroups) group()                 {}
