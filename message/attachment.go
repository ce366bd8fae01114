package message

import (
	"fmt"

	"xdao.co/cesr/primitive"
)

// AttachedMaterialQuadlets is the enclosure for a whole attachment section:
// its counter declares the size of the enclosed material in quadlets (four
// text characters, three binary bytes), and the material is a sequence of
// complete groups. The big counter code is used automatically when the
// material exceeds the standard count field.
type AttachedMaterialQuadlets struct {
	Groups []Group
}

func NewAttachedMaterialQuadlets(groups []Group) *AttachedMaterialQuadlets {
	return &AttachedMaterialQuadlets{Groups: groups}
}

// AttachedMaterialQuadletsFromStream slices the quadlet-counted region
// declared by the counter and decodes the complete groups inside it. The
// region must be exhausted exactly; trailing bytes inside it are a framing
// error.
func AttachedMaterialQuadletsFromStream(b []byte, ctr *primitive.Counter, cc ColdCode) (*AttachedMaterialQuadlets, []byte, error) {
	if ctr == nil {
		return nil, nil, newError(KindFraming, "CESR-ATT-001", "nil counter")
	}
	if ctr.Code() != primitive.CtrAttachedMaterialQuadlets && ctr.Code() != primitive.CtrBigAttachedMaterialQuadlets {
		return nil, nil, newError(KindFraming, "CESR-ATT-002",
			fmt.Sprintf("counter code %q does not frame attached material", ctr.Code()))
	}
	unit := 4
	if cc == ColdCtOpB2 {
		unit = 3
	}
	size := int(ctr.Count()) * unit
	if len(b) < size {
		return nil, nil, newError(KindFraming, "CESR-ATT-003",
			fmt.Sprintf("attachment declares %d quadlets (%d bytes), stream has %d", ctr.Count(), size, len(b)))
	}
	region := b[:size]
	var groups []Group
	for len(region) > 0 {
		consumed := size - len(region)
		g, rest, err := ParseGroup(region, cc)
		if err != nil {
			return nil, nil, addOffset(err, consumed)
		}
		groups = append(groups, g)
		region = rest
	}
	return &AttachedMaterialQuadlets{Groups: groups}, b[size:], nil
}

// Code returns the standard attachment code, or the big code when the
// enclosed material exceeds the standard count field.
func (a *AttachedMaterialQuadlets) Code() string {
	if a.quadlets() > 4095 {
		return primitive.CtrBigAttachedMaterialQuadlets
	}
	return primitive.CtrAttachedMaterialQuadlets
}

// Count returns the enclosed material size in quadlets.
func (a *AttachedMaterialQuadlets) Count() int { return a.quadlets() }

func (a *AttachedMaterialQuadlets) quadlets() int {
	total := 0
	for _, g := range a.Groups {
		total += g.FullSize()
	}
	return total / 4
}

func (a *AttachedMaterialQuadlets) FullSize() int {
	return primitive.CounterTextSize(a.Code()) + a.quadlets()*4
}

func (a *AttachedMaterialQuadlets) QB64() (string, error) {
	b, err := a.QB64B()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (a *AttachedMaterialQuadlets) QB64B() ([]byte, error) {
	ctr, err := primitive.NewCounter(a.Code(), uint32(a.quadlets()))
	if err != nil {
		return nil, err
	}
	out := make([]byte, a.FullSize())
	cb, err := ctr.QB64B()
	if err != nil {
		return nil, err
	}
	offset := copy(out, cb)
	for _, g := range a.Groups {
		gb, err := g.QB64B()
		if err != nil {
			return nil, err
		}
		offset += copy(out[offset:], gb)
	}
	return out, nil
}

func (a *AttachedMaterialQuadlets) QB2() ([]byte, error) {
	ctr, err := primitive.NewCounter(a.Code(), uint32(a.quadlets()))
	if err != nil {
		return nil, err
	}
	out := make([]byte, a.FullSize()/4*3)
	cb, err := ctr.QB2()
	if err != nil {
		return nil, err
	}
	offset := copy(out, cb)
	for _, g := range a.Groups {
		gb, err := g.QB2()
		if err != nil {
			return nil, err
		}
		offset += copy(out[offset:], gb)
	}
	return out, nil
}

func (a *AttachedMaterialQuadlets) group() {}
