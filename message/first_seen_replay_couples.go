package message

import "xdao.co/cesr/primitive"

// FirstSeenReplayCouples is the group of first-seen replay couples: the
// first-seen ordinal of an event paired with the datestamp it was first
// accepted at.
type FirstSeenReplayCouples struct {
	Value []*FirstSeenReplayCouple
}

// FirstSeenReplayCouple is one {ordinal, datestamp} couple.
type FirstSeenReplayCouple struct {
	Firner *primitive.Seqner
	Dater  *primitive.Dater
}

func NewFirstSeenReplayCouples(value []*FirstSeenReplayCouple) *FirstSeenReplayCouples {
	return &FirstSeenReplayCouples{Value: value}
}

func FirstSeenReplayCouplesFromStream(b []byte, ctr *primitive.Counter, cc ColdCode) (*FirstSeenReplayCouples, []byte, error) {
	if err := expectCode(ctr, primitive.CtrFirstSeenReplayCouples); err != nil {
		return nil, nil, err
	}
	np, err := SeqnerParser(cc)
	if err != nil {
		return nil, nil, err
	}
	dp, err := DaterParser(cc)
	if err != nil {
		return nil, nil, err
	}
	parse := func(b []byte) (*FirstSeenReplayCouple, []byte, error) {
		firner, rest, err := np(b)
		if err != nil {
			return nil, nil, err
		}
		dater, rest, err := dp(rest)
		if err != nil {
			return nil, nil, err
		}
		return &FirstSeenReplayCouple{Firner: firner, Dater: dater}, rest, nil
	}
	items, rest, err := parseItems(b, int(ctr.Count()), parse)
	if err != nil {
		return nil, nil, err
	}
	return &FirstSeenReplayCouples{Value: items}, rest, nil
}

func (c *FirstSeenReplayCouple) FullSize() int          { return sumFullSize(c.Firner, c.Dater) }
func (c *FirstSeenReplayCouple) QB64() (string, error)  { return concatQB64(c.Firner, c.Dater) }
func (c *FirstSeenReplayCouple) QB64B() ([]byte, error) { return concatQB64B(c.Firner, c.Dater) }
func (c *FirstSeenReplayCouple) QB2() ([]byte, error)   { return concatQB2(c.Firner, c.Dater) }

func (g *FirstSeenReplayCouples) Code() string           { return primitive.CtrFirstSeenReplayCouples }
func (g *FirstSeenReplayCouples) Count() int             { return len(g.Value) }
func (g *FirstSeenReplayCouples) QB64() (string, error)  { return groupQB64(g.Code(), g.Value) }
func (g *FirstSeenReplayCouples) QB64B() ([]byte, error) { return groupQB64B(g.Code(), g.Value) }
func (g *FirstSeenReplayCouples) QB2() ([]byte, error)   { return groupQB2(g.Code(), g.Value) }
func (g *FirstSeenReplayCouples) FullSize() int          { return groupFullSize(g.Code(), g.Value) }
func (g *FirstSeenReplayCouples) group()                 {}
