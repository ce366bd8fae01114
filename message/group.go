package message

import (
	"errors"
	"fmt"

	"xdao.co/cesr/primitive"
)

// GroupItem is the capability every concrete group item provides: the three
// renderings plus the total text-character size used for buffer allocation
// and consumption accounting.
type GroupItem interface {
	QB64() (string, error)
	QB64B() ([]byte, error)
	QB2() ([]byte, error)
	FullSize() int
}

// Group is a counted, homogeneous sequence of decoded items tagged with the
// counter code that identifies its type. The set of implementations is
// closed; consumers dispatch with a type switch.
type Group interface {
	// Code returns the counter code identifying this group type.
	Code() string
	// Count returns the number of items (or quadlets, for attachment
	// sections) the group renders into its counter.
	Count() int
	QB64() (string, error)
	QB64B() ([]byte, error)
	QB2() ([]byte, error)
	// FullSize returns the total text size: counter header plus items. A
	// count too large for the header's field is caught when rendering.
	FullSize() int

	group()
}

// addOffset shifts the recorded stream offset of a structured error by the
// number of bytes consumed before the failing region.
func addOffset(err error, delta int) error {
	var e *Error
	if errors.As(err, &e) {
		e.Offset += delta
	}
	return err
}

// parseItems is the one counted-parse loop shared by every group variant:
// run the item parser exactly count times, threading the remainder, with no
// retry, realignment or partial result.
func parseItems[T GroupItem](b []byte, count int, parse ParserFn[T]) ([]T, []byte, error) {
	items := make([]T, 0, count)
	rest := b
	for i := 0; i < count; i++ {
		item, r, err := parse(rest)
		if err != nil {
			return nil, nil, addOffset(wrapError(KindPrimitive, "CESR-GRP-001",
				fmt.Sprintf("item %d of %d failed to decode", i+1, count), err), len(b)-len(rest))
		}
		items = append(items, item)
		rest = r
	}
	return items, rest, nil
}

// expectCode guards the direct from-stream entry points against a counter of
// the wrong type.
func expectCode(ctr *primitive.Counter, code string) error {
	if ctr == nil {
		return newError(KindFraming, "CESR-GRP-002", "nil counter")
	}
	if ctr.Code() != code {
		return newError(KindFraming, "CESR-GRP-003",
			fmt.Sprintf("counter code %q does not frame a %q group", ctr.Code(), code))
	}
	return nil
}

// groupFullSize returns the total text size of a rendered group: the counter
// header width plus the sum of the item sizes.
func groupFullSize[T GroupItem](code string, items []T) int {
	total := primitive.CounterTextSize(code)
	for _, it := range items {
		total += it.FullSize()
	}
	return total
}

func groupQB64[T GroupItem](code string, items []T) (string, error) {
	b, err := groupQB64B(code, items)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func groupQB64B[T GroupItem](code string, items []T) ([]byte, error) {
	ctr, err := primitive.NewCounter(code, uint32(len(items)))
	if err != nil {
		return nil, err
	}
	out := make([]byte, groupFullSize(code, items))
	cb, err := ctr.QB64B()
	if err != nil {
		return nil, err
	}
	offset := copy(out, cb)
	for _, it := range items {
		ib, err := it.QB64B()
		if err != nil {
			return nil, err
		}
		if len(ib) != it.FullSize() {
			return nil, newError(KindPrimitive, "CESR-GRP-004", "item rendering does not match its declared size")
		}
		offset += copy(out[offset:], ib)
	}
	return out, nil
}

// groupQB2 assembles the binary rendering into one buffer. Each item's
// binary share is its text size scaled by the 3/4 ratio, which keeps segment
// boundaries aligned to where each item's binary form starts.
func groupQB2[T GroupItem](code string, items []T) ([]byte, error) {
	ctr, err := primitive.NewCounter(code, uint32(len(items)))
	if err != nil {
		return nil, err
	}
	out := make([]byte, groupFullSize(code, items)/4*3)
	cb, err := ctr.QB2()
	if err != nil {
		return nil, err
	}
	offset := copy(out, cb)
	for _, it := range items {
		ib, err := it.QB2()
		if err != nil {
			return nil, err
		}
		if len(ib) != it.FullSize()/4*3 {
			return nil, newError(KindPrimitive, "CESR-GRP-005", "item binary rendering does not match its declared size")
		}
		offset += copy(out[offset:], ib)
	}
	return out, nil
}

// ParseGroup reads one counter header from the stream head and decodes the
// group it frames, returning the group with the unconsumed remainder.
func ParseGroup(b []byte, cc ColdCode) (Group, []byte, error) {
	if !cesrDomain(cc) {
		return nil, nil, newError(KindClassification, "CESR-GRP-010",
			fmt.Sprintf("domain %s carries no CESR groups", cc))
	}
	cp, err := CounterParser(cc)
	if err != nil {
		return nil, nil, err
	}
	ctr, rest, err := cp(b)
	if err != nil {
		return nil, nil, wrapError(KindFraming, "CESR-GRP-011", "malformed counter header", err)
	}
	hdr := len(b) - len(rest)

	var g Group
	switch ctr.Code() {
	case primitive.CtrControllerIdxSigs:
		g, rest, err = ControllerIdxSigsFromStream(rest, ctr, cc)
	case primitive.CtrWitnessIdxSigs:
		g, rest, err = WitnessIdxSigsFromStream(rest, ctr, cc)
	case primitive.CtrNonTransReceiptCouples:
		g, rest, err = NonTransReceiptCouplesFromStream(rest, ctr, cc)
	case primitive.CtrTransReceiptQuadruples:
		g, rest, err = TransReceiptQuadruplesFromStream(rest, ctr, cc)
	case primitive.CtrFirstSeenReplayCouples:
		g, rest, err = FirstSeenReplayCouplesFromStream(rest, ctr, cc)
	case primitive.CtrTransIdxSigGroups:
		g, rest, err = TransIdxSigGroupsFromStream(rest, ctr, cc)
	case primitive.CtrSealSourceCouples:
		g, rest, err = SealSourceCouplesFromStream(rest, ctr, cc)
	case primitive.CtrTransLastIdxSigGroups:
		g, rest, err = TransLastIdxSigGroupsFromStream(rest, ctr, cc)
	case primitive.CtrSealSourceTriples:
		g, rest, err = SealSourceTriplesFromStream(rest, ctr, cc)
	case primitive.CtrAttachedMaterialQuadlets, primitive.CtrBigAttachedMaterialQuadlets:
		g, rest, err = AttachedMaterialQuadletsFromStream(rest, ctr, cc)
	case primitive.CtrSadPathSig, primitive.CtrSadPathSigGroup, primitive.CtrPathedMaterialQuadlets:
		return nil, nil, newError(KindUnsupported, "CESR-GRP-012",
			fmt.Sprintf("pathed material group %q is not supported", ctr.Code()))
	default:
		return nil, nil, newError(KindFraming, "CESR-GRP-013",
			fmt.Sprintf("counter code %q frames no known group", ctr.Code()))
	}
	if err != nil {
		return nil, nil, addOffset(err, hdr)
	}
	return g, rest, nil
}
