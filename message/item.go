package message

import "strings"

// Helpers shared by multi-primitive group items: concatenate the constituent
// renderings in declared field order, no separators, no padding. The binary
// buffer is allocated once; each field's binary share is its text size
// scaled by the 4:3 ratio so segment boundaries land exactly where that
// field's binary form starts.

func sumFullSize(fields ...GroupItem) int {
	total := 0
	for _, f := range fields {
		total += f.FullSize()
	}
	return total
}

func concatQB64(fields ...GroupItem) (string, error) {
	var sb strings.Builder
	sb.Grow(sumFullSize(fields...))
	for _, f := range fields {
		s, err := f.QB64()
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
	}
	return sb.String(), nil
}

func concatQB64B(fields ...GroupItem) ([]byte, error) {
	out := make([]byte, sumFullSize(fields...))
	offset := 0
	for _, f := range fields {
		b, err := f.QB64B()
		if err != nil {
			return nil, err
		}
		if len(b) != f.FullSize() {
			return nil, newError(KindPrimitive, "CESR-ITM-001", "field rendering does not match its declared size")
		}
		offset += copy(out[offset:], b)
	}
	return out, nil
}

func concatQB2(fields ...GroupItem) ([]byte, error) {
	out := make([]byte, sumFullSize(fields...)/4*3)
	offset := 0
	for _, f := range fields {
		b, err := f.QB2()
		if err != nil {
			return nil, err
		}
		if len(b) != f.FullSize()/4*3 {
			return nil, newError(KindPrimitive, "CESR-ITM-002", "field binary rendering does not match its declared size")
		}
		offset += copy(out[offset:], b)
	}
	return out, nil
}
