package primitive

import "encoding/base64"

// The CESR text domain uses the URL-safe Base64 alphabet with no padding.
// Whole primitives are 24-bit aligned, so the text form of any primitive is
// exactly the Base64URL image of its binary form and vice versa.
var b64Raw = base64.RawURLEncoding

const b64Chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

var b64Vals [128]int8

func init() {
	for i := range b64Vals {
		b64Vals[i] = -1
	}
	for i := 0; i < len(b64Chars); i++ {
		b64Vals[b64Chars[i]] = int8(i)
	}
}

// b64ToInt interprets s as big-endian base-64 digits.
func b64ToInt(s []byte) (uint64, error) {
	if len(s) == 0 {
		return 0, newError(KindDecode, "CESR-B64-001", "empty base64 digit string")
	}
	var v uint64
	for _, c := range s {
		if c >= 128 || b64Vals[c] < 0 {
			return 0, newError(KindDecode, "CESR-B64-002", "invalid base64 character")
		}
		v = v<<6 | uint64(b64Vals[c])
	}
	return v, nil
}

// intToB64 renders v as exactly l big-endian base-64 digits.
func intToB64(v uint64, l int) (string, error) {
	if l <= 0 || l > 10 {
		return "", newError(KindSize, "CESR-B64-003", "invalid base64 digit width")
	}
	if l < 10 && v >= uint64(1)<<(6*uint(l)) {
		return "", newError(KindSize, "CESR-B64-004", "value exceeds base64 digit width")
	}
	out := make([]byte, l)
	for i := l - 1; i >= 0; i-- {
		out[i] = b64Chars[v&0x3F]
		v >>= 6
	}
	return string(out), nil
}

// b2ToB64Prefix extracts the first l sextets of b2 as base-64 characters.
// Used to identify a code from the head of a binary-domain stream.
func b2ToB64Prefix(b2 []byte, l int) (string, error) {
	need := (l*6 + 7) / 8
	if len(b2) < need {
		return "", newError(KindDecode, "CESR-B64-005", "short binary stream for code sextets")
	}
	out := make([]byte, l)
	for i := 0; i < l; i++ {
		bit := i * 6
		idx := bit / 8
		var v int
		switch bit % 8 {
		case 0:
			v = int(b2[idx] >> 2)
		case 2:
			v = int(b2[idx]) & 0x3F
		case 4:
			v = int(b2[idx])<<2 | int(b2[idx+1])>>6
		case 6:
			v = int(b2[idx])<<4 | int(b2[idx+1])>>4
		}
		out[i] = b64Chars[v&0x3F]
	}
	return string(out), nil
}
