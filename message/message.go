package message

import "fmt"

// Message is one element of a CESR stream: either a serialization-domain
// body (JSON, CBOR) or a CESR attachment group. Exactly one field is set.
type Message struct {
	Payload *Payload
	Group   Group
}

// ParseMessage classifies the stream head and decodes one message element,
// returning it with the unconsumed remainder. Callers loop over the
// remainder to drain a stream.
func ParseMessage(b []byte) (*Message, []byte, error) {
	cc, err := Classify(b)
	if err != nil {
		return nil, nil, err
	}
	switch {
	case cesrDomain(cc):
		g, rest, err := ParseGroup(b, cc)
		if err != nil {
			return nil, nil, err
		}
		return &Message{Group: g}, rest, nil
	case cc == ColdJSON || cc == ColdCBOR || cc == ColdMGPK1 || cc == ColdMGPK2:
		p, rest, err := parsePayload(b, cc)
		if err != nil {
			return nil, nil, err
		}
		return &Message{Payload: p}, rest, nil
	default:
		return nil, nil, newError(KindUnsupported, "CESR-MSG-001",
			fmt.Sprintf("domain %s is reserved", cc))
	}
}
