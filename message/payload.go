package message

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Payload is one decoded message body: the single top-level map value a
// serialization-domain cold start announces. Group attachments follow the
// body in the stream and are parsed separately.
type Payload struct {
	Value map[string]any
}

// parsePayload decodes exactly one top-level value from the head of a
// serialization-domain stream, returning the precise unconsumed remainder.
// MessagePack bodies classify correctly but their decoding is intentionally
// unimplemented.
func parsePayload(b []byte, cc ColdCode) (*Payload, []byte, error) {
	switch cc {
	case ColdJSON:
		dec := json.NewDecoder(bytes.NewReader(b))
		var v map[string]any
		if err := dec.Decode(&v); err != nil {
			return nil, nil, wrapError(KindPayload, "CESR-PLD-001", "malformed JSON message body", err)
		}
		return &Payload{Value: v}, b[dec.InputOffset():], nil
	case ColdCBOR:
		dec := cbor.NewDecoder(bytes.NewReader(b))
		var v map[string]any
		if err := dec.Decode(&v); err != nil {
			return nil, nil, wrapError(KindPayload, "CESR-PLD-002", "malformed CBOR message body", err)
		}
		return &Payload{Value: v}, b[dec.NumBytesRead():], nil
	case ColdMGPK1, ColdMGPK2:
		return nil, nil, newError(KindUnsupported, "CESR-PLD-003", "MessagePack message bodies are not supported")
	default:
		return nil, nil, newError(KindPayload, "CESR-PLD-004",
			fmt.Sprintf("domain %s carries no message body", cc))
	}
}
