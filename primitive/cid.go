package primitive

import (
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// multihash function codes for the digest derivation codes. Blake2 codes are
// the per-length entries of the multihash blake2 ranges.
func multihashCode(code string) (uint64, error) {
	switch code {
	case MtrBlake3_256, MtrBlake3_512:
		return multihash.BLAKE3, nil
	case MtrBlake2b_256:
		return multihash.BLAKE2B_MIN + 31, nil
	case MtrBlake2b_512:
		return multihash.BLAKE2B_MIN + 63, nil
	case MtrBlake2s_256:
		return multihash.BLAKE2S_MIN + 31, nil
	case MtrSHA3_256:
		return multihash.SHA3_256, nil
	case MtrSHA3_512:
		return multihash.SHA3_512, nil
	case MtrSHA2_256:
		return multihash.SHA2_256, nil
	case MtrSHA2_512:
		return multihash.SHA2_512, nil
	default:
		return 0, newError(KindUnsupported, "CESR-CID-001",
			fmt.Sprintf("code %q has no multihash equivalent", code))
	}
}

// DigestCID exports a digest-coded primitive as a CIDv1 with the raw
// multicodec, wrapping the existing digest as a multihash without re-hashing.
// This is the bridge between CESR self-addressing identifiers and
// content-addressed storage keyed by CID.
func DigestCID(m *Matter) (cid.Cid, error) {
	code, err := multihashCode(m.Code())
	if err != nil {
		return cid.Undef, err
	}
	sum, err := multihash.Encode(m.Raw(), code)
	if err != nil {
		return cid.Undef, wrapError(KindDecode, "CESR-CID-002", "multihash encode failed", err)
	}
	return cid.NewCidV1(cid.Raw, multihash.Multihash(sum)), nil
}
