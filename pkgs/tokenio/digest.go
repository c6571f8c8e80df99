package tokenio

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	lexerrors "github.com/aledsdavies/eslex/pkgs/errors"
)

// Digest fingerprints a stream as BLAKE2b-256 over its canonical CBOR
// encoding. Equal streams always produce equal digests.
func Digest(s Stream) (string, error) {
	data, err := canonicalCBOR.Marshal(s)
	if err != nil {
		return "", lexerrors.NewEncodeError(string(FormatCBOR), err)
	}
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
