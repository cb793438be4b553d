package machineid

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strconv"
)

// accountNameFormat is the string hashed for the account-name derivation
// mode: a fixed marker, the field label, and the account name.
const accountNameFormat = "SteamUser Hash %s %s"

// sha1HexValue hashes the input string with SHA1 and returns the digest as
// 40 uppercase hexadecimal ASCII bytes.
func sha1HexValue(input string) HashValue {
	digest := sha1.Sum([]byte(input))

	var value HashValue
	copy(value[:], hexEncodeUpper(digest[:]))

	return value
}

// hexEncodeUpper returns the uppercase hexadecimal encoding of src.
// The result is always 2*len(src) bytes of the digits 0-9 and A-F.
func hexEncodeUpper(src []byte) []byte {
	dst := make([]byte, hex.EncodedLen(len(src)))
	hex.Encode(dst, src)

	return bytes.ToUpper(dst)
}

// randomHashValue derives a hash value from fresh entropy: a random float32
// in [0,1) rendered as its shortest decimal string, then hashed. This is the
// format Steam clients historically produced; the input space is only about
// 2^24 strings, so the value is a fingerprint rather than a secret.
func randomHashValue(random RandomSource) HashValue {
	return sha1HexValue(strconv.FormatFloat(float64(random.Float32()), 'g', -1, 32))
}

// accountNameHashValue derives a hash value for the given field label and
// account name. Deterministic for a given pair.
func accountNameHashValue(label, accountName string) HashValue {
	return sha1HexValue(fmt.Sprintf(accountNameFormat, label, accountName))
}

// customHashValue derives a hash value directly from a caller-supplied
// string.
func customHashValue(value string) HashValue {
	return sha1HexValue(value)
}
