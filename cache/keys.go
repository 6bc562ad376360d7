package cache

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/vmihailenco/msgpack/v5"
)

// KeySeparator defines the delimiter used between cache key segments.
const KeySeparator = "::"

// Key joins segments into a cache key.
func Key(parts ...string) string {
	return strings.Join(parts, KeySeparator)
}

// Signature returns a stable hex digest for v, suitable as a cache key
// segment. v is msgpack-encoded (struct fields serialize in declaration
// order, so equal values produce equal digests across runs) and hashed with
// xxhash64.
func Signature(v any) (string, error) {
	data, err := msgpack.Marshal(v)
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(xxhash.Sum64(data), 16), nil
}
