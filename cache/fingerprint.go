package cache

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// Fingerprint hashes an ordered list of context parts (typically prompt
// text plus a language id) into a compact hex key. Parts are length-framed
// before hashing so that ("ab","c") and ("a","bc") produce distinct keys.
func Fingerprint(parts ...string) string {
	h := fnv.New64a()
	var frame [8]byte
	for _, part := range parts {
		binary.LittleEndian.PutUint64(frame[:], uint64(len(part)))
		h.Write(frame[:])
		h.Write([]byte(part))
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
