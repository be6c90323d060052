package hash

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/cespare/xxhash/v2"
)

// Sum returns the hex-encoded xxHash of data
func Sum(data []byte) string {
	return hex.EncodeToString(Sum64Bytes(data))
}

// Sum64Bytes returns the xxHash of data as 8 big-endian bytes
func Sum64Bytes(data []byte) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, xxhash.Sum64(data))
	return buf
}

// XXHashFunc is a custom hash function adapter for go-merkletree
func XXHashFunc(data []byte) ([]byte, error) {
	return Sum64Bytes(data), nil
}
