package badger

import (
	"encoding/binary"

	"github.com/poiesic/proxyclient/core"
)

const embeddingPrefix = "emb:"

// makeEmbeddingKey encodes the id big-endian so keys sort by id.
func makeEmbeddingKey(id core.ID) []byte {
	buf := make([]byte, len(embeddingPrefix)+8)
	offset := copy(buf, embeddingPrefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

func parseEmbeddingKey(key []byte) (core.ID, bool) {
	if len(key) != len(embeddingPrefix)+8 || string(key[:len(embeddingPrefix)]) != embeddingPrefix {
		return 0, false
	}
	return core.ID(binary.BigEndian.Uint64(key[len(embeddingPrefix):])), true
}
