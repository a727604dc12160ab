// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package storage

import (
	"fmt"
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
	"github.com/poiesic/proxyclient/core"
)

const float32Size = 4

func embeddingSize(e *core.Embedding) int {
	size := varint.Uint64.Size(uint64(e.Id))
	size += ord.String.Size(e.Model)
	size += ord.String.Size(e.Text)
	size += varint.Uint64.Size(uint64(len(e.Vector)))
	size += len(e.Vector) * float32Size
	size += varint.Int64.Size(e.InsertedAt.UnixNano())
	return size
}

// MarshalEmbedding serializes an Embedding to bytes.
func MarshalEmbedding(e *core.Embedding) []byte {
	buf := make([]byte, embeddingSize(e))
	n := varint.Uint64.Marshal(uint64(e.Id), buf)
	n += ord.String.Marshal(e.Model, buf[n:])
	n += ord.String.Marshal(e.Text, buf[n:])
	n += varint.Uint64.Marshal(uint64(len(e.Vector)), buf[n:])
	for _, v := range e.Vector {
		n += raw.Float32.Marshal(v, buf[n:])
	}
	varint.Int64.Marshal(e.InsertedAt.UnixNano(), buf[n:])
	return buf
}

// UnmarshalEmbedding deserializes an Embedding from bytes.
func UnmarshalEmbedding(data []byte) (*core.Embedding, error) {
	var (
		e   core.Embedding
		n   int
		m   int
		err error
	)

	id, m, err := varint.Uint64.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: id: %w", ErrSerializationFailed, err)
	}
	e.Id = core.ID(id)
	n += m

	if e.Model, m, err = ord.String.Unmarshal(data[n:]); err != nil {
		return nil, fmt.Errorf("%w: model: %w", ErrSerializationFailed, err)
	}
	n += m

	if e.Text, m, err = ord.String.Unmarshal(data[n:]); err != nil {
		return nil, fmt.Errorf("%w: text: %w", ErrSerializationFailed, err)
	}
	n += m

	length, m, err := varint.Uint64.Unmarshal(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: vector length: %w", ErrSerializationFailed, err)
	}
	n += m

	if length > uint64((len(data)-n)/float32Size) {
		return nil, fmt.Errorf("%w: vector of %d components in %d bytes", ErrTruncatedData, length, len(data)-n)
	}
	e.Vector = make([]float32, length)
	for i := range e.Vector {
		if e.Vector[i], m, err = raw.Float32.Unmarshal(data[n:]); err != nil {
			return nil, fmt.Errorf("%w: vector[%d]: %w", ErrSerializationFailed, i, err)
		}
		n += m
	}

	nanos, m, err := varint.Int64.Unmarshal(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: inserted at: %w", ErrSerializationFailed, err)
	}
	n += m
	e.InsertedAt = time.Unix(0, nanos).UTC()

	if n != len(data) {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrSerializationFailed, len(data)-n)
	}
	return &e, nil
}
