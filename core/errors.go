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


package core

import "errors"

var (
	// ErrInvalidDocument indicates a Document failed validation.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrInvalidEmbedding indicates an Embedding failed validation.
	ErrInvalidEmbedding = errors.New("invalid embedding")

	// ErrInvalidTimestamp indicates a timestamp is in the future.
	ErrInvalidTimestamp = errors.New("timestamp cannot be in the future")

	// ErrEmptyContent indicates the text field is empty.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrEmptyModel indicates the embedding model name is empty.
	ErrEmptyModel = errors.New("model cannot be empty")

	// ErrEmptyVector indicates a vector has no components.
	ErrEmptyVector = errors.New("vector cannot be empty")

	// ErrIDMismatch indicates an Id does not match the content it should be derived from.
	ErrIDMismatch = errors.New("id does not match content")
)
