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


// Package similarity ranks embedding vectors by cosine similarity.
//
// All functions are pure: they read their inputs and return new values
// without retaining or mutating them. Vectors compared against each other must
// share the same non-zero length, and every vector must have a non-zero norm.
//
//	ranked, err := similarity.Rank(query, []similarity.Candidate{
//	    {ID: "doc-1", Vector: v1},
//	    {ID: "doc-2", Vector: v2},
//	})
//	if errors.Is(err, similarity.ErrDimensionMismatch) {
//	    // embeddings came from different models
//	}
package similarity
