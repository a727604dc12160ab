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

// Package index embeds a text corpus through the proxy so it can be searched.
//
// A corpus is a plain text file with one document per non-empty line.
// The Indexer splits the documents into batches, submits each batch to a
// bounded worker pool, and retries failed batches with exponential backoff.
// Vectors are written back onto the documents, which keep their input order.
//
// # Usage
//
//	docs, err := index.LoadCorpus("faq.txt")
//	indexer, err := index.NewIndexer(embedder, index.DefaultConfig(),
//	    index.WithProgress(os.Stderr))
//	defer indexer.Release()
//	docs, err = indexer.Index(ctx, docs)
package index
