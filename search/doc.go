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

// Package search implements semantic search over an embedded corpus.
//
// The query is embedded with the same model as the corpus and every document
// is scored by cosine similarity (see package similarity). Results are ranked
// by descending score; documents with equal scores keep corpus order.
//
// A SearchMonitor can observe each stage, which the CLI uses to explain how
// a result list came about.
package search
