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

// Package demo contains the sample scenarios that exercise an
// OpenAI-compatible proxy end to end.
//
// There are three suites:
//
//   - Overview: list models, one short chat turn, one embedding. Each step
//     reports its own failure and the next step still runs.
//   - Chat: simple, streaming, multi-turn, temperature comparison and
//     system prompt conversations.
//   - Embedding: single and batch embeddings, a similarity matrix, a small
//     semantic search and a multilingual comparison.
//
// Output is human-readable text written to the Runner's writer. The sample
// prompts are Japanese, matching the multilingual models the proxy is
// usually deployed with.
package demo
