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

// Package ai provides abstractions for the inference services reached through
// an OpenAI-compatible proxy such as LiteLLM.
//
// # Interfaces
//
//   - Embedder: generates vector embeddings from text
//   - ChatModel: produces chat completions, optionally streamed
//   - ModelLister: enumerates the models the proxy routes to
//   - AIProvider: aggregates the three behind one Config
//
// # Implementation Packages
//
//   - ai/openai: production implementation over the proxy's HTTP API
//   - ai/mock: deterministic test doubles
//
// Public constructors in ai/openai return interface types; mock constructors
// return concrete types so tests can inject behavior and inspect call counts.
//
// # Usage Example
//
//	cfg, err := ai.LoadConfig("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	provider, err := openai.NewProvider(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	reply, err := provider.ChatModel().Complete(ctx,
//	    []ai.Message{ai.UserMessage("Hello")},
//	    &ai.ChatOptions{MaxTokens: 50})
//	vec, err := provider.Embedder().EmbedText(ctx, "test")
package ai
