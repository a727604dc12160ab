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

// Package openai implements the ai interfaces against an OpenAI-compatible
// inference proxy.
//
// Chat completions and embeddings go through the langchaingo OpenAI client;
// model listing, which langchaingo does not cover, is a plain GET on /models.
// All services of a Provider share one *http.Client, so the configured
// timeout and connection pool apply uniformly.
//
// # Usage
//
//	cfg := ai.NewConfig(ai.WithBaseURL("http://localhost:4000")) // /v1 added automatically
//	provider, err := openai.NewProvider(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	models, err := provider.ModelLister().ListModels(ctx)
//	reply, err := provider.ChatModel().Complete(ctx, []ai.Message{ai.UserMessage("hi")}, nil)
//	vectors, err := provider.Embedder().EmbedTexts(ctx, []string{"a", "b"})
package openai
