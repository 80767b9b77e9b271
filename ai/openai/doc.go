// Copyright 2025 SuperNetworkAI Authors
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


// Package openai provides production implementations of the ai interfaces
// backed by OpenAI-compatible HTTP APIs (OpenAI, Ollama, LocalAI, vLLM).
//
// Embeddings go through langchaingo's embeddings wrapper; ranking and
// insights use chat completions in JSON mode with defensive parsing
// (code fence stripping, key-quote repair, bounded retries).
package openai
