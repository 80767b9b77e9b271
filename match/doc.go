// Package match implements the profile matching pipeline: query embedding,
// vector similarity search, visibility filtering and LLM re-ranking with
// per-result explanations.
package match
