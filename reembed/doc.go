// Package reembed regenerates the embeddings of every stored profile, for
// use when the embedding model changes or stored vectors are suspect.
//
// The package iterates the profile corpus in batches, re-derives each
// profile's embedding text, embeds with retry and exponential backoff,
// normalizes the resulting vectors and reports progress.
package reembed
