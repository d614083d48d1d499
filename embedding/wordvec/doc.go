// Package wordvec implements embedding.Embedder over static pre-trained
// word vectors loaded from .vec text files (the word2vec/fastText textual
// layout).
//
// A model is loaded once per process and is immutable afterwards; lookups
// and mean pooling are read-only and safe for concurrent use. Phrases are
// embedded by mean pooling the vectors of their tokens. Tokens that are not
// in the model contribute nothing, and a phrase whose tokens are all
// out-of-vocabulary embeds to the zero vector, which callers detect through
// its norm.
package wordvec
