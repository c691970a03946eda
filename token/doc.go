// Package token provides tokenization support for configuration object
// documents.
//
// [Tokenize] is a function for tokenizing bytes. Every token records its
// byte offset and the exact source slice it spans, so adjacent tokens can
// be joined by offset arithmetic over the shared source buffer.
//
// A minus sign is always its own token: numeric tokens are unsigned at the
// lexical level, and a negative literal arrives as a '-' token immediately
// followed by a numeric token with no bytes between them.
package token
