// Package normalisers provides text normalisation implementations.
// Normalisers transform extracted page text into a canonical form before
// chunking; the arabic normaliser is the only one the pipeline uses.
package normalisers
