// Package match provides identifier normalization and Levenshtein based
// "did you mean" suggestions for diagnostics.
//
// Key functions:
//   - NormalizeIdent: folds an identifier for fuzzy comparison
//   - SnakeCase: splits CamelCase identifiers into snake_case
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks candidate names close to a misspelled one
package match
