// Package diagnostic provides structured errors, warnings and notes found
// while checking mapping targets before code is generated.
//
// Each Diagnostic carries a stable code, the struct and field it is about,
// a source position when one is known, and "did you mean" suggestions.
package diagnostic
