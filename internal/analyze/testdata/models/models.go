package models

import (
	"github.com/google/uuid"

	"rowmap-generator/rowmap"
)

type Option[T any] = rowmap.Option[T]

type UserID int64

// Account is a row of the accounts table.
type Account struct {
	ID    uuid.UUID `rowmap:"try_from=string,rename=id"`
	Owner UserID    `rowmap:"from=int64"`
	// Email is unique.
	Email    string `rowmap:"rename=email_address" json:"email"`
	Nick     Option[string]
	Lat, Lng float64
}

type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

type (
	ratio struct {
		Num, Den int
	}

	Counts map[string]int
)

type Padded struct {
	Code int32
	_    [4]byte
	_, Flag bool
}

type Embeds struct {
	Account
	Extra string
}
