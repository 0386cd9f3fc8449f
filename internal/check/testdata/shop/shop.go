package shop

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"rowmap-generator/rowmap"
)

type Option[T any] = rowmap.Option[T]

type UserID int64

type Money int64

func (Money) Default() Money { return 100 }

type Code string

func (c *Code) Scan(src any) error {
	s, ok := src.(string)
	if !ok {
		return fmt.Errorf("code: unsupported %T", src)
	}

	*c = Code(s)

	return nil
}

type Tags map[string]string

type Invoice struct {
	ID      uuid.UUID    `rowmap:"try_from=string"`
	Owner   UserID       `rowmap:"from=int64"`
	Total   Money        `rowmap:"rename=total_cents"`
	Ref     Option[Code] `rowmap:"try_from=string"`
	Created time.Time
	Note    *string
	Raw     []byte
	Any     any
}

type Broken struct {
	Tags  Tags
	Owner UserID    `rowmap:"from=string"`
	Label string    `rowmap:"try_from=int64"`
	Ident uuid.UUID `rowmap:"try_from=strng"`
	Cost  Money     `rowmap:"from=uuid.UUid"`
	Phase complex128
}

type Page[T any] struct {
	Items T
	Count int
}

type Flags struct {
	A int32
	B Option[bool]
}
