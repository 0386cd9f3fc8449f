package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deref(s *string) any {
	if s == nil {
		return nil
	}

	return *s
}

func TestParseTag(t *testing.T) {
	tests := []struct {
		name    string
		tag     string
		rename  any
		from    any
		tryFrom any
	}{
		{name: "no tag", tag: ``},
		{name: "other keys only", tag: `json:"id" db:"id"`},
		{name: "rename", tag: `rowmap:"rename=user_id"`, rename: "user_id"},
		{name: "from", tag: `rowmap:"from=int64"`, from: "int64"},
		{name: "try_from and rename", tag: `rowmap:"try_from=string,rename=id"`, rename: "id", tryFrom: "string"},
		{name: "spaces", tag: `rowmap:" rename = id , from = int64 "`, rename: "id", from: "int64"},
		{name: "nested commas", tag: `rowmap:"from=Pair[int, string],rename=p"`, rename: "p", from: "Pair[int, string]"},
		{name: "func type", tag: `rowmap:"from=func(int, int) error"`, from: "func(int, int) error"},
		{name: "trailing comma", tag: `rowmap:"rename=x,"`, rename: "x"},
		{name: "empty value", tag: `rowmap:"from="`, from: ""},
		{name: "mixed with json", tag: `json:"email" rowmap:"rename=email_address"`, rename: "email_address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseTag(tt.tag)
			require.NoError(t, err)
			assert.Equal(t, tt.rename, deref(d.Rename))
			assert.Equal(t, tt.from, deref(d.From))
			assert.Equal(t, tt.tryFrom, deref(d.TryFrom))
		})
	}
}

func TestParseTag_Errors(t *testing.T) {
	for _, tag := range []string{
		`rowmap:"column=a"`,
		`rowmap:"rename"`,
		`rowmap:"rename=a,rename=b"`,
	} {
		t.Run(tag, func(t *testing.T) {
			_, err := ParseTag(tag)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidTag)
		})
	}
}

func TestParseTag_BothConversionDirectivesAreKept(t *testing.T) {
	d, err := ParseTag(`rowmap:"from=string,try_from=string"`)
	require.NoError(t, err)
	assert.Equal(t, "string", deref(d.From))
	assert.Equal(t, "string", deref(d.TryFrom))
}
