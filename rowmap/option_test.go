package rowmap

import (
	"database/sql/driver"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOption_Basics(t *testing.T) {
	some := Some(3)
	v, ok := some.Get()
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, "Some(3)", some.String())

	none := None[int]()
	assert.False(t, none.IsSome())
	assert.Equal(t, 9, none.OrElse(9))
	assert.Equal(t, "None", none.String())
	assert.Equal(t, Option[int]{}, none)
}

func TestOption_Scan(t *testing.T) {
	var o Option[string]
	require.NoError(t, o.Scan("x"))
	assert.Equal(t, Some("x"), o)

	require.NoError(t, o.Scan(nil))
	assert.Equal(t, None[string](), o)

	var n Option[int32]
	require.Error(t, n.Scan("abc"))
}

func TestOption_Value(t *testing.T) {
	v, err := None[int64]().Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = Some(int32(5)).Value()
	require.NoError(t, err)
	assert.Equal(t, driver.Value(int64(5)), v)
}

func TestGet_OptionFromNull(t *testing.T) {
	row := MustValues([]string{"name", "nick"}, []any{nil, "bob"})

	name, err := Get[Option[string]](row, "name")
	require.NoError(t, err)
	assert.False(t, name.IsSome())

	nick, err := Get[Option[string]](row, "nick")
	require.NoError(t, err)
	assert.Equal(t, Some("bob"), nick)
}
