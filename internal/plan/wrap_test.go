package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldTypes(s RawStruct) []string {
	out := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		out[i] = f.Type
	}

	return out
}

func TestWrapOptional(t *testing.T) {
	s := RawStruct{Name: "Flags", Fields: []RawField{field("A", "int32"), field("B", "Option[bool]")}}

	wrapped := WrapOptional(s, true)
	assert.Equal(t, []string{"Option[int32]", "Option[bool]"}, fieldTypes(wrapped))

	// Input is untouched.
	assert.Equal(t, []string{"int32", "Option[bool]"}, fieldTypes(s))
}

func TestWrapOptional_Disabled(t *testing.T) {
	s := RawStruct{Name: "Flags", Fields: []RawField{field("A", "int32")}}

	assert.Equal(t, s, WrapOptional(s, false))
}

func TestWrapOptional_Idempotent(t *testing.T) {
	s := RawStruct{Name: "Mixed", Fields: []RawField{
		field("A", "*int"),
		field("B", "map[string]Option[int]"),
		field("C", "rowmap.Option[string]"),
		field("D", "Option[[]byte]"),
	}}

	once := WrapOptional(s, true)
	twice := WrapOptional(once, true)

	assert.Equal(t, once, twice)
	assert.Equal(t, []string{
		"Option[*int]",
		"Option[map[string]Option[int]]",
		"Option[rowmap.Option[string]]",
		"Option[[]byte]",
	}, fieldTypes(once))
}

func TestWrapOptional_KeepsDirectives(t *testing.T) {
	s := RawStruct{Name: "T", Fields: []RawField{{Name: "ID", Type: "UserID", From: ptr("int64"), Rename: ptr("id")}}}

	wrapped := WrapOptional(s, true)
	require.Len(t, wrapped.Fields, 1)
	assert.Equal(t, "Option[UserID]", wrapped.Fields[0].Type)
	assert.Equal(t, "int64", *wrapped.Fields[0].From)
	assert.Equal(t, "id", *wrapped.Fields[0].Rename)

	m, err := Compile(wrapped)
	require.NoError(t, err)
	assert.Equal(t, "Option[UserID](v)", m.Fields[0].Total.Value)
	assert.Equal(t, "Option[UserID]{}", m.Fields[0].Total.Fallback)
}

func TestWrapOptional_ThenCompile(t *testing.T) {
	s := RawStruct{Name: "Flags", Fields: []RawField{field("A", "int32"), field("B", "Option[bool]")}}

	m, err := Compile(WrapOptional(s, true))
	require.NoError(t, err)

	for _, f := range m.Fields {
		assert.True(t, f.Spec.IsOptionalWrapper, f.Field)
	}

	assert.Equal(t, []Constraint{
		{Kind: ConstraintDecodable, Subject: "Option[int32]"},
		{Kind: ConstraintDecodable, Subject: "Option[bool]"},
	}, m.Requirements())
}

func TestWrappedName(t *testing.T) {
	assert.Equal(t, "OptionalAccount", WrappedName("Account"))
	assert.Equal(t, "optionalAccount", WrappedName("account"))
	assert.Equal(t, "", WrappedName(""))
}

func TestWrapped(t *testing.T) {
	s := RawStruct{
		Name:   "Flags",
		Doc:    []string{"Flags are toggles."},
		Fields: []RawField{field("A", "int32"), field("B", "Option[bool]")},
	}

	w := Wrapped(s, "")
	assert.Equal(t, "OptionalFlags", w.Name)
	assert.True(t, w.EmitDefinition)
	assert.Equal(t, []string{"OptionalFlags is Flags with every field optional."}, w.Doc)
	assert.Equal(t, []string{"Option[int32]", "Option[bool]"}, fieldTypes(w))

	assert.Equal(t, "MaybeFlags", Wrapped(s, "MaybeFlags").Name)
	assert.False(t, s.EmitDefinition)
}
