package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rowmap-generator/internal/analyze"
	"rowmap-generator/internal/plan"
)

func ptr(s string) *string {
	return &s
}

func account() plan.RawStruct {
	return plan.RawStruct{
		Name:    "Account",
		PkgName: "models",
		PkgPath: "example.com/models",
		Fields: []plan.RawField{
			{Name: "ID", Type: "uuid.UUID", TryFrom: ptr("string"), Rename: ptr("id")},
			{Name: "Email", Type: "string"},
		},
	}
}

func TestTarget_Apply(t *testing.T) {
	target := Target{
		Type: "Account",
		Fields: []FieldOverride{
			{Name: "ID", Rename: ptr("account_id")},
			{Name: "Email", Rename: ptr("email_address")},
		},
	}

	s := account()

	out, err := target.Apply(s)
	require.NoError(t, err)

	assert.Equal(t, "account_id", *out.Fields[0].Rename)
	assert.Equal(t, "string", *out.Fields[0].TryFrom, "directives absent from the file are kept")
	assert.Equal(t, "email_address", *out.Fields[1].Rename)

	assert.Equal(t, "id", *s.Fields[0].Rename, "input is untouched")
	assert.Nil(t, s.Fields[1].Rename)
}

func TestTarget_Apply_UnknownField(t *testing.T) {
	_, err := Target{Type: "Account", Fields: []FieldOverride{{Name: "Mail"}}}.Apply(account())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestTarget_Schema_Wrap(t *testing.T) {
	out, err := Target{Type: "Account", WrapOptional: true}.Schema(account())
	require.NoError(t, err)

	assert.Equal(t, "OptionalAccount", out.Name)
	assert.True(t, out.EmitDefinition)
	assert.Equal(t, "Option[uuid.UUID]", out.Fields[0].Type)

	out, err = Target{Type: "Account", WrapOptional: true, WrappedName: "MaybeAccount"}.Schema(account())
	require.NoError(t, err)
	assert.Equal(t, "MaybeAccount", out.Name)
}

func TestTarget_Resolve(t *testing.T) {
	models := &analyze.Package{Name: "models", Path: "example.com/models", Structs: []plan.RawStruct{account()}}
	other := &analyze.Package{Name: "legacy", Path: "example.com/legacy", Structs: []plan.RawStruct{{Name: "Account", PkgName: "legacy"}}}
	pkgs := []*analyze.Package{other, models}

	pkg, s, err := Target{Type: "Account"}.Resolve(pkgs)
	require.NoError(t, err)
	assert.Same(t, other, pkg, "first package wins without a qualifier")
	assert.Equal(t, "legacy", s.PkgName)

	pkg, _, err = Target{Type: "Account", Package: "example.com/models"}.Resolve(pkgs)
	require.NoError(t, err)
	assert.Same(t, models, pkg)

	pkg, _, err = Target{Type: "Account", Package: "models"}.Resolve(pkgs)
	require.NoError(t, err)
	assert.Same(t, models, pkg)

	_, _, err = Target{Type: "Invoice"}.Resolve(pkgs)
	assert.ErrorIs(t, err, ErrUnknownTarget)
}
