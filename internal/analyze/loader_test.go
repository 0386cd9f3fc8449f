package analyze

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"

	"rowmap-generator/internal/plan"
)

func loadModels(t *testing.T) *Package {
	t.Helper()

	pkgs, err := NewLoader().Load(context.Background(), "./testdata/models")
	require.NoError(t, err)
	require.Len(t, pkgs, 1)

	return pkgs[0]
}

func TestLoader_Structs(t *testing.T) {
	pkg := loadModels(t)

	assert.Equal(t, "models", pkg.Name)
	assert.NotNil(t, pkg.Types)
	assert.NotEmpty(t, pkg.Dir)
	assert.ElementsMatch(t, []string{"Account", "Pair", "ratio", "Embeds", "Padded", "Matrix"}, pkg.Names())

	_, ok := pkg.Lookup("Counts")
	assert.False(t, ok, "non-struct types are not extracted")

	_, ok = pkg.Lookup("Option")
	assert.False(t, ok, "aliases are not extracted")
}

func TestLoader_AccountFields(t *testing.T) {
	pkg := loadModels(t)

	account, ok := pkg.Lookup("Account")
	require.True(t, ok)

	assert.Equal(t, []string{"Account is a row of the accounts table."}, account.Doc)
	assert.Empty(t, account.BuildConstraint)
	assert.Contains(t, account.Imports, plan.Import{Path: "github.com/google/uuid"})
	assert.Contains(t, account.Imports, plan.Import{Path: "rowmap-generator/rowmap"})
	pos := pkg.Position(account.Pos)
	assert.True(t, pos.IsValid())

	require.Len(t, account.Fields, 6)

	id := account.Fields[0]
	assert.Equal(t, "ID", id.Name)
	assert.Equal(t, "uuid.UUID", id.Type)
	require.NotNil(t, id.TryFrom)
	assert.Equal(t, "string", *id.TryFrom)
	require.NotNil(t, id.Rename)
	assert.Equal(t, "id", *id.Rename)
	assert.Nil(t, id.From)

	owner := account.Fields[1]
	require.NotNil(t, owner.From)
	assert.Equal(t, "int64", *owner.From)

	email := account.Fields[2]
	assert.Equal(t, []string{"Email is unique."}, email.Doc)
	assert.Equal(t, `rowmap:"rename=email_address" json:"email"`, email.Tag)

	assert.Equal(t, "Option[string]", account.Fields[3].Type)

	assert.Equal(t, "Lat", account.Fields[4].Name)
	assert.Equal(t, "Lng", account.Fields[5].Name)
	assert.Equal(t, "float64", account.Fields[5].Type)
}

func TestLoader_Generic(t *testing.T) {
	pair, ok := loadModels(t).Lookup("Pair")
	require.True(t, ok)

	assert.Equal(t, []plan.TypeParam{
		{Name: "K", Constraint: "comparable"},
		{Name: "V", Constraint: "any"},
	}, pair.TypeParams)
	assert.True(t, pair.Exported())
}

func TestLoader_GroupedAndUnexported(t *testing.T) {
	ratio, ok := loadModels(t).Lookup("ratio")
	require.True(t, ok)

	assert.False(t, ratio.Exported())
	require.Len(t, ratio.Fields, 2)
	assert.Equal(t, "Num", ratio.Fields[0].Name)
	assert.Equal(t, "Den", ratio.Fields[1].Name)
}

func TestLoader_SkipsEmbedded(t *testing.T) {
	embeds, ok := loadModels(t).Lookup("Embeds")
	require.True(t, ok)

	require.Len(t, embeds.Fields, 1)
	assert.Equal(t, "Extra", embeds.Fields[0].Name)
}

func TestLoader_SkipsBlank(t *testing.T) {
	padded, ok := loadModels(t).Lookup("Padded")
	require.True(t, ok)

	require.Len(t, padded.Fields, 2)
	assert.Equal(t, "Code", padded.Fields[0].Name)
	assert.Equal(t, "Flag", padded.Fields[1].Name)

	_, err := plan.Compile(padded)
	assert.NoError(t, err)
}

func TestLoader_BuildConstraint(t *testing.T) {
	matrix, ok := loadModels(t).Lookup("Matrix")
	require.True(t, ok)

	assert.Equal(t, "go1.21", matrix.BuildConstraint)
	require.Len(t, matrix.Fields, 1)
	assert.Equal(t, "map[string]int", *matrix.Fields[0].From)
	assert.Equal(t, "cells", *matrix.Fields[0].Rename)
}

func TestLoader_InvalidTag(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), "./testdata/badtag")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTag)
	assert.Contains(t, err.Error(), "Broken.A")
}

func TestLoader_MissingPackage(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), "./testdata/does-not-exist")
	require.Error(t, err)
}

func TestLoader_GeneratedFiles(t *testing.T) {
	pkg := loadModels(t)

	_, ok := pkg.Lookup("Generated")
	assert.False(t, ok, "structs of generated files are not extracted")
	assert.NotNil(t, pkg.Types.Scope().Lookup("Generated"))
}

func TestErrorFile(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/src/models/a_rowmap.go", errorFile(packages.Error{Pos: "/src/models/a_rowmap.go:12:7"}))
	assert.Equal(t, "-", errorFile(packages.Error{Pos: "-"}))
}
