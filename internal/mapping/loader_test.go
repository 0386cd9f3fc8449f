package mapping

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	yaml := `
version: "1"
packages: ["./models", "./billing"]
decodable: decimal.Decimal
output: gen
targets:
  - type: Account
    fields:
      - name: ID
        try_from: string
      - name: Email
        rename: email_address
  - type: Flags
    package: example.com/models
    wrap_optional: true
    wrapped_name: MaybeFlags
`

	mf, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, mf)

	assert.Equal(t, "1", mf.Version)
	assert.Equal(t, StringOrArray{"./models", "./billing"}, mf.Packages)
	assert.Equal(t, StringOrArray{"decimal.Decimal"}, mf.Decodable)
	assert.Equal(t, "gen", mf.Output)
	require.Len(t, mf.Targets, 2)

	account := mf.Targets[0]
	assert.Equal(t, "Account", account.Type)
	assert.False(t, account.WrapOptional)
	require.Len(t, account.Fields, 2)
	require.NotNil(t, account.Fields[0].TryFrom)
	assert.Equal(t, "string", *account.Fields[0].TryFrom)
	assert.Nil(t, account.Fields[0].From)
	assert.Nil(t, account.Fields[0].Rename)
	require.NotNil(t, account.Fields[1].Rename)
	assert.Equal(t, "email_address", *account.Fields[1].Rename)

	flags := mf.Targets[1]
	assert.Equal(t, "example.com/models", flags.Package)
	assert.True(t, flags.WrapOptional)
	assert.Equal(t, "MaybeFlags", flags.WrappedName)
}

func TestParse_Defaults(t *testing.T) {
	mf, err := Parse([]byte("packages: ./models\n"))
	require.NoError(t, err)

	assert.Equal(t, CurrentVersion, mf.Version)
	assert.Equal(t, StringOrArray{"./models"}, mf.Packages)
	assert.Empty(t, mf.Targets)
}

func TestParse_Empty(t *testing.T) {
	mf, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, CurrentVersion, mf.Version)
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := Parse([]byte("packages: ./models\ntargets:\n  - type: A\n    wrap_optionl: true\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wrap_optionl")
}

func TestParse_InvalidPackages(t *testing.T) {
	_, err := Parse([]byte("packages:\n  a: b\n"))
	require.Error(t, err)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteFile_LoadFile(t *testing.T) {
	rename := "email_address"
	mf := &MappingFile{
		Version:  CurrentVersion,
		Packages: StringOrArray{"./models"},
		Targets: []Target{{
			Type:   "Account",
			Fields: []FieldOverride{{Name: "Email", Rename: &rename}},
		}},
	}

	path := filepath.Join(t.TempDir(), "rowmap.yaml")
	require.NoError(t, WriteFile(mf, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "packages: ./models")

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, mf, loaded)
}
