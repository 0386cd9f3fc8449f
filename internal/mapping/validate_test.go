package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rowmap-generator/internal/analyze"
	"rowmap-generator/internal/diagnostic"
	"rowmap-generator/internal/plan"
)

func packages() []*analyze.Package {
	return []*analyze.Package{{
		Name: "models",
		Path: "example.com/models",
		Structs: []plan.RawStruct{
			account(),
			{Name: "Flags", Fields: []plan.RawField{{Name: "A", Type: "int32"}}},
			{Name: "OptionalFlags", Fields: []plan.RawField{{Name: "A", Type: "Option[int32]"}}},
		},
	}}
}

func TestValidate_Valid(t *testing.T) {
	mf := &MappingFile{
		Version:  CurrentVersion,
		Packages: StringOrArray{"./models"},
		Targets: []Target{
			{Type: "Account", Fields: []FieldOverride{{Name: "Email", Rename: ptr("email_address")}}},
			{Type: "Flags", WrapOptional: true, WrappedName: "MaybeFlags"},
		},
	}

	res := Validate(mf, packages())
	assert.True(t, res.IsValid(), "%v", res.Error())
}

func TestValidate_Nil(t *testing.T) {
	res := Validate(nil, nil)
	assert.True(t, res.HasErrors())
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name     string
		mf       MappingFile
		code     string
		suggests []string
	}{
		{
			name: "version",
			mf:   MappingFile{Version: "2", Packages: StringOrArray{"./models"}},
			code: diagnostic.CodeUnsupportedVersion,
		},
		{
			name: "no packages",
			mf:   MappingFile{Version: CurrentVersion},
			code: diagnostic.CodeMissingPackages,
		},
		{
			name: "unknown target",
			mf: MappingFile{Version: CurrentVersion, Packages: StringOrArray{"."}, Targets: []Target{
				{Type: "Acount"},
			}},
			code:     diagnostic.CodeUnknownTarget,
			suggests: []string{"Account"},
		},
		{
			name: "unknown field",
			mf: MappingFile{Version: CurrentVersion, Packages: StringOrArray{"."}, Targets: []Target{
				{Type: "Account", Fields: []FieldOverride{{Name: "Emial"}}},
			}},
			code:     diagnostic.CodeUnknownField,
			suggests: []string{"Email"},
		},
		{
			name: "duplicate target",
			mf: MappingFile{Version: CurrentVersion, Packages: StringOrArray{"."}, Targets: []Target{
				{Type: "Flags"}, {Type: "Flags"},
			}},
			code: diagnostic.CodeDuplicateTarget,
		},
		{
			name: "conflicting directives",
			mf: MappingFile{Version: CurrentVersion, Packages: StringOrArray{"."}, Targets: []Target{
				{Type: "Account", Fields: []FieldOverride{{Name: "ID", From: ptr("string")}}},
			}},
			code: diagnostic.CodeInvalidDirective,
		},
		{
			name: "unparsable directive",
			mf: MappingFile{Version: CurrentVersion, Packages: StringOrArray{"."}, Targets: []Target{
				{Type: "Account", Fields: []FieldOverride{{Name: "Email", From: ptr("[]")}}},
			}},
			code: diagnostic.CodeInvalidDirective,
		},
		{
			name: "wrapped name taken",
			mf: MappingFile{Version: CurrentVersion, Packages: StringOrArray{"."}, Targets: []Target{
				{Type: "Flags", WrapOptional: true},
			}},
			code: diagnostic.CodeNameCollision,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(&tt.mf, packages())
			require.Len(t, res.Errors, 1, "%v", res.Error())
			assert.Equal(t, tt.code, res.Errors[0].Code)

			if tt.suggests != nil {
				assert.Equal(t, tt.suggests, res.Errors[0].Suggestions)
			}
		})
	}
}

func TestDirectiveDiagnostic(t *testing.T) {
	_, err := plan.ExtractStruct(plan.RawStruct{
		Name:   "Account",
		Fields: []plan.RawField{{Name: "ID", Type: "uuid.UUID", From: ptr("string"), TryFrom: ptr("string")}},
	})
	require.Error(t, err)

	d := DirectiveDiagnostic(err, "Account")
	assert.Equal(t, diagnostic.CodeInvalidDirective, d.Code)
	assert.Equal(t, "ID", d.Field)
	assert.Equal(t, "Account.ID: [invalid_directive] cannot specify both `from` and `try_from`", d.String())
}
