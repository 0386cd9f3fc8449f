package check

import (
	"go/token"
	"go/types"

	"rowmap-generator/internal/plan"
)

var scanner = newScannerInterface()

// newScannerInterface builds interface{ Scan(src any) error }, the method set
// of database/sql.Scanner.
func newScannerInterface() *types.Interface {
	params := types.NewTuple(types.NewVar(token.NoPos, nil, "src", types.NewInterfaceType(nil, nil)))
	results := types.NewTuple(types.NewVar(token.NoPos, nil, "", types.Universe.Lookup("error").Type()))
	scan := types.NewFunc(token.NoPos, nil, "Scan", types.NewSignatureType(nil, nil, nil, params, results, false))

	return types.NewInterfaceType([]*types.Func{scan}, nil).Complete()
}

func implementsScanner(t types.Type) bool {
	return types.Implements(t, scanner)
}

// decodable reports whether a column value can be decoded into t by the
// rowmap runtime without a registered decoder.
func decodable(t types.Type, extras []types.Type) bool {
	for _, e := range extras {
		if types.Identical(t, e) {
			return true
		}
	}

	t = types.Unalias(t)

	switch x := t.(type) {
	case *types.TypeParam:
		return true
	case *types.Pointer:
		return implementsScanner(x) || decodable(x.Elem(), extras)
	case *types.Named:
		if arg, ok := optionArg(x); ok {
			return decodable(arg, extras)
		}

		if isNamed(x, "time", "Time") {
			return true
		}
	}

	if implementsScanner(types.NewPointer(t)) {
		return true
	}

	switch u := t.Underlying().(type) {
	case *types.Basic:
		return u.Info()&(types.IsBoolean|types.IsInteger|types.IsFloat|types.IsString) != 0 &&
			u.Info()&types.IsUntyped == 0 &&
			u.Kind() != types.Uintptr
	case *types.Slice:
		b, ok := u.Elem().Underlying().(*types.Basic)
		return ok && b.Kind() == types.Byte
	case *types.Interface:
		return u.Empty()
	default:
		return false
	}
}

// optionArg returns T for rowmap.Option[T].
func optionArg(n *types.Named) (types.Type, bool) {
	if !isNamed(n, plan.RuntimePkgPath, plan.OptionName) || n.TypeArgs().Len() != 1 {
		return nil, false
	}

	return n.TypeArgs().At(0), true
}

func isNamed(n *types.Named, pkgPath, name string) bool {
	obj := n.Obj()
	return obj.Pkg() != nil && obj.Pkg().Path() == pkgPath && obj.Name() == name
}

// hasDefaultMethod reports whether t or *t has a method Default() t.
func hasDefaultMethod(t types.Type) bool {
	obj, _, _ := types.LookupFieldOrMethod(t, true, nil, "Default")

	fn, ok := obj.(*types.Func)
	if !ok {
		return false
	}

	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Params().Len() != 0 || sig.Results().Len() != 1 {
		return false
	}

	return types.Identical(sig.Results().At(0).Type(), t)
}
