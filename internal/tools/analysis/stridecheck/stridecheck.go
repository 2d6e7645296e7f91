// Package stridecheck defines an Analyzer that reports calls to
// NextCharacter with a constant stride smaller than 1, which panic
// at runtime.
package stridecheck

import (
	"go/ast"
	"go/constant"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

const doc = `report constant strides smaller than 1

Cursor.NextCharacter and every other method with the signature
NextCharacter(bool, int) rune panics if the stride is smaller than 1.
This analyzer reports such calls if the stride is a constant.`

// Analyzer reports NextCharacter calls with an invalid constant stride.
var Analyzer = &analysis.Analyzer{
	Name:     "stridecheck",
	Doc:      doc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.CallExpr)(nil),
	}
	insp.Preorder(nodeFilter, func(n ast.Node) {
		call := n.(*ast.CallExpr)
		sel, ok := call.Fun.(*ast.SelectorExpr)
		if !ok || sel.Sel.Name != "NextCharacter" || len(call.Args) != 2 {
			return
		}
		fn, ok := pass.TypesInfo.ObjectOf(sel.Sel).(*types.Func)
		if !ok || !isNextCharacter(fn) {
			return
		}

		stride := call.Args[1]
		tv, ok := pass.TypesInfo.Types[stride]
		if !ok || tv.Value == nil {
			return // not a constant
		}
		val, exact := constant.Int64Val(constant.ToInt(tv.Value))
		if !exact || val >= 1 {
			return
		}
		pass.Reportf(stride.Pos(), "stride %d passed to NextCharacter is smaller than 1", val)
	})
	return nil, nil
}

// isNextCharacter reports whether fn is a method with the signature
// NextCharacter(bool, int) rune.
func isNextCharacter(fn *types.Func) bool {
	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Recv() == nil {
		return false
	}
	params, results := sig.Params(), sig.Results()
	return params.Len() == 2 &&
		types.Identical(params.At(0).Type(), types.Typ[types.Bool]) &&
		types.Identical(params.At(1).Type(), types.Typ[types.Int]) &&
		results.Len() == 1 &&
		types.Identical(results.At(0).Type(), types.Universe.Lookup("rune").Type())
}
