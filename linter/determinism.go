// Package linter holds static checks for state machine code: anything that
// can make two validators replaying the same block disagree.
package linter

import (
	"flag"
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

var AnalyzerPlugin = map[string]*analysis.Analyzer{
	"determinism": Analyzer,
}

var Analyzer = &analysis.Analyzer{
	Name:             "determinism",
	Doc:              "check state machine code for map ranges, wall clock reads and store iterators closed without defer",
	Run:              run,
	URL:              "",
	Flags:            flag.FlagSet{Usage: nil},
	RunDespiteErrors: false,
	Requires:         []*analysis.Analyzer{inspect.Analyzer},
	ResultType:       nil,
	FactTypes:        nil,
}

// New is the golangci-lint module plugin entry point.
func New(conf any) ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{Analyzer}, nil
}

func run(pass *analysis.Pass) (interface{}, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.RangeStmt)(nil),
		(*ast.CallExpr)(nil),
	}
	insp.WithStack(nodeFilter, func(n ast.Node, push bool, stack []ast.Node) bool {
		if !push {
			return true
		}
		switch node := n.(type) {
		case *ast.RangeStmt:
			checkMapRange(pass, node)
		case *ast.CallExpr:
			checkWallClock(pass, node)
			checkIteratorClose(pass, node, stack)
		}
		return true
	})
	return nil, nil //nolint:nilnil
}

func checkMapRange(pass *analysis.Pass, rangeStmt *ast.RangeStmt) {
	exprType := pass.TypesInfo.TypeOf(rangeStmt.X)
	if exprType == nil {
		return
	}
	if _, ok := exprType.Underlying().(*types.Map); ok {
		pass.Reportf(rangeStmt.Pos(), "range over map detected, which can be non-deterministic")
	}
}

func checkWallClock(pass *analysis.Pass, call *ast.CallExpr) {
	fn, ok := calledFunc(pass, call).(*types.Func)
	if !ok || fn.Pkg() == nil || fn.Pkg().Path() != "time" {
		return
	}
	switch fn.Name() {
	case "Now", "Since", "Until":
		pass.Reportf(call.Pos(), "time.%s reads the wall clock; use the block header time instead", fn.Name())
	}
}

// checkIteratorClose flags Close calls on store iterators that are not
// deferred; an early return in the loop body would leak the iterator.
func checkIteratorClose(pass *analysis.Pass, call *ast.CallExpr, stack []ast.Node) {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok || sel.Sel.Name != "Close" {
		return
	}
	if !isIterator(pass.TypesInfo.TypeOf(sel.X)) {
		return
	}
	if len(stack) >= 2 {
		if _, deferred := stack[len(stack)-2].(*ast.DeferStmt); deferred {
			return
		}
	}
	pass.Reportf(call.Pos(), "iterator Close should be deferred")
}

// isIterator matches anything shaped like a KV store iterator.
func isIterator(t types.Type) bool {
	if t == nil {
		return false
	}
	mset := types.NewMethodSet(t)
	if _, isPtr := t.(*types.Pointer); !isPtr {
		if _, isIface := t.Underlying().(*types.Interface); !isIface {
			mset = types.NewMethodSet(types.NewPointer(t))
		}
	}
	for _, name := range []string{"Valid", "Next", "Close"} {
		if mset.Lookup(nil, name) == nil {
			return false
		}
	}
	return true
}

func calledFunc(pass *analysis.Pass, call *ast.CallExpr) types.Object {
	switch fun := call.Fun.(type) {
	case *ast.Ident:
		return pass.TypesInfo.Uses[fun]
	case *ast.SelectorExpr:
		return pass.TypesInfo.Uses[fun.Sel]
	}
	return nil
}
