package source

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path"
	"runtime"
	"strconv"
	"strings"
)

// Unknown is the expression text reported when the call site cannot be read.
const Unknown = "?"

// maxStackDepth bounds the frames inspected while looking for the entry point.
const maxStackDepth = 64

// Args returns the source text of the first n arguments passed to the function
// pkgPath.entry by its caller.
//
// The entry frame is located on the current call stack, so Args must be called
// (directly or indirectly) from inside entry. Every position that cannot be
// resolved is reported as Unknown, as is every position when more than one
// call to entry shares the caller's line.
func Args(pkgPath, entry string, n int) []string {
	exprs := make([]string, n)
	for i := range exprs {
		exprs[i] = Unknown
	}

	file, line, ok := callSite(pkgPath + "." + entry)
	if !ok {
		return exprs
	}

	src, err := os.ReadFile(file)
	if err != nil {
		return exprs
	}

	for i, text := range callArgs(src, line, pkgPath, entry) {
		if i >= n {
			break
		}

		exprs[i] = text
	}

	return exprs
}

// callSite returns the file and line of the frame that called target.
func callSite(target string) (string, int, bool) {
	pcs := make([]uintptr, maxStackDepth)
	n := runtime.Callers(1, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	found := false

	for {
		frame, more := frames.Next()

		if found {
			return frame.File, frame.Line, frame.File != ""
		}

		if funcName(frame.Function) == target {
			found = true
		}

		if !more {
			return "", 0, false
		}
	}
}

// funcName strips the type-argument suffix the runtime reports for generic
// functions ("pkg.Equal[...]").
func funcName(function string) string {
	if i := strings.IndexByte(function, '['); i >= 0 {
		return function[:i]
	}

	return function
}

// callArgs parses src and returns the argument texts of the call to
// pkgPath.entry spanning line. It returns nil unless exactly one such call
// covers the line.
func callArgs(src []byte, line int, pkgPath, entry string) []string {
	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, "", src, parser.SkipObjectResolution)
	if err != nil {
		return nil
	}

	names, bare := qualifiers(file, pkgPath)

	var matches []*ast.CallExpr

	ast.Inspect(file, func(node ast.Node) bool {
		call, ok := node.(*ast.CallExpr)
		if !ok || !callsEntry(call.Fun, entry, names, bare) {
			return true
		}

		if line < fset.Position(call.Pos()).Line || line > fset.Position(call.End()).Line {
			return true
		}

		matches = append(matches, call)

		return true
	})

	if len(matches) != 1 {
		return nil
	}

	match := matches[0]

	texts := make([]string, len(match.Args))
	for i, arg := range match.Args {
		texts[i] = exprText(fset, src, unwrapThunk(arg))
	}

	return texts
}

// qualifiers returns the identifiers file uses to qualify pkgPath and whether
// unqualified calls resolve to it. A file that never imports pkgPath can only
// reach the entry point unqualified, from inside the package itself.
func qualifiers(file *ast.File, pkgPath string) (map[string]bool, bool) {
	names := make(map[string]bool)
	imported, dot := false, false

	for _, spec := range file.Imports {
		importPath, err := strconv.Unquote(spec.Path.Value)
		if err != nil || importPath != pkgPath {
			continue
		}

		imported = true

		switch {
		case spec.Name == nil:
			names[path.Base(pkgPath)] = true
		case spec.Name.Name == ".":
			dot = true
		case spec.Name.Name != "_":
			names[spec.Name.Name] = true
		}
	}

	return names, dot || !imported
}

func callsEntry(fun ast.Expr, entry string, names map[string]bool, bare bool) bool {
	switch fn := fun.(type) {
	case *ast.Ident:
		return bare && fn.Name == entry
	case *ast.SelectorExpr:
		pkg, ok := fn.X.(*ast.Ident)
		return ok && names[pkg.Name] && fn.Sel.Name == entry
	case *ast.IndexExpr:
		return callsEntry(fn.X, entry, names, bare)
	case *ast.IndexListExpr:
		return callsEntry(fn.X, entry, names, bare)
	case *ast.ParenExpr:
		return callsEntry(fn.X, entry, names, bare)
	default:
		return false
	}
}

// unwrapThunk reduces `func() T { return X }` to X.
func unwrapThunk(expr ast.Expr) ast.Expr {
	lit, ok := expr.(*ast.FuncLit)
	if !ok || lit.Body == nil || len(lit.Body.List) != 1 {
		return expr
	}

	ret, ok := lit.Body.List[0].(*ast.ReturnStmt)
	if !ok || len(ret.Results) != 1 {
		return expr
	}

	return ret.Results[0]
}

func exprText(fset *token.FileSet, src []byte, expr ast.Expr) string {
	start, end := fset.Position(expr.Pos()).Offset, fset.Position(expr.End()).Offset
	if start < 0 || end > len(src) || start >= end {
		return Unknown
	}

	return string(src[start:end])
}
