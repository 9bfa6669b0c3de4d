package model

// DeclarationKind selects which file-scope entities a provider returns.
type DeclarationKind string

const (
	// KindVariable represents file-scope variable declarations.
	KindVariable DeclarationKind = "variable"
	// KindFunction represents function definitions.
	KindFunction DeclarationKind = "function"
	// KindTypedef represents typedef names.
	KindTypedef DeclarationKind = "typedef"
)

// DeclarationKinds lists every kind in the order they are requested.
var DeclarationKinds = []DeclarationKind{KindVariable, KindFunction, KindTypedef}

// Declaration is a named file-scope entity reported by a symbol table.
type Declaration struct {
	Name string
	Line int
	Kind DeclarationKind
}

// FilterDeclarations returns the declarations of the given kind, keeping order.
func FilterDeclarations(decls []Declaration, kind DeclarationKind) []Declaration {
	var filtered []Declaration

	for _, decl := range decls {
		if decl.Kind == kind {
			filtered = append(filtered, decl)
		}
	}

	return filtered
}

// FunctionExtent is the effective length of a function body.
type FunctionExtent struct {
	Name      string
	StartLine int
	Length    int
}
