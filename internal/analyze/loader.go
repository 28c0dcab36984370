package analyze

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"

	"golang.org/x/tools/go/packages"

	"variants-generator/internal/diagnostic"
	"variants-generator/internal/schema"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Scanner loads Go packages and extracts union schemas from annotated
// declarations.
type Scanner struct{}

// NewScanner creates a new Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// LoadPackages loads the specified packages and scans them for unions.
// Patterns are standard Go package patterns (e.g., "./...", "example/hello").
func (s *Scanner) LoadPackages(patterns ...string) ([]schema.UnionSchema, diagnostic.Diagnostics, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, diagnostic.Diagnostics{}, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, diagnostic.Diagnostics{}, fmt.Errorf("package errors: %v", errs)
	}

	var (
		unions []schema.UnionSchema
		diags  diagnostic.Diagnostics
	)

	for _, pkg := range pkgs {
		found, pkgDiags := s.scanPackage(pkg)
		unions = append(unions, found...)
		diags.Merge(pkgDiags)
	}

	return unions, diags, nil
}

// scanPackage extracts the union schemas declared in one loaded package.
func (s *Scanner) scanPackage(pkg *packages.Package) ([]schema.UnionSchema, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	roots := s.findRoots(pkg, &diags)
	if len(roots) == 0 {
		return nil, diags
	}

	dir := ""
	if len(pkg.GoFiles) > 0 {
		dir = filepath.Dir(pkg.GoFiles[0])
	}

	var unions []schema.UnionSchema

	for _, root := range roots {
		u := schema.UnionSchema{
			Name:       root.name,
			Package:    pkg.Name,
			Dir:        dir,
			Directives: root.directives,
			Pos:        pkg.Fset.Position(root.pos),
		}

		u.Variants = s.collectVariants(pkg, root.iface, root.name)

		unions = append(unions, u)
	}

	return unions, diags
}

// root is an annotated interface declaration acting as a schema root.
type root struct {
	name       string
	iface      *types.Interface
	directives []schema.RawDirective
	pos        token.Pos
}

// findRoots walks the package syntax for interface types whose doc comment
// carries the generate directive.
func (s *Scanner) findRoots(pkg *packages.Package, diags *diagnostic.Diagnostics) []*root {
	var roots []*root

	forEachTypeSpec(pkg, func(ts *ast.TypeSpec, doc *ast.CommentGroup) {
		directives, generate := parseDirectives(doc, pkg.Fset)
		if !generate {
			return
		}

		obj := pkg.Types.Scope().Lookup(ts.Name.Name)
		if obj == nil {
			return
		}

		iface, ok := obj.Type().Underlying().(*types.Interface)
		if !ok {
			diags.AddWarning(diagnostic.CodeInvalidVariantShape,
				"generate directive on a non-interface type was ignored",
				ts.Name.Name, "", pkg.Fset.Position(ts.Pos()))

			return
		}

		roots = append(roots, &root{
			name:       ts.Name.Name,
			iface:      iface,
			directives: directives,
			pos:        ts.Pos(),
		})
	})

	return roots
}

// collectVariants gathers the package-level named types implementing the
// union interface, in declaration order.
func (s *Scanner) collectVariants(pkg *packages.Package, iface *types.Interface, unionName string) []schema.VariantSpec {
	var variants []schema.VariantSpec

	forEachTypeSpec(pkg, func(ts *ast.TypeSpec, doc *ast.CommentGroup) {
		if ts.Name.Name == unionName {
			return
		}

		obj := pkg.Types.Scope().Lookup(ts.Name.Name)
		if obj == nil {
			return
		}

		t := obj.Type()
		if _, isIface := t.Underlying().(*types.Interface); isIface {
			return
		}

		// Dispatch is a value type switch, so only value implementations count.
		if !types.Implements(t, iface) {
			return
		}

		variants = append(variants, s.variantSpec(pkg, ts, doc, t))
	})

	return variants
}

// variantSpec builds the VariantSpec for one implementing type.
func (s *Scanner) variantSpec(pkg *packages.Package, ts *ast.TypeSpec, doc *ast.CommentGroup, t types.Type) schema.VariantSpec {
	v := schema.VariantSpec{
		Name: ts.Name.Name,
		Pos:  pkg.Fset.Position(ts.Pos()),
	}

	if dirs, _ := parseDirectives(doc, pkg.Fset); len(dirs) > 0 {
		for _, d := range dirs {
			if d.Name == schema.DirectiveField && len(d.Args) == 1 {
				v.FieldOverride = d.Args[0]
			}
		}
	}

	st, isStruct := t.Underlying().(*types.Struct)
	if !isStruct {
		// A named non-struct type carries its own value as the key.
		v.SelfKeyed = true
		v.KeyType = ts.Name.Name

		return v
	}

	v.Arity = st.NumFields()
	if v.Arity == 1 {
		field := st.Field(0)
		v.KeyField = field.Name()
		v.KeyType, v.KeyImports = renderType(field.Type(), pkg.Types)
	}

	return v
}

// renderType renders a type expression relative to the output package and
// collects the import paths the expression needs.
func renderType(t types.Type, self *types.Package) (string, []string) {
	var imports []string

	seen := map[string]bool{}

	expr := types.TypeString(t, func(p *types.Package) string {
		if p == self {
			return ""
		}

		if !seen[p.Path()] {
			seen[p.Path()] = true
			imports = append(imports, p.Path())
		}

		return p.Name()
	})

	return expr, imports
}

// forEachTypeSpec visits every package-level type spec in file and
// declaration order, passing the spec together with its doc comment (which
// Go attaches to the enclosing GenDecl for single-spec declarations).
func forEachTypeSpec(pkg *packages.Package, fn func(*ast.TypeSpec, *ast.CommentGroup)) {
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}

			for _, spec := range gd.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}

				doc := ts.Doc
				if doc == nil {
					doc = gd.Doc
				}

				fn(ts, doc)
			}
		}
	}
}
