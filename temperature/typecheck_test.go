package temperature

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"strings"
	"testing"
)

// typeCheck type-checks the package sources together with a file holding
// body and returns the errors reported for that file.
func typeCheck(t *testing.T, body string) []error {
	t.Helper()
	fset := token.NewFileSet()

	entries, err := os.ReadDir(".")
	if err != nil {
		t.Fatal(err)
	}
	var files []*ast.File
	for _, e := range entries {
		name := e.Name()
		if !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, name, nil, 0)
		if err != nil {
			t.Fatal(err)
		}
		files = append(files, f)
	}
	f, err := parser.ParseFile(fset, "snippet.go", "package temperature\n\nfunc _() {\n"+body+"\n}\n", 0)
	if err != nil {
		t.Fatalf("%s: %v", body, err)
	}
	files = append(files, f)

	var errs []error
	conf := types.Config{
		Importer: importer.ForCompiler(fset, "source", nil),
		Error: func(err error) {
			if te, ok := err.(types.Error); ok && te.Fset.Position(te.Pos).Filename != "snippet.go" {
				t.Errorf("package source: %v", err)
				return
			}
			errs = append(errs, err)
		},
	}
	conf.Check("temperature", fset, files, nil)
	return errs
}

func TestScaleIsolationAccepted(t *testing.T) {
	var tests = []string{
		`_ = Convert[Celsius](K(100))`,
		`_ = C(1).Add(C(2)).Equal(New[Celsius](3))`,
		`_ = F(1).Less(F(2))`,
		`var q Quantity[Kelvin] = K(1); _ = q`,
	}
	for _, tt := range tests {
		if errs := typeCheck(t, tt); len(errs) > 0 {
			t.Errorf("%s: Wanted no errors, got %v", tt, errs)
		}
	}
}

func TestScaleIsolationRejected(t *testing.T) {
	var tests = []string{
		`_ = Quantity[Celsius](K(100))`,
		`_ = C(1).Add(K(1))`,
		`_ = C(1).Sub(F(1))`,
		`_ = C(1).Equal(F(1))`,
		`_ = K(1).Less(C(1))`,
		`_ = C(1) == C(1)`,
		`var q Quantity[Kelvin] = C(1); _ = q`,
		`_ = New[Celsius](1).Compare(New[Fahrenheit](1))`,
	}
	for _, tt := range tests {
		if errs := typeCheck(t, tt); len(errs) == 0 {
			t.Errorf("%s: Wanted a type error, got none", tt)
		}
	}
}
