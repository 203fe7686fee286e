package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"text/template"

	"github.com/pkg/errors"
	"github.com/scylladb/go-set/strset"
	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/imports"
)

var (
	typePattern = regexp.MustCompile(`^Tup([234])(i|l|f|d|bigd|obj|str)$`)
	dimensions  = []string{"x", "y", "z", "w"}

	// Component names a generated type may use.
	componentNames = strset.New("x", "y", "z", "w", "r", "g", "b", "a")

	funcMap = template.FuncMap{
		"join":   strings.Join,
		"lower":  strings.ToLower,
		"names":  names,
		"calls":  calls,
		"repeat": repeat,
	}
)

// Kind describes one scalar kind of tuple component.
type Kind struct {
	Scalar   string
	Zero     string
	Compare  string // "op", "method" or "deep"
	Nullable bool
	Import   string
}

var kinds = map[string]Kind{
	"i":    {Scalar: "int32", Zero: "0", Compare: "op"},
	"l":    {Scalar: "int64", Zero: "0", Compare: "op"},
	"f":    {Scalar: "float32", Zero: "0", Compare: "op"},
	"d":    {Scalar: "float64", Zero: "0", Compare: "op"},
	"bigd": {Scalar: "decimal.Decimal", Zero: "decimal.Zero", Compare: "method", Import: "github.com/shopspring/decimal"},
	"obj":  {Scalar: "any", Zero: "struct{}{}", Compare: "deep", Nullable: true},
	"str":  {Scalar: "string", Zero: `""`, Compare: "op"},
}

type GeneratorOptions struct {
	Args         []string
	Components   string
	IntScalar    string
	Output       string
	PoolOnly     bool
	Scalar       string
	Source       string
	SourceImport string
	Type         string
}

type Generator struct {
	options GeneratorOptions
	pkgName string
	kind    Kind
	names   []string
}

type Component struct {
	Name  string
	Upper string
}

func NewGenerator(options GeneratorOptions) *Generator {
	return &Generator{options: options}
}

// Run writes the generated files and returns their contents.
func (g *Generator) Run() ([][]byte, error) {
	if g.options.Output == "" {
		g.options.Output = "."
	}

	if err := g.resolve(); err != nil {
		return nil, err
	}

	if err := g.loadPackage(); err != nil {
		return nil, err
	}

	var files [][]byte

	lower := strings.ToLower(g.options.Type)

	if !g.options.PoolOnly {
		src, err := g.render(tupleTmpl, lower+".go")
		if err != nil {
			return nil, err
		}
		files = append(files, src)
	}

	src, err := g.render(poolTmpl, lower+"_pool.go")
	if err != nil {
		return nil, err
	}
	files = append(files, src)

	return files, nil
}

// resolve derives the scalar kind and components from the options.
func (g *Generator) resolve() error {
	if g.options.PoolOnly {
		if g.options.Scalar == "" || g.options.Components == "" || g.options.Source == "" {
			return errors.New("-pool-only requires -scalar, -components and -source")
		}

		g.kind = Kind{Scalar: g.options.Scalar, Zero: "0", Compare: "op"}
		g.names = strings.Split(g.options.Components, ",")

		return validateComponents(g.names)
	}

	if g.options.IntScalar != "" {
		return errors.New("-int-scalar requires -pool-only")
	}

	m := typePattern.FindStringSubmatch(g.options.Type)
	if m == nil {
		supported := strset.New()
		for suffix := range kinds {
			supported.Add(suffix)
		}

		list := supported.List()
		sort.Strings(list)

		return errors.Errorf("%q is not a tuple type; want Tup<2|3|4><%s>", g.options.Type, strings.Join(list, "|"))
	}

	g.kind = kinds[m[2]]
	g.names = dimensions[:int(m[1][0]-'0')]

	return nil
}

func validateComponents(names []string) error {
	seen := strset.New()

	for _, name := range names {
		if !componentNames.Has(name) {
			return errors.Errorf("unsupported component %q", name)
		}
		seen.Add(name)
	}

	if seen.Size() != len(names) {
		return errors.Errorf("duplicate components in %q", strings.Join(names, ","))
	}

	return nil
}

func (g *Generator) loadPackage() error {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes,
	}

	pkgs, err := packages.Load(cfg, g.options.Output)
	if err != nil {
		return err
	}

	if len(pkgs) != 1 {
		return errors.Errorf("%d packages found", len(pkgs))
	}

	g.pkgName = pkgs[0].Name

	if g.options.PoolOnly && pkgs[0].Types != nil {
		if pkgs[0].Types.Scope().Lookup(g.options.Type) == nil {
			return errors.Errorf("type %s not found in package %s", g.options.Type, g.pkgName)
		}
	}

	return nil
}

func (g *Generator) data() any {
	components := make([]Component, 0, len(g.names))
	for _, name := range g.names {
		components = append(components, Component{Name: name, Upper: strings.ToUpper(name)})
	}

	source := g.options.Source
	if source == "" {
		source = g.options.Type + "R"
	}

	return struct {
		Args         []string
		Components   []Component
		IntScalar    string
		Kind         Kind
		PackageName  string
		Source       string
		SourceImport string
		Type         string
	}{
		Args:         g.options.Args,
		Components:   components,
		IntScalar:    g.options.IntScalar,
		Kind:         g.kind,
		PackageName:  g.pkgName,
		Source:       source,
		SourceImport: g.options.SourceImport,
		Type:         g.options.Type,
	}
}

func (g *Generator) render(tmpl *template.Template, name string) ([]byte, error) {
	var buf bytes.Buffer

	if err := tmpl.Execute(&buf, g.data()); err != nil {
		return buf.Bytes(), err
	}

	output := filepath.Join(g.options.Output, name)

	src, err := imports.Process(output, buf.Bytes(), nil)
	if err != nil {
		return buf.Bytes(), errors.Wrap(err, fmt.Sprintf("formatting %s", name))
	}

	if err := os.WriteFile(output, src, 0o644); err != nil {
		return src, err
	}

	return src, nil
}
