package main

import (
	"strings"
	"text/template"
)

// names renders "x, y, z".
func names(components []Component) string {
	out := make([]string, 0, len(components))
	for _, c := range components {
		out = append(out, c.Name)
	}
	return strings.Join(out, ", ")
}

// calls renders "src.X(), src.Y(), src.Z()".
func calls(recv string, components []Component) string {
	out := make([]string, 0, len(components))
	for _, c := range components {
		out = append(out, recv+"."+c.Upper+"()")
	}
	return strings.Join(out, ", ")
}

// repeat renders "v, v, v".
func repeat(v string, components []Component) string {
	out := make([]string, 0, len(components))
	for range components {
		out = append(out, v)
	}
	return strings.Join(out, ", ")
}

var tupleTmpl = template.Must(template.New("tuple").Funcs(funcMap).Parse(`// Code generated by "gen-tuple {{ join .Args " " }}"; DO NOT EDIT.

package {{ .PackageName }}

import (
	"fmt"
	{{- if eq .Kind.Compare "deep" }}
	"reflect"
	{{- end }}
	{{ if .Kind.Import }}
	"{{ .Kind.Import }}"
	{{ end }}
	"github.com/rdeusser/barghos/check"
)

{{- $t := .Type }}
{{- $s := .Kind.Scalar }}
{{- $n := len .Components }}

// {{ $t }}R is implemented by every readable tuple of {{ $n }} {{ $s }} components.
type {{ $t }}R interface {
	{{- range .Components }}
	{{ .Upper }}() {{ $s }}
	{{- end }}
}

// {{ $t }} is a mutable tuple of {{ $n }} {{ $s }} components.
type {{ $t }} struct {
	{{- range .Components }}
	{{ .Name }} {{ $s }}
	{{- end }}
}

// Ensure {{ $t }} and P{{ $t }} satisfy {{ $t }}R at compile-time.
var (
	_ {{ $t }}R = (*{{ $t }})(nil)
	_ {{ $t }}R = P{{ $t }}{}
)

// New{{ $t }} returns a tuple holding the given components.
func New{{ $t }}({{ names .Components }} {{ $s }}) *{{ $t }} {
	return &{{ $t }}{ {{- range $i, $c := .Components }}{{ if $i }}, {{ end }}{{ $c.Name }}: {{ $c.Name }}{{ end -}} }
}
{{ range .Components }}
func (t *{{ $t }}) {{ .Upper }}() {{ $s }} { return t.{{ .Name }} }
{{- end }}
{{ range .Components }}
func (t *{{ $t }}) Set{{ .Upper }}({{ .Name }} {{ $s }}) *{{ $t }} {
	t.{{ .Name }} = {{ .Name }}
	return t
}
{{ end }}
// Set copies every component of src.
func (t *{{ $t }}) Set(src {{ $t }}R) *{{ $t }} {
	return t.SetComponents({{ calls "src" .Components }})
}

// SetScalar sets every component to v.
func (t *{{ $t }}) SetScalar(v {{ $s }}) *{{ $t }} {
	return t.SetComponents({{ repeat "v" .Components }})
}

func (t *{{ $t }}) SetComponents({{ names .Components }} {{ $s }}) *{{ $t }} {
	{{- range .Components }}
	t.{{ .Name }} = {{ .Name }}
	{{- end }}
	return t
}

// Clone returns a new tuple with the same components.
func (t *{{ $t }}) Clone() *{{ $t }} {
	c := *t
	return &c
}

// Equal reports whether other is a {{ $t }}R with the same components.
func (t *{{ $t }}) Equal(other any) bool {
	return equal{{ $t }}(t, other)
}

func (t *{{ $t }}) String() string {
	return format{{ $t }}("{{ lower $t }}", t)
}

// P{{ $t }} is a read-only tuple of {{ $n }} {{ $s }} components.
type P{{ $t }} struct {
	{{- range .Components }}
	{{ .Name }} {{ $s }}
	{{- end }}
}

// GenP{{ $t }} returns a read-only tuple holding the given components.
func GenP{{ $t }}({{ names .Components }} {{ $s }}) P{{ $t }} {
	return P{{ $t }}{ {{- range $i, $c := .Components }}{{ if $i }}, {{ end }}{{ $c.Name }}: {{ $c.Name }}{{ end -}} }
}

// GenP{{ $t }}Scalar returns a read-only tuple with every component set to v.
func GenP{{ $t }}Scalar(v {{ $s }}) P{{ $t }} {
	return GenP{{ $t }}({{ repeat "v" .Components }})
}

// GenP{{ $t }}From returns a read-only snapshot of src.
func GenP{{ $t }}From(src {{ $t }}R) (P{{ $t }}, error) {
	if check.IsNil(src) {
		return P{{ $t }}{}, check.ArgumentNull("src")
	}
	return GenP{{ $t }}({{ calls "src" .Components }}), nil
}
{{ range .Components }}
func (t P{{ $t }}) {{ .Upper }}() {{ $s }} { return t.{{ .Name }} }
{{- end }}

// Equal reports whether other is a {{ $t }}R with the same components.
func (t P{{ $t }}) Equal(other any) bool {
	return equal{{ $t }}(t, other)
}

func (t P{{ $t }}) String() string {
	return format{{ $t }}("p{{ lower $t }}", t)
}

func equal{{ $t }}(t {{ $t }}R, other any) bool {
	o, ok := other.({{ $t }}R)
	if !ok || check.IsNil(o) {
		return false
	}
	return {{ range $i, $c := .Components }}{{ if $i }} &&
		{{ end }}
		{{- if eq $.Kind.Compare "method" }}t.{{ $c.Upper }}().Equal(o.{{ $c.Upper }}())
		{{- else if eq $.Kind.Compare "deep" }}reflect.DeepEqual(t.{{ $c.Upper }}(), o.{{ $c.Upper }}())
		{{- else }}t.{{ $c.Upper }}() == o.{{ $c.Upper }}()
		{{- end }}
	{{- end }}
}

func format{{ $t }}(name string, t {{ $t }}R) string {
	return fmt.Sprintf("%s({{ range $i, $c := .Components }}{{ if $i }}, {{ end }}{{ $c.Name }}=%v{{ end }})", name, {{ calls "t" .Components }})
}
`))

var poolTmpl = template.Must(template.New("pool").Funcs(funcMap).Parse(`// Code generated by "gen-tuple {{ join .Args " " }}"; DO NOT EDIT.

package {{ .PackageName }}

import (
	"fmt"
	{{ if .Kind.Import }}
	"{{ .Kind.Import }}"
	{{ end }}
	"github.com/rdeusser/barghos/check"
	"github.com/rdeusser/barghos/pool"
	{{- if .SourceImport }}
	"{{ .SourceImport }}"
	{{- end }}
)

{{- $t := .Type }}
{{- $s := .Kind.Scalar }}

// {{ $t }}Pool hands out pooled *{{ $t }} values.
type {{ $t }}Pool struct {
	pool pool.Pool[*{{ $t }}]
	mode check.Mode
}

// New{{ $t }}Pool returns a facade over the backing store selected by s.
func New{{ $t }}Pool(s pool.Settings) *{{ $t }}Pool {
	return &{{ $t }}Pool{
		pool: pool.New(func() *{{ $t }} { return new({{ $t }}) }, s),
		mode: s.Mode,
	}
}

// New{{ $t }}PoolWith returns a facade over p. Only s.Mode is used.
func New{{ $t }}PoolWith(s pool.Settings, p pool.Pool[*{{ $t }}]) (*{{ $t }}Pool, error) {
	if err := s.Mode.NotNil("p", p); err != nil {
		return nil, err
	}
	return &{{ $t }}Pool{pool: p, mode: s.Mode}, nil
}

// GetPlain returns a pooled instance without initializing it. Its components
// hold whatever the previous owner left behind.
func (p *{{ $t }}Pool) GetPlain() *{{ $t }} {
	return p.pool.Get()
}

// Get returns a pooled instance reset to zero.
func (p *{{ $t }}Pool) Get() *{{ $t }} {
	return p.pool.Get().SetScalar({{ .Kind.Zero }})
}

// GetFrom returns a pooled instance holding the components of src.
func (p *{{ $t }}Pool) GetFrom(src {{ .Source }}) (*{{ $t }}, error) {
	if err := p.mode.NotNil("src", src); err != nil {
		return nil, err
	}
	{{- if .Kind.Nullable }}
	if p.mode.Enabled() {
		{{- range .Components }}
		if check.IsNil(src.{{ .Upper }}()) {
			return nil, check.ArgumentNull("src.{{ .Upper }}()")
		}
		{{- end }}
	}
	{{- end }}
	return p.pool.Get().Set(src), nil
}
{{ if .Kind.Nullable }}
func (p *{{ $t }}Pool) GetScalar(v {{ $s }}) (*{{ $t }}, error) {
	if err := p.mode.NotNil("v", v); err != nil {
		return nil, err
	}
	return p.pool.Get().SetScalar(v), nil
}

func (p *{{ $t }}Pool) GetComponents({{ names .Components }} {{ $s }}) (*{{ $t }}, error) {
	{{- range .Components }}
	if err := p.mode.NotNil("{{ .Name }}", {{ .Name }}); err != nil {
		return nil, err
	}
	{{- end }}
	return p.pool.Get().SetComponents({{ names .Components }}), nil
}
{{ else }}
func (p *{{ $t }}Pool) GetScalar(v {{ $s }}) *{{ $t }} {
	return p.pool.Get().SetScalar(v)
}

func (p *{{ $t }}Pool) GetComponents({{ names .Components }} {{ $s }}) *{{ $t }} {
	return p.pool.Get().SetComponents({{ names .Components }})
}
{{ end }}
{{- with .IntScalar }}
// GetScalarInt returns a pooled instance with every component set from the
// integer v.
func (p *{{ $t }}Pool) GetScalarInt(v {{ . }}) *{{ $t }} {
	return p.pool.Get().SetScalarInt(v)
}

func (p *{{ $t }}Pool) GetComponentsInt({{ names $.Components }} {{ . }}) *{{ $t }} {
	return p.pool.Get().SetComponentsInt({{ names $.Components }})
}
{{ end }}
// Ensure guarantees at least count free instances.
func (p *{{ $t }}Pool) Ensure(count int) error {
	if err := p.mode.NotNegative("count", count); err != nil {
		return err
	}
	return p.pool.Ensure(count)
}

// Store hands instances back to the pool. The caller must not use them
// afterwards.
func (p *{{ $t }}Pool) Store(instances ...*{{ $t }}) error {
	if p.mode.Enabled() {
		for i, instance := range instances {
			if instance == nil {
				return check.ArgumentNull(fmt.Sprintf("instances[%d]", i))
			}
		}
	}
	return p.pool.Store(instances...)
}

// Internal returns the backing pool.
func (p *{{ $t }}Pool) Internal() pool.Pool[*{{ $t }}] {
	return p.pool
}
`))
