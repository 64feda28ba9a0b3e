// Package gen generates the generic counterparts of the response variants, e.g. SuccessOf[T] for Success.
// Code is generated using the package "github.com/dave/jennifer/jen".
package gen

import (
	"errors"
	"fmt"
	"go/token"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/dave/jennifer/jen"
	"golang.org/x/mod/modfile"
)

// Names of all response variants, in the order they are generated.
var DefaultVariants = []string{
	"Success",
	"NotFound",
	"BadInput",
	"NotAuthenticated",
	"NotAuthorized",
	"NotSupported",
	"NotImplemented",
	"Error",
	"Aggregate",
	"StreamContent",
	"ByteContent",
}

// Go module the generated code belongs to.
type Module struct {
	// root directory of the module
	Path string
	// module name from go.mod, e.g. "github.com/dkinzler/respkit"
	Name string
}

// Looks for a go.mod file in dir and its ancestors.
func NewModuleFromDir(dir string) (Module, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return Module{}, err
	}

	curr := dir
	for {
		content, err := os.ReadFile(filepath.Join(curr, "go.mod"))
		if err == nil {
			moduleName := modfile.ModulePath(content)
			if moduleName == "" {
				return Module{}, fmt.Errorf("no module directive in %v", filepath.Join(curr, "go.mod"))
			}
			return Module{Path: curr, Name: moduleName}, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return Module{}, fmt.Errorf("error while trying to locate module: %w", err)
		}
		parent := filepath.Dir(curr)
		if parent == curr {
			return Module{}, errors.New("no module found")
		}
		curr = parent
	}
}

// Returns the full package path of the package in dir, e.g. "github.com/dkinzler/respkit/response".
func (m Module) PackagePath(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(m.Path, dir)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("directory %v is not part of module %v", dir, m.Name)
	}
	return path.Join(m.Name, filepath.ToSlash(rel)), nil
}

// Specification of the code to generate.
type VariantSpec struct {
	// full path and name of the package the generated code belongs to
	PackagePath string
	PackageName string
	// full path of the package that defines the Maybe type
	MaybePath string
	// names of the non-generic variants, e.g. "BadInput"
	Variants []string
}

// Generates a file containing a generic counterpart for every variant in spec.Variants.
// For a variant X the generated code is
//
//	type XOf[T any] struct {
//		X
//		payload maybe.Maybe[T]
//	}
//
// with a constructor NewXOf and the methods Payload and AnyPayload.
func GenerateVariants(spec VariantSpec) (*jen.File, error) {
	if len(spec.Variants) == 0 {
		return nil, errors.New("no variants to generate")
	}
	f := jen.NewFilePathName(spec.PackagePath, spec.PackageName)
	f.HeaderComment("Code generated by respkit codegen. DO NOT EDIT.")
	f.ImportName(spec.MaybePath, "maybe")

	for _, v := range spec.Variants {
		if !isExported(v) {
			return nil, fmt.Errorf("invalid variant name %q", v)
		}
		genVariant(f, v, spec.MaybePath)
	}
	return f, nil
}

func genVariant(f *jen.File, name string, maybePath string) {
	typeName := name + "Of"
	maybeT := func() *jen.Statement {
		return jen.Qual(maybePath, "Maybe").Types(jen.Id("T"))
	}
	receiver := func() *jen.Statement {
		return jen.Id("r").Id(typeName).Types(jen.Id("T"))
	}

	f.Commentf("%v is a %v response with an optional payload of type T.", typeName, name)
	f.Type().Id(typeName).Types(jen.Id("T").Any()).Struct(
		jen.Id(name),
		jen.Id("payload").Add(maybeT()),
	)

	f.Func().Id("New"+typeName).Types(jen.Id("T").Any()).
		Params(jen.Id("r").Id(name), jen.Id("payload").Add(maybeT())).
		Id(typeName).Types(jen.Id("T")).
		Block(
			jen.Return(jen.Id(typeName).Types(jen.Id("T")).Values(jen.Dict{
				jen.Id(name):      jen.Id("r"),
				jen.Id("payload"): jen.Id("payload"),
			})),
		)

	f.Func().Params(receiver()).Id("Payload").Params().Add(maybeT()).Block(
		jen.Return(jen.Id("r").Dot("payload")),
	)

	f.Func().Params(receiver()).Id("AnyPayload").Params().Params(jen.Interface(), jen.Bool()).Block(
		jen.If(jen.Op("!").Id("r").Dot("payload").Dot("HasValue").Call()).Block(
			jen.Return(jen.Nil(), jen.False()),
		),
		jen.Return(jen.Id("r").Dot("payload").Dot("Value").Call(), jen.True()),
	)
}

func isExported(name string) bool {
	return token.IsIdentifier(name) && token.IsExported(name)
}
