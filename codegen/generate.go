package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/dkinzler/respkit/codegen/gen"

	"github.com/dave/jennifer/jen"
)

type GeneratorConfig struct {
	// directory of the package to generate code for
	Dir string
	// name of the generated file, relative to Dir
	Output      string
	PackageName string
	Variants    []string
}

func generate(config GeneratorConfig) error {
	log.Println("searching for go module...")
	module, err := gen.NewModuleFromDir(config.Dir)
	if err != nil {
		return err
	}
	log.Println("found go module", module.Name, "with root dir", module.Path)

	pkgPath, err := module.PackagePath(config.Dir)
	if err != nil {
		return err
	}

	variants := config.Variants
	if len(variants) == 0 {
		variants = gen.DefaultVariants
	}

	f, err := gen.GenerateVariants(gen.VariantSpec{
		PackagePath: pkgPath,
		PackageName: config.PackageName,
		MaybePath:   module.Name + "/maybe",
		Variants:    variants,
	})
	if err != nil {
		return err
	}

	filename := filepath.Join(config.Dir, config.Output)
	if err := saveFile(f, filename); err != nil {
		return err
	}
	log.Println("generated", len(variants), "variants in", filename)
	return nil
}

func saveFile(f *jen.File, filename string) error {
	dir := filepath.Dir(filename)
	err := os.MkdirAll(dir, os.ModePerm)
	if err != nil {
		return err
	}
	return f.Save(filename)
}
