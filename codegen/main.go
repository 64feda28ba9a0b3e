// Command codegen generates the generic counterparts of the response variants.
//
// It is usually invoked with go generate from the response package:
//
//	//go:generate go run github.com/dkinzler/respkit/codegen
package main

import (
	"log"
	"os"
	"path/filepath"

	cli "github.com/urfave/cli/v2"
)

const version string = "0.2"

func main() {
	app := &cli.App{
		Name:    "codegen",
		Usage:   "generates generic response variants",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "dir",
				Value:       ".",
				Usage:       "Directory of the package the code is generated for.",
				DefaultText: "current working directory",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   "variants_gen.go",
				Usage:   "Name of the generated file, relative to dir.",
			},
			&cli.StringFlag{
				Name:  "package",
				Value: "response",
				Usage: "Package name of the generated file.",
			},
			&cli.StringSliceFlag{
				Name:  "variant",
				Usage: "Name of a variant to generate, can be repeated. Generates all variants if not set.",
			},
		},
		Action: func(ctx *cli.Context) error {
			dir, err := filepath.Abs(ctx.String("dir"))
			if err != nil {
				return err
			}
			config := GeneratorConfig{
				Dir:         dir,
				Output:      ctx.String("output"),
				PackageName: ctx.String("package"),
				Variants:    ctx.StringSlice("variant"),
			}
			return generate(config)
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
