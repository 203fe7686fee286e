package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

func main() {
	var print bool

	options := GeneratorOptions{
		Args: os.Args[1:],
	}

	flag := flag.NewFlagSet("gen-tuple", flag.ContinueOnError)

	flag.StringVar(&options.Type, "type", "", "type name, e.g. Tup4l")
	flag.BoolVar(&options.PoolOnly, "pool-only", false, "only generate the pool facade for an existing type")
	flag.StringVar(&options.Scalar, "scalar", "", "component type; required with -pool-only")
	flag.StringVar(&options.Components, "components", "", "comma-separated component names; required with -pool-only")
	flag.StringVar(&options.Source, "source", "", "readable interface accepted by GetFrom; required with -pool-only")
	flag.StringVar(&options.IntScalar, "int-scalar", "", "integer type accepted by GetScalarInt/GetComponentsInt; only with -pool-only")
	flag.StringVar(&options.SourceImport, "source-import", "", "import path of the package declaring -source")
	flag.StringVar(&options.Output, "output", ".", "output directory")
	flag.BoolVar(&print, "print", false, "print the generated code to stdout")

	if err := flag.Parse(os.Args[1:]); err != nil {
		log.Fatalf("%+v", err)
	}

	if len(options.Type) == 0 {
		log.Printf("-type is required")
		os.Exit(1)
	}

	generator := NewGenerator(options)
	files, err := generator.Run()
	if err != nil {
		log.Fatalf("%+v", err)
	}

	if print {
		for _, src := range files {
			fmt.Println(string(src))
		}
	}
}
