package main

import (
	"flag"
	"fmt"
	"go/types"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-leo/gox/slicex"
	"github.com/go-leo/visitor"
	"github.com/go-leo/visitor/internal/gen"
	"golang.org/x/tools/go/packages"
)

var (
	configPath  = flag.String("config", "", "config file, visitor.yaml or visitor.json")
	visitorFlag = flag.String("name", "", "visitor name, e.g. Shape. (required unless -config is set)")
	typesFlag   = flag.String("types", "", "comma-separated concrete type names. (required unless -config is set)")
	resultFlag  = flag.String("result", "", "result type the visitor produces, empty for none")
	outFlag     = flag.String("out", "", "output directory, defaults to the package directory")
)

// Usage is a replacement usage function for the flags package.
func Usage() {
	fmt.Fprintf(os.Stderr, "Usage of visitorgen:\n")
	fmt.Fprintf(os.Stderr, "\tvisitorgen -name Shape -types Circle,Square,Blob\n")
	fmt.Fprintf(os.Stderr, "\tvisitorgen -name Measure -types Circle,Square -result float64\n")
	fmt.Fprintf(os.Stderr, "\tvisitorgen -config visitor.yaml\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
}

func init() {
	log.SetFlags(0)
	log.SetPrefix("visitorgen: ")
}

func main() {
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Usage = Usage
	flag.Parse()
	if *showVersion {
		fmt.Printf("visitorgen %v\n", visitor.Version)
		return
	}

	cfg := loadConfig()

	// We accept either one directory or a list of files. Which do we have?
	args := flag.Args()
	if len(args) == 0 {
		// Default: process whole package in current directory.
		args = []string{"."}
	}

	// load package information
	pkg := loadPkg(args)

	// every declared type must be a defined type of the package
	scope := pkg.Types.Scope()
	for _, ts := range cfg.Visitors {
		for _, name := range ts.Types {
			obj := scope.Lookup(name)
			if obj == nil {
				log.Fatalf("error: type %s not found in %s", name, pkg.PkgPath)
			}
			if _, ok := obj.(*types.TypeName); !ok {
				log.Fatalf("error: %s is not a type in %s", name, pkg.PkgPath)
			}
		}
	}

	dir := *outFlag
	if len(dir) == 0 {
		if slicex.IsEmpty(pkg.GoFiles) {
			log.Fatalf("error: no Go files in %s", pkg.PkgPath)
		}
		dir = filepath.Dir(pkg.GoFiles[0])
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		log.Fatalf("error: output dir: %s", err)
	}

	for _, f := range cfg.Files(pkg.Name, absDir) {
		if err := f.Gen(); err != nil {
			log.Printf("%s.%sVisitor error: %s\n", pkg.PkgPath, f.Visitor, err)
			continue
		}
		log.Printf("%s.%sVisitor wrote %s\n", pkg.PkgPath, f.Visitor, f.AbsFilename)
	}
}

func loadConfig() *gen.Config {
	if len(*configPath) > 0 {
		cfg, err := gen.LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		return cfg
	}

	// must set visitor name and types
	if len(*visitorFlag) == 0 || len(*typesFlag) == 0 {
		flag.Usage()
		os.Exit(2)
	}
	typs := slicex.Map[[]string, []string](
		strings.Split(*typesFlag, ","),
		func(i int, s string) string { return strings.TrimSpace(s) },
	)
	cfg := &gen.Config{Visitors: []gen.Typeset{{Name: *visitorFlag, Types: typs, Result: *resultFlag}}}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	return cfg
}

func loadPkg(args []string) *packages.Package {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles |
			packages.NeedImports | packages.NeedDeps | packages.NeedExportFile | packages.NeedTypes |
			packages.NeedSyntax | packages.NeedTypesInfo | packages.NeedTypesSizes,
	}
	pkgs, err := packages.Load(cfg, args...)
	if err != nil {
		log.Fatal(err)
	}
	if len(pkgs) != 1 {
		log.Fatalf("error: %d packages found", len(pkgs))
	}
	pkg := pkgs[0]
	return pkg
}
