// Command jipggen generates Go type declarations and recursive-descent
// JSON parser functions from schemas registered with jipg.RegisterParser.
//
// Usage:
//
//	jipggen [flags]
//
// Flags:
//
//	--header string      Path of the generated types file (default "jsonparser_types.go")
//	--source string       Path of the generated parser file (default "jsonparser.go")
//	--single-file          Emit one file combining both sinks
//	--package string       Override the generated package name
//	--manifest string      Load a YAML manifest describing multiple schemas
//	--dump-ir string       Serialize the post-name-pass IR to JSON for inspection
//	--lang string          Locale for diagnostic messages ("en", "zh-Hans")
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/macsencasaus/jipg-go"
)

var (
	headerPath  = flag.String("header", "jsonparser_types.go", "path of the generated types file")
	sourcePath  = flag.String("source", "jsonparser.go", "path of the generated parser file")
	singleFile  = flag.Bool("single-file", false, "emit one file combining both sinks")
	packageName = flag.String("package", "", "override the generated package name (default: auto-detect from output directory)")
	manifest    = flag.String("manifest", "", "load a YAML manifest describing multiple schemas")
	dumpIR      = flag.String("dump-ir", "", "serialize the post-name-pass IR to JSON at this path")
	lang        = flag.String("lang", "en", "locale for diagnostic messages")
	verbose     = flag.Bool("verbose", false, "verbose output")
	help        = flag.Bool("help", false, "show help message")
)

func main() {
	flag.Usage = showHelp
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	defer func() {
		if r := recover(); r != nil {
			if r == jipg.ErrArenaExhausted || fmt.Sprint(r) == jipg.ErrArenaExhausted.Error() {
				log.Printf("❌ arena exhausted: increase capacity with jipg.SetArenaCapacity")
			} else {
				log.Printf("❌ panic during generation: %v", r)
			}
			os.Exit(1)
		}
	}()

	loc, err := localizer(*lang)
	if err != nil {
		log.Fatalf("❌ failed to load diagnostics bundle: %v", err)
	}

	gen, err := NewGenerator(GeneratorConfig{
		HeaderPath:  *headerPath,
		SourcePath:  *sourcePath,
		SingleFile:  *singleFile,
		PackageName: *packageName,
		Verbose:     *verbose,
		Localizer:   loc,
	})
	if err != nil {
		log.Fatalf("❌ failed to create generator: %v", err)
	}

	if *manifest != "" {
		if err := gen.ApplyManifest(*manifest); err != nil {
			log.Fatalf("❌ failed to load manifest %s: %v", *manifest, err)
		}
	}

	defs := jipg.RegisteredParsers()
	if len(defs) == 0 {
		log.Fatalf("❌ %v", jipg.ErrNoParsersRegistered)
	}

	if *dumpIR != "" {
		if err := DumpIR(defs, *dumpIR); err != nil {
			log.Fatalf("❌ failed to dump IR to %s: %v", *dumpIR, err)
		}
		if *verbose {
			log.Printf("📝 wrote IR dump to %s", *dumpIR)
		}
	}

	if err := gen.Generate(defs); err != nil {
		log.Fatalf("❌ generation failed: %v", err)
	}

	if *verbose {
		log.Printf("🎉 generation completed successfully")
	}
}

// showHelp displays the help message.
func showHelp() {
	fmt.Println(`jipggen - schema-driven JSON parser generator

Generates Go type declarations and recursive-descent JSON parser
functions from schemas registered with jipg.RegisterParser.

USAGE:
    jipggen [flags]

FLAGS:`)
	flag.PrintDefaults()
	fmt.Println(`
EXAMPLES:
    # Generate jsonparser_types.go and jsonparser.go for the current package
    jipggen

    # Emit a single combined file
    jipggen --single-file --source=parser.go

    # Batch-generate from a manifest, dumping the IR for inspection
    jipggen --manifest=schemas.yaml --dump-ir=ir.json

DIRECTIVES:
    Add //go:generate jipggen to a file that calls jipg.RegisterParser
    to regenerate its parser on 'go generate'.`)
}
