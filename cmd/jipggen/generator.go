package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kaptinlin/go-i18n"

	"github.com/macsencasaus/jipg-go"
)

// GeneratorConfig configures one invocation of the generator: where the
// two emitted sinks go, whether they collapse into one file, which
// package name the output declares, and which locale validation
// diagnostics render in.
type GeneratorConfig struct {
	HeaderPath  string
	SourcePath  string
	SingleFile  bool
	PackageName string
	Verbose     bool
	Localizer   *i18n.Localizer
}

// Generator drives validation and code emission for a batch of
// registered parsers against one GeneratorConfig.
type Generator struct {
	config GeneratorConfig
	writer *fileWriter
}

// NewGenerator builds a Generator, auto-detecting the package name from
// the header sink's directory when PackageName is left blank.
func NewGenerator(config GeneratorConfig) (*Generator, error) {
	if config.HeaderPath == "" {
		config.HeaderPath = "jsonparser_types.go"
	}
	if config.SourcePath == "" {
		config.SourcePath = "jsonparser.go"
	}
	if config.PackageName == "" {
		config.PackageName = detectPackageName(config.HeaderPath)
	}
	return &Generator{
		config: config,
		writer: newFileWriter(config.Verbose),
	}, nil
}

func detectPackageName(path string) string {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return "main"
	}
	return filepath.Base(dir)
}

// ApplyManifest loads a YAML manifest and overrides this Generator's
// sink paths, single-file flag, and package name with the entry that
// matches its configured header path, if any — a manifest describes a
// batch of schemas sharing one jipggen invocation's output, not a
// separate generation per entry.
func (g *Generator) ApplyManifest(path string) error {
	m, err := loadManifest(path)
	if err != nil {
		return err
	}
	entry, ok := m.find(g.config.HeaderPath, g.config.PackageName)
	if !ok {
		return nil
	}
	if entry.Header != "" {
		g.config.HeaderPath = entry.Header
	}
	if entry.Source != "" {
		g.config.SourcePath = entry.Source
	}
	if entry.Package != "" {
		g.config.PackageName = entry.Package
	}
	if entry.SingleFile {
		g.config.SingleFile = true
	}
	return nil
}

// Generate validates defs, computes a dependency-safe emission order
// for their aggregate types, renders the type declarations and parser
// functions, and writes the configured sink(s).
func (g *Generator) Generate(defs []*jipg.ParserDef) error {
	diags := jipg.Check(defs)
	if !diags.Empty() {
		for _, d := range diags.Items() {
			fmt.Fprintln(os.Stderr, "⚠️ ", d.Localize(g.config.Localizer))
		}
		return diags
	}

	order, err := aggregateEmissionOrder(defs)
	if err != nil {
		return err
	}

	types := emitTypes(order)
	parsers := emitParsers(order, defs)

	if g.config.SingleFile {
		body := types + "\n" + sboxSource() + "\n" + lexerSource + "\n" + parsers
		return g.writer.write(g.config.SourcePath, g.config.PackageName, body)
	}

	if err := g.writer.write(g.config.HeaderPath, g.config.PackageName, types); err != nil {
		return err
	}
	body := sboxSource() + "\n" + lexerSource + "\n" + parsers
	return g.writer.write(g.config.SourcePath, g.config.PackageName, body)
}
