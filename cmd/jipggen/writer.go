package main

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"strings"
	"text/template"

	"github.com/google/uuid"

	"github.com/macsencasaus/jipg-go"
)

// importsUsedBy reports which standard library packages body's
// generated code references, in the order write must emit them.
// go/format.Source only reformats source — unlike goimports, it never
// adds or removes import lines — so the emitter has to name every
// package the generated body actually calls into.
func importsUsedBy(body string) []string {
	var imports []string
	if strings.Contains(body, "strconv.") {
		imports = append(imports, "strconv")
	}
	return imports
}

// importBlock renders an import declaration for names, or an empty
// string when there is nothing to import.
func importBlock(names []string) string {
	if len(names) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("import (\n")
	for _, name := range names {
		fmt.Fprintf(&b, "\t%q\n", name)
	}
	b.WriteString(")\n\n")
	return b.String()
}

const generatedHeader = `// Code generated by jipggen; DO NOT EDIT.
// source-id: {{.SessionID}}
`

var headerTemplate = template.Must(template.New("header").Parse(generatedHeader))

// fileWriter formats and writes generated Go source, stamping every
// file with the same generation-session id so a pair of sinks from one
// run (types + parser, or the single-file combination of both) can be
// matched up later.
type fileWriter struct {
	sessionID uuid.UUID
	verbose   bool
}

func newFileWriter(verbose bool) *fileWriter {
	return &fileWriter{sessionID: uuid.New(), verbose: verbose}
}

// header renders the "Code generated" marker comment for one sink.
func (w *fileWriter) header() (string, error) {
	var buf bytes.Buffer
	if err := headerTemplate.Execute(&buf, struct{ SessionID uuid.UUID }{w.sessionID}); err != nil {
		return "", fmt.Errorf("%w: %w", jipg.ErrTemplateExecution, err)
	}
	return buf.String(), nil
}

// write gofmt-formats src and writes it to path.
func (w *fileWriter) write(path, packageName string, body string) error {
	head, err := w.header()
	if err != nil {
		return err
	}

	src := head + "package " + packageName + "\n\n" + importBlock(importsUsedBy(body)) + body

	formatted, err := format.Source([]byte(src))
	if err != nil {
		return fmt.Errorf("%w: %s: %w", jipg.ErrSourceFormat, path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", jipg.ErrOutputOpen, path, err)
	}
	defer f.Close()

	if _, err := f.Write(formatted); err != nil {
		return fmt.Errorf("%w: %s: %w", jipg.ErrOutputWrite, path, err)
	}

	if w.verbose {
		fmt.Printf("📝 wrote %s\n", path)
	}
	return nil
}
