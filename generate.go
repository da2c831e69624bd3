package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"go.uber.org/zap"
	"golang.org/x/tools/txtar"
)

//go:embed templates.txt
var defaultTemplates string

type documentKind string

const (
	docPoly documentKind = "poly"
	docTrig documentKind = "trig"
)

// templateName maps a document kind to its entry in the template archive.
func (k documentKind) templateName() string {
	return string(k) + ".tmpl"
}

type generator struct {
	Template string // txtar archive to use instead of the embedded templates
	Stdout   bool   // print documents instead of writing them to their outputs

	cfg       *Config
	log       *zap.Logger
	out       io.Writer
	templates *template.Template
}

func newGenerator(cfg *Config, log *zap.Logger) *generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &generator{
		cfg: cfg,
		log: log,
		out: os.Stdout,
	}
}

type polyDocument struct {
	Header    Header
	Namespace string
	Blocks    []*PolyBlock
}

type trigDocument struct {
	Header    Header
	Namespace string
	Blocks    []*TrigBlock
}

func (g *generator) loadTemplates() error {
	templateData := defaultTemplates
	if g.Template != "" {
		data, err := os.ReadFile(g.Template)
		if err != nil {
			return fmt.Errorf("error reading templates: %w", err)
		}
		templateData = string(data)
	}

	archive := txtar.Parse([]byte(templateData))
	root := template.New("fixtures")
	for _, file := range archive.Files {
		// a template owns its trailing whitespace; drop the newline txtar always keeps
		text := strings.TrimSuffix(string(file.Data), "\n")
		if _, err := root.New(file.Name).Parse(text); err != nil {
			return fmt.Errorf("error parsing template %s: %w", file.Name, err)
		}
	}
	for _, kind := range []documentKind{docPoly, docTrig} {
		if root.Lookup(kind.templateName()) == nil {
			return fmt.Errorf("template archive has no %s", kind.templateName())
		}
	}
	g.templates = root
	return nil
}

func (g *generator) buildPolyDocument() (*polyDocument, error) {
	pc := g.cfg.Polynomial
	doc := &polyDocument{
		Header:    pc.Header,
		Namespace: pc.Namespace,
	}
	for _, spec := range pc.Blocks {
		src, err := newSource(pc.RNG, pc.Seed)
		if err != nil {
			return nil, err
		}
		block, err := buildPolyBlock(spec, src)
		if err != nil {
			return nil, err
		}
		g.log.Debug("built polynomial block",
			zap.String("name", block.Name),
			zap.Int("cases", len(block.Cases)),
			zap.Int("degree", spec.Degree),
			zap.Bool("complex", spec.Complex),
		)
		doc.Blocks = append(doc.Blocks, block)
	}
	return doc, nil
}

func (g *generator) buildTrigDocument() (*trigDocument, error) {
	tc := g.cfg.Trig
	doc := &trigDocument{
		Header:    tc.Header,
		Namespace: tc.Namespace,
	}
	for _, spec := range tc.Blocks {
		block, err := buildTrigBlock(spec, tc.Precision)
		if err != nil {
			return nil, err
		}
		g.log.Debug("built trig block",
			zap.String("function", block.Function),
			zap.Int("cases", len(block.Cases)),
			zap.Ints("exclude", spec.Exclude),
		)
		doc.Blocks = append(doc.Blocks, block)
	}
	return doc, nil
}

// render builds the records of one document and renders them in a single template pass.
func (g *generator) render(kind documentKind) ([]byte, error) {
	if g.templates == nil {
		if err := g.loadTemplates(); err != nil {
			return nil, err
		}
	}

	var data any
	var err error
	switch kind {
	case docPoly:
		data, err = g.buildPolyDocument()
	case docTrig:
		data, err = g.buildTrigDocument()
	default:
		return nil, fmt.Errorf("unknown document %q", kind)
	}
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := g.templates.ExecuteTemplate(&buf, kind.templateName(), data); err != nil {
		return nil, fmt.Errorf("error rendering %s document: %w", kind, err)
	}
	if err := checkBalanced(buf.String()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *generator) outputPath(kind documentKind) string {
	if kind == docPoly {
		return g.cfg.Polynomial.Output
	}
	return g.cfg.Trig.Output
}

// generate renders one document and writes it to its output, or to g.out in stdout mode.
func (g *generator) generate(kind documentKind) error {
	src, err := g.render(kind)
	if err != nil {
		return err
	}

	if g.Stdout {
		if !bytes.HasSuffix(src, []byte("\n")) {
			src = append(src, '\n')
		}
		_, err = g.out.Write(src)
		return err
	}

	path := g.outputPath(kind)
	if path == "" {
		return &ValidationError{Field: string(kind) + " output", Reason: "no output path configured"}
	}
	if err := writeDocument(path, src); err != nil {
		return err
	}
	g.log.Info("wrote fixture document",
		zap.String("document", string(kind)),
		zap.String("path", path),
		zap.Int("bytes", len(src)),
	)
	return nil
}

// writeDocument replaces the contents of path. The parent directory must already exist.
func writeDocument(path string, src []byte) error {
	if err := os.WriteFile(path, src, 0644); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	return nil
}
