/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package processor

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"sort"
	"text/template"

	"gopkg.in/yaml.v3"
)

// Manifest describes the registrations to generate for one interface.
type Manifest struct {
	// Package is the package name of the generated file.
	Package string `yaml:"package"`
	// Interface is the interface type as referenced from the generated
	// package, e.g. "Event" or "testmodels.Event".
	Interface string `yaml:"interface"`
	// Registry is the expression holding the target registry, e.g. "Events".
	Registry string `yaml:"registry"`
	// Imports lists extra import paths needed by qualified names above.
	Imports []string `yaml:"imports"`
	// Types maps type tags to concrete types, e.g. "Circle": "Circle".
	Types map[string]string `yaml:"types"`
}

// Parse reads a manifest from YAML and validates it.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	if m.Package == "" {
		return nil, fmt.Errorf("manifest: missing package")
	}
	if m.Interface == "" {
		return nil, fmt.Errorf("manifest: missing interface")
	}
	if m.Registry == "" {
		return nil, fmt.Errorf("manifest: missing registry")
	}
	if len(m.Types) == 0 {
		return nil, fmt.Errorf("manifest: no types to register")
	}
	for tag, typ := range m.Types {
		if tag == "" || typ == "" {
			return nil, fmt.Errorf("manifest: empty tag or type")
		}
	}
	return &m, nil
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return Parse(data)
}

type entry struct {
	Tag  string
	Type string
}

type templateData struct {
	*Manifest
	Entries []entry
}

var fileTemplate = template.Must(template.New("registrations").Parse(
	`// Code generated by polyreg. DO NOT EDIT.

package {{.Package}}

import (
	"github.com/suparena/polyserde/registry"
{{- range .Imports}}

	"{{.}}"
{{- end}}
)

func init() {
{{- range .Entries}}
	registry.MustRegister({{$.Registry}}, {{printf "%q" .Tag}}, registry.DecodeAs[{{$.Interface}}, {{.Type}}]())
{{- end}}
}
`))

// Generate renders the registration file for a manifest. Entries are emitted
// in sorted tag order so the output is deterministic.
func Generate(m *Manifest) ([]byte, error) {
	entries := make([]entry, 0, len(m.Types))
	for tag, typ := range m.Types {
		entries = append(entries, entry{Tag: tag, Type: typ})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Tag < entries[j].Tag })

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, templateData{Manifest: m, Entries: entries}); err != nil {
		return nil, fmt.Errorf("failed to render registrations: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated code does not compile: %w", err)
	}
	return src, nil
}

var (
	manifestPath = flag.String("manifest", "", "Path to the YAML registration manifest")
	outPath      = flag.String("out", "", "Output file (defaults to stdout)")
)

// Main is the entry point used by cmd/polyreg.
func Main() {
	if !flag.Parsed() {
		flag.Parse()
	}

	if *manifestPath == "" {
		fmt.Fprintln(os.Stderr, "polyreg: -manifest is required")
		os.Exit(2)
	}

	m, err := Load(*manifestPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "polyreg: %v\n", err)
		os.Exit(1)
	}

	src, err := Generate(m)
	if err != nil {
		fmt.Fprintf(os.Stderr, "polyreg: %v\n", err)
		os.Exit(1)
	}

	if *outPath == "" {
		os.Stdout.Write(src)
		return
	}
	if err := os.WriteFile(*outPath, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "polyreg: %v\n", err)
		os.Exit(1)
	}
}
