package gen

import (
	"bytes"
	_ "embed"
	"errors"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"unicode"

	"github.com/go-leo/visitor"
	"golang.org/x/exp/slices"
)

//go:embed visitor.go.template
var visitorContent string

//go:embed visitor_result.go.template
var resultContent string

// File is one generated visitor file.
type File struct {
	Type        string
	AbsFilename string
	Package     string
	Visitor     string
	Types       []string
	Result      string
	Version     string
}

func NewVisitorFile(name string, pkgName string, dir string, types []string) *File {
	return &File{
		Type:        "visitor",
		AbsFilename: filepath.Join(dir, strings.ToLower(addUnderscore(name))+"_visitor.go"),
		Package:     pkgName,
		Visitor:     name,
		Types:       slices.Clone(types),
		Version:     visitor.Version,
	}
}

func NewResultFile(name string, pkgName string, dir string, types []string, result string) *File {
	return &File{
		Type:        "result",
		AbsFilename: filepath.Join(dir, strings.ToLower(addUnderscore(name))+"_visitor.go"),
		Package:     pkgName,
		Visitor:     name,
		Types:       slices.Clone(types),
		Result:      result,
		Version:     visitor.Version,
	}
}

// Render renders the file content, gofmt formatted.
func (f File) Render() ([]byte, error) {
	if f.Type == "visitor" {
		return f.render("visitor", visitorContent)
	} else if f.Type == "result" {
		return f.render("result", resultContent)
	}
	return nil, errors.New("unknown visitor type")
}

// Gen renders the file and writes it to AbsFilename, overwriting a previous
// generation.
func (f File) Gen() error {
	data, err := f.Render()
	if err != nil {
		return err
	}
	return os.WriteFile(f.AbsFilename, data, 0o644)
}

func (f File) render(name string, content string) ([]byte, error) {
	tmpl, err := template.New(name).Parse(content)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, &f); err != nil {
		return nil, err
	}
	return format.Source(buf.Bytes())
}

func addUnderscore(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) && !unicode.IsUpper(rune(s[i-1])) {
			result.WriteRune('_')
		}
		result.WriteRune(r)
	}
	return result.String()
}
