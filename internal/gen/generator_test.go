package gen

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewVisitorFile(t *testing.T) {
	f := NewVisitorFile("Shape", "shapes", "/tmp/shapes", []string{"Circle", "Square"})
	assert.Equal(t, "visitor", f.Type)
	assert.Equal(t, filepath.Join("/tmp/shapes", "shape_visitor.go"), f.AbsFilename)
	assert.Equal(t, "shapes", f.Package)
	assert.Equal(t, []string{"Circle", "Square"}, f.Types)

	f = NewResultFile("ShapeMeasure", "shapes", "/tmp/shapes", []string{"Circle"}, "float64")
	assert.Equal(t, "result", f.Type)
	assert.Equal(t, filepath.Join("/tmp/shapes", "shape_measure_visitor.go"), f.AbsFilename)
	assert.Equal(t, "float64", f.Result)
}

func TestFile_Render(t *testing.T) {
	f := NewVisitorFile("Shape", "shapes", t.TempDir(), []string{"Circle", "Square", "Blob"})
	data, err := f.Render()
	assert.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "// Code generated by visitorgen. DO NOT EDIT.")
	assert.Contains(t, content, "package shapes")
	assert.Contains(t, content, "type ShapeVisitor interface {")
	assert.Contains(t, content, "VisitCircle(v *Circle) error")
	assert.Contains(t, content, "VisitSquare(v *Square) error")
	assert.Contains(t, content, "VisitBlob(v *Blob) error")
	assert.Contains(t, content, "type ShapeVisitorFuncs struct {")
	assert.Contains(t, content, "OnCircle func(v *Circle) error")
	assert.Contains(t, content, "var _ ShapeVisitor = ShapeVisitorFuncs{}")
	assert.Contains(t, content, "func (v *Circle) Accept(visitor ShapeVisitor) error {")
	assert.Contains(t, content, "return visitor.VisitCircle(v)")
}

func TestFile_Render_Result(t *testing.T) {
	f := NewResultFile("Measure", "shapes", t.TempDir(), []string{"Circle", "Blob"}, "float64")
	data, err := f.Render()
	assert.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "type MeasureVisitor interface {")
	assert.Contains(t, content, "VisitCircle(v *Circle) (float64, error)")
	assert.Contains(t, content, "OnBlob func(v *Blob) (float64, error)")
	assert.Contains(t, content, "var zero float64")
	assert.Contains(t, content, "func (v *Circle) Accept(visitor MeasureVisitor) (float64, error) {")
}

func TestFile_Render_Parses(t *testing.T) {
	f := NewVisitorFile("Shape", "shapes", t.TempDir(), []string{"Circle"})
	data, err := f.Render()
	assert.NoError(t, err)
	_, err = parser.ParseFile(token.NewFileSet(), f.AbsFilename, data, parser.AllErrors)
	assert.NoError(t, err)

	f = NewResultFile("Measure", "shapes", t.TempDir(), []string{"Circle"}, "float64")
	data, err = f.Render()
	assert.NoError(t, err)
	_, err = parser.ParseFile(token.NewFileSet(), f.AbsFilename, data, parser.AllErrors)
	assert.NoError(t, err)
}

func TestFile_Render_UnknownType(t *testing.T) {
	f := &File{Type: "unknown"}
	_, err := f.Render()
	assert.Error(t, err)
}

func TestFile_Gen(t *testing.T) {
	dir := t.TempDir()
	f := NewVisitorFile("Shape", "shapes", dir, []string{"Circle"})
	assert.NoError(t, f.Gen())

	data, err := os.ReadFile(filepath.Join(dir, "shape_visitor.go"))
	assert.NoError(t, err)
	assert.Contains(t, string(data), "type ShapeVisitor interface {")

	// a second generation overwrites the first
	assert.NoError(t, f.Gen())
}

func TestConfig_Files(t *testing.T) {
	cfg := &Config{Visitors: []Typeset{
		{Name: "Shape", Types: []string{"Circle", "Square"}},
		{Name: "Measure", Types: []string{"Blob"}, Result: "float64"},
	}}
	files := cfg.Files("shapes", "/tmp/out")
	assert.Len(t, files, 2)
	assert.Equal(t, "visitor", files[0].Type)
	assert.Equal(t, "result", files[1].Type)
	assert.Equal(t, filepath.Join("/tmp/out", "shape_visitor.go"), files[0].AbsFilename)
	assert.Equal(t, filepath.Join("/tmp/out", "measure_visitor.go"), files[1].AbsFilename)
	assert.Equal(t, "shapes", files[0].Package)
}

func TestAddUnderscore(t *testing.T) {
	assert.Equal(t, "Shape", addUnderscore("Shape"))
	assert.Equal(t, "Shape_Measure", addUnderscore("ShapeMeasure"))
	assert.Equal(t, "JSONNode", addUnderscore("JSONNode"))
}
