package main

import (
	"path"
	"strings"
	"unicode"

	"github.com/go-leo/visitor"
	"google.golang.org/protobuf/compiler/protogen"
)

// generateFile generates a _visitor.pb.go file with a visitor over the top
// level messages of file.
func generateFile(gen *protogen.Plugin, file *protogen.File) *protogen.GeneratedFile {
	if len(file.Messages) == 0 {
		return nil
	}
	filename := file.GeneratedFilenamePrefix + "_visitor.pb.go"
	g := gen.NewGeneratedFile(filename, file.GoImportPath)
	g.P("// Code generated by protoc-gen-go-visitor. DO NOT EDIT.")
	g.P("// versions:")
	g.P("// - protoc-gen-go-visitor ", visitor.Version)
	g.P("// source: ", file.Desc.Path())
	g.P()
	g.P("package ", file.GoPackageName)
	g.P()
	generateVisitor(g, file)
	return g
}

func generateVisitor(g *protogen.GeneratedFile, file *protogen.File) {
	name := visitorName(file)
	g.P("// ", name, " visits every top level message type of ", file.Desc.Path(), ".")
	g.P("type ", name, " interface {")
	for _, message := range file.Messages {
		g.P("Visit", message.GoIdent.GoName, "(v *", message.GoIdent, ") error")
	}
	g.P("}")
	g.P()
	g.P("// ", name, "Funcs is an adapter to allow the use of ordinary functions as a ", name, ".")
	g.P("// A nil function makes the corresponding visit a no-op.")
	g.P("type ", name, "Funcs struct {")
	for _, message := range file.Messages {
		g.P("On", message.GoIdent.GoName, " func(v *", message.GoIdent, ") error")
	}
	g.P("}")
	g.P()
	g.P("var _ ", name, " = ", name, "Funcs{}")
	g.P()
	for _, message := range file.Messages {
		goName := message.GoIdent.GoName
		g.P("// Visit", goName, " calls f.On", goName, "(v).")
		g.P("func (f ", name, "Funcs) Visit", goName, "(v *", message.GoIdent, ") error {")
		g.P("if f.On", goName, " == nil {")
		g.P("return nil")
		g.P("}")
		g.P("return f.On", goName, "(v)")
		g.P("}")
		g.P()
	}
	for _, message := range file.Messages {
		goName := message.GoIdent.GoName
		g.P("// AcceptVisitor forwards v to the ", name, " method for exactly this type.")
		g.P("func (v *", message.GoIdent, ") AcceptVisitor(visitor ", name, ") error {")
		g.P("return visitor.Visit", goName, "(v)")
		g.P("}")
		g.P()
	}
}

// visitorName derives the visitor interface name from the proto file name,
// shapes.proto becomes ShapesVisitor.
func visitorName(file *protogen.File) string {
	base := strings.TrimSuffix(path.Base(file.Desc.Path()), ".proto")
	var b strings.Builder
	upper := true
	for _, r := range base {
		if r == '_' || r == '-' || r == '.' {
			upper = true
			continue
		}
		if upper {
			b.WriteRune(unicode.ToUpper(r))
			upper = false
			continue
		}
		b.WriteRune(r)
	}
	return b.String() + "Visitor"
}
