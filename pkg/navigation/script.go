// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Kyma contributors
//
// SPDX-License-Identifier: Apache-2.0

package navigation

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/dop251/goja/ast"
	"github.com/dop251/goja/file"
	"github.com/dop251/goja/parser"
)

const scriptIndent = "  "

var (
	errNotArray           = errors.New("the module must export an array of entries")
	errTemplateExpression = errors.New("template literal expressions are not supported")

	// the parser knows no ES module syntax, the export keyword pair is
	// blanked out and the exported array is read as an expression statement
	exportDefault = regexp.MustCompile(`^(?:\s|//[^\n]*|/\*[\s\S]*?\*/)*(export\s+default)\b`)
)

func encodeScript(w io.Writer, tree Tree) error {
	var b bytes.Buffer
	b.WriteString("export default [")
	writeScriptEntries(&b, tree, 1)
	b.WriteString("];\n")
	_, err := w.Write(b.Bytes())
	return err
}

func writeScriptEntries(b *bytes.Buffer, entries []*Entry, depth int) {
	if len(entries) == 0 {
		return
	}
	b.WriteString("\n")
	for i, e := range entries {
		b.WriteString(strings.Repeat(scriptIndent, depth))
		fmt.Fprintf(b, "{ text: %s, link: %s", scriptQuote(e.Text), scriptQuote(e.Link))
		if e.Collapsed != nil {
			fmt.Fprintf(b, ", collapsed: %t", *e.Collapsed)
		}
		if e.Items != nil {
			b.WriteString(", items: [")
			writeScriptEntries(b, e.Items, depth+1)
			if len(e.Items) > 0 {
				b.WriteString(strings.Repeat(scriptIndent, depth))
			}
			b.WriteString("]")
		}
		b.WriteString(" }")
		if i < len(entries)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
}

func scriptQuote(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}

func decodeScript(src []byte) (Tree, error) {
	if m := exportDefault.FindSubmatchIndex(src); m != nil {
		src = append([]byte{}, src...)
		for i := m[2]; i < m[3]; i++ {
			if src[i] != '\n' {
				src[i] = ' '
			}
		}
	}
	fset := &file.FileSet{}
	program, err := parser.ParseFile(fset, "", src, 0)
	if err != nil {
		return nil, err
	}
	d := scriptDecoder{fset: fset}
	var exported ast.Expression
	for _, stmt := range program.Body {
		switch s := stmt.(type) {
		case *ast.EmptyStatement:
			continue
		case *ast.ExpressionStatement:
			if exported != nil {
				return nil, d.errorf(s, "%w", errNotArray)
			}
			exported = s.Expression
			if assign, ok := exported.(*ast.AssignExpression); ok && isModuleExports(assign.Left) {
				exported = assign.Right
			}
		default:
			return nil, d.errorf(s, "%w", errNotArray)
		}
	}
	if exported == nil {
		return Tree{}, nil
	}
	return d.entries(exported)
}

func isModuleExports(expr ast.Expression) bool {
	dot, ok := expr.(*ast.DotExpression)
	if !ok {
		return false
	}
	obj, ok := dot.Left.(*ast.Identifier)
	return ok && obj.Name.String() == "module" && dot.Identifier.Name.String() == "exports"
}

type scriptDecoder struct {
	fset *file.FileSet
}

func (d scriptDecoder) errorf(node ast.Node, format string, args ...any) error {
	pos := d.fset.Position(node.Idx0())
	return fmt.Errorf("line %d column %d: %w", pos.Line, pos.Column, fmt.Errorf(format, args...))
}

func (d scriptDecoder) entries(expr ast.Expression) ([]*Entry, error) {
	array, ok := expr.(*ast.ArrayLiteral)
	if !ok {
		return nil, d.errorf(expr, "%w", errNotArray)
	}
	entries := make([]*Entry, 0, len(array.Value))
	for _, value := range array.Value {
		if value == nil {
			return nil, d.errorf(array, "array holes are not supported")
		}
		e, err := d.entry(value)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (d scriptDecoder) entry(expr ast.Expression) (*Entry, error) {
	object, ok := expr.(*ast.ObjectLiteral)
	if !ok {
		return nil, d.errorf(expr, "entry must be an object literal")
	}
	e := &Entry{}
	seen := map[string]bool{}
	for _, prop := range object.Value {
		keyed, ok := prop.(*ast.PropertyKeyed)
		if !ok || keyed.Computed || keyed.Kind != ast.PropertyKindValue {
			return nil, d.errorf(prop, "only plain key: value properties are supported")
		}
		key, err := d.key(keyed.Key)
		if err != nil {
			return nil, err
		}
		if seen[key] {
			return nil, d.errorf(keyed.Key, "field %s already set", key)
		}
		seen[key] = true
		switch key {
		case "text":
			e.Text, err = d.str(key, keyed.Value)
		case "link":
			e.Link, err = d.str(key, keyed.Value)
		case "collapsed":
			b, ok := keyed.Value.(*ast.BooleanLiteral)
			if !ok {
				return nil, d.errorf(keyed.Value, "collapsed must be true or false")
			}
			e.Collapsed = &b.Value
		case "items":
			e.Items, err = d.entries(keyed.Value)
		default:
			return nil, d.errorf(keyed.Key, "field %s not found in type navigation.Entry", key)
		}
		if err != nil {
			return nil, err
		}
	}
	return e, nil
}

func (d scriptDecoder) key(expr ast.Expression) (string, error) {
	switch k := expr.(type) {
	case *ast.StringLiteral:
		return k.Value.String(), nil
	case *ast.Identifier:
		return k.Name.String(), nil
	}
	return "", d.errorf(expr, "property names must be identifiers or strings")
}

// str accepts string literals and template literals without substitutions,
// identifiers and any other computed value are rejected
func (d scriptDecoder) str(key string, expr ast.Expression) (string, error) {
	switch v := expr.(type) {
	case *ast.StringLiteral:
		return v.Value.String(), nil
	case *ast.TemplateLiteral:
		if v.Tag != nil || len(v.Expressions) > 0 {
			return "", d.errorf(v, "%w", errTemplateExpression)
		}
		var b strings.Builder
		for _, el := range v.Elements {
			b.WriteString(el.Parsed.String())
		}
		return b.String(), nil
	}
	return "", d.errorf(expr, "%s must be a string literal", key)
}
