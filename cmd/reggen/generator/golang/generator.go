// Package golang emits a Go register package: offset, bit, mask and index
// constants, bitfield values and the register table.
package golang

import (
	"fmt"
	"golang.org/x/tools/imports"
	"io"
	"omibyte.io/slvguard/cmd/reggen/generator"
	"omibyte.io/slvguard/regdesc"
	"strconv"
	"strings"
)

type gogen struct {
	block  *regdesc.Block
	pkg    string
	source string
}

// NewGenerator returns a generator for package pkg. source names the
// description file in the generated header.
func NewGenerator(block *regdesc.Block, pkg string, source string) generator.Generator {
	return &gogen{
		block:  block,
		pkg:    pkg,
		source: source,
	}
}

func (g *gogen) Generate(w io.Writer) (err error) {
	var buf strings.Builder

	g.writePreamble(&buf)

	fmt.Fprintln(&buf, "import (")
	fmt.Fprintln(&buf, `"omibyte.io/slvguard/bitfield"`)
	fmt.Fprintln(&buf, `"omibyte.io/slvguard/regdesc"`)
	fmt.Fprintln(&buf, ")")
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "// ParamRegWidth is the width of every register in bits.")
	fmt.Fprintf(&buf, "const ParamRegWidth = %d\n\n", g.block.RegWidth)

	for i := range g.block.Registers {
		g.writeRegister(&buf, &g.block.Registers[i])
	}

	g.writeTable(&buf)

	// Format the final output
	src, err := imports.Process(g.block.Name+".go", []byte(buf.String()), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return fmt.Errorf("error formatting %s: %v", g.block.Name, err)
	}

	_, err = w.Write(src)
	return err
}

func (g *gogen) writePreamble(w io.Writer) {
	fmt.Fprintf(w, "// Code generated by reggen from %s. DO NOT EDIT.\n\n", g.source)

	var notice bool
	for _, text := range []string{g.block.Copyright, g.block.License} {
		if len(text) > 0 {
			generator.WriteComment(w, text)
			notice = true
		}
	}
	if notice {
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "package %s\n\n", g.pkg)
}

func (g *gogen) writeRegister(w io.Writer, reg *regdesc.Register) {
	name := generator.GoName(reg.Name)
	wholeWord := reg.WholeWord(uint32(g.block.RegWidth))

	if len(reg.Desc) > 0 {
		generator.WriteComment(w, reg.Desc)
	}
	fmt.Fprintln(w, "const (")
	fmt.Fprintf(w, "%sRegOffset = %#x\n", name, reg.Offset)

	var fields []string
	if !wholeWord {
		for _, field := range reg.Fields {
			fname := name + generator.GoName(field.Name)
			if field.SingleBit() {
				fmt.Fprintf(w, "%sBit = %d\n", fname, field.Bits.LSB)
				continue
			}
			f := field.Field32()
			fmt.Fprintf(w, "%sMask = %#x\n", fname, f.Mask)
			fmt.Fprintf(w, "%sIndex = %d\n", fname, f.Index)
			fields = append(fields, fname)
		}
	}
	fmt.Fprintln(w, ")")
	fmt.Fprintln(w)

	if len(fields) > 0 {
		fmt.Fprintln(w, "// Field values of the constants above. Treat them as constants: the register")
		fmt.Fprintln(w, "// table holds its own copies.")
		fmt.Fprintln(w, "var (")
		for _, fname := range fields {
			fmt.Fprintf(w, "%sField = bitfield.Field32{Mask: %sMask, Index: %sIndex}\n", fname, fname, fname)
		}
		fmt.Fprintln(w, ")")
		fmt.Fprintln(w)
	}
}

func (g *gogen) writeTable(w io.Writer) {
	fmt.Fprintln(w, "var registers = []Register{")
	for _, reg := range g.block.Registers {
		name := generator.GoName(reg.Name)
		wholeWord := reg.WholeWord(uint32(g.block.RegWidth))

		fmt.Fprintln(w, "{")
		fmt.Fprintf(w, "Name: %s,\n", strconv.Quote(reg.Name))
		fmt.Fprintf(w, "Desc: %s,\n", strconv.Quote(reg.Desc))
		fmt.Fprintf(w, "Offset: %sRegOffset,\n", name)
		fmt.Fprintf(w, "Access: %s,\n", accessName(reg.SWAccess))
		fmt.Fprintln(w, "Fields: []Field{")
		for _, field := range reg.Fields {
			fname := name + generator.GoName(field.Name)
			var value string
			switch {
			case wholeWord:
				value = fmt.Sprintf("bitfield.Range(%d, %d)", field.Bits.MSB, field.Bits.LSB)
			case field.SingleBit():
				value = fmt.Sprintf("bitfield.Bit(%sBit)", fname)
			default:
				value = fname + "Field"
			}
			fmt.Fprintf(w, "{Name: %s, Desc: %s, Field32: %s},\n", strconv.Quote(field.Name), strconv.Quote(field.Desc), value)
		}
		fmt.Fprintln(w, "},")
		fmt.Fprintln(w, "},")
	}
	fmt.Fprintln(w, "}")
}

func accessName(access regdesc.Access) string {
	switch access {
	case regdesc.ReadOnly:
		return "regdesc.ReadOnly"
	case regdesc.WriteOnly:
		return "regdesc.WriteOnly"
	default:
		return "regdesc.ReadWrite"
	}
}
