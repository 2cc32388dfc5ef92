// Package cheader emits C register defines in the layout firmware includes
// as <block>_reg.h.
package cheader

import (
	"fmt"
	"io"
	"omibyte.io/slvguard/cmd/reggen/generator"
	"omibyte.io/slvguard/regdesc"
	"strings"
)

type cgen struct {
	block *regdesc.Block
}

func NewGenerator(block *regdesc.Block) generator.Generator {
	return &cgen{
		block: block,
	}
}

func (c *cgen) Generate(w io.Writer) error {
	var buf strings.Builder
	prefix := generator.MacroName(c.block.Name)
	guard := "_" + prefix + "_REG_DEFS_"

	fmt.Fprintf(&buf, "// Generated register defines for %s\n\n", c.block.Name)
	c.writeLicense(&buf)

	fmt.Fprintf(&buf, "#ifndef %s\n", guard)
	fmt.Fprintf(&buf, "#define %s\n\n", guard)
	fmt.Fprintln(&buf, "#ifdef __cplusplus")
	fmt.Fprintln(&buf, `extern "C" {`)
	fmt.Fprintln(&buf, "#endif")

	fmt.Fprintln(&buf, "// Register width")
	fmt.Fprintf(&buf, "#define %s %d\n", generator.MacroName(prefix, "PARAM_REG_WIDTH"), c.block.RegWidth)

	for i := range c.block.Registers {
		c.writeRegister(&buf, prefix, &c.block.Registers[i])
	}

	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "#ifdef __cplusplus")
	fmt.Fprintln(&buf, `}  // extern "C"`)
	fmt.Fprintln(&buf, "#endif")
	fmt.Fprintf(&buf, "#endif  // %s\n", guard)
	fmt.Fprintf(&buf, "// End generated register defines for %s", c.block.Name)

	_, err := io.WriteString(w, buf.String())
	return err
}

func (c *cgen) writeLicense(w io.Writer) {
	if len(c.block.Copyright) > 0 {
		fmt.Fprintln(w, "// Copyright information found in source file:")
		generator.WriteComment(w, c.block.Copyright)
		fmt.Fprintln(w)
	}
	if len(c.block.License) > 0 {
		fmt.Fprintln(w, "// Licensing information found in source file:")
		generator.WriteComment(w, c.block.License)
		fmt.Fprintln(w)
	}
}

func (c *cgen) writeRegister(w io.Writer, prefix string, reg *regdesc.Register) {
	name := generator.MacroName(prefix, reg.Name)

	fmt.Fprintln(w)
	generator.WriteComment(w, reg.Desc)
	fmt.Fprintf(w, "#define %s_REG_OFFSET %#x\n", name, reg.Offset)

	// A register holding one full-width value has no field defines
	if reg.WholeWord(uint32(c.block.RegWidth)) {
		return
	}

	for _, field := range reg.Fields {
		fname := generator.MacroName(name, field.Name)
		if field.SingleBit() {
			fmt.Fprintf(w, "#define %s_BIT %d\n", fname, field.Bits.LSB)
			continue
		}

		f := field.Field32()
		fmt.Fprintf(w, "#define %s_MASK %#x\n", fname, f.Mask)
		fmt.Fprintf(w, "#define %s_OFFSET %d\n", fname, f.Index)
		fmt.Fprintf(w, "#define %s_FIELD \\\n", fname)
		fmt.Fprintf(w, "  ((bitfield_field32_t) { .mask = %s_MASK, .index = %s_OFFSET })\n", fname, fname)
	}
}

