package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"omibyte.io/slvguard/cmd/reggen/generator"
	"omibyte.io/slvguard/cmd/reggen/generator/cheader"
	"omibyte.io/slvguard/cmd/reggen/generator/golang"
	"omibyte.io/slvguard/regdesc"
	"os"
	"path/filepath"
	"strings"
)

var (
	input      string
	peripheral string
	lang       string
	pkg        string
	output     string
)

func init() {
	flag.StringVar(&input, "in", "", "input register description (.yaml or .svd)")
	flag.StringVar(&peripheral, "peripheral", "", "peripheral to generate from an SVD device file")
	flag.StringVar(&lang, "lang", "go", "output language: go or c")
	flag.StringVar(&pkg, "pkg", "", "Go package name, defaults to the block name")
	flag.StringVar(&output, "out", "-", "output file, - for stdout")
	flag.Parse()
}

func load(fname string) (*regdesc.Block, error) {
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".yaml", ".yml":
		return regdesc.Load(fname)
	case ".svd", ".xml":
		if len(peripheral) == 0 {
			return nil, fmt.Errorf("%s: -peripheral is required for SVD input", fname)
		}
		buf, err := os.ReadFile(fname)
		if err != nil {
			return nil, err
		}
		return regdesc.FromSVD(buf, peripheral)
	default:
		return nil, fmt.Errorf("unsupported file type %s", filepath.Ext(fname))
	}
}

func main() {
	if len(input) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	block, err := load(input)
	if err != nil {
		log.Fatal(err)
	}

	var gen generator.Generator
	switch lang {
	case "go":
		name := pkg
		if len(name) == 0 {
			name = strings.ToLower(strings.ReplaceAll(block.Name, "_", ""))
		}
		gen = golang.NewGenerator(block, name, filepath.Base(input))
	case "c":
		gen = cheader.NewGenerator(block)
	default:
		log.Fatalf("unsupported language %s", lang)
	}

	var w io.Writer = os.Stdout
	if output != "-" {
		f, err := os.Create(output)
		if err != nil {
			log.Fatal("file io error: ", err)
		}
		defer f.Close()
		w = f
	}

	if err = gen.Generate(w); err != nil {
		log.Fatal("generator error: ", err)
	}

	if output != "-" {
		fmt.Printf("Generated %s: %d registers\n", output, len(block.Registers))
	}
}
