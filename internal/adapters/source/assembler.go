// Package source assembles build specs and compilable program text.
package source

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"go.trai.ch/cscript/internal/adapters/toolchain"
	"go.trai.ch/cscript/internal/core/domain"
	"go.trai.ch/zerr"
)

const prelude = `#define __CSCRIPT__ 1
#ifdef __cplusplus
extern "C" {
#endif
#include <stdio.h>
#include <stdlib.h>
#ifdef __cplusplus
}
#include <iostream>
using namespace std;
#endif

`

// Assembler implements ports.SourceAssembler.
type Assembler struct {
	stdin io.Reader
}

// NewAssembler creates an Assembler reading stdin sources from os.Stdin.
func NewAssembler() *Assembler {
	return NewAssemblerWithStdin(os.Stdin)
}

// NewAssemblerWithStdin creates an Assembler with an explicit stdin.
func NewAssemblerWithStdin(stdin io.Reader) *Assembler {
	return &Assembler{stdin: stdin}
}

// Spec encodes everything that makes two invocations interchangeable.
func (a *Assembler) Spec(cfg domain.Config, inv domain.Invocation) domain.BuildSpec {
	opts := inv.Options
	b := domain.NewSpecBuilder().
		Option("cc=" + cfg.Compiler(opts.Language)).
		Option("lang=" + opts.Language.String())
	if opts.OwnMain {
		b.Option("main")
	}
	if opts.Debug {
		b.Option("debug")
	}
	for _, f := range opts.CFlags {
		b.Option("cflag=" + f)
	}
	for _, f := range opts.LDFlags {
		b.Option("ldflag=" + f)
	}
	for _, inc := range opts.Includes {
		b.Option("include=" + inc)
	}

	switch inv.Source.Kind {
	case domain.SourceInline:
		b.Inline(inv.Source.Text)
	case domain.SourceFile:
		b.File(inv.Source.Path, inv.Source.Size, inv.Source.ModTime)
	case domain.SourceStdin:
		b.Option("stdin")
	}

	return b.Build()
}

// Assemble writes the prelude, includes, the wrapped body and the suffix.
// #option lines in a file body are applied to the returned options.
func (a *Assembler) Assemble(inv domain.Invocation) ([]byte, domain.BuildOptions, error) {
	opts := inv.Options
	opts.CFlags = slices.Clone(opts.CFlags)
	opts.LDFlags = slices.Clone(opts.LDFlags)

	var out bytes.Buffer
	out.WriteString(prelude)
	for _, inc := range opts.Includes {
		fmt.Fprintf(&out, "#include \"%s\"\n", inc)
	}
	out.WriteString(toolchain.PrefixMacro + "\n")

	switch inv.Source.Kind {
	case domain.SourceInline:
		out.WriteString(inv.Source.Text)
		out.WriteString(";\n")
	case domain.SourceFile:
		f, err := os.Open(inv.Source.Path)
		if err != nil {
			return nil, opts, zerr.With(zerr.Wrap(err, domain.ErrSourceReadFailed.Error()), "path", inv.Source.Path)
		}
		defer func() {
			_ = f.Close()
		}()
		fmt.Fprintf(&out, "# 1 \"%s\" 1\n", inv.Source.Path)
		if err := copyBody(&out, f, inv.Source.Path, &opts); err != nil {
			return nil, opts, err
		}
	case domain.SourceStdin:
		if err := copyBody(&out, a.stdin, "stdin", &opts); err != nil {
			return nil, opts, err
		}
	default:
		return nil, opts, domain.ErrNoSource
	}

	out.WriteString(toolchain.SuffixMacro + "\n")
	return out.Bytes(), opts, nil
}

// copyBody copies the program text, commenting out a leading shebang and
// #option lines after applying them.
func copyBody(out *bytes.Buffer, r io.Reader, name string, opts *domain.BuildOptions) error {
	br := bufio.NewReader(r)
	lineNo := 0
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lineNo++
			commentOut := false
			switch {
			case lineNo == 1 && strings.HasPrefix(line, "#!"):
				commentOut = true
			case strings.HasPrefix(line, "#"):
				tokens := strings.Fields(line[1:])
				if len(tokens) > 0 && tokens[0] == "option" {
					if perr := applyPragma(tokens[1:], opts); perr != nil {
						return zerr.With(zerr.With(perr, "file", name), "line", lineNo)
					}
					commentOut = true
				}
			}
			if commentOut {
				out.WriteString("// ")
			}
			out.WriteString(line)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return zerr.With(zerr.Wrap(err, domain.ErrSourceReadFailed.Error()), "file", name)
		}
	}
	out.WriteString("\n")
	return nil
}
