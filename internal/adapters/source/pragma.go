package source

import (
	"strings"

	"go.trai.ch/cscript/internal/core/domain"
	"go.trai.ch/zerr"
)

// applyPragma applies the switches of an "#option" line to opts.
// Only switches that make sense inside a file are accepted.
func applyPragma(tokens []string, opts *domain.BuildOptions) error {
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch {
		case tok == "--":
			if i+1 < len(tokens) {
				return zerr.With(domain.ErrInvalidPragma, "option", tokens[i+1])
			}
			return nil
		case strings.HasPrefix(tok, "-c"), strings.HasPrefix(tok, "-l"):
			value := tok[2:]
			if value == "" {
				i++
				if i == len(tokens) {
					return zerr.With(domain.ErrInvalidPragma, "option", tok)
				}
				value = tokens[i]
			} else {
				value = "-" + value
			}
			if tok[1] == 'c' {
				opts.CFlags = append(opts.CFlags, value)
			} else {
				opts.LDFlags = append(opts.LDFlags, value)
			}
		case tok == "-m":
			opts.OwnMain = true
		case tok == "-p":
			opts.OwnMain = true
			opts.Language = domain.LanguageCXX
		case tok == "-k":
			opts.Keep = true
		case tok == "-S":
			opts.ShowAsm = true
		default:
			return zerr.With(domain.ErrInvalidPragma, "option", tok)
		}
	}
	return nil
}
