package domain

import "time"

// Language selects the compiler front end.
type Language uint8

const (
	// LanguageC compiles the source as C.
	LanguageC Language = iota
	// LanguageCXX compiles the source as C++.
	LanguageCXX
)

// String returns the token used in build specs.
func (l Language) String() string {
	if l == LanguageCXX {
		return "c++"
	}
	return "c"
}

// SourceFileName returns the name of the assembled source inside a workspace.
func (l Language) SourceFileName() string {
	if l == LanguageCXX {
		return "source.cc"
	}
	return "source.c"
}

// BuildOptions are the user's build and run switches for one invocation.
type BuildOptions struct {
	CFlags   []string
	LDFlags  []string
	Includes []string
	Language Language
	// OwnMain means the source defines main itself instead of being wrapped.
	OwnMain bool
	Debug   bool
	// Keep retains the workspace for inspection and disables caching.
	Keep bool
	// ShowAsm compiles to assembly on stdout and runs nothing.
	ShowAsm bool
	NoCache bool
}

// Cacheable reports whether these options allow using the cache at all.
func (o BuildOptions) Cacheable() bool {
	return !o.Keep && !o.ShowAsm && !o.NoCache
}

// SourceKind tells where the program text comes from.
type SourceKind uint8

const (
	// SourceFile reads the program from a path.
	SourceFile SourceKind = iota
	// SourceStdin reads the program from standard input.
	SourceStdin
	// SourceInline uses an expression given on the command line.
	SourceInline
)

// Source identifies the program text of an invocation.
type Source struct {
	Kind SourceKind
	// Path is set for SourceFile.
	Path string
	// Text is set for SourceInline.
	Text string
	// Size and ModTime are captured for SourceFile at invocation time.
	Size    int64
	ModTime time.Time
}

// Invocation is everything one run of the tool needs.
type Invocation struct {
	Options BuildOptions
	Source  Source
	Args    []string
}

// CompileRequest describes one compiler invocation.
type CompileRequest struct {
	Compiler   string
	Options    BuildOptions
	SourcePath string
	// OutputPath is "-" when assembly goes to stdout.
	OutputPath string
}

// RunRequest describes one artifact execution.
type RunRequest struct {
	Binary        string
	Args          []string
	UnderDebugger bool
	Debugger      string
}

// Cacheable reports whether the invocation may use the cache. Programs read
// from stdin have no stable identity.
func (inv Invocation) Cacheable() bool {
	return inv.Options.Cacheable() && inv.Source.Kind != SourceStdin
}
