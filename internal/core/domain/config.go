package domain

import "time"

// Config is the immutable runtime configuration of one invocation.
type Config struct {
	Root        string
	Capacity    int
	CCompiler   string
	CXXCompiler string
	Debugger    string
	SweepAfter  time.Duration
}

// DefaultConfig returns the configuration used when no file or env override exists.
func DefaultConfig() Config {
	return Config{
		Root:        DefaultRootPath(),
		Capacity:    DefaultCapacity,
		CCompiler:   "gcc",
		CXXCompiler: "g++",
		Debugger:    "gdb",
		SweepAfter:  24 * time.Hour,
	}
}

// Compiler returns the compiler command for the language.
func (c Config) Compiler(lang Language) string {
	if lang == LanguageCXX {
		return c.CXXCompiler
	}
	return c.CCompiler
}
