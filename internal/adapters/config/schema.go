package config

// File represents the structure of the config.yaml file.
// Zero values leave the built-in defaults in place.
type File struct {
	Root       string      `yaml:"root"`
	Capacity   *int        `yaml:"capacity"`
	Compiler   CompilerDTO `yaml:"compiler"`
	Debugger   string      `yaml:"debugger"`
	SweepAfter string      `yaml:"sweep_after"`
}

// CompilerDTO names the compiler command per language.
type CompilerDTO struct {
	C   string `yaml:"c"`
	CXX string `yaml:"cxx"`
}
