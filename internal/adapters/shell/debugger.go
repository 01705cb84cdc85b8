package shell

// GDB implements ports.Debugger for gdb-compatible debuggers.
type GDB struct{}

// NewGDB creates a GDB.
func NewGDB() *GDB {
	return &GDB{}
}

// Command returns `<debugger> --args binary args...`.
func (GDB) Command(debugger, binary string, args []string) []string {
	if debugger == "" {
		debugger = "gdb"
	}
	argv := make([]string, 0, len(args)+3)
	argv = append(argv, debugger, "--args", binary)
	return append(argv, args...)
}
