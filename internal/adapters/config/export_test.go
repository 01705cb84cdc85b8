package config

// SetEnv replaces the environment lookup.
func (l *Loader) SetEnv(env map[string]string) {
	l.getenv = func(k string) string { return env[k] }
}
