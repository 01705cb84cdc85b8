package logger

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// zerrError is the subset of go.trai.ch/zerr's *Error used for formatting.
type zerrError interface {
	Message() string
	Metadata() map[string]any
}

type errorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries walks the chain of zerr errors. The first non-zerr
// error ends the walk with its full text. Metadata on message-less wrappers
// is folded into the entry below them.
func collectErrorEntries(err error) []errorEntry {
	var entries []errorEntry
	var pending map[string]any

	for current := err; current != nil; {
		z, ok := current.(zerrError)
		if !ok {
			entries = append(entries, errorEntry{Message: current.Error(), Metadata: pending})
			break
		}

		meta := z.Metadata()
		if pending != nil {
			for k, v := range pending {
				if _, exists := meta[k]; !exists {
					meta[k] = v
				}
			}
			pending = nil
		}

		next := errors.Unwrap(current)
		if z.Message() == "" && next != nil {
			pending = meta
		} else {
			entries = append(entries, errorEntry{Message: z.Message(), Metadata: meta})
		}
		current = next
	}

	return entries
}

// formatErrorEntries renders entries as "Error: ..." followed by an indented
// "Caused by:" list. Metadata keys are sorted.
func formatErrorEntries(entries []errorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		lead, indent := "Error: ", "       "
		if i > 0 {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			lead, indent = "    → ", "      "
		}

		lines = append(lines, lead+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}

		keys := make([]string, 0, len(entry.Metadata))
		for k := range entry.Metadata {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, k, entry.Metadata[k]))
		}
	}

	return strings.Join(lines, "\n")
}
