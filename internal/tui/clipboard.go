package tui

import (
	"strings"

	"github.com/atotto/clipboard"
)

// Clipboard abstracts the system clipboard so SSH sessions (which have
// no clipboard) and tests can swap in their own.
type Clipboard interface {
	Read() (string, error)
	Write(string) error
}

// SystemClipboard uses the local system clipboard.
type SystemClipboard struct{}

func (SystemClipboard) Read() (string, error) { return clipboard.ReadAll() }
func (SystemClipboard) Write(s string) error { return clipboard.WriteAll(s) }

// memoryClipboard holds the text in process memory. Used for SSH
// sessions where no system clipboard is reachable.
type memoryClipboard struct {
	text string
}

func (m *memoryClipboard) Read() (string, error) { return m.text, nil }
func (m *memoryClipboard) Write(s string) error {
	m.text = s
	return nil
}

// extractSolution pulls the solution text out of pasted content. A
// full level dump carries board rows and comment headers around the
// run-length line, so only lines made of solution characters survive,
// after any leading comment marker is shaved off.
func extractSolution(s string) string {
	var b strings.Builder
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, "; \t"))
		if line == "" || !solutionChars(line) {
			continue
		}
		b.WriteString(line)
	}
	return b.String()
}

func solutionChars(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case strings.ContainsRune("lurdLURD", r):
		default:
			return false
		}
	}
	return true
}
