// Package stringtest builds multi-line expected values for tests.
package stringtest

import "strings"

// JoinLF joins lines with LF line endings.
//
//	want := stringtest.JoinLF(
//		"// Alpha [alpha.dev]",
//		"// foo.h",
//	) // -> "// Alpha [alpha.dev]\n// foo.h"
func JoinLF(lines ...string) string {
	return strings.Join(lines, "\n")
}

// JoinCRLF joins lines with CRLF line endings, as written by editors on
// Windows.
func JoinCRLF(lines ...string) string {
	return strings.Join(lines, "\r\n")
}

// Commented turns each line into a "//" comment line and joins them with LF.
// Empty lines become a bare "//" with no trailing space, matching what the
// header renderer writes.
//
//	stringtest.Commented("AUTHORS", "", "  - point") // -> "// AUTHORS\n//\n//   - point"
func Commented(lines ...string) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if line == "" {
			out[i] = "//"
			continue
		}

		out[i] = "// " + line
	}

	return JoinLF(out...)
}

// Input strips one leading and one trailing line break from a raw string
// literal and removes the indentation common to all non-blank lines, so test
// fixtures can be indented with the surrounding code.
func Input(s string) string {
	s = strings.TrimPrefix(s, "\n")
	s = strings.TrimSuffix(s, "\n")

	lines := strings.Split(s, "\n")

	prefix := ""
	first := true

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if first {
			prefix = indent
			first = false

			continue
		}

		for !strings.HasPrefix(indent, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""
			continue
		}

		lines[i] = strings.TrimPrefix(line, prefix)
	}

	return JoinLF(lines...)
}
