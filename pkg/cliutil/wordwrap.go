package cliutil

import (
	"strings"
)

// Wrap the string `s` to a maximum width `w`.  Pass `w` == 0 to do no wrapping.
//
// In order to have some room for slop to avoid things like a short word being on a line by itself,
// most lines are actually wrapped to `w - 5`.
func Wrap(w int, s string) string {
	return wrap(0, w, s)
}

// Wrap the string `s` to a maximum width `w` with leading indent `i`.  The first line is not
// indented (this is assumed to be done by caller).  Pass `w` == 0 to do no wrapping
//
// In order to have some room for slop to avoid things like a short word being on a line by itself,
// most lines are actually wrapped to `w - 5`.
func WrapIndent(i, w int, s string) string {
	return wrap(i, w, s)
}

func wrap(indent, width int, s string) string {
	if width == 0 {
		return s
	}
	avail := width - 5 - indent
	if avail <= 0 {
		return s
	}

	var out strings.Builder
	for lineNum, line := range strings.Split(s, "\n") {
		if lineNum > 0 {
			out.WriteString("\n")
		}
		for chunkNum := 0; ; chunkNum++ {
			if chunkNum > 0 {
				out.WriteString("\n")
				out.WriteString(strings.Repeat(" ", indent))
			}
			if len(line) <= avail {
				out.WriteString(line)
				break
			}
			br := strings.LastIndex(line[:avail], " ")
			if br < 0 {
				// A single overlong word; don't split it.
				br = strings.Index(line, " ")
				if br < 0 {
					out.WriteString(line)
					break
				}
			}
			out.WriteString(strings.TrimRight(line[:br], " "))
			line = strings.TrimLeft(line[br:], " ")
		}
	}
	return out.String()
}
