package util

import (
	"fmt"
	"io"
	"strings"
)

// readLine reads up to the next newline one byte at a time so that several
// prompts can share the same reader.
func readLine(in io.Reader) string {
	var sb strings.Builder
	buf := make([]byte, 1)
	for {
		n, err := in.Read(buf)
		if n > 0 {
			if buf[0] == '\n' {
				break
			}
			sb.WriteByte(buf[0])
		}
		if err != nil {
			break
		}
	}
	return strings.TrimSpace(sb.String())
}

// PromptString asks for a value, returning def on an empty answer.
func PromptString(in io.Reader, out io.Writer, prompt string, def string) string {
	fmt.Fprintf(out, "%s (%s): ", prompt, def)

	response := readLine(in)
	if response == "" {
		return def
	}

	return response
}

// PromptYN asks a yes/no question, returning def on an empty answer.
func PromptYN(in io.Reader, out io.Writer, prompt string, def bool) bool {
	if def {
		fmt.Fprintf(out, "%s (Y/n): ", prompt)
	} else {
		fmt.Fprintf(out, "%s (y/N): ", prompt)
	}

	response := readLine(in)
	if response == "" {
		return def
	}

	return strings.ToLower(response) == "y"
}
