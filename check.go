package main

import "fmt"

var closers = map[rune]rune{')': '(', ']': '[', '}': '{'}

type opener struct {
	r         rune
	line, col int
}

// checkBalanced verifies that (), [] and {} nest correctly in generated C# source.
// String literals, // comments and /* */ comments are skipped.
func checkBalanced(src string) error {
	var stack []opener
	runes := []rune(src)
	line, col := 1, 0

	fail := func(format string, a ...any) error {
		return &FormatError{
			OriginalError: fmt.Errorf(format, a...),
			Source:        src,
			LineNum:       line,
			Column:        col,
		}
	}

	for i := 0; i < len(runes); i++ {
		c := runes[i]
		col++
		if c == '\n' {
			line++
			col = 0
			continue
		}

		switch {
		case c == '/' && i+1 < len(runes) && runes[i+1] == '/':
			for i+1 < len(runes) && runes[i+1] != '\n' {
				i++
				col++
			}
		case c == '/' && i+1 < len(runes) && runes[i+1] == '*':
			startLine, startCol := line, col
			i++
			col++
			closed := false
			for i+1 < len(runes) {
				i++
				col++
				if runes[i] == '\n' {
					line++
					col = 0
					continue
				}
				if runes[i] == '*' && i+1 < len(runes) && runes[i+1] == '/' {
					i++
					col++
					closed = true
					break
				}
			}
			if !closed {
				line, col = startLine, startCol
				return fail("unterminated comment")
			}
		case c == '"':
			startCol := col
			closed := false
			for i+1 < len(runes) && runes[i+1] != '\n' {
				i++
				col++
				if runes[i] == '\\' {
					i++
					col++
					continue
				}
				if runes[i] == '"' {
					closed = true
					break
				}
			}
			if !closed {
				col = startCol
				return fail("unterminated string literal")
			}
		case c == '(' || c == '[' || c == '{':
			stack = append(stack, opener{r: c, line: line, col: col})
		case closers[c] != 0:
			if len(stack) == 0 {
				return fail("unexpected %q", c)
			}
			top := stack[len(stack)-1]
			if top.r != closers[c] {
				return fail("%q does not close %q opened at %d:%d", c, top.r, top.line, top.col)
			}
			stack = stack[:len(stack)-1]
		}
	}

	if len(stack) > 0 {
		top := stack[len(stack)-1]
		line, col = top.line, top.col
		return fail("%q is never closed", top.r)
	}
	return nil
}
