package command

import "strings"

// ParseResult holds the parsed command word and arguments from a text line.
type ParseResult struct {
	// Command is the first word of the input, uppercased.
	Command string
	// Args are the remaining words after the command, uppercased.
	Args []string
}

// Arg returns the first argument, or "" if there is none.
func (p ParseResult) Arg() string {
	if len(p.Args) == 0 {
		return ""
	}
	return p.Args[0]
}

// Parse uppercases a text line and splits it into a command and arguments.
//
// Postcondition: Returns a ParseResult. If line is blank, Command is empty.
func Parse(line string) ParseResult {
	fields := strings.Fields(strings.ToUpper(line))
	if len(fields) == 0 {
		return ParseResult{}
	}
	result := ParseResult{Command: fields[0]}
	if len(fields) > 1 {
		result.Args = fields[1:]
	}
	return result
}
