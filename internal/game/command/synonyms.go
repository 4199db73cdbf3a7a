package command

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Synonyms maps abbreviations to the full words they stand for, e.g. N → NORTH.
type Synonyms map[string]string

// Expand returns the full word for an abbreviation, or word itself.
func (s Synonyms) Expand(word string) string {
	if full, ok := s[word]; ok {
		return full
	}
	return word
}

// ParseSynonyms reads "ABBREV=FULLCOMMAND" lines from r. Blank lines are
// skipped and both sides are trimmed.
//
// Postcondition: Returns the table, or an error naming the first malformed or
// repeated line.
func ParseSynonyms(r io.Reader) (Synonyms, error) {
	syn := make(Synonyms)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		abbrev, full, ok := strings.Cut(line, "=")
		abbrev = strings.ToUpper(strings.TrimSpace(abbrev))
		full = strings.ToUpper(strings.TrimSpace(full))
		if !ok || abbrev == "" || full == "" {
			return nil, fmt.Errorf("synonyms line %d: %q: want ABBREV=COMMAND", lineNo, line)
		}
		if existing, dup := syn[abbrev]; dup {
			return nil, fmt.Errorf("synonyms line %d: %q already maps to %q", lineNo, abbrev, existing)
		}
		syn[abbrev] = full
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading synonyms: %w", err)
	}
	return syn, nil
}

// LoadSynonyms reads a synonym table from a file.
//
// Precondition: path must point to a readable synonym file.
// Postcondition: Returns the table or a non-nil error.
func LoadSynonyms(path string) (Synonyms, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening synonyms file %s: %w", path, err)
	}
	defer f.Close()

	syn, err := ParseSynonyms(f)
	if err != nil {
		return nil, fmt.Errorf("loading synonyms from %s: %w", path, err)
	}
	return syn, nil
}
