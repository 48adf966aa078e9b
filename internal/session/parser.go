// Package session turns a terminal transcript into commands and analyzes
// the directory tree they describe.
package session

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"dirsize/internal/model"
)

// Transcript is a parsed session along with its raw lines, which are kept
// so errors can point at the offending text.
type Transcript struct {
	Commands []model.Command
	Lines    []string
}

// ParseError reports a transcript line that does not fit the grammar.
type ParseError struct {
	Line   int
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// Parser handles the parsing of session transcripts.
type Parser struct {
	// Prompt marks a command line, e.g. "$ cd a".
	Prompt string

	dirRe  *regexp.Regexp
	fileRe *regexp.Regexp
}

// NewParser creates a Parser for "$"-prompted transcripts.
func NewParser() *Parser {
	return &Parser{
		Prompt: "$",
		dirRe:  regexp.MustCompile(`^dir\s+(\S.*)$`),
		fileRe: regexp.MustCompile(`^(\d+)\s+(\S.*)$`),
	}
}

// Parse reads the whole transcript and returns its commands in session order.
func (p *Parser) Parse(r io.Reader) (*Transcript, error) {
	t := &Transcript{}

	scanner := bufio.NewScanner(r)
	// Large buffer for long listing lines
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	listing := -1 // Index of the List command collecting entries, or -1
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		raw := strings.TrimRight(scanner.Text(), "\r")
		t.Lines = append(t.Lines, raw)
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if rest, ok := p.command(line); ok {
			cmd, err := p.parseCommand(rest, lineNum, raw)
			if err != nil {
				return nil, err
			}
			t.Commands = append(t.Commands, cmd)
			listing = -1
			if cmd.Kind == model.CmdList {
				listing = len(t.Commands) - 1
			}
			continue
		}

		if listing < 0 {
			return nil, &ParseError{Line: lineNum, Text: raw, Reason: "listing line outside of ls output"}
		}
		entry, err := p.parseEntry(line, lineNum, raw)
		if err != nil {
			return nil, err
		}
		t.Commands[listing].Entries = append(t.Commands[listing].Entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

// command reports whether line is a prompt line and returns the text after the prompt.
func (p *Parser) command(line string) (string, bool) {
	if !strings.HasPrefix(line, p.Prompt) {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(line, p.Prompt)), true
}

func (p *Parser) parseCommand(rest string, lineNum int, raw string) (model.Command, error) {
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return model.Command{}, &ParseError{Line: lineNum, Text: raw, Reason: "empty command"}
	}

	var cmd model.Command
	switch fields[0] {
	case "ls":
		if len(fields) != 1 {
			return model.Command{}, &ParseError{Line: lineNum, Text: raw, Reason: "ls takes no arguments"}
		}
		cmd = model.List()
	case "cd":
		if len(fields) < 2 {
			return model.Command{}, &ParseError{Line: lineNum, Text: raw, Reason: "cd needs a target"}
		}
		// Names may contain spaces; keep everything after "cd".
		arg := strings.TrimSpace(strings.TrimPrefix(rest, "cd"))
		switch arg {
		case "/":
			cmd = model.Root()
		case "..":
			cmd = model.Parent()
		default:
			cmd = model.Descend(arg)
		}
	default:
		return model.Command{}, &ParseError{Line: lineNum, Text: raw, Reason: "unknown command " + strconv.Quote(fields[0])}
	}
	cmd.Line = lineNum
	return cmd, nil
}

func (p *Parser) parseEntry(line string, lineNum int, raw string) (model.Entry, error) {
	if m := p.dirRe.FindStringSubmatch(line); m != nil {
		return model.DirEntry(m[1]), nil
	}
	if m := p.fileRe.FindStringSubmatch(line); m != nil {
		size, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return model.Entry{}, &ParseError{Line: lineNum, Text: raw, Reason: "file size out of range"}
		}
		return model.FileEntry(m[2], size), nil
	}
	return model.Entry{}, &ParseError{Line: lineNum, Text: raw, Reason: "not a listing line"}
}
