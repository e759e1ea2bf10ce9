package domain

import (
	"errors"
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// Errors reported while decoding the picker's answer
var (
	ErrUnmatchedSelection = errors.New("unmatched selection")
	ErrMalformedArguments = errors.New("malformed arguments")
)

// UnmatchedSelectionError is returned when the picker answers with a line
// that does not start with any candidate label.
type UnmatchedSelectionError struct {
	Line string
}

func (e *UnmatchedSelectionError) Error() string {
	return fmt.Sprintf("unknown choice %q", e.Line)
}

func (e *UnmatchedSelectionError) Is(target error) bool {
	return target == ErrUnmatchedSelection
}

// MalformedArgumentsError is returned when the text typed after a label
// cannot be split into arguments.
type MalformedArgumentsError struct {
	Text string
	Err  error
}

func (e *MalformedArgumentsError) Error() string {
	return fmt.Sprintf("cannot parse arguments %q: %v", e.Text, e.Err)
}

func (e *MalformedArgumentsError) Is(target error) bool {
	return target == ErrMalformedArguments
}

func (e *MalformedArgumentsError) Unwrap() error {
	return e.Err
}

// labelDelimiter separates a label from the arguments typed after it
const labelDelimiter = ":"

// Label returns the display label of a program, e.g. "P] notepad.exe"
func Label(p Program) string {
	return p.Source.Code() + "] " + p.Title
}

// CandidateLine returns the line sent to the picker for p
func CandidateLine(p Program) string {
	return Label(p) + labelDelimiter + " "
}

// RenderCandidates builds the picker input: one candidate line per program,
// each terminated by a newline.
func RenderCandidates(programs []Program) string {
	var sb strings.Builder
	for _, p := range programs {
		sb.WriteString(CandidateLine(p))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Selection is a decoded picker answer
type Selection struct {
	Program Program
	Args    []string
}

// MatchSelection finds the program whose label, followed by the delimiter,
// prefixes the picker answer. It returns the program and the remaining text.
// Programs are tried in order, so the display order decides between labels
// that prefix each other.
func MatchSelection(line string, programs []Program) (Program, string, error) {
	line = strings.TrimSpace(line)
	for _, p := range programs {
		prefix := Label(p) + labelDelimiter
		if strings.HasPrefix(line, prefix) {
			return p, line[len(prefix):], nil
		}
	}
	return Program{}, "", &UnmatchedSelectionError{Line: line}
}

// argsCommand is prepended before parsing so that leading words such as
// "x=1" or "if" are read as plain arguments.
const argsCommand = "launch "

// SplitArgs splits free-form argument text the way a shell splits words,
// without expanding anything. Quotes and backslash escapes are removed;
// "$", "~", globs and braces stay literal. Unterminated quotes and unquoted
// control operators (";", "|", "&", redirections) are rejected.
func SplitArgs(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	src := argsCommand + text
	file, err := syntax.NewParser().Parse(strings.NewReader(src), "")
	if err != nil {
		return nil, &MalformedArgumentsError{Text: text, Err: err}
	}
	if len(file.Stmts) != 1 {
		return nil, &MalformedArgumentsError{Text: text, Err: errShellOperator}
	}
	stmt := file.Stmts[0]
	call, ok := stmt.Cmd.(*syntax.CallExpr)
	if !ok || len(stmt.Redirs) > 0 || stmt.Background || stmt.Coprocess || stmt.Negated {
		return nil, &MalformedArgumentsError{Text: text, Err: errShellOperator}
	}

	args := make([]string, 0, len(call.Args)-1)
	for _, word := range call.Args[1:] {
		args = append(args, literalWord(src, word))
	}
	return args, nil
}

var errShellOperator = errors.New("unquoted shell operator")

// literalWord joins the parts of word with quotes removed. Expansions are
// copied verbatim from src.
func literalWord(src string, word *syntax.Word) string {
	var sb strings.Builder
	for _, part := range word.Parts {
		switch part := part.(type) {
		case *syntax.Lit:
			sb.WriteString(unescape(part.Value, false))
		case *syntax.SglQuoted:
			if part.Dollar {
				sb.WriteString(sourceOf(src, part))
			} else {
				sb.WriteString(part.Value)
			}
		case *syntax.DblQuoted:
			for _, inner := range part.Parts {
				if lit, ok := inner.(*syntax.Lit); ok {
					sb.WriteString(unescape(lit.Value, true))
				} else {
					sb.WriteString(sourceOf(src, inner))
				}
			}
		default:
			sb.WriteString(sourceOf(src, part))
		}
	}
	return sb.String()
}

func sourceOf(src string, node syntax.Node) string {
	return src[node.Pos().Offset():node.End().Offset()]
}

// unescape removes backslash escapes from raw literal text. Inside double
// quotes a backslash only escapes a backslash, a double quote, a dollar
// sign or a backquote.
func unescape(raw string, quoted bool) string {
	if !strings.Contains(raw, `\`) {
		return raw
	}
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' || i+1 == len(raw) {
			sb.WriteByte(c)
			continue
		}
		next := raw[i+1]
		switch {
		case next == '\n':
			// line continuation
		case !quoted || strings.IndexByte("\\\"$`", next) >= 0:
			sb.WriteByte(next)
		default:
			sb.WriteByte(c)
			sb.WriteByte(next)
		}
		i++
	}
	return sb.String()
}

// ParseSelection decodes a picker answer into a program and its arguments
func ParseSelection(line string, programs []Program) (Selection, error) {
	p, rest, err := MatchSelection(line, programs)
	if err != nil {
		return Selection{}, err
	}
	args, err := SplitArgs(rest)
	if err != nil {
		return Selection{}, err
	}
	return Selection{Program: p, Args: args}, nil
}
