// Copyright 2024 The Docweave Authors.
// SPDX-License-Identifier: Apache-2.0

package texttemplate

import (
	"regexp"
	"strings"

	"github.com/docweave/docweave/pkg/filepos"
)

type TokenType int

const (
	TokenText TokenType = iota
	TokenVarRef
	TokenIfOpen
	TokenIfClose
	TokenEachOpen
	TokenEachClose
	TokenSplice
)

const (
	markerOpen  = "{{"
	markerClose = "}}"
)

var pathRegexp = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`)

// Token is one lexed piece of template text. For marker tokens Content holds
// the full marker including delimiters, so a tolerant consumer can emit it
// back verbatim.
type Token struct {
	Type     TokenType
	Content  string
	Path     string // var-ref path, if-condition, each-source, or splice name
	ItemName string // each loop variable
	Position *filepos.Position

	// marker-shaped but not parseable as any construct (e.g. an #each
	// without an "as" clause)
	Malformed bool
}

type Tokenizer struct {
	associatedName string
}

func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize splits data into text and marker tokens. It never fails; anything
// that does not lex as a marker stays text, including a dangling "{{" with
// no closing delimiter.
func (t *Tokenizer) Tokenize(data []byte, associatedName string) []Token {
	t.associatedName = associatedName

	var tokens []Token
	text := string(data)
	currLine := 1

	for len(text) > 0 {
		openIdx := strings.Index(text, markerOpen)
		if openIdx == -1 {
			tokens = append(tokens, t.textToken(text, currLine))
			break
		}

		closeIdx := strings.Index(text[openIdx:], markerClose)
		if closeIdx == -1 {
			tokens = append(tokens, t.textToken(text, currLine))
			break
		}
		closeIdx += openIdx

		if openIdx > 0 {
			tokens = append(tokens, t.textToken(text[:openIdx], currLine))
			currLine += strings.Count(text[:openIdx], "\n")
		}

		marker := text[openIdx : closeIdx+len(markerClose)]
		tokens = append(tokens, t.markerToken(marker, currLine))
		currLine += strings.Count(marker, "\n")

		text = text[closeIdx+len(markerClose):]
	}

	return tokens
}

func (t *Tokenizer) textToken(content string, line int) Token {
	return Token{Type: TokenText, Content: content, Position: t.newPosition(line)}
}

func (t *Tokenizer) markerToken(marker string, line int) Token {
	tok := Token{Content: marker, Position: t.newPosition(line)}
	body := strings.TrimSpace(marker[len(markerOpen) : len(marker)-len(markerClose)])

	directive := ""
	if fields := strings.Fields(body); len(fields) > 0 {
		directive = fields[0]
	}

	switch {
	case body == "/if":
		tok.Type = TokenIfClose

	case body == "/each":
		tok.Type = TokenEachClose

	case directive == "#if":
		cond := strings.TrimSpace(strings.TrimPrefix(body, "#if"))
		if len(cond) == 0 {
			tok.Type = TokenText
			tok.Malformed = true
			break
		}
		tok.Type = TokenIfOpen
		tok.Path = cond

	case directive == "#each":
		clause := strings.TrimSpace(strings.TrimPrefix(body, "#each"))
		source, item, ok := splitEachClause(clause)
		if !ok {
			tok.Type = TokenText
			tok.Malformed = true
			break
		}
		tok.Type = TokenEachOpen
		tok.Path = source
		tok.ItemName = item

	case strings.HasPrefix(body, ">"):
		tok.Type = TokenSplice
		tok.Path = strings.TrimSpace(strings.TrimPrefix(body, ">"))

	default:
		// anything else marker-shaped reads as a variable reference;
		// bodies that are not valid dotted paths degrade to empty text
		// during rendering and are flagged by Validate
		tok.Type = TokenVarRef
		tok.Path = body
	}

	return tok
}

func splitEachClause(clause string) (source string, item string, ok bool) {
	fields := strings.Fields(clause)
	if len(fields) != 3 || fields[1] != "as" {
		return "", "", false
	}
	if !IsPath(fields[0]) || !pathRegexp.MatchString(fields[2]) || strings.Contains(fields[2], ".") {
		return "", "", false
	}
	return fields[0], fields[2], true
}

// IsPath reports whether s is a well-formed dotted path.
func IsPath(s string) bool {
	return pathRegexp.MatchString(s)
}

func (t *Tokenizer) newPosition(line int) *filepos.Position {
	pos := filepos.NewPosition(line)
	pos.SetFile(t.associatedName)
	return pos
}
