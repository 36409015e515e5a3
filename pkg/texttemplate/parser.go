// Copyright 2024 The Docweave Authors.
// SPDX-License-Identifier: Apache-2.0

package texttemplate

import (
	"fmt"
)

type Parser struct {
	tokenizer *Tokenizer
}

func NewParser() *Parser {
	return &Parser{tokenizer: NewTokenizer()}
}

// Parse builds the block tree for data. Parsing is tolerant and cannot fail:
// unterminated block openings, dangling closings, and malformed markers all
// become literal text runs (Validate reports them as syntax errors).
func (p *Parser) Parse(data []byte, associatedName string) *NodeRoot {
	tokens := p.tokenizer.Tokenize(data, associatedName)
	return &NodeRoot{Items: p.parseTokens(tokens)}
}

func (p *Parser) parseTokens(tokens []Token) []Node {
	var nodes []Node

	for i := 0; i < len(tokens); {
		tok := tokens[i]

		switch tok.Type {
		case TokenText:
			nodes = append(nodes, &TextRun{Position: tok.Position, Content: tok.Content})
			i++

		case TokenVarRef:
			nodes = append(nodes, &VarRef{Position: tok.Position, Path: tok.Path})
			i++

		case TokenSplice:
			nodes = append(nodes, &SpliceMarker{Position: tok.Position, Name: tok.Path, Content: tok.Content})
			i++

		case TokenIfOpen:
			closeIdx := MatchingClose(tokens, i)
			if closeIdx == -1 {
				nodes = append(nodes, &TextRun{Position: tok.Position, Content: tok.Content})
				i++
				break
			}
			nodes = append(nodes, &IfBlock{
				Position: tok.Position,
				Cond:     tok.Path,
				Body:     p.parseTokens(tokens[i+1 : closeIdx]),
			})
			i = closeIdx + 1

		case TokenEachOpen:
			closeIdx := MatchingClose(tokens, i)
			if closeIdx == -1 {
				nodes = append(nodes, &TextRun{Position: tok.Position, Content: tok.Content})
				i++
				break
			}
			nodes = append(nodes, &EachBlock{
				Position: tok.Position,
				Source:   tok.Path,
				ItemName: tok.ItemName,
				Body:     p.parseTokens(tokens[i+1 : closeIdx]),
			})
			i = closeIdx + 1

		case TokenIfClose, TokenEachClose:
			// dangling closing marker
			nodes = append(nodes, &TextRun{Position: tok.Position, Content: tok.Content})
			i++

		default:
			panic(fmt.Sprintf("unknown token type %d", tok.Type))
		}
	}

	return nodes
}
