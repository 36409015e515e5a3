// Copyright 2024 The Docweave Authors.
// SPDX-License-Identifier: Apache-2.0

package texttemplate

import (
	"fmt"
)

// MatchingClose returns the index of the closing token that terminates the
// block opened at openIdx. The scan is depth-aware: each same-construct
// opening past openIdx increments a counter initialized to 1, each
// same-construct closing decrements it, and the closing that brings the
// counter to 0 is the true match. Conditionals and loops use independent
// marker vocabularies, so an #if scan never counts #each markers and vice
// versa. Returns -1 for an unterminated block.
func MatchingClose(tokens []Token, openIdx int) int {
	var closeType TokenType

	openType := tokens[openIdx].Type
	switch openType {
	case TokenIfOpen:
		closeType = TokenIfClose
	case TokenEachOpen:
		closeType = TokenEachClose
	default:
		panic(fmt.Sprintf("token %d is not a block opening (type %d)", openIdx, openType))
	}

	depth := 1
	for i := openIdx + 1; i < len(tokens); i++ {
		switch tokens[i].Type {
		case openType:
			depth++
		case closeType:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
