// Copyright 2024 The Docweave Authors.
// SPDX-License-Identifier: Apache-2.0

package texttemplate

import (
	"fmt"
)

// Validate applies the strict reading of the marker syntax that Render
// tolerates, returning one error per violation: unterminated block openings,
// dangling block closings, malformed block markers, and marker bodies that
// are not well-formed dotted paths. A nil result means the text renders
// without any tolerant degrade.
func Validate(data []byte, associatedName string) []error {
	tokens := NewTokenizer().Tokenize(data, associatedName)

	var errs []error
	matched := map[int]struct{}{}

	for i, tok := range tokens {
		switch tok.Type {
		case TokenIfOpen, TokenEachOpen:
			closeIdx := MatchingClose(tokens, i)
			if closeIdx == -1 {
				errs = append(errs, fmt.Errorf(
					"Unterminated block '%s' (%s)", tok.Content, tok.Position.AsString()))
				continue
			}
			matched[closeIdx] = struct{}{}

			if !IsPath(tok.Path) {
				errs = append(errs, fmt.Errorf(
					"Expected block '%s' to use a dotted path (%s)", tok.Content, tok.Position.AsString()))
			}

		case TokenIfClose, TokenEachClose:
			if _, ok := matched[i]; !ok {
				errs = append(errs, fmt.Errorf(
					"Unexpected closing marker '%s' without a matching opening (%s)", tok.Content, tok.Position.AsString()))
			}

		case TokenVarRef:
			if !IsPath(tok.Path) {
				errs = append(errs, fmt.Errorf(
					"Expected marker '%s' to be a dotted path reference (%s)", tok.Content, tok.Position.AsString()))
			}

		case TokenText:
			if tok.Malformed {
				errs = append(errs, fmt.Errorf(
					"Malformed block marker '%s' (%s)", tok.Content, tok.Position.AsString()))
			}
		}
	}

	return errs
}
