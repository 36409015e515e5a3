// Copyright 2024 The Docweave Authors.
// SPDX-License-Identifier: Apache-2.0

package texttemplate

import (
	"strings"
)

// SpliceParentName is the only splice target the inheritance merge resolves;
// splice markers with any other name stay in the content untouched.
const SpliceParentName = "parent"

// SpliceAncestor replaces every {{> parent}} marker in content with
// ancestor. Content without splice markers is returned unchanged.
func SpliceAncestor(content, ancestor string) string {
	tokens := NewTokenizer().Tokenize([]byte(content), "")

	var result strings.Builder
	for _, tok := range tokens {
		if tok.Type == TokenSplice && tok.Path == SpliceParentName {
			result.WriteString(ancestor)
			continue
		}
		result.WriteString(tok.Content)
	}
	return result.String()
}

// HasSplice reports whether content contains a {{> parent}} marker.
func HasSplice(content string) bool {
	for _, tok := range NewTokenizer().Tokenize([]byte(content), "") {
		if tok.Type == TokenSplice && tok.Path == SpliceParentName {
			return true
		}
	}
	return false
}
