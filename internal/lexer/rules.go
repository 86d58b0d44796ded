// Copyright 2026 EngFlow Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lexer

import "strings"

// multiCharSymbols lists every multi-character C++ operator/punctuator this
// tokenizer coalesces into a single symbol token, longest first so a greedy
// scan never stops one character short ("..." is tried before any
// two-character symbol).
var multiCharSymbols = []string{
	"...",
	"::", "->", "++", "--", "<<", ">>",
	"<=", ">=", "==", "!=", "&&", "||",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "~=",
}

// matchSymbol returns the longest multi-char symbol starting at data, or ""
// if none matches (the caller falls back to a single-character symbol).
//
// separateAngles disables matching any symbol beginning with '>' so that a
// closing template bracket such as `>>` is returned as two separate `>`
// tokens instead of being coalesced into the right-shift operator -- needed
// while parsing nested template argument lists.
func matchSymbol(data []byte, separateAngles bool) string {
	for _, sym := range multiCharSymbols {
		if separateAngles && sym[0] == '>' {
			continue
		}
		if len(data) >= len(sym) && string(data[:len(sym)]) == sym {
			return sym
		}
	}
	return ""
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentCont(b byte) bool {
	return isIdentStart(b) || (b >= '0' && b <= '9')
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n' || b == '\v' || b == '\f'
}

func trimCommentLinePrefix(s string) string {
	s = strings.TrimLeft(s, " \t")
	s = strings.TrimPrefix(s, "*")
	return strings.TrimPrefix(s, " ")
}
