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

// RestOfLine consumes raw bytes (no tokenizing) up to but not including the
// next newline, honoring a trailing backslash as a line-continuation the
// way the C preprocessor does. It is used for directive bodies whose
// grammar the regular tokenizer does not need to understand, such as a
// #include path or a #define replacement list.
func (lx *Lexer) RestOfLine() string {
	begin := lx.pos.Offset
	for {
		b, ok := lx.peekByte()
		if !ok {
			break
		}
		if b == '\\' {
			if n1, ok1 := lx.peekAt(1); ok1 && n1 == '\n' {
				lx.advance(2)
				continue
			}
		}
		if b == '\n' {
			break
		}
		lx.advance(1)
	}
	return strings.TrimSpace(string(lx.data[begin:lx.pos.Offset]))
}

// SkipLine discards the remainder of the current line, used for directives
// whose body this parser does not model (#pragma, #error, and the like).
func (lx *Lexer) SkipLine() { lx.RestOfLine() }

// CurrentLine returns the 1-based line the lexer is currently positioned on.
func (lx *Lexer) CurrentLine() int { return lx.pos.Line }

// SkipStatement discards tokens up to and including the next top-level ';'
// or '}', honoring nested (), [] and {} so a semicolon inside e.g. a
// default-argument initializer does not end the statement early. Used by
// declaration shapes this parser recognizes but does not need to model in
// full (using-directives, friend declarations).
func (lx *Lexer) SkipStatement() {
	depth := 0
	for {
		tok := lx.GetToken()
		if tok.IsEOF() {
			return
		}
		if tok.Kind != TokenSymbol {
			continue
		}
		switch tok.Text {
		case "(", "[", "{":
			depth++
		case ")", "]":
			depth--
		case "}":
			if depth == 0 {
				// Unmatched close: belongs to an enclosing scope we did
				// not open ourselves, so this statement ends here.
				return
			}
			depth--
			if depth == 0 {
				// Closed a brace we opened ourselves back down to the
				// top level -- a function body ends right here, with no
				// further semicolon expected.
				return
			}
		case ";":
			if depth == 0 {
				return
			}
		}
	}
}
