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

import (
	"fmt"
	"strconv"
	"strings"
)

// GetToken returns the next token, applying macro-call elision: if the
// identifier is a registered macro and is immediately followed by '(', the
// whole call (with nested parens honored) is swallowed and GetToken
// recurses for the next real token, matching the reference tokenizer's
// ParseMacro behavior.
func (lx *Lexer) GetToken() Token { return lx.getToken(false) }

// GetTokenSeparateAngles behaves like GetToken but never coalesces a
// multi-char symbol beginning with '>', so that a closing template bracket
// such as `>>` surfaces as two separate `>` tokens.
func (lx *Lexer) GetTokenSeparateAngles() Token { return lx.getToken(true) }

func (lx *Lexer) getToken(separateAngles bool) Token {
	lx.GetLeadingChar()
	lx.lastTokenStart = lx.pos

	b, ok := lx.peekByte()
	if !ok {
		return Token{Kind: TokenEOF, Line: lx.pos.Line}
	}
	startLine := lx.pos.Line

	switch {
	case isIdentStart(b):
		name := lx.scanIdentifier()
		if lx.macroElision && lx.macros[name] {
			mark := lx.pos
			lx.GetLeadingChar()
			if nb, ok := lx.peekByte(); ok && nb == '(' {
				lx.skipMacroCall()
				return lx.getToken(separateAngles)
			}
			lx.pos = mark
		}
		if name == "true" || name == "false" {
			return Token{Kind: TokenConst, Const: ConstBool, Text: name, Line: startLine}
		}
		return Token{Kind: TokenIdentifier, Text: name, Line: startLine}

	case isDigit(b) || (b == '.' && lx.digitFollowsDot()) || ((b == '+' || b == '-') && lx.digitFollowsSign()):
		return lx.scanNumber(startLine)

	case b == '"':
		return lx.scanString(startLine)

	case b == '\'':
		return lx.scanChar(startLine)

	default:
		if sym := matchSymbol(lx.data[lx.pos.Offset:], separateAngles); sym != "" {
			lx.advance(len(sym))
			return Token{Kind: TokenSymbol, Text: sym, Line: startLine}
		}
		lx.advance(1)
		return Token{Kind: TokenSymbol, Text: string(b), Line: startLine}
	}
}

func (lx *Lexer) digitFollowsDot() bool {
	b, ok := lx.peekAt(1)
	return ok && isDigit(b)
}

// digitFollowsSign reports whether the byte right after a leading '+'/'-'
// is a digit, matching the reference tokenizer's unconditional one-token
// lookahead for a signed constant -- it does not consider whether the sign
// is more plausibly a binary operator.
func (lx *Lexer) digitFollowsSign() bool {
	b, ok := lx.peekAt(1)
	return ok && isDigit(b)
}

func (lx *Lexer) scanIdentifier() string {
	begin := lx.pos.Offset
	for {
		b, ok := lx.peekByte()
		if !ok || !isIdentCont(b) {
			break
		}
		lx.advance(1)
	}
	return string(lx.data[begin:lx.pos.Offset])
}

// skipMacroCall consumes `(...)` honoring nested parens and quoted
// arguments, but never emits begin/argument/end events for it -- matching
// the reference tokenizer, whose macro-call emission calls are all dead
// code.
func (lx *Lexer) skipMacroCall() {
	depth := 0
	for {
		b, ok := lx.peekByte()
		if !ok {
			return
		}
		switch b {
		case '(':
			depth++
			lx.advance(1)
		case ')':
			depth--
			lx.advance(1)
			if depth == 0 {
				return
			}
		case '"':
			lx.scanString(lx.pos.Line)
		case '\'':
			lx.scanChar(lx.pos.Line)
		default:
			lx.advance(1)
		}
	}
}

// scanNumber scans an integer or floating literal and classifies it, doing
// the same overflow promotion as the reference tokenizer: an unsuffixed or
// 'u'-suffixed integer literal that does not fit in 32 bits promotes from
// ConstInt32/ConstUint32 to ConstInt64/ConstUint64 instead of erroring.
func (lx *Lexer) scanNumber(startLine int) Token {
	begin := lx.pos.Offset
	if b, ok := lx.peekByte(); ok && (b == '+' || b == '-') {
		lx.advance(1)
	}
	isFloat := false
	expSeen := false

	if b, ok := lx.peekByte(); ok && b == '0' {
		if n1, ok1 := lx.peekAt(1); ok1 && (n1 == 'x' || n1 == 'X') {
			lx.advance(2)
			for {
				b, ok := lx.peekByte()
				if !ok || !isHexDigit(b) {
					break
				}
				lx.advance(1)
			}
			return lx.finishInteger(begin, startLine)
		}
	}

	for {
		b, ok := lx.peekByte()
		if !ok {
			break
		}
		if isDigit(b) {
			lx.advance(1)
			continue
		}
		if b == '.' && !isFloat {
			isFloat = true
			lx.advance(1)
			continue
		}
		if (b == 'e' || b == 'E') && !expSeen {
			isFloat = true
			expSeen = true
			lx.advance(1)
			if b, ok := lx.peekByte(); ok && (b == '+' || b == '-') {
				lx.advance(1)
			}
			continue
		}
		break
	}

	if isFloat {
		text := string(lx.data[begin:lx.pos.Offset])
		for {
			b, ok := lx.peekByte()
			if !ok || (b != 'f' && b != 'F' && b != 'l' && b != 'L') {
				break
			}
			lx.advance(1)
		}
		return Token{Kind: TokenConst, Const: ConstFloat, Text: text, Line: startLine}
	}
	return lx.finishInteger(begin, startLine)
}

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func (lx *Lexer) finishInteger(begin int, startLine int) Token {
	digits := string(lx.data[begin:lx.pos.Offset])

	unsigned := false
	long := false
	for {
		b, ok := lx.peekByte()
		if !ok {
			break
		}
		switch b {
		case 'u', 'U':
			unsigned = true
			lx.advance(1)
			continue
		case 'l', 'L':
			long = true
			lx.advance(1)
			continue
		}
		break
	}

	if unsigned {
		v, err := strconv.ParseUint(strings.TrimPrefix(digits, "+"), 0, 64)
		if err != nil {
			v = 0
		}
		kind := ConstUint32
		if long || v > 0xFFFFFFFF {
			kind = ConstUint64
		}
		return Token{Kind: TokenConst, Const: kind, Text: digits, Line: startLine}
	}

	v, err := strconv.ParseInt(digits, 0, 64)
	if err != nil {
		// Does not fit signed 64 (or is malformed): classified as unsigned
		// 64 without a second parse, matching the reference tokenizer's
		// try-signed-then-unsigned promotion.
		return Token{Kind: TokenConst, Const: ConstUint64, Text: digits, Line: startLine}
	}
	kind := ConstInt32
	if long || v > 0x7FFFFFFF || v < -0x80000000 {
		kind = ConstInt64
	}
	return Token{Kind: TokenConst, Const: kind, Text: digits, Line: startLine}
}

func (lx *Lexer) scanString(startLine int) Token {
	lx.advance(1) // opening quote
	var sb strings.Builder
	for {
		b, ok := lx.peekByte()
		if !ok || b == '"' {
			lx.advance(1)
			break
		}
		if b == '\\' {
			lx.advance(1)
			if e, ok := lx.peekByte(); ok {
				sb.WriteByte(e)
				lx.advance(1)
			}
			continue
		}
		sb.WriteByte(b)
		lx.advance(1)
	}
	return Token{Kind: TokenConst, Const: ConstString, Text: sb.String(), Line: startLine}
}

func (lx *Lexer) scanChar(startLine int) Token {
	lx.advance(1) // opening quote
	var v int32
	if b, ok := lx.peekByte(); ok {
		if b == '\\' {
			lx.advance(1)
			if e, ok := lx.peekByte(); ok {
				v = int32(e)
				lx.advance(1)
			}
		} else {
			v = int32(b)
			lx.advance(1)
		}
	}
	if b, ok := lx.peekByte(); ok && b == '\'' {
		lx.advance(1)
	}
	return Token{Kind: TokenConst, Const: ConstInt32, Text: strconv.Itoa(int(v)), Line: startLine}
}

// UngetToken rewinds the lexer to the start of the most recently returned
// token. There is no stack: a second call without an intervening GetToken
// has no further effect, matching the position-based unget of the
// reference tokenizer.
func (lx *Lexer) UngetToken() { lx.pos = lx.lastTokenStart }

// MatchIdentifier consumes the next token if it is the identifier name,
// otherwise leaves the lexer position unchanged.
func (lx *Lexer) MatchIdentifier(name string) bool {
	mark := lx.Mark()
	tok := lx.GetToken()
	if tok.Kind == TokenIdentifier && tok.Text == name {
		return true
	}
	lx.Reset(mark)
	return false
}

// MatchSymbol consumes the next token if it is the symbol sym, otherwise
// leaves the lexer position unchanged. separateAngles is forwarded to
// GetToken so matching a lone '>' does not eat half of a `>>` that closes
// two nested template argument lists.
func (lx *Lexer) MatchSymbol(sym string, separateAngles bool) bool {
	mark := lx.Mark()
	tok := lx.getToken(separateAngles)
	if tok.Kind == TokenSymbol && tok.Text == sym {
		return true
	}
	lx.Reset(mark)
	return false
}

// RequireIdentifier consumes the next token if it is an identifier,
// returning its name, or records an error and returns false.
func (lx *Lexer) RequireIdentifier() (string, bool) {
	tok := lx.GetToken()
	if tok.Kind == TokenIdentifier {
		return tok.Text, true
	}
	lx.UngetToken()
	lx.setError("expected identifier, got %q", tok.Text)
	return "", false
}

// RequireSymbol consumes the next token if it equals sym, or records an
// error and returns false.
func (lx *Lexer) RequireSymbol(sym string) bool {
	if lx.MatchSymbol(sym, false) {
		return true
	}
	lx.setError("expected %q", sym)
	return false
}

func (lx *Lexer) setError(format string, args ...any) {
	if lx.err != nil {
		return
	}
	lx.err = fmt.Errorf("ParserError: %d:0: %s", lx.pos.Line, fmt.Sprintf(format, args...))
}
