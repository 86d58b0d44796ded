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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTokenKinds(t *testing.T) {
	testCases := []struct {
		name         string
		input        string
		expectedKind TokenKind
		expectedText string
	}{
		{"identifier", "foo_Bar123", TokenIdentifier, "foo_Bar123"},
		{"decimal int", "42", TokenConst, "42"},
		{"hex int", "0x2A", TokenConst, "0x2A"},
		{"float", "3.14", TokenConst, "3.14"},
		{"string", `"hello"`, TokenConst, "hello"},
		{"symbol double colon", "::", TokenSymbol, "::"},
		{"symbol arrow", "->", TokenSymbol, "->"},
		{"symbol single", "+", TokenSymbol, "+"},
		{"eof", "", TokenEOF, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			lx := NewLexer([]byte(tc.input))
			tok := lx.GetToken()
			assert.Equal(t, tc.expectedKind, tok.Kind)
			assert.Equal(t, tc.expectedText, tok.Text)
		})
	}
}

func TestIntegerOverflowPromotion(t *testing.T) {
	lx := NewLexer([]byte("4294967296"))
	tok := lx.GetToken()
	assert.Equal(t, TokenConst, tok.Kind)
	assert.Equal(t, ConstInt64, tok.Const)
}

func TestUnsignedSuffixPromotesOnOverflow(t *testing.T) {
	lx := NewLexer([]byte("4294967295u"))
	tok := lx.GetToken()
	assert.Equal(t, ConstUint32, tok.Const)

	lx2 := NewLexer([]byte("4294967296u"))
	tok2 := lx2.GetToken()
	assert.Equal(t, ConstUint64, tok2.Const)
}

func TestUngetTokenRewindsOnce(t *testing.T) {
	lx := NewLexer([]byte("foo bar"))
	mark := lx.Mark()
	first := lx.GetToken()
	assert.Equal(t, "foo", first.Text)

	lx.UngetToken()
	again := lx.GetToken()
	assert.Equal(t, first, again)

	lx.Reset(mark)
	assert.Equal(t, mark, lx.Mark())
}

func TestMatchSymbolSeparateAngles(t *testing.T) {
	lx := NewLexer([]byte(">>"))
	assert.False(t, lx.MatchSymbol(">>", true))
	assert.True(t, lx.MatchSymbol(">", true))
	assert.True(t, lx.MatchSymbol(">", true))
}

func TestLineCommentFusion(t *testing.T) {
	src := "// first line\n// second line\nint x;"
	lx := NewLexer([]byte(src))
	lx.GetLeadingChar()
	c, ok := lx.TakeComment()
	assert.True(t, ok)
	assert.Equal(t, "first line\nsecond line", c.Text)
	assert.Equal(t, 1, c.StartLine)
	assert.Equal(t, 2, c.EndLine)
}

func TestLineCommentBlankLineBreaksFusion(t *testing.T) {
	src := "// first\n\n// second\n"
	lx := NewLexer([]byte(src))
	lx.GetLeadingChar()
	c, ok := lx.TakeComment()
	assert.True(t, ok)
	assert.Equal(t, "second", c.Text)
}

func TestBlockCommentStripsPadding(t *testing.T) {
	src := "/*\n * line one\n * line two\n */\nint x;"
	lx := NewLexer([]byte(src))
	lx.GetLeadingChar()
	c, ok := lx.TakeComment()
	assert.True(t, ok)
	assert.Equal(t, "\nline one\nline two", c.Text)
}

func TestMacroCallElided(t *testing.T) {
	lx := NewLexer([]byte("FOO(a, b) int"))
	lx.AddMacro("FOO")
	tok := lx.GetToken()
	assert.Equal(t, TokenIdentifier, tok.Kind)
	assert.Equal(t, "int", tok.Text)
}

func TestMacroParsingDisabledDuringDefine(t *testing.T) {
	lx := NewLexer([]byte("FOO(a, b)"))
	lx.AddMacro("FOO")
	lx.SetMacroParsing(false)
	tok := lx.GetToken()
	assert.Equal(t, TokenIdentifier, tok.Kind)
	assert.Equal(t, "FOO", tok.Text)
}

func TestRequireSymbolRecordsError(t *testing.T) {
	lx := NewLexer([]byte("foo"))
	ok := lx.RequireSymbol(";")
	assert.False(t, ok)
	assert.Error(t, lx.GetError())
}

func TestTrueFalseReclassifyAsBoolConst(t *testing.T) {
	for _, name := range []string{"true", "false"} {
		lx := NewLexer([]byte(name))
		tok := lx.GetToken()
		assert.Equal(t, TokenConst, tok.Kind)
		assert.Equal(t, ConstBool, tok.Const)
		assert.Equal(t, name, tok.Text)
	}
}

func TestBitwiseNotAssignSymbol(t *testing.T) {
	lx := NewLexer([]byte("~="))
	tok := lx.GetToken()
	assert.Equal(t, TokenSymbol, tok.Kind)
	assert.Equal(t, "~=", tok.Text)
}

func TestLeadingSignBeforeDigitIsOneConstToken(t *testing.T) {
	lx := NewLexer([]byte("-1"))
	tok := lx.GetToken()
	assert.Equal(t, TokenConst, tok.Kind)
	assert.Equal(t, "-1", tok.Text)

	lx2 := NewLexer([]byte("+5"))
	tok2 := lx2.GetToken()
	assert.Equal(t, TokenConst, tok2.Kind)
	assert.Equal(t, "+5", tok2.Text)
}

func TestBareTildeStillTokenizedAlone(t *testing.T) {
	lx := NewLexer([]byte("~x"))
	tok := lx.GetToken()
	assert.Equal(t, TokenSymbol, tok.Kind)
	assert.Equal(t, "~", tok.Text)
}
