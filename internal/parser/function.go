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

package parser

import (
	"github.com/jendo42/reflectdb/internal/lexer"
	"github.com/jendo42/reflectdb/internal/typetree"
)

// operatorSymbols lists the symbol-only operator names, ordered longest
// first so a greedy MatchSymbol scan never stops on a prefix of a longer
// operator (e.g. must try "<<=" before "<<" before "<").
var operatorSymbols = []string{
	"<<=", ">>=", "->*",
	"==", "!=", "<=", ">=", "<<", ">>", "&&", "||", "++", "--", "->",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=",
	"+", "-", "*", "/", "%", "^", "&", "|", "~", "!", "<", ">", "=", ",",
}

// parseDeclaration parses any declaration that isn't a namespace, using
// directive, friend, typedef, template, enum or record declaration --
// i.e. a property, a free or member function, a constructor, a
// destructor, or an operator overload.
func (p *Parser) parseDeclaration(declLine int) error {
	p.emitCurrentAccess()

	if name, ok := p.tryParseDestructor(); ok {
		return p.parseFunctionTail(declLine, typetree.KindDestructor, name, typetree.Specifiers{})
	}
	if name, ok := p.tryParseConstructor(); ok {
		return p.parseFunctionTail(declLine, typetree.KindConstructor, name, typetree.Specifiers{})
	}

	_, leadSpec := p.parseTypeNodeWithSpec()
	name := p.parseDeclaredName()

	if p.lx.MatchSymbol("(", false) {
		return p.parseFunctionTail(declLine, typetree.KindFunction, name, leadSpec)
	}
	return p.parseProperty(declLine, name, leadSpec)
}

// tryParseDestructor recognizes `~Name(` without consuming anything if it
// doesn't match.
func (p *Parser) tryParseDestructor() (string, bool) {
	mark := p.lx.Mark()
	if !p.lx.MatchSymbol("~", false) {
		return "", false
	}
	name, ok := p.lx.RequireIdentifier()
	if ok && p.lx.MatchSymbol("(", false) {
		return "~" + name, true
	}
	p.lx.Reset(mark)
	return "", false
}

// tryParseConstructor recognizes `EnclosingName(` without consuming
// anything if it doesn't match -- a constructor has no return type and is
// named exactly after its enclosing class/struct/union.
func (p *Parser) tryParseConstructor() (string, bool) {
	record := p.curRecordName()
	if record == "" {
		return "", false
	}
	mark := p.lx.Mark()
	if p.lx.MatchIdentifier(record) && p.lx.MatchSymbol("(", false) {
		return record, true
	}
	p.lx.Reset(mark)
	return "", false
}

// parseDeclaredName reads the name a just-parsed type declares: a plain
// identifier, a qualified out-of-line definition's final segment
// (`Class::method`), or an operator name.
func (p *Parser) parseDeclaredName() string {
	if p.lx.MatchIdentifier("operator") {
		return p.parseOperatorName()
	}
	name, _ := p.lx.RequireIdentifier()
	for p.lx.MatchSymbol("::", false) {
		if p.lx.MatchIdentifier("operator") {
			return p.parseOperatorName()
		}
		next, _ := p.lx.RequireIdentifier()
		name = next
	}
	return name
}

// parseOperatorName parses the operator token following an already
// consumed `operator` keyword and returns the full declared name, e.g.
// "operator==", "operator()", "operator new[]", "operator bool".
func (p *Parser) parseOperatorName() string {
	if p.lx.MatchSymbol("(", false) {
		p.lx.RequireSymbol(")")
		return "operator()"
	}
	if p.lx.MatchSymbol("[", false) {
		p.lx.RequireSymbol("]")
		return "operator[]"
	}
	if p.lx.MatchIdentifier("new") {
		if p.lx.MatchSymbol("[", false) {
			p.lx.RequireSymbol("]")
			return "operator new[]"
		}
		return "operator new"
	}
	if p.lx.MatchIdentifier("delete") {
		if p.lx.MatchSymbol("[", false) {
			p.lx.RequireSymbol("]")
			return "operator delete[]"
		}
		return "operator delete"
	}
	for _, sym := range operatorSymbols {
		if p.lx.MatchSymbol(sym, false) {
			return "operator" + sym
		}
	}
	// Conversion operator: `operator SomeType()`.
	conv := p.parseTypeNodeNoEmit()
	if conv != nil && conv.Name != "" {
		return "operator " + conv.Name
	}
	return "operator"
}

// parseProperty parses the tail of a property declaration after its type
// has already been parsed and walked and its name read: an optional array
// suffix, an optional verbatim-captured initializer, and the terminating
// semicolon.
func (p *Parser) parseProperty(declLine int, name string, leadSpec typetree.Specifiers) error {
	p.emitPendingComment(declLine)
	p.sink.BeginProperty(declLine, name, leadSpec)
	p.parseArraySuffix()
	switch {
	case p.lx.MatchSymbol("=", false):
		p.captureUntilAny(";")
	case p.lx.MatchSymbol("{", false):
		p.skipBalancedBody()
	}
	p.sink.EndProperty(name)
	p.lx.RequireSymbol(";")
	return nil
}

// parseFunctionTail parses the argument list and postfix specifiers of a
// function/constructor/destructor declaration, given its kind and already
// -determined name. The return type, if any, was already parsed, walked
// and pushed onto the done-types buffer by the caller before the name was
// even known; EndFunction's own takeType() call retrieves it.
func (p *Parser) parseFunctionTail(declLine int, kind typetree.Kind, name string, leadSpec typetree.Specifiers) error {
	p.emitPendingComment(declLine)
	p.sink.BeginFunction(declLine, kind, name)

	if !p.lx.MatchSymbol(")", false) {
		for {
			p.parseFunctionArgument()
			if p.lx.MatchSymbol(",", false) {
				continue
			}
			break
		}
		p.lx.RequireSymbol(")")
	}

	spec := p.parsePostfixSpecifiers()
	spec.Inline = spec.Inline || leadSpec.Inline
	spec.Virtual = spec.Virtual || leadSpec.Virtual
	spec.ConstExpr = spec.ConstExpr || leadSpec.ConstExpr
	spec.Static = spec.Static || leadSpec.Static
	p.sink.EndFunction(name, spec)

	if !p.lx.MatchSymbol(";", false) {
		// `= 0`/`= default`/`= delete` were already consumed by
		// parsePostfixSpecifiers; anything other than ';' here is an inline
		// body (or constructor initializer list), skipped whole.
		p.lx.SkipStatement()
	}
	return nil
}

// parseFunctionArgument parses one parameter: its type (walked immediately,
// consumed right back out by FunctionArgument so the done-types buffer
// never holds more than the in-flight argument plus the pending return
// type), an optional name, and a verbatim-captured default value.
func (p *Parser) parseFunctionArgument() {
	if p.lx.MatchSymbol("...", false) {
		p.sink.FunctionArgument("...", "")
		return
	}
	p.parseTypeNode()
	name, _ := p.lx.RequireIdentifier()
	p.parseArraySuffix()
	defaultValue := ""
	if p.lx.MatchSymbol("=", false) {
		defaultValue = p.captureUntilAny(",", ")")
	}
	p.sink.FunctionArgument(name, defaultValue)
}

// parsePostfixSpecifiers parses the trailing qualifiers a function
// declarator can carry after its parameter list: cv-qualification on the
// implicit object parameter, override, noexcept, and the pure/defaulted/
// deleted function-body forms.
func (p *Parser) parsePostfixSpecifiers() typetree.Specifiers {
	var spec typetree.Specifiers

qualifiers:
	for {
		switch {
		case p.lx.MatchIdentifier("const"):
			spec.ConstThis = true
		case p.lx.MatchIdentifier("override"):
			spec.Override = true
		case p.lx.MatchIdentifier("final"):
		case p.lx.MatchIdentifier("noexcept"):
			if p.lx.MatchSymbol("(", false) {
				p.captureUntilAny(")")
				p.lx.RequireSymbol(")")
			}
		default:
			break qualifiers
		}
	}

	if p.lx.MatchSymbol("=", false) {
		switch {
		case p.matchZeroLiteral():
			spec.Abstract = true
		case p.lx.MatchIdentifier("default"):
			spec.Default = true
		case p.lx.MatchIdentifier("delete"):
			spec.Deleted = true
		}
	}
	return spec
}

// skipBalancedBody discards tokens up to and including the '}' matching an
// already-consumed opening '{', used for brace-init property initializers
// (`int x{5};`).
func (p *Parser) skipBalancedBody() {
	depth := 1
	for {
		tok := p.lx.GetToken()
		if tok.IsEOF() {
			return
		}
		if tok.Kind != lexer.TokenSymbol {
			continue
		}
		switch tok.Text {
		case "{":
			depth++
		case "}":
			depth--
			if depth == 0 {
				return
			}
		}
	}
}

// matchZeroLiteral consumes a bare integer literal "0", the pure-virtual
// marker in `virtual void f() = 0;`.
func (p *Parser) matchZeroLiteral() bool {
	mark := p.lx.Mark()
	tok := p.lx.GetToken()
	if tok.Kind == lexer.TokenConst && tok.Text == "0" {
		return true
	}
	p.lx.Reset(mark)
	return false
}
