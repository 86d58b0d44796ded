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
	"fmt"
	"strings"

	"github.com/jendo42/reflectdb/internal/lexer"
)

// parseDirective handles one preprocessor line, having already consumed the
// leading '#'.
func (p *Parser) parseDirective() error {
	name, ok := p.lx.RequireIdentifier()
	if !ok {
		p.lx.SkipLine()
		return nil
	}

	switch name {
	case "include":
		p.sink.Include(strings.TrimSpace(p.lx.RestOfLine()))
		return nil

	case "define":
		return p.parseDefine()

	case "undef":
		if ident, ok := p.lx.RequireIdentifier(); ok {
			delete(p.macros, ident)
		}
		p.lx.SkipLine()
		return nil

	case "if":
		taken, err := p.evalCondition(p.lx.RestOfLine())
		if err != nil {
			return err
		}
		return p.parseConditionalGroup(taken)

	case "ifdef":
		ident, _ := p.lx.RequireIdentifier()
		_, defined := p.macros[ident]
		p.lx.SkipLine()
		return p.parseConditionalGroup(defined)

	case "ifndef":
		ident, _ := p.lx.RequireIdentifier()
		_, defined := p.macros[ident]
		p.lx.SkipLine()
		return p.parseConditionalGroup(!defined)

	case "pragma", "error", "warning", "line":
		p.lx.SkipLine()
		return nil

	default:
		p.lx.SkipLine()
		return nil
	}
}

// parseDefine records a macro name (and, if given, an integer value usable
// in #if expressions) and registers it with the lexer so later occurrences
// of a function-like macro invocation are elided rather than tokenized.
func (p *Parser) parseDefine() error {
	name, ok := p.lx.RequireIdentifier()
	if !ok {
		p.lx.SkipLine()
		return nil
	}

	p.lx.SetMacroParsing(false)
	body := p.lx.RestOfLine()
	p.lx.SetMacroParsing(true)

	p.lx.AddMacro(name)
	body = strings.TrimSpace(body)
	if v, err := parseIntLiteral(body); err == nil && body != "" {
		p.macros[name] = v
	} else if body == "" {
		p.macros[name] = 1
	} else {
		p.macros[name] = 0
	}
	return nil
}

// parseConditionalGroup parses the body of an #if/#ifdef/#ifndef group: the
// taken branch's statements are parsed normally, every other branch's
// tokens are discarded without being interpreted, matching the reference
// SkipDeclaration behavior for untaken preprocessor branches.
func (p *Parser) parseConditionalGroup(takenSoFar bool) error {
	anyTaken := false
	taken := takenSoFar

	for {
		if taken && !anyTaken {
			anyTaken = true
			if err := p.parseStatements(p.isDirectiveKeyword); err != nil {
				return err
			}
		} else {
			p.skipUntilDirective()
		}

		mark := p.lx.Mark()
		if !p.lx.MatchSymbol("#", false) {
			return fmt.Errorf("expected #elif/#else/#endif")
		}
		kw, _ := p.lx.RequireIdentifier()
		switch kw {
		case "elif":
			cond, err := p.evalCondition(p.lx.RestOfLine())
			if err != nil {
				return err
			}
			taken = !anyTaken && cond
			continue
		case "else":
			p.lx.SkipLine()
			taken = !anyTaken
			continue
		case "endif":
			p.lx.SkipLine()
			return nil
		default:
			p.lx.Reset(mark)
			return fmt.Errorf("unexpected directive %q inside conditional group", kw)
		}
	}
}

// isDirectiveKeyword reports whether a peeked directive name closes the
// currently taken #if/#ifdef/#ifndef branch.
func (p *Parser) isDirectiveKeyword(name string) bool {
	return name == "elif" || name == "else" || name == "endif"
}

// skipUntilDirective discards tokens of an untaken branch until it reaches
// the next '#elif'/'#else'/'#endif' at the same nesting depth, correctly
// skipping over any nested #if group without interpreting it.
func (p *Parser) skipUntilDirective() {
	depth := 0
	for {
		mark := p.lx.Mark()
		tok := p.lx.GetToken()
		if tok.IsEOF() {
			return
		}
		if tok.Kind != lexer.TokenSymbol || tok.Text != "#" {
			continue
		}
		kw, _ := p.lx.RequireIdentifier()
		switch kw {
		case "if", "ifdef", "ifndef":
			depth++
			p.lx.SkipLine()
		case "elif", "else":
			if depth == 0 {
				p.lx.Reset(mark)
				return
			}
			p.lx.SkipLine()
		case "endif":
			if depth == 0 {
				p.lx.Reset(mark)
				return
			}
			depth--
			p.lx.SkipLine()
		default:
			p.lx.SkipLine()
		}
	}
}

// evalCondition parses and evaluates a #if/#elif condition expression
// against the macros defined so far.
func (p *Parser) evalCondition(text string) (bool, error) {
	cp := &condParser{lx: lexer.NewLexer([]byte(text))}
	expr, err := cp.parseOr()
	if err != nil {
		return false, err
	}
	v, err := expr.Eval(p.macros)
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// condParser is a small precedence-climbing parser over the text of one
// #if/#elif line, built on its own throwaway Lexer.
type condParser struct{ lx *lexer.Lexer }

func (cp *condParser) parseOr() (condExpr, error) {
	left, err := cp.parseAnd()
	if err != nil {
		return nil, err
	}
	for cp.lx.MatchSymbol("||", false) {
		right, err := cp.parseAnd()
		if err != nil {
			return nil, err
		}
		left = exprOr{l: left, r: right}
	}
	return left, nil
}

func (cp *condParser) parseAnd() (condExpr, error) {
	left, err := cp.parseCompare()
	if err != nil {
		return nil, err
	}
	for cp.lx.MatchSymbol("&&", false) {
		right, err := cp.parseCompare()
		if err != nil {
			return nil, err
		}
		left = exprAnd{l: left, r: right}
	}
	return left, nil
}

func (cp *condParser) parseCompare() (condExpr, error) {
	left, err := cp.parseUnary()
	if err != nil {
		return nil, err
	}
	for _, op := range []string{"==", "!=", "<=", ">=", "<", ">"} {
		if cp.lx.MatchSymbol(op, false) {
			right, err := cp.parseUnary()
			if err != nil {
				return nil, err
			}
			return exprCompareOp(left, op, right), nil
		}
	}
	return left, nil
}

func (cp *condParser) parseUnary() (condExpr, error) {
	if cp.lx.MatchSymbol("!", false) {
		x, err := cp.parseUnary()
		if err != nil {
			return nil, err
		}
		return exprNot{x: x}, nil
	}
	if cp.lx.MatchSymbol("(", false) {
		inner, err := cp.parseOr()
		if err != nil {
			return nil, err
		}
		cp.lx.RequireSymbol(")")
		return inner, nil
	}
	if cp.lx.MatchIdentifier("defined") {
		paren := cp.lx.MatchSymbol("(", false)
		name, ok := cp.lx.RequireIdentifier()
		if !ok {
			return nil, fmt.Errorf("expected identifier after defined")
		}
		if paren {
			cp.lx.RequireSymbol(")")
		}
		return exprDefined{name: name}, nil
	}

	tok := cp.lx.GetToken()
	switch tok.Kind {
	case lexer.TokenIdentifier:
		return exprIdent{name: tok.Text}, nil
	case lexer.TokenConst:
		v, err := parseIntLiteral(tok.Text)
		if err != nil {
			v = 0
		}
		return exprConst{value: v}, nil
	default:
		return exprConst{value: 0}, nil
	}
}
