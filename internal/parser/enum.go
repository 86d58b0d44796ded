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

import "github.com/jendo42/reflectdb/internal/lexer"

// parseEnum parses `enum [class] Name [: base] { value [= expr], ... };`.
// The reference implementation treats enum value expressions as opaque
// text, so this does the same: everything between '=' and the next ',' or
// '}' is captured verbatim rather than evaluated.
func (p *Parser) parseEnum(declLine int) error {
	isEnumClass := p.lx.MatchIdentifier("class") || p.lx.MatchIdentifier("struct")

	name, ok := p.lx.RequireIdentifier()
	if !ok {
		name = p.generateUnnamedIdentifier("enum")
	}

	base := ""
	if p.lx.MatchSymbol(":", false) {
		base = p.parseEnumBaseName()
	}

	p.emitPendingComment(declLine)
	p.emitCurrentAccess()
	p.sink.BeginEnum(declLine, name, base, isEnumClass)

	if p.lx.MatchSymbol("{", false) {
		for !p.lx.MatchSymbol("}", false) {
			key, ok := p.lx.RequireIdentifier()
			if !ok {
				break
			}
			value := ""
			if p.lx.MatchSymbol("=", false) {
				value = p.captureUntilAny(",", "}")
			}
			p.sink.EnumValue(key, value)
			if !p.lx.MatchSymbol(",", false) {
				p.lx.RequireSymbol("}")
				break
			}
		}
	}
	p.sink.EndEnum(name)
	p.lx.SkipStatement()
	return nil
}

func (p *Parser) parseEnumBaseName() string {
	name, _ := p.lx.RequireIdentifier()
	return name
}

// captureUntilAny returns the raw token text up to (not including) the next
// occurrence of any of the stop symbols, at the current nesting depth.
func (p *Parser) captureUntilAny(stops ...string) string {
	var out string
	depth := 0
	for {
		mark := p.lx.Mark()
		tok := p.lx.GetToken()
		if tok.IsEOF() {
			return out
		}
		if depth == 0 && tok.Kind == lexer.TokenSymbol {
			for _, s := range stops {
				if tok.Text == s {
					p.lx.Reset(mark)
					return out
				}
			}
		}
		if tok.Kind == lexer.TokenSymbol {
			switch tok.Text {
			case "(", "[", "{":
				depth++
			case ")", "]", "}":
				depth--
			}
		}
		if out != "" {
			out += " "
		}
		out += tok.Text
	}
}
