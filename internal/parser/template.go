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

// parseTemplate parses a `template<...>` parameter list and then the single
// class/function declaration it introduces.
func (p *Parser) parseTemplate(declLine int) error {
	p.lx.RequireSymbol("<")
	p.sink.BeginTemplate()

	if !p.lx.MatchSymbol(">", true) {
		for {
			p.parseTemplateParameter()
			if p.lx.MatchSymbol(",", false) {
				continue
			}
			break
		}
		p.requireAngleClose()
	}
	p.sink.EndTemplate()

	return p.parseStatement()
}

// parseTemplateParameter parses one entry of a template parameter list:
// either a type parameter (`typename T`, `class T = Default`) or a
// non-type parameter (`int N`, `size_t N = 0`). Non-type parameter types
// and default-value expressions are skipped rather than modeled in detail.
func (p *Parser) parseTemplateParameter() {
	if p.lx.MatchIdentifier("typename") || p.lx.MatchIdentifier("class") {
		p.lx.MatchSymbol("...", false)
		name, _ := p.lx.RequireIdentifier()
		hasDefault := p.lx.MatchSymbol("=", false)
		if hasDefault {
			p.parseTypeNode()
		}
		p.sink.TemplateArgument(name, hasDefault)
		return
	}
	if p.lx.MatchIdentifier("template") {
		// A template-template parameter: `template<typename> class T`.
		p.lx.RequireSymbol("<")
		if !p.lx.MatchSymbol(">", true) {
			for {
				p.parseTemplateParameter()
				if p.lx.MatchSymbol(",", false) {
					continue
				}
				break
			}
			p.requireAngleClose()
		}
		p.lx.MatchIdentifier("typename")
		p.lx.MatchIdentifier("class")
		name, _ := p.lx.RequireIdentifier()
		hasDefault := p.lx.MatchSymbol("=", false)
		if hasDefault {
			p.captureUntilAny(",", ">")
		}
		p.sink.TemplateArgument(name, false)
		return
	}

	p.parseTypeNodeNoEmit()
	name, _ := p.lx.RequireIdentifier()
	hasDefault := p.lx.MatchSymbol("=", false)
	if hasDefault {
		p.captureUntilAny(",", ">")
	}
	p.sink.TemplateArgument(name, false)
}
