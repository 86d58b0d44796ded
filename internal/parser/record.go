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
	"github.com/jendo42/reflectdb/internal/sink"
	"github.com/jendo42/reflectdb/internal/typetree"
)

// parseRecord parses a class/struct/union declaration: a forward
// declaration (`class Foo;`), a definition with an optional base-class
// list and body, or a definition immediately followed by one or more
// declarator names giving it as an anonymous member's type
// (`struct { int x; } point;`).
func (p *Parser) parseRecord(declLine int, kind sink.ScopeKind) error {
	name, ok := p.lx.RequireIdentifier()
	if !ok {
		name = p.generateUnnamedIdentifier(kind.String())
	}

	if p.lx.MatchSymbol(";", false) {
		p.emitPendingComment(declLine)
		p.emitCurrentAccess()
		p.sink.BeginClass(declLine, name, kind)
		p.sink.EndClass(name, true)
		return nil
	}

	p.emitPendingComment(declLine)
	p.emitCurrentAccess()
	p.sink.BeginClass(declLine, name, kind)
	p.pushNamedScope(kind, name)

	if p.lx.MatchSymbol(":", false) {
		for {
			access := p.skipBaseAccessSpecifier()
			p.sink.Access(access)
			p.parseTypeNode()
			p.sink.BaseType()
			if p.lx.MatchSymbol(",", false) {
				continue
			}
			break
		}
	}

	if p.lx.RequireSymbol("{") {
		if err := p.parseStatements(func(string) bool { return false }); err != nil {
			return err
		}
		p.lx.RequireSymbol("}")
	}

	p.popScope()
	p.sink.EndClass(name, false)

	return p.parseTrailingDeclarators(declLine, name)
}

// skipBaseAccessSpecifier consumes an optional access-specifier/"virtual"
// prefix on one base-class list entry (`public Base`, `private virtual
// Base`) and returns the access it names, defaulting to private
// regardless of the enclosing record's own kind -- matching the reference
// ParseClass base-list loop, where an unlabelled base is always private
// even inside a struct/union.
func (p *Parser) skipBaseAccessSpecifier() sink.AccessKind {
	access := sink.AccessPrivate
	for {
		switch {
		case p.lx.MatchIdentifier("public"):
			access = sink.AccessPublic
		case p.lx.MatchIdentifier("private"):
			access = sink.AccessPrivate
		case p.lx.MatchIdentifier("protected"):
			access = sink.AccessProtected
		case p.lx.MatchIdentifier("virtual"):
		default:
			return access
		}
	}
}

// parseTrailingDeclarators handles `struct { ... } a, b;` -- one or more
// property declarations whose type is the record just closed, rather than
// a named type the way an ordinary property declaration names its type.
func (p *Parser) parseTrailingDeclarators(declLine int, recordName string) error {
	if p.lx.MatchSymbol(";", false) {
		return nil
	}
	for {
		name, ok := p.lx.RequireIdentifier()
		if !ok {
			break
		}
		p.sink.BeginProperty(declLine, name, typetree.Specifiers{})
		typetree.Walk(typetree.NewLiteral(recordName), p.sink)
		p.parseArraySuffix()
		p.sink.EndProperty(name)
		if !p.lx.MatchSymbol(",", false) {
			break
		}
	}
	p.lx.RequireSymbol(";")
	return nil
}

// parseArraySuffix consumes any number of trailing `[N]`/`[]` array
// subscripts on a declarator, reporting each to the sink as it is seen.
func (p *Parser) parseArraySuffix() {
	for p.lx.MatchSymbol("[", false) {
		size := p.captureUntilAny("]")
		p.lx.RequireSymbol("]")
		p.sink.ArraySubscript(size)
	}
}
