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

import "github.com/jendo42/reflectdb/internal/typetree"

var cvQualifiers = map[string]func(*typetree.Specifiers){
	"const":    func(s *typetree.Specifiers) { s.Const = true },
	"volatile": func(s *typetree.Specifiers) { s.Volatile = true },
	"mutable":  func(s *typetree.Specifiers) { s.Mutable = true },
}

var storageSpecifiers = map[string]func(*typetree.Specifiers){
	"inline":    func(s *typetree.Specifiers) { s.Inline = true },
	"virtual":   func(s *typetree.Specifiers) { s.Virtual = true },
	"constexpr": func(s *typetree.Specifiers) { s.ConstExpr = true },
	"static":    func(s *typetree.Specifiers) { s.Static = true },
	"explicit":  func(*typetree.Specifiers) {}, // recognized, not surfaced as a letter code
	"friend":    func(*typetree.Specifiers) {},
	"typename":  func(*typetree.Specifiers) {},
}

// parseDeclSpecifiers consumes any number of leading storage-class/cv
// qualifiers, in any order, the way C++ allows. signed/unsigned/short/long
// are left for parseBaseNode.
func (p *Parser) parseDeclSpecifiers() typetree.Specifiers {
	var spec typetree.Specifiers
	for {
		matched := false
		for name, apply := range storageSpecifiers {
			if p.lx.MatchIdentifier(name) {
				apply(&spec)
				matched = true
			}
		}
		for name, apply := range cvQualifiers {
			if p.lx.MatchIdentifier(name) {
				apply(&spec)
				matched = true
			}
		}
		if !matched {
			return spec
		}
	}
}

// baseTypeWords is the reference implementation's g_baseTypes set: the only
// identifiers ParseBaseType accepts after a signed/unsigned/short/long
// modifier.
var baseTypeWords = []string{"void", "bool", "int", "char", "float", "double"}

// elaboratedSpecifiers are the keywords ParseTypeNodeDeclarator admits as an
// optional prefix on a type name (`friend class Foo;`, `typename T::value`).
var elaboratedSpecifiers = []string{"class", "struct", "union", "enum", "typename"}

// matchBaseTypeWord consumes the next identifier only if it is one of
// baseTypeWords, leaving it unconsumed otherwise -- mirroring
// Parser::ParseBaseType's UngetToken-on-mismatch behavior.
func (p *Parser) matchBaseTypeWord() (string, bool) {
	for _, w := range baseTypeWords {
		if p.lx.MatchIdentifier(w) {
			return w, true
		}
	}
	return "", false
}

// parseBaseNode parses the fundamental/named type a declarator then
// modifies with pointers and references: signed/unsigned and short/long
// combine with a following int/char/etc, a bare identifier (or qualified-id
// / template-id) names a user type. It builds the Node but emits nothing --
// emission happens once for the whole declarator, see parseTypeNode.
func (p *Parser) parseBaseNode(spec typetree.Specifiers) *typetree.Node {
	var signedness typetree.Signedness
	var size typetree.Size
	sawModifier := false

loop:
	for {
		switch {
		case p.lx.MatchIdentifier("signed"):
			signedness = typetree.SignSigned
			sawModifier = true
		case p.lx.MatchIdentifier("unsigned"):
			signedness = typetree.SignUnsigned
			sawModifier = true
		case p.lx.MatchIdentifier("short"):
			size = typetree.SizeShort
			sawModifier = true
		case p.lx.MatchIdentifier("long"):
			if size == typetree.SizeLong {
				size = typetree.SizeLongLong
			} else {
				size = typetree.SizeLong
			}
			sawModifier = true
		default:
			break loop
		}
	}

	if sawModifier {
		// `unsigned int`/`long long` consume the following base-type word;
		// a bare `unsigned x;` does not -- the modifier alone is the whole
		// type (implicit int) and x is the declarator name, left for the
		// caller to read.
		name, _ := p.matchBaseTypeWord()
		return &typetree.Node{Kind: typetree.KindLiteral, Specifiers: spec,
			Signedness: signedness, Size: size, Name: name}
	}

	prefix := ""
	for _, kw := range elaboratedSpecifiers {
		if p.lx.MatchIdentifier(kw) {
			prefix = kw
			break
		}
	}

	name, _ := p.lx.RequireIdentifier()
	name = prefix + name
	for p.lx.MatchSymbol("::", false) {
		next, _ := p.lx.RequireIdentifier()
		name = name + "::" + next
	}

	if p.lx.MatchSymbol("<", true) {
		var args []*typetree.Node
		for {
			// Template arguments are walked once, as part of the enclosing
			// declarator's single top-level Walk call; walking them here too
			// would emit each argument's events twice.
			args = append(args, p.parseTypeNodeNoEmit())
			if p.lx.MatchSymbol(",", false) {
				continue
			}
			break
		}
		p.requireAngleClose()
		return &typetree.Node{Kind: typetree.KindTemplate, Specifiers: spec,
			TemplateName: name, TemplateArgs: args}
	}

	return &typetree.Node{Kind: typetree.KindLiteral, Specifiers: spec, Name: name}
}

// requireAngleClose consumes a single '>' even when the lexer sees it as
// the first half of a '>>' closing two nested template argument lists, as
// in `vector<vector<int>>`.
func (p *Parser) requireAngleClose() {
	if !p.lx.MatchSymbol(">", true) {
		p.lx.RequireSymbol(">")
	}
}

// parseTypeNode parses one full type expression -- leading specifiers, base
// type, and any pointer/reference declarator chain -- and emits the whole
// resulting tree to the sink via typetree.Walk before returning it. Walking
// only after the full declarator is known is what lets the outermost
// wrapper's BeginType precede the base type's, even though the base type's
// tokens come first in the source (`int *p`: base type "int" is read
// first, but the emitted tree is pointer-to-int, outer wrapper first).
func (p *Parser) parseTypeNode() *typetree.Node {
	node, _ := p.parseTypeNodeWithSpec()
	return node
}

// parseTypeNodeWithSpec is parseTypeNode but also returns the leading
// declaration-level specifiers (static/inline/constexpr/cv-qualifiers on the
// base type), which a caller building a BeginProperty/EndFunction call needs
// independently of the type string itself -- see Parser.parseDeclaration.
func (p *Parser) parseTypeNodeWithSpec() (*typetree.Node, typetree.Specifiers) {
	spec := p.parseDeclSpecifiers()
	node := p.parseBaseNode(spec)

	for {
		if p.lx.MatchSymbol("*", false) {
			trailing := p.parseDeclSpecifiers()
			node = typetree.NewPointer(node)
			node.Specifiers = trailing
			continue
		}
		if p.lx.MatchSymbol("&&", false) {
			node = typetree.NewRValueReference(node)
			continue
		}
		if p.lx.MatchSymbol("&", false) {
			node = typetree.NewReference(node)
			continue
		}
		break
	}

	typetree.Walk(node, p.sink)
	return node, spec
}

// parseTypeNodeNoEmit behaves like parseTypeNode but does not walk/emit.
// Used for a type that will never itself be the subject of a takeType()
// call -- a nested template argument (the enclosing declarator's own Walk
// already covers it), a non-type template parameter's declared type,
// which this parser does not model beyond skipping its tokens, or the
// target type of a conversion operator, used only for its name.
func (p *Parser) parseTypeNodeNoEmit() *typetree.Node {
	spec := p.parseDeclSpecifiers()
	node := p.parseBaseNode(spec)
	for {
		if p.lx.MatchSymbol("*", false) {
			node = typetree.NewPointer(node)
			continue
		}
		if p.lx.MatchSymbol("&&", false) {
			node = typetree.NewRValueReference(node)
			continue
		}
		if p.lx.MatchSymbol("&", false) {
			node = typetree.NewReference(node)
			continue
		}
		break
	}
	return node
}
