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

// Package typetree models C++ type expressions as a flat Go sum type
// instead of a class hierarchy: one Node struct tagged by Kind, dispatched
// with a plain switch in Walk. There are no vtables and no interface per
// node kind -- a Kind value and a handful of kind-specific fields are
// enough to represent every shape the parser builds.
package typetree

import "strings"

// Kind tags which shape a Node holds.
type Kind int

const (
	KindNone Kind = iota
	KindPointer
	KindReference
	KindLReference // rvalue reference (T&&)
	KindLiteral
	KindTemplate
	KindFunction
	KindVariadic
	KindConstructor
	KindDestructor
	KindFunctionPointer
)

func (k Kind) String() string {
	switch k {
	case KindPointer:
		return "pointer"
	case KindReference:
		return "reference"
	case KindLReference:
		return "rvalue-reference"
	case KindLiteral:
		return "literal"
	case KindTemplate:
		return "template"
	case KindFunction:
		return "function"
	case KindVariadic:
		return "variadic"
	case KindConstructor:
		return "constructor"
	case KindDestructor:
		return "destructor"
	case KindFunctionPointer:
		return "function-pointer"
	default:
		return "none"
	}
}

// Signedness mirrors SignednessSpecifier.
type Signedness int

const (
	SignNone Signedness = iota
	SignSigned
	SignUnsigned
)

// String matches the reference implementation's Signedness2String.
func (s Signedness) String() string {
	switch s {
	case SignSigned:
		return "signed"
	case SignUnsigned:
		return "unsigned"
	default:
		return ""
	}
}

// Size mirrors SizeSpecifier.
type Size int

const (
	SizeNone Size = iota
	SizeShort
	SizeLong
	SizeLongLong
)

// String matches the reference implementation's Size2String.
func (s Size) String() string {
	switch s {
	case SizeShort:
		return "short"
	case SizeLong:
		return "long"
	case SizeLongLong:
		return "long long"
	default:
		return ""
	}
}

// Specifiers is the bit-flag set attached to a declaration or type. Its
// ToString order and letter codes are fixed by the reference serializer;
// isDeleted deliberately has no letter code of its own, and a deleted
// function is instead marked with the literal "deleted" in the caller's own
// output -- see typedb.Sink.EndFunction.
type Specifiers struct {
	Inline     bool
	Virtual    bool
	ConstExpr  bool
	Static     bool
	Default    bool
	ConstThis  bool
	Override   bool
	Abstract   bool
	Const      bool
	Volatile   bool
	Mutable    bool
	Deleted    bool
}

// ToString renders the flags set in s as the fixed-order single-letter code
// string used by the reference serializer, e.g. "i v s c" becomes "ivsc".
func (s Specifiers) ToString() string {
	var out []byte
	add := func(set bool, letter byte) {
		if set {
			out = append(out, letter)
		}
	}
	add(s.Inline, 'i')
	add(s.Virtual, 'v')
	add(s.ConstExpr, 'x')
	add(s.Static, 's')
	add(s.Default, 'd')
	add(s.ConstThis, 't')
	add(s.Override, 'o')
	add(s.Abstract, 'a')
	add(s.Const, 'c')
	add(s.Volatile, 'l')
	add(s.Mutable, 'm')
	return string(out)
}

// Argument is one parameter of a Function/FunctionPointer node.
type Argument struct {
	Name string
	Type *Node
}

// Node is a single C++ type expression. Only the fields relevant to Kind
// are populated; the rest are left at their zero value.
type Node struct {
	Kind        Kind
	Specifiers  Specifiers
	Signedness  Signedness
	Size        Size

	// KindLiteral, KindConstructor, KindDestructor, KindVariadic
	Name string

	// KindPointer, KindReference, KindLReference
	Base *Node

	// KindTemplate
	TemplateName string
	TemplateArgs []*Node

	// KindFunction, KindFunctionPointer
	FuncName string
	Returns  *Node
	Args     []*Argument
}

// literalName folds a leaf node's signedness/size specifiers in front of its
// base name, matching the reference ParseTypeNode's declarator string
// ("signed", "unsigned long", "long long int", ...) instead of discarding
// them once Signedness/Size have been recorded.
func (n *Node) literalName() string {
	parts := make([]string, 0, 3)
	if s := n.Signedness.String(); s != "" {
		parts = append(parts, s)
	}
	if s := n.Size.String(); s != "" {
		parts = append(parts, s)
	}
	if n.Name != "" {
		parts = append(parts, n.Name)
	}
	return strings.Join(parts, " ")
}

// NewLiteral builds a leaf type node naming a fundamental or user type.
func NewLiteral(name string) *Node { return &Node{Kind: KindLiteral, Name: name} }

// NewPointer wraps base in a pointer-to node.
func NewPointer(base *Node) *Node { return &Node{Kind: KindPointer, Base: base} }

// NewReference wraps base in an lvalue-reference-to node.
func NewReference(base *Node) *Node { return &Node{Kind: KindReference, Base: base} }

// NewRValueReference wraps base in an rvalue-reference-to node.
func NewRValueReference(base *Node) *Node { return &Node{Kind: KindLReference, Base: base} }
