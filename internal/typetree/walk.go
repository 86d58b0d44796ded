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

package typetree

// Visitor receives the begin/name/end event triple for every Node visited
// by Walk. It is the minimal surface typetree needs from a consumer; the
// full event sink contract (internal/sink.EventSink) is a superset of it.
type Visitor interface {
	BeginType(kind Kind, specifiers Specifiers)
	TypeName(name string)
	EndType()
}

// Walk emits a begin/[name]/end event triple for n and recurses into its
// children in source order, matching the reference TypeNodeWriter visitor:
// pointers and references wrap one base type, templates interleave a name
// with N argument subtrees, and functions interleave a return type with N
// argument subtrees.
func Walk(n *Node, v Visitor) {
	if n == nil {
		return
	}
	v.BeginType(n.Kind, n.Specifiers)
	switch n.Kind {
	case KindPointer, KindReference, KindLReference:
		Walk(n.Base, v)

	case KindLiteral, KindConstructor, KindDestructor, KindVariadic:
		v.TypeName(n.literalName())

	case KindTemplate:
		v.TypeName(n.TemplateName)
		for _, arg := range n.TemplateArgs {
			Walk(arg, v)
		}

	case KindFunction, KindFunctionPointer:
		if n.FuncName != "" {
			v.TypeName(n.FuncName)
		}
		Walk(n.Returns, v)
		for _, arg := range n.Args {
			Walk(arg.Type, v)
		}
	}
	v.EndType()
}
