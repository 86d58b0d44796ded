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

package typedb

import (
	"fmt"
	"strings"

	"github.com/jendo42/reflectdb/internal/typetree"
)

// typeBuilder accumulates one BeginType/TypeName/EndType subtree while it is
// being built. It mirrors TypeData in the reference emitter.
type typeBuilder struct {
	kind       typetree.Kind
	specifiers typetree.Specifiers
	name       string
	children   []*typeBuilder
}

func (b *typeBuilder) String() string {
	var sb strings.Builder
	b.write(&sb)
	return sb.String()
}

func (b *typeBuilder) write(sb *strings.Builder) {
	if spec := b.specifiers.ToString(); spec != "" {
		sb.WriteString(spec)
		sb.WriteByte(' ')
	}
	switch b.kind {
	case typetree.KindPointer:
		sb.WriteString("*")
		writeChild(sb, b.children)
	case typetree.KindReference:
		sb.WriteString("&")
		writeChild(sb, b.children)
	case typetree.KindLReference:
		sb.WriteString("&&")
		writeChild(sb, b.children)
	case typetree.KindTemplate:
		sb.WriteString(b.name)
		sb.WriteByte('<')
		for i, c := range b.children {
			if i > 0 {
				sb.WriteString(", ")
			}
			c.write(sb)
		}
		sb.WriteByte('>')
	case typetree.KindFunction, typetree.KindFunctionPointer:
		sb.WriteString(fmt.Sprintf("%s(...)", b.name))
	default:
		sb.WriteString(b.name)
	}
}

func writeChild(sb *strings.Builder, children []*typeBuilder) {
	if len(children) == 1 {
		children[0].write(sb)
	}
}

// typeStacks.building is the LIFO used by BeginType/TypeName/EndType while a
// single type expression is still being assembled; done is the separate LIFO
// that a fully completed top-level type is pushed onto, waiting for the
// next begin/end*Property, *Function or Typedef call to take it -- the
// "LIFO done types buffer" from the type-tree parser design.
type typeStacks struct {
	building []*typeBuilder
	done     []*typeBuilder
}

func (s *typeStacks) beginType(kind typetree.Kind, specifiers typetree.Specifiers) {
	s.building = append(s.building, &typeBuilder{kind: kind, specifiers: specifiers})
}

func (s *typeStacks) typeName(name string) {
	if len(s.building) == 0 {
		return
	}
	s.building[len(s.building)-1].name = name
}

func (s *typeStacks) endType() {
	if len(s.building) == 0 {
		return
	}
	n := len(s.building) - 1
	top := s.building[n]
	s.building = s.building[:n]

	if len(s.building) > 0 {
		parent := s.building[len(s.building)-1]
		parent.children = append(parent.children, top)
		return
	}
	s.done = append(s.done, top)
}

// takeType pops the most recently completed top-level type. It returns nil
// if no completed type is waiting, as for a constructor or destructor,
// which has no return type.
func (s *typeStacks) takeType() *typeBuilder {
	if len(s.done) == 0 {
		return nil
	}
	n := len(s.done) - 1
	t := s.done[n]
	s.done = s.done[:n]
	return t
}
