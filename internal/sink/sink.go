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

// Package sink defines the event contract the parser emits declarations
// through, and the adapters that sit between a parsing worker and the
// single real sink instance a program ultimately writes to.
package sink

import "github.com/jendo42/reflectdb/internal/typetree"

// ScopeKind names the kind of record or namespace a Begin/End pair opens.
type ScopeKind int

const (
	ScopeUnknown ScopeKind = iota
	ScopeGlobal
	ScopeNamespace
	ScopeClass
	ScopeStruct
	ScopeUnion
)

// String matches the reference implementation's ScopeType2String exactly,
// including its "unknown" fallback for any value outside the enum.
func (s ScopeKind) String() string {
	switch s {
	case ScopeGlobal:
		return "global"
	case ScopeNamespace:
		return "namespace"
	case ScopeClass:
		return "class"
	case ScopeStruct:
		return "struct"
	case ScopeUnion:
		return "union"
	default:
		return "unknown"
	}
}

// AccessKind is a C++ member access specifier.
type AccessKind int

const (
	AccessPublic AccessKind = iota
	AccessPrivate
	AccessProtected
)

func (a AccessKind) String() string {
	switch a {
	case AccessPrivate:
		return "private"
	case AccessProtected:
		return "protected"
	default:
		return "public"
	}
}

// EventSink is the full contract the parser drives. It is the Go mirror of
// the reference ParserInterface: one begin/end pair per declaration shape,
// plus the typetree.Visitor triple for every type expression encountered.
//
// Implementations must not retain the string arguments past the call
// (they may point into the source buffer) except where the call is
// explicitly documented to hand over ownership.
type EventSink interface {
	typetree.Visitor

	Begin(source string)
	End(source string, errMsg string)

	Include(filename string)
	Comment(text string)
	Access(kind AccessKind)
	Using(hasAssignment bool)
	Friend()

	BeginEnum(startLine int, name string, base string, isEnumClass bool)
	EnumValue(key, value string)
	EndEnum(name string)

	BeginClass(startLine int, name string, kind ScopeKind)
	BaseType()
	EndClass(name string, forwardDecl bool)

	BeginNamespace(name string)
	EndNamespace(name string)

	BeginTemplate()
	TemplateArgument(name string, hasDefaultType bool)
	EndTemplate()

	BeginProperty(startLine int, name string, specifiers typetree.Specifiers)
	ArraySubscript(name string)
	EndProperty(name string)

	BeginFunction(startLine int, kind typetree.Kind, name string)
	FunctionArgument(name string, defaultValue string)
	EndFunction(name string, specifiers typetree.Specifiers)

	BeginTypedef(startLine int, name string)
	EndTypedef(name string)

	BeginMacro(name string)
	MacroArgument(name string)
	EndMacro(name string)
}
