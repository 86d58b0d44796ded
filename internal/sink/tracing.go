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

package sink

import (
	"log"

	"github.com/jendo42/reflectdb/internal/typetree"
)

// Tracing wraps another EventSink and logs one line per call before
// forwarding it. It is what --debug turns on. This is intentionally not a
// full dump of every argument the way the reference DebugParserInterface
// is -- that class is an external collaborator outside this repo's scope.
type Tracing struct {
	target EventSink
}

// NewTracing wraps target with call logging.
func NewTracing(target EventSink) *Tracing { return &Tracing{target: target} }

func (t *Tracing) trace(name string) { log.Printf("sink: %s", name) }

func (t *Tracing) Begin(source string) {
	t.trace("begin " + source)
	t.target.Begin(source)
}
func (t *Tracing) End(source string, errMsg string) {
	t.trace("end " + source)
	t.target.End(source, errMsg)
}
func (t *Tracing) Include(filename string) {
	t.trace("include " + filename)
	t.target.Include(filename)
}
func (t *Tracing) Comment(text string) {
	t.trace("comment")
	t.target.Comment(text)
}
func (t *Tracing) Access(kind AccessKind) {
	t.trace("access " + kind.String())
	t.target.Access(kind)
}
func (t *Tracing) Using(hasAssignment bool) {
	t.trace("using")
	t.target.Using(hasAssignment)
}
func (t *Tracing) Friend() {
	t.trace("friend")
	t.target.Friend()
}
func (t *Tracing) BeginEnum(startLine int, name string, base string, isEnumClass bool) {
	t.trace("beginEnum " + name)
	t.target.BeginEnum(startLine, name, base, isEnumClass)
}
func (t *Tracing) EnumValue(key, value string) {
	t.trace("enumValue " + key)
	t.target.EnumValue(key, value)
}
func (t *Tracing) EndEnum(name string) {
	t.trace("endEnum " + name)
	t.target.EndEnum(name)
}
func (t *Tracing) BeginClass(startLine int, name string, kind ScopeKind) {
	t.trace("beginClass " + name)
	t.target.BeginClass(startLine, name, kind)
}
func (t *Tracing) BaseType() {
	t.trace("baseType")
	t.target.BaseType()
}
func (t *Tracing) EndClass(name string, forwardDecl bool) {
	t.trace("endClass " + name)
	t.target.EndClass(name, forwardDecl)
}
func (t *Tracing) BeginNamespace(name string) {
	t.trace("beginNamespace " + name)
	t.target.BeginNamespace(name)
}
func (t *Tracing) EndNamespace(name string) {
	t.trace("endNamespace " + name)
	t.target.EndNamespace(name)
}
func (t *Tracing) BeginTemplate() {
	t.trace("beginTemplate")
	t.target.BeginTemplate()
}
func (t *Tracing) TemplateArgument(name string, hasDefaultType bool) {
	t.trace("templateArgument " + name)
	t.target.TemplateArgument(name, hasDefaultType)
}
func (t *Tracing) EndTemplate() {
	t.trace("endTemplate")
	t.target.EndTemplate()
}
func (t *Tracing) BeginType(kind typetree.Kind, specifiers typetree.Specifiers) {
	t.trace("beginType " + kind.String())
	t.target.BeginType(kind, specifiers)
}
func (t *Tracing) TypeName(name string) {
	t.trace("typeName " + name)
	t.target.TypeName(name)
}
func (t *Tracing) EndType() {
	t.trace("endType")
	t.target.EndType()
}
func (t *Tracing) BeginProperty(startLine int, name string, specifiers typetree.Specifiers) {
	t.trace("beginProperty " + name)
	t.target.BeginProperty(startLine, name, specifiers)
}
func (t *Tracing) ArraySubscript(name string) {
	t.trace("arraySubscript " + name)
	t.target.ArraySubscript(name)
}
func (t *Tracing) EndProperty(name string) {
	t.trace("endProperty " + name)
	t.target.EndProperty(name)
}
func (t *Tracing) BeginFunction(startLine int, kind typetree.Kind, name string) {
	t.trace("beginFunction " + name)
	t.target.BeginFunction(startLine, kind, name)
}
func (t *Tracing) FunctionArgument(name string, defaultValue string) {
	t.trace("functionArgument " + name)
	t.target.FunctionArgument(name, defaultValue)
}
func (t *Tracing) EndFunction(name string, specifiers typetree.Specifiers) {
	t.trace("endFunction " + name)
	t.target.EndFunction(name, specifiers)
}
func (t *Tracing) BeginTypedef(startLine int, name string) {
	t.trace("beginTypedef " + name)
	t.target.BeginTypedef(startLine, name)
}
func (t *Tracing) EndTypedef(name string) {
	t.trace("endTypedef " + name)
	t.target.EndTypedef(name)
}
func (t *Tracing) BeginMacro(name string) {
	t.trace("beginMacro " + name)
	t.target.BeginMacro(name)
}
func (t *Tracing) MacroArgument(name string) {
	t.trace("macroArgument " + name)
	t.target.MacroArgument(name)
}
func (t *Tracing) EndMacro(name string) {
	t.trace("endMacro " + name)
	t.target.EndMacro(name)
}

var _ EventSink = (*Tracing)(nil)
