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
	"testing"

	"github.com/jendo42/reflectdb/internal/typetree"
	"github.com/stretchr/testify/assert"
)

type recordingSink struct {
	calls []string
}

func (r *recordingSink) Begin(source string)          { r.calls = append(r.calls, "begin:"+source) }
func (r *recordingSink) End(source, errMsg string)     { r.calls = append(r.calls, "end:"+source) }
func (r *recordingSink) Include(filename string)       { r.calls = append(r.calls, "include:"+filename) }
func (r *recordingSink) Comment(text string)           { r.calls = append(r.calls, "comment:"+text) }
func (r *recordingSink) Access(kind AccessKind)         { r.calls = append(r.calls, "access:"+kind.String()) }
func (r *recordingSink) Using(hasAssignment bool)      { r.calls = append(r.calls, "using") }
func (r *recordingSink) Friend()                        { r.calls = append(r.calls, "friend") }
func (r *recordingSink) BeginEnum(l int, n, b string, e bool) {
	r.calls = append(r.calls, "beginEnum:"+n)
}
func (r *recordingSink) EnumValue(k, v string) { r.calls = append(r.calls, "enumValue:"+k) }
func (r *recordingSink) EndEnum(n string)       { r.calls = append(r.calls, "endEnum:"+n) }
func (r *recordingSink) BeginClass(l int, n string, k ScopeKind) {
	r.calls = append(r.calls, "beginClass:"+n)
}
func (r *recordingSink) BaseType()                     { r.calls = append(r.calls, "baseType") }
func (r *recordingSink) EndClass(n string, fwd bool)   { r.calls = append(r.calls, "endClass:"+n) }
func (r *recordingSink) BeginNamespace(n string)       { r.calls = append(r.calls, "beginNamespace:"+n) }
func (r *recordingSink) EndNamespace(n string)         { r.calls = append(r.calls, "endNamespace:"+n) }
func (r *recordingSink) BeginTemplate()                { r.calls = append(r.calls, "beginTemplate") }
func (r *recordingSink) TemplateArgument(n string, d bool) {
	r.calls = append(r.calls, "templateArgument:"+n)
}
func (r *recordingSink) EndTemplate() { r.calls = append(r.calls, "endTemplate") }
func (r *recordingSink) BeginType(kind typetree.Kind, specifiers typetree.Specifiers) {
	r.calls = append(r.calls, "beginType:"+kind.String())
}
func (r *recordingSink) TypeName(n string) { r.calls = append(r.calls, "typeName:"+n) }
func (r *recordingSink) EndType()          { r.calls = append(r.calls, "endType") }
func (r *recordingSink) BeginProperty(l int, n string, s typetree.Specifiers) {
	r.calls = append(r.calls, "beginProperty:"+n)
}
func (r *recordingSink) ArraySubscript(n string) { r.calls = append(r.calls, "arraySubscript:"+n) }
func (r *recordingSink) EndProperty(n string)    { r.calls = append(r.calls, "endProperty:"+n) }
func (r *recordingSink) BeginFunction(l int, kind typetree.Kind, n string) {
	r.calls = append(r.calls, "beginFunction:"+n)
}
func (r *recordingSink) FunctionArgument(n, d string) {
	r.calls = append(r.calls, "functionArgument:"+n)
}
func (r *recordingSink) EndFunction(n string, s typetree.Specifiers) {
	r.calls = append(r.calls, "endFunction:"+n)
}
func (r *recordingSink) BeginTypedef(l int, n string) { r.calls = append(r.calls, "beginTypedef:"+n) }
func (r *recordingSink) EndTypedef(n string)          { r.calls = append(r.calls, "endTypedef:"+n) }
func (r *recordingSink) BeginMacro(n string)          { r.calls = append(r.calls, "beginMacro:"+n) }
func (r *recordingSink) MacroArgument(n string)       { r.calls = append(r.calls, "macroArgument:"+n) }
func (r *recordingSink) EndMacro(n string)            { r.calls = append(r.calls, "endMacro:"+n) }

var _ EventSink = (*recordingSink)(nil)

func TestBufferingCommentDispatchesToComment(t *testing.T) {
	b := NewBuffering()
	b.Comment("a doc comment")
	target := &recordingSink{}
	Replay(b.Queue(), target)
	assert.Equal(t, []string{"comment:a doc comment"}, target.calls)
}

func TestBufferingReplayPreservesOrder(t *testing.T) {
	b := NewBuffering()
	b.Begin("foo.h")
	b.BeginClass(1, "Foo", ScopeClass)
	b.Comment("doc")
	b.EndClass("Foo", false)
	b.End("foo.h", "")

	target := &recordingSink{}
	Replay(b.Queue(), target)
	assert.Equal(t, []string{
		"begin:foo.h",
		"beginClass:Foo",
		"comment:doc",
		"endClass:Foo",
		"end:foo.h",
	}, target.calls)
}

func TestQueueDrainsAndResets(t *testing.T) {
	b := NewBuffering()
	b.Friend()
	ops := b.Queue()
	assert.Len(t, ops, 1)
	assert.Empty(t, b.Queue())
}
