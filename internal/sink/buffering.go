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

import "github.com/jendo42/reflectdb/internal/typetree"

// Buffering is an EventSink that records every call as a closure instead of
// applying it immediately. A parsing worker gets one Buffering sink to
// itself; once it finishes a file, Queue() hands the recorded operations to
// a single consumer goroutine that replays them against the one real,
// non-thread-safe sink the program writes to. This is the Go analogue of
// the reference ParserInterfaceSynchronizer.
//
// Replaying strictly in recorded order is what makes the whole file's
// output atomic from the real sink's point of view: the real sink never
// sees two files' events interleaved.
type Buffering struct {
	ops []func(EventSink)
}

// NewBuffering returns an empty buffering sink ready to record one file's
// worth of events.
func NewBuffering() *Buffering { return &Buffering{} }

func (b *Buffering) enqueue(op func(EventSink)) { b.ops = append(b.ops, op) }

// Queue drains and returns the recorded operations, leaving b empty and
// ready for reuse.
func (b *Buffering) Queue() []func(EventSink) {
	ops := b.ops
	b.ops = nil
	return ops
}

// Replay applies every queued operation to target, in order.
func Replay(ops []func(EventSink), target EventSink) {
	for _, op := range ops {
		op(target)
	}
}

func (b *Buffering) Begin(source string) {
	b.enqueue(func(t EventSink) { t.Begin(source) })
}

func (b *Buffering) End(source string, errMsg string) {
	b.enqueue(func(t EventSink) { t.End(source, errMsg) })
}

func (b *Buffering) Include(filename string) {
	b.enqueue(func(t EventSink) { t.Include(filename) })
}

// Comment is the one method the reference ParserInterfaceSynchronizer got
// wrong: its generated code called pi.include(com) here instead of
// pi.comment(com), so every buffered comment silently turned into a bogus
// include directive on replay. This implementation dispatches to Comment.
func (b *Buffering) Comment(text string) {
	b.enqueue(func(t EventSink) { t.Comment(text) })
}

func (b *Buffering) Access(kind AccessKind) {
	b.enqueue(func(t EventSink) { t.Access(kind) })
}

func (b *Buffering) Using(hasAssignment bool) {
	b.enqueue(func(t EventSink) { t.Using(hasAssignment) })
}

func (b *Buffering) Friend() {
	b.enqueue(func(t EventSink) { t.Friend() })
}

func (b *Buffering) BeginEnum(startLine int, name string, base string, isEnumClass bool) {
	b.enqueue(func(t EventSink) { t.BeginEnum(startLine, name, base, isEnumClass) })
}

func (b *Buffering) EnumValue(key, value string) {
	b.enqueue(func(t EventSink) { t.EnumValue(key, value) })
}

func (b *Buffering) EndEnum(name string) {
	b.enqueue(func(t EventSink) { t.EndEnum(name) })
}

func (b *Buffering) BeginClass(startLine int, name string, kind ScopeKind) {
	b.enqueue(func(t EventSink) { t.BeginClass(startLine, name, kind) })
}

func (b *Buffering) BaseType() {
	b.enqueue(func(t EventSink) { t.BaseType() })
}

func (b *Buffering) EndClass(name string, forwardDecl bool) {
	b.enqueue(func(t EventSink) { t.EndClass(name, forwardDecl) })
}

func (b *Buffering) BeginNamespace(name string) {
	b.enqueue(func(t EventSink) { t.BeginNamespace(name) })
}

func (b *Buffering) EndNamespace(name string) {
	b.enqueue(func(t EventSink) { t.EndNamespace(name) })
}

func (b *Buffering) BeginTemplate() {
	b.enqueue(func(t EventSink) { t.BeginTemplate() })
}

func (b *Buffering) TemplateArgument(name string, hasDefaultType bool) {
	b.enqueue(func(t EventSink) { t.TemplateArgument(name, hasDefaultType) })
}

func (b *Buffering) EndTemplate() {
	b.enqueue(func(t EventSink) { t.EndTemplate() })
}

func (b *Buffering) BeginType(kind typetree.Kind, specifiers typetree.Specifiers) {
	b.enqueue(func(t EventSink) { t.BeginType(kind, specifiers) })
}

func (b *Buffering) TypeName(name string) {
	b.enqueue(func(t EventSink) { t.TypeName(name) })
}

func (b *Buffering) EndType() {
	b.enqueue(func(t EventSink) { t.EndType() })
}

func (b *Buffering) BeginProperty(startLine int, name string, specifiers typetree.Specifiers) {
	b.enqueue(func(t EventSink) { t.BeginProperty(startLine, name, specifiers) })
}

func (b *Buffering) ArraySubscript(name string) {
	b.enqueue(func(t EventSink) { t.ArraySubscript(name) })
}

func (b *Buffering) EndProperty(name string) {
	b.enqueue(func(t EventSink) { t.EndProperty(name) })
}

func (b *Buffering) BeginFunction(startLine int, kind typetree.Kind, name string) {
	b.enqueue(func(t EventSink) { t.BeginFunction(startLine, kind, name) })
}

func (b *Buffering) FunctionArgument(name string, defaultValue string) {
	b.enqueue(func(t EventSink) { t.FunctionArgument(name, defaultValue) })
}

func (b *Buffering) EndFunction(name string, specifiers typetree.Specifiers) {
	b.enqueue(func(t EventSink) { t.EndFunction(name, specifiers) })
}

func (b *Buffering) BeginTypedef(startLine int, name string) {
	b.enqueue(func(t EventSink) { t.BeginTypedef(startLine, name) })
}

func (b *Buffering) EndTypedef(name string) {
	b.enqueue(func(t EventSink) { t.EndTypedef(name) })
}

func (b *Buffering) BeginMacro(name string) {
	b.enqueue(func(t EventSink) { t.BeginMacro(name) })
}

func (b *Buffering) MacroArgument(name string) {
	b.enqueue(func(t EventSink) { t.MacroArgument(name) })
}

func (b *Buffering) EndMacro(name string) {
	b.enqueue(func(t EventSink) { t.EndMacro(name) })
}

var _ EventSink = (*Buffering)(nil)
