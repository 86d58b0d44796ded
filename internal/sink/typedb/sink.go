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

// Package typedb is the reference serializing sink: it renders the events
// the parser emits into a tree-document, one named, attribute-bearing node
// per declaration, built with bazel-gazelle's rule package -- the same
// rule.NewRule/SetAttr API the teacher uses to build its own cc_library/
// cc_binary BUILD rule trees, repurposed here to build a declaration tree
// instead of a build-rule tree.
package typedb

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bazelbuild/bazel-gazelle/rule"
	"github.com/jendo42/reflectdb/internal/sink"
	"github.com/jendo42/reflectdb/internal/typetree"
)

// scope is one open namespace/class/enum/function/property/typedef whose
// End* call has not yet been seen.
type scope struct {
	rule *rule.Rule
	kind string
	name string
}

// Sink is a sink.EventSink that accumulates declarations into a rule.File
// and writes it out with Save. One Sink is built per output document; the
// orchestrator drives it from the single consumer goroutine, never
// concurrently.
type Sink struct {
	file      *rule.File
	version   string
	generator string
	iteration int

	path   []*scope // currently open namespace/class/property/typedef scopes
	access sink.AccessKind
	types  typeStacks

	currentFunction *scope
	currentEnum     *scope

	templateArgs [][]templateArg
	unique       int
}

type templateArg struct {
	name           string
	hasDefaultType bool
	defaultType    string
}

// New creates a Sink that will serialize into a rule.File at path outPath,
// tagging the document with generator and iteration the way the reference
// typedb root element carries a generator/iteration attribute pair.
func New(outPath string, generator string, iteration int) *Sink {
	return &Sink{
		file:      rule.EmptyFile(outPath, ""),
		version:   "1",
		generator: generator,
		iteration: iteration,
	}
}

// Save writes the accumulated document to disk.
func (s *Sink) Save(path string) error { return s.file.Save(path) }

func (s *Sink) qualify(name string) string {
	if len(s.path) == 0 {
		return name
	}
	parts := make([]string, 0, len(s.path)+1)
	for _, sc := range s.path {
		parts = append(parts, sc.name)
	}
	parts = append(parts, name)
	return strings.Join(parts, ".")
}

func (s *Sink) newRule(kind, qualifiedName string) *rule.Rule {
	r := rule.NewRule(kind, qualifiedName)
	r.Insert(s.file)
	return r
}

// --- lifecycle -------------------------------------------------------------

func (s *Sink) Begin(source string) {
	root := rule.NewRule("source_map_file", source)
	root.SetAttr("generator", s.generator)
	root.SetAttr("iteration", strconv.Itoa(s.iteration))
	root.Insert(s.file)
}

func (s *Sink) End(source string, errMsg string) {
	r := rule.NewRule("source_map_end", source)
	if errMsg != "" {
		r.SetAttr("error", errMsg)
	}
	r.Insert(s.file)
}

func (s *Sink) Include(filename string) {
	r := rule.NewRule("include", filename)
	r.Insert(s.file)
}

func (s *Sink) Comment(text string) {
	r := rule.NewRule("comment", s.genUnique("comment"))
	r.SetAttr("text", text)
	r.Insert(s.file)
}

func (s *Sink) Access(kind sink.AccessKind) { s.access = kind }

func (s *Sink) Using(hasAssignment bool) {
	r := rule.NewRule("using", s.genUnique("using"))
	r.SetAttr("has_assignment", hasAssignment)
	r.Insert(s.file)
}

func (s *Sink) Friend() {
	r := rule.NewRule("friend", s.genUnique("friend"))
	r.Insert(s.file)
}

// --- enum --------------------------------------------------------------

func (s *Sink) BeginEnum(startLine int, name string, base string, isEnumClass bool) {
	qn := s.qualify(name)
	r := s.newRule("enum", qn)
	r.SetAttr("line", startLine)
	if base != "" {
		r.SetAttr("base", base)
	}
	r.SetAttr("enum_class", isEnumClass)
	s.currentEnum = &scope{rule: r, kind: "enum", name: qn}
}

func (s *Sink) EnumValue(key, value string) {
	if s.currentEnum == nil {
		return
	}
	values := s.currentEnum.rule.AttrStrings("values")
	if value != "" {
		values = append(values, key+"="+value)
	} else {
		values = append(values, key)
	}
	s.currentEnum.rule.SetAttr("values", values)
}

func (s *Sink) EndEnum(name string) { s.currentEnum = nil }

// --- class/struct/union --------------------------------------------------

func (s *Sink) BeginClass(startLine int, name string, kind sink.ScopeKind) {
	qn := s.qualify(name)
	r := s.newRule(kind.String(), qn)
	r.SetAttr("line", startLine)
	r.SetAttr("access", s.access.String())
	s.path = append(s.path, &scope{rule: r, kind: kind.String(), name: qn})
}

func (s *Sink) BaseType() {
	if len(s.path) == 0 {
		return
	}
	top := s.path[len(s.path)-1].rule
	t := s.types.takeType()
	bases := top.AttrStrings("bases")
	if t != nil {
		bases = append(bases, t.String())
	}
	top.SetAttr("bases", bases)
}

func (s *Sink) EndClass(name string, forwardDecl bool) {
	if len(s.path) == 0 {
		return
	}
	n := len(s.path) - 1
	top := s.path[n]
	top.rule.SetAttr("forwarded", forwardDecl)
	s.path = s.path[:n]
}

// --- namespace -------------------------------------------------------------

func (s *Sink) BeginNamespace(name string) {
	qn := s.qualify(name)
	r := s.newRule("namespace", qn)
	s.path = append(s.path, &scope{rule: r, kind: "namespace", name: qn})
}

func (s *Sink) EndNamespace(name string) {
	if len(s.path) == 0 {
		return
	}
	s.path = s.path[:len(s.path)-1]
}

// --- template ----------------------------------------------------------

func (s *Sink) BeginTemplate() {
	s.templateArgs = append(s.templateArgs, nil)
}

func (s *Sink) TemplateArgument(name string, hasDefaultType bool) {
	n := len(s.templateArgs) - 1
	if n < 0 {
		return
	}
	arg := templateArg{name: name, hasDefaultType: hasDefaultType}
	if hasDefaultType {
		if t := s.types.takeType(); t != nil {
			arg.defaultType = t.String()
		}
	}
	s.templateArgs[n] = append(s.templateArgs[n], arg)
}

func (s *Sink) EndTemplate() {
	if len(s.templateArgs) == 0 {
		return
	}
	args := s.templateArgs[len(s.templateArgs)-1]
	s.templateArgs = s.templateArgs[:len(s.templateArgs)-1]

	if len(s.path) == 0 {
		return
	}
	top := s.path[len(s.path)-1].rule
	rendered := make([]string, 0, len(args))
	for _, a := range args {
		entry := a.name
		if a.hasDefaultType {
			entry += "=" + a.defaultType
		}
		rendered = append(rendered, entry)
	}
	top.SetAttr("template_args", rendered)
}

// --- type tree -----------------------------------------------------------

func (s *Sink) BeginType(kind typetree.Kind, specifiers typetree.Specifiers) {
	s.types.beginType(kind, specifiers)
}
func (s *Sink) TypeName(name string) { s.types.typeName(name) }
func (s *Sink) EndType()             { s.types.endType() }

// --- property --------------------------------------------------------------

func (s *Sink) BeginProperty(startLine int, name string, specifiers typetree.Specifiers) {
	qn := s.qualify(name)
	r := s.newRule("property", qn)
	r.SetAttr("line", startLine)
	r.SetAttr("access", s.access.String())
	if spec := specifiers.ToString(); spec != "" {
		r.SetAttr("spec", spec)
	}
	s.path = append(s.path, &scope{rule: r, kind: "property", name: qn})
}

func (s *Sink) ArraySubscript(name string) {
	if len(s.path) == 0 {
		return
	}
	top := s.path[len(s.path)-1].rule
	subs := top.AttrStrings("array")
	subs = append(subs, name)
	top.SetAttr("array", subs)
}

func (s *Sink) EndProperty(name string) {
	if len(s.path) == 0 {
		return
	}
	n := len(s.path) - 1
	top := s.path[n]
	if t := s.types.takeType(); t != nil {
		top.rule.SetAttr("type", t.String())
	}
	s.path = s.path[:n]
}

// --- function ------------------------------------------------------------

func (s *Sink) BeginFunction(startLine int, kind typetree.Kind, name string) {
	qn := s.qualify(name)
	r := s.newRule("function", qn)
	r.SetAttr("line", startLine)
	r.SetAttr("access", s.access.String())
	r.SetAttr("function_kind", kind.String())
	s.currentFunction = &scope{rule: r, kind: "function", name: qn}
}

func (s *Sink) FunctionArgument(name string, defaultValue string) {
	if s.currentFunction == nil {
		return
	}
	t := s.types.takeType()
	entry := name
	if t != nil {
		entry = fmt.Sprintf("%s:%s", name, t.String())
	}
	if defaultValue != "" {
		entry += "=" + defaultValue
	}
	args := s.currentFunction.rule.AttrStrings("arguments")
	args = append(args, entry)
	s.currentFunction.rule.SetAttr("arguments", args)
}

func (s *Sink) EndFunction(name string, specifiers typetree.Specifiers) {
	if s.currentFunction == nil {
		return
	}
	if t := s.types.takeType(); t != nil {
		s.currentFunction.rule.SetAttr("returns", t.String())
	}
	if spec := specifiers.ToString(); spec != "" {
		s.currentFunction.rule.SetAttr("spec", spec)
	}
	if specifiers.Deleted {
		s.currentFunction.rule.SetAttr("deleted", true)
	}
	s.currentFunction = nil
}

// --- typedef -------------------------------------------------------------

func (s *Sink) BeginTypedef(startLine int, name string) {
	qn := s.qualify(name)
	r := s.newRule("typedef", qn)
	r.SetAttr("line", startLine)
	s.path = append(s.path, &scope{rule: r, kind: "typedef", name: qn})
}

func (s *Sink) EndTypedef(name string) {
	if len(s.path) == 0 {
		return
	}
	n := len(s.path) - 1
	top := s.path[n]
	if t := s.types.takeType(); t != nil {
		top.rule.SetAttr("type", t.String())
	}
	s.path = s.path[:n]
}

// --- macros (elided calls never reach the sink; kept for interface parity) --

func (s *Sink) BeginMacro(name string)      {}
func (s *Sink) MacroArgument(name string)   {}
func (s *Sink) EndMacro(name string)        {}

func (s *Sink) genUnique(prefix string) string {
	s.unique++
	return fmt.Sprintf("%s-%d", prefix, s.unique)
}

var _ sink.EventSink = (*Sink)(nil)
