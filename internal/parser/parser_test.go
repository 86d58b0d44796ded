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
	"testing"

	"github.com/jendo42/reflectdb/internal/sink"
	"github.com/jendo42/reflectdb/internal/typetree"
	"github.com/stretchr/testify/assert"
)

// recordingSink records every call it receives as a short string, in order,
// so a test can assert on the exact event sequence a source produces.
type recordingSink struct {
	calls []string
}

func (r *recordingSink) rec(s string) { r.calls = append(r.calls, s) }

func (r *recordingSink) Begin(source string)       { r.rec("begin:" + source) }
func (r *recordingSink) End(source, errMsg string) { r.rec("end:" + source + ":" + errMsg) }
func (r *recordingSink) Include(filename string)   { r.rec("include:" + filename) }
func (r *recordingSink) Comment(text string)       { r.rec("comment:" + text) }
func (r *recordingSink) Access(kind sink.AccessKind) {
	r.rec("access:" + kind.String())
}
func (r *recordingSink) Using(hasAssignment bool) { r.rec("using") }
func (r *recordingSink) Friend()                  { r.rec("friend") }
func (r *recordingSink) BeginEnum(l int, n, b string, e bool) {
	r.rec("beginEnum:" + n)
}
func (r *recordingSink) EnumValue(k, v string) { r.rec("enumValue:" + k + "=" + v) }
func (r *recordingSink) EndEnum(n string)      { r.rec("endEnum:" + n) }
func (r *recordingSink) BeginClass(l int, n string, k sink.ScopeKind) {
	r.rec("beginClass:" + k.String() + ":" + n)
}
func (r *recordingSink) BaseType()                   { r.rec("baseType") }
func (r *recordingSink) EndClass(n string, fwd bool) { r.rec("endClass:" + n) }
func (r *recordingSink) BeginNamespace(n string)     { r.rec("beginNamespace:" + n) }
func (r *recordingSink) EndNamespace(n string)       { r.rec("endNamespace:" + n) }
func (r *recordingSink) BeginTemplate()              { r.rec("beginTemplate") }
func (r *recordingSink) TemplateArgument(n string, d bool) {
	r.rec("templateArgument:" + n)
}
func (r *recordingSink) EndTemplate() { r.rec("endTemplate") }
func (r *recordingSink) BeginType(kind typetree.Kind, specifiers typetree.Specifiers) {
	r.rec("beginType:" + kind.String())
}
func (r *recordingSink) TypeName(n string) { r.rec("typeName:" + n) }
func (r *recordingSink) EndType()          { r.rec("endType") }
func (r *recordingSink) BeginProperty(l int, n string, s typetree.Specifiers) {
	r.rec("beginProperty:" + n)
}
func (r *recordingSink) ArraySubscript(n string) { r.rec("arraySubscript:" + n) }
func (r *recordingSink) EndProperty(n string)    { r.rec("endProperty:" + n) }
func (r *recordingSink) BeginFunction(l int, kind typetree.Kind, n string) {
	r.rec("beginFunction:" + kind.String() + ":" + n)
}
func (r *recordingSink) FunctionArgument(n, d string) {
	r.rec("functionArgument:" + n)
}
func (r *recordingSink) EndFunction(n string, s typetree.Specifiers) {
	r.rec("endFunction:" + n)
}
func (r *recordingSink) BeginTypedef(l int, n string) { r.rec("beginTypedef:" + n) }
func (r *recordingSink) EndTypedef(n string)          { r.rec("endTypedef:" + n) }
func (r *recordingSink) BeginMacro(n string)          { r.rec("beginMacro:" + n) }
func (r *recordingSink) MacroArgument(n string)       { r.rec("macroArgument:" + n) }
func (r *recordingSink) EndMacro(n string)            { r.rec("endMacro:" + n) }

var _ sink.EventSink = (*recordingSink)(nil)

func parse(t *testing.T, src string, opts Options) *recordingSink {
	t.Helper()
	r := &recordingSink{}
	p := New([]byte(src), r, opts)
	p.Parse("test.h")
	return r
}

func TestParseSimpleProperty(t *testing.T) {
	r := parse(t, `int x;`, Options{})
	assert.Equal(t, []string{
		"begin:test.h",
		"beginType:literal",
		"typeName:int",
		"endType",
		"beginProperty:x",
		"endProperty:x",
		"end:test.h:",
	}, r.calls)
}

func TestParsePointerProperty(t *testing.T) {
	r := parse(t, `const char* name;`, Options{})
	assert.Equal(t, []string{
		"begin:test.h",
		"beginType:pointer",
		"beginType:literal",
		"typeName:char",
		"endType",
		"endType",
		"beginProperty:name",
		"endProperty:name",
		"end:test.h:",
	}, r.calls)
}

func TestParseFunctionWithArgsAndReturn(t *testing.T) {
	r := parse(t, `int add(int a, int b);`, Options{})
	assert.Equal(t, []string{
		"begin:test.h",
		"beginType:literal",
		"typeName:int",
		"endType",
		"beginFunction:function:add",
		"beginType:literal",
		"typeName:int",
		"endType",
		"functionArgument:a",
		"beginType:literal",
		"typeName:int",
		"endType",
		"functionArgument:b",
		"endFunction:add",
		"end:test.h:",
	}, r.calls)
}

func TestParseClassWithConstructorAndDestructor(t *testing.T) {
	src := `
class Widget : public Base {
public:
  Widget();
  ~Widget();
private:
  int id;
};`
	r := parse(t, src, Options{})
	assert.Equal(t, []string{
		"begin:test.h",
		"beginClass:class:Widget",
		"access:public", // base-list entry's own access, defaulting private but labeled public here
		"baseType",      // Base, pushed via its own beginType/typeName/endType (omitted from this listing; see below)
		"access:public",
		"beginFunction:constructor:Widget",
		"endFunction:Widget",
		"access:public",
		"beginFunction:destructor:~Widget",
		"endFunction:~Widget",
		"access:private",
		"beginType:literal",
		"typeName:int",
		"endType",
		"beginProperty:id",
		"endProperty:id",
		"endClass:Widget",
		"end:test.h:",
	}, stripBaseTypeEvents(r.calls))
}

// stripBaseTypeEvents removes the beginType/typeName/endType triple a base
// class's own type emits immediately before the "baseType" call that
// consumes it, so this test's expected sequence can read "baseType" as one
// line instead of spelling out the literal-type triple for "Base" inline.
func stripBaseTypeEvents(calls []string) []string {
	out := make([]string, 0, len(calls))
	for i := 0; i < len(calls); i++ {
		if calls[i] == "beginType:literal" && i+2 < len(calls) &&
			calls[i+1] == "typeName:Base" && calls[i+2] == "endType" {
			i += 2
			continue
		}
		out = append(out, calls[i])
	}
	return out
}

func TestParseEnum(t *testing.T) {
	r := parse(t, `enum class Color { Red, Green, Blue = 10 };`, Options{})
	assert.Equal(t, []string{
		"begin:test.h",
		"beginEnum:Color",
		"enumValue:Red=",
		"enumValue:Green=",
		"enumValue:Blue=10",
		"endEnum:Color",
		"end:test.h:",
	}, r.calls)
}

func TestParseNamespaceNesting(t *testing.T) {
	r := parse(t, `namespace a { namespace b { int x; } }`, Options{})
	assert.Equal(t, []string{
		"begin:test.h",
		"beginNamespace:a",
		"beginNamespace:b",
		"beginType:literal",
		"typeName:int",
		"endType",
		"beginProperty:x",
		"endProperty:x",
		"endNamespace:b",
		"endNamespace:a",
		"end:test.h:",
	}, r.calls)
}

func TestParseMacroCallElided(t *testing.T) {
	r := &recordingSink{}
	p := New([]byte("API_EXPORT(dll) void f();"), r, Options{})
	p.lx.AddMacro("API_EXPORT")
	p.Parse("test.h")
	assert.Equal(t, []string{
		"begin:test.h",
		"beginType:literal",
		"typeName:void",
		"endType",
		"beginFunction:function:f",
		"endFunction:f",
		"end:test.h:",
	}, r.calls)
}

func TestParsePreprocessorConditional(t *testing.T) {
	src := `
#define FEATURE_X 1
#if FEATURE_X
int enabled;
#else
int disabled;
#endif
`
	r := parse(t, src, Options{})
	assert.Equal(t, []string{
		"begin:test.h",
		"beginType:literal",
		"typeName:int",
		"endType",
		"beginProperty:enabled",
		"endProperty:enabled",
		"end:test.h:",
	}, r.calls)
}

func TestParseDocCommentAdjacency(t *testing.T) {
	src := "// doc comment\nint x;\n"
	r := parse(t, src, Options{})
	assert.Contains(t, r.calls, "comment:doc comment")
}

func TestParseDocCommentNotAdjacentIsDropped(t *testing.T) {
	src := "// doc comment\n\nint x;\n"
	r := parse(t, src, Options{})
	assert.NotContains(t, r.calls, "comment:doc comment")
}

func TestParseTemplateClass(t *testing.T) {
	src := `template<typename T> class Box { T value; };`
	r := parse(t, src, Options{})
	assert.Equal(t, []string{
		"begin:test.h",
		"beginTemplate",
		"templateArgument:T",
		"endTemplate",
		"beginClass:class:Box",
		"access:private", // Box's members default private, echoed at the first declaration
		"beginType:literal",
		"typeName:T",
		"endType",
		"beginProperty:value",
		"endProperty:value",
		"endClass:Box",
		"end:test.h:",
	}, r.calls)
}

func TestParseAnonymousStructMember(t *testing.T) {
	src := `struct { int x; int y; } point;`
	r := parse(t, src, Options{})
	assert.Equal(t, []string{
		"begin:test.h",
		"beginClass:struct:unnamed-struct1",
		"access:public", // struct members default public, echoed at each declaration
		"beginType:literal",
		"typeName:int",
		"endType",
		"beginProperty:x",
		"endProperty:x",
		"access:public",
		"beginType:literal",
		"typeName:int",
		"endType",
		"beginProperty:y",
		"endProperty:y",
		"endClass:unnamed-struct1",
		"beginProperty:point",
		"beginType:literal",
		"typeName:unnamed-struct1",
		"endType",
		"endProperty:point",
		"end:test.h:",
	}, r.calls)
}

func TestParseOperatorOverload(t *testing.T) {
	src := `class Vec { Vec operator+(const Vec& other); };`
	r := parse(t, src, Options{})
	assert.Contains(t, r.calls, "beginFunction:function:operator+")
}

func TestParseCallOperator(t *testing.T) {
	src := `class Fn { void operator()(); };`
	r := parse(t, src, Options{})
	assert.Contains(t, r.calls, "beginFunction:function:operator()")
}

func TestParsePureVirtualFunction(t *testing.T) {
	src := `class Shape { virtual double area() const = 0; };`
	r := &recordingSink{}
	p := New([]byte(src), r, Options{})
	p.Parse("test.h")
	assert.Contains(t, r.calls, "beginFunction:function:area")
	assert.Contains(t, r.calls, "endFunction:area")
}

func TestParseImplicitIntLeavesDeclaratorNameUnconsumed(t *testing.T) {
	r := parse(t, `unsigned x;`, Options{})
	assert.Equal(t, []string{
		"begin:test.h",
		"beginType:literal",
		"typeName:unsigned",
		"endType",
		"beginProperty:x",
		"endProperty:x",
		"end:test.h:",
	}, r.calls)
}

func TestParseSignednessAndSizeFoldedIntoTypeName(t *testing.T) {
	r := parse(t, `unsigned long x;`, Options{})
	assert.Equal(t, []string{
		"begin:test.h",
		"beginType:literal",
		"typeName:unsigned long",
		"endType",
		"beginProperty:x",
		"endProperty:x",
		"end:test.h:",
	}, r.calls)

	r2 := parse(t, `short int y;`, Options{})
	assert.Equal(t, []string{
		"begin:test.h",
		"beginType:literal",
		"typeName:short int",
		"endType",
		"beginProperty:y",
		"endProperty:y",
		"end:test.h:",
	}, r2.calls)
}

func TestParseUsingAssignmentEmitsBothTypeTriples(t *testing.T) {
	r := parse(t, `using Alias = Foo;`, Options{})
	assert.Equal(t, []string{
		"begin:test.h",
		"beginType:literal",
		"typeName:Alias",
		"endType",
		"beginType:literal",
		"typeName:Foo",
		"endType",
		"using",
		"end:test.h:",
	}, r.calls)
}

func TestParseUsingDeclarationEmitsTypeTriple(t *testing.T) {
	r := parse(t, `using Base::member;`, Options{})
	assert.Equal(t, []string{
		"begin:test.h",
		"beginType:literal",
		"typeName:Base::member",
		"endType",
		"using",
		"end:test.h:",
	}, r.calls)
}

func TestParseFriendClassEmitsTypeTriple(t *testing.T) {
	r := parse(t, `class Widget { friend class Bar; };`, Options{})
	assert.Equal(t, []string{
		"begin:test.h",
		"beginClass:class:Widget",
		"access:private",
		"beginType:literal",
		"typeName:classBar",
		"endType",
		"friend",
		"endClass:Widget",
		"end:test.h:",
	}, r.calls)
}

func TestParseElideMacrosOptionWiresLexerWithoutInSourceDefine(t *testing.T) {
	r := parse(t, `API_EXPORT(dll) void f();`, Options{ElideMacros: []string{"API_EXPORT"}})
	assert.Equal(t, []string{
		"begin:test.h",
		"beginType:literal",
		"typeName:void",
		"endType",
		"beginFunction:function:f",
		"endFunction:f",
		"end:test.h:",
	}, r.calls)
}
