// Copyright 2025 EngFlow Inc. All rights reserved.
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
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Macros holds defined/known macro names and their integer value, e.g.
// {"__ANDROID__": 1}. A macro defined without an explicit value is assumed
// to equal 1, e.g. `-DDEBUG` becomes Macros{"DEBUG": 1}. String/float macro
// values are not supported in #if/#elif conditional expressions.
type Macros map[string]int

// MacroDefinition is one -D style command-line definition.
type MacroDefinition struct {
	Name     string
	IntValue int
}

// ParseMacro converts a single -D style macro definition into a
// MacroDefinition, validating that its value (if any) is an integer literal
// understood by the conditional-expression evaluator.
func ParseMacro(definition string) (MacroDefinition, error) {
	definition = strings.TrimPrefix(definition, "-D") // tolerate gcc/clang style
	name, stringValue := definition, ""

	if eqIdx := strings.Index(definition, "="); eqIdx >= 0 {
		name, stringValue = definition[:eqIdx], definition[eqIdx+1:]
	}

	if !macroIdentifierRegex.MatchString(name) {
		return MacroDefinition{}, fmt.Errorf("invalid macro name %q", name)
	}

	var intValue int
	switch stringValue {
	case "":
		intValue = 1
	default:
		if !parsableIntegerRegex.MatchString(stringValue) {
			return MacroDefinition{}, fmt.Errorf("macro %s=%v, only integer literal values are allowed", name, stringValue)
		}
		var err error
		intValue, err = parseIntLiteral(stringValue)
		if err != nil {
			return MacroDefinition{}, fmt.Errorf("failed to parse macro value %s: %v", definition, err)
		}
	}
	return MacroDefinition{Name: name, IntValue: intValue}, nil
}

// ParseMacros converts a slice of -D style macro definitions into a Macros
// map. Returns a joined error if at least one definition failed to parse.
func ParseMacros(definitions []string) (Macros, error) {
	out := Macros{}
	var parsingErrors []error
	for _, d := range definitions {
		defn, err := ParseMacro(d)
		if err != nil {
			parsingErrors = append(parsingErrors, fmt.Errorf("failed to parse: %v: %v", d, err))
			continue
		}
		out[defn.Name] = defn.IntValue
	}
	return out, errors.Join(parsingErrors...)
}

var macroIdentifierRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
var parsableIntegerRegex = regexp.MustCompile(`^(?:0[xX][0-9a-fA-F]+|0[0-7]*|[1-9][0-9]*)(?:[uU](?:ll?|LL?)?|ll?[uU]?|LL?[uU]?)?$`)

// parseIntLiteral parses an integer literal in decimal, octal, or hex form,
// ignoring C suffixes.
func parseIntLiteral(tok string) (int, error) {
	tok = strings.TrimRightFunc(tok, func(r rune) bool {
		return r == 'u' || r == 'U' || r == 'l' || r == 'L'
	})
	v, err := strconv.ParseInt(tok, 0, 64)
	return int(v), err
}
