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

// parseTypedef parses `typedef <type> name;`. The reference implementation
// does not support the multi-declarator form (`typedef int a, b;`); this
// doesn't either, matching that limitation rather than silently papering
// over it with partial support.
func (p *Parser) parseTypedef(declLine int) error {
	p.emitPendingComment(declLine)
	p.emitCurrentAccess()
	p.parseTypeNode() // walked immediately; EndTypedef's takeType() consumes it below

	name, _ := p.lx.RequireIdentifier()
	if name == "" {
		name = p.generateUnnamedIdentifier("typedef")
	}
	p.parseArraySuffix()

	p.sink.BeginTypedef(declLine, name)
	p.sink.EndTypedef(name)

	p.lx.RequireSymbol(";")
	return nil
}
