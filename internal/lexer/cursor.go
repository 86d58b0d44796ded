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

package lexer

import "fmt"

// Position tracks a byte offset together with the 1-based source line it
// falls on. Offset is what UngetToken rewinds to; Line is what declarations
// report as their start line.
type Position struct {
	Offset int
	Line   int
}

var PositionInit = Position{Offset: 0, Line: 1}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Offset)
}
