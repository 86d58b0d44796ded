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

// Package cli implements the reflectdb command's input handling: loading a
// --list file of source paths (with glob expansion).
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/jendo42/reflectdb/internal/collections"
)

// LoadFileList reads a --list file: one path or glob per line, UTF-8,
// accepting both LF and CRLF line endings, skipping blank lines and lines
// whose first non-space character is '#'. Each glob entry is expanded with
// doublestar so patterns like "src/**/*.h" work the same as a shell glob
// would, and the combined result is de-duplicated while preserving first-
// seen order.
func LoadFileList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file list %s: %w", path, err)
	}
	defer f.Close()

	seen := collections.SetOf[string]()
	var files []string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		matches, err := doublestar.FilepathGlob(line)
		if err != nil {
			return nil, fmt.Errorf("invalid glob %q in %s: %w", line, path, err)
		}
		if len(matches) == 0 {
			// Not a glob, or a glob matching nothing: keep the literal
			// entry so a plain, non-wildcard path that doesn't exist yet
			// still surfaces as a normal "file not found" later rather
			// than silently vanishing here.
			matches = []string{line}
		}

		for _, m := range matches {
			if seen.Contains(m) {
				continue
			}
			seen = seen.Add(m)
			files = append(files, m)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading file list %s: %w", path, err)
	}
	return files, nil
}
