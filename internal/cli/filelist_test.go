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

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFileListExpandsGlobsSkipsCommentsAndDedups(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.h", "b.h", "c.cc"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("// "+name), 0o644))
	}

	listPath := filepath.Join(dir, "list.txt")
	contents := "# a comment\n" +
		"\n" +
		filepath.Join(dir, "*.h") + "\n" +
		filepath.Join(dir, "a.h") + "\n" // duplicate of a glob match
	require.NoError(t, os.WriteFile(listPath, []byte(contents), 0o644))

	files, err := LoadFileList(listPath)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{
		filepath.Join(dir, "a.h"),
		filepath.Join(dir, "b.h"),
	}, files)
}

func TestLoadFileListKeepsLiteralPathWhenGlobMatchesNothing(t *testing.T) {
	dir := t.TempDir()
	listPath := filepath.Join(dir, "list.txt")
	missing := filepath.Join(dir, "does_not_exist.h")
	require.NoError(t, os.WriteFile(listPath, []byte(missing+"\n"), 0o644))

	files, err := LoadFileList(listPath)
	require.NoError(t, err)
	require.Equal(t, []string{missing}, files)
}

func TestLoadFileListMissingListFile(t *testing.T) {
	_, err := LoadFileList(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}
