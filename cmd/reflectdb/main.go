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

// Command reflectdb parses C++ source files and serializes the
// declarations they contain into a typedb document.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/jendo42/reflectdb/internal/cli"
	"github.com/jendo42/reflectdb/internal/orchestrator"
	"github.com/jendo42/reflectdb/internal/parser"
	"github.com/jendo42/reflectdb/internal/sink/typedb"
)

type macroFlags []string

func (m *macroFlags) String() string     { return strings.Join(*m, ",") }
func (m *macroFlags) Set(v string) error { *m = append(*m, v); return nil }

func main() {
	var (
		listFile  = flag.String("list", "", "file listing input source paths/globs, one per line")
		macros    = flag.String("macros", "", "comma-separated list of identifiers to elide as macro calls, e.g. A,B,C")
		defines   macroFlags
		generator = flag.String("generator", "reflectdb", "generator name recorded in the output document")
		debug     = flag.Bool("debug", false, "log every sink event as it is produced")
		profile   = flag.Bool("profile", false, "log per-file parse timing")
		workers   = flag.Int("workers", 4, "number of files to parse concurrently")
	)
	flag.Var(&defines, "define", "predefine a -D style macro as NAME or NAME=VALUE for #if/#elif evaluation (may be repeated)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <input_file> <output_file>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	os.Exit(run(*listFile, *macros, defines, *generator, *debug, *profile, *workers, flag.Args()))
}

func run(listFile string, macrosFlag string, defineDefs macroFlags, generator string, debug bool, profile bool, workers int, args []string) int {
	defs, err := parser.ParseMacros(defineDefs)
	if err != nil {
		log.Printf("reflectdb: %v", err)
		return -1
	}

	var elideMacros []string
	if macrosFlag != "" {
		elideMacros = strings.Split(macrosFlag, ",")
	}

	var paths []string
	var outputPath string

	switch {
	case listFile != "":
		paths, err = cli.LoadFileList(listFile)
		if err != nil {
			log.Printf("reflectdb: %v", err)
			return -1
		}
		if len(args) != 1 {
			log.Printf("reflectdb: with --list, exactly one positional argument (the output path) is required")
			return -1
		}
		outputPath = args[0]
	case len(args) == 2:
		paths = []string{args[0]}
		outputPath = args[1]
	default:
		flag.Usage()
		return -1
	}

	jobs, statFailures := orchestrator.JobsFromFiles(paths)
	for _, f := range statFailures {
		log.Printf("reflectdb: %v", f.Err)
	}

	out := typedb.New(outputPath, generator, 1)

	opts := orchestrator.Options{Workers: workers, Macros: defs, ElideMacros: elideMacros, Debug: debug}
	if profile {
		opts.Profile = func(r orchestrator.Result) {
			log.Printf("reflectdb: parsed %s in %s", r.Path, r.Elapsed)
		}
	}

	results := orchestrator.Run(jobs, out, opts)

	failed := len(statFailures)
	for _, r := range results {
		if r.Err != nil {
			log.Printf("reflectdb: %v", r.Err)
			failed++
		}
	}

	if err := out.Save(outputPath); err != nil {
		log.Printf("reflectdb: writing %s: %v", outputPath, err)
		return -1
	}

	if failed > 0 {
		return -1
	}
	return 0
}
