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

// Package orchestrator fans a list of source files out to a worker pool,
// each worker parsing its own file into a private buffering sink, and
// drains the buffered events back onto a single caller-supplied sink from
// one consumer goroutine -- so a non-thread-safe serializer (such as
// sink/typedb.Sink) only ever sees one goroutine's calls, while parsing
// itself runs fully in parallel.
package orchestrator

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/jendo42/reflectdb/internal/collections"
	"github.com/jendo42/reflectdb/internal/parser"
	"github.com/jendo42/reflectdb/internal/sink"
)

// Job is one source file to parse.
type Job struct {
	Path string
	Size int64
}

// Less orders jobs smallest-file-first, so the worker pool's early output
// (and therefore the first replayed events) tends to arrive sooner rather
// than having every worker start on the same handful of large files.
func (j Job) Less(other Job) bool { return j.Size < other.Size }

// Result reports the outcome of parsing one job.
type Result struct {
	Path    string
	Err     error
	Elapsed time.Duration
}

// Options configures a Run.
type Options struct {
	// Workers is the number of concurrent parse goroutines. Defaults to 1
	// if <= 0.
	Workers int
	// Macros seeds every worker's parser with predefined -D style macro
	// values for #if/#elif evaluation.
	Macros parser.Macros
	// ElideMacros names identifiers every worker's parser should treat as
	// macro-call sites to elide, matching the --macros CLI flag.
	ElideMacros []string
	// Debug wraps each worker's own buffering sink with sink.Tracing so
	// every event is logged as it is produced, alongside the replayed
	// call the consumer goroutine makes against target.
	Debug bool
	// Profile, if non-nil, receives the Result of each completed job,
	// including its parse duration, matching the --profile CLI flag.
	Profile func(Result)
}

// JobsFromFiles builds a priority-ordered job list from paths, stat'ing
// each to learn its size; paths that cannot be stat'ed are reported as
// failed results rather than silently dropped.
func JobsFromFiles(paths []string) ([]Job, []Result) {
	seen := collections.SetOf[string]()
	pq := collections.NewEmptyPriorityQueue[Job]()
	var failed []Result

	for _, p := range paths {
		if seen.Contains(p) {
			continue
		}
		seen = seen.Add(p)

		info, err := os.Stat(p)
		if err != nil {
			failed = append(failed, Result{Path: p, Err: fmt.Errorf("stat %s: %w", p, err)})
			continue
		}
		pq.Push(Job{Path: p, Size: info.Size()})
	}

	jobs := make([]Job, 0, len(paths))
	for !pq.Empty() {
		jobs = append(jobs, pq.Pop())
	}
	return jobs, failed
}

// Run parses every job concurrently and replays each worker's events, in
// job order of completion, onto target from a single goroutine. It blocks
// until every job has been parsed and replayed, then returns one Result
// per job (order not guaranteed to match jobs).
func Run(jobs []Job, target sink.EventSink, opts Options) []Result {
	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}

	type replayRequest struct {
		job Job
		ops []func(sink.EventSink)
		err error
		dur time.Duration
	}

	jobCh := make(chan Job)
	replayCh := make(chan replayRequest)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for job := range jobCh {
				ops, err, dur := parseOne(job, opts)
				replayCh <- replayRequest{job: job, ops: ops, err: err, dur: dur}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(replayCh)
	}()

	go func() {
		defer close(jobCh)
		for _, job := range jobs {
			jobCh <- job
		}
	}()

	results := make([]Result, 0, len(jobs))
	for req := range replayCh {
		sink.Replay(req.ops, target)
		res := Result{Path: req.job.Path, Err: req.err, Elapsed: req.dur}
		results = append(results, res)
		if opts.Profile != nil {
			opts.Profile(res)
		}
	}
	return results
}

// parseOne parses a single job into a private buffering sink and returns
// its recorded operations, never touching the shared target sink directly
// -- that happens only in Run's single consumer goroutine.
func parseOne(job Job, opts Options) ([]func(sink.EventSink), error, time.Duration) {
	start := time.Now()

	src, err := os.ReadFile(job.Path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", job.Path, err), time.Since(start)
	}

	buf := sink.NewBuffering()
	var target sink.EventSink = buf
	if opts.Debug {
		target = sink.NewTracing(buf)
		log.Printf("orchestrator: parsing %s", job.Path)
	}

	p := parser.New(src, target, parser.Options{Macros: opts.Macros, ElideMacros: opts.ElideMacros})
	p.Parse(job.Path)

	return buf.Queue(), nil, time.Since(start)
}
