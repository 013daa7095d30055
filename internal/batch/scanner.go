// Package batch decodes every replay file under a directory tree.
package batch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	marblereplay "github.com/raniellyferreira/marble-replay"
)

// DefaultExt is the extension of replay files
const DefaultExt = ".replay"

// Result is the outcome of decoding one file
type Result struct {
	Path        string
	Fingerprint uint64 // xxhash64 of the file content
	Size        int64
	Rewindables int
	Types       map[string]int

	// Duplicate is set on every file whose content matches a file earlier
	// in path order; its outcome is copied from that file
	Duplicate bool

	Err     error
	Elapsed time.Duration
}

// Scanner decodes replay files in parallel
type Scanner struct {
	Decoder  *marblereplay.Decoder
	Workers  int    // defaults to GOMAXPROCS
	Ext      string // defaults to DefaultExt
	FailFast bool   // stop at the first failing file
	Logger   marblereplay.Logger

	flight singleflight.Group
	mu     sync.Mutex
	seen   map[uint64]outcome
}

type outcome struct {
	rewindables int
	types       map[string]int
	err         error
}

// Scan walks root and decodes every matching file. Results are sorted by
// path. With FailFast the first decode error is returned along with the
// results gathered so far; otherwise errors are only reported per result.
func (s *Scanner) Scan(ctx context.Context, root string) ([]Result, error) {
	if s.Decoder == nil {
		return nil, fmt.Errorf("batch: scanner has no decoder")
	}

	paths, err := s.collect(root)
	if err != nil {
		return nil, err
	}

	workers := s.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	s.mu.Lock()
	s.seen = make(map[uint64]outcome)
	s.mu.Unlock()

	results := make([]Result, len(paths))
	done := make([]bool, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range paths {
		if gctx.Err() != nil {
			break
		}
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res := s.decodeFile(path)
			results[i] = res
			done[i] = true
			if res.Err != nil && s.FailFast {
				return fmt.Errorf("%s: %w", res.Path, res.Err)
			}
			return nil
		})
	}
	err = g.Wait()

	out := make([]Result, 0, len(results))
	for i, res := range results {
		if done[i] {
			out = append(out, res)
		}
	}
	markDuplicates(out)

	s.logSummary(out, err)
	if err == nil {
		err = ctx.Err()
	}
	return out, err
}

// collect returns the matching files under root sorted by path
func (s *Scanner) collect(root string) ([]string, error) {
	ext := s.Ext
	if ext == "" {
		ext = DefaultExt
	}

	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ext) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("batch: walk %s: %w", root, err)
	}
	sort.Strings(paths)
	return paths, nil
}

func (s *Scanner) decodeFile(path string) Result {
	start := time.Now()
	res := Result{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		res.Err = err
		res.Elapsed = time.Since(start)
		return res
	}
	res.Size = int64(len(data))
	res.Fingerprint = xxhash.Sum64(data)

	// identical content decoding concurrently shares one decode
	key := strconv.FormatUint(res.Fingerprint, 16)
	v, _, _ := s.flight.Do(key, func() (interface{}, error) {
		s.mu.Lock()
		o, ok := s.seen[res.Fingerprint]
		s.mu.Unlock()
		if ok {
			return o, nil
		}

		o = s.decode(data)
		s.mu.Lock()
		s.seen[res.Fingerprint] = o
		s.mu.Unlock()
		return o, nil
	})

	o := v.(outcome)
	res.Rewindables = o.rewindables
	res.Types = o.types
	res.Err = o.err
	res.Elapsed = time.Since(start)
	return res
}

func (s *Scanner) decode(data []byte) outcome {
	_, buf, err := s.Decoder.DecodeReplay(data)
	if err != nil {
		return outcome{err: err}
	}
	return outcome{
		rewindables: len(buf.Rewindables),
		types:       buf.TypeCounts(),
	}
}

// markDuplicates flags every result whose fingerprint appeared at an
// earlier path. results must be sorted by path.
func markDuplicates(results []Result) {
	first := make(map[uint64]bool)
	for i := range results {
		r := &results[i]
		if r.Size == 0 && r.Fingerprint == 0 {
			continue // unreadable
		}
		if first[r.Fingerprint] {
			r.Duplicate = true
			continue
		}
		first[r.Fingerprint] = true
	}
}

func (s *Scanner) logSummary(results []Result, err error) {
	if s.Logger == nil {
		return
	}
	sum := Summarize(results)
	fields := []marblereplay.Field{
		{Key: "files", Value: sum.Files},
		{Key: "failed", Value: sum.Failed},
		{Key: "duplicates", Value: sum.Duplicates},
	}
	if err != nil {
		s.Logger.Error("Scan stopped", append(fields, marblereplay.Field{Key: "error", Value: err})...)
		return
	}
	s.Logger.Info("Scan complete", fields...)
}

// Summary aggregates scan results
type Summary struct {
	Files       int
	Decoded     int
	Failed      int
	Duplicates  int
	Rewindables int
	Bytes       int64
	Types       map[string]int
}

// Summarize totals results, counting each distinct content once
func Summarize(results []Result) Summary {
	sum := Summary{Types: make(map[string]int)}
	for _, r := range results {
		sum.Files++
		sum.Bytes += r.Size
		if r.Duplicate {
			sum.Duplicates++
			continue
		}
		if r.Err != nil {
			sum.Failed++
			continue
		}
		sum.Decoded++
		sum.Rewindables += r.Rewindables
		for name, n := range r.Types {
			sum.Types[name] += n
		}
	}
	return sum
}
