package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/hupe1980/wordbloom"
	"github.com/hupe1980/wordbloom/dictionary"
	"github.com/hupe1980/wordbloom/internal/message"
	wbprom "github.com/hupe1980/wordbloom/metrics/prometheus"
	"github.com/hupe1980/wordbloom/resource"
	"github.com/hupe1980/wordbloom/source"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type app struct {
	cfg    *config
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	logger  *wordbloom.Logger
	msg     *message.Printer
	metrics wordbloom.MetricsCollector
	prom    *wbprom.Collector
	server  *http.Server
}

func newApp(cfg *config, stdin io.Reader, stdout, stderr io.Writer) (*app, error) {
	a := &app{
		cfg:     cfg,
		stdin:   stdin,
		stdout:  stdout,
		stderr:  stderr,
		msg:     message.NewPrinter(cfg.lang),
		metrics: wordbloom.NoopMetricsCollector{},
	}

	if cfg.logFormat == "json" {
		a.logger = wordbloom.NewJSONLogger(stderr, cfg.logLevel)
	} else {
		a.logger = wordbloom.NewTextLogger(stderr, cfg.logLevel)
	}

	if cfg.metricsAddr != "" {
		if err := a.serveMetrics(cfg.metricsAddr); err != nil {
			return nil, err
		}
	}

	return a, nil
}

func (a *app) serveMetrics(addr string) error {
	reg := prometheus.NewRegistry()
	collector, err := wbprom.NewCollector(reg)
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("metrics listener: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	a.prom = collector
	a.metrics = collector
	a.server = &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := a.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("metrics server stopped", "error", err)
		}
	}()
	a.logger.Info("serving metrics", "addr", ln.Addr().String())

	return nil
}

func (a *app) close() {
	if a.server == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = a.server.Shutdown(ctx)
}

// fail prints a localized error for the user and returns err.
func (a *app) fail(key message.Key, err error) error {
	fmt.Fprintln(a.stderr, a.msg.Sprintf(key, err))
	return err
}

func (a *app) run(ctx context.Context) error {
	size, hashCount := a.cfg.size, a.cfg.hashCount
	if a.cfg.expectedWords > 0 {
		m, k, err := wordbloom.OptimalParams(a.cfg.expectedWords, a.cfg.targetFPR)
		if err != nil {
			return a.fail(message.LoadFailed, err)
		}
		size, hashCount = m, k
		a.logger.Info("filter sized for target rate",
			"expected_words", a.cfg.expectedWords,
			"target_fpr", a.cfg.targetFPR,
			"size", m,
			"hash_count", k,
		)
	}

	f, err := wordbloom.New(size, hashCount, wordbloom.WithHashFunc(a.cfg.hash))
	if err != nil {
		return a.fail(message.LoadFailed, err)
	}

	var known map[string]struct{}
	if a.cfg.fpSamples > 0 {
		known = make(map[string]struct{})
	}

	if err := a.load(ctx, f, known); err != nil {
		return a.fail(message.LoadFailed, err)
	}

	frozen := f.Freeze()
	a.logger.LogFilter(ctx, frozen)
	if a.prom != nil {
		a.prom.ObserveFilter(frozen)
	}

	if a.cfg.word != "" {
		a.check(ctx, frozen, a.cfg.word)
	}

	if a.cfg.fpSamples > 0 {
		a.reportFalsePositives(frozen, known)
	}

	if a.cfg.interactive {
		fmt.Fprintln(a.stdout, a.msg.Sprintf(message.FilterSummary, frozen.Size(), frozen.HashCount(), frozen.Count()))
		if err := a.interactive(ctx, frozen); err != nil {
			return a.fail(message.ReadFailed, err)
		}
	}

	return nil
}

func (a *app) load(ctx context.Context, f *wordbloom.Filter, known map[string]struct{}) error {
	resolver := source.NewResolver(
		source.WithStdin(a.stdin),
		source.WithLogger(a.logger),
		source.WithMinIOSecure(a.cfg.minioSecure),
		source.WithController(resource.NewController(resource.Config{
			MaxConcurrentFetches: a.cfg.fetchLimit,
			MemoryLimitBytes:     a.cfg.memoryLimit,
			IOLimitBytesPerSec:   a.cfg.ioLimit,
		})),
	)

	readers, err := resolver.FetchAll(ctx, a.cfg.dicts)
	if err != nil {
		return err
	}

	var dst dictionary.Inserter = f
	if known != nil {
		dst = &recordingInserter{dst: f, known: known}
	}

	var loadErr error
	for i, rd := range readers {
		if loadErr == nil {
			loc := a.cfg.dicts[i]

			opts := []dictionary.Option{
				dictionary.WithLogger(a.logger.WithSource(loc.String())),
				dictionary.WithMetricsCollector(a.metrics),
				dictionary.WithMaxSkipped(a.cfg.maxSkipped),
			}
			if a.cfg.strict {
				opts = append(opts, dictionary.WithStrict())
			}

			if _, err := dictionary.Load(ctx, rd, dst, opts...); err != nil {
				loadErr = fmt.Errorf("%s: %w", loc, err)
			}
		}
		_ = rd.Close()
	}

	return loadErr
}

func (a *app) check(ctx context.Context, q wordbloom.Querier, word string) {
	start := time.Now()
	possible := q.Contains(dictionary.Normalize(word))
	a.metrics.RecordQuery(possible, time.Since(start))
	a.logger.LogQuery(ctx, word, possible)

	key := message.NotPresent
	if possible {
		key = message.MaybePresent
	}
	fmt.Fprintln(a.stdout, a.msg.Sprintf(key, word))
}

type readResult struct {
	line string
	err  error
}

// interactive answers one query per stdin line until EOF or until ctx is
// canceled. Lines are read on a separate goroutine so a pending read does not
// hold off cancellation.
func (a *app) interactive(ctx context.Context, q wordbloom.Querier) error {
	fmt.Fprintln(a.stdout, a.msg.Sprintf(message.Prompt))

	done := make(chan struct{})
	defer close(done)

	lines := make(chan readResult)
	go func() {
		br := bufio.NewReader(a.stdin)
		for {
			line, err := br.ReadString('\n')
			select {
			case lines <- readResult{line: line, err: err}:
			case <-done:
				return
			}
			if err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			a.logger.Debug("interactive session canceled", "cause", context.Cause(ctx))
			return nil
		case res := <-lines:
			if word := strings.TrimSpace(res.line); word != "" {
				a.check(ctx, q, word)
			}
			if errors.Is(res.err, io.EOF) {
				return nil
			}
			if res.err != nil {
				return res.err
			}
		}
	}
}

type recordingInserter struct {
	dst   dictionary.Inserter
	known map[string]struct{}
}

func (r *recordingInserter) Add(word string) {
	r.dst.Add(word)
	r.known[word] = struct{}{}
}
