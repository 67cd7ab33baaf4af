package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/InfraSecConsult/surveillance-detector-go/internal/engine"
	"github.com/InfraSecConsult/surveillance-detector-go/internal/logging"
	"github.com/InfraSecConsult/surveillance-detector-go/internal/repository"
	"github.com/InfraSecConsult/surveillance-detector-go/lib/model"
)

// readObservations decodes a stream of JSON observations, one per line, and
// hands each to fn in order
func readObservations(r io.Reader, fn func(model.Observation) error) error {
	dec := json.NewDecoder(r)
	for n := 1; ; n++ {
		var obs model.Observation
		err := dec.Decode(&obs)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to decode observation %d: %w", n, err)
		}
		if err := fn(obs); err != nil {
			return err
		}
	}
}

// openInput opens path, or returns stdin for "-". Gzip and zstd streams are
// detected by their magic bytes and decompressed transparently.
func openInput(path string, stdin io.Reader) (io.Reader, func(), error) {
	var (
		r       io.Reader
		closeFn = func() {}
	)
	if path == "-" {
		if stdin == nil {
			stdin = os.Stdin
		}
		r = stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open observations: %w", err)
		}
		r, closeFn = f, func() { f.Close() }
	}

	in, closeDecoder, err := decompress(r)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return in, func() {
		closeDecoder()
		closeFn()
	}, nil
}

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

func decompress(r io.Reader) (io.Reader, func(), error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(len(zstdMagic))

	switch {
	case bytes.HasPrefix(head, gzipMagic):
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open gzip stream: %w", err)
		}
		return zr, func() { zr.Close() }, nil
	case bytes.HasPrefix(head, zstdMagic):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open zstd stream: %w", err)
		}
		return zr, zr.Close, nil
	default:
		return br, func() {}, nil
	}
}

// session runs observations through the engine and prints what it finds
type session struct {
	ctx     context.Context
	engine  *engine.Engine
	printer *printer
	logger  zerolog.Logger
	latest  time.Time
	seen    int
	skipped int
}

func (s *session) process(obs model.Observation) error {
	s.seen++
	detections, err := s.engine.Process(s.ctx, obs)
	if err != nil {
		if ctxErr := s.ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		s.logger.Warn().Err(err).Int("observation", s.seen).Msg("Skipping observation")
		s.skipped++
		return nil
	}
	if obs.Timestamp.After(s.latest) {
		s.latest = obs.Timestamp
	}
	return s.printer.detections(detections)
}

// finish flushes the output and, when asked, prints the aggregate
// assessment as of the newest observation
func (s *session) finish(aggregate bool, fallback time.Time) error {
	if err := s.printer.flush(); err != nil {
		return err
	}
	s.logger.Info().Int("observations", s.seen).Int("skipped", s.skipped).Msg("Classification finished")
	if !aggregate {
		return nil
	}
	at := s.latest
	if at.IsZero() {
		at = fallback
	}
	return s.printer.aggregate(s.engine.AssessRecent(at))
}

func newClassifyCmd(provider *DependencyProvider) *cobra.Command {
	var (
		format      string
		aggregate   bool
		metricsAddr string
	)

	cmd := &cobra.Command{
		Use:   "classify <observations.jsonl|->",
		Short: "Classify JSON-lines observations and print the scored detections",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPrinter(cmd.OutOrStdout(), format)
			if err != nil {
				return err
			}
			in, closeInput, err := openInput(args[0], provider.Stdin)
			if err != nil {
				return err
			}
			defer closeInput()

			if metricsAddr == "" {
				metricsAddr = provider.Config.Metrics.Addr
			}
			provider.serveMetrics(metricsAddr, provider.Config.Metrics.Path)
			defer provider.shutdown()

			e, err := provider.engine(cmd.Context())
			if err != nil {
				return err
			}
			s := &session{ctx: cmd.Context(), engine: e, printer: p, logger: logging.Component(cmd.Name())}
			if err := readObservations(in, s.process); err != nil {
				return err
			}
			return s.finish(aggregate, provider.now())
		},
	}
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table, json")
	cmd.Flags().BoolVar(&aggregate, "aggregate", false, "Print the aggregate threat assessment at the end")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve prometheus metrics on this address while classifying")
	return cmd
}

// openRepository returns the injected repository or opens dbPath. The
// returned func closes only what was opened here.
func (p *DependencyProvider) openRepository(dbPath string) (repository.Repository, func(), error) {
	if p.Repository != nil {
		return p.Repository, func() {}, nil
	}
	if dbPath == "" {
		dbPath = p.Config.Database.Path
	}
	repo, err := repository.NewSQLiteRepository(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	log.Info().Str("path", dbPath).Msg("Using database")
	return repo, func() {
		if err := repo.Close(); err != nil {
			log.Warn().Err(err).Msg("Closing database failed")
		}
	}, nil
}

func newImportCmd(provider *DependencyProvider) *cobra.Command {
	var (
		dbPath    string
		batchSize int
		clearDB   bool
	)

	cmd := &cobra.Command{
		Use:   "import <observations.jsonl|->",
		Short: "Store JSON-lines observations in the SQLite capture database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if batchSize < 1 {
				return fmt.Errorf("batch size must be positive, got %d", batchSize)
			}
			if clearDB && provider.Repository == nil {
				path := dbPath
				if path == "" {
					path = provider.Config.Database.Path
				}
				log.Info().Str("path", path).Msg("Clearing database before import")
				if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
					return fmt.Errorf("failed to clear database: %w", err)
				}
			}

			in, closeInput, err := openInput(args[0], provider.Stdin)
			if err != nil {
				return err
			}
			defer closeInput()

			repo, closeRepo, err := provider.openRepository(dbPath)
			if err != nil {
				return err
			}
			defer closeRepo()

			startTime := time.Now()
			imported, skipped := 0, 0
			batch := make([]model.Observation, 0, batchSize)
			flush := func() error {
				if len(batch) == 0 {
					return nil
				}
				ids, err := repo.AddObservations(batch)
				if err != nil {
					return err
				}
				imported += len(ids)
				batch = batch[:0]
				return nil
			}

			err = readObservations(in, func(obs model.Observation) error {
				if err := obs.Validate(); err != nil {
					log.Warn().Err(err).Msg("Skipping invalid observation")
					skipped++
					return nil
				}
				batch = append(batch, obs)
				if len(batch) == batchSize {
					return flush()
				}
				return nil
			})
			if err != nil {
				return err
			}
			if err := flush(); err != nil {
				return err
			}

			log.Info().Int("imported", imported).Int("skipped", skipped).Dur("took", time.Since(startTime)).Msg("Import finished")
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d observations (%d skipped)\n", imported, skipped)
			return err
		},
	}
	cmd.Flags().StringVar(&dbPath, "db-path", "", "Path to the SQLite database file (default from config)")
	cmd.Flags().IntVar(&batchSize, "batch-size", 500, "Number of observations stored per transaction")
	cmd.Flags().BoolVar(&clearDB, "clear", false, "Clear the database before importing")
	return cmd
}

func newReplayCmd(provider *DependencyProvider) *cobra.Command {
	var (
		dbPath    string
		since     time.Duration
		protocol  string
		format    string
		aggregate bool
		perSecond float64
	)

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Classify observations stored in the SQLite capture database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPrinter(cmd.OutOrStdout(), format)
			if err != nil {
				return err
			}
			repo, closeRepo, err := provider.openRepository(dbPath)
			if err != nil {
				return err
			}
			defer closeRepo()

			var from time.Time
			if since > 0 {
				from = provider.now().Add(-since)
			}
			var observations []model.Observation
			if protocol != "" {
				proto, err := model.ParseProtocol(protocol)
				if err != nil {
					return err
				}
				observations, err = repo.ObservationsByProtocol(proto, from)
				if err != nil {
					return fmt.Errorf("failed to load observations: %w", err)
				}
			} else {
				observations, err = repo.Observations(from)
				if err != nil {
					return fmt.Errorf("failed to load observations: %w", err)
				}
			}
			log.Info().Int("observations", len(observations)).Msg("Replaying observations")

			defer provider.shutdown()
			e, err := provider.engine(cmd.Context())
			if err != nil {
				return err
			}
			var limiter *rate.Limiter
			if perSecond > 0 {
				limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
			}
			s := &session{ctx: cmd.Context(), engine: e, printer: p, logger: logging.Component(cmd.Name())}
			for _, obs := range observations {
				if limiter != nil {
					if err := limiter.Wait(cmd.Context()); err != nil {
						return err
					}
				}
				if err := s.process(obs); err != nil {
					return err
				}
			}
			return s.finish(aggregate, provider.now())
		},
	}
	cmd.Flags().StringVar(&dbPath, "db-path", "", "Path to the SQLite database file (default from config)")
	cmd.Flags().DurationVar(&since, "since", 0, "Only replay observations newer than this, e.g. 2h (default all)")
	cmd.Flags().StringVar(&protocol, "protocol", "", "Only replay one protocol")
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table, json")
	cmd.Flags().BoolVar(&aggregate, "aggregate", true, "Print the aggregate threat assessment at the end")
	cmd.Flags().Float64Var(&perSecond, "rate", 0, "Replay at most this many observations per second (default unlimited)")
	return cmd
}
