package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/InfraSecConsult/surveillance-detector-go/internal/config"
	"github.com/InfraSecConsult/surveillance-detector-go/internal/correlator"
	"github.com/InfraSecConsult/surveillance-detector-go/internal/engine"
	"github.com/InfraSecConsult/surveillance-detector-go/internal/handlers"
	"github.com/InfraSecConsult/surveillance-detector-go/internal/logging"
	"github.com/InfraSecConsult/surveillance-detector-go/internal/metrics"
	"github.com/InfraSecConsult/surveillance-detector-go/internal/registry"
	"github.com/InfraSecConsult/surveillance-detector-go/internal/repository"
	"github.com/InfraSecConsult/surveillance-detector-go/internal/version"
	"github.com/InfraSecConsult/surveillance-detector-go/lib/model"
)

// DependencyProvider allows injection for testability
// (in production, the commands build real implementations from the config)
type DependencyProvider struct {
	Config     *config.Config
	Repository repository.Repository
	Engine     *engine.Engine
	Metrics    *prometheus.Registry
	Stdin      io.Reader
	Now        func() time.Time

	registry *registry.Registry
	server   *http.Server
}

func (p *DependencyProvider) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

// handlerOptions converts the handler section of the config
func handlerOptions(cfg *config.Config) handlers.Options {
	opts := handlers.DefaultOptions()
	opts.Logger = log.Logger
	opts.Allowlist = cfg.Handlers.Allowlist
	opts.SafeZoneTolerance = cfg.Handlers.SafeZoneTolerance
	opts.HistoryKeys = cfg.Handlers.HistoryKeys
	for _, z := range cfg.Handlers.SafeZones {
		opts.SafeZones = append(opts.SafeZones, model.Location{Latitude: z.Latitude, Longitude: z.Longitude})
	}
	return opts
}

// engine returns the injected engine or builds one with every built-in
// handler registered and started
func (p *DependencyProvider) engine(ctx context.Context) (*engine.Engine, error) {
	if p.Engine != nil {
		return p.Engine, nil
	}
	cfg := p.Config
	if p.Metrics == nil {
		p.Metrics = prometheus.NewRegistry()
	}
	m := metrics.New(p.Metrics)

	reg := registry.New(log.Logger, m, handlers.All(handlerOptions(cfg))...)
	if err := reg.StartAll(ctx); err != nil {
		return nil, fmt.Errorf("failed to start handlers: %w", err)
	}
	p.registry = reg

	p.Engine = engine.New(reg, engine.Options{
		Logger:              log.Logger,
		Metrics:             m,
		CrossProtocolWindow: cfg.Engine.CrossProtocolWindow,
		RecentDetections:    cfg.Engine.RecentDetections,
		Correlation: correlator.Options{
			Window:            cfg.Correlation.Window,
			IncidentGap:       cfg.Correlation.IncidentGap,
			LocationTolerance: cfg.Correlation.LocationTolerance,
			RecentWindow:      cfg.Correlation.RecentWindow,
		},
	})
	log.Info().
		Strs("protocols", protocolNames(reg.Protocols())).
		Int("device_types", reg.DeviceTypes()).
		Msg("Detection engine ready")
	return p.Engine, nil
}

// serveMetrics exposes the metrics registry when addr is set
func (p *DependencyProvider) serveMetrics(addr, path string) {
	if addr == "" {
		return
	}
	if p.Metrics == nil {
		p.Metrics = prometheus.NewRegistry()
	}
	mux := http.NewServeMux()
	mux.Handle(path, promhttp.HandlerFor(p.Metrics, promhttp.HandlerOpts{EnableOpenMetrics: true}))
	p.server = &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		log.Info().Str("addr", addr).Str("path", path).Msg("Serving metrics")
		if err := p.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Metrics server failed")
		}
	}()
}

// shutdown stops what the provider started itself
func (p *DependencyProvider) shutdown() {
	if p.registry != nil {
		if err := p.registry.StopAll(); err != nil {
			log.Warn().Err(err).Msg("Stopping handlers failed")
		}
		if err := p.registry.DestroyAll(); err != nil {
			log.Warn().Err(err).Msg("Destroying handlers failed")
		}
		p.registry = nil
	}
	if p.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = p.server.Shutdown(ctx)
		p.server = nil
	}
}

// newRootCmd wires up the CLI with the given dependencies
func newRootCmd(provider *DependencyProvider) *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "detector",
		Short:         "Surveillance detector - classify wireless observations and score surveillance threats",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if provider.Config == nil {
				cfg, err := config.Load(configPath)
				if err != nil {
					return err
				}
				provider.Config = cfg
			}
			settings := provider.Config.LoggingSettings()
			settings.Output = cmd.ErrOrStderr()
			logging.Init(settings)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file (default $"+config.ConfigPathEnvVar+")")

	rootCmd.AddCommand(
		newClassifyCmd(provider),
		newImportCmd(provider),
		newReplayCmd(provider),
		newProfilesCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the detector version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "json" {
				return writeJSON(cmd.OutOrStdout(), version.Get())
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "detector %s\n", version.GetFullVersion())
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text, json")
	return cmd
}

func protocolNames(protocols []model.Protocol) []string {
	names := make([]string, 0, len(protocols))
	for _, p := range protocols {
		names = append(names, string(p))
	}
	return names
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(&DependencyProvider{}).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
