// Package cli wires configuration, adapters and usecases into the mapextract command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/0xcro3dile/mapextract/internal/adapters/codec"
	"github.com/0xcro3dile/mapextract/internal/adapters/filestore"
	"github.com/0xcro3dile/mapextract/internal/adapters/filewatcher"
	"github.com/0xcro3dile/mapextract/internal/adapters/prompt"
	"github.com/0xcro3dile/mapextract/internal/adapters/runlog"
	"github.com/0xcro3dile/mapextract/internal/domain/entities"
	"github.com/0xcro3dile/mapextract/internal/domain/ports"
	"github.com/0xcro3dile/mapextract/internal/domain/usecases"
	"github.com/0xcro3dile/mapextract/internal/infrastructure/config"
	"github.com/0xcro3dile/mapextract/internal/infrastructure/logger"
)

// EnvConfig names the environment variable holding the configuration path.
const EnvConfig = "MAPEXTRACT_CONFIG"

type options struct {
	configPath string
	region     string
	envFile    string
	logLevel   string
	jsonLogs   bool
	follow     bool
	accessible bool
}

func bindFlags(flags *pflag.FlagSet, o *options) {
	flags.StringVarP(&o.configPath, "config", "c", "", "configuration file (default: $"+EnvConfig+" or config.json next to the binary)")
	flags.StringVarP(&o.region, "region", "r", "", "region number; prompts when empty")
	flags.StringVar(&o.envFile, "env-file", ".env", "environment file loaded before the configuration path is resolved")
	flags.StringVar(&o.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flags.BoolVar(&o.jsonLogs, "log-json", false, "emit diagnostic logs as JSON")
	flags.BoolVarP(&o.follow, "follow", "f", false, "keep copying region files written after the initial scan")
	flags.BoolVar(&o.accessible, "accessible", false, "plain line prompt instead of the interactive form")
}

// deps holds what the command creates at run time, replaceable in tests.
type deps struct {
	fs       afero.Fs
	prompter func(cmd *cobra.Command, o *options) ports.RegionPrompter
	watcher  func(codec ports.FilenameCodec, log ports.Logger) (ports.FileWatcher, error)
}

func defaultDeps() deps {
	return deps{
		fs: afero.NewOsFs(),
		prompter: func(cmd *cobra.Command, o *options) ports.RegionPrompter {
			return prompt.NewHuhPrompter(cmd.InOrStdin(), cmd.OutOrStdout(), o.accessible)
		},
		watcher: func(c ports.FilenameCodec, log ports.Logger) (ports.FileWatcher, error) {
			return filewatcher.NewFSNotifyWatcher(c, log)
		},
	}
}

// RootCmd returns the mapextract command.
func RootCmd() *cobra.Command {
	return newRootCmd(defaultDeps())
}

func newRootCmd(d deps) *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:   "mapextract",
		Short: "Copy the map files of a configured region into the output directory",
		Long: `mapextract copies every map_<X>_<Y> tile file and chunkdata_<X>_<Y> metadata file
that lies inside a configured region from the map directory to the output directory.
Source files are never modified or removed.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, o, d)
		},
	}
	bindFlags(cmd.Flags(), o)
	return cmd
}

func run(cmd *cobra.Command, o *options, d deps) error {
	if err := godotenv.Load(o.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", o.envFile, err)
	}

	log := logger.New(&logger.Config{
		Level:      logger.ParseLevel(o.logLevel),
		Output:     cmd.ErrOrStderr(),
		JSON:       o.jsonLogs,
		TimeFormat: "15:04:05",
	})

	cfgPath := resolveConfigPath(o.configPath)
	log.Debug("loading configuration", "path", cfgPath)
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	regions := cfg.RegionList()
	selection := o.region
	if selection == "" {
		selection, err = d.prompter(cmd, o).Prompt(cmd.Context(), regions)
		if err != nil {
			return err
		}
	}

	idx, region, err := usecases.ResolveRegion(selection, regions)
	if err != nil {
		return err
	}

	runLog := runlog.New(runlog.Options{
		Save:   cfg.Logs.Save,
		Dir:    cfg.Logs.Path,
		Fs:     d.fs,
		Logger: log,
	})
	runLog.EnableTreeView()
	describeRegion(runLog, idx, region)

	c := codec.NewUnderscoreCodec()
	store := filestore.NewAferoStore(d.fs)
	req := usecases.ExtractRequest{
		SourceDir: cfg.Path,
		OutputDir: cfg.OutputPath,
		Region:    region,
	}

	if _, err := usecases.NewExtractUseCase(c, store, runLog, log).Extract(cmd.Context(), req); err != nil {
		return err
	}

	if o.follow {
		if err := follow(cmd.Context(), d, c, store, runLog, log, req); err != nil {
			return err
		}
	}

	runLog.Timestamp()
	path, err := runLog.Save()
	if err != nil {
		return err
	}
	if path != "" {
		log.Info("run log saved", "path", path)
	}
	return nil
}

func follow(
	ctx context.Context,
	d deps,
	c ports.FilenameCodec,
	store ports.FileStore,
	runLog ports.RunLog,
	log *logger.Logger,
	req usecases.ExtractRequest,
) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := d.watcher(c, log)
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}

	runLog.AddHeader("Follow Log")
	summary, err := usecases.NewFollowUseCase(c, store, watcher, runLog, log).Follow(ctx, req)
	if summary != nil {
		log.Info("follow stopped", "map_files", summary.TilesCopied, "meta_files", summary.ChunksCopied)
	}
	return err
}

func describeRegion(runLog ports.RunLog, idx int, region entities.Region) {
	runLog.Timestamp()
	runLog.AddHeader(region.Name)
	runLog.Add(fmt.Sprintf("> Region: %d", idx))
	runLog.Add(fmt.Sprintf("> Start:  %d x %d  Chunk (%d x %d)",
		region.Start.TileX, region.Start.TileY, region.Start.ChunkX, region.Start.ChunkY))
	runLog.Add(fmt.Sprintf("> Stop:   %d x %d  Chunk (%d x %d)",
		region.Stop.TileX, region.Stop.TileY, region.Stop.ChunkX, region.Stop.ChunkY))
	runLog.AddHeader("Reset Log")
}

// resolveConfigPath prefers the flag, then the environment, then the binary's directory.
func resolveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(EnvConfig); env != "" {
		return env
	}
	return config.DefaultPath()
}
