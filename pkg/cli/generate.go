package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/distroforge/distroforge/pkg/config"
	"github.com/distroforge/distroforge/pkg/console"
	"github.com/distroforge/distroforge/pkg/dockerfile"
	"github.com/distroforge/distroforge/pkg/matrix"
	"github.com/distroforge/distroforge/pkg/output"
)

var (
	configFlag string
	outputFlag string
	gitFlag    bool
)

func newGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the matrix and write it out",
		Args:  cobra.NoArgs,
		RunE:  runGenerate,
	}
	cmd.Flags().StringVar(&configFlag, "config", config.Filename, "Config file selecting the matrix slice")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output directory or git repository (overrides config)")
	cmd.Flags().BoolVar(&gitFlag, "git", false, "Write per-tag git branches instead of files")
	return cmd
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFlag)
	if errors.Is(err, os.ErrNotExist) {
		// No config means the full default matrix.
		console.Debug("no config file at %s, using defaults", configFlag)
		return &config.Config{}, nil
	}
	return cfg, err
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	gen, err := cfg.Generator()
	if err != nil {
		return err
	}

	mode := cfg.Output.Mode
	if mode == "" {
		mode = config.OutputDir
	}
	if gitFlag {
		mode = config.OutputGit
	}
	path := cfg.Output.Path
	if outputFlag != "" {
		path = outputFlag
	}
	if path == "" {
		path = "generated"
	}
	path, err = homedir.Expand(path)
	if err != nil {
		return err
	}

	m, err := generateParallel(gen)
	if err != nil {
		return err
	}
	console.Info("generated %d Dockerfiles", len(m))

	switch mode {
	case config.OutputDir:
		if err := output.WriteDir(path, m); err != nil {
			return err
		}
		console.Info("wrote matrix to %s", path)
	case config.OutputGit:
		w, err := output.OpenGit(path)
		if err != nil {
			return err
		}
		if err := w.WriteAll(m); err != nil {
			return err
		}
		console.Info("wrote matrix branches to %s", path)
	default:
		return fmt.Errorf("unknown output mode %q", mode)
	}
	return nil
}

// generateParallel fans single-cell generation out over the product
// space. Cells share no mutable state, so only the result map needs a
// lock.
func generateParallel(gen *matrix.Generator) (map[string]dockerfile.Dockerfile, error) {
	var (
		mu  sync.Mutex
		out = make(map[string]dockerfile.Dockerfile)
		eg  errgroup.Group
	)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for _, cell := range gen.Cells() {
		cell := cell
		eg.Go(func() error {
			tag, df, err := gen.Generate(cell)
			if err != nil {
				return fmt.Errorf("generating %s: %w", cell, err)
			}
			console.Debug("generated %s", tag)
			mu.Lock()
			defer mu.Unlock()
			if _, dup := out[tag]; dup {
				return fmt.Errorf("duplicate tag %s in matrix", tag)
			}
			out[tag] = df
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
