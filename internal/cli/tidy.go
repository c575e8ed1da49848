package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/leapstack-labs/sqlscript/internal/cli/config"
	"github.com/leapstack-labs/sqlscript/internal/cli/output"
	"github.com/leapstack-labs/sqlscript/pkg/format"
	"github.com/leapstack-labs/sqlscript/pkg/scanner"
	"github.com/leapstack-labs/sqlscript/pkg/stmt"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// TidyOptions holds the sqltidy flags that select an output mode
// rather than configure formatting.
type TidyOptions struct {
	Write bool
	Check bool
	Watch bool
}

// NewTidyCommand creates the sqltidy root command.
func NewTidyCommand() *cobra.Command {
	opts := &TidyOptions{}

	cmd := newRootCommand(
		"sqltidy [file ...]",
		"Reformat SQL scripts",
		`sqltidy reformats SQL scripts into a consistent layout without
changing their meaning. It reads the named files, or standard input
when no files are given (or a file is -), and writes the reformatted
script to standard output.

Statements are split on the configured terminator, compound statement
bodies (BEGIN ... END) stay whole, and comments stay where they
appeared. Running the output through sqltidy again produces the same
text.`,
	)

	// Formatting flags participate in the config chain
	pf := cmd.PersistentFlags()
	pf.String("keyword-case", config.DefaultKeywordCase, "Keyword casing (upper|lower|preserve)")
	pf.Int("list-threshold", config.DefaultListThreshold, "Item count above which comma lists break one per line")

	_ = cmd.RegisterFlagCompletionFunc("keyword-case", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"upper", "lower", "preserve"}, cobra.ShellCompDirectiveNoFileComp
	})

	cmd.Flags().BoolVarP(&opts.Write, "write", "w", false, "Rewrite files in place instead of printing to stdout")
	cmd.Flags().BoolVar(&opts.Check, "check", false, "List files that would change and exit non-zero; write nothing")
	cmd.Flags().BoolVar(&opts.Watch, "watch", false, "Rewrite the named files whenever they change")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runTidy(cmd, args, opts)
	}

	cmd.AddCommand(NewVersionCommand("sqltidy", Version))

	return cmd
}

// tidyResult is the outcome of reformatting one source.
type tidyResult struct {
	source     Source
	formatted  string
	changed    bool
	statements int
	scanErr    error
	warnings   []string
}

func runTidy(cmd *cobra.Command, args []string, opts *TidyOptions) error {
	ctx := cmd.Context()
	cfg := GetConfig(ctx)
	r := GetRenderer(ctx)
	logger := config.GetLogger(ctx)

	if opts.Watch && opts.Check {
		return fmt.Errorf("--watch and --check cannot be combined")
	}
	if opts.Watch {
		return watchTidy(cmd, args)
	}

	sources, readErrs := ReadSources(cmd.InOrStdin(), args)
	for _, err := range readErrs {
		r.Errorf("%v", err)
	}

	logger.Info("tidying sources", "count", len(sources))
	results := tidyAll(sources, cfg, logger)

	summary := &output.RunSummary{}
	failed := len(readErrs)
	var needFormat []string

	for i := range results {
		res := &results[i]

		fileErrors := 0
		if res.scanErr != nil {
			fileErrors = 1
			failed++
			r.Errorf("%s: %v", res.source.Name, res.scanErr)
			if cfg.Verbose {
				var scanErr *scanner.ScanError
				if errors.As(res.scanErr, &scanErr) {
					if excerpt := scanErr.Excerpt(); excerpt != "" {
						r.Mutedf("%s", excerpt)
					}
				}
			}
		}
		if !cfg.Quiet {
			for _, w := range res.warnings {
				r.Warningf("%s: %s", res.source.Name, w)
			}
		}

		summary.Add(output.FileSummary{
			Path:       res.source.Name,
			Statements: res.statements,
			Errors:     fileErrors,
			Warnings:   len(res.warnings),
			Changed:    res.changed,
		})

		switch {
		case opts.Check:
			if res.changed {
				needFormat = append(needFormat, res.source.Name)
			}
		case opts.Write && !res.source.Stdin:
			if res.changed {
				if err := os.WriteFile(res.source.Name, []byte(res.formatted), 0o644); err != nil {
					failed++
					r.Errorf("failed to write %s: %v", res.source.Name, err)
				}
			}
		default:
			fmt.Fprint(cmd.OutOrStdout(), res.formatted)
		}
	}

	for _, name := range needFormat {
		r.Println(name)
	}
	if cfg.Verbose {
		if err := r.RenderSummary(summary); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d sources had errors", failed, len(sources)+len(readErrs))
	}
	if opts.Check && len(needFormat) > 0 {
		return fmt.Errorf("%d of %d sources need formatting", len(needFormat), len(sources))
	}
	return nil
}

// tidyAll reformats sources in argument order, so diagnostics and
// stdout output line up with the command line.
func tidyAll(sources []Source, cfg *config.Config, logger *slog.Logger) []tidyResult {
	results := make([]tidyResult, len(sources))
	for i, src := range sources {
		results[i] = tidySource(src, cfg, logger)
	}
	return results
}

// tidySource scans, segments, and reformats one source. A scan error
// does not stop formatting: the error token carries the remaining text,
// so the output still round-trips and the error is reported alongside.
func tidySource(src Source, cfg *config.Config, logger *slog.Logger) tidyResult {
	start := time.Now()
	res := tidyResult{source: src}

	kwCase, _ := format.ParseKeywordCase(cfg.KeywordCase)
	fopts := format.Options{
		ListItemThreshold: cfg.ListThreshold,
		KeywordCase:       kwCase,
		Dialect:           activeDialect(cfg),
	}

	stmts, warnings, scanErr := scanSource(src, cfg)
	res.scanErr = scanErr
	res.warnings = warnings

	// Formatting is pure per statement, so statements fan out; the
	// indexed slice keeps emission order deterministic.
	keep := make([]*stmt.Statement, 0, len(stmts))
	for i := range stmts {
		if !stmts[i].IsWhitespace() {
			keep = append(keep, &stmts[i])
		}
	}
	formatted := make([]string, len(keep))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, st := range keep {
		g.Go(func() error {
			formatted[i] = format.Format(st, fopts)
			return nil
		})
	}
	_ = g.Wait()

	res.statements = len(keep)
	res.formatted = strings.Join(formatted, "\n")
	res.changed = res.formatted != src.Text

	logger.Debug("tidied source",
		"source", src.Name,
		"statements", res.statements,
		"changed", res.changed,
		"duration", time.Since(start))
	return res
}

// watchTidy rewrites the named files in place every time they change.
// Formatting is idempotent, so the filesystem event our own rewrite
// triggers settles after one extra pass instead of looping.
func watchTidy(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := GetConfig(ctx)
	r := GetRenderer(ctx)
	logger := config.GetLogger(ctx)

	if len(args) == 0 {
		return fmt.Errorf("--watch requires at least one file argument")
	}
	files := make(map[string]string, len(args)) // absolute path -> name as given
	dirs := make(map[string]struct{})
	for _, arg := range args {
		if arg == "-" {
			return fmt.Errorf("--watch cannot read from stdin")
		}
		abs, err := filepath.Abs(arg)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", arg, err)
		}
		files[abs] = arg
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	rewrite := func(name string) {
		data, err := os.ReadFile(name)
		if err != nil {
			r.Errorf("failed to read %s: %v", name, err)
			return
		}
		res := tidySource(Source{Name: name, Text: string(data)}, cfg, logger)
		if res.scanErr != nil {
			// Likely a half-typed literal; leave the file alone
			r.Errorf("%s: %v", name, res.scanErr)
			return
		}
		if !cfg.Quiet {
			for _, w := range res.warnings {
				r.Warningf("%s: %s", name, w)
			}
		}
		if !res.changed {
			return
		}
		if err := os.WriteFile(name, []byte(res.formatted), 0o644); err != nil {
			r.Errorf("failed to write %s: %v", name, err)
			return
		}
		r.Success(fmt.Sprintf("reformatted %s", name))
	}

	// Initial pass so the files start clean
	for _, name := range files {
		rewrite(name)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch parent directories rather than the files themselves;
	// editors that save by rename-and-replace would otherwise drop
	// the watch after the first save.
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	logger.Info("watching for changes", "files", len(files))
	if !cfg.Quiet {
		r.Mutedf("watching %d file(s), press Ctrl+C to stop", len(files))
	}

	// Debounce timer
	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-sigChan:
			logger.Info("shutting down")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			name, watched := files[abs]
			if !watched {
				continue
			}

			// Debounce the event burst a single save produces
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(100*time.Millisecond, func() {
				rewrite(name)
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch error", "error", err)
		}
	}
}
