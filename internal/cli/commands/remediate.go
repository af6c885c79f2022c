package commands

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/s4lift/s4lift/internal/cli/output"
	"github.com/s4lift/s4lift/pkg/remediate"
)

// RemediateOptions holds options for the remediate command.
type RemediateOptions struct {
	Write      bool     // Rewrite files in place
	Format     string   // Output format override: text, markdown, json
	Extensions []string // File extensions scanned when a path is a directory
	Watch      bool     // Keep running and re-remediate on file changes
}

// fileReport is the remediation outcome for one file.
type fileReport struct {
	Path       string            `json:"path"`
	Changed    bool              `json:"changed"`
	Issues     []remediate.Issue `json:"issues"`
	remediated string
}

// NewRemediateCommand creates the remediate command.
func NewRemediateCommand() *cobra.Command {
	opts := &RemediateOptions{}
	cmd := &cobra.Command{
		Use:   "remediate [path...]",
		Short: "Rewrite obsolete MM-IM table references in source files",
		Long: `Scan ABAP source files for obsolete MM-IM table names and rewrite them
to their S/4HANA replacements, annotating every change.

Read statements are rewritten; UPDATE, MODIFY, and DELETE FROM statements
targeting an obsolete table are left untouched and must be migrated by hand.

Without --write the files are not modified and the command reports what
would change. With no paths, source text is read from stdin and the
remediated text is written to stdout.`,
		Example: `  # Report rewrites for a directory tree
  s4lift remediate ./src

  # Rewrite files in place
  s4lift remediate --write ./src

  # Remediate a stream
  cat zmm_report.abap | s4lift remediate

  # Keep watching for changes
  s4lift remediate --write --watch ./src`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemediate(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Write, "write", "w", false, "Rewrite files in place")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().StringSliceVar(&opts.Extensions, "ext", []string{".abap"}, "File extensions scanned in directories")
	cmd.Flags().BoolVar(&opts.Watch, "watch", false, "Watch paths and re-remediate on change")

	return cmd
}

func runRemediate(cmd *cobra.Command, args []string, opts *RemediateOptions) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	r := cmdCtx.Renderer
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	// No paths: filter stdin to stdout, issues to stderr.
	if len(args) == 0 {
		if opts.Watch {
			return fmt.Errorf("--watch requires file or directory paths")
		}
		return remediateStream(cmd.InOrStdin(), cmd.OutOrStdout(), r, cmdCtx.Engine)
	}

	files, err := collectFiles(args, opts.Extensions)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no source files found under %s", strings.Join(args, ", "))
	}

	reports, err := remediateFiles(cmd.Context(), cmdCtx.Engine, files, opts.Write)
	if err != nil {
		return err
	}
	renderReports(r, reports, opts.Write)

	if opts.Watch {
		return watchAndRemediate(cmd.Context(), cmdCtx, r, args, opts)
	}
	return nil
}

// remediateStream remediates a single source text from a reader.
func remediateStream(in io.Reader, out io.Writer, r *output.Renderer, eng *remediate.Engine) error {
	src, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	remediated, issues := eng.Remediate(string(src))

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(fileReport{Path: "-", Changed: remediated != string(src), Issues: issues})
	}

	if _, err := io.WriteString(out, remediated); err != nil {
		return err
	}
	for _, is := range issues {
		r.Errorf("%s: %s\n", is.Table, is.SuggestedStatement)
	}
	return nil
}

// collectFiles expands the argument list into the set of files to process.
// Directories are walked recursively, keeping files with a matching
// extension; explicit file arguments are always kept.
func collectFiles(args, extensions []string) ([]string, error) {
	ext := make(map[string]bool, len(extensions))
	for _, e := range extensions {
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		ext[strings.ToLower(e)] = true
	}

	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			files = append(files, arg)
			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && ext[strings.ToLower(filepath.Ext(path))] {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	return files, nil
}

// remediateFiles processes files in parallel. Units are independent, so the
// only ordering constraint is within one file's text.
func remediateFiles(ctx context.Context, eng *remediate.Engine, files []string, write bool) ([]fileReport, error) {
	reports := make([]fileReport, len(files))

	eg, _ := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range files {
		i, path := i, path
		eg.Go(func() error {
			src, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}

			remediated, issues := eng.Remediate(string(src))
			report := fileReport{
				Path:       path,
				Changed:    remediated != string(src),
				Issues:     issues,
				remediated: remediated,
			}

			if write && report.Changed {
				if err := writeInPlace(path, remediated); err != nil {
					return err
				}
			}

			reports[i] = report
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// writeInPlace rewrites a file preserving its permission bits.
func writeInPlace(path, content string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func renderReports(r *output.Renderer, reports []fileReport, wrote bool) {
	if r.EffectiveMode() == output.ModeJSON {
		changed := make([]fileReport, 0, len(reports))
		for _, rep := range reports {
			if rep.Changed {
				changed = append(changed, rep)
			}
		}
		_ = r.JSON(changed)
		return
	}

	var totalRewrites, changedFiles int
	for _, rep := range reports {
		if !rep.Changed {
			continue
		}
		changedFiles++
		totalRewrites += len(rep.Issues)

		r.Println(r.Styles().FilePath.Render(rep.Path))
		t := table.NewWriter()
		t.SetOutputMirror(r.Out())
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"TABLE", "REPLACEMENT", "NOTE"})
		for _, is := range rep.Issues {
			t.AppendRow(table.Row{is.Table, is.TargetName, is.Note})
		}
		t.Render()
		r.Println("")
	}

	if changedFiles == 0 {
		r.Success("No obsolete table references found")
		return
	}

	verb := "would rewrite"
	if wrote {
		verb = "rewrote"
	}
	r.Printf("Summary: %s %d references in %d of %d files\n",
		verb, totalRewrites, changedFiles, len(reports))
}

// watchAndRemediate re-runs remediation whenever a watched file changes.
// Events are debounced because editors fire several writes per save.
func watchAndRemediate(ctx context.Context, cmdCtx *CommandContext, r *output.Renderer, args []string, opts *RemediateOptions) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	for _, arg := range args {
		if err := watchDirRecursive(watcher, arg); err != nil {
			return fmt.Errorf("watching %s: %w", arg, err)
		}
	}
	cmdCtx.Logger.Info("watching for changes", "paths", strings.Join(args, ", "))

	ext := make(map[string]bool, len(opts.Extensions))
	for _, e := range opts.Extensions {
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		ext[strings.ToLower(e)] = true
	}

	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			return nil

		case event := <-watcher.Events:
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !ext[strings.ToLower(filepath.Ext(event.Name))] {
				continue
			}

			path := event.Name
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(100*time.Millisecond, func() {
				reports, err := remediateFiles(ctx, cmdCtx.Engine, []string{path}, opts.Write)
				if err != nil {
					cmdCtx.Logger.Error("remediation failed", "file", path, "error", err)
					return
				}
				renderReports(r, reports, opts.Write)
			})

		case err := <-watcher.Errors:
			cmdCtx.Logger.Error("watcher error", "error", err)
		}
	}
}

// watchDirRecursive adds a path and, for directories, all subdirectories to
// the watcher.
func watchDirRecursive(watcher *fsnotify.Watcher, root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return watcher.Add(filepath.Dir(root))
	}
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}
