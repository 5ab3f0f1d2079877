package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	chatprep "github.com/alnah/go-chatprep"
	"github.com/alnah/go-chatprep/internal/assets"
	"github.com/alnah/go-chatprep/internal/config"
	"github.com/alnah/go-chatprep/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrReadInput          = errors.New("failed to read input file")
	ErrReadStdin          = errors.New("failed to read stdin")
	ErrWriteOutput        = errors.New("failed to write output file")
	ErrInvalidExtension   = errors.New("file must have .md, .markdown, or .txt extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Preview style handling. "none" is reserved: it produces an unstyled page.
const (
	defaultStyleName = "chat"
	styleNone        = "none"
)

// textExtensions are the input extensions the run command accepts.
var textExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".txt":      true,
}

// transformFunc turns raw input content into output content.
type transformFunc func(ctx context.Context, content string) (string, error)

// FileToProcess represents a single file to process.
type FileToProcess struct {
	InputPath  string
	OutputPath string
}

// ProcessResult holds the outcome of a single file.
type ProcessResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// runPreprocess orchestrates the run command.
func runPreprocess(ctx context.Context, positionalArgs []string, flags *runFlags, env *Environment) error {
	// Environment variables fill whatever flags and config leave open
	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	// Validate worker count early
	workers := flags.io.workers
	if workers == 0 {
		workers = envCfg.Workers
	}
	if err := validateWorkers(workers); err != nil {
		return err
	}

	// Load configuration
	cfg := env.Config
	configName := flags.common.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}
	if configName != "" {
		loaded, err := config.LoadConfig(configName)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		return err
	}

	// --init-config writes the effective config for later editing
	if flags.common.initConfig != "" {
		if err := config.WriteConfig(flags.common.initConfig, cfg); err != nil {
			return err
		}
		if !flags.common.quiet {
			fmt.Fprintf(env.Stdout, "Wrote %s\n", flags.common.initConfig)
		}
		return nil
	}

	opts := buildOptions(cfg)
	css, err := resolveStyleCSS(cfg)
	if err != nil {
		return err
	}
	transform := buildTransform(opts, cfg, css)

	// No input argument means stdin
	if len(positionalArgs) == 0 {
		return processStdin(ctx, transform, flags.io.output, env)
	}

	inputPath := positionalArgs[0]
	outputDir := resolveOutputDir(flags.io.output, cfg)

	info, err := os.Stat(inputPath)
	if err != nil {
		return err
	}

	// A single file without a destination prints to stdout
	if !info.IsDir() && outputDir == "" {
		return processToWriter(ctx, transform, inputPath, env.Stdout)
	}

	// Discover files to process
	files, err := discoverFiles(inputPath, outputDir, cfg.Output.HTML)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}

	if len(files) == 0 {
		return fmt.Errorf("no text files found in %s", inputPath)
	}

	workerCount := resolveWorkerCount(workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Workers: %d\n", workerCount)
	}

	// Process files
	results := processBatch(ctx, transform, files, workerCount)

	// Print results
	failedCount := printResults(results, flags.common.quiet, flags.common.verbose, env)
	if failedCount > 0 {
		return fmt.Errorf("%d file(s) failed", failedCount)
	}

	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *runFlags, cfg *config.Config) {
	// Enable flags
	if flags.render.allowHTML {
		cfg.Render.AllowHTML = true
	}
	if flags.render.animated {
		cfg.Render.Animated = true
	}
	if flags.io.html {
		cfg.Output.HTML = true
	}

	// Disable flags
	if flags.render.noChat {
		cfg.Render.ChatMode = false
	}
	if flags.render.noLaTeX {
		cfg.Render.LaTeX = false
	}
	if flags.render.noFootnotes {
		cfg.Render.Footnotes = false
	}

	// Numeric flags
	if flags.citations.count > 0 {
		cfg.Citations.Count = flags.citations.count
	}
	if flags.cache.capacity > 0 {
		cfg.Cache.Capacity = flags.cache.capacity
	}

	// Style
	if flags.style.name != "" {
		cfg.Output.Style = flags.style.name
	}
}

// resolveOutputDir determines the output destination from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// buildOptions maps config onto library options.
func buildOptions(cfg *config.Config) chatprep.Options {
	return chatprep.Options{
		AllowHTML:             cfg.Render.AllowHTML,
		Animated:              cfg.Render.Animated,
		EnableCustomFootnotes: cfg.Render.Footnotes,
		EnableLaTeX:           cfg.Render.LaTeX,
		IsChatMode:            cfg.Render.ChatMode,
		CitationsLength:       cfg.Citations.Count,
	}
}

// buildTransform constructs the per-file transform. Text mode runs the
// preprocessor alone; HTML mode runs the full preview pipeline and wraps
// the fragment into a standalone page. Either way a single instance is
// shared, so cached results carry across files.
func buildTransform(opts chatprep.Options, cfg *config.Config, css string) transformFunc {
	var preOpts []chatprep.Option
	if cfg.Cache.Capacity > 0 {
		preOpts = append(preOpts, chatprep.WithCacheCapacity(cfg.Cache.Capacity))
	}

	if cfg.Output.HTML {
		renderer := chatprep.NewPreviewRenderer(opts, preOpts...)
		return func(ctx context.Context, content string) (string, error) {
			fragment, err := renderer.Render(ctx, content)
			if err != nil {
				return "", err
			}
			return buildPreviewPage(previewTitle, css, fragment), nil
		}
	}

	pre := chatprep.NewPreprocessor(preOpts...)
	return func(ctx context.Context, content string) (string, error) {
		return pre.Preprocess(ctx, content, opts), ctx.Err()
	}
}

// resolveStyleCSS resolves the configured style to CSS content. Text
// mode and the reserved name "none" yield no CSS. A value with a path
// separator is read from disk; anything else is an embedded style name.
func resolveStyleCSS(cfg *config.Config) (string, error) {
	if !cfg.Output.HTML {
		return "", nil
	}

	style := cfg.Output.Style
	if style == "" {
		style = defaultStyleName
	}
	if style == styleNone {
		return "", nil
	}

	if fileutil.IsFilePath(style) {
		data, err := os.ReadFile(style) // #nosec G304 -- user-provided path
		if err != nil {
			return "", fmt.Errorf("reading style: %w", err)
		}
		return string(data), nil
	}

	return assets.LoadStyle(style)
}

// discoverFiles finds all text files to process.
func discoverFiles(inputPath, outputDir string, wantHTML bool) ([]FileToProcess, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateExtension(inputPath); err != nil {
			return nil, err
		}
		outPath := resolveOutputPath(inputPath, outputDir, "", wantHTML)
		return []FileToProcess{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	var files []FileToProcess
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !textExtensions[filepath.Ext(path)] {
			return nil
		}
		// Outputs from a previous run are not inputs
		if strings.Contains(filepath.Base(path), ".prep.") {
			return nil
		}
		outPath := resolveOutputPath(path, outputDir, inputPath, wantHTML)
		files = append(files, FileToProcess{InputPath: path, OutputPath: outPath})
		return nil
	})

	return files, err
}

// resolveOutputPath determines the output path for an input file.
func resolveOutputPath(inputPath, outputDir, baseInputDir string, wantHTML bool) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext)

	outName := base + ".prep" + ext
	if wantHTML {
		outName = base + ".html"
	}

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), outName)
	}

	// An extension means the flag names a file, not a directory
	if filepath.Ext(outputDir) != "" {
		return outputDir
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			relDir := filepath.Dir(relPath)
			return filepath.Join(outputDir, relDir, outName)
		}
	}

	return filepath.Join(outputDir, outName)
}

// validateExtension checks that the file has a supported text extension.
func validateExtension(path string) error {
	ext := filepath.Ext(path)
	if !textExtensions[ext] {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
	}
	return nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, MaxWorkers)
	}
	return nil
}

// processStdin reads all of stdin, transforms it, and writes the result
// to stdout or the output path.
func processStdin(ctx context.Context, transform transformFunc, output string, env *Environment) error {
	data, err := io.ReadAll(env.Stdin)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadStdin, err)
	}

	result, err := transform(ctx, string(data))
	if err != nil {
		return err
	}

	if output == "" {
		fmt.Fprint(env.Stdout, result)
		return nil
	}
	return writeOutput(output, result)
}

// processToWriter transforms a single file to the given writer.
func processToWriter(ctx context.Context, transform transformFunc, inputPath string, w io.Writer) error {
	if err := validateExtension(inputPath); err != nil {
		return err
	}

	content, err := os.ReadFile(inputPath) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	result, err := transform(ctx, string(content))
	if err != nil {
		return err
	}

	fmt.Fprint(w, result)
	return nil
}

// processBatch transforms files concurrently.
func processBatch(ctx context.Context, transform transformFunc, files []FileToProcess, workers int) []ProcessResult {
	if len(files) == 0 {
		return nil
	}

	if workers > len(files) {
		workers = len(files)
	}

	results := make([]ProcessResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ProcessResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = processFile(ctx, transform, files[idx])
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// processFile transforms a single file and returns the result.
func processFile(ctx context.Context, transform transformFunc, f FileToProcess) ProcessResult {
	start := time.Now()
	result := ProcessResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadInput, err)
		result.Duration = time.Since(start)
		return result
	}

	output, err := transform(ctx, string(content))
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	if err := writeOutput(f.OutputPath, output); err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	result.Duration = time.Since(start)
	return result
}

// writeOutput writes result content, creating parent directories.
func writeOutput(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	// #nosec G306 -- outputs are meant to be readable
	if err := os.WriteFile(path, []byte(content), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// printResults outputs batch results using the environment writers.
func printResults(results []ProcessResult, quiet, verbose bool, env *Environment) int {
	var succeeded, failed int

	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		succeeded++
		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", succeeded, failed)
	}

	return failed
}
