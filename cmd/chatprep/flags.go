package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config     string
	initConfig string
	quiet      bool
	verbose    bool
}

// renderFlags holds rendering toggles. Enable flags turn features on;
// no-* flags win over both config values and enable flags.
type renderFlags struct {
	allowHTML   bool
	animated    bool
	noChat      bool
	noLaTeX     bool
	noFootnotes bool
}

// citationFlags holds citation rewrite flags.
type citationFlags struct {
	count int
}

// cacheFlags holds result cache flags.
type cacheFlags struct {
	capacity int
}

// ioFlags holds input/output flags.
type ioFlags struct {
	output  string
	html    bool
	workers int
}

// styleFlags holds preview page styling flags.
type styleFlags struct {
	name string
}

// runFlags holds all flags for the run command.
type runFlags struct {
	common    commonFlags
	render    renderFlags
	citations citationFlags
	cache     cacheFlags
	io        ioFlags
	style     styleFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.initConfig, "init-config", "", "write the effective config to a file and exit")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-file timing")
}

// addRenderFlags adds rendering toggles to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.BoolVar(&f.allowHTML, "allow-html", false, "let raw HTML through (sanitized in preview)")
	fs.BoolVar(&f.animated, "animated", false, "wrap preview output in an entrance animation")
	fs.BoolVar(&f.noChat, "no-chat", false, "disable chat mode (soft line breaks)")
	fs.BoolVar(&f.noLaTeX, "no-latex", false, "disable LaTeX normalization")
	fs.BoolVar(&f.noFootnotes, "no-footnotes", false, "disable footnotes and citation rewriting")
}

// addCitationFlags adds citation flags to a FlagSet.
func addCitationFlags(fs *flag.FlagSet, f *citationFlags) {
	fs.IntVar(&f.count, "citations", 0, "number of resolvable citations (0 = disabled)")
}

// addCacheFlags adds cache flags to a FlagSet.
func addCacheFlags(fs *flag.FlagSet, f *cacheFlags) {
	fs.IntVar(&f.capacity, "cache-capacity", 0, "result cache capacity (0 = default)")
}

// addIOFlags adds input/output flags to a FlagSet.
func addIOFlags(fs *flag.FlagSet, f *ioFlags) {
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.BoolVar(&f.html, "html", false, "emit preview HTML instead of preprocessed text")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers for directory input (0 = auto)")
}

// addStyleFlags adds preview styling flags to a FlagSet.
func addStyleFlags(fs *flag.FlagSet, f *styleFlags) {
	fs.StringVar(&f.name, "style", "", "preview page style: built-in name, .css path, or 'none'")
}

// parseRunFlags parses run command flags and returns positional args.
func parseRunFlags(args []string) (*runFlags, []string, error) {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	f := &runFlags{}

	addCommonFlags(fs, &f.common)
	addRenderFlags(fs, &f.render)
	addCitationFlags(fs, &f.citations)
	addCacheFlags(fs, &f.cache)
	addIOFlags(fs, &f.io)
	addStyleFlags(fs, &f.style)

	fs.Usage = func() { printRunUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
