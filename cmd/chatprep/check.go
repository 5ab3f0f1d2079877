package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	chatprep "github.com/alnah/go-chatprep"
	"github.com/alnah/go-chatprep/internal/mathcheck"
	"github.com/alnah/go-chatprep/internal/segment"
)

// checkResult holds diagnostics for one input.
type checkResult struct {
	File      string       `json:"file"`
	Status    string       `json:"status"` // "ready", "warnings", "errors"
	Math      mathInfo     `json:"math"`
	Citations citationInfo `json:"citations"`
	Warnings  []string     `json:"warnings,omitempty"`
	Errors    []string     `json:"errors,omitempty"`
}

// mathInfo holds formula scan results.
type mathInfo struct {
	Spans      int    `json:"spans"`
	Balanced   bool   `json:"balanced"`
	Incomplete string `json:"incomplete_tail,omitempty"`
}

// citationInfo holds citation marker scan results.
type citationInfo struct {
	Markers  int `json:"markers"`
	MaxIndex int `json:"max_index"`
}

// markerPattern matches citation markers like [3].
var markerPattern = regexp.MustCompile(`\[(\d+)\]`)

// runCheckCmd executes the check command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = problems found.
func runCheckCmd(ctx context.Context, args []string, env *Environment) int {
	jsonOutput := false
	var paths []string
	for _, arg := range args {
		if arg == "--json" {
			jsonOutput = true
			continue
		}
		paths = append(paths, arg)
	}

	checker := newContentChecker()

	var results []*checkResult
	if len(paths) == 0 {
		data, err := io.ReadAll(env.Stdin)
		if err != nil {
			fmt.Fprintf(env.Stderr, "%v\n", fmt.Errorf("%w: %v", ErrReadStdin, err))
			return ExitIO
		}
		results = append(results, checker.check(ctx, "<stdin>", string(data)))
	}
	for _, path := range paths {
		content, err := os.ReadFile(path) // #nosec G304 -- user-provided path
		if err != nil {
			fmt.Fprintf(env.Stderr, "%v\n", fmt.Errorf("%w: %v", ErrReadInput, err))
			return ExitIO
		}
		results = append(results, checker.check(ctx, path, string(content)))
	}

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(results)
	} else {
		printCheckResults(env.Stdout, results)
	}

	for _, r := range results {
		if r.Status == "errors" {
			return ExitGeneral
		}
	}
	return ExitSuccess
}

// contentChecker bundles the shared pieces used by per-input checks.
// The trial renderer runs the same profile the run command defaults to.
type contentChecker struct {
	pre      *chatprep.Preprocessor
	renderer *chatprep.PreviewRenderer
	math     *mathcheck.Checker
	scanOpts chatprep.Options
}

// newContentChecker creates the shared checker instances.
func newContentChecker() *contentChecker {
	renderOpts := chatprep.Options{
		EnableCustomFootnotes: true,
		EnableLaTeX:           true,
		IsChatMode:            true,
	}
	return &contentChecker{
		pre:      chatprep.NewPreprocessor(),
		renderer: chatprep.NewPreviewRenderer(renderOpts),
		math:     mathcheck.NewChecker(),
		scanOpts: chatprep.Options{EnableLaTeX: true},
	}
}

// check runs all diagnostics over one piece of content.
func (c *contentChecker) check(ctx context.Context, name, content string) *checkResult {
	result := &checkResult{File: name, Status: "ready"}

	if strings.TrimSpace(content) == "" {
		result.Math.Balanced = true
		result.Errors = append(result.Errors, "content cannot be empty")
		result.Status = "errors"
		return result
	}

	c.checkMath(ctx, content, result)
	c.checkCitations(content, result)
	c.checkRender(ctx, content, result)

	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}
	return result
}

// checkMath validates every formula plus the unterminated tail, if any.
// Formulas are scanned after delimiter normalization so \(..\) and
// \[..\] forms are covered too.
func (c *contentChecker) checkMath(ctx context.Context, content string, result *checkResult) {
	prepared := c.pre.Preprocess(ctx, content, c.scanOpts)

	for _, s := range segment.Scan(prepared) {
		var expr string
		switch s.Kind {
		case segment.KindMathInline:
			expr = prepared[s.Start+1 : s.End-1]
		case segment.KindMathBlock:
			expr = prepared[s.Start+2 : s.End-2]
		default:
			continue
		}
		result.Math.Spans++
		if err := c.math.Validate(expr); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("formula %d: %v", result.Math.Spans, err))
		}
	}

	tail := chatprep.ExtractIncompleteFormula(content)
	if tail == "" {
		result.Math.Balanced = true
		return
	}

	result.Math.Incomplete = truncateTail(tail)
	if err := c.math.Validate(tail); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("unterminated formula: %v", err))
	} else {
		result.Warnings = append(result.Warnings, "unterminated trailing formula (content may still be streaming)")
	}
}

// checkCitations counts [n] markers outside protected ranges.
func (c *contentChecker) checkCitations(content string, result *checkResult) {
	spans := segment.Scan(content)
	sawZero := false

	for _, m := range markerPattern.FindAllStringSubmatchIndex(content, -1) {
		if spans.Overlaps(m[0], m[1]) {
			continue
		}
		result.Citations.Markers++
		n, err := strconv.Atoi(content[m[2]:m[3]])
		if err != nil {
			continue
		}
		if n == 0 {
			sawZero = true
		}
		if n > result.Citations.MaxIndex {
			result.Citations.MaxIndex = n
		}
	}

	if sawZero {
		result.Warnings = append(result.Warnings, "citation marker [0] can never resolve")
	}
}

// checkRender runs a trial render through the full preview pipeline.
func (c *contentChecker) checkRender(ctx context.Context, content string, result *checkResult) {
	if _, err := c.renderer.Render(ctx, content); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("render failed: %v", err))
	}
}

// truncateTail keeps diagnostic output readable when the unfinished
// formula is long.
func truncateTail(s string) string {
	const max = 60
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

// printCheckResults outputs human-readable diagnostics.
func printCheckResults(w io.Writer, results []*checkResult) {
	fmt.Fprintln(w, "chatprep check")
	fmt.Fprintln(w)

	for _, r := range results {
		fmt.Fprintln(w, r.File)

		if r.Math.Balanced {
			fmt.Fprintf(w, "  [OK] Math: %d formula(s), balanced\n", r.Math.Spans)
		} else {
			fmt.Fprintf(w, "  [WARN] Math: %d formula(s), unterminated tail %q\n", r.Math.Spans, r.Math.Incomplete)
		}

		if r.Citations.Markers > 0 {
			fmt.Fprintf(w, "  [OK] Citations: %d marker(s), highest [%d]\n", r.Citations.Markers, r.Citations.MaxIndex)
		}

		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		for _, msg := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", msg)
		}

		switch r.Status {
		case "ready":
			fmt.Fprintln(w, "  Status: ready to render")
		case "warnings":
			fmt.Fprintln(w, "  Status: renderable with warnings")
		case "errors":
			fmt.Fprintln(w, "  Status: not ready (see errors above)")
		}
		fmt.Fprintln(w)
	}
}
