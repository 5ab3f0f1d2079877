package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: chatprep <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  run        Preprocess chat markdown for rendering (default)")
	fmt.Fprintln(w, "  check      Diagnose content for formula and rendering problems")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'chatprep help <command>' for details on a specific command.")
}

// printRunUsage prints usage for the run command.
func printRunUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: chatprep run [input] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Preprocess chat markdown for safe rendering.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file or directory (reads stdin when omitted)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers for directories (0 = auto)")
	fmt.Fprintln(w, "      --html                Emit preview HTML instead of preprocessed text")
	fmt.Fprintln(w, "      --style <name>        Preview style: built-in name, .css path, or 'none'")
	fmt.Fprintln(w, "      --init-config <path>  Write the effective config to a file and exit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "      --allow-html          Let raw HTML through (sanitized in preview)")
	fmt.Fprintln(w, "      --animated            Wrap preview output in an entrance animation")
	fmt.Fprintln(w, "      --no-chat             Disable chat mode (newlines stay soft)")
	fmt.Fprintln(w, "      --no-latex            Disable LaTeX normalization")
	fmt.Fprintln(w, "      --no-footnotes        Disable footnotes and citation rewriting")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Citations:")
	fmt.Fprintln(w, "      --citations <n>       Number of resolvable citations (0 = disabled)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Cache:")
	fmt.Fprintln(w, "      --cache-capacity <n>  Result cache capacity (0 = default)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show per-file timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Directory input writes one output per file: <name>.html with --html,")
	fmt.Fprintln(w, "<name>.prep<ext> otherwise. Single-file input without -o prints to stdout.")
}

// printCheckUsage prints usage for the check command.
func printCheckUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: chatprep check [files...] [--json]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Diagnose content without writing output: validates every formula,")
	fmt.Fprintln(w, "reports unterminated trailing math, counts citation markers, and")
	fmt.Fprintln(w, "runs a trial render. Reads stdin when no files are given.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --json    Emit machine-readable JSON instead of text")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exits 0 when every input is renderable (warnings included), 1 otherwise.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "run":
		printRunUsage(env.Stdout)
	case "check":
		printCheckUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: chatprep version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: chatprep help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
