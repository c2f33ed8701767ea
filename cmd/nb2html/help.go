package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: nb2html <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render     Convert notebooks to HTML pages")
	fmt.Fprintln(w, "  charts     Extract Plotly charts as standalone pages")
	fmt.Fprintln(w, "  doctor     Check rendering and the PDF browser")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "'nb2html <file.ipynb>' is short for 'nb2html render <file.ipynb>'.")
	fmt.Fprintln(w, "Run 'nb2html help <command>' for details on a specific command.")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: nb2html render <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert notebooks to self-contained HTML pages.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Notebook or directory (optional if config has input.defaultPath)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>         Output file or directory")
	fmt.Fprintln(w, "  -c, --config <name>         Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>           Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --pdf                   Also print each page to PDF")
	fmt.Fprintln(w, "  -t, --timeout <d>           PDF timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "      --charts                Also extract charts")
	fmt.Fprintln(w, "      --charts-dir <path>     Chart output directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "      --title <s>             Page title (\"\" = notebook title or first H1)")
	fmt.Fprintln(w, "      --heading <s>           Header heading")
	fmt.Fprintln(w, "      --subtitle <s>          Italic line under the heading")
	fmt.Fprintln(w, "      --date <s>              Dateline: text, auto, auto:long, auto:[On] D MMM YYYY")
	fmt.Fprintln(w, "      --back-label <s>        Navigation link label")
	fmt.Fprintln(w, "      --back-url <url>        Navigation link URL")
	fmt.Fprintln(w, "      --plotly-url <url>      Chart library script")
	fmt.Fprintln(w, "      --language <s>          Code language when the notebook names none")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "      --style <s>             Style name, CSS file, or CSS text")
	fmt.Fprintln(w, "      --asset-path <dir>      Custom asset directory")
	fmt.Fprintln(w, "      --engine <s>            Markdown engine: basic, goldmark")
	fmt.Fprintln(w, "      --highlight             Highlight code input")
	fmt.Fprintln(w, "      --highlight-style <s>   Chroma style (implies --highlight)")
	fmt.Fprintln(w, "      --sanitize              Sanitize HTML outputs")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                 Only show errors")
	fmt.Fprintln(w, "  -v, --verbose               Show timing and diagnostics")
}

// printChartsUsage prints usage for the charts command.
func printChartsUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: nb2html charts <notebook> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write one standalone page per Plotly chart. Charts are named from")
	fmt.Fprintln(w, "charts.labels in the config, by position; the rest are chart_<n>.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <dir>          Chart output directory")
	fmt.Fprintln(w, "      --plotly-url <url>      Chart library script")
	fmt.Fprintln(w, "  -c, --config <name>         Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet                 Only show errors")
	fmt.Fprintln(w, "  -v, --verbose               Show diagnostics")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case cmdRender:
		printRenderUsage(env.Stdout)
	case cmdCharts:
		printChartsUsage(env.Stdout)
	case cmdDoctor:
		fmt.Fprintln(env.Stdout, "Usage: nb2html doctor [--json]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Render a sample notebook and look for Chrome. Chrome is only")
		fmt.Fprintln(env.Stdout, "required for --pdf; without it the status is a warning.")
	case cmdVersion:
		fmt.Fprintln(env.Stdout, "Usage: nb2html version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case cmdHelp:
		fmt.Fprintln(env.Stdout, "Usage: nb2html help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
