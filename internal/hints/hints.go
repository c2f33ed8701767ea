// Package hints builds short, actionable suffixes for user-facing errors.
// Every hint has the form "\n  hint: <text>" so it can be appended to a message.
package hints

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-nb2html/internal/fileutil"
)

// IsInContainer reports whether the process runs inside a container.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ciVars are set by the common CI providers.
var ciVars = []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL"}

// InCI reports whether a CI provider variable is set.
func InCI() bool {
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}

// ForBrowserConnect suggests rod environment variables when Chrome fails to start.
func ForBrowserConnect() string {
	var hints []string

	if (InCI() || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use a local Chrome")
	}

	return formatHints(hints)
}

// ForTimeout returns a hint about raising the PDF timeout.
func ForTimeout() string {
	return format("for notebooks with many charts, raise --timeout")
}

// ForNotebookNotFound hints at the fix for a missing input notebook.
// A path without the .ipynb extension gets a specific nudge.
func ForNotebookNotFound(path string) string {
	if path != "" && filepath.Ext(path) != ".ipynb" {
		return format("notebooks use the .ipynb extension; check " + path)
	}
	return format("pass the notebook path as an argument or set input.defaultPath in the config")
}

// ForInvalidNotebook returns a hint for undecodable notebook files.
func ForInvalidNotebook() string {
	return format("the file must be a JSON object with a \"cells\" array; re-save it from Jupyter")
}

// ForConfigNotFound suggests --config or creating one of the searched files.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/go-nb2html/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check the parent directory exists and is writable")
}

// ForStyleNotFound lists the styles that do exist.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForMarkdownEngine lists the accepted markdown engines.
func ForMarkdownEngine(engines []string) string {
	if len(engines) == 0 {
		return ""
	}
	return format("accepted engines: " + strings.Join(engines, ", "))
}

// ForChartLabels explains how chart labels map to charts.
func ForChartLabels() string {
	return format("labels are matched to charts by position; missing ones fall back to chart_<n>")
}

func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
