package output

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"vixwatch/internal/payload"
)

// GitHubWriter appends workflow outputs to the file GitHub Actions points
// GITHUB_OUTPUT at. It is a best-effort collaborator: callers log a failed
// Append and move on, it never affects the run's exit code.
type GitHubWriter struct {
	Path string
}

// NewGitHubWriter creates a writer for the given output file path. An empty
// path disables the writer.
func NewGitHubWriter(path string) *GitHubWriter {
	return &GitHubWriter{Path: path}
}

// Enabled reports whether an output file path is configured
func (w *GitHubWriter) Enabled() bool {
	return w != nil && w.Path != ""
}

// Append writes the per-run output variables followed by the full payload
// between heredoc markers for downstream JSON parsing. The file is opened,
// written and closed within this call; it is closed on every path.
func (w *GitHubWriter) Append(p payload.Payload) error {
	if !w.Enabled() {
		return nil
	}

	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	var b strings.Builder
	b.WriteString("vix_value=" + strconv.FormatFloat(p.Vix, 'f', -1, 64) + "\n")
	b.WriteString("vix_exceeded=" + strconv.FormatBool(p.Exceeded) + "\n")
	b.WriteString("vix_source=" + p.Source + "\n")
	b.WriteString("vix_payload<<EOF\n")
	b.Write(raw)
	b.WriteString("\nEOF\n")

	f, err := os.OpenFile(w.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open output file: %w", err)
	}

	if _, err := f.WriteString(b.String()); err != nil {
		f.Close()
		return fmt.Errorf("failed to write outputs: %w", err)
	}

	return f.Close()
}
