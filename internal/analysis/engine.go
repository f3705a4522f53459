package analysis

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"codeway/config"
	"codeway/internal/files"
	"codeway/internal/llm"
)

const previewLimit = 500

// Engine orchestrates one analysis run: load the framework document, read the
// code files, assemble the payload, invoke the model once, and hand back the
// analysis text. Every state is visited at most once; there are no retries.
type Engine struct {
	cfg    *config.Config
	client llm.Client
	diag   io.Writer
}

// NewEngine creates an Engine for one run.
func NewEngine(cfg *config.Config, client llm.Client) *Engine {
	return &Engine{
		cfg:    cfg,
		client: client,
		diag:   os.Stderr,
	}
}

// Run executes the full flow and returns the analysis text. An empty string
// with a nil error means the model answered without producing text; a non-nil
// error means the run failed and nothing should be printed on stdout.
func (e *Engine) Run(ctx context.Context, paths []string) (string, error) {
	logrus.Infof("Reading Code Way framework from: %s", e.cfg.FrameworkPath)
	framework, err := files.ReadTextFile(e.cfg.FrameworkPath)
	if err != nil {
		return "", fmt.Errorf("failed to read framework document '%s': %w", e.cfg.FrameworkPath, err)
	}

	codeFiles := e.readCodeFiles(paths)
	if len(codeFiles) == 0 {
		return "", errors.New("no valid code files could be read")
	}
	logrus.Infof("Successfully read %d code file(s).", len(codeFiles))

	userPrompt := BuildUserPrompt(codeFiles)

	if e.cfg.Verbose {
		e.printPreview(framework, userPrompt)
	}

	// Never send a request without framework context.
	if strings.TrimSpace(framework) == "" {
		return "", fmt.Errorf("framework document '%s' is empty", e.cfg.FrameworkPath)
	}

	logrus.Infof("Sending request to %s (model: %s)...", e.cfg.Provider, e.client.Model())
	text, err := e.client.Complete(ctx, llm.Request{
		System:    framework,
		Prompt:    userPrompt,
		MaxTokens: e.cfg.MaxTokens,
	})
	if err != nil {
		e.reportCallFailure(err)
		return "", err
	}

	return text, nil
}

// readCodeFiles reads each path in argument order. A file that cannot be read
// is warned about and skipped; it never aborts the run.
func (e *Engine) readCodeFiles(paths []string) []CodeFile {
	var codeFiles []CodeFile
	for _, path := range paths {
		logrus.Infof("Processing: %s...", path)
		content, err := files.ReadTextFile(path)
		if err != nil {
			logrus.Warnf("Skipping file %s due to read error: %v", path, err)
			continue
		}
		codeFiles = append(codeFiles, CodeFile{
			Path:     path,
			BaseName: filepath.Base(path),
			Content:  content,
		})
	}
	return codeFiles
}

// reportCallFailure logs an actionable message for each variant of the closed
// error set before the failure propagates.
func (e *Engine) reportCallFailure(err error) {
	var connErr *llm.ConnectivityError
	var statusErr *llm.StatusError

	switch {
	case errors.As(err, &connErr):
		logrus.Errorf("API connection error: please check your network connection. %v", connErr.Err)
	case errors.As(err, &statusErr):
		logrus.Errorf("API status error: %d - %s", statusErr.Code, statusErr.Detail)
		if hint := statusErr.Hint(); hint != "" {
			logrus.Errorf("   (%s)", hint)
		}
	default:
		logrus.Errorf("An unexpected error occurred during the API call: %v", err)
	}
}

// printPreview shows what is about to be sent: the system instruction
// truncated for readability, the user payload in full.
func (e *Engine) printPreview(framework, userPrompt string) {
	preview := framework
	if len(preview) > previewLimit {
		cut := previewLimit
		for cut > 0 && !utf8.RuneStart(preview[cut]) {
			cut--
		}
		preview = preview[:cut]
	}
	fmt.Fprintln(e.diag, "--- Prompts being sent ---")
	fmt.Fprintf(e.diag, "[SYSTEM PROMPT from %s]:\n%s... (truncated)\n", e.cfg.FrameworkPath, preview)
	fmt.Fprintln(e.diag, "\n[USER PROMPT]:")
	fmt.Fprintln(e.diag, userPrompt)
	fmt.Fprintln(e.diag, "--------------------------")
}
