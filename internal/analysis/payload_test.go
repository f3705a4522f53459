package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildUserPrompt_Markers(t *testing.T) {
	prompt := BuildUserPrompt([]CodeFile{
		{Path: "src/a.py", BaseName: "a.py", Content: "print('a')"},
	})

	assert.Contains(t, prompt, "--- Start of code file: a.py ---\nprint('a')\n--- End of code file: a.py ---\n")
	assert.Contains(t, prompt, "1 file(s)")
	assert.Contains(t, prompt, "Provide your analysis based *only* on the framework and the code provided.")
}

func TestBuildUserPrompt_OrderPreserving(t *testing.T) {
	prompt := BuildUserPrompt([]CodeFile{
		{BaseName: "a.py", Content: "aaa"},
		{BaseName: "b.py", Content: "bbb"},
		{BaseName: "c.py", Content: "ccc"},
	})

	posA := strings.Index(prompt, "--- Start of code file: a.py ---")
	posB := strings.Index(prompt, "--- Start of code file: b.py ---")
	posC := strings.Index(prompt, "--- Start of code file: c.py ---")

	assert.GreaterOrEqual(t, posA, 0)
	assert.Greater(t, posB, posA)
	assert.Greater(t, posC, posB)

	// Each file's end marker sits between its start marker and the next file.
	endA := strings.Index(prompt, "--- End of code file: a.py ---")
	assert.Greater(t, endA, posA)
	assert.Less(t, endA, posB)

	assert.Contains(t, prompt, "3 file(s)")
}

func TestBuildUserPrompt_ContentVerbatim(t *testing.T) {
	content := "def f(x):\n    return x * 2  # doubles\n"
	prompt := BuildUserPrompt([]CodeFile{{BaseName: "f.py", Content: content}})

	assert.Contains(t, prompt, content)
}
