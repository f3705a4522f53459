package analysis

import (
	"fmt"
	"strings"
)

// CodeFile is one successfully read input file.
type CodeFile struct {
	Path     string
	BaseName string
	Content  string
}

// aggregate joins the files into one text blob, each wrapped in start/end
// markers naming its base name, in the order the files were given.
func aggregate(codeFiles []CodeFile) string {
	var segments []string
	for _, cf := range codeFiles {
		segments = append(segments,
			fmt.Sprintf("--- Start of code file: %s ---", cf.BaseName),
			cf.Content,
			fmt.Sprintf("--- End of code file: %s ---\n", cf.BaseName),
		)
	}
	return strings.Join(segments, "\n")
}

// BuildUserPrompt wraps the aggregated code text in the analysis directive.
// The framework document itself travels separately as the system instruction;
// only the directive and the code data belong here.
func BuildUserPrompt(codeFiles []CodeFile) string {
	return fmt.Sprintf(
		"Apply the Code Way framework (provided in the system prompt) to analyze the following code contained in %d file(s):\n\n"+
			"%s\n\n"+
			"Provide your analysis based *only* on the framework and the code provided.",
		len(codeFiles), aggregate(codeFiles),
	)
}
