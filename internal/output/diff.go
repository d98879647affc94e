package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"
)

// DiffYAML returns a human-readable, YAML-aware diff from one document to
// another, or "" when they are equal. Map key order is not a difference.
func DiffYAML(fromName string, from []byte, toName string, to []byte, useColor bool) (string, error) {
	fromInput, err := yamlInput(fromName, from)
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", fromName, err)
	}
	toInput, err := yamlInput(toName, to)
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", toName, err)
	}

	report, err := dyff.CompareInputFiles(fromInput, toInput)
	if err != nil {
		return "", fmt.Errorf("comparing YAML: %w", err)
	}
	if len(report.Diffs) == 0 {
		return "", nil
	}

	var buf bytes.Buffer
	w := &dyff.HumanReport{
		Report:       report,
		NoTableStyle: !useColor,
		OmitHeader:   true,
	}
	if err := w.WriteReport(&buf); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	lines := strings.Split(buf.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

func yamlInput(name string, data []byte) (ytbx.InputFile, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ytbx.InputFile{Location: name}, nil
	}

	docs, err := ytbx.LoadYAMLDocuments(data)
	if err != nil {
		return ytbx.InputFile{}, err
	}
	return ytbx.InputFile{Location: name, Documents: docs}, nil
}
