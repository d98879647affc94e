// Package cmdutil provides shared command utilities: flag groups, answer
// resolution, and error printing.
package cmdutil

import (
	"github.com/spf13/cobra"

	"github.com/skelkit/skel/internal/answers"
	"github.com/skelkit/skel/internal/config"
	"github.com/skelkit/skel/internal/output"
)

// AnswerFlags holds flags for commands that consume option answers
// (prune, generate).
type AnswerFlags struct {
	File string
	Set  []string
}

// AddTo registers the answer flags on the given cobra command.
func (f *AnswerFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.File, "answers", "a", "",
		"YAML or JSON file of option answers")
	cmd.Flags().StringArrayVar(&f.Set, "set", nil,
		"Set an answer as key=value (can be repeated)")
}

// Resolve merges answers with precedence: --set > --answers file > config
// defaults. Variant defaults, when any, are layered underneath by the caller.
func (f *AnswerFlags) Resolve(cfg *config.Config) (answers.Answers, error) {
	layers := make([]answers.Answers, 0, 3)

	if cfg != nil {
		layers = append(layers, answers.FromStrings(cfg.Defaults))
	}

	if f.File != "" {
		fromFile, err := answers.LoadFile(f.File)
		if err != nil {
			return nil, err
		}
		layers = append(layers, fromFile)
	}

	fromSet, err := answers.ParseSet(f.Set)
	if err != nil {
		return nil, err
	}
	layers = append(layers, fromSet)

	merged := answers.Merge(layers...)
	output.Debug("resolved answers", "keys", merged.Keys(), "file", f.File, "set", len(f.Set))
	return merged, nil
}
