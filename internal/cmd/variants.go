package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skelkit/skel/internal/cmdutil"
	"github.com/skelkit/skel/internal/config"
	"github.com/skelkit/skel/internal/output"
	"github.com/skelkit/skel/internal/templates"
)

// NewVariantsCmd creates the variants command.
func NewVariantsCmd(_ *config.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "List embedded template variants",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			variants, err := templates.List()
			if err != nil {
				return cmdutil.Fail(c.ErrOrStderr(), err)
			}

			tbl := output.NewTable("VARIANT", "GRAMMAR", "FILES", "OPTIONS", "DESCRIPTION")
			for _, v := range variants {
				files, err := templates.ListTemplateFiles(v.Files)
				if err != nil {
					return cmdutil.Fail(c.ErrOrStderr(), fmt.Errorf("listing %s template files: %w", v.Name, err))
				}
				tbl.Row(v.Name, v.Grammar, strconv.Itoa(len(files)), strings.Join(v.Schema.Names(), ", "), v.Description)
			}
			fmt.Fprintln(c.OutOrStdout(), tbl.String())
			return nil
		},
	}
}
