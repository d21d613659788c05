// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"code.hybscloud.com/envio/internal/scenario"
)

// ListEntry describes one scenario in list output.
type ListEntry struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Want        string `yaml:"want"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := make([]ListEntry, 0, len(scenario.All()))
			for _, s := range scenario.All() {
				entries = append(entries, ListEntry{Name: s.Name, Description: s.Description, Want: s.Want.String()})
			}

			if rootOpts.Format == "yaml" {
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent(2)
				if err := enc.Encode(entries); err != nil {
					return fmt.Errorf("encode scenarios: %w", err)
				}
				return enc.Close()
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%s\n", e.Name, e.Description)
			}
			return tw.Flush()
		},
	}
}
