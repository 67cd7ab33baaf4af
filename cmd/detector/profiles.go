package main

import (
	"fmt"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/InfraSecConsult/surveillance-detector-go/internal/profiles"
	"github.com/InfraSecConsult/surveillance-detector-go/lib/model"
)

func newProfilesCmd() *cobra.Command {
	var (
		category string
		privacy  string
		format   string
	)

	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List device-type profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list := profiles.All()
			if category != "" {
				list = profiles.ProfilesByCategory(category)
				if len(list) == 0 {
					return fmt.Errorf("unknown category %q, known: %v", category, profiles.AllCategories())
				}
			}
			if privacy != "" {
				impact, err := model.ParsePrivacyImpact(privacy)
				if err != nil {
					return err
				}
				list = slices.DeleteFunc(list, func(p model.DeviceTypeProfile) bool {
					return p.PrivacyImpact != impact
				})
			}

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				return writeJSON(out, list)
			case "table":
				w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "DEVICE TYPE\tNAME\tCATEGORY\tPRIVACY\tWEIGHT")
				for _, p := range list {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", p.DeviceType, p.Name, p.Category, p.PrivacyImpact, p.BaseThreatWeight)
				}
				return w.Flush()
			default:
				return fmt.Errorf("unsupported output format %q (use table or json)", format)
			}
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "Only list profiles of this category")
	cmd.Flags().StringVar(&privacy, "privacy", "", "Only list profiles with this privacy impact (LOW, MEDIUM, HIGH, CRITICAL)")
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table, json")
	return cmd
}
