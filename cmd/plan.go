package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	cmdconfig "github.com/heliosam/clickup-setup/cmd/config"
	"github.com/heliosam/clickup-setup/pkg/config"
)

func NewPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan [config.yaml]",
		Short: "Validate the config and show what setup would create",
		Long: `Parse and validate the workspace document, then print the spaces,
folders and lists it describes together with the custom fields and
required statuses per list. No API calls are made.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath := cmdconfig.WorkspaceConfigPath(args)
			ws, err := config.Load(cfgPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config %s is valid.\n\n", cfgPath)

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "SPACE\tFOLDER\tLIST\tTYPE\tFIELDS\tSTATUSES")
			fmt.Fprintln(w, "-----\t------\t----\t----\t------\t--------")
			for _, sp := range ws.Spaces {
				for _, folder := range sp.Folders {
					for _, list := range folder.Lists {
						fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\n",
							sp.Key, folder.Name, list.Name, list.Type,
							len(ws.FieldsFor(list.Type)), len(ws.StatusesFor(list.Type)))
					}
				}
			}
			w.Flush()

			printRequiredStatuses(cmd, ws)
			return nil
		},
	}
	return cmd
}

func printRequiredStatuses(cmd *cobra.Command, ws *config.Workspace) {
	if len(ws.Workflows) == 0 {
		return
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "\nStatus workflows (must exist in ClickUp before seeding examples):")
	for _, wf := range ws.Workflows {
		names := make([]string, 0, len(wf.Statuses))
		for _, s := range wf.Statuses {
			names = append(names, s.Name)
		}
		scope := "all lists"
		if len(wf.AppliesTo) > 0 {
			scope = strings.Join(wf.AppliesTo, ", ")
		}
		fmt.Fprintf(out, "   %s (%s): %s\n", wf.Name, scope, strings.Join(names, ", "))
	}
}
