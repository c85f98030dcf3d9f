package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	cmdconfig "github.com/heliosam/clickup-setup/cmd/config"
	"github.com/heliosam/clickup-setup/pkg/builder"
	"github.com/heliosam/clickup-setup/pkg/clickup"
	"github.com/heliosam/clickup-setup/pkg/config"
	"github.com/heliosam/clickup-setup/pkg/examples"
)

// credentials are the only required process inputs; missing either one
// aborts the run before any API call.
type credentials struct {
	APIToken string `env:"CLICKUP_API_TOKEN,required,notEmpty"`
	TeamID   string `env:"CLICKUP_TEAM_ID,required,notEmpty"`
}

func NewSetupCmd() *cobra.Command {
	var (
		skipExamples bool
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:   "setup [config.yaml]",
		Short: "Provision the ClickUp workspace from a config document",
		Long: `Create spaces, folders, lists, custom fields and views in ClickUp
from a declarative YAML document, verify that the required custom
statuses exist, and seed the two example projects.

Credentials come from the environment:
  CLICKUP_API_TOKEN   API token from app.clickup.com/settings/apps
  CLICKUP_TEAM_ID     Team ID from app.clickup.com/settings/teams`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logrus.New()
			log.SetOutput(os.Stderr)
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}

			var creds credentials
			if err := env.Parse(&creds); err != nil {
				return fmt.Errorf("CLICKUP_API_TOKEN and CLICKUP_TEAM_ID must be set: %w", err)
			}

			cfgPath := cmdconfig.WorkspaceConfigPath(args)
			ws, err := config.Load(cfgPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			client := clickup.New(creds.APIToken, creds.TeamID, cmdconfig.ClientOptions(log))

			fmt.Fprintln(out, strings.Repeat("=", 70))
			fmt.Fprintln(out, "CLICKUP WORKSPACE SETUP")
			fmt.Fprintln(out, strings.Repeat("=", 70))
			fmt.Fprintf(out, "Loading configuration from: %s\n\n", cfgPath)

			st := builder.New(client, ws, out, log).Build(cmd.Context())

			printStatusVerification(out, st)

			var dcCreated, pvCreated bool
			if skipExamples {
				fmt.Fprintln(out, "\nExample seeding skipped (--skip-examples)")
			} else {
				seeder := examples.New(client, st, out, log)
				dcCreated = seeder.CreateDatacenterExample(cmd.Context())
				pvCreated = seeder.CreatePVOperationsExample(cmd.Context())
			}

			printSummary(out, ws, st, dcCreated, pvCreated)
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipExamples, "skip-examples", false, "Do not seed the example projects")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

var titleCaser = cases.Title(language.English)

func printStatusVerification(out io.Writer, st *builder.Structure) {
	fmt.Fprintln(out, "\n"+strings.Repeat("=", 70))
	fmt.Fprintln(out, "STATUS VERIFICATION")
	fmt.Fprintln(out, strings.Repeat("=", 70))

	allOK := true
	anyMissing := false
	for _, key := range st.Order {
		sp := st.Spaces[key]
		mark := "✓"
		state := "OK"
		switch {
		case sp.ID == "":
			// The space was never created; there is nothing to verify.
			mark = "✗"
			state = "space not created"
			allOK = false
		case !sp.StatusesVerified:
			mark = "✗"
			state = "missing statuses"
			allOK = false
			anyMissing = true
		}
		fmt.Fprintf(out, "   %s %s space: %s\n", mark, titleCaser.String(strings.ReplaceAll(key, "_", " ")), state)
	}

	if allOK {
		fmt.Fprintln(out, "\n✅ All custom statuses verified")
		return
	}
	if !anyMissing {
		return
	}
	fmt.Fprintln(out, `
📝 To create the missing statuses manually:
   1. Open your workspace in ClickUp
   2. Navigate to each space and open any list
   3. Click the status dropdown, then "+ Add Status"
   4. Refer to the workflows section of your config for names and colors
   Rerun this command afterwards to seed the example projects.`)
}

func printSummary(out io.Writer, ws *config.Workspace, st *builder.Structure, dcCreated, pvCreated bool) {
	fmt.Fprintln(out, "\n"+strings.Repeat("=", 70))
	fmt.Fprintln(out, "SETUP COMPLETE - SUMMARY")
	fmt.Fprintln(out, strings.Repeat("=", 70))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CREATED\tCOUNT")
	fmt.Fprintln(w, "-------\t-----")
	fmt.Fprintf(w, "Spaces\t%d\n", st.Stats.Spaces)
	fmt.Fprintf(w, "Folders\t%d\n", st.Stats.Folders)
	fmt.Fprintf(w, "Lists\t%d\n", st.Stats.Lists)
	fmt.Fprintf(w, "Custom fields\t%d\n", st.Stats.Fields)
	fmt.Fprintf(w, "Views\t%d\n", st.Stats.Views)
	w.Flush()

	printSkippedFields(out, st)

	if dcCreated || pvCreated {
		fmt.Fprintln(out, "\n✅ Working examples:")
		if dcCreated {
			fmt.Fprintln(out, "   - Datacenter Under Development ✓")
		}
		if pvCreated {
			fmt.Fprintln(out, "   - Operating PV Park ✓")
		}
	}

	printAutomationGuide(out, ws)

	fmt.Fprintln(out, "\n📋 Next steps:")
	fmt.Fprintln(out, "   - Review the workspace in ClickUp and customize views as needed")
	fmt.Fprintln(out, "   - Statuses, automations and unsupported views must be set up in the UI")
	fmt.Fprintln(out, "   - Modify the config document and rerun to extend the structure")
}

// printSkippedFields lists fields that were never sent to the API,
// grouped by space/folder/list in walk order.
func printSkippedFields(out io.Writer, st *builder.Structure) {
	if len(st.Skipped) == 0 {
		return
	}
	fmt.Fprintf(out, "\n⚠️  Skipped custom fields (%d):\n", len(st.Skipped))
	var lastGroup string
	for _, sk := range st.Skipped {
		group := fmt.Sprintf("%s / %s / %s", sk.Space, sk.Folder, sk.List)
		if group != lastGroup {
			fmt.Fprintf(out, "   %s:\n", group)
			lastGroup = group
		}
		fmt.Fprintf(out, "      - %s (%s)\n", sk.Field, sk.Reason)
	}
}

// printAutomationGuide renders the documented automations as a manual
// setup checklist; the API cannot create them.
func printAutomationGuide(out io.Writer, ws *config.Workspace) {
	total := 0
	for _, autos := range ws.Automations {
		total += len(autos)
	}
	if total == 0 {
		return
	}

	keys := make([]string, 0, len(ws.Automations))
	for key := range ws.Automations {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fmt.Fprintf(out, "\n🤖 Automations (%d documented, create manually in the ClickUp UI):\n", total)
	for _, key := range keys {
		fmt.Fprintf(out, "   %s:\n", titleCaser.String(strings.ReplaceAll(key, "_", " ")))
		for i, auto := range ws.Automations[key] {
			fmt.Fprintf(out, "      %d. %s\n", i+1, auto.Name)
			if t := auto.Trigger["type"]; t != "" {
				fmt.Fprintf(out, "         Trigger: %s\n", t)
			}
			if a := auto.Action["type"]; a != "" {
				fmt.Fprintf(out, "         Action: %s\n", a)
			}
		}
	}
}
