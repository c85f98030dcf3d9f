package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heliosam/clickup-setup/pkg/builder"
)

const planDoc = `
spaces:
  - name: Ops
    key: ops
    folders:
      - name: Maintenance
        lists:
          - name: Tickets
            type: corrective_maintenance
custom_fields:
  - name: Severity
    type: dropdown
    options: [Low, High]
    applies_to: [corrective_maintenance]
workflows:
  - name: Maintenance Workflow
    applies_to: [corrective_maintenance]
    statuses:
      - { name: Scheduled, type: open }
      - { name: Done, type: closed }
`

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestPlanCmd(t *testing.T) {
	cmd := NewPlanCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{writeDoc(t, planDoc)})

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "Tickets")
	assert.Contains(t, out, "Maintenance Workflow")
	assert.Contains(t, out, "corrective_maintenance")
}

func TestPlanCmdInvalidConfig(t *testing.T) {
	cmd := NewPlanCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{writeDoc(t, "spaces: []")})

	assert.Error(t, cmd.Execute())
}

func TestSetupCmdRequiresCredentials(t *testing.T) {
	t.Setenv("CLICKUP_API_TOKEN", "")
	t.Setenv("CLICKUP_TEAM_ID", "")

	cmd := NewSetupCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{writeDoc(t, planDoc)})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CLICKUP_API_TOKEN")
}

func TestSetupCmdMissingConfigIsFatal(t *testing.T) {
	t.Setenv("CLICKUP_API_TOKEN", "tok")
	t.Setenv("CLICKUP_TEAM_ID", "team")

	cmd := NewSetupCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "absent.yaml")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestStatusVerificationReportsFailedSpace(t *testing.T) {
	st := &builder.Structure{
		Order: []string{"ops", "broken"},
		Spaces: map[string]*builder.Space{
			"ops":    {Name: "Ops", Key: "ops", ID: "space-1", StatusesVerified: true},
			"broken": {Name: "Broken", Key: "broken", StatusesVerified: true},
		},
	}

	var buf bytes.Buffer
	printStatusVerification(&buf, st)

	out := buf.String()
	assert.Contains(t, out, "✓ Ops space: OK")
	assert.Contains(t, out, "✗ Broken space: space not created")
	assert.NotContains(t, out, "All custom statuses verified")
	// The manual status guide only applies to spaces that exist.
	assert.NotContains(t, out, "Add Status")
}

func TestVersionCmd(t *testing.T) {
	cmd := NewVersionCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "clickup-setup")
}
