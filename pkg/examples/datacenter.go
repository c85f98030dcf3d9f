package examples

import (
	"context"
	"fmt"

	"github.com/heliosam/clickup-setup/pkg/clickup"
)

const (
	datacenterSpaceKey = "development"
	datacenterFolder   = "Datacenters Development"
)

// CreateDatacenterExample seeds the "datacenter under development"
// project into the Development space. It is skipped when the space's
// statuses were not verified (the tasks reference custom status names)
// or when the expected folder is missing from the built structure.
func (s *Seeder) CreateDatacenterExample(ctx context.Context) bool {
	space := s.st.Space(datacenterSpaceKey)
	if space == nil || !space.StatusesVerified {
		return s.skipExample("🏭 Skipping datacenter example:",
			"custom statuses not verified for the Development space; create them in the ClickUp UI and rerun")
	}

	folder := space.Folder(datacenterFolder)
	if folder == nil {
		return s.skipExample("🏭 Skipping datacenter example:",
			fmt.Sprintf("folder %q not found", datacenterFolder))
	}

	fmt.Fprintln(s.out, "\n🏭 Creating example: Datacenter Under Development...")

	s.seedDatacenterPrefeasibility(ctx, folder.ListID("Prefeasibility & Site Selection"))
	s.seedDatacenterLandAcquisition(ctx, folder.ListID("Land Acquisition"))
	s.seedDatacenterPermitting(ctx, folder.ListID("Permitting & Licensing"))
	s.seedDatacenterEngineering(ctx, folder.ListID("Engineering & Design"))

	fmt.Fprintln(s.out, "   ✓ Datacenter project created across 4 phases")
	return true
}

func (s *Seeder) seedDatacenterPrefeasibility(ctx context.Context, listID string) {
	if listID == "" {
		return
	}
	parent := clickup.TaskRequest{
		Name:        "DC-Athens-001 Prefeasibility Study",
		Description: "5 MW datacenter facility in Athens industrial zone. Target: Hyperscale cloud clients. Budget: €15M",
		Status:      "Partner In Progress",
		Priority:    2,
		DueDate:     dueIn(14),
	}
	subtasks := []clickup.TaskRequest{
		{
			Name:        "Review site assessment report from technical partner",
			Description: "**Director View:** Check if technical specs align with hyperscale requirements.\n**PM View:** Ensure partner delivered all required sections (power, cooling, connectivity, seismic).",
			Status:      "In Planning",
			Priority:    2,
			DueDate:     dueIn(3),
		},
		{
			Name:        "Validate grid connection capacity with utility partner",
			Description: "**Director View:** Confirm 10 MVA capacity is guaranteed.\n**PM View:** Schedule call with PPC representative, document commitments.",
			Status:      "Awaiting Partner",
			Priority:    1,
			DueDate:     dueIn(5),
		},
		{
			Name:        "Review preliminary financial model",
			Description: "**Director View:** Validate IRR projections and compare with investment criteria.\n**PM View:** Check revenue assumptions, verify OPEX estimates with O&M partners.",
			Status:      "Review Required",
			Priority:    2,
			DueDate:     dueIn(7),
		},
		{
			Name:        "Coordinate market demand study with real estate partner",
			Description: "**Director View:** Need confirmation of anchor tenant interest.\n**PM View:** Follow up on partner meetings with potential clients, get LOIs.",
			Status:      "Partner In Progress",
			Priority:    2,
			DueDate:     dueIn(10),
		},
		{
			Name:        "Environmental pre-screening with consultant",
			Description: "**Director View:** Any red flags that could delay permitting?\n**PM View:** Ensure partner completes noise, flora/fauna, and contamination studies.",
			Status:      "Completed",
			Priority:    3,
		},
	}
	s.createProject(ctx, listID, parent, subtasks)
}

func (s *Seeder) seedDatacenterLandAcquisition(ctx context.Context, listID string) {
	if listID == "" {
		return
	}
	s.createTasks(ctx, listID, []clickup.TaskRequest{
		{
			Name:        "Land title verification - Legal partner (Papadopoulos & Associates)",
			Description: "**Director:** Critical path item - need clear title by month-end.\n**PM:** Chase partner for final cadastral report and ownership chain verification.",
			Status:      "Awaiting Partner",
			Priority:    1,
			DueDate:     dueIn(8),
		},
		{
			Name:        "Negotiate purchase terms with landowner",
			Description: "**Director:** Target €180/sqm, max €200/sqm. 12-month payment schedule.\n**PM:** Schedule meeting with owner and legal partner. Prepare term sheet.",
			Status:      "In Planning",
			Priority:    1,
			DueDate:     dueIn(15),
		},
		{
			Name:        "Coordinate due diligence with technical & legal partners",
			Description: "**Director:** Weekly sync needed - this is our gating item.\n**PM:** Consolidate reports from all partners, flag any issues immediately.",
			Status:      "Partner In Progress",
			Priority:    2,
			DueDate:     dueIn(20),
		},
	})
}

func (s *Seeder) seedDatacenterPermitting(ctx context.Context, listID string) {
	if listID == "" {
		return
	}
	s.createTasks(ctx, listID, []clickup.TaskRequest{
		{
			Name:        "Building permit application - Architecture partner coordination",
			Description: "**Director:** Any changes to timeline? EC declaration needed.\n**PM:** Ensure partner submits complete package to municipality. Track submission number.",
			Status:      "Not Started",
			Priority:    2,
			DueDate:     dueIn(45),
		},
		{
			Name:        "Environmental approval - Track consultant submission",
			Description: "**Director:** Environmental permit is 3-month process - can't delay.\n**PM:** Weekly status calls with environmental consultant. Escalate any authority questions.",
			Status:      "Not Started",
			Priority:    2,
			DueDate:     dueIn(90),
		},
		{
			Name:        "Fire safety approval coordination",
			Description: "**Director:** Need MEP engineer input on fire suppression systems.\n**PM:** Connect fire safety consultant with MEP partner. Review combined submission.",
			Status:      "Not Started",
			Priority:    3,
			DueDate:     dueIn(60),
		},
	})
}

func (s *Seeder) seedDatacenterEngineering(ctx context.Context, listID string) {
	if listID == "" {
		return
	}
	s.createTasks(ctx, listID, []clickup.TaskRequest{
		{
			Name:        "Review preliminary designs from MEP partner",
			Description: "**Director:** Focus on redundancy levels (N+1) and PUE targets (<1.3).\n**PM:** Coordinate review meeting with technical advisor. Document all change requests.",
			Status:      "Not Started",
			Priority:    2,
			DueDate:     dueIn(30),
		},
		{
			Name:        "Cooling system design review - Technical partner",
			Description: "**Director:** Hybrid cooling solution approved? Cost implications?\n**PM:** Ensure partner provides 3 options with CAPEX/OPEX comparison. Set up review session.",
			Status:      "Not Started",
			Priority:    2,
			DueDate:     dueIn(35),
		},
	})
}
