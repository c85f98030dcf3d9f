package examples

import (
	"context"
	"fmt"

	"github.com/heliosam/clickup-setup/pkg/clickup"
)

const (
	pvSpaceKey = "operations"
	pvFolder   = "Solar PV Operations"
)

// CreatePVOperationsExample seeds the "operating PV park" project into
// the Operations space, under the same gating rules as the datacenter
// example.
func (s *Seeder) CreatePVOperationsExample(ctx context.Context) bool {
	space := s.st.Space(pvSpaceKey)
	if space == nil || !space.StatusesVerified {
		return s.skipExample("☀️  Skipping PV operations example:",
			"custom statuses not verified for the Operations space; create them in the ClickUp UI and rerun")
	}

	folder := space.Folder(pvFolder)
	if folder == nil {
		return s.skipExample("☀️  Skipping PV operations example:",
			fmt.Sprintf("folder %q not found", pvFolder))
	}

	fmt.Fprintln(s.out, "\n☀️  Creating example: Operating PV Park...")

	s.seedPVPerformanceMonitoring(ctx, folder.ListID("Performance Monitoring"))
	s.seedPVMaintenance(ctx, folder.ListID("Maintenance Management"))
	s.seedPVCompliance(ctx, folder.ListID("Compliance & Reporting"))

	fmt.Fprintln(s.out, "   ✓ PV operations project created across 3 areas")
	return true
}

func (s *Seeder) seedPVPerformanceMonitoring(ctx context.Context, listID string) {
	if listID == "" {
		return
	}
	parent := clickup.TaskRequest{
		Name:        "PV-Kozani-05 Performance Monitoring (50 MW)",
		Description: "Operating solar park in Kozani. O&M Partner: Hellenic Solar Services. Monthly target: 7,500 MWh",
		Status:      "In Progress",
		Priority:    2,
	}
	subtasks := []clickup.TaskRequest{
		{
			Name:        "Review daily production data from SCADA",
			Description: "**Director:** Quick check - are we on target? Any anomalies?\n**O&M PM:** Log into monitoring portal, check actual vs. forecast. Flag if <95% of expected.",
			Status:      "In Progress",
			Priority:    2,
			DueDate:     dueIn(0),
		},
		{
			Name:        "Weekly performance report to director",
			Description: "**Director:** Need energy yield, availability %, any issues, and financial impact.\n**O&M PM:** Compile SCADA data, calculate PR (performance ratio), summarize inverter issues.",
			Status:      "Scheduled",
			Priority:    2,
			DueDate:     dueIn(2),
		},
		{
			Name:        "Follow up on Inverter #12 underperformance with O&M partner",
			Description: "**Director:** This has been ongoing for 5 days - revenue impact?\n**O&M PM:** Chase partner for root cause analysis. Demand repair schedule or replacement.",
			Status:      "Partner Assigned",
			Priority:    1,
			DueDate:     dueIn(1),
		},
		{
			Name:        "Monthly revenue reconciliation with off-taker",
			Description: "**Director:** Ensure invoicing matches production. Cash flow check.\n**O&M PM:** Cross-check MWh invoiced vs. metered. Resolve any discrepancies with commercial team.",
			Status:      "Scheduled",
			Priority:    2,
			DueDate:     dueIn(5),
		},
		{
			Name:        "Coordinate weather-adjusted forecasting with partner",
			Description: "**Director:** Need accurate monthly forecast for board reporting.\n**O&M PM:** Send actual weather data to forecasting partner. Update monthly target if significant deviation.",
			Status:      "In Progress",
			Priority:    3,
			DueDate:     dueIn(7),
		},
	}
	s.createProject(ctx, listID, parent, subtasks)
}

func (s *Seeder) seedPVMaintenance(ctx context.Context, listID string) {
	if listID == "" {
		return
	}
	s.createTasks(ctx, listID, []clickup.TaskRequest{
		{
			Name:        "Q1 Preventive Maintenance - Coordinate with O&M partner",
			Description: "**Director:** Confirm downtime won't exceed 2 days. Budget check.\n**O&M PM:** Review partner's maintenance plan. Verify spare parts availability. Schedule during low-irradiance period.",
			Status:      "Scheduled",
			Priority:    2,
			DueDate:     dueIn(21),
		},
		{
			Name:        "Panel cleaning service - Review partner performance",
			Description: "**Director:** Are we seeing production uplift post-cleaning?\n**O&M PM:** Compare before/after production data. If <3% improvement, challenge partner's methods.",
			Status:      "Under Review",
			Priority:    3,
			DueDate:     dueIn(3),
		},
		{
			Name:        "URGENT: Transformer oil analysis - Coordinate with maintenance contractor",
			Description: "**Director:** Transformer failure would cost us €200k in lost revenue. Priority.\n**O&M PM:** Expedite oil sample to lab. If dissolved gas analysis shows issues, schedule immediate intervention.",
			Status:      "Issue/Escalated",
			Priority:    1,
			DueDate:     dueIn(0),
		},
		{
			Name:        "Vegetation management - Monitor partner execution",
			Description: "**Director:** Fire risk in summer - must be completed by May.\n**O&M PM:** Inspect areas cleared by contractor. Ensure compliance with fire department requirements.",
			Status:      "Partner Assigned",
			Priority:    2,
			DueDate:     dueIn(14),
		},
	})
}

func (s *Seeder) seedPVCompliance(ctx context.Context, listID string) {
	if listID == "" {
		return
	}
	s.createTasks(ctx, listID, []clickup.TaskRequest{
		{
			Name:        "Annual RAE reporting - Coordinate data collection",
			Description: "**Director:** Regulatory deadline is firm - penalties for late submission.\n**O&M PM:** Compile all required data from SCADA and partner reports. Legal review before submission.",
			Status:      "In Progress",
			Priority:    1,
			DueDate:     dueIn(10),
		},
		{
			Name:        "Environmental compliance audit - Facilitate auditor access",
			Description: "**Director:** Any findings could affect operations license.\n**O&M PM:** Coordinate with O&M partner for site access. Prepare documentation on waste disposal, oil storage.",
			Status:      "Scheduled",
			Priority:    2,
			DueDate:     dueIn(18),
		},
		{
			Name:        "Insurance renewal documentation for broker",
			Description: "**Director:** Need updated asset value and risk assessment.\n**O&M PM:** Request current condition report from O&M partner. Update broker on any material changes.",
			Status:      "In Progress",
			Priority:    2,
			DueDate:     dueIn(25),
		},
	})
}
