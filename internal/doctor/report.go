package doctor

import (
	"fmt"
	"strings"

	"github.com/nvandessel/droidconf/internal/ui"
)

// Report generates a human-readable settings report
func (r *CheckResult) Report() string {
	var sb strings.Builder

	sb.WriteString("╔════════════════════════════════════════╗\n")
	sb.WriteString("║         droidconf Settings Check       ║\n")
	sb.WriteString("╚════════════════════════════════════════╝\n\n")

	s := r.Settings
	sb.WriteString(fmt.Sprintf("Application: %s %s (%d)\n\n", s.ApplicationID, s.VersionName, s.VersionCode))

	sb.WriteString("── Checks ──\n\n")
	for _, check := range r.Checks {
		icon := ui.StatusStyle(string(check.Status)).Render(statusIcon(check.Status))
		sb.WriteString(fmt.Sprintf("%s %s\n", icon, check.Name))
		sb.WriteString(fmt.Sprintf("  %s\n", check.Message))
		if check.Fix != "" && check.Status != StatusOK {
			sb.WriteString(fmt.Sprintf("  → %s\n", check.Fix))
		}
		sb.WriteString("\n")
	}

	ok, warnings, errors, skipped := r.CountByStatus()
	sb.WriteString("── Summary ──\n\n")

	if errors > 0 {
		sb.WriteString(fmt.Sprintf("✗ %d errors found\n", errors))
	}
	if warnings > 0 {
		sb.WriteString(fmt.Sprintf("⚠ %d warnings\n", warnings))
	}
	if ok > 0 {
		sb.WriteString(fmt.Sprintf("✓ %d checks passed\n", ok))
	}
	if skipped > 0 {
		sb.WriteString(fmt.Sprintf("⊘ %d skipped\n", skipped))
	}

	sb.WriteString("\n")

	if r.IsHealthy() && !r.HasWarnings() {
		sb.WriteString("Overall: ✓ Settings look good!\n")
	} else if r.IsHealthy() {
		sb.WriteString("Overall: ⚠ Valid with warnings\n")
	} else {
		sb.WriteString("Overall: ✗ Issues found - see above for fixes\n")
	}

	return sb.String()
}

// QuickReport generates a short one-line status
func (r *CheckResult) QuickReport() string {
	ok, warnings, errors, _ := r.CountByStatus()

	if errors > 0 {
		return fmt.Sprintf("✗ %d errors, %d warnings, %d ok", errors, warnings, ok)
	}
	if warnings > 0 {
		return fmt.Sprintf("⚠ %d warnings, %d ok", warnings, ok)
	}
	return fmt.Sprintf("✓ %d checks passed", ok)
}

// statusIcon returns the icon for a check status
func statusIcon(status CheckStatus) string {
	switch status {
	case StatusOK:
		return "✓"
	case StatusWarning:
		return "⚠"
	case StatusError:
		return "✗"
	case StatusSkipped:
		return "⊘"
	default:
		return "?"
	}
}

// GetFixes returns the distinct suggested fixes for failed checks
func (r *CheckResult) GetFixes() []string {
	var fixes []string
	seen := make(map[string]bool)

	for _, check := range r.Checks {
		if check.Fix != "" && check.Status != StatusOK && !seen[check.Fix] {
			fixes = append(fixes, check.Fix)
			seen[check.Fix] = true
		}
	}

	return fixes
}

// FixReport generates a report of suggested fixes
func (r *CheckResult) FixReport() string {
	fixes := r.GetFixes()
	if len(fixes) == 0 {
		return "No fixes needed - all checks passed!"
	}

	var sb strings.Builder
	sb.WriteString("Suggested fixes:\n\n")
	for i, fix := range fixes {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, fix))
	}
	return sb.String()
}
