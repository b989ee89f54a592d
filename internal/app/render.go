package app

import (
	"fmt"
	"strings"

	"go.trai.ch/pkgup/internal/core/domain"
	"go.trai.ch/pkgup/internal/ui/style"
)

// renderTask formats a migration task for the task list printed after
// planning.
func renderTask(task domain.MigrationTask) string {
	return fmt.Sprintf("migrate %s: %s %s %s (schematics in %s)",
		task.Package, task.From, style.Arrow, task.To, task.Collection)
}

// renderReport formats the read-only update report as an aligned table
// with one suggested command per updatable package.
func renderReport(entries []domain.ReportEntry) string {
	nameWidth := len("Name")
	installedWidth := len("Installed")
	for _, e := range entries {
		nameWidth = max(nameWidth, len(e.Name))
		installedWidth = max(installedWidth, len(installedColumn(e)))
	}

	var b strings.Builder
	b.WriteString("updates are available for the following packages:\n")
	fmt.Fprintf(&b, "  %-*s  %-*s  %-10s  %s\n",
		nameWidth, "Name", installedWidth, "Installed", "Available", "Command")
	for _, e := range entries {
		fmt.Fprintf(&b, "  %-*s  %-*s  %-10s  %s\n",
			nameWidth, e.Name,
			installedWidth, installedColumn(e),
			e.Available.String(),
			e.SuggestedCommand())
	}
	return strings.TrimRight(b.String(), "\n")
}

func installedColumn(e domain.ReportEntry) string {
	if e.Installed == nil {
		return "-"
	}
	return e.Installed.String()
}
