package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"waste-report-server/config"
	"waste-report-server/database"
	"waste-report-server/models"
	"waste-report-server/services"
)

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the complaint dashboard to the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.Initialize(config.AppConfig.Database.URL)
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}

			complaints, err := database.NewComplaintRepository(db).List(context.Background(), models.ComplaintFilter{})
			if err != nil {
				return fmt.Errorf("failed to load complaints: %w", err)
			}
			printSummary(os.Stdout, services.BuildDashboard(complaints, time.Now().UTC()))
			return nil
		},
	}
}

func printSummary(w io.Writer, d *models.Dashboard) {
	header := color.New(color.Bold).Sprint
	pending := color.New(color.FgYellow).Sprint
	resolved := color.New(color.FgHiGreen).Sprint
	overdue := color.New(color.FgHiRed).Sprint

	fmt.Fprintln(w, header("Complaints"))
	fmt.Fprintf(w, "  total     %d\n", d.Total)
	fmt.Fprintf(w, "  pending   %s\n", pending(d.Status.Pending))
	fmt.Fprintf(w, "  resolved  %s\n", resolved(d.Status.Resolved))
	fmt.Fprintf(w, "  overdue   %s\n", overdue(d.OverdueCount))

	if len(d.Areas) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, header("By area"))
		for _, a := range d.Areas {
			fmt.Fprintf(w, "  %-30s %d\n", a.Area, a.Count)
		}
	}

	if len(d.FrequentSpots) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, header("Frequent spots"))
		for i, s := range d.FrequentSpots {
			fmt.Fprintf(w, "  %d. %-40s %d\n", i+1, s.Location, s.Count)
		}
	}

	if len(d.Overdue) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, header("Overdue"))
	}
	for _, c := range d.Overdue {
		if c.Deadline == nil {
			continue
		}
		fmt.Fprintf(w, "  %s %s (%s, due %s)\n", overdue("!"), c.Title, c.Location, c.Deadline.Format("2006-01-02"))
	}
}
