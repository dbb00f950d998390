package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderOutcomes prints a per-day table for a single run, or a per-seed
// summary when several runs were made
func renderOutcomes(w io.Writer, outcomes []Outcome) {
	if len(outcomes) == 1 {
		renderDays(w, outcomes[0])
		return
	}
	renderSummary(w, outcomes)
}

func renderDays(w io.Writer, o Outcome) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetTitle(fmt.Sprintf("seed %d", o.Seed))
	tw.AppendHeader(table.Row{"Day", "Earned", "Spent", "Money", "Actions", "Payouts"})
	for _, d := range o.Days {
		tw.AppendRow(table.Row{d.Day, money(d.Earned), money(d.Spent), money(d.Money), d.Actions, payoutLines(d)})
	}
	tw.AppendFooter(table.Row{"", money(o.TotalEarned), "", money(o.FinalMoney), o.Actions,
		fmt.Sprintf("%d level ups, %d events", o.LevelUps, o.EventsStarted)})
	tw.SetColumnConfigs(rightAligned("Earned", "Spent", "Money", "Actions"))
	tw.Render()
}

func renderSummary(w io.Writer, outcomes []Outcome) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"Seed", "Final Day", "Money", "Earned", "Actions", "Level Ups", "Events"})
	var total float64
	for _, o := range outcomes {
		tw.AppendRow(table.Row{o.Seed, o.FinalDay, money(o.FinalMoney), money(o.TotalEarned), o.Actions, o.LevelUps, o.EventsStarted})
		total += o.TotalEarned
	}
	tw.AppendFooter(table.Row{"", "", "mean", money(total / float64(len(outcomes))), "", "", ""})
	tw.SetColumnConfigs(rightAligned("Money", "Earned", "Actions", "Level Ups", "Events"))
	tw.Render()
}

// payoutLines lists each paying instance with its breakdown entries
func payoutLines(d DayOutcome) string {
	lines := make([]string, 0, len(d.Payouts))
	for _, p := range d.Payouts {
		parts := make([]string, 0, len(p.Breakdown.Entries))
		for _, e := range p.Breakdown.Entries {
			parts = append(parts, fmt.Sprintf("%s %+d", e.Label, e.Amount))
		}
		lines = append(lines, fmt.Sprintf("%s L%d = %d (%s)", p.Name, p.Level, p.Breakdown.Total, strings.Join(parts, ", ")))
	}
	return strings.Join(lines, "\n")
}

func rightAligned(names ...string) []table.ColumnConfig {
	configs := make([]table.ColumnConfig, 0, len(names))
	for _, n := range names {
		configs = append(configs, table.ColumnConfig{Name: n, Align: text.AlignRight, AlignFooter: text.AlignRight})
	}
	return configs
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
