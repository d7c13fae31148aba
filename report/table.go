// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report renders benchmark campaigns for terminals and machines.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/curioloop/benchfn/runner"
)

// Options controls the table layout.
type Options struct {
	// Plain disables colors and bold headers.
	Plain bool
	// Stats appends the mean, standard deviation and success rate of all runs.
	Stats bool
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	successStyle = cellStyle.Foreground(lipgloss.Color("42"))
	failureStyle = cellStyle.Foreground(lipgloss.Color("196"))
	borderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Mark returns the result column symbol.
func Mark(success bool) string {
	if success {
		return "✔"
	}
	return "✘"
}

// Headers returns the column titles of WriteTable.
func Headers(opts Options) []string {
	h := []string{"Function", "Optimizer", "Best value", "Evaluations", "Time (s)", "Result"}
	if opts.Stats {
		h = append(h, "Mean", "Std", "Success")
	}
	return h
}

// Rows formats one row per summary with the best run of each group.
func Rows(summaries []runner.Summary, opts Options) [][]string {
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		row := []string{
			s.Function,
			string(s.Method),
			strconv.FormatFloat(s.Best.Best, 'f', 6, 64),
			strconv.FormatInt(s.Best.Evaluations, 10),
			strconv.FormatFloat(s.Best.Elapsed.Seconds(), 'f', 4, 64),
			Mark(s.Best.Success),
		}
		if opts.Stats {
			row = append(row,
				strconv.FormatFloat(s.Mean, 'f', 6, 64),
				strconv.FormatFloat(s.StdDev, 'f', 6, 64),
				fmt.Sprintf("%.0f%%", 100*s.SuccessRate))
		}
		rows = append(rows, row)
	}
	return rows
}

// WriteTable writes a bordered table of the summaries.
func WriteTable(w io.Writer, summaries []runner.Summary, opts Options) error {

	rows := Rows(summaries, opts)
	result := len(Headers(Options{})) - 1

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(Headers(opts)...).
		Rows(rows...)

	if opts.Plain {
		t = t.StyleFunc(func(row, col int) lipgloss.Style { return cellStyle })
	} else {
		t = t.BorderStyle(borderStyle).
			StyleFunc(func(row, col int) lipgloss.Style {
				switch {
				case row == table.HeaderRow:
					return headerStyle
				case col == result && rows[row][col] == Mark(true):
					return successStyle
				case col == result:
					return failureStyle
				}
				return cellStyle
			})
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// WriteJSON writes the full report with its summaries as indented JSON.
func WriteJSON(w io.Writer, r *runner.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		*runner.Report
		Summaries []runner.Summary `json:"summaries"`
	}{r, r.Summaries()})
}
