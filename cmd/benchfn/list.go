// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/curioloop/benchfn/testfunc"
	"github.com/spf13/cobra"
)

var families = []testfunc.Family{
	testfunc.Classical,
	testfunc.Multimodal,
	testfunc.Nonlinear,
	testfunc.Geometric,
}

func newListCmd(a *app) *cobra.Command {
	var tag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the registered benchmark functions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			benches := a.reg.All()
			if tag != "" {
				f, err := parseFamily(tag)
				if err != nil {
					return err
				}
				benches = a.reg.Filter(f)
			}

			t := table.New().
				Border(lipgloss.RoundedBorder()).
				Headers("Name", "Family", "Dim", "Bounds", "Optimum", "Argmin").
				StyleFunc(func(row, col int) lipgloss.Style { return lipgloss.NewStyle().Padding(0, 1) })
			for _, b := range benches {
				t.Row(
					b.Name(),
					string(b.Family()),
					strconv.Itoa(b.Dim()),
					formatBounds(b.Bounds()),
					formatOptimum(b),
					formatPoint(b.Argmin()),
				)
			}
			_, err := fmt.Fprintln(a.out, t.Render())
			return err
		},
	}
	cmd.Flags().StringVar(&tag, "tag", "", "only list one family: classical, multimodal, nonlinear or geometric")
	return cmd
}

func parseFamily(s string) (testfunc.Family, error) {
	for _, f := range families {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown family %q", s)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 10, 64)
}

// formatBounds collapses identical intervals into a power.
func formatBounds(bounds []testfunc.Bound) string {
	same := true
	for _, b := range bounds[1:] {
		same = same && b == bounds[0]
	}
	if same {
		return fmt.Sprintf("[%s, %s]^%d", formatFloat(bounds[0].Lower), formatFloat(bounds[0].Upper), len(bounds))
	}
	parts := make([]string, len(bounds))
	for i, b := range bounds {
		parts[i] = fmt.Sprintf("[%s, %s]", formatFloat(b.Lower), formatFloat(b.Upper))
	}
	return strings.Join(parts, "×")
}

func formatOptimum(b *testfunc.Benchmark) string {
	if v, ok := b.Optimum(); ok {
		return formatFloat(v)
	}
	return "-"
}

func formatPoint(x []float64) string {
	if x == nil {
		return "-"
	}
	parts := make([]string, len(x))
	for i, v := range x {
		parts[i] = formatFloat(v)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
