// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/curioloop/benchfn/grid"
	"github.com/spf13/cobra"
)

func newGridCmd(a *app) *cobra.Command {
	var (
		nx, ny int
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "grid NAME",
		Short: "Sample a two-dimensional benchmark on a regular grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			b, err := a.reg.Get(args[0])
			if err != nil {
				return err
			}

			var write func(*grid.Mesh, io.Writer) error
			switch format {
			case "csv":
				write = (*grid.Mesh).WriteCSV
			case "matrix":
				write = (*grid.Mesh).WriteMatrix
			default:
				return fmt.Errorf("unknown format %q", format)
			}

			m, err := grid.Sample(b, nx, ny)
			if err != nil {
				return err
			}
			lo, hi := m.Range()
			a.logger.Info("grid sampled", "function", b.Name(), "nx", nx, "ny", ny, "finite", m.Finite(), "min", lo, "max", hi)

			w := a.out
			if output != "" {
				f, ferr := os.Create(output)
				if ferr != nil {
					return ferr
				}
				defer func() {
					if cerr := f.Close(); err == nil {
						err = cerr
					}
				}()
				w = f
			}
			return write(m, w)
		},
	}
	cmd.Flags().IntVar(&nx, "nx", 250, "samples along x")
	cmd.Flags().IntVar(&ny, "ny", 250, "samples along y")
	cmd.Flags().StringVar(&format, "format", "csv", "output format: csv or matrix")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}
