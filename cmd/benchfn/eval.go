// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newEvalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "eval NAME X1 X2 [X...]",
		Short: "Evaluate a benchmark function at one point",
		Long: `Evaluate a benchmark function at one point.
Variadic functions accept any dimension of at least two.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.reg.Get(args[0])
			if err != nil {
				return err
			}

			x := make([]float64, len(args)-1)
			for i, s := range args[1:] {
				if x[i], err = strconv.ParseFloat(s, 64); err != nil {
					return fmt.Errorf("coordinate %d: %w", i, err)
				}
			}

			if b.Variadic() && len(x) != b.Dim() {
				if b, err = b.WithDim(len(x)); err != nil {
					return err
				}
			}

			v, err := b.Evaluate(x)
			if err != nil {
				return err
			}
			if !b.Contains(x) {
				a.logger.Warn("point outside search domain", "function", b.Name(), "x", x)
			}
			_, err = fmt.Fprintln(a.out, strconv.FormatFloat(v, 'g', -1, 64))
			return err
		},
	}
}
