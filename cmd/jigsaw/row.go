// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/jigsaw/core"
	"github.com/katalvlaran/jigsaw/spec"
)

func newRowCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "row",
		Short: "Row arithmetic",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "mul [row...]",
			Short: "Multiply rows left to right",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				rows, err := parseRows(args)
				if err != nil {
					return err
				}
				acc := rows[0]
				for _, r := range rows[1:] {
					if acc, err = acc.Mul(r); err != nil {
						return err
					}
				}
				fmt.Fprintln(cmd.OutOrStdout(), acc)
				return nil
			},
		},
		&cobra.Command{
			Use:   "inverse [row]",
			Short: "Print the inverse of a row",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				r, err := core.ParseRow(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), r.Inverse())
				return nil
			},
		},
		&cobra.Command{
			Use:   "closure [row]",
			Short: "Print the powers of a row up to rounds",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				r, err := core.ParseRow(args[0])
				if err != nil {
					return err
				}
				for _, p := range r.Closure() {
					fmt.Fprintln(cmd.OutOrStdout(), p)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "group [generator...]",
			Short: "Print the part heads generated by one or more rows",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				gens, err := parseRows(args)
				if err != nil {
					return err
				}
				ph, err := spec.GeneratePartHeads(gens[0].Stage(), gens...)
				if err != nil {
					return err
				}
				a.logger.Debug("generated part heads", zap.Int("parts", ph.Len()), zap.Bool("group", ph.IsGroup()))
				for _, r := range ph.Rows() {
					fmt.Fprintln(cmd.OutOrStdout(), r)
				}
				return nil
			},
		},
	)

	return cmd
}

func parseRows(args []string) ([]core.Row, error) {
	rows := make([]core.Row, len(args))
	for i, s := range args {
		r, err := core.ParseRow(s)
		if err != nil {
			return nil, fmt.Errorf("row %q: %w", strings.TrimSpace(s), err)
		}
		rows[i] = r
	}

	return rows, nil
}
