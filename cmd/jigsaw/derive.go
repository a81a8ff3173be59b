// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/jigsaw/derive"
	"github.com/katalvlaran/jigsaw/music"
	"github.com/katalvlaran/jigsaw/spec"
)

type deriveFlags struct {
	minRun   int
	showRows bool
	jobs     int
}

func newDeriveCmd(a *app) *cobra.Command {
	f := deriveFlags{minRun: music.DefaultMinRunLength}
	cmd := &cobra.Command{
		Use:   "derive [file.yaml...]",
		Short: "Derive and prove one or more skeleton files",
		Long: `Loads each YAML skeleton, derives it and prints its statistics, false row
ranges, fragment links and round blocks. Files are derived in parallel and
reported in argument order.

File format:
  stage: 8
  part_heads: ["18234567"]     # generators; omitted means one part
  fragments:
    - x: 0
      y: 0
      muted: false
      rows:
        - {row: "12345678", method: "Cambridge"}
        - {row: "21436587", call: "-", lead_end: true, excluded: true}
        - {row: "12345678"}    # the last row is the leftover row`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDerive(cmd, a, f, args)
		},
	}
	cmd.Flags().IntVar(&f.minRun, "min-run", f.minRun, "shortest run counted as music")
	cmd.Flags().BoolVar(&f.showRows, "rows", false, "print the part-0 rows of every fragment")
	cmd.Flags().IntVarP(&f.jobs, "jobs", "j", runtime.NumCPU(), "files derived at once")

	return cmd
}

func runDerive(cmd *cobra.Command, a *app, f deriveFlags, paths []string) error {
	results := make([]*derive.DerivedState, len(paths))
	eg, egCtx := errgroup.WithContext(cmd.Context())
	eg.SetLimit(max(f.jobs, 1))
	for i, path := range paths {
		i, path := i, path
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			sp, err := spec.LoadFile(path)
			if err != nil {
				return err
			}
			d, err := derive.FromSpec(sp,
				derive.WithLogger(a.logger.With(zap.String("file", path))),
				derive.WithMusic(music.WithMinRunLength(f.minRun)),
			)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = d
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, d := range results {
		if len(paths) > 1 {
			fmt.Fprintf(out, "== %s ==\n", paths[i])
		}
		if err := report(out, d, f.showRows); err != nil {
			return err
		}
	}

	return nil
}

// report prints one derivation in a stable, line-oriented layout.
func report(w io.Writer, d *derive.DerivedState, showRows bool) error {
	fmt.Fprintf(w, "stage: %s\n", d.Stage)
	fmt.Fprintf(w, "parts: %d\n", d.PartHeads.Len())
	fmt.Fprintf(w, "part length: %d\n", d.Stats.PartLen)
	if d.IsTrue() {
		fmt.Fprintln(w, "truth: true")
	} else {
		fmt.Fprintf(w, "truth: %d false rows in %d groups\n", d.Stats.NumFalseRows, d.Stats.NumFalseGroups)
	}
	for fi, frag := range d.Frags {
		for _, r := range frag.FalseRowRanges {
			fmt.Fprintf(w, "  frag %d rows %d-%d group %d\n", fi, r.Start, r.End, r.Group)
		}
	}

	fmt.Fprintf(w, "links: %d\n", len(d.Links))
	for _, l := range d.Links {
		fmt.Fprintf(w, "  %d -> %d group %d\n", l.From, l.To, l.Group)
	}
	g, err := d.LinkGraph()
	if err != nil {
		return err
	}
	blocks := g.RoundBlocks()
	fmt.Fprintf(w, "round blocks: %d\n", len(blocks))
	for _, b := range blocks {
		parts := make([]string, len(b))
		for i, fi := range b {
			parts[i] = fmt.Sprint(fi)
		}
		fmt.Fprintf(w, "  %s\n", strings.Join(parts, " -> "))
	}

	if showRows {
		for fi, frag := range d.Frags {
			fmt.Fprintf(w, "frag %d:\n", fi)
			for _, er := range frag.ExpRows {
				fmt.Fprintf(w, "  %s\n", formatRow(er))
			}
		}
	}

	return nil
}

// formatRow renders the part-0 row with its labels; '*' marks rows left unproved.
func formatRow(er derive.ExpandedRow) string {
	var b strings.Builder
	b.WriteString(er.Rows[0].String())
	if !er.IsProved {
		b.WriteByte('*')
	}
	if er.Call != "" {
		b.WriteString(" ")
		b.WriteString(er.Call)
	}
	if er.Method != "" {
		b.WriteString(" ")
		b.WriteString(er.Method)
	}
	if er.IsLeadEnd {
		b.WriteString(" |")
	}

	return b.String()
}
