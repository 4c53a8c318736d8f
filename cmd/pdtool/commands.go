// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/phasehull/analyzer"
	"github.com/katalvlaran/phasehull/composition"
	"github.com/katalvlaran/phasehull/entry"
	"github.com/katalvlaran/phasehull/internal/style"
	"github.com/katalvlaran/phasehull/phasediagram"
)

func f4(v float64) string { return strconv.FormatFloat(v, 'f', 4, 64) }

func phaseList(d analyzer.Decomposition) string {
	parts := make([]string, 0, len(d))
	for _, p := range d.Phases() {
		parts = append(parts, fmt.Sprintf("%.3f %s", p.Amount, p.Entry.Name()))
	}

	return strings.Join(parts, " + ")
}

func entryNames(entries []phasediagram.Entry) string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name()
	}

	return strings.Join(out, ", ")
}

func newStableCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stable ENTRIES",
		Short: "List every entry with its formation energy and distance to the hull",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, an, err := a.analyze(cmd, args[0])
			if err != nil {
				return err
			}
			pd := an.Diagram()
			tbl := style.NewTable(
				style.Column{Name: "Name"},
				style.Column{Name: "Formula"},
				style.Column{Name: "E/atom", Align: style.AlignRight},
				style.Column{Name: "Ef/atom", Align: style.AlignRight},
				style.Column{Name: "E above hull", Align: style.AlignRight},
			)
			for _, e := range entries {
				form, err := pd.FormationEnergyPerAtom(e)
				if err != nil {
					return err
				}
				ehull, err := an.EAboveHull(e)
				if err != nil {
					return err
				}
				name := style.Unstable.Render(e.Name())
				if pd.IsStable(e) {
					name = style.Stable.Render(e.Name())
				}
				tbl.AddRow(name, e.Composition().ReducedFormula(), f4(e.EnergyPerAtom()), f4(form), f4(ehull))
			}
			fmt.Fprintln(cmd.OutOrStdout(), pd.String())
			fmt.Fprint(cmd.OutOrStdout(), tbl.Render())

			return nil
		},
	}
}

func newDecomposeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decompose ENTRIES FORMULA",
		Short: "Show the equilibrium phases of a composition",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, an, err := a.analyze(cmd, args[0])
			if err != nil {
				return err
			}
			comp, err := composition.Parse(args[1])
			if err != nil {
				return err
			}
			fractions, err := an.Decomposition(comp)
			if err != nil {
				return err
			}
			amounts, err := an.DecompositionAmounts(comp)
			if err != nil {
				return err
			}
			energy, err := an.DecompositionEnergy(comp)
			if err != nil {
				return err
			}

			tbl := style.NewTable(
				style.Column{Name: "Phase"},
				style.Column{Name: "Fraction", Align: style.AlignRight},
				style.Column{Name: "Atoms", Align: style.AlignRight},
			)
			for _, p := range fractions.Phases() {
				tbl.AddRow(p.Entry.Name(), f4(p.Amount), f4(amounts[p.Entry]))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s → hull energy %s eV\n", comp.Formula(), f4(energy))
			fmt.Fprint(cmd.OutOrStdout(), tbl.Render())

			return nil
		},
	}
}

func newEHullCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ehull ENTRIES [NAME...]",
		Short: "Energy above hull and decomposition of entries",
		Long:  `Without names every entry is listed. Stable entries also report their equilibrium reaction energy.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, an, err := a.analyze(cmd, args[0])
			if err != nil {
				return err
			}
			selected := entries
			if len(args) > 1 {
				want := make(map[string]bool, len(args)-1)
				for _, n := range args[1:] {
					want[n] = true
				}
				selected = nil
				for _, e := range entries {
					if want[e.Name()] {
						selected = append(selected, e)
						delete(want, e.Name())
					}
				}
				if len(want) > 0 {
					missing := make([]string, 0, len(want))
					for n := range want {
						missing = append(missing, n)
					}
					sort.Strings(missing)
					return fmt.Errorf("no entry named %s", strings.Join(missing, ", "))
				}
			}

			tbl := style.NewTable(
				style.Column{Name: "Name"},
				style.Column{Name: "E above hull", Align: style.AlignRight},
				style.Column{Name: "Rxn energy", Align: style.AlignRight},
				style.Column{Name: "Decomposition"},
			)
			for _, e := range selected {
				d, ehull, err := an.DecompositionAndEAboveHull(e, false)
				if err != nil {
					return err
				}
				rxn := ""
				if an.Diagram().IsStable(e) {
					v, err := an.EquilibriumReactionEnergy(e)
					if err != nil {
						return err
					}
					rxn = f4(v)
				}
				tbl.AddRow(e.Name(), f4(ehull), rxn, phaseList(d))
			}
			fmt.Fprint(cmd.OutOrStdout(), tbl.Render())

			return nil
		},
	}
}

func newChempotsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "chempots ENTRIES [FORMULA]",
		Short: "Chemical potentials of every facet, or of the facet holding FORMULA",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, an, err := a.analyze(cmd, args[0])
			if err != nil {
				return err
			}
			pd := an.Diagram()
			els := pd.Elements()
			cols := []style.Column{{Name: "Phases"}}
			for _, el := range els {
				cols = append(cols, style.Column{Name: "μ(" + el.Symbol() + ")", Align: style.AlignRight})
			}
			tbl := style.NewTable(cols...)
			addRow := func(label string, mu map[composition.Element]float64) {
				row := []string{label}
				for _, el := range els {
					row = append(row, f4(mu[el]))
				}
				tbl.AddRow(row...)
			}

			if len(args) == 2 {
				comp, err := composition.Parse(args[1])
				if err != nil {
					return err
				}
				mu, err := an.CompositionChempots(comp)
				if err != nil {
					return err
				}
				addRow(comp.ReducedFormula(), mu)
			} else {
				for i := range pd.Facets() {
					mu, err := an.FacetChempots(i)
					if err != nil {
						return err
					}
					addRow(entryNames(pd.FacetEntries(i)), mu)
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), tbl.Render())

			return nil
		},
	}
}

func newProfileCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "profile ENTRIES ELEMENT FORMULA",
		Short: "Phase evolution of FORMULA as ELEMENT's chemical potential falls",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, an, err := a.analyze(cmd, args[0])
			if err != nil {
				return err
			}
			el, err := composition.NewElement(args[1])
			if err != nil {
				return err
			}
			comp, err := composition.Parse(args[2])
			if err != nil {
				return err
			}
			steps, err := an.ElementProfile(el, comp)
			if err != nil {
				return err
			}

			tbl := style.NewTable(
				style.Column{Name: "μ(" + el.Symbol() + ")", Align: style.AlignRight},
				style.Column{Name: "Evolution", Align: style.AlignRight},
				style.Column{Name: "Phases"},
			)
			for _, s := range steps {
				tbl.AddRow(f4(s.Chempot), f4(s.Evolution), entryNames(s.Entries))
			}
			fmt.Fprint(cmd.OutOrStdout(), tbl.Render())

			return nil
		},
	}
}

func newRangeCmd(a *app) *cobra.Command {
	var (
		open     string
		vertices bool
		tol      float64
	)
	cmd := &cobra.Command{
		Use:   "range ENTRIES FORMULA",
		Short: "Chemical potential region in which the phase of FORMULA is stable",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, an, err := a.analyze(cmd, args[0])
			if err != nil {
				return err
			}
			el, err := composition.NewElement(open)
			if err != nil {
				return err
			}
			comp, err := composition.Parse(args[1])
			if err != nil {
				return err
			}
			els := an.Diagram().Elements()

			if vertices {
				vs, err := an.MuVerticesStabilityPhase(comp, el, tol)
				if err != nil {
					return err
				}
				cols := make([]style.Column, len(els))
				for i, e := range els {
					cols[i] = style.Column{Name: "μ(" + e.Symbol() + ")", Align: style.AlignRight}
				}
				tbl := style.NewTable(cols...)
				for _, v := range vs {
					row := make([]string, len(els))
					for i, e := range els {
						row[i] = f4(v[e])
					}
					tbl.AddRow(row...)
				}
				fmt.Fprint(cmd.OutOrStdout(), tbl.Render())

				return nil
			}

			r, err := an.MuRangeStabilityPhase(comp, el)
			if err != nil {
				return err
			}
			tbl := style.NewTable(
				style.Column{Name: "Element"},
				style.Column{Name: "Min", Align: style.AlignRight},
				style.Column{Name: "Max", Align: style.AlignRight},
			)
			for _, e := range els {
				tbl.AddRow(e.Symbol(), f4(r[e].Min), f4(r[e].Max))
			}
			fmt.Fprint(cmd.OutOrStdout(), tbl.Render())

			return nil
		},
	}
	cmd.Flags().StringVar(&open, "open", "O", "dependent (open) element")
	cmd.Flags().BoolVar(&vertices, "vertices", false, "print the region's vertices instead of ranges")
	cmd.Flags().Float64Var(&tol, "tol", analyzer.DefaultMuTol, "vertex merge distance")

	return cmd
}

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert IN OUT",
		Short: "Rewrite an entries file in the format of OUT's extension",
		Long:  `OUT may be "-" to write to stdout in the configured format.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := a.load(cmd, args[0])
			if err != nil {
				return err
			}
			if args[1] == "-" {
				return entry.Write(cmd.OutOrStdout(), a.cfg.Format, entries)
			}
			if err := entry.Save(args[1], entries); err != nil {
				return err
			}
			a.logger.Info("entries converted", "in", args[0], "out", args[1], "count", len(entries))

			return nil
		},
	}
}
