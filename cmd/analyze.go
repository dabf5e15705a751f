package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gocba/internal/analysis"
	"github.com/alexiusacademia/gocba/internal/beamdef"
	"github.com/alexiusacademia/gocba/internal/diagram"
	"github.com/alexiusacademia/gocba/internal/report"
)

var (
	// Analysis inputs
	analyzeFile    string
	analyzeAt      []float64
	analyzePoints  int
	analyzeDiagram bool
	analyzeOutput  string
	analyzeXLSX    string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a continuous beam from a definition file",
	Long: `Solve a continuous beam described in a YAML or JSON definition file.

Support moments come from the three-moment equation, one equation per
pair of adjacent spans; reactions follow from span equilibrium. When the
definition carries a moment of inertia, deflections are computed by
double integration.

Examples:
  # Analyze a beam and print reactions, moments and span maxima
  gocba analyze -f beam.yaml

  # Also report shear/moment/deflection at specific positions
  gocba analyze -f beam.yaml --at 2.5 --at 7.0

  # Terminal diagrams, image export and a spreadsheet report
  gocba analyze -f beam.yaml --diagram -o results/beam --xlsx beam.xlsx`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Beam definition file (.yaml, .yml or .json) [required]")
	analyzeCmd.Flags().Float64SliceVar(&analyzeAt, "at", nil, "Report field values at these positions (m), repeatable")
	analyzeCmd.Flags().IntVar(&analyzePoints, "points", 0, "Evaluation grid size (default 2000)")
	analyzeCmd.Flags().BoolVar(&analyzeDiagram, "diagram", false, "Draw terminal diagrams for shear, moment and deflection")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "Export diagram images with this path prefix")
	analyzeCmd.Flags().StringVar(&analyzeXLSX, "xlsx", "", "Write results to this spreadsheet file")

	analyzeCmd.MarkFlagRequired("file")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	def, err := beamdef.LoadFromFile(analyzeFile)
	if err != nil {
		return err
	}

	a, err := analysis.New(def.BuildLoads(), def.Supports, analysis.Options{
		Inertia:  def.Inertia,
		EModulus: def.EModulus,
		Points:   analyzePoints,
	})
	if err != nil {
		return err
	}

	res, err := a.Analyze()
	if err != nil {
		return err
	}

	name := def.Name
	if name == "" {
		name = analyzeFile
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     CONTINUOUS BEAM ANALYSIS - %s\n", name)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	if def.Description != "" {
		fmt.Printf("  %s\n", def.Description)
	}

	fmt.Print(diagram.DrawBeamSketch(a.Supports(), a.Loads()))
	fmt.Println()

	printSupportTable(a, res)
	printExtremesTable(a, res)

	if len(analyzeAt) > 0 {
		if err := printPointValues(a); err != nil {
			return err
		}
	}

	printSummaryBox(a, res)

	if analyzeDiagram {
		if err := printDiagrams(a); err != nil {
			return err
		}
	}
	if analyzeOutput != "" {
		if err := exportImages(a); err != nil {
			return err
		}
	}
	if analyzeXLSX != "" {
		if err := report.WriteXLSX(a, res, name, analyzeXLSX); err != nil {
			return err
		}
		fmt.Printf("  Spreadsheet written: %s\n\n", analyzeXLSX)
	}
	return nil
}

func printSupportTable(a *analysis.Analyzer, res *analysis.Result) {
	fmt.Println("SUPPORT REACTIONS AND MOMENTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Position (m)\tReaction (N)\tMoment (N·m)\n")
	for _, pos := range a.Supports() {
		fmt.Fprintf(w, "  %.3f\t%.2f\t%.2f\n", pos, res.Reactions[pos], res.SupportMoments[pos])
	}
	w.Flush()
	fmt.Println()
}

func printExtremesTable(a *analysis.Analyzer, res *analysis.Result) {
	fmt.Println("PER-SPAN MAXIMA (largest absolute value):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if res.MaxDeflectionPerSpan != nil {
		fmt.Fprintf(w, "  Span\tV (N)\tat (m)\tM (N·m)\tat (m)\tδ (mm)\tat (m)\n")
	} else {
		fmt.Fprintf(w, "  Span\tV (N)\tat (m)\tM (N·m)\tat (m)\n")
	}
	for i := range res.MaxMomentPerSpan {
		m := res.MaxMomentPerSpan[i]
		v := res.MaxShearPerSpan[i]
		if res.MaxDeflectionPerSpan != nil {
			d := res.MaxDeflectionPerSpan[i]
			fmt.Fprintf(w, "  %d %v\t%.2f\t%.3f\t%.2f\t%.3f\t%.3f\t%.3f\n",
				m.SpanIndex+1, m.Span, v.Value, v.Position, m.Value, m.Position, d.Value, d.Position)
		} else {
			fmt.Fprintf(w, "  %d %v\t%.2f\t%.3f\t%.2f\t%.3f\n",
				m.SpanIndex+1, m.Span, v.Value, v.Position, m.Value, m.Position)
		}
	}
	w.Flush()
	fmt.Println()
}

func printPointValues(a *analysis.Analyzer) error {
	positions := append([]float64(nil), analyzeAt...)
	sort.Float64s(positions)

	fmt.Println("FIELD VALUES AT REQUESTED POSITIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if a.HasDeflection() {
		fmt.Fprintf(w, "  x (m)\tV (N)\tM (N·m)\tδ (mm)\n")
	} else {
		fmt.Fprintf(w, "  x (m)\tV (N)\tM (N·m)\n")
	}
	for _, pos := range positions {
		pv, err := a.ValueAt(pos)
		if err != nil {
			return err
		}
		if a.HasDeflection() {
			fmt.Fprintf(w, "  %.3f\t%.2f\t%.2f\t%.3f\n", pv.Position, pv.Shear, pv.Moment, pv.Deflection)
		} else {
			fmt.Fprintf(w, "  %.3f\t%.2f\t%.2f\n", pv.Position, pv.Shear, pv.Moment)
		}
	}
	w.Flush()
	fmt.Println()
	return nil
}

func printSummaryBox(a *analysis.Analyzer, res *analysis.Result) {
	var maxM, maxV, maxD analysis.SpanExtreme
	for _, e := range res.MaxMomentPerSpan {
		if abs(e.Value) > abs(maxM.Value) {
			maxM = e
		}
	}
	for _, e := range res.MaxShearPerSpan {
		if abs(e.Value) > abs(maxV.Value) {
			maxV = e
		}
	}

	lines := []string{
		fmt.Sprintf("Max shear    V = %.2f N at x = %.3f m", maxV.Value, maxV.Position),
		fmt.Sprintf("Max moment   M = %.2f N·m at x = %.3f m", maxM.Value, maxM.Position),
	}
	if res.MaxDeflectionPerSpan != nil {
		for _, e := range res.MaxDeflectionPerSpan {
			if abs(e.Value) > abs(maxD.Value) {
				maxD = e
			}
		}
		lines = append(lines, fmt.Sprintf("Max deflection δ = %.3f mm at x = %.3f m", maxD.Value, maxD.Position))
	}
	fmt.Print(diagram.DrawSummaryBox("ANALYSIS SUMMARY", lines))
	fmt.Println()
}

func printDiagrams(a *analysis.Analyzer) error {
	_, shear, err := a.ShearSeries()
	if err != nil {
		return err
	}
	_, moment, err := a.MomentSeries()
	if err != nil {
		return err
	}

	fmt.Println(diagram.PlotSeries(shear, "Shear V (N)"))
	fmt.Println()
	fmt.Println(diagram.PlotSeries(moment, "Bending Moment M (N·m)"))
	fmt.Println()

	if a.HasDeflection() {
		_, defl, err := a.DeflectionSeries()
		if err != nil {
			return err
		}
		fmt.Println(diagram.PlotSeries(defl, "Deflection δ (mm)"))
		fmt.Println()
	}
	return nil
}

func exportImages(a *analysis.Analyzer) error {
	xs, shear, err := a.ShearSeries()
	if err != nil {
		return err
	}
	_, moment, err := a.MomentSeries()
	if err != nil {
		return err
	}

	if err := diagram.ExportBeamSketch(a.Supports(), a.Loads(), analyzeOutput+"_beam.png"); err != nil {
		return err
	}
	if err := diagram.ExportSeriesDiagram(diagram.SeriesDiagram{
		Title:    "Shear Diagram",
		YLabel:   "V (N)",
		XS:       xs,
		Values:   shear,
		Supports: a.Supports(),
	}, analyzeOutput+"_shear.png"); err != nil {
		return err
	}
	if err := diagram.ExportSeriesDiagram(diagram.SeriesDiagram{
		Title:    "Bending Moment Diagram",
		YLabel:   "M (N·m)",
		XS:       xs,
		Values:   moment,
		Supports: a.Supports(),
	}, analyzeOutput+"_moment.png"); err != nil {
		return err
	}

	if a.HasDeflection() {
		_, defl, err := a.DeflectionSeries()
		if err != nil {
			return err
		}
		if err := diagram.ExportSeriesDiagram(diagram.SeriesDiagram{
			Title:    "Deflection Diagram",
			YLabel:   "δ (mm)",
			XS:       xs,
			Values:   defl,
			Supports: a.Supports(),
		}, analyzeOutput+"_deflection.png"); err != nil {
			return err
		}
	}

	fmt.Printf("  Diagrams written with prefix: %s\n\n", analyzeOutput)
	return nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
