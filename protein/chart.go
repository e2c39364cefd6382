package protein

import (
	"fmt"
	"io"

	"github.com/feliixx/goprotein/aminocode"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

const (
	chartWidth  = 10 * vg.Inch
	chartHeight = 4 * vg.Inch
)

// writeChart draws the result as a SVG bar chart. Numeric results get one
// bar per sequence, counts get one group of bars per residue or element,
// with a bar per sequence in each group
func writeChart(out io.Writer, result Result) error {

	if len(result.Values) == 0 {
		return fmt.Errorf("%w: no sequence to draw", ErrUnsupportedOutput)
	}

	p := plot.New()
	p.Title.Text = result.Procedure.String()

	if values, ok := numeric(result.Values); ok {
		if err := addValueBars(p, result.Procedure, values); err != nil {
			return err
		}
	} else {
		var keys string
		switch result.Procedure {
		case AminoAcidSumProc:
			keys = aminocode.Residues
			p.X.Label.Text = "Residue"
		case BruttoCountProc:
			keys = aminocode.Elements
			p.X.Label.Text = "Element"
		default:
			return fmt.Errorf("%w: can't draw a chart for procedure %s", ErrUnsupportedOutput, result.Procedure)
		}
		if err := addCountBars(p, result.Values, keys); err != nil {
			return err
		}
	}

	writer, err := p.WriterTo(chartWidth, chartHeight, "svg")
	if err != nil {
		return err
	}
	_, err = writer.WriteTo(out)
	return err
}

func addValueBars(p *plot.Plot, procedure Procedure, values []float64) error {

	switch procedure {
	case MolecularWeightProc:
		p.Y.Label.Text = "Molecular weight (kDa)"
	case LengthProc:
		p.Y.Label.Text = "Length (aa)"
	}
	p.X.Label.Text = "Sequence"

	bars, err := plotter.NewBarChart(plotter.Values(values), vg.Points(20))
	if err != nil {
		return err
	}
	bars.Color = plotutil.Color(0)
	p.Add(bars)
	p.NominalX(sequenceLabels(len(values))...)
	return nil
}

func addCountBars(p *plot.Plot, values []Value, keys string) error {

	p.Y.Label.Text = "Count"

	width := vg.Points(float64(40) / float64(len(values)+1))
	for i, v := range values {

		var count map[string]int
		switch c := v.(type) {
		case ResidueCount:
			count = c
		case AtomCount:
			count = c
		}

		heights := make(plotter.Values, len(keys))
		for k := range heights {
			heights[k] = float64(count[keys[k:k+1]])
		}

		bars, err := plotter.NewBarChart(heights, width)
		if err != nil {
			return err
		}
		bars.Color = plotutil.Color(i)
		bars.LineStyle.Width = vg.Length(0)
		// center the group of bars on the key
		bars.Offset = width * vg.Length(float64(i)-float64(len(values)-1)/2)

		p.Add(bars)
		p.Legend.Add(sequenceLabel(i), bars)
	}
	p.Legend.Top = true

	names := make([]string, len(keys))
	for k := range names {
		names[k] = keys[k : k+1]
	}
	p.NominalX(names...)
	return nil
}

func sequenceLabel(i int) string {
	return fmt.Sprintf("seq_%d", i+1)
}

func sequenceLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = sequenceLabel(i)
	}
	return labels
}
