package gap

import (
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotLengths saves a bar chart of the gap length histogram.
// The image format follows the extension of fileName.
func PlotLengths(s *Stats, fileName string) error {
	p := plot.New()
	p.Title.Text = "Gap lengths"
	p.X.Label.Text = "length"
	p.Y.Label.Text = "gaps"

	lengths := s.SortedLengths()
	if len(lengths) > 0 {
		values := make(plotter.Values, len(lengths))
		names := make([]string, len(lengths))
		for i, l := range lengths {
			values[i] = float64(s.Lengths[l])
			names[i] = strconv.Itoa(l)
		}

		bars, err := plotter.NewBarChart(values, vg.Points(10))
		if err != nil {
			return err
		}
		p.Add(bars)
		p.NominalX(names...)
	}

	return p.Save(6*vg.Inch, 4*vg.Inch, fileName)
}
