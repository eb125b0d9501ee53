package io

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/phil-mansfield/table"

	"github.com/phil-mansfield/optim1d/math/interpolate"
)

// ReadSamples reads a sample set from columns xCol and yCol of the
// whitespace-separated table fname. Rows keep their order in the file.
func ReadSamples(fname string, xCol, yCol int) ([]interpolate.Point, error) {
	cols, err := table.ReadTable(fname, []int{xCol, yCol}, nil)
	if err != nil {
		return nil, err
	}
	return interpolate.Points(cols[0], cols[1]), nil
}

// Samples returns the sample set described by the dataset, reading it from
// Input if that was set.
func (con *DatasetConfig) Samples() ([]interpolate.Point, error) {
	if con.Input == "" {
		return interpolate.Points(con.X, con.Y), nil
	}

	pts, err := ReadSamples(con.Input, con.XColumn, con.YColumn)
	if err != nil {
		return nil, fmt.Errorf(
			"Could not read samples for Dataset '%s': %w", con.name, err,
		)
	}
	return pts, nil
}

// WriteCSV writes a header line followed by one comma-separated line per row
// to fname. Floats are written in their shortest exact form.
func WriteCSV(fname string, headers []string, rows [][]float64) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, strings.Join(headers, ","))
	strs := []string{}
	for _, row := range rows {
		strs = strs[:0]
		for _, v := range row {
			strs = append(strs, strconv.FormatFloat(v, 'g', -1, 64))
		}
		fmt.Fprintln(w, strings.Join(strs, ","))
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// PointRows converts a sample set to rows for WriteCSV.
func PointRows(pts []interpolate.Point) [][]float64 {
	rows := make([][]float64, len(pts))
	for i, pt := range pts {
		rows[i] = []float64{pt.X, pt.Y}
	}
	return rows
}
