package cli

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// parseInts converts each argument to an int.
func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(strings.TrimSpace(a))
		if err != nil {
			return nil, errors.Wrapf(err, "value %d (%q)", i, a)
		}
		out[i] = v
	}
	return out, nil
}

// parseRow parses a comma-separated row such as "1,2,3".
func parseRow(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return []int{}, nil
	}
	return parseInts(strings.Split(s, ","))
}

// parseIntGrid parses one row per argument.
func parseIntGrid(args []string) ([][]int, error) {
	rows := make([][]int, len(args))
	for i, a := range args {
		row, err := parseRow(a)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", i)
		}
		rows[i] = row
	}
	return rows, nil
}

// parseFloatGrid parses "1,2;3,4" or one row per argument into float rows.
func parseFloatGrid(args []string) ([][]float64, error) {
	var specs []string
	for _, a := range args {
		specs = append(specs, strings.Split(a, ";")...)
	}

	rows := make([][]float64, 0, len(specs))
	for i, s := range specs {
		fields := strings.Split(s, ",")
		row := make([]float64, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, errors.Wrapf(err, "row %d col %d (%q)", i, j, f)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	return rows, nil
}
