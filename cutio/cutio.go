// Package cutio reads and writes the tabular interchange formats around the
// solver: instance CSV files (columns StockLength, Length, Demand; one row
// per item type, row order defining the item index) and cutting-plan reports
// (one row per pattern with fractional usage, waste, and cut offsets).
//
// The package is a thin collaborator around the cutting data model: all
// validation beyond syntax is delegated to cutting.NewInstance.
package cutio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/cutstock/cutting"
)

// Sentinel errors returned by the readers.
var (
	// ErrBadHeader indicates a missing or unrecognized CSV header row.
	ErrBadHeader = errors.New("cutio: expected header StockLength,Length,Demand")

	// ErrBadRow indicates a row with the wrong arity or non-integer fields.
	ErrBadRow = errors.New("cutio: malformed instance row")

	// ErrStockMismatch indicates rows disagreeing on the stock length, which
	// must repeat the same value on every row.
	ErrStockMismatch = errors.New("cutio: StockLength differs between rows")

	// ErrNoRows indicates an instance file without item rows.
	ErrNoRows = errors.New("cutio: instance file contains no item rows")
)

// instanceHeader is the canonical column set of an instance file.
var instanceHeader = []string{"StockLength", "Length", "Demand"}

// ReadInstance parses an instance CSV from r and returns the validated
// instance. Field order is fixed; the header row is mandatory.
func ReadInstance(r io.Reader) (*cutting.Instance, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(instanceHeader)
	cr.TrimLeadingSpace = true

	// Header first.
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	for i, want := range instanceHeader {
		if !strings.EqualFold(strings.TrimSpace(header[i]), want) {
			return nil, fmt.Errorf("%w: got %v", ErrBadHeader, header)
		}
	}

	// Item rows, in file order: row k defines item k.
	var (
		stock   int
		lengths []int
		demands []int
	)
	for row := 1; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrBadRow, row, err)
		}

		s, err := strconv.Atoi(strings.TrimSpace(rec[0]))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: StockLength %q", ErrBadRow, row, rec[0])
		}
		l, err := strconv.Atoi(strings.TrimSpace(rec[1]))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: Length %q", ErrBadRow, row, rec[1])
		}
		d, err := strconv.Atoi(strings.TrimSpace(rec[2]))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: Demand %q", ErrBadRow, row, rec[2])
		}

		if len(lengths) == 0 {
			stock = s
		} else if s != stock {
			return nil, fmt.Errorf("%w: row %d has %d, earlier rows %d", ErrStockMismatch, row, s, stock)
		}
		lengths = append(lengths, l)
		demands = append(demands, d)
	}
	if len(lengths) == 0 {
		return nil, ErrNoRows
	}

	return cutting.NewInstance(stock, lengths, demands)
}

// WriteInstance emits inst in the instance CSV format read by ReadInstance.
func WriteInstance(w io.Writer, inst *cutting.Instance) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(instanceHeader); err != nil {
		return err
	}

	stock := strconv.Itoa(inst.StockLength())
	for i := 0; i < inst.NumItems(); i++ {
		rec := []string{stock, strconv.Itoa(inst.Length(i)), strconv.Itoa(inst.Demand(i))}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// WritePlan renders the final pattern set and its fractional usage as a CSV
// report, one row per pattern:
//
//	Pattern,Usage,Waste,Offsets
//
// Pattern is the count vector, Offsets the ordered cut positions along one
// stock unit (space-separated), Waste the unused remainder. Usage entries
// beyond len(usage) print as 0 (patterns priced out after the last master
// solve of an expired run).
func WritePlan(w io.Writer, inst *cutting.Instance, set *cutting.PatternSet, usage []float64) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Pattern", "Usage", "Waste", "Offsets"}); err != nil {
		return err
	}

	lengths := inst.Lengths()
	for p := 0; p < set.Len(); p++ {
		pattern := set.At(p)
		x := 0.0
		if p < len(usage) {
			x = usage[p]
		}

		offsets := pattern.Offsets(lengths)
		fields := make([]string, len(offsets))
		for i, o := range offsets {
			fields[i] = strconv.Itoa(o)
		}

		rec := []string{
			pattern.String(),
			strconv.FormatFloat(x, 'g', -1, 64),
			strconv.Itoa(pattern.Waste(inst.StockLength(), lengths)),
			strings.Join(fields, " "),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
