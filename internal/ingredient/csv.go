package ingredient

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/matt-dz/foodgram/internal/apperr"
	"github.com/matt-dz/foodgram/internal/database"
)

// ParseCSV reads name,measurement_unit records. A leading header row naming
// those two columns is skipped.
func ParseCSV(r io.Reader) ([]database.CreateIngredientsParams, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2
	reader.TrimLeadingSpace = true

	verr := apperr.NewValidationError(apperr.CodeInvalidCSV)
	var out []database.CreateIngredientsParams
	for first := true; ; first = false {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if !errors.As(err, &parseErr) {
				return nil, fmt.Errorf("reading csv: %w", err)
			}
			verr.Add(lineField(parseErr.Line), "%s", parseErr.Err)
			if errors.Is(parseErr.Err, csv.ErrFieldCount) {
				continue
			}
			break
		}
		line, _ := reader.FieldPos(0)

		name := strings.TrimSpace(strings.TrimPrefix(record[0], "\uFEFF"))
		unit := strings.TrimSpace(record[1])
		if first && strings.EqualFold(name, "name") && strings.EqualFold(unit, "measurement_unit") {
			continue
		}

		switch {
		case name == "" || unit == "":
			verr.Add(lineField(line), "name and measurement_unit are required")
		case utf8.RuneCountInString(name) > MaxFieldLength || utf8.RuneCountInString(unit) > MaxFieldLength:
			verr.Add(lineField(line), "fields must be at most %d characters", MaxFieldLength)
		default:
			out = append(out, database.CreateIngredientsParams{Name: name, MeasurementUnit: unit})
		}
	}

	if err := verr.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ImportCSV parses r and loads every record in one transaction. Nothing is
// written when any record is invalid.
func (s *Service) ImportCSV(ctx context.Context, r io.Reader) (int64, error) {
	rows, err := ParseCSV(r)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}

	var n int64
	err = s.store.ExecTx(ctx, func(q database.Querier) error {
		var err error
		n, err = q.CreateIngredients(ctx, rows)
		if err != nil {
			return fmt.Errorf("creating ingredients: %w", err)
		}
		return nil
	})
	return n, err
}

func lineField(line int) string {
	return fmt.Sprintf("line %d", line)
}
