package store

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// Row строка результата запроса. Все значения в текстовом виде, NULL превращается в пустую строку.
type Row []string

type Rows []Row

func (r Row) String(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

func (r Row) Int64(i int) (int64, error) {
	v, err := strconv.ParseInt(r.String(i), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("column %d: %w", i, err)
	}
	return v, nil
}

func (r Row) Int(i int) (int, error) {
	v, err := strconv.Atoi(r.String(i))
	if err != nil {
		return 0, fmt.Errorf("column %d: %w", i, err)
	}
	return v, nil
}

func (r Row) Decimal(i int) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(r.String(i))
	if err != nil {
		return decimal.Zero, fmt.Errorf("column %d: %w", i, err)
	}
	return v, nil
}

// Bool postgres в текстовом протоколе отдает булевы значения как `t`/`f`.
func (r Row) Bool(i int) bool {
	switch r.String(i) {
	case "t", "true":
		return true
	default:
		return false
	}
}

// First возвращает первую строку результата.
func (rs Rows) First() (Row, bool) {
	if len(rs) == 0 {
		return nil, false
	}
	return rs[0], true
}

// Scalar возвращает первую колонку первой строки.
func (rs Rows) Scalar() (string, bool) {
	row, ok := rs.First()
	if !ok || len(row) == 0 {
		return "", false
	}
	return row[0], true
}
