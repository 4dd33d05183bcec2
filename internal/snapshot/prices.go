package snapshot

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

// PlayerPrice is one row of the fantasy pricing export. NowCost is in
// tenths of the displayed price, so 55 means 5.5.
type PlayerPrice struct {
	FirstName   string `validate:"required"`
	SecondName  string `validate:"required"`
	ElementType string `validate:"required,oneof=GK DEF MID FWD"`
	NowCost     int    `validate:"gte=0"`
}

func (p PlayerPrice) Price() float64 {
	return float64(p.NowCost) / 10
}

// DecodePrices parses the pricing CSV. Columns are located by header name
// so extra columns in the export are ignored. Rows that fail validation
// are dropped and reported as issues; a missing required column still
// fails the file.
func DecodePrices(r io.Reader) ([]PlayerPrice, []DecodeIssue, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, errors.Wrap(err, "read pricing header")
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, required := range []string{"first_name", "second_name", "element_type", "now_cost"} {
		if _, ok := cols[required]; !ok {
			return nil, nil, errors.Newf("pricing header missing column %q", required)
		}
	}

	validate := validator.New()
	var prices []PlayerPrice
	var issues []DecodeIssue
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, errors.Wrapf(err, "read pricing line %d", line)
		}

		nowCost, err := strconv.Atoi(strings.TrimSpace(record[cols["now_cost"]]))
		if err != nil {
			issues = append(issues, DecodeIssue{Entry: fmt.Sprintf("line %d", line), Reason: fmt.Sprintf("now_cost: %v", err)})
			continue
		}
		price := PlayerPrice{
			FirstName:   strings.TrimSpace(record[cols["first_name"]]),
			SecondName:  strings.TrimSpace(record[cols["second_name"]]),
			ElementType: strings.TrimSpace(record[cols["element_type"]]),
			NowCost:     nowCost,
		}
		if err := validate.Struct(price); err != nil {
			issues = append(issues, DecodeIssue{Entry: fmt.Sprintf("line %d", line), Reason: err.Error()})
			continue
		}
		prices = append(prices, price)
	}
	return prices, issues, nil
}
