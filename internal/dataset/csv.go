package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// CSVHeader is the column layout of Customer-Churn-Records.csv. Files are
// validated against it on load so the rest of the system never probes types
// at runtime.
var CSVHeader = []string{
	"RowNumber",
	"CustomerId",
	"Surname",
	"CreditScore",
	"Geography",
	"Gender",
	"Age",
	"Tenure",
	"Balance",
	"NumOfProducts",
	"HasCrCard",
	"IsActiveMember",
	"EstimatedSalary",
	"Exited",
	"Complain",
	"Satisfaction Score",
	"Card Type",
	"Point Earned",
}

// ReadCSV parses a full dataset from r, validating the header and every row.
func ReadCSV(r io.Reader) ([]Customer, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if err := validateHeader(header); err != nil {
		return nil, err
	}

	var customers []Customer
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", line+1, err)
		}
		line++

		c, err := parseRow(record)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		customers = append(customers, c)
	}

	return customers, nil
}

// WriteCSV writes the full dataset, header included. An unknown outcome is
// written as an empty field.
func WriteCSV(w io.Writer, customers []Customer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(CSVHeader); err != nil {
		return err
	}

	for _, c := range customers {
		exited := ""
		if c.Exited != nil {
			exited = strconv.Itoa(*c.Exited)
		}

		record := []string{
			strconv.Itoa(c.RowNumber),
			strconv.FormatInt(c.ID, 10),
			c.Surname,
			formatFloat(c.CreditScore),
			c.Geography,
			c.Gender,
			strconv.Itoa(c.Age),
			strconv.Itoa(c.Tenure),
			formatFloat(c.Balance),
			strconv.Itoa(c.NumProducts),
			formatBool(c.HasCrCard),
			formatBool(c.IsActive),
			formatFloat(c.Salary),
			exited,
			formatFloat(c.Complaints),
			formatFloat(c.Satisfaction),
			c.CardType,
			formatFloat(c.Points),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func validateHeader(header []string) error {
	if len(header) != len(CSVHeader) {
		return fmt.Errorf("expected %d columns, got %d", len(CSVHeader), len(header))
	}
	for i, name := range CSVHeader {
		if header[i] != name {
			return fmt.Errorf("column %d: expected %q, got %q", i+1, name, header[i])
		}
	}
	return nil
}

func parseRow(record []string) (Customer, error) {
	var c Customer

	if len(record) != len(CSVHeader) {
		return c, fmt.Errorf("expected %d fields, got %d", len(CSVHeader), len(record))
	}

	var err error
	if c.RowNumber, err = strconv.Atoi(record[0]); err != nil {
		return c, fmt.Errorf("RowNumber: %w", err)
	}
	if c.ID, err = strconv.ParseInt(record[1], 10, 64); err != nil {
		return c, fmt.Errorf("CustomerId: %w", err)
	}
	c.Surname = record[2]
	if c.CreditScore, err = strconv.ParseFloat(record[3], 64); err != nil {
		return c, fmt.Errorf("CreditScore: %w", err)
	}
	c.Geography = record[4]
	c.Gender = record[5]
	if c.Age, err = strconv.Atoi(record[6]); err != nil {
		return c, fmt.Errorf("Age: %w", err)
	}
	if c.Tenure, err = strconv.Atoi(record[7]); err != nil {
		return c, fmt.Errorf("Tenure: %w", err)
	}
	if c.Balance, err = strconv.ParseFloat(record[8], 64); err != nil {
		return c, fmt.Errorf("Balance: %w", err)
	}
	if c.NumProducts, err = strconv.Atoi(record[9]); err != nil {
		return c, fmt.Errorf("NumOfProducts: %w", err)
	}
	if c.HasCrCard, err = parseBool(record[10]); err != nil {
		return c, fmt.Errorf("HasCrCard: %w", err)
	}
	if c.IsActive, err = parseBool(record[11]); err != nil {
		return c, fmt.Errorf("IsActiveMember: %w", err)
	}
	if c.Salary, err = strconv.ParseFloat(record[12], 64); err != nil {
		return c, fmt.Errorf("EstimatedSalary: %w", err)
	}
	if c.Exited, err = parseOutcome(record[13]); err != nil {
		return c, fmt.Errorf("Exited: %w", err)
	}
	if c.Complaints, err = strconv.ParseFloat(record[14], 64); err != nil {
		return c, fmt.Errorf("Complain: %w", err)
	}
	if c.Satisfaction, err = strconv.ParseFloat(record[15], 64); err != nil {
		return c, fmt.Errorf("Satisfaction Score: %w", err)
	}
	c.CardType = record[16]
	if c.Points, err = strconv.ParseFloat(record[17], 64); err != nil {
		return c, fmt.Errorf("Point Earned: %w", err)
	}

	return c, nil
}

func parseBool(s string) (bool, error) {
	switch s {
	case "0":
		return false, nil
	case "1":
		return true, nil
	default:
		return false, fmt.Errorf("expected 0 or 1, got %q", s)
	}
}

// parseOutcome accepts 0, 1, or empty (unknown). Pandas writes a saved
// customer's missing label as an empty cell; float renderings of 0/1 are
// accepted for the same reason.
func parseOutcome(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("expected 0, 1 or empty, got %q", s)
	}
	switch f {
	case 0:
		v := 0
		return &v, nil
	case 1:
		v := 1
		return &v, nil
	default:
		return nil, fmt.Errorf("expected 0, 1 or empty, got %q", s)
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
