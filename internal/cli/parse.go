package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/ledgerkeeper/internal/ledger"
	"github.com/dmitrijs2005/ledgerkeeper/internal/models"
	"github.com/shopspring/decimal"
)

// parseTimestamp accepts unix seconds, a YYYY-MM-DD date (UTC midnight) or an
// RFC 3339 time.
func parseTimestamp(s string) (models.Timestamp, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return models.Timestamp(n), nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return models.Timestamp(t.Unix()), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return 0, fmt.Errorf("invalid timestamp %q", s)
	}
	return models.Timestamp(t.Unix()), nil
}

func formatTimestamp(ts models.Timestamp) string {
	return time.Unix(int64(ts), 0).UTC().Format(time.RFC3339)
}

// parseFilter turns key=value arguments of the list command into a Filter.
func parseFilter(args []string) (ledger.Filter, error) {
	var f ledger.Filter
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return f, fmt.Errorf("expected key=value, got %q", arg)
		}
		switch key {
		case "location":
			loc, err := models.ParseLocation(value)
			if err != nil {
				return f, err
			}
			f = f.WithLocation(loc)
		case "link":
			f = f.WithLink(value)
		case "notes":
			f = f.WithNotes(value)
		case "from":
			ts, err := parseTimestamp(value)
			if err != nil {
				return f, err
			}
			f = f.Since(ts)
		case "to":
			ts, err := parseTimestamp(value)
			if err != nil {
				return f, err
			}
			f = f.Until(ts)
		default:
			return f, fmt.Errorf("unknown filter %q", key)
		}
	}
	return f, nil
}

func parseIdentifier(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("expected exactly one identifier")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid identifier %q", args[0])
	}
	return id, nil
}

func parseOptionalDecimal(s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q", s)
	}
	return &d, nil
}
