package ledger

import (
	"strings"

	"github.com/dmitrijs2005/ledgerkeeper/internal/models"
)

// Filter selects ledger actions. Nil fields impose no constraint; set fields
// are combined with AND. Time bounds are inclusive. An empty Link or Notes
// selects actions without a link or notes.
type Filter struct {
	From     *models.Timestamp
	To       *models.Timestamp
	Location *models.Location
	Link     *string
	Notes    *string
}

func (f Filter) Since(ts models.Timestamp) Filter {
	f.From = &ts
	return f
}

func (f Filter) Until(ts models.Timestamp) Filter {
	f.To = &ts
	return f
}

func (f Filter) WithLocation(l models.Location) Filter {
	f.Location = &l
	return f
}

func (f Filter) WithLink(link string) Filter {
	f.Link = &link
	return f
}

func (f Filter) WithNotes(notes string) Filter {
	f.Notes = &notes
	return f
}

// predicate collects column conditions and their bind values. Column names
// come from this package only; values always travel as bind arguments.
type predicate struct {
	conds []string
	args  []any
}

// addText matches column against value. Empty text is stored as NULL, so
// an empty value matches NULL.
func (p *predicate) addText(column, value string) {
	if value == "" {
		p.conds = append(p.conds, column+" IS NULL")
		return
	}
	p.add(column, "=", value)
}

func (p *predicate) add(column, op string, value any) {
	p.conds = append(p.conds, column+" "+op+" ?")
	p.args = append(p.args, value)
}

// build renders " WHERE c1 AND c2 ..." (or "" without conditions) using '?'
// placeholders, and the matching arguments.
func (p *predicate) build() (string, []any) {
	if len(p.conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(p.conds, " AND "), p.args
}

func (f Filter) predicate() *predicate {
	p := &predicate{}
	if f.Location != nil {
		p.add("location", "=", f.Location.SerializeForDB())
	}
	if f.Link != nil {
		p.addText("link", *f.Link)
	}
	if f.Notes != nil {
		p.addText("notes", *f.Notes)
	}
	if f.From != nil {
		p.add("timestamp", ">=", int64(*f.From))
	}
	if f.To != nil {
		p.add("timestamp", "<=", int64(*f.To))
	}
	return p
}
