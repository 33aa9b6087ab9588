package roster

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultFile is the roster file looked up in the working directory.
const DefaultFile = "users.csv"

const minFields = 3

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVSource reads invitees from a comma-delimited file with rows of
// email,first_name,last_name[,role_code].
type CSVSource struct {
	path string
}

var _ Source = (*CSVSource)(nil)

// NewCSVSource creates a source reading from path.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

// Load reads and validates the file.
func (s *CSVSource) Load(_ context.Context) (*Roster, error) {
	f, err := os.Open(s.path) // #nosec G304
	if err != nil {
		return nil, fmt.Errorf("failed to open roster file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ParseCSV(f, s.path)
}

// ParseCSV parses roster rows from r. Invalid rows are skipped with a
// diagnostic rather than failing the whole roster; only unreadable input
// is an error.
func ParseCSV(r io.Reader, origin string) (*Roster, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && string(head) == string(utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	// Names such as `Bob "Bobby"` carry bare quotes.
	reader.LazyQuotes = true

	roster := &Roster{Origin: origin}
	first := true

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			roster.skip(perr.StartLine, record, perr.Err.Error())
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read roster %s: %w", origin, err)
		}
		line, _ := reader.FieldPos(0)

		fields := trimFields(record)
		if isBlank(fields) {
			continue
		}
		if first {
			first = false
			if strings.EqualFold(fields[0], "email") {
				continue
			}
		}

		roster.addRow(line, fields)
	}

	if roster.DefaultRoleCount > 0 {
		roster.addDiagnostic("%d invitee(s) defaulted to %s (%d); check this is intended",
			roster.DefaultRoleCount, DefaultRole, DefaultRole.Level())
	}

	return roster, nil
}

// addRow validates one row and appends it as an invitee or a skipped row.
func (r *Roster) addRow(line int, fields []string) {
	if len(fields) < minFields {
		r.skip(line, fields, fmt.Sprintf("expected at least %d fields (email, first name, last name), got %d", minFields, len(fields)))
		return
	}

	email := fields[0]
	if err := ValidateEmail(email); err != nil {
		r.skip(line, fields, err.Error())
		return
	}

	role := DefaultRole
	if len(fields) > minFields && fields[minFields] != "" {
		parsed, err := ParseRole(fields[minFields])
		if err != nil {
			r.addDiagnostic("line %d: %v; defaulting %s to %s", line, err, email, DefaultRole)
			r.DefaultRoleCount++
		} else {
			role = parsed
		}
	} else {
		r.DefaultRoleCount++
	}

	r.Invitees = append(r.Invitees, Invitee{
		Email:     email,
		FirstName: fields[1],
		LastName:  fields[2],
		Role:      role,
	})
}

func (r *Roster) skip(line int, fields []string, reason string) {
	r.Skipped = append(r.Skipped, SkippedRow{Line: line, Raw: fields, Reason: reason})
	r.addDiagnostic("line %d skipped: %s", line, reason)
}

func trimFields(record []string) []string {
	out := make([]string, len(record))
	for i, f := range record {
		out[i] = strings.TrimSpace(f)
	}
	return out
}

func isBlank(fields []string) bool {
	for _, f := range fields {
		if f != "" {
			return false
		}
	}
	return true
}
