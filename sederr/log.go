package sederr

import (
	"encoding/xml"
	"strings"
)

// Log is an ordered collection of SED-ML diagnostics.
//
// The zero value is an empty log ready to use. Read methods are safe to
// call on a nil *Log.
type Log struct {
	XMLName xml.Name `xml:"errorLog" json:"-"`
	Errors  []*Error `xml:"error" json:"errors"`
}

// Add adds errors to the log, ignoring nil values
func (l *Log) Add(errs ...*Error) (added int) {
	for _, err := range errs {
		if err != nil {
			l.Errors = append(l.Errors, err)
			added++
		}
	}
	return added
}

// Append adds every entry of other to l
func (l *Log) Append(other *Log) int {
	if other == nil {
		return 0
	}
	return l.Add(other.Errors...)
}

// Entries returns all log entries in the order they were added
func (l *Log) Entries() []*Error {
	if l == nil {
		return nil
	}
	return l.Errors
}

// Len returns the number of entries
func (l *Log) Len() int { return len(l.Entries()) }

// NumFailsWithSeverity returns the number of entries with exactly severity s
func (l *Log) NumFailsWithSeverity(s Severity) (n int) {
	for _, e := range l.Entries() {
		if e.Severity == s {
			n++
		}
	}
	return n
}

// NumErrors returns the number of entries at error severity or worse
func (l *Log) NumErrors() (n int) {
	for _, e := range l.Entries() {
		if e.Severity >= SeverityError {
			n++
		}
	}
	return n
}

// HasErrors is true when the log holds an error or fatal entry
func (l *Log) HasErrors() bool { return l.NumErrors() > 0 }

// Contains reports whether an entry with code c is present
func (l *Log) Contains(c Code) bool {
	for _, e := range l.Entries() {
		if e.Code == c {
			return true
		}
	}
	return false
}

// Remove deletes the first entry with code c, reporting whether one was found
func (l *Log) Remove(c Code) bool {
	if l == nil {
		return false
	}
	for i, e := range l.Errors {
		if e.Code == c {
			l.Errors = append(l.Errors[:i], l.Errors[i+1:]...)
			return true
		}
	}
	return false
}

// Filter returns a new log holding the entries at severity min or worse
func (l *Log) Filter(min Severity) *Log {
	out := &Log{}
	for _, e := range l.Entries() {
		if e.Severity >= min {
			out.Add(e)
		}
	}
	return out
}

// String returns the log as text, one entry per line
func (l *Log) String() string {
	var sb strings.Builder
	for _, e := range l.Entries() {
		sb.WriteString(e.Error())
		sb.WriteByte('\n')
	}
	return sb.String()
}
