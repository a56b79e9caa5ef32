// Package institute holds the static institute reference directory.
package institute

import (
	"sort"
	"strings"
)

// Entry describes one institute: display name, city and default contact.
type Entry struct {
	Full  string
	City  string
	Email string
}

// FallbackEmail is used when an institute code is not in the directory.
const FallbackEmail = "contact@institute.ac.in"

// Directory maps institute codes to reference entries. Construct once at
// startup and share read-only; lookups are case-insensitive on code.
type Directory struct {
	entries map[string]Entry
}

// NewDirectory builds the default directory.
func NewDirectory() *Directory {
	return &Directory{entries: map[string]Entry{
		"IITM":   {Full: "IIT Madras", City: "Chennai", Email: "recruit@iitm.ac.in"},
		"IITD":   {Full: "IIT Delhi", City: "Delhi", Email: "rectt@admin.iitd.ac.in"},
		"IITK":   {Full: "IIT Kanpur", City: "Kanpur", Email: "doad@iitk.ac.in"},
		"IITKGP": {Full: "IIT Kharagpur", City: "Kharagpur", Email: "registrar@iitkgp.ac.in"},
		"IITH":   {Full: "IIT Hyderabad", City: "Hyderabad", Email: "office.rec@iith.ac.in"},
		"IITJ":   {Full: "IIT Jodhpur", City: "Jodhpur", Email: "recruitment@iitj.ac.in"},
		"IITGN":  {Full: "IIT Gandhinagar", City: "Gandhinagar", Email: "staff.recruitment@iitgn.ac.in"},
		"IITBBS": {Full: "IIT Bhubaneswar", City: "Bhubaneswar", Email: "recruitment@iitbbs.ac.in"},
		"IITDH":  {Full: "IIT Dharwad", City: "Dharwad", Email: "recruit@iitdh.ac.in"},
		"IITR":   {Full: "IIT Roorkee", City: "Roorkee", Email: "recruit@iitr.ac.in"},
		"IITG":   {Full: "IIT Guwahati", City: "Guwahati", Email: "rec@iitg.ac.in"},
		"NITK":   {Full: "NIT Karnataka", City: "Surathkal", Email: "registrar@nitk.ac.in"},
		"NITC":   {Full: "NIT Calicut", City: "Calicut", Email: "recruit@nitc.ac.in"},
		"NITM":   {Full: "NIT Meghalaya", City: "Shillong", Email: "registrar@nitm.ac.in"},
		"IIIT":   {Full: "IIIT Hyderabad", City: "Hyderabad", Email: "query@iiit.ac.in"},
		"IIITB":  {Full: "IIIT Bangalore", City: "Bangalore", Email: "info@iiitb.ac.in"},
		"IIITD":  {Full: "IIIT Delhi", City: "Delhi", Email: "admin@iiitd.ac.in"},
		"IIITP":  {Full: "IIIT Pune", City: "Pune", Email: "careers@iiitp.ac.in"},
	}}
}

// Lookup resolves a code after trimming and upper-casing. Unknown codes get
// a synthesized entry rather than an error.
func (d *Directory) Lookup(code string) Entry {
	key := strings.ToUpper(strings.TrimSpace(code))
	if e, ok := d.entries[key]; ok {
		return e
	}
	return Entry{Full: key, City: "Other", Email: FallbackEmail}
}

// Cities returns the distinct city names, sorted.
func (d *Directory) Cities() []string {
	seen := make(map[string]struct{}, len(d.entries))
	var cities []string
	for _, e := range d.entries {
		if _, ok := seen[e.City]; ok {
			continue
		}
		seen[e.City] = struct{}{}
		cities = append(cities, e.City)
	}
	sort.Strings(cities)
	return cities
}

// Institutes returns the full institute names, sorted.
func (d *Directory) Institutes() []string {
	names := make([]string, 0, len(d.entries))
	for _, e := range d.entries {
		names = append(names, e.Full)
	}
	sort.Strings(names)
	return names
}
