package service

import (
	"fmt"
	"strings"
)

// CitationStyle: gaya sitasi yang didukung endpoint citations.
type CitationStyle string

const (
	StyleAPA     CitationStyle = "apa"
	StyleHarvard CitationStyle = "harvard"
	StyleChicago CitationStyle = "chicago"
	StyleIEEE    CitationStyle = "ieee"
)

var AllStyles = []CitationStyle{StyleAPA, StyleHarvard, StyleChicago, StyleIEEE}

// CitationMeta: metadata bibliografis sebuah article, sudah digabung dengan
// issue + journal induknya.
type CitationMeta struct {
	Title       string
	AuthorNames []string
	Year        int
	Journal     string
	Volume      int
	Issue       int
	Pages       string // kosong = segmen halaman tidak dirender
	DOI         string // kosong = segmen DOI tidak dirender
}

// FormatCitation menghasilkan string sitasi deterministik untuk satu gaya.
func FormatCitation(meta CitationMeta, style CitationStyle) (string, error) {
	switch style {
	case StyleAPA:
		return formatAPA(meta), nil
	case StyleHarvard:
		return formatHarvard(meta), nil
	case StyleChicago:
		return formatChicago(meta), nil
	case StyleIEEE:
		return formatIEEE(meta), nil
	default:
		return "", fmt.Errorf("unknown citation style: %q", style)
	}
}

// FormatAllCitations: keempat gaya sekaligus (untuk panel "Cite this article").
func FormatAllCitations(meta CitationMeta) map[string]string {
	out := make(map[string]string, len(AllStyles))
	for _, style := range AllStyles {
		s, _ := FormatCitation(meta, style)
		out[string(style)] = s
	}
	return out
}

// Shape: Last, F. (Year). Title. Journal, Vol(Issue), Pages. DOI
func formatAPA(meta CitationMeta) string {
	names := make([]string, 0, len(meta.AuthorNames))
	for _, n := range meta.AuthorNames {
		names = append(names, lastNameInitials(n))
	}

	var authors string
	switch len(names) {
	case 0:
	case 1:
		authors = names[0]
	case 2:
		authors = names[0] + " & " + names[1]
	default:
		authors = strings.Join(names[:len(names)-1], ", ") + ", & " + names[len(names)-1]
	}

	var b strings.Builder
	if authors != "" {
		b.WriteString(authors + " ")
	}
	fmt.Fprintf(&b, "(%d). %s. %s, %d(%d)", meta.Year, meta.Title, meta.Journal, meta.Volume, meta.Issue)
	if meta.Pages != "" {
		b.WriteString(", " + meta.Pages)
	}
	b.WriteString(".")
	if meta.DOI != "" {
		b.WriteString(" " + doiURL(meta.DOI))
	}
	return b.String()
}

// Shape: Authors (Year) 'Title', Journal, Vol(Issue), pp. Pages. Available at: DOI
// 1 penulis nama lengkap; 2 penulis "A and B"; 3+ "A et al."
func formatHarvard(meta CitationMeta) string {
	var authors string
	switch len(meta.AuthorNames) {
	case 0:
	case 1:
		authors = meta.AuthorNames[0]
	case 2:
		authors = meta.AuthorNames[0] + " and " + meta.AuthorNames[1]
	default:
		authors = meta.AuthorNames[0] + " et al."
	}

	var b strings.Builder
	if authors != "" {
		b.WriteString(authors + " ")
	}
	fmt.Fprintf(&b, "(%d) '%s', %s, %d(%d)", meta.Year, meta.Title, meta.Journal, meta.Volume, meta.Issue)
	if meta.Pages != "" {
		b.WriteString(", pp. " + meta.Pages)
	}
	b.WriteString(".")
	if meta.DOI != "" {
		b.WriteString(" Available at: " + doiURL(meta.DOI))
	}
	return b.String()
}

// Shape: Authors. "Title." Journal Vol, no. Issue (Year): Pages. DOI
// Penulis pertama "Last, First"; berikutnya "First Last".
func formatChicago(meta CitationMeta) string {
	names := make([]string, 0, len(meta.AuthorNames))
	for i, n := range meta.AuthorNames {
		if i == 0 {
			names = append(names, lastCommaFirst(n))
		} else {
			names = append(names, n)
		}
	}

	var authors string
	switch len(names) {
	case 0:
	case 1:
		authors = names[0]
	default:
		authors = strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
	}

	var b strings.Builder
	if authors != "" {
		b.WriteString(authors + ". ")
	}
	fmt.Fprintf(&b, "\"%s.\" %s %d, no. %d (%d)", meta.Title, meta.Journal, meta.Volume, meta.Issue, meta.Year)
	if meta.Pages != "" {
		b.WriteString(": " + meta.Pages)
	}
	b.WriteString(".")
	if meta.DOI != "" {
		b.WriteString(" " + doiURL(meta.DOI))
	}
	return b.String()
}

// Shape: Authors, "Title," Journal, vol. Vol, no. Issue, pp. Pages, Year. doi: DOI
// Penulis "F. Last", dipisah koma.
func formatIEEE(meta CitationMeta) string {
	names := make([]string, 0, len(meta.AuthorNames))
	for _, n := range meta.AuthorNames {
		names = append(names, initialsLastName(n))
	}

	var b strings.Builder
	if len(names) > 0 {
		b.WriteString(strings.Join(names, ", ") + ", ")
	}
	fmt.Fprintf(&b, "\"%s,\" %s, vol. %d, no. %d", meta.Title, meta.Journal, meta.Volume, meta.Issue)
	if meta.Pages != "" {
		b.WriteString(", pp. " + meta.Pages)
	}
	fmt.Fprintf(&b, ", %d.", meta.Year)
	if meta.DOI != "" {
		b.WriteString(" doi: " + meta.DOI)
	}
	return b.String()
}

/* =======================
   Name helpers
======================= */

// splitName: token terakhir = nama belakang, sisanya nama depan.
// Nama satu token dikembalikan apa adanya (given kosong).
func splitName(name string) (given, last string) {
	fields := strings.Fields(name)
	switch len(fields) {
	case 0:
		return "", ""
	case 1:
		return "", fields[0]
	default:
		return strings.Join(fields[:len(fields)-1], " "), fields[len(fields)-1]
	}
}

// initials: "Jane A." → "J. A."
func initials(given string) string {
	fields := strings.Fields(given)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		r := []rune(f)
		out = append(out, string(r[0])+".")
	}
	return strings.Join(out, " ")
}

// "Jane A. Doe" → "Doe, J. A."
func lastNameInitials(name string) string {
	given, last := splitName(name)
	if given == "" {
		return last
	}
	return last + ", " + initials(given)
}

// "Jane A. Doe" → "Doe, Jane A."
func lastCommaFirst(name string) string {
	given, last := splitName(name)
	if given == "" {
		return last
	}
	return last + ", " + given
}

// "Jane A. Doe" → "J. A. Doe"
func initialsLastName(name string) string {
	given, last := splitName(name)
	if given == "" {
		return last
	}
	return initials(given) + " " + last
}

func doiURL(doi string) string {
	if strings.HasPrefix(doi, "http://") || strings.HasPrefix(doi, "https://") {
		return doi
	}
	return "https://doi.org/" + doi
}
