package service

import (
	"testing"
)

func sampleMeta() CitationMeta {
	return CitationMeta{
		Title:       "Machine Learning in Clinical Practice",
		AuthorNames: []string{"Jane A. Doe"},
		Year:        2024,
		Journal:     "Web of Medicine",
		Volume:      3,
		Issue:       2,
		Pages:       "10-20",
		DOI:         "10.1/x",
	}
}

func TestFormatCitationAPA(t *testing.T) {
	got, err := FormatCitation(sampleMeta(), StyleAPA)
	if err != nil {
		t.Fatalf("FormatCitation: %v", err)
	}
	want := "Doe, J. A. (2024). Machine Learning in Clinical Practice. Web of Medicine, 3(2), 10-20. https://doi.org/10.1/x"
	if got != want {
		t.Errorf("APA citation\n got: %s\nwant: %s", got, want)
	}
}

func TestFormatCitationHarvardAuthorCounts(t *testing.T) {
	tests := []struct {
		name    string
		authors []string
		want    string
	}{
		{"one author", []string{"Alice Smith"}, "Alice Smith"},
		{"two authors", []string{"Alice Smith", "Bob Lee"}, "Alice Smith and Bob Lee"},
		{"three authors", []string{"Alice Smith", "Bob Lee", "Carol Tan"}, "Alice Smith et al."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := sampleMeta()
			meta.AuthorNames = tt.authors
			got, err := FormatCitation(meta, StyleHarvard)
			if err != nil {
				t.Fatalf("FormatCitation: %v", err)
			}
			wantFull := tt.want + " (2024) 'Machine Learning in Clinical Practice', Web of Medicine, 3(2), pp. 10-20. Available at: https://doi.org/10.1/x"
			if got != wantFull {
				t.Errorf("Harvard citation\n got: %s\nwant: %s", got, wantFull)
			}
		})
	}
}

func TestFormatCitationChicago(t *testing.T) {
	meta := sampleMeta()
	meta.AuthorNames = []string{"Jane A. Doe", "Bob Lee"}
	got, err := FormatCitation(meta, StyleChicago)
	if err != nil {
		t.Fatalf("FormatCitation: %v", err)
	}
	want := `Doe, Jane A., and Bob Lee. "Machine Learning in Clinical Practice." Web of Medicine 3, no. 2 (2024): 10-20. https://doi.org/10.1/x`
	if got != want {
		t.Errorf("Chicago citation\n got: %s\nwant: %s", got, want)
	}
}

func TestFormatCitationIEEE(t *testing.T) {
	meta := sampleMeta()
	meta.AuthorNames = []string{"Jane A. Doe", "Bob Lee"}
	got, err := FormatCitation(meta, StyleIEEE)
	if err != nil {
		t.Fatalf("FormatCitation: %v", err)
	}
	want := `J. A. Doe, B. Lee, "Machine Learning in Clinical Practice," Web of Medicine, vol. 3, no. 2, pp. 10-20, 2024. doi: 10.1/x`
	if got != want {
		t.Errorf("IEEE citation\n got: %s\nwant: %s", got, want)
	}
}

func TestFormatCitationOmitsEmptySegments(t *testing.T) {
	meta := sampleMeta()
	meta.Pages = ""
	meta.DOI = ""

	tests := []struct {
		style CitationStyle
		want  string
	}{
		{StyleAPA, "Doe, J. A. (2024). Machine Learning in Clinical Practice. Web of Medicine, 3(2)."},
		{StyleHarvard, "Jane A. Doe (2024) 'Machine Learning in Clinical Practice', Web of Medicine, 3(2)."},
		{StyleChicago, `Doe, Jane A. "Machine Learning in Clinical Practice." Web of Medicine 3, no. 2 (2024).`},
		{StyleIEEE, `J. A. Doe, "Machine Learning in Clinical Practice," Web of Medicine, vol. 3, no. 2, 2024.`},
	}

	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			got, err := FormatCitation(meta, tt.style)
			if err != nil {
				t.Fatalf("FormatCitation: %v", err)
			}
			if got != tt.want {
				t.Errorf("citation without pages/doi\n got: %s\nwant: %s", got, tt.want)
			}
		})
	}
}

func TestFormatCitationSingleTokenName(t *testing.T) {
	meta := sampleMeta()
	meta.AuthorNames = []string{"Aristotle"}

	got, err := FormatCitation(meta, StyleAPA)
	if err != nil {
		t.Fatalf("FormatCitation: %v", err)
	}
	want := "Aristotle (2024). Machine Learning in Clinical Practice. Web of Medicine, 3(2), 10-20. https://doi.org/10.1/x"
	if got != want {
		t.Errorf("single-token author\n got: %s\nwant: %s", got, want)
	}
}

func TestFormatCitationDeterministic(t *testing.T) {
	meta := sampleMeta()
	for _, style := range AllStyles {
		first, err := FormatCitation(meta, style)
		if err != nil {
			t.Fatalf("FormatCitation(%s): %v", style, err)
		}
		for i := 0; i < 5; i++ {
			again, _ := FormatCitation(meta, style)
			if again != first {
				t.Errorf("style %s not deterministic: %q vs %q", style, first, again)
			}
		}
	}
}

func TestFormatCitationUnknownStyle(t *testing.T) {
	if _, err := FormatCitation(sampleMeta(), CitationStyle("mla")); err == nil {
		t.Error("expected error for unknown style")
	}
}

func TestFormatAllCitations(t *testing.T) {
	out := FormatAllCitations(sampleMeta())
	if len(out) != len(AllStyles) {
		t.Fatalf("got %d styles, want %d", len(out), len(AllStyles))
	}
	for _, style := range AllStyles {
		if out[string(style)] == "" {
			t.Errorf("style %s missing from FormatAllCitations output", style)
		}
	}
}

func TestDoiURLPassthrough(t *testing.T) {
	meta := sampleMeta()
	meta.DOI = "https://doi.org/10.5555/abc"
	got, _ := FormatCitation(meta, StyleAPA)
	want := "Doe, J. A. (2024). Machine Learning in Clinical Practice. Web of Medicine, 3(2), 10-20. https://doi.org/10.5555/abc"
	if got != want {
		t.Errorf("doi passthrough\n got: %s\nwant: %s", got, want)
	}
}
