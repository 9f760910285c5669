package service

import (
	"encoding/json"
	"fmt"
	"testing"

	"journalku_backend/internals/features/articles/model"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

func makeArticle(title, abstract string, keywords []string, authorNames ...string) model.ArticleModel {
	type author struct {
		Name string `json:"name"`
	}
	authors := make([]author, 0, len(authorNames))
	for _, n := range authorNames {
		authors = append(authors, author{Name: n})
	}
	raw, _ := json.Marshal(authors)

	return model.ArticleModel{
		ArticleTitle:    title,
		ArticleAbstract: abstract,
		ArticleKeywords: pq.StringArray(keywords),
		ArticleAuthors:  datatypes.JSON(raw),
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	corpus := []model.ArticleModel{
		makeArticle("Deep Learning", "abstract", nil, "Jane Doe"),
	}
	for _, q := range []string{"", "   ", "\t"} {
		got := Search(q, corpus)
		if got == nil {
			t.Errorf("Search(%q) returned nil, want empty slice", q)
		}
		if len(got) != 0 {
			t.Errorf("Search(%q) returned %d results, want 0", q, len(got))
		}
	}
}

func TestSearchMatchesFields(t *testing.T) {
	corpus := []model.ArticleModel{
		makeArticle("Quantum Computing Advances", "", nil, "Alice Smith"),
		makeArticle("Plain Title", "A study of neural networks in medicine", nil, "Bob Lee"),
		makeArticle("Another Title", "", []string{"epidemiology", "statistics"}, "Carol Tan"),
		makeArticle("Fourth Title", "", nil, "Dmitri Volkov"),
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"title match", "quantum", []string{"Quantum Computing Advances"}},
		{"abstract match", "neural networks", []string{"Plain Title"}},
		{"keyword match", "epidemiology", []string{"Another Title"}},
		{"author match", "volkov", []string{"Fourth Title"}},
		{"case insensitive", "QUANTUM", []string{"Quantum Computing Advances"}},
		{"no match", "astrophysics", []string{}},
		{"multi field match", "title", []string{"Plain Title", "Another Title", "Fourth Title"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(tt.query, corpus)
			if len(got) != len(tt.want) {
				t.Fatalf("Search(%q) returned %d results, want %d", tt.query, len(got), len(tt.want))
			}
			for i, w := range tt.want {
				if got[i].ArticleTitle != w {
					t.Errorf("result[%d] = %q, want %q", i, got[i].ArticleTitle, w)
				}
			}
		})
	}
}

func TestSearchPreservesOrderAndCapsResults(t *testing.T) {
	corpus := make([]model.ArticleModel, 0, 15)
	for i := 0; i < 15; i++ {
		corpus = append(corpus, makeArticle(fmt.Sprintf("Genomics Study %02d", i), "", nil))
	}

	got := Search("genomics", corpus)
	if len(got) != MaxSearchResults {
		t.Fatalf("got %d results, want cap %d", len(got), MaxSearchResults)
	}
	for i := range got {
		want := fmt.Sprintf("Genomics Study %02d", i)
		if got[i].ArticleTitle != want {
			t.Errorf("result[%d] = %q, want %q (corpus order)", i, got[i].ArticleTitle, want)
		}
	}
}

func TestSearchIgnoresCorruptAuthors(t *testing.T) {
	broken := model.ArticleModel{
		ArticleTitle:   "Valid Title",
		ArticleAuthors: datatypes.JSON([]byte(`{not json`)),
	}
	got := Search("valid", []model.ArticleModel{broken})
	if len(got) != 1 {
		t.Errorf("title match should survive corrupt authors column, got %d results", len(got))
	}
	got = Search("someauthor", []model.ArticleModel{broken})
	if len(got) != 0 {
		t.Errorf("corrupt authors column should not match, got %d results", len(got))
	}
}
