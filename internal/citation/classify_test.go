package citation

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		c    Citation
		want CitationType
	}{
		{"explicit book wins", Citation{Type: "book", ContainerTitle: "Journal of Things", Volume: "3"}, TypeBook},
		{"explicit hint substring", Citation{Type: "Article-Journal"}, TypeArticleJournal},
		{"explicit newspaper", Citation{Type: "article-newspaper"}, TypeArticleNewspaper},
		{"unknown type falls through", Citation{Type: "manuscript", Publisher: "Penguin"}, TypeBook},
		{"journal container", Citation{ContainerTitle: "Journal of Hydrology"}, TypeArticleJournal},
		{"review container", Citation{ContainerTitle: "Harvard Law REVIEW"}, TypeArticleJournal},
		{"proceedings container", Citation{ContainerTitle: "Proceedings of the Royal Society"}, TypeArticleJournal},
		{"quarterly container", Citation{ContainerTitle: "Economic Quarterly"}, TypeArticleJournal},
		{"annual container", Citation{ContainerTitle: "Annual Meeting"}, TypeArticleJournal},
		{"newspaper container", Citation{ContainerTitle: "The Washington Post"}, TypeArticleNewspaper},
		{"unknown container", Citation{ContainerTitle: "Science"}, TypeArticleJournal},
		{"publisher", Citation{Publisher: "Penguin"}, TypeBook},
		{"location", Citation{Location: "London"}, TypeBook},
		{"volume", Citation{Volume: "4"}, TypeArticleJournal},
		{"issue", Citation{Issue: "2"}, TypeArticleJournal},
		{"thesis title", Citation{Title: "A Doctoral Dissertation on Rivers"}, TypeThesis},
		{"report title", Citation{Title: "Working Paper Series on Trade"}, TypeReport},
		{"chapter title", Citation{Title: "Chapter 4: Beginnings"}, TypeChapter},
		{"webpage title", Citation{Title: "My Gardening Blog"}, TypeWebpage},
		{"nothing", Citation{Title: "Something Else Entirely"}, TypeOther},
		{"empty", Citation{}, TypeOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.c); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassifier_CustomWords(t *testing.T) {
	cl := NewClassifier(Heuristics{NewspaperWords: []string{"gazette"}})

	if got := cl.Classify(Citation{ContainerTitle: "Montreal Gazette"}); got != TypeArticleNewspaper {
		t.Errorf("Classify() = %v, want %v", got, TypeArticleNewspaper)
	}
	// Overridden list replaces the default one.
	if got := cl.Classify(Citation{ContainerTitle: "Daily Telegraph"}); got != TypeArticleJournal {
		t.Errorf("Classify() = %v, want %v", got, TypeArticleJournal)
	}
	// Lists that were not overridden keep their defaults.
	if got := cl.Classify(Citation{Title: "Master's thesis on frogs"}); got != TypeThesis {
		t.Errorf("Classify() = %v, want %v", got, TypeThesis)
	}
}

func TestClassifier_ZeroValue(t *testing.T) {
	var cl Classifier
	if got := cl.Classify(Citation{Title: "A PhD Thesis"}); got != TypeOther {
		t.Errorf("Classify() = %v, want %v", got, TypeOther)
	}
	if got := cl.Classify(Citation{Publisher: "X"}); got != TypeBook {
		t.Errorf("Classify() = %v, want %v", got, TypeBook)
	}
}

func TestCitationType_Heading(t *testing.T) {
	tests := []struct {
		t    CitationType
		want string
	}{
		{TypeBook, "Book"},
		{TypeArticleJournal, "Article Journal"},
		{TypeArticleNewspaper, "Article Newspaper"},
		{TypeOther, "Other"},
	}

	for _, tt := range tests {
		if got := tt.t.Heading(); got != tt.want {
			t.Errorf("%s.Heading() = %q, want %q", tt.t, got, tt.want)
		}
	}
}
