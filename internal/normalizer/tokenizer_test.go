package normalizer

import (
	"reflect"
	"testing"
)

func TestTokenize_FiltersAndLowercases(t *testing.T) {
	got := Tokenize("The Dalai Lama visited Dharamsala in 2019")
	want := []string{"dalai", "lama", "visited", "dharamsala"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenize_EmptyInput(t *testing.T) {
	if got := Tokenize(""); len(got) != 0 {
		t.Errorf("Tokenize(\"\") = %v, want empty", got)
	}
}

func TestTokenize_DropsShortTokens(t *testing.T) {
	got := Tokenize("go is ok but mountains remain")
	want := []string{"mountains", "remain"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenize_DropsStopwords(t *testing.T) {
	for _, token := range Tokenize("because there were articles about everything") {
		if IsStopword(token) {
			t.Errorf("Stopword %q survived tokenization", token)
		}
	}
}

func TestTokenize_DropsNonAlphabetic(t *testing.T) {
	got := Tokenize("budget grew 45.2 percent, officials said")
	want := []string{"budget", "grew", "percent", "officials", "said"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestIsStopword(t *testing.T) {
	if !IsStopword("the") || !IsStopword("because") {
		t.Error("Common stopwords not recognized")
	}

	if IsStopword("tibet") {
		t.Error("Non-stopword flagged")
	}
}
