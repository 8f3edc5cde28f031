package textutil

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"whitespace only", "  \t\n ", []string{}},
		{"lowercases", "Good GREAT gOOd", []string{"good", "great", "good"}},
		{"punctuation splits", "love,it!really", []string{"love", "it", "really"}},
		{"digits and underscore kept", "user_42 said 2nd", []string{"user_42", "said", "2nd"}},
		{"question marks dropped", "why? how?", []string{"why", "how"}},
		{"unicode letters kept", "café naïve", []string{"café", "naïve"}},
		{"emoji are boundaries", "love 😍 it", []string{"love", "it"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.in)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestWordCount(t *testing.T) {
	if got := WordCount("one two three"); got != 3 {
		t.Errorf("WordCount = %d, want 3", got)
	}
	if got := WordCount(""); got != 0 {
		t.Errorf("WordCount(empty) = %d, want 0", got)
	}
}
