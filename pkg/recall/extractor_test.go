package recall

import (
	"testing"
)

func TestExtractName(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		wantName string
		wantOK   bool
	}{
		{name: "simple", message: "my name is Alice", wantName: "Alice", wantOK: true},
		{name: "case insensitive anchor", message: "My Name Is Bob", wantName: "Bob", wantOK: true},
		{name: "mid sentence", message: "hello, my name is Sam", wantName: "Sam", wantOK: true},
		{name: "trailing punctuation kept", message: "my name is Alice!", wantName: "Alice!", wantOK: true},
		{name: "multi word to end of string", message: "my name is Mary Jane Watson", wantName: "Mary Jane Watson", wantOK: true},
		{name: "no match", message: "what is machine learning?", wantOK: false},
		{name: "anchor only", message: "my name is ", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractName(tt.message)
			if ok != tt.wantOK {
				t.Fatalf("ExtractName(%q) ok = %v, want %v", tt.message, ok, tt.wantOK)
			}
			if got != tt.wantName {
				t.Errorf("ExtractName(%q) = %q, want %q", tt.message, got, tt.wantName)
			}
		})
	}
}

func TestExtractLike(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		wantLike string
		wantOK   bool
	}{
		{name: "simple", message: "I love pizza", wantLike: "pizza", wantOK: true},
		{name: "lowercase anchor", message: "i love long walks", wantLike: "long walks", wantOK: true},
		{name: "capture preserves case", message: "I love Star Wars", wantLike: "Star Wars", wantOK: true},
		{name: "no match", message: "I like pizza", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractLike(tt.message)
			if ok != tt.wantOK {
				t.Fatalf("ExtractLike(%q) ok = %v, want %v", tt.message, ok, tt.wantOK)
			}
			if got != tt.wantLike {
				t.Errorf("ExtractLike(%q) = %q, want %q", tt.message, got, tt.wantLike)
			}
		})
	}
}

func TestAnswer(t *testing.T) {
	tests := []struct {
		name        string
		message     string
		displayName string
		likes       []string
		wantReply   string
		wantOK      bool
	}{
		{
			name:        "name recall",
			message:     "what is my name",
			displayName: "Sam",
			wantReply:   "Your name is Sam 😊",
			wantOK:      true,
		},
		{
			name:      "name recall without name",
			message:   "What is my name?",
			wantReply: "You haven’t told me your name yet 🙂",
			wantOK:    true,
		},
		{
			name:      "likes recall",
			message:   "what do i love",
			likes:     []string{"pizza", "Star Wars"},
			wantReply: "You love pizza, Star Wars 😊",
			wantOK:    true,
		},
		{
			name:      "likes recall empty",
			message:   "what do i love?",
			wantReply: "You haven’t told me what you love yet 🙂",
			wantOK:    true,
		},
		{
			name:    "not a recall question",
			message: "tell me a joke",
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Answer(tt.message, tt.displayName, tt.likes)
			if ok != tt.wantOK {
				t.Fatalf("Answer(%q) ok = %v, want %v", tt.message, ok, tt.wantOK)
			}
			if got != tt.wantReply {
				t.Errorf("Answer(%q) = %q, want %q", tt.message, got, tt.wantReply)
			}
		})
	}
}

func TestIsCreatorQuestion(t *testing.T) {
	tests := []struct {
		message string
		want    bool
	}{
		{message: "who created you?", want: true},
		{message: "WHO MADE YOU", want: true},
		{message: "tell me about creator", want: true},
		{message: "who is divy", want: true},
		{message: "who are you", want: false},
	}

	for _, tt := range tests {
		if got := IsCreatorQuestion(tt.message); got != tt.want {
			t.Errorf("IsCreatorQuestion(%q) = %v, want %v", tt.message, got, tt.want)
		}
	}
}
