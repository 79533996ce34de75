package exercises

import "strings"

// Sentence is an immutable sequence of words, built fluently:
//
//     Say("hello").And("my").And("friends").Phrase()   // "hello my friends"
//
type Sentence struct {
	words []string
}

// Say starts a sentence with the given words, if any.
func Say(words ...string) Sentence {
	return Sentence{words: append([]string(nil), words...)}
}

// And returns a new sentence with word appended. s is left unchanged and
// does not share storage with the result.
func (s Sentence) And(word string) Sentence {
	words := make([]string, len(s.words), len(s.words)+1)
	copy(words, s.words)
	return Sentence{words: append(words, word)}
}

// Phrase joins the words of s, separated by single spaces.
func (s Sentence) Phrase() string {
	return strings.Join(s.words, " ")
}

func (s Sentence) String() string {
	return s.Phrase()
}
