//    topicmodels
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"github.com/e-gun/topicmodels/internal/gen"
	"sort"
)

//
// STOPWORDS
//

// EnglishStops - EnglishStop minus EnglishKeep, sorted
func EnglishStops() []string {
	stops := gen.Unique(gen.SetSubtraction(EnglishStop, EnglishKeep))
	sort.Strings(stops)
	return stops
}

var (
	// English100 - the 100 most common english words
	English100 = []string{"the", "be", "to", "of", "and", "a", "in", "that", "have", "i", "it", "for", "not", "on",
		"with", "he", "as", "you", "do", "at", "this", "but", "his", "by", "from", "they", "we", "say", "her", "she",
		"or", "an", "will", "my", "one", "all", "would", "there", "their", "what", "so", "up", "out", "if", "about",
		"who", "get", "which", "go", "me", "when", "make", "can", "like", "time", "no", "just", "him", "know", "take",
		"people", "into", "year", "your", "good", "some", "could", "them", "see", "other", "than", "then", "now",
		"look", "only", "come", "its", "over", "think", "also", "back", "after", "use", "two", "how", "our", "work",
		"first", "well", "way", "even", "new", "want", "because", "any", "these", "give", "day", "most", "us"}
	EngExtra = []string{"is", "are", "was", "were", "been", "being", "am", "has", "had", "did", "does", "doing",
		"s", "t", "don", "should", "very", "too", "here", "those", "such", "own", "same", "both", "each", "few",
		"more", "further", "once", "again", "against", "between", "through", "during", "before", "above", "below",
		"down", "off", "under", "until", "while", "where", "why", "whom", "nor", "itself", "myself", "yourself",
		"himself", "herself", "ourselves", "themselves", "yours", "hers", "ours", "theirs", "ll", "re", "ve", "m"}
	EnglishStop = append(English100, EngExtra...)
	// EnglishKeep - members of EnglishStop we will not toss; they carry topical weight
	EnglishKeep = []string{"people", "time", "year", "work", "day", "good", "new"}
)
