package document

import (
	"strings"

	"github.com/abadojack/whatlanggo"
	"github.com/nvandessel/readscore/internal/models"
)

// English is the ISO 639-1 code the syllable heuristic is built for.
const English = "en"

// Language is the result of language detection on a document.
type Language struct {
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
	Reliable   bool    `json:"reliable"`
}

// IsEnglish reports whether the detection is unreliable or English.
// Only a reliable non-English result is worth a warning.
func (l Language) IsEnglish() bool {
	return !l.Reliable || l.Code == English
}

// DetectLanguage guesses the language of doc. It never affects counting.
func DetectLanguage(doc models.Document) Language {
	info := whatlanggo.Detect(strings.Join(doc.Lines, "\n"))
	return Language{
		Code:       info.Lang.Iso6391(),
		Name:       info.Lang.String(),
		Confidence: info.Confidence,
		Reliable:   info.IsReliable(),
	}
}
