package document

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetectLanguage_English(t *testing.T) {
	doc := FromText("en", "The quick brown fox jumps over the lazy dog. "+
		"Readability scores estimate how easy a text is to understand for the average reader.")

	lang := DetectLanguage(doc)
	require.Equal(t, English, lang.Code)
	require.True(t, lang.IsEnglish())
}

func TestDetectLanguage_French(t *testing.T) {
	doc := FromText("fr", "Le renard brun rapide saute par-dessus le chien paresseux. "+
		"Les scores de lisibilité estiment la facilité avec laquelle un lecteur moyen comprend un texte.")

	lang := DetectLanguage(doc)
	require.Equal(t, "fr", lang.Code)
}

func TestLanguage_IsEnglish(t *testing.T) {
	require.True(t, Language{Code: "de", Reliable: false}.IsEnglish())
	require.False(t, Language{Code: "de", Reliable: true}.IsEnglish())
	require.True(t, Language{Code: "en", Reliable: true}.IsEnglish())
}
