package repos

// DefaultLanguageColor is used for languages without an entry.
const DefaultLanguageColor = "#00d4ff"

var languageColors = map[string]string{
	"JavaScript": "#f7df1e",
	"TypeScript": "#3178c6",
	"Python":     "#3776ab",
	"Java":       "#b07219",
	"C++":        "#f34b7d",
	"C":          "#555555",
	"Go":         "#00ADD8",
	"Rust":       "#dea584",
	"Ruby":       "#701516",
	"PHP":        "#4F5D95",
	"HTML":       "#e34c26",
	"CSS":        "#1572B6",
	"Vue":        "#42b883",
	"Svelte":     "#ff3e00",
	"Dart":       "#0175C2",
	"Kotlin":     "#A97BFF",
	"Swift":      "#FA7343",
	"Jupyter":    "#F37626",
}

// LanguageColor returns the accent colour for a language chip.
func LanguageColor(language string) string {
	if c, ok := languageColors[language]; ok {
		return c
	}
	return DefaultLanguageColor
}
