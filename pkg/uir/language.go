package uir

import "strings"

// Language identifies a source or target language. The set is closed; use
// ParseLanguage to map user input and detector output onto it.
type Language string

// Supported languages. Having a constant here does not imply a front end
// exists for it; frontend.New reports what is actually parseable.
const (
	LangJavaScript Language = "javascript"
	LangTypeScript Language = "typescript"
	LangPython     Language = "python"
	LangRust       Language = "rust"
	LangGo         Language = "go"
	LangJava       Language = "java"
	LangCSharp     Language = "csharp"
	LangFSharp     Language = "fsharp"
	LangVB         Language = "vb"
	LangCobol      Language = "cobol"
	LangFortran    Language = "fortran"
	LangC          Language = "c"
	LangCPP        Language = "cpp"
)

// languageAliases maps normalized spellings onto canonical constants.
var languageAliases = map[string]Language{
	"javascript":        LangJavaScript,
	"js":                LangJavaScript,
	"jsx":               LangJavaScript,
	"typescript":        LangTypeScript,
	"ts":                LangTypeScript,
	"python":            LangPython,
	"py":                LangPython,
	"rust":              LangRust,
	"rs":                LangRust,
	"go":                LangGo,
	"golang":            LangGo,
	"java":              LangJava,
	"csharp":            LangCSharp,
	"c#":                LangCSharp,
	"cs":                LangCSharp,
	"fsharp":            LangFSharp,
	"f#":                LangFSharp,
	"fs":                LangFSharp,
	"vb":                LangVB,
	"visualbasic":       LangVB,
	"visual basic":      LangVB,
	"visual basic .net": LangVB,
	"vb.net":            LangVB,
	"cobol":             LangCobol,
	"fortran":           LangFortran,
	"c":                 LangC,
	"cpp":               LangCPP,
	"c++":               LangCPP,
	"cxx":               LangCPP,
}

// ParseLanguage maps a user-supplied or detector-supplied name onto a
// Language constant, accepting common aliases case-insensitively.
func ParseLanguage(name string) (Language, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))

	if lang, ok := languageAliases[normalized]; ok {
		return lang, nil
	}

	return "", &UnsupportedLanguageError{Language: Language(normalized)}
}

// Languages returns the closed language set in declaration order.
func Languages() []Language {
	return []Language{
		LangJavaScript, LangTypeScript, LangPython, LangRust, LangGo,
		LangJava, LangCSharp, LangFSharp, LangVB, LangCobol, LangFortran,
		LangC, LangCPP,
	}
}
