package lal

import (
	"regexp"

	"github.com/Sumatoshi-tech/coalesce/pkg/uir"
)

// usagePattern matches one way a library is used. Captures lists the named
// groups to lift into usage parameters; groups missing from a match are
// simply absent from the parameter map.
type usagePattern struct {
	name     string
	re       *regexp.Regexp
	intent   string
	captures []string
}

// detectionPattern ties a library's import signature to its usage
// patterns. The import regex gates the usage scan: no import, no usages,
// which keeps coincidental name collisions out of the report.
type detectionPattern struct {
	library   string
	ecosystem string
	importRE  *regexp.Regexp
	usages    []usagePattern
}

func (p *detectionPattern) scan(code []byte) []LibraryUsage {
	if !p.importRE.Match(code) {
		return nil
	}

	var usages []LibraryUsage

	for _, usage := range p.usages {
		for _, match := range usage.re.FindAllSubmatchIndex(code, -1) {
			parameters := make(map[string]string, len(usage.captures))

			for _, capture := range usage.captures {
				group := usage.re.SubexpIndex(capture)
				if group < 0 || match[2*group] < 0 {
					continue
				}

				parameters[capture] = string(code[match[2*group]:match[2*group+1]])
			}

			usages = append(usages, LibraryUsage{
				PatternName:    usage.name,
				MethodName:     string(code[match[0]:match[1]]),
				Parameters:     parameters,
				SemanticIntent: usage.intent,
				Span:           Span{Start: uint(match[0]), End: uint(match[1])},
			})
		}
	}

	return usages
}

// Detector scans raw source for known library usage before parsing, so the
// pipeline knows which nodes carry ecosystem semantics. Detection is
// regex-based on the original text: imports and call shapes survive
// verbatim there, while the normalized tree has already erased them.
type Detector struct {
	patterns map[uir.Language][]detectionPattern
}

func NewDetector() *Detector {
	return &Detector{patterns: defaultDetectionPatterns()}
}

// Detect reports every known library used by code, one dependency per
// library with all usages merged. Languages without detection patterns are
// an error rather than an empty report, so callers can tell "no support"
// from "nothing found".
func (d *Detector) Detect(code []byte, language uir.Language) ([]LibraryDependency, error) {
	patterns, ok := d.patterns[language]
	if !ok {
		return nil, &uir.UnsupportedLanguageError{Language: language}
	}

	var deps []LibraryDependency

	index := make(map[string]int, len(patterns))

	for i := range patterns {
		pattern := &patterns[i]

		usages := pattern.scan(code)
		if len(usages) == 0 {
			continue
		}

		if at, seen := index[pattern.library]; seen {
			deps[at].Usages = append(deps[at].Usages, usages...)

			continue
		}

		index[pattern.library] = len(deps)
		deps = append(deps, LibraryDependency{
			Name:      pattern.library,
			Ecosystem: pattern.ecosystem,
			Usages:    usages,
		})
	}

	return deps, nil
}

// Languages lists the languages the detector has patterns for.
func (d *Detector) Languages() []uir.Language {
	langs := make([]uir.Language, 0, len(d.patterns))
	for lang := range d.patterns {
		langs = append(langs, lang)
	}

	return langs
}

func defaultDetectionPatterns() map[uir.Language][]detectionPattern {
	return map[uir.Language][]detectionPattern{
		uir.LangJavaScript: {
			{
				library:   "react",
				ecosystem: "javascript",
				importRE:  regexp.MustCompile(`import.*\{[^}]*useState[^}]*\}.*from.*['"]react['"]`),
				usages: []usagePattern{{
					name:     "useState",
					re:       regexp.MustCompile(`const\s*\[\s*(?P<state>\w+)\s*,\s*(?P<setter>\w+)\s*\]\s*=\s*useState\s*\(\s*(?P<initial>[^)]*)\s*\)`),
					intent:   "reactive_state_management",
					captures: []string{"state", "setter", "initial"},
				}},
			},
			{
				library:   "react",
				ecosystem: "javascript",
				importRE:  regexp.MustCompile(`import.*\{[^}]*useEffect[^}]*\}.*from.*['"]react['"]`),
				usages: []usagePattern{{
					name:     "useEffect",
					re:       regexp.MustCompile(`useEffect\s*\(\s*(?P<callback>[^,]+)\s*,\s*(?P<deps>\[[^\]]*\])\s*\)`),
					intent:   "side_effect_lifecycle",
					captures: []string{"callback", "deps"},
				}},
			},
		},
		uir.LangPython: {
			{
				library:   "django",
				ecosystem: "python",
				importRE:  regexp.MustCompile(`from\s+django\.db\s+import\s+models`),
				usages: []usagePattern{
					{
						name:     "Model",
						re:       regexp.MustCompile(`class\s+(?P<name>\w+)\s*\(\s*models\.Model\s*\)`),
						intent:   "orm_model",
						captures: []string{"name"},
					},
					{
						name:     "CharField",
						re:       regexp.MustCompile(`(?P<field>\w+)\s*=\s*models\.CharField\s*\(\s*max_length\s*=\s*(?P<length>\d+)`),
						intent:   "text_field",
						captures: []string{"field", "length"},
					},
				},
			},
		},
		uir.LangC: {
			{
				library:   "socket",
				ecosystem: "c",
				importRE:  regexp.MustCompile(`#include\s+<sys/socket\.h>`),
				usages: []usagePattern{{
					name:     "socket",
					re:       regexp.MustCompile(`(?P<var>\w+)\s*=\s*socket\s*\(\s*(?P<family>AF_\w+)\s*,\s*(?P<type>SOCK_\w+)\s*,\s*(?P<protocol>\d+)\s*\)`),
					intent:   "tcp_socket_creation",
					captures: []string{"var", "family", "type"},
				}},
			},
		},
	}
}
