// Package lexicon holds the surface-form vocabulary the generator draws on
// when rendering sampled actions and objects as natural language: an
// object-name synonym file and the canonical verb synonym table.
package lexicon

import (
	"bufio"
	"os"
	"strings"

	"github.com/nl2tl/scenario-registry/pkg/domain"
	apperrors "github.com/nl2tl/scenario-registry/pkg/errors"
)

// ObjectLexicon maps canonical object names to their natural-language
// synonyms. Canonical names use underscores ("fire_extinguisher"); surface
// forms use spaces.
type ObjectLexicon map[string][]string

// Synonyms returns the surface forms registered for a canonical name.
// Returns nil for unknown names.
func (l ObjectLexicon) Synonyms(canonical string) []string {
	return l[canonical]
}

// Canonical converts a surface form to canonical token shape.
func Canonical(surface string) string {
	return strings.ReplaceAll(strings.TrimSpace(surface), " ", "_")
}

// ParseObjectNames reads an object-name synonym file and returns the
// object lexicon.
//
// Expected line format: "canonical: alt1, alt2, ...". Blank lines, comment
// lines starting with '#', and lines without a colon are skipped. A line
// with an empty canonical name is malformed and aborts the parse.
func ParseObjectNames(path string) (ObjectLexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewScenarioError(apperrors.ErrCodeLexiconInvalid, "cannot read object names file", err)
	}
	defer f.Close()

	lex := make(ObjectLexicon)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || !strings.Contains(line, ":") {
			continue
		}

		canonical, rest, _ := strings.Cut(line, ":")
		canonical = strings.TrimSpace(canonical)
		if canonical == "" {
			return nil, apperrors.ErrLexiconInvalid(path, "line with empty canonical name")
		}

		var synonyms []string
		for _, alt := range strings.Split(rest, ",") {
			if alt = strings.TrimSpace(alt); alt != "" {
				synonyms = append(synonyms, alt)
			}
		}
		lex[canonical] = synonyms
	}
	if err := scanner.Err(); err != nil {
		return nil, apperrors.NewScenarioError(apperrors.ErrCodeLexiconInvalid, "cannot read object names file", err)
	}

	return lex, nil
}

// ActionSynonyms returns the canonical verb -> surface-form table covering
// every action the sample scenarios declare. The map is freshly allocated on
// each call so callers may trim it.
func ActionSynonyms() map[string][]string {
	return map[string][]string{
		// warehouse verbs
		"search":  {"locate", "find", "look for", "search for"},
		"pickup":  {"pick up", "grab", "retrieve", "collect"},
		"deliver": {"deliver", "drop off", "hand over", "transport"},
		"idle":    {"idle", "wait", "remain still", "stand by"},

		// search_and_rescue verbs
		"go_home":     {"return to base", "go home", "return home", "go back to base"},
		"communicate": {"talk to", "communicate with", "establish communication with"},
		"deliver_aid": {"give aid to", "deliver aid to", "provide assistance to"},
		"avoid":       {"avoid", "stay away from", "do not go near"},

		// traffic_light verbs (record and photo are shared with
		// search_and_rescue)
		"get_help": {"call for help", "request assistance", "get help"},
		"change":   {"change", "switch", "set", "update"},
		"record":   {"record", "begin recording", "take a video of"},
		"photo":    {"photograph", "take a picture of", "take a photo of"},
	}
}

// ForScenario filters the verb synonym table down to the actions a scenario
// declares, in declaration order. Declared actions with no synonym entry
// fall back to their own name as the only surface form.
func ForScenario(s *domain.Scenario) map[string][]string {
	all := ActionSynonyms()
	out := make(map[string][]string, len(s.Actions))
	for _, a := range s.Actions {
		if syns, ok := all[a.Name]; ok {
			out[a.Name] = syns
		} else {
			out[a.Name] = []string{strings.ReplaceAll(a.Name, "_", " ")}
		}
	}
	return out
}
