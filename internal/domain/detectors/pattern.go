package detectors

import "regexp"

// Match is a single pattern hit inside a line.
type Match struct {
	Text   string
	Groups []string
	Column int
}

// Pattern finds offending tokens in one line of code.
type Pattern interface {
	FindAll(line string) []Match
}

type regexPattern struct {
	re *regexp.Regexp
}

// NewRegexPattern compiles expr into a Pattern. It panics on a bad
// expression, so it is meant for package-level rule tables.
func NewRegexPattern(expr string) Pattern {
	return &regexPattern{re: regexp.MustCompile(expr)}
}

func (p *regexPattern) FindAll(line string) []Match {
	indexes := p.re.FindAllStringSubmatchIndex(line, -1)
	if len(indexes) == 0 {
		return nil
	}

	matches := make([]Match, 0, len(indexes))

	for _, loc := range indexes {
		match := Match{Text: line[loc[0]:loc[1]], Column: loc[0] + 1}

		for g := 2; g+1 < len(loc); g += 2 {
			if loc[g] < 0 {
				match.Groups = append(match.Groups, "")
				continue
			}

			match.Groups = append(match.Groups, line[loc[g]:loc[g+1]])
		}

		matches = append(matches, match)
	}

	return matches
}
