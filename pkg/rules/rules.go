package rules

import (
	"path/filepath"

	"github.com/arthur-debert/tsscaffold/pkg/logging"
	"github.com/arthur-debert/tsscaffold/pkg/types"
	"github.com/rs/zerolog"
)

// NoRule is reported as the rule name when no template matched
const NoRule = "(none)"

// Rule is a single (predicate, content) pair
type Rule struct {
	Name    string
	Kind    types.RuleKind
	Content string
	match   func(filename string) bool
}

// Matches reports whether the rule applies to filename
func (r Rule) Matches(filename string) bool {
	return r.match(filename)
}

// Resolver maps filenames to template content
type Resolver struct {
	rules  []Rule
	logger zerolog.Logger
}

// NewResolver builds a resolver from blueprint template rules. Rules are
// expected to have been validated, so glob patterns are well formed.
func NewResolver(templates []types.TemplateRule) *Resolver {
	var exact, globs []Rule
	for _, t := range templates {
		rule := Rule{Name: t.Match, Kind: t.Kind, Content: t.Content}
		switch t.Kind {
		case types.RuleGlob:
			rule.match = globMatcher(t.Match)
			globs = append(globs, rule)
		default:
			rule.match = exactMatcher(t.Match)
			exact = append(exact, rule)
		}
	}

	return &Resolver{
		rules:  append(exact, globs...),
		logger: logging.GetLogger("rules.resolver"),
	}
}

// Rules returns the rules in evaluation order
func (r *Resolver) Rules() []Rule {
	out := make([]Rule, len(r.rules))
	copy(out, r.rules)
	return out
}

// Match returns the first rule matching the base name of filename
func (r *Resolver) Match(filename string) (Rule, bool) {
	name := filepath.Base(filename)
	for _, rule := range r.rules {
		if rule.match(name) {
			return rule, true
		}
	}
	return Rule{}, false
}

// Resolve returns the content for filename and the name of the rule that
// supplied it. Every filename resolves; unmatched names get "".
func (r *Resolver) Resolve(filename string) (content string, rule string) {
	matched, ok := r.Match(filename)
	if !ok {
		r.logger.Trace().Str("file", filename).Msg("No template rule matched")
		return "", NoRule
	}
	r.logger.Trace().
		Str("file", filename).
		Str("rule", matched.Name).
		Msg("Template rule matched")
	return matched.Content, matched.Name
}

func exactMatcher(want string) func(string) bool {
	return func(name string) bool {
		return name == want
	}
}

func globMatcher(pattern string) func(string) bool {
	return func(name string) bool {
		matched, _ := filepath.Match(pattern, name)
		return matched
	}
}
