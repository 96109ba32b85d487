package masking

import (
	"regexp"
)

// Rule rewrites content, hiding whatever it is responsible for.
// Implementations must return content unchanged when nothing matches.
type Rule interface {
	Apply(content string) string
}

// RuleFunc adapts an ordinary function to [Rule].
type RuleFunc func(content string) string

// Apply implements [Rule].
func (f RuleFunc) Apply(content string) string {
	return f(content)
}

type regexpRule struct {
	re          *regexp.Regexp
	replacement string
}

func (r regexpRule) Apply(content string) string {
	return r.re.ReplaceAllString(content, r.replacement)
}

var emailPattern = regexp.MustCompile(`(?i)[_a-z0-9-]+(\.[_a-z0-9-]+)*@[a-z0-9-]+(\.[a-z0-9-]+)*(\.[a-z]{2,3})`)

// EmailRule masks every email address with [EmailPlaceholder].
func EmailRule() Rule {
	return regexpRule{re: emailPattern, replacement: EmailPlaceholder}
}

// XMLElementRule masks the text of every <name>...</name> element. Tag
// matching ignores case; the replacement uses name as given.
func XMLElementRule(name string) Rule {
	quoted := regexp.QuoteMeta(name)
	return regexpRule{
		re:          regexp.MustCompile(`(?is)<` + quoted + `>.*?</` + quoted + `>`),
		replacement: "<" + name + ">" + ElementPlaceholder + "</" + name + ">",
	}
}

// JSONFieldRule masks the string value of every "name": "..." JSON member.
func JSONFieldRule(name string) Rule {
	quoted := regexp.QuoteMeta(name)
	return regexpRule{
		re:          regexp.MustCompile(`(?i)("` + quoted + `"\s*:\s*)"(?:[^"\\]|\\.)*"`),
		replacement: `${1}"` + Placeholder + `"`,
	}
}

func defaultRules() []Rule {
	return []Rule{
		XMLElementRule("restApiKey"),
		XMLElementRule("password"),
		JSONFieldRule("restApiKey"),
		JSONFieldRule("password"),
		EmailRule(),
	}
}
