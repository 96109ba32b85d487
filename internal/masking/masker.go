package masking

import "fmt"

// WithheldContent stands in for a body that could not be masked.
const WithheldContent = "[content withheld: masking failed]"

// Status describes the outcome of masking a body.
type Status int

const (
	StatusUnchanged Status = iota
	StatusMasked
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusUnchanged:
		return "unchanged"
	case StatusMasked:
		return "masked"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result is the outcome of [Masker.Body].
//
// Content is always safe to log: on StatusFailed it holds [WithheldContent]
// and Err describes the failure.
type Result struct {
	Status  Status
	Content string
	Err     error
}

// Masker applies an ordered list of rules to reply bodies.
type Masker struct {
	rules []Rule
}

// NewMasker returns a Masker with the built-in rules followed by extra.
func NewMasker(extra ...Rule) *Masker {
	rules := defaultRules()
	rules = append(rules, extra...)
	return &Masker{rules: rules}
}

var defaultMasker = NewMasker()

// Body masks content with the built-in rules.
func Body(content string) Result {
	return defaultMasker.Body(content)
}

// Body applies every rule to content in order.
func (m *Masker) Body(content string) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Result{
				Status:  StatusFailed,
				Content: WithheldContent,
				Err:     fmt.Errorf("%w: %v", ErrMaskingFailed, r),
			}
		}
	}()

	masked := content
	for _, rule := range m.rules {
		masked = rule.Apply(masked)
	}

	if masked == content {
		return Result{Status: StatusUnchanged, Content: content}
	}
	return Result{Status: StatusMasked, Content: masked}
}
