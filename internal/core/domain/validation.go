package domain

// RuleViolation is the tagged failure returned by a rule. Err is one of the
// apperrors sentinels so callers can classify it with errors.Is, while Message
// carries the user facing text.
type RuleViolation struct {
	Err     error
	Message string
}

func (v *RuleViolation) Error() string {
	return v.Message
}

func (v *RuleViolation) Unwrap() error {
	return v.Err
}

// Rule is a pure predicate over a check value. It returns nil when the check passes.
type Rule[T any] func(T) *RuleViolation

// Evaluate runs rules in order and returns the first violation.
func Evaluate[T any](subject T, rules []Rule[T]) error {
	for _, rule := range rules {
		if v := rule(subject); v != nil {
			return v
		}
	}
	return nil
}

func violation(err error, message string) *RuleViolation {
	return &RuleViolation{Err: err, Message: message}
}
