package ts

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Issue is a single finding of Validate.
type Issue struct {
	Severity Severity
	Context  string
	Source   string
	Message  string
}

func (i Issue) String() string {
	if i.Source == "" {
		return fmt.Sprintf("%s: [%s] %s", i.Severity, i.Context, i.Message)
	}
	return fmt.Sprintf("%s: [%s] %q: %s", i.Severity, i.Context, i.Source, i.Message)
}

type Issues []Issue

func (issues Issues) HasErrors() bool {
	return lo.ContainsBy(issues, func(issue Issue) bool {
		return issue.Severity == SeverityError
	})
}

// Filter returns the issues of the given severity.
func (issues Issues) Filter(severity Severity) Issues {
	return lo.Filter(issues, func(issue Issue, _ int) bool {
		return issue.Severity == severity
	})
}

// Validate checks the catalog for problems that would show up at runtime.
// Parse accepts all of these, so a catalog can always be loaded and fixed.
func (c *Catalog) Validate() Issues {
	issues := Issues{}
	seen := map[string]bool{}

	for _, ctx := range c.Contexts {
		if strings.TrimSpace(ctx.Name) == "" {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Message:  "context has no name",
			})
		}

		for _, msg := range ctx.Messages {
			k := key(ctx.Name, msg.Source)
			if seen[k] {
				issues = append(issues, Issue{
					Severity: SeverityWarning,
					Context:  ctx.Name,
					Source:   msg.Source,
					Message:  "duplicate message, only the first translation is used",
				})
			}
			seen[k] = true

			issues = append(issues, validateMessage(ctx.Name, msg)...)
		}
	}

	return issues
}

func validateMessage(context string, msg *Message) Issues {
	issues := Issues{}

	if msg.Translation.Type == TypeObsolete || msg.Translation.Type == TypeVanished {
		return issues
	}

	if !msg.Translation.Usable() {
		issues = append(issues, Issue{
			Severity: SeverityInfo,
			Context:  context,
			Source:   msg.Source,
			Message:  "translation missing or unfinished",
		})
	}

	sourcePlaceholders := Placeholders(msg.Source)
	texts := msg.Translation.NumerusForms
	if len(texts) == 0 {
		texts = []string{msg.Translation.Text}
	}

	for _, text := range texts {
		extra, _ := lo.Difference(Placeholders(text), sourcePlaceholders)
		for _, n := range extra {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Context:  context,
				Source:   msg.Source,
				Message:  fmt.Sprintf("translation uses %%%d which the source does not have", n),
			})
		}
	}

	return issues
}
