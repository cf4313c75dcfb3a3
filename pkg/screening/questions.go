package screening

import (
	"github.com/sw33tLie/vitalis/pkg/fast"
	"github.com/sw33tLie/vitalis/pkg/i18n"
)

// Question is one step of the FAST flow.
type Question struct {
	Key   fast.Key
	Badge string
}

// Text returns the localized question.
func (q Question) Text(lang i18n.Language) string {
	return i18n.T(lang, "q."+string(q.Key))
}

// Label returns the short localized label used on results and reports.
func (q Question) Label(lang i18n.Language) string {
	return i18n.T(lang, "label."+string(q.Key))
}

// Questions are asked in this fixed order.
var Questions = []Question{
	{Key: fast.Face, Badge: "F - Face"},
	{Key: fast.Arm, Badge: "A - Arms"},
	{Key: fast.Speech, Badge: "S - Speech"},
	{Key: fast.Time, Badge: "T - Time"},
}
