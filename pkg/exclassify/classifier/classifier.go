// Package classifier assigns a label to each row by keyword matching.
package classifier

import (
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/exclassify-go/pkg/exclassify/models"
)

// DefaultLabel is assigned to rows that match no keyword.
const DefaultLabel = "other"

// DefaultNullText is the text an empty cell is matched as.
const DefaultNullText = "nan"

// Match describes how a row's label was decided.
type Match struct {
	// Label is the label the row ends up with.
	Label string
	// Column and Keyword identify the winning rule; empty unless a keyword matched.
	Column  string
	Keyword string
	// Kept is true when the row already carried a label.
	Kept bool
	// Defaulted is true when no keyword matched.
	Defaulted bool
}

// Classifier applies a policy to rows.
type Classifier struct {
	Policy       models.Policy
	DefaultLabel string
	// NullText is what an empty cell reads as during matching.
	NullText string
}

// New returns a Classifier using the package defaults for empty settings.
func New(policy models.Policy, defaultLabel, nullText string) *Classifier {
	if defaultLabel == "" {
		defaultLabel = DefaultLabel
	}
	if nullText == "" {
		nullText = DefaultNullText
	}
	return &Classifier{
		Policy:       policy,
		DefaultLabel: defaultLabel,
		NullText:     nullText,
	}
}

// Match classifies row. A non-empty existing label is returned unchanged.
// Otherwise rules are tried in policy order and keywords in rule order;
// the first keyword found as a substring of its column's text wins.
// Columns missing from the row are skipped.
func (c *Classifier) Match(row models.Row, existing string) Match {
	if existing != "" {
		return Match{Label: existing, Kept: true}
	}

	for _, rule := range c.Policy {
		value, ok := row.Value(rule.Column)
		if !ok {
			continue
		}
		text := Text(value, c.NullText)
		for _, kw := range rule.Keywords {
			if strings.Contains(text, kw.Keyword) {
				return Match{Label: kw.Label, Column: rule.Column, Keyword: kw.Keyword}
			}
		}
	}

	return Match{Label: c.DefaultLabel, Defaulted: true}
}

// Classify returns the label for row.
func (c *Classifier) Classify(row models.Row, existing string) string {
	return c.Match(row, existing).Label
}

// Classify labels row under policy, treating empty cells as DefaultNullText.
func Classify(row models.Row, policy models.Policy, defaultLabel, existing string) string {
	return New(policy, defaultLabel, "").Classify(row, existing)
}

// Text converts a cell value to the text keywords are matched against,
// rendered the way the earlier script printed cell values.
func Text(v interface{}, nullText string) string {
	switch val := v.(type) {
	case nil:
		return nullText
	case string:
		return val
	case int64:
		return strconv.FormatInt(val, 10)
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		if val {
			return "True"
		}
		return "False"
	case time.Time:
		return val.Format("2006-01-02 15:04:05")
	default:
		return ""
	}
}
