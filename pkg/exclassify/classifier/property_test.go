package classifier

import (
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/ukaji3/exclassify-go/pkg/exclassify/models"
)

var columnNames = []string{"c1", "c2", "c3", "c4"}

func policyGen() *rapid.Generator[models.Policy] {
	return rapid.Custom(func(t *rapid.T) models.Policy {
		n := rapid.IntRange(0, 4).Draw(t, "rules")
		policy := make(models.Policy, 0, n)
		for i := 0; i < n; i++ {
			rule := models.ColumnRule{Column: rapid.SampledFrom(columnNames).Draw(t, "column")}
			k := rapid.IntRange(0, 3).Draw(t, "keywords")
			for j := 0; j < k; j++ {
				rule.Keywords = append(rule.Keywords, models.KeywordLabel{
					Keyword: rapid.StringMatching(`[ab]{1,2}`).Draw(t, "keyword"),
					Label:   rapid.SampledFrom([]string{"L1", "L2", "L3"}).Draw(t, "label"),
				})
			}
			policy = append(policy, rule)
		}
		return policy
	})
}

func rowGen() *rapid.Generator[models.Row] {
	return rapid.Custom(func(t *rapid.T) models.Row {
		cells := make(map[string]interface{})
		for _, col := range columnNames {
			if !rapid.Bool().Draw(t, "present") {
				continue
			}
			if rapid.Bool().Draw(t, "null") {
				cells[col] = nil
				continue
			}
			cells[col] = rapid.StringMatching(`[abc]{0,4}`).Draw(t, "value")
		}
		return models.Row{R: 2, C: cells}
	})
}

func TestPropertyExactlyOneLabel(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		policy := policyGen().Draw(t, "policy")
		r := rowGen().Draw(t, "row")

		label := Classify(r, policy, DefaultLabel, "")
		if label == "" {
			t.Fatalf("empty label")
		}
		found := false
		for _, l := range Labels(policy, DefaultLabel) {
			if l == label {
				found = true
			}
		}
		if !found {
			t.Fatalf("label %q not in label set", label)
		}
	})
}

func TestPropertyIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		policy := policyGen().Draw(t, "policy")
		r := rowGen().Draw(t, "row")

		first := Classify(r, policy, DefaultLabel, "")
		if again := Classify(r, policy, DefaultLabel, first); again != first {
			t.Fatalf("re-run changed %q to %q", first, again)
		}
	})
}

func TestPropertyFirstMatchWins(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		policy := policyGen().Draw(t, "policy")
		r := rowGen().Draw(t, "row")

		m := New(policy, DefaultLabel, DefaultNullText).Match(r, "")

		for _, rule := range policy {
			v, ok := r.Value(rule.Column)
			if !ok {
				continue
			}
			text := Text(v, DefaultNullText)
			for _, kw := range rule.Keywords {
				if strings.Contains(text, kw.Keyword) {
					if m.Defaulted || m.Label != kw.Label || m.Column != rule.Column || m.Keyword != kw.Keyword {
						t.Fatalf("expected first match %s/%s -> %s, got %+v", rule.Column, kw.Keyword, kw.Label, m)
					}
					return
				}
			}
		}
		if !m.Defaulted || m.Label != DefaultLabel {
			t.Fatalf("expected default label, got %+v", m)
		}
	})
}
