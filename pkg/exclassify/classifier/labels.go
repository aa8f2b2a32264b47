package classifier

import (
	"strings"

	"github.com/ukaji3/exclassify-go/pkg/exclassify/models"
)

// Labels returns every distinct label the policy can produce, in first
// appearance order, followed by defaultLabel unless the policy already has it.
func Labels(policy models.Policy, defaultLabel string) []string {
	seen := make(map[string]bool)
	var labels []string
	for _, rule := range policy {
		for _, kw := range rule.Keywords {
			if !seen[kw.Label] {
				seen[kw.Label] = true
				labels = append(labels, kw.Label)
			}
		}
	}
	if !seen[defaultLabel] {
		labels = append(labels, defaultLabel)
	}
	return labels
}

// NullKeywords returns keywords that are substrings of nullText. Such
// keywords match every empty cell in their column.
func NullKeywords(policy models.Policy, nullText string) []models.KeywordLabel {
	var hits []models.KeywordLabel
	for _, rule := range policy {
		for _, kw := range rule.Keywords {
			if strings.Contains(nullText, kw.Keyword) {
				hits = append(hits, kw)
			}
		}
	}
	return hits
}
