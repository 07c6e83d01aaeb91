package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/arhamsancheti/Real-Time-News-Summarizer/internal/models"
	"github.com/arhamsancheti/Real-Time-News-Summarizer/pkg/categorize"
)

const divider = "============================================================"
const subDivider = "------------------------------------------------------------"

// Generate renders a plain-text digest of processed articles, grouped by
// category in taxonomy order. Within a group the fetch order is kept.
func Generate(articles []models.ProcessedArticle) string {
	if len(articles) == 0 {
		return "No articles to summarize."
	}

	grouped := make(map[string][]models.ProcessedArticle)
	for _, a := range articles {
		grouped[a.Category] = append(grouped[a.Category], a)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "NEWS SUMMARY - %s\n", time.Now().Format("January 02, 2006 15:04"))
	b.WriteString(divider + "\n")

	for _, category := range categorize.Categories() {
		group := grouped[category]
		if len(group) == 0 {
			continue
		}

		fmt.Fprintf(&b, "\n%s (%d articles)\n", strings.ToUpper(category), len(group))
		b.WriteString(subDivider + "\n")

		for i, a := range group {
			fmt.Fprintf(&b, "\n%d. %s\n", i+1, a.Title)
			fmt.Fprintf(&b, "   Source: %s | Sentiment: %s (%.2f) | %s\n",
				a.Source, a.Sentiment, a.SentimentScore, a.PublishedAt)
			fmt.Fprintf(&b, "   Summary: %s\n", a.Summary)
			if a.URL != "" {
				fmt.Fprintf(&b, "   Link: %s\n", a.URL)
			}
		}
	}

	return b.String()
}
