// Package draft produces the canned self-promotion draft returned by
// POST /api/generate-draft. Content is fixed; only the preview echoes input.
package draft

import (
	"strings"

	"github.com/abhishek622/careerOS/pkg/model"
	"github.com/tidwall/gjson"
)

// PreviewLength is the number of characters of input echoed back.
const PreviewLength = 80

const markdownHeading = "# ドラフト（プレビュー）"

// Generate returns the fixed draft. The input text is intentionally unused.
func Generate(_ string) model.Draft {
	return model.Draft{
		Summary:    "SaaS CSとして解約率1.2pt改善、オンボ工数30%削減。",
		JobSummary: "指標設計とプレイブック整備が強み。B2B SaaSで100社超を担当。",
		Bullets:    []string{"解約 3.8%→2.6%（6カ月）", "オンボ 22h→15h（-30%）", "拡張 +18%（対前Q）"},
		Skills:     []string{"Salesforce", "HubSpot", "SQL(簡易)"},
	}
}

// Preview returns the first PreviewLength characters of text.
func Preview(text string) string {
	r := []rune(text)
	if len(r) <= PreviewLength {
		return text
	}
	return string(r[:PreviewLength])
}

// TextFromBody extracts the "text" field of a generate-draft body. Anything
// that is not a JSON object with a string "text" yields "".
func TextFromBody(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	t := gjson.GetBytes(body, "text")
	if t.Type != gjson.String {
		return ""
	}
	return t.Str
}

// Markdown renders d as a Markdown document.
func Markdown(d model.Draft) string {
	lines := []string{
		markdownHeading,
		"",
		"**総括**: " + d.Summary,
		"",
		"**職務サマリ**: " + d.JobSummary,
		"",
		"**実績**",
	}
	for _, b := range d.Bullets {
		lines = append(lines, "- "+b)
	}
	lines = append(lines,
		"",
		"**スキル**: "+strings.Join(d.Skills, ", "),
		"",
	)
	return strings.Join(lines, "\n")
}
