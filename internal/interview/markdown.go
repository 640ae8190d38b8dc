// Package interview turns the fixed 12-question interview into Markdown.
package interview

import (
	"fmt"
	"strings"

	"github.com/abhishek622/careerOS/pkg/model"
	"github.com/tidwall/gjson"
)

const (
	DefaultTitle = "12問インタビュー 下書き"
	Placeholder  = "_（未入力）_"
)

var labels = [12]string{
	"今の肩書き（ひとことで）",
	"最近の挑戦",
	"得意なこと",
	"苦手なこと",
	"いま大事にしている価値観",
	"転機だと感じた出来事",
	"その時にした選択",
	"そこで得た学び",
	"今の仕事で一番効いた経験",
	"周囲にどう見られたい？",
	"次の一歩",
	"読んだ人へのひとこと",
}

// Answers holds one free-text answer per question; Answers[0] is Q1.
type Answers struct {
	Title   string
	Answers [12]string
}

func Questions() []model.InterviewQuestion {
	out := make([]model.InterviewQuestion, len(labels))
	for i, l := range labels {
		out[i] = model.InterviewQuestion{No: i + 1, Label: l}
	}
	return out
}

// ResolvedTitle is the trimmed title, or DefaultTitle when blank.
func (a Answers) ResolvedTitle() string {
	if t := strings.TrimSpace(a.Title); t != "" {
		return t
	}
	return DefaultTitle
}

func ToMarkdown(a Answers) string {
	lines := []string{"# " + a.ResolvedTitle(), ""}
	for i, label := range labels {
		v := strings.TrimSpace(a.Answers[i])
		if v == "" {
			v = Placeholder
		}
		lines = append(lines, fmt.Sprintf("## Q%d. %s", i+1, label), "", v, "")
	}
	return strings.Join(lines, "\n")
}

// DecodeAnswers reads {"title": ..., "q1": ..., "q12": ...}. Missing,
// non-string or unparsable values are treated as empty.
func DecodeAnswers(body []byte) Answers {
	var a Answers
	if !gjson.ValidBytes(body) {
		return a
	}
	doc := gjson.ParseBytes(body)
	if t := doc.Get("title"); t.Type == gjson.String {
		a.Title = t.Str
	}
	for i := range a.Answers {
		if v := doc.Get(fmt.Sprintf("q%d", i+1)); v.Type == gjson.String {
			a.Answers[i] = v.Str
		}
	}
	return a
}
