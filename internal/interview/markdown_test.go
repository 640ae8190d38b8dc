package interview

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var h2 = regexp.MustCompile(`(?m)^## Q(\d+)\. (.+)$`)

func TestToMarkdown_AllEmpty(t *testing.T) {
	md := ToMarkdown(Answers{})

	assert.True(t, strings.HasPrefix(md, "# "+DefaultTitle+"\n"))
	matches := h2.FindAllStringSubmatch(md, -1)
	require.Len(t, matches, 12)
	for i, m := range matches {
		assert.Equal(t, fmt.Sprint(i+1), m[1])
		assert.Equal(t, labels[i], m[2])
	}
	assert.Equal(t, 12, strings.Count(md, Placeholder))
}

func TestToMarkdown_TrimsAnswersAndTitle(t *testing.T) {
	a := Answers{Title: "  山田さん  "}
	a.Answers[0] = "  エンジニア \n"
	a.Answers[11] = "ありがとう"
	a.Answers[5] = "   "

	md := ToMarkdown(a)

	assert.True(t, strings.HasPrefix(md, "# 山田さん\n\n## Q1. "+labels[0]+"\n\nエンジニア\n\n"))
	assert.Contains(t, md, "## Q6. "+labels[5]+"\n\n"+Placeholder+"\n")
	assert.True(t, strings.HasSuffix(md, "## Q12. "+labels[11]+"\n\nありがとう\n"))
	assert.Equal(t, 10, strings.Count(md, Placeholder))
}

func TestToMarkdown_Deterministic(t *testing.T) {
	a := Answers{Title: "t"}
	for i := range a.Answers {
		a.Answers[i] = fmt.Sprintf("answer %d", i)
	}
	assert.Equal(t, ToMarkdown(a), ToMarkdown(a))
}

func TestResolvedTitle(t *testing.T) {
	assert.Equal(t, DefaultTitle, Answers{}.ResolvedTitle())
	assert.Equal(t, DefaultTitle, Answers{Title: " \t"}.ResolvedTitle())
	assert.Equal(t, "x", Answers{Title: " x "}.ResolvedTitle())
}

func TestQuestions(t *testing.T) {
	qs := Questions()
	require.Len(t, qs, 12)
	assert.Equal(t, 1, qs[0].No)
	assert.Equal(t, labels[11], qs[11].Label)
}

func TestDecodeAnswers(t *testing.T) {
	a := DecodeAnswers([]byte(`{"title":"T","q1":"one","q2":5,"q12":"twelve","q13":"ignored"}`))
	assert.Equal(t, "T", a.Title)
	assert.Equal(t, "one", a.Answers[0])
	assert.Equal(t, "", a.Answers[1])
	assert.Equal(t, "twelve", a.Answers[11])

	assert.Equal(t, Answers{}, DecodeAnswers([]byte(`{oops`)))
	assert.Equal(t, Answers{}, DecodeAnswers(nil))
}
