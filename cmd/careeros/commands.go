package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/abhishek622/careerOS/internal/draft"
	"github.com/abhishek622/careerOS/internal/interview"
	"github.com/abhishek622/careerOS/pkg/model"
)

func (a *cli) draft(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("draft", flag.ContinueOnError)
	save := fs.Bool("save", false, "keep the draft in local history")
	out := fs.String("out", "", "write the draft as Markdown to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	text := strings.Join(fs.Args(), " ")
	if strings.TrimSpace(text) == "" {
		return errors.New("draft: text is required")
	}

	res, err := a.api.GenerateDraft(ctx, text)
	if err != nil {
		return fmt.Errorf("generate draft: %w", err)
	}
	a.printDraft(res.Draft)

	if *out != "" {
		if err := os.WriteFile(*out, []byte(draft.Markdown(res.Draft)), 0o644); err != nil {
			return fmt.Errorf("write markdown: %w", err)
		}
		fmt.Fprintf(a.stdout, "wrote %s\n", *out)
	}
	if *save {
		item, err := a.history.Save(ctx, text, res.Draft)
		if err != nil {
			return fmt.Errorf("save draft: %w", err)
		}
		fmt.Fprintf(a.stdout, "saved %s\n", item.ID)
	}
	return nil
}

func (a *cli) historyCmd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}

	switch args[0] {
	case "list":
		items := a.history.Load(ctx)
		if len(items) == 0 {
			fmt.Fprintln(a.stdout, "no saved drafts")
			return nil
		}
		for _, it := range items {
			fmt.Fprintf(a.stdout, "%s  %s  %s\n", it.ID, it.CreatedAt.Local().Format(time.DateTime), draft.Preview(oneLine(it.Text)))
		}
		return nil
	case "show":
		if len(args) < 2 {
			return errors.New("usage: history show <id>")
		}
		it, ok := a.history.Get(ctx, args[1])
		if !ok {
			return fmt.Errorf("no saved draft %s", args[1])
		}
		fmt.Fprintf(a.stdout, "%s\n\n", it.Text)
		a.printDraft(it.Draft)
		return nil
	case "delete":
		if len(args) < 2 {
			return errors.New("usage: history delete <id>")
		}
		return a.history.Delete(ctx, args[1])
	default:
		return fmt.Errorf("unknown history command %q", args[0])
	}
}

func (a *cli) entries(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}

	switch args[0] {
	case "list":
		items, err := a.api.ListEntries(ctx)
		if err != nil {
			return fmt.Errorf("list entries: %w", err)
		}
		for _, e := range items {
			fmt.Fprintf(a.stdout, "%d  %s  %s\n", e.ID, e.CreatedAt.Local().Format(time.DateTime), displayTitle(e.Title))
		}
		return nil
	case "show":
		if len(args) < 2 {
			return errors.New("usage: entries show <id>")
		}
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid entry id %q", args[1])
		}
		e, err := a.api.GetEntry(ctx, id)
		if err != nil {
			return fmt.Errorf("get entry: %w", err)
		}
		fmt.Fprintf(a.stdout, "# %s\n%s\n\n%s\n", displayTitle(e.Title), e.CreatedAt.Local().Format(time.DateTime), e.Markdown)
		return nil
	case "add":
		return a.addEntry(ctx, args[1:])
	default:
		return fmt.Errorf("unknown entries command %q", args[0])
	}
}

func (a *cli) addEntry(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("entries add", flag.ContinueOnError)
	title := fs.String("title", "", "entry title")
	file := fs.String("file", "", "read markdown from file (default stdin)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		md  []byte
		err error
	)
	if *file != "" {
		md, err = os.ReadFile(*file)
	} else {
		md, err = io.ReadAll(a.stdin)
	}
	if err != nil {
		return fmt.Errorf("read markdown: %w", err)
	}

	e, err := a.api.CreateEntry(ctx, *title, string(md))
	if err != nil {
		return fmt.Errorf("create entry: %w", err)
	}
	fmt.Fprintf(a.stdout, "created entry %d\n", e.ID)
	return nil
}

func (a *cli) interview(ctx context.Context) error {
	in := bufio.NewScanner(a.stdin)
	ask := func(prompt string) string {
		fmt.Fprintf(a.stdout, "%s\n> ", prompt)
		if !in.Scan() {
			return ""
		}
		return in.Text()
	}

	var ans interview.Answers
	ans.Title = ask("タイトル")
	for i, q := range interview.Questions() {
		ans.Answers[i] = ask(fmt.Sprintf("Q%d. %s", q.No, q.Label))
	}
	if err := in.Err(); err != nil {
		return fmt.Errorf("read answers: %w", err)
	}

	e, err := a.api.CreateEntry(ctx, ans.ResolvedTitle(), interview.ToMarkdown(ans))
	if err != nil {
		return fmt.Errorf("save interview: %w", err)
	}
	fmt.Fprintf(a.stdout, "created entry %d\n", e.ID)
	return nil
}

func (a *cli) printDraft(d model.Draft) {
	fmt.Fprint(a.stdout, draft.Markdown(d))
}

func displayTitle(t string) string {
	if strings.TrimSpace(t) == "" {
		return "無題"
	}
	return t
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
