package model

import (
	"errors"
	"time"

	"github.com/tidwall/gjson"
)

var (
	ErrMalformedBody    = errors.New("malformed request body")
	ErrMarkdownRequired = errors.New("markdown is required")
)

type Entry struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Markdown  string    `json:"markdown" db:"markdown"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type CreateEntryReq struct {
	Title    string `json:"title"`
	Markdown string `json:"markdown"`
}

// DecodeCreateEntryReq turns a raw create-entry body into a validated request.
// Body must be syntactically valid JSON; a title that is missing or not a
// string becomes "", a markdown that is missing, empty or not a string fails
// with ErrMarkdownRequired.
func DecodeCreateEntryReq(body []byte) (CreateEntryReq, error) {
	if !gjson.ValidBytes(body) {
		return CreateEntryReq{}, ErrMalformedBody
	}
	doc := gjson.ParseBytes(body)

	var req CreateEntryReq
	if t := doc.Get("title"); t.Type == gjson.String {
		req.Title = t.Str
	}
	md := doc.Get("markdown")
	if md.Type != gjson.String || md.Str == "" {
		return CreateEntryReq{}, ErrMarkdownRequired
	}
	req.Markdown = md.Str
	return req, nil
}

type EntryDetail struct {
	Entry
	HTML string `json:"html"`
}
