package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/abhishek622/careerOS/internal/repository"
	"github.com/abhishek622/careerOS/pkg/model"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// fakeEntryStore assigns monotonic ids and timestamps like the real table.
type fakeEntryStore struct {
	mu      sync.Mutex
	entries []model.Entry
	clock   time.Time
	err     error
	creates int
}

func newFakeEntryStore() *fakeEntryStore {
	return &fakeEntryStore{clock: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (f *fakeEntryStore) Create(_ context.Context, title, markdown string) (model.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates++
	if f.err != nil {
		return model.Entry{}, f.err
	}
	f.clock = f.clock.Add(time.Second)
	e := model.Entry{ID: int64(len(f.entries) + 1), Title: title, Markdown: markdown, CreatedAt: f.clock}
	f.entries = append(f.entries, e)
	return e, nil
}

func (f *fakeEntryStore) GetByID(_ context.Context, id int64) (model.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return model.Entry{}, f.err
	}
	for _, e := range f.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return model.Entry{}, fmt.Errorf("%w: %d", repository.ErrEntryNotFound, id)
}

func (f *fakeEntryStore) ListLatest(_ context.Context, limit int) ([]model.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make([]model.Entry, 0, limit)
	for i := len(f.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.entries[i])
	}
	return out, nil
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

var errDBDown = errors.New("db down")

func newTestRouter(store EntryStore, db Pinger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(zap.NewNop(), store, db)

	r := gin.New()
	r.GET("/health", h.Health)
	r.GET("/api/entries", h.ListEntries)
	r.POST("/api/entries", h.CreateEntry)
	r.GET("/api/entries/:id", h.GetEntry)
	r.POST("/api/generate-draft", h.GenerateDraft)
	r.GET("/api/interview/questions", h.ListInterviewQuestions)
	r.POST("/api/interview", h.SubmitInterview)
	return r
}

func do(r http.Handler, method, path string, body io.Reader) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	return do(r, method, path, strings.NewReader(body))
}
