package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// state carries ids produced by earlier steps.
type state struct {
	username  string
	accountID int
	messageID int
}

type step struct {
	name       string
	method     string
	path       func(s *state) string
	body       func(s *state) string
	wantStatus int
	check      func(s *state, body []byte) error
}

type ResultItem struct {
	Step       string `json:"step"`
	Method     string `json:"method"`
	Path       string `json:"path"`
	WantStatus int    `json:"want_status"`
	GotStatus  int    `json:"got_status"`
	Passed     bool   `json:"passed"`
	Error      string `json:"error,omitempty"`
	DurationMs int64  `json:"duration_ms"`
}

func fixed(p string) func(*state) string { return func(*state) string { return p } }

func messagePath(s *state) string { return fmt.Sprintf("/messages/%d", s.messageID) }

type messageBody struct {
	MessageID   int    `json:"message_id"`
	PostedBy    int    `json:"posted_by"`
	MessageText string `json:"message_text"`
}

func expectText(want string) func(*state, []byte) error {
	return func(_ *state, body []byte) error {
		var m messageBody
		if err := json.Unmarshal(body, &m); err != nil {
			return fmt.Errorf("decode message: %w", err)
		}
		if m.MessageText != want {
			return fmt.Errorf("message_text = %q, want %q", m.MessageText, want)
		}
		return nil
	}
}

func expectEmpty(_ *state, body []byte) error {
	if len(bytes.TrimSpace(body)) != 0 {
		return fmt.Errorf("expected empty body, got %q", truncate(string(body), 64))
	}
	return nil
}

// scenario is the register / login / post / update / delete walk-through.
func scenario() []step {
	credentials := func(password string) func(*state) string {
		return func(s *state) string {
			return fmt.Sprintf(`{"username":%q,"password":%q}`, s.username, password)
		}
	}
	return []step{
		{
			name: "register", method: http.MethodPost, path: fixed("/register"),
			body: credentials("secret"), wantStatus: http.StatusOK,
			check: func(s *state, body []byte) error {
				var a struct {
					AccountID int `json:"account_id"`
				}
				if err := json.Unmarshal(body, &a); err != nil || a.AccountID == 0 {
					return fmt.Errorf("no account_id in %q", truncate(string(body), 64))
				}
				s.accountID = a.AccountID
				return nil
			},
		},
		{name: "register duplicate", method: http.MethodPost, path: fixed("/register"), body: credentials("secret"), wantStatus: http.StatusBadRequest},
		{name: "login wrong password", method: http.MethodPost, path: fixed("/login"), body: credentials("wrong"), wantStatus: http.StatusUnauthorized},
		{name: "login", method: http.MethodPost, path: fixed("/login"), body: credentials("secret"), wantStatus: http.StatusOK},
		{
			name: "create message", method: http.MethodPost, path: fixed("/messages"), wantStatus: http.StatusOK,
			body: func(s *state) string {
				return fmt.Sprintf(`{"posted_by":%d,"message_text":"hi","time_posted_epoch":%d}`, s.accountID, time.Now().Unix())
			},
			check: func(s *state, body []byte) error {
				var m messageBody
				if err := json.Unmarshal(body, &m); err != nil || m.MessageID == 0 {
					return fmt.Errorf("no message_id in %q", truncate(string(body), 64))
				}
				s.messageID = m.MessageID
				return nil
			},
		},
		{
			name: "create message unknown author", method: http.MethodPost, path: fixed("/messages"), wantStatus: http.StatusBadRequest,
			body: fixed(`{"posted_by":-1,"message_text":"hi"}`),
		},
		{
			name: "update too long", method: http.MethodPatch, path: messagePath, wantStatus: http.StatusBadRequest,
			body: fixed(`{"message_text":"` + strings.Repeat("a", 256) + `"}`),
		},
		{name: "text unchanged", method: http.MethodGet, path: messagePath, wantStatus: http.StatusOK, check: expectText("hi")},
		{
			name: "update", method: http.MethodPatch, path: messagePath, wantStatus: http.StatusOK,
			body: fixed(`{"message_text":"hello"}`), check: expectText("hello"),
		},
		{name: "re-read", method: http.MethodGet, path: messagePath, wantStatus: http.StatusOK, check: expectText("hello")},
		{name: "delete", method: http.MethodDelete, path: messagePath, wantStatus: http.StatusOK, check: expectText("hello")},
		{name: "delete again", method: http.MethodDelete, path: messagePath, wantStatus: http.StatusOK, check: expectEmpty},
	}
}

// runStep never returns an error; failures are recorded on the result.
func runStep(ctx context.Context, client *http.Client, base string, s *state, st step) ResultItem {
	path := st.path(s)
	r := ResultItem{Step: st.name, Method: st.method, Path: path, WantStatus: st.wantStatus}

	var body io.Reader
	if st.body != nil {
		body = strings.NewReader(st.body(s))
	}
	req, err := http.NewRequestWithContext(ctx, st.method, strings.TrimRight(base, "/")+path, body)
	if err != nil {
		r.Error = err.Error()
		return r
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	t0 := time.Now()
	resp, err := client.Do(req)
	r.DurationMs = time.Since(t0).Milliseconds()
	if err != nil {
		r.Error = err.Error()
		return r
	}
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		r.Error = err.Error()
		return r
	}

	r.GotStatus = resp.StatusCode
	if r.GotStatus != r.WantStatus {
		r.Error = fmt.Sprintf("status %d, body %q", r.GotStatus, truncate(string(payload), 64))
		return r
	}
	if st.check != nil {
		if err := st.check(s, payload); err != nil {
			r.Error = err.Error()
			return r
		}
	}
	r.Passed = true
	return r
}

var errStepsFailed = errors.New("one or more steps failed")

// runScenario executes every step in order and stops early only when a step
// that produces an id for later steps fails.
func runScenario(ctx context.Context, client *http.Client, base, username string, sleep time.Duration) ([]ResultItem, error) {
	s := &state{username: username}
	steps := scenario()
	results := make([]ResultItem, 0, len(steps))
	var failed bool
	for _, st := range steps {
		r := runStep(ctx, client, base, s, st)
		results = append(results, r)
		if !r.Passed {
			failed = true
			if st.name == "register" || st.name == "create message" {
				break
			}
		}
		if sleep > 0 {
			time.Sleep(sleep)
		}
	}
	if failed {
		return results, errStepsFailed
	}
	return results, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
