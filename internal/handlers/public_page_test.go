// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"proposalpress/internal/cache"
	"proposalpress/internal/models"
)

// postForm performs a public form POST against the handler with the slug
// bound as a chi URL parameter.
func postForm(t *testing.T, handler http.HandlerFunc, slug, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/proposal/"+slug+path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = withChiURLParam(req, "slug", slug)
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestHomeRendersAndCachesProposal(t *testing.T) {
	env := newTestEnv(t)
	slug := env.createTestProposal(t)
	ctx := context.Background()

	req := httptest.NewRequest(http.MethodGet, "/?proposal="+slug, nil)
	w := httptest.NewRecorder()
	env.Public.Home(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}

	rec, err := env.ProposalStore.FindBySlug(ctx, slug)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if !strings.Contains(w.Body.String(), rec.Data.Hero.ClientName) {
		t.Error("rendered page must contain the client name")
	}

	if _, ok := env.PageCache.Get(ctx, cache.ProposalKey(slug, "proposal")); !ok {
		t.Error("rendered page must be stored in the page cache")
	}
}

func TestHomeServesCachedPage(t *testing.T) {
	env := newTestEnv(t)
	slug := env.createTestProposal(t)
	ctx := context.Background()

	env.PageCache.Set(ctx, cache.ProposalKey(slug, "proposal"), []byte("<html>cached copy</html>"))

	req := httptest.NewRequest(http.MethodGet, "/?proposal="+slug, nil)
	w := httptest.NewRecorder()
	env.Public.Home(w, req)

	if w.Body.String() != "<html>cached copy</html>" {
		t.Error("a cached page must be served as-is")
	}
}

func TestHomeLandingVariant(t *testing.T) {
	env := newTestEnv(t)
	slug := env.createTestProposal(t)

	req := httptest.NewRequest(http.MethodGet, "/?proposal="+slug+"&page=landing", nil)
	w := httptest.NewRecorder()
	env.Public.Home(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}
	if _, ok := env.PageCache.Get(context.Background(), cache.ProposalKey(slug, "landing")); !ok {
		t.Error("landing variant must be cached under its own key")
	}
}

func TestHomeEditParamOpensEditorForAdmins(t *testing.T) {
	env := newTestEnv(t)
	slug := env.createTestProposal(t)

	req := httptest.NewRequest(http.MethodGet, "/?proposal="+slug+"&edit=true", nil)
	req = withSession(req, testSession("admin"))
	w := httptest.NewRecorder()
	env.Public.Home(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, want 303", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/admin/editor?proposal="+slug {
		t.Errorf("location: got %q", loc)
	}
}

func TestHomeEditParamIgnoredForVisitors(t *testing.T) {
	env := newTestEnv(t)
	slug := env.createTestProposal(t)

	req := httptest.NewRequest(http.MethodGet, "/?proposal="+slug+"&edit=true", nil)
	w := httptest.NewRecorder()
	env.Public.Home(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200 (rendered page)", w.Code)
	}
}

func TestHomeMissingProposal(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/?proposal=no-such-proposal", nil)
	w := httptest.NewRecorder()
	env.Public.Home(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", w.Code)
	}
}

func TestHomeLogsView(t *testing.T) {
	env := newTestEnv(t)
	slug := env.createTestProposal(t)

	req := httptest.NewRequest(http.MethodGet, "/?proposal="+slug, nil)
	env.Public.Home(httptest.NewRecorder(), req)

	var count int
	if err := env.DB.QueryRow("SELECT COUNT(*) FROM proposal_views WHERE proposal_slug = $1", slug).Scan(&count); err != nil {
		t.Fatalf("count views: %v", err)
	}
	if count != 1 {
		t.Errorf("view count: got %d, want 1", count)
	}
}

func TestAcceptMarksProposalAccepted(t *testing.T) {
	env := newTestEnv(t)
	slug := env.createTestProposal(t)
	ctx := context.Background()

	w := postForm(t, env.Public.Accept, slug, "/accept", url.Values{})
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, want 303", w.Code)
	}

	rec, err := env.ProposalStore.FindBySlug(ctx, slug)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if rec.Data.Status != models.StatusAccepted {
		t.Errorf("status: got %q, want %q", rec.Data.Status, models.StatusAccepted)
	}
}

func TestAcceptMissingProposal(t *testing.T) {
	env := newTestEnv(t)

	w := postForm(t, env.Public.Accept, "no-such-proposal", "/accept", url.Values{})
	if w.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", w.Code)
	}
}

func TestRequestChangesStoresCommentAndStatus(t *testing.T) {
	env := newTestEnv(t)
	slug := env.createTestProposal(t)
	ctx := context.Background()

	form := url.Values{
		"author":  {"María García"},
		"comment": {"El precio queda fuera de presupuesto."},
	}
	w := postForm(t, env.Public.RequestChanges, slug, "/request-changes", form)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, want 303: %s", w.Code, w.Body)
	}

	rec, err := env.ProposalStore.FindBySlug(ctx, slug)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if rec.Data.Status != models.StatusChangesRequested {
		t.Errorf("status: got %q, want %q", rec.Data.Status, models.StatusChangesRequested)
	}

	comments, err := env.CommentStore.ListBySlug(ctx, slug)
	if err != nil {
		t.Fatalf("list comments: %v", err)
	}
	if len(comments) != 1 || comments[0].AuthorName != "María García" {
		t.Errorf("comments: got %+v", comments)
	}
}

func TestRequestChangesEmptyFields(t *testing.T) {
	env := newTestEnv(t)
	slug := env.createTestProposal(t)

	w := postForm(t, env.Public.RequestChanges, slug, "/request-changes", url.Values{
		"author":  {"   "},
		"comment": {""},
	})
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, want redirect back", w.Code)
	}

	comments, err := env.CommentStore.ListBySlug(context.Background(), slug)
	if err != nil {
		t.Fatalf("list comments: %v", err)
	}
	if len(comments) != 0 {
		t.Errorf("blank feedback must not be stored, got %d comments", len(comments))
	}
}

func TestRequestChangesOnAcceptedProposal(t *testing.T) {
	env := newTestEnv(t)
	slug := env.createTestProposal(t)
	ctx := context.Background()

	if err := env.ProposalStore.UpdateStatus(ctx, slug, models.StatusSent); err != nil {
		t.Fatalf("set sent: %v", err)
	}
	if err := env.ProposalStore.UpdateStatus(ctx, slug, models.StatusAccepted); err != nil {
		t.Fatalf("set accepted: %v", err)
	}

	w := postForm(t, env.Public.RequestChanges, slug, "/request-changes", url.Values{
		"author":  {"María García"},
		"comment": {"¿Podemos cambiar el tema?"},
	})
	// An accepted proposal takes no more change requests; the client is
	// sent back to the page, and nothing is stored.
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, want 303: %s", w.Code, w.Body)
	}

	comments, err := env.CommentStore.ListBySlug(ctx, slug)
	if err != nil {
		t.Fatalf("list comments: %v", err)
	}
	if len(comments) != 0 {
		t.Errorf("comment on an accepted proposal was stored: %+v", comments)
	}

	rec, err := env.ProposalStore.FindBySlug(ctx, slug)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if rec.Data.Status != models.StatusAccepted {
		t.Errorf("status: got %q, want still accepted", rec.Data.Status)
	}
}

func TestAcceptInvalidatesCache(t *testing.T) {
	env := newTestEnv(t)
	slug := env.createTestProposal(t)
	ctx := context.Background()

	key := cache.ProposalKey(slug, "proposal")
	env.PageCache.Set(ctx, key, []byte("<html>stale</html>"))

	postForm(t, env.Public.Accept, slug, "/accept", url.Values{})

	if _, ok := env.PageCache.Get(ctx, key); ok {
		t.Error("accept must invalidate the cached page")
	}
}
