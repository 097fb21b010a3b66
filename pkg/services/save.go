// Package services implements the save workflows that reconcile the local
// working copy against the remote GraphQL store.
package services

import (
	"context"
	"fmt"

	"devlinks-go/pkg/graphql"
	"devlinks-go/pkg/models"

	"golang.org/x/sync/errgroup"
)

// Saver runs the reconciliation workflow for links and the whole-record
// profile save.
type Saver struct {
	gql *graphql.Client
}

// NewSaver creates a saver bound to an authenticated GraphQL client.
func NewSaver(gql *graphql.Client) *Saver {
	return &Saver{gql: gql}
}

// SaveResult lists the reconciliation work that committed remotely. The
// caller folds it back into its local state on its own goroutine; the
// workflow itself never touches shared state, so edits made while a save
// is in flight are untouched by its bookkeeping.
type SaveResult struct {
	Deleted []string // ledger ids whose remote deletion committed
	Saved   []string // ids of new links whose insertion committed
}

// SaveLinks brings the remote link collection into agreement with the
// given snapshot of links and pending removals. Phases run strictly in
// order: deletions, one batched insert, then per-link updates. Calls
// within the deletion and update phases are issued concurrently; deleting
// independent records commutes.
//
// On validation failure the returned error is a ValidationErrors and no
// remote call is made. On any remote failure the workflow stops where it
// is; the result still reports the phases that went through, so the
// caller commits exactly those (inserted links must not be re-inserted on
// retry) and a later invocation starts fresh from whatever the local
// state is then. Re-deleting an id that already went through is a no-op
// remotely, so retries converge.
func (s *Saver) SaveLinks(ctx context.Context, links []models.Link, removed []string, userID string) (SaveResult, error) {
	var res SaveResult
	if verrs := ValidateLinks(links); len(verrs) > 0 {
		return res, verrs
	}

	// Deletion phase.
	if len(removed) > 0 {
		g, gctx := errgroup.WithContext(ctx)
		for _, id := range removed {
			g.Go(func() error {
				return s.gql.DeleteLink(gctx, id)
			})
		}
		if err := g.Wait(); err != nil {
			return res, fmt.Errorf("save links: %w", err)
		}
		res.Deleted = removed
	}

	// Insertion phase: one batched call for every new link.
	var inserts []models.LinkInsert
	var newIDs []string
	for _, link := range links {
		if link.IsNew {
			inserts = append(inserts, models.LinkInsert{
				Platform: link.Platform,
				URL:      link.URL,
				UserID:   userID,
			})
			newIDs = append(newIDs, link.ID)
		}
	}
	if len(inserts) > 0 {
		if _, err := s.gql.InsertLinks(ctx, inserts); err != nil {
			return res, fmt.Errorf("save links: %w", err)
		}
	}
	res.Saved = newIDs

	// Update phase: previously persisted links, concurrently.
	g, gctx := errgroup.WithContext(ctx)
	for _, link := range links {
		if link.IsNew {
			continue
		}
		g.Go(func() error {
			return s.gql.UpdateLink(gctx, link.ID, link.Platform, link.URL)
		})
	}
	if err := g.Wait(); err != nil {
		return res, fmt.Errorf("save links: %w", err)
	}

	return res, nil
}

// SaveProfile validates and persists the profile as a single whole-record
// update keyed by the owning auth0 subject. Local fields are never changed
// here; on failure the caller keeps its edits and may retry.
func (s *Saver) SaveProfile(ctx context.Context, profile models.Profile, userID string) error {
	if verrs := ValidateProfile(profile); len(verrs) > 0 {
		return verrs
	}
	return s.gql.UpdateUserProfile(ctx, userID, profile)
}
