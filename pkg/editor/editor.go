// Package editor holds the in-memory working copy of the authenticated
// user's profile and link collection. It is the only sanctioned way to
// mutate that state, so the collection invariants (unique ids, ledger
// consistency, explicit ordering) hold for every caller.
package editor

import (
	"slices"

	"devlinks-go/pkg/models"

	"github.com/google/uuid"
)

// Editor owns the editable profile, the ordered link collection, and the
// ledger of link ids pending remote deletion. It is confined to the UI
// event loop and performs no remote calls; all methods are synchronous.
type Editor struct {
	profile models.Profile
	links   []models.Link
	removed []string
}

// New returns an empty editor: no profile id, no links, empty ledger.
func New() *Editor {
	return &Editor{}
}

// SetRemote replaces the working copy with freshly fetched remote state.
// Fetched links are persisted by definition, and any pending deletions are
// obsolete once the remote store has been re-read.
func (e *Editor) SetRemote(profile models.Profile, links []models.Link) {
	e.profile = profile
	e.links = make([]models.Link, len(links))
	for i, l := range links {
		l.IsNew = false
		e.links[i] = l
	}
	e.removed = nil
}

// AddLink appends a new link with a generated placeholder id, the default
// platform, and an empty URL. It never contacts the remote store.
func (e *Editor) AddLink() models.Link {
	link := models.Link{
		ID:       uuid.NewString(),
		Platform: models.DefaultPlatform,
		URL:      "",
		IsNew:    true,
	}
	e.links = append(e.links, link)
	return link
}

// RemoveLink deletes the link with the given id from the collection. A link
// that was already persisted is queued in the removed-links ledger so the
// next save reconciles the deletion; a link that only ever existed locally
// is simply discarded. No-op if the id is absent.
func (e *Editor) RemoveLink(id string) {
	for i, l := range e.links {
		if l.ID != id {
			continue
		}
		e.links = append(e.links[:i], e.links[i+1:]...)
		if !l.IsNew && !slices.Contains(e.removed, id) {
			e.removed = append(e.removed, id)
		}
		return
	}
}

// LinkUpdate carries partial field changes for UpdateLink. Nil fields are
// left untouched.
type LinkUpdate struct {
	Platform *string
	URL      *string
}

// UpdateLink merges the given field updates into the link with that id.
// Order, IsNew status, and all other links are unchanged. No-op if the id
// is absent.
func (e *Editor) UpdateLink(id string, update LinkUpdate) {
	for i := range e.links {
		if e.links[i].ID != id {
			continue
		}
		if update.Platform != nil {
			e.links[i].Platform = *update.Platform
		}
		if update.URL != nil {
			e.links[i].URL = *update.URL
		}
		return
	}
}

// Reorder moves the link at src to dst, shifting the elements in between.
// An out-of-range source or destination (a drop outside any valid target)
// leaves the collection unchanged.
func (e *Editor) Reorder(src, dst int) {
	if src < 0 || src >= len(e.links) || dst < 0 || dst >= len(e.links) || src == dst {
		return
	}
	moved := e.links[src]
	e.links = append(e.links[:src], e.links[src+1:]...)
	e.links = slices.Insert(e.links, dst, moved)
}

// UpdateProfileField merges a single named field update into the profile.
// Unknown field names are ignored.
func (e *Editor) UpdateProfileField(name, value string) {
	switch name {
	case "first_name":
		e.profile.FirstName = value
	case "last_name":
		e.profile.LastName = value
	case "email":
		e.profile.Email = value
	case "image":
		e.profile.Image = value
	}
}

// Links returns a copy of the ordered link collection.
func (e *Editor) Links() []models.Link {
	out := make([]models.Link, len(e.links))
	copy(out, e.links)
	return out
}

// Profile returns the current profile record.
func (e *Editor) Profile() models.Profile {
	return e.profile
}

// Removed returns a copy of the removed-links ledger.
func (e *Editor) Removed() []string {
	out := make([]string, len(e.removed))
	copy(out, e.removed)
	return out
}

// CommitRemovals drops the given ids from the ledger once their remote
// deletion has committed. Ids ledgered after the save's snapshot was taken
// are not in the list and stay pending for the next save.
func (e *Editor) CommitRemovals(ids []string) {
	e.removed = slices.DeleteFunc(e.removed, func(id string) bool {
		return slices.Contains(ids, id)
	})
}

// MarkSaved clears IsNew on the given link ids once their insertion has
// committed. Links added after the save's snapshot was taken keep the flag.
// Local placeholder ids are kept; they were unique already and the remote
// store does not need them to match.
func (e *Editor) MarkSaved(ids []string) {
	for i := range e.links {
		if e.links[i].IsNew && slices.Contains(ids, e.links[i].ID) {
			e.links[i].IsNew = false
		}
	}
}
