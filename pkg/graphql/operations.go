package graphql

import (
	"context"
	"fmt"

	"devlinks-go/pkg/models"
)

const getUserProfileQuery = `
  query GetUserProfile {
    users {
      id
      email
      first_name
      last_name
      image
      links {
        id
        platform
        url
      }
    }
  }`

// GetUserProfile fetches the authenticated caller's own user row with its
// nested links. The Hasura permission rules scope "users" to the caller, so
// the first row is the caller's record.
func (c *Client) GetUserProfile(ctx context.Context) (models.Profile, []models.Link, error) {
	var out struct {
		Users []struct {
			ID        string        `json:"id"`
			Email     string        `json:"email"`
			FirstName string        `json:"first_name"`
			LastName  string        `json:"last_name"`
			Image     string        `json:"image"`
			Links     []models.Link `json:"links"`
		} `json:"users"`
	}
	if err := c.Do(ctx, getUserProfileQuery, nil, &out); err != nil {
		return models.Profile{}, nil, fmt.Errorf("fetch profile: %w", err)
	}
	if len(out.Users) == 0 {
		return models.Profile{}, nil, fmt.Errorf("fetch profile: %w", ErrNotFound)
	}
	row := out.Users[0]
	profile := models.Profile{
		ID:        &row.ID,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Email:     row.Email,
		Image:     row.Image,
	}
	return profile, row.Links, nil
}

const updateUserProfileMutation = `
  mutation UpdateUserProfile(
    $auth0Id: String!
    $first_name: String!
    $last_name: String!
    $email: String!
    $image: String!
  ) {
    update_users(
      _set: { first_name: $first_name, last_name: $last_name, email: $email, image: $image }
      where: { auth0_id: { _eq: $auth0Id } }
    ) {
      returning {
        id
      }
    }
  }`

// UpdateUserProfile persists the whole profile record keyed by the owning
// auth0 subject. Optional fields are sent as empty strings, not omitted,
// to match the remote schema's required arguments.
func (c *Client) UpdateUserProfile(ctx context.Context, auth0ID string, profile models.Profile) error {
	vars := map[string]any{
		"auth0Id":    auth0ID,
		"first_name": profile.FirstName,
		"last_name":  profile.LastName,
		"email":      profile.Email,
		"image":      profile.Image,
	}
	if err := c.Do(ctx, updateUserProfileMutation, vars, nil); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

const insertLinksMutation = `
  mutation insertLinks($objects: [links_insert_input!]!) {
    insert_links(objects: $objects) {
      returning {
        id
        platform
        url
      }
    }
  }`

// InsertLinks inserts all new links in one batched mutation and returns the
// remote-assigned ids.
func (c *Client) InsertLinks(ctx context.Context, objects []models.LinkInsert) ([]models.Link, error) {
	var out struct {
		InsertLinks struct {
			Returning []models.Link `json:"returning"`
		} `json:"insert_links"`
	}
	vars := map[string]any{"objects": objects}
	if err := c.Do(ctx, insertLinksMutation, vars, &out); err != nil {
		return nil, fmt.Errorf("insert links: %w", err)
	}
	return out.InsertLinks.Returning, nil
}

const updateLinkMutation = `
  mutation UpdateLink($id: uuid!, $platform: String!, $url: String!) {
    update_links_by_pk(
      pk_columns: { id: $id }
      _set: { platform: $platform, url: $url }
    ) {
      id
      platform
      url
    }
  }`

// UpdateLink updates a single previously persisted link by id.
func (c *Client) UpdateLink(ctx context.Context, id, platform, url string) error {
	vars := map[string]any{"id": id, "platform": platform, "url": url}
	if err := c.Do(ctx, updateLinkMutation, vars, nil); err != nil {
		return fmt.Errorf("update link %s: %w", id, err)
	}
	return nil
}

const deleteLinkMutation = `
  mutation DeleteLink($id: uuid!) {
    delete_links_by_pk(id: $id) {
      id
    }
  }`

// DeleteLink deletes a single link by id. Hasura returns a null row for an
// id that no longer exists, which decodes cleanly here, so re-deleting an
// already deleted link is a success no-op. That keeps save retries after a
// partial failure idempotent.
func (c *Client) DeleteLink(ctx context.Context, id string) error {
	vars := map[string]any{"id": id}
	if err := c.Do(ctx, deleteLinkMutation, vars, nil); err != nil {
		return fmt.Errorf("delete link %s: %w", id, err)
	}
	return nil
}

const getPublicProfileQuery = `
  query GetUserProfile($userId: String!) {
    users_by_pk(id: $userId) {
      id
      first_name
      last_name
      email
      image
      links {
        id
        platform
        url
      }
    }
  }`

// GetPublicProfile fetches a user's profile and ordered links by public id.
// Returns ErrNotFound when no such user exists.
func (c *Client) GetPublicProfile(ctx context.Context, userID string) (*models.PublicProfile, error) {
	var out struct {
		UsersByPk *models.PublicProfile `json:"users_by_pk"`
	}
	vars := map[string]any{"userId": userID}
	if err := c.Do(ctx, getPublicProfileQuery, vars, &out); err != nil {
		return nil, fmt.Errorf("fetch public profile: %w", err)
	}
	if out.UsersByPk == nil {
		return nil, ErrNotFound
	}
	return out.UsersByPk, nil
}
