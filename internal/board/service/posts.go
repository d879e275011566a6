package service

import (
	"context"
	"errors"
	"time"

	"github.com/driftlab/driftboard/internal/board/domain"
	"github.com/driftlab/driftboard/internal/board/store"
)

// MaxPageSize caps the page size of post listings regardless of what the
// client asks for.
const MaxPageSize = 50

// PostService implements post CRUD and keyset-paginated listing.
type PostService struct {
	Store store.Store
}

// List returns up to min(MaxPageSize, limit) posts newest-first, plus a
// flag reporting whether older posts remain. A non-zero before restricts
// results to posts created strictly earlier than that instant, which is how
// a client walks pages: pass the createdAt of the last post it has seen.
//
// One extra row is requested internally so "has more" needs no second
// query.
func (s *PostService) List(ctx context.Context, limit int, before time.Time) ([]domain.Post, bool, error) {
	realLimit := limit
	if realLimit > MaxPageSize {
		realLimit = MaxPageSize
	}
	if realLimit < 1 {
		realLimit = 1
	}

	posts, err := s.Store.Posts().ListPosts(ctx, realLimit+1, before)
	if err != nil {
		return nil, false, err
	}

	hasMore := len(posts) == realLimit+1
	if hasMore {
		posts = posts[:realLimit]
	}
	return posts, hasMore, nil
}

// Get fetches a single post by id, returning store.ErrNotFound when absent.
func (s *PostService) Get(ctx context.Context, id int64) (domain.Post, error) {
	return s.Store.Posts().GetPostByID(ctx, id)
}

// Create inserts a post owned by userID.
func (s *PostService) Create(ctx context.Context, userID int64, title, text string) (domain.Post, error) {
	id, err := s.Store.Posts().CreatePost(ctx, domain.Post{
		Title:     title,
		Text:      text,
		CreatorID: userID,
	})
	if err != nil {
		return domain.Post{}, err
	}
	return s.Store.Posts().GetPostByID(ctx, id)
}

// UpdateTitle changes a post's title. Only the owner may update; other
// users get ErrNotPostOwner. Returns store.ErrNotFound when the post does
// not exist.
func (s *PostService) UpdateTitle(ctx context.Context, userID, id int64, title string) (domain.Post, error) {
	post, err := s.Store.Posts().GetPostByID(ctx, id)
	if err != nil {
		return domain.Post{}, err
	}
	if post.CreatorID != userID {
		return domain.Post{}, ErrNotPostOwner
	}

	if err := s.Store.Posts().UpdatePostTitle(ctx, id, title); err != nil {
		return domain.Post{}, err
	}
	return s.Store.Posts().GetPostByID(ctx, id)
}

// Delete removes a post. Deleting an absent post succeeds; deleting another
// user's post returns ErrNotPostOwner.
func (s *PostService) Delete(ctx context.Context, userID, id int64) error {
	post, err := s.Store.Posts().GetPostByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}
	if post.CreatorID != userID {
		return ErrNotPostOwner
	}
	return s.Store.Posts().DeletePost(ctx, id)
}
