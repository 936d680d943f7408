package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Maruf-rahman11/threadhub-web-server/internal/models"
	"github.com/Maruf-rahman11/threadhub-web-server/internal/services"
)

// PostStorage keeps posts in insertion order and applies the same listing
// policy as the Mongo pipeline.
type PostStorage struct {
	mu    sync.RWMutex
	posts []models.Post
	index map[bson.ObjectID]int
}

func NewPostStorage() *PostStorage {
	return &PostStorage{index: make(map[bson.ObjectID]int)}
}

func (s *PostStorage) InsertPost(_ context.Context, post models.Post) (bson.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if post.ID.IsZero() {
		post.ID = bson.NewObjectID()
	}
	if _, dup := s.index[post.ID]; dup {
		return bson.NilObjectID, fmt.Errorf("insert post: duplicate id %s", post.ID.Hex())
	}
	post.Votes = nil
	post.Comments = append([]string{}, post.Comments...)

	s.index[post.ID] = len(s.posts)
	s.posts = append(s.posts, post)
	return post.ID, nil
}

func (s *PostStorage) FindPosts(_ context.Context, q models.PostQuery) ([]models.Post, error) {
	s.mu.RLock()
	matched := make([]models.Post, 0, len(s.posts))
	for _, p := range s.posts {
		if q.Tag != "" && p.Tag != q.Tag {
			continue
		}
		p = clonePost(p)
		votes := p.UpVote - p.DownVote
		p.Votes = &votes
		matched = append(matched, p)
	}
	s.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if q.SortByPopularity && *a.Votes != *b.Votes {
			return *a.Votes > *b.Votes
		}
		return a.CreatedAt.After(b.CreatedAt)
	})

	skip := q.Skip
	if skip < 0 {
		skip = 0
	}
	if skip >= int64(len(matched)) {
		return []models.Post{}, nil
	}
	end := int64(len(matched))
	if q.Limit > 0 && skip+q.Limit < end {
		end = skip + q.Limit
	}
	return matched[skip:end], nil
}

func (s *PostStorage) CountPosts(_ context.Context, tag string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if tag == "" {
		return int64(len(s.posts)), nil
	}
	var n int64
	for _, p := range s.posts {
		if p.Tag == tag {
			n++
		}
	}
	return n, nil
}

func (s *PostStorage) FindPostByID(_ context.Context, id bson.ObjectID) (models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return models.Post{}, services.ErrNotFound
	}
	return clonePost(s.posts[i]), nil
}

func (s *PostStorage) FindPostsByAuthor(_ context.Context, email string) ([]models.Post, error) {
	s.mu.RLock()
	var out []models.Post
	for _, p := range s.posts {
		if p.AuthorEmail == email {
			out = append(out, clonePost(p))
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *PostStorage) IncrementVote(_ context.Context, id bson.ObjectID, field models.VoteField) (models.Post, error) {
	if !field.Valid() {
		return models.Post{}, fmt.Errorf("%w: unknown vote %q", services.ErrInvalidRequest, field)
	}
	return s.update(id, func(p *models.Post) {
		if field == models.UpVote {
			p.UpVote++
		} else {
			p.DownVote++
		}
	})
}

func (s *PostStorage) PushComment(_ context.Context, id bson.ObjectID, comment string) (models.Post, error) {
	return s.update(id, func(p *models.Post) {
		p.Comments = append(p.Comments, comment)
	})
}

func (s *PostStorage) update(id bson.ObjectID, fn func(p *models.Post)) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return models.Post{}, services.ErrNotFound
	}
	fn(&s.posts[i])
	return clonePost(s.posts[i]), nil
}

func clonePost(p models.Post) models.Post {
	p.Comments = append([]string{}, p.Comments...)
	if p.Votes != nil {
		v := *p.Votes
		p.Votes = &v
	}
	return p
}
