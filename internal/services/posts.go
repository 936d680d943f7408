package services

import (
	"context"
	"fmt"
	"html"
	"math"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Maruf-rahman11/threadhub-web-server/config"
	"github.com/Maruf-rahman11/threadhub-web-server/internal/models"
)

//go:generate mockgen -source=posts.go -destination=./post_storage_mock.go -package=services
type PostStorage interface {
	InsertPost(ctx context.Context, post models.Post) (bson.ObjectID, error)
	FindPosts(ctx context.Context, q models.PostQuery) ([]models.Post, error)
	CountPosts(ctx context.Context, tag string) (int64, error)
	FindPostByID(ctx context.Context, id bson.ObjectID) (models.Post, error)
	FindPostsByAuthor(ctx context.Context, email string) ([]models.Post, error)
	IncrementVote(ctx context.Context, id bson.ObjectID, field models.VoteField) (models.Post, error)
	PushComment(ctx context.Context, id bson.ObjectID, comment string) (models.Post, error)
}

// TextMasker rewrites user text on the way out, e.g. a profanity filter.
type TextMasker interface {
	Mask(s string) string
}

type PostPage struct {
	Posts      []models.Post `json:"posts"`
	TotalPages int64         `json:"totalPages"`
}

type PostService struct {
	postStorage PostStorage
	masker      TextMasker
	ugc         *bluemonday.Policy
	strict      *bluemonday.Policy
	now         func() time.Time
}

type PostOption func(*PostService)

// WithCommentMasker masks comment text in every returned post.
func WithCommentMasker(m TextMasker) PostOption {
	return func(s *PostService) { s.masker = m }
}

func WithClock(now func() time.Time) PostOption {
	return func(s *PostService) { s.now = now }
}

func NewPostService(postStorage PostStorage, opts ...PostOption) *PostService {
	s := &PostService{
		postStorage: postStorage,
		ugc:         bluemonday.UGCPolicy(),
		strict:      bluemonday.StrictPolicy(),
		now:         time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// ListPosts returns one page of posts plus the page count for the same tag
// filter. The page and the count are read separately and may disagree under
// concurrent writes.
func (s *PostService) ListPosts(ctx context.Context, req ListPostsRequest) (PostPage, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := int64(config.PostsPageLimit)

	var posts []models.Post
	// A skip that would overflow int64 is past any stored data.
	if int64(page-1) <= math.MaxInt64/limit {
		var err error
		posts, err = s.postStorage.FindPosts(ctx, models.PostQuery{
			Tag:              req.Tag,
			SortByPopularity: req.SortByPopularity,
			Skip:             int64(page-1) * limit,
			Limit:            limit,
		})
		if err != nil {
			return PostPage{}, fmt.Errorf("find posts: %w", err)
		}
	}

	total, err := s.postStorage.CountPosts(ctx, req.Tag)
	if err != nil {
		return PostPage{}, fmt.Errorf("count posts: %w", err)
	}

	if posts == nil {
		posts = []models.Post{}
	}
	return PostPage{
		Posts:      s.maskAll(posts),
		TotalPages: TotalPages(total, limit),
	}, nil
}

// TotalPages is ceil(total / limit).
func TotalPages(total, limit int64) int64 {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

func (s *PostService) CreatePost(ctx context.Context, req CreatePostRequest) (bson.ObjectID, error) {
	req.normalize()
	if err := validate.Struct(req); err != nil {
		return bson.NilObjectID, fmt.Errorf("%w: All fields are required", ErrInvalidRequest)
	}

	description := sanitize(s.ugc, req.Description)
	if description == "" {
		return bson.NilObjectID, fmt.Errorf("%w: All fields are required", ErrInvalidRequest)
	}

	post := models.Post{
		AuthorImage: req.AuthorImage,
		AuthorName:  req.AuthorName,
		AuthorEmail: req.AuthorEmail,
		Title:       req.Title,
		Description: description,
		Tag:         req.Tag,
		Comments:    []string{},
		CreatedAt:   s.now().UTC(),
	}
	if req.UpVote != nil {
		post.UpVote = *req.UpVote
	}
	if req.DownVote != nil {
		post.DownVote = *req.DownVote
	}

	return s.postStorage.InsertPost(ctx, post)
}

func (s *PostService) GetPostByID(ctx context.Context, id bson.ObjectID) (models.Post, error) {
	p, err := s.postStorage.FindPostByID(ctx, id)
	if err != nil {
		return models.Post{}, err
	}
	return s.mask(p), nil
}

func (s *PostService) ListPostsByAuthor(ctx context.Context, email string) ([]models.Post, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidRequest)
	}
	posts, err := s.postStorage.FindPostsByAuthor(ctx, email)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, ErrNotFound
	}
	return s.maskAll(posts), nil
}

func (s *PostService) Vote(ctx context.Context, id bson.ObjectID, field models.VoteField) (models.Post, error) {
	if !field.Valid() {
		return models.Post{}, fmt.Errorf("%w: unknown vote %q", ErrInvalidRequest, field)
	}
	p, err := s.postStorage.IncrementVote(ctx, id, field)
	if err != nil {
		return models.Post{}, err
	}
	return s.mask(p), nil
}

func (s *PostService) AddComment(ctx context.Context, id bson.ObjectID, comment string) (models.Post, error) {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return models.Post{}, fmt.Errorf("%w: Comment cannot be empty", ErrInvalidRequest)
	}
	comment = sanitize(s.strict, comment)
	if comment == "" {
		return models.Post{}, fmt.Errorf("%w: Comment cannot be empty", ErrInvalidRequest)
	}

	p, err := s.postStorage.PushComment(ctx, id, comment)
	if err != nil {
		return models.Post{}, err
	}
	return s.mask(p), nil
}

// sanitize strips markup the policy rejects and undoes the entity escaping
// bluemonday applies to text, so "don't" is stored as typed.
func sanitize(p *bluemonday.Policy, s string) string {
	return strings.TrimSpace(html.UnescapeString(p.Sanitize(s)))
}

func (s *PostService) mask(p models.Post) models.Post {
	if s.masker == nil || len(p.Comments) == 0 {
		return p
	}
	out := make([]string, len(p.Comments))
	for i, c := range p.Comments {
		out[i] = s.masker.Mask(c)
	}
	p.Comments = out
	return p
}

func (s *PostService) maskAll(posts []models.Post) []models.Post {
	if s.masker == nil {
		return posts
	}
	for i := range posts {
		posts[i] = s.mask(posts[i])
	}
	return posts
}
