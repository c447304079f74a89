package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/martijn/inkwell/internal/core/domain"
	"github.com/martijn/inkwell/internal/core/repository"
)

// PostService owns the post lifecycle. It holds both repositories because
// a post's author must exist in the user store at creation time; the two
// stores are separate databases, so the check cannot live in the schema.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	now      func() time.Time
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
		now:      time.Now,
	}
}

func (s *PostService) ListPosts(ctx context.Context) ([]*domain.Post, error) {
	return s.postRepo.List(ctx)
}

func (s *PostService) GetPost(ctx context.Context, id int64) (*domain.Post, error) {
	return s.postRepo.FindByID(ctx, id)
}

// CreatePost appends a new post authored by authorID, dated today.
func (s *PostService) CreatePost(ctx context.Context, authorID int64, title, subtitle, body, imgURL string) (*domain.Post, error) {
	author, err := s.userRepo.FindByID(ctx, authorID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUnknownAuthor
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up author %d: %w", authorID, err)
	}

	post := domain.NewPost(title, subtitle, body, imgURL, author, s.now())
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// UpdatePost overwrites the post's content fields in place. The id, the
// creation date, and the author are preserved from the stored record.
func (s *PostService) UpdatePost(ctx context.Context, id int64, title, subtitle, body, imgURL string) (*domain.Post, error) {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	post.Title = title
	post.Subtitle = subtitle
	post.Body = body
	post.ImgURL = imgURL

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) DeletePost(ctx context.Context, id int64) error {
	return s.postRepo.Delete(ctx, id)
}
