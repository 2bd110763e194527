// Package postgres is implementation of storage interface.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/mosaicnet/mosaic/internal/entities"
	"github.com/mosaicnet/mosaic/internal/storage"
)

var log = logrus.WithField("layer", "storage").WithField("package", "postgres")

const foreignKeyViolation = "23503"
const uniqueViolation = "23505"

// ErrAlreadyExists returned when a document with the same id is already stored.
var ErrAlreadyExists = errors.New("already exists")

type pg struct {
	ext sqlx.ExtContext
}

type userDTO struct {
	ID         string         `db:"id"`
	Name       string         `db:"name"`
	Username   string         `db:"username"`
	ProfilePic string         `db:"profile_pic"`
	Following  pq.StringArray `db:"following"`
	Followers  pq.StringArray `db:"followers"`
	CreatedAt  time.Time      `db:"created_at"`
}

type postDTO struct {
	ID         string         `db:"id"`
	AuthorID   string         `db:"author_id"`
	AuthorName string         `db:"author_name"`
	AuthorPic  string         `db:"author_pic"`
	Title      string         `db:"title"`
	Media      []byte         `db:"media"`
	Likes      pq.StringArray `db:"likes"`
	CreatedAt  time.Time      `db:"created_at"`
}

func (s pg) CreateUser(ctx context.Context, u *entities.User) error {
	if _, err := s.ext.ExecContext(ctx,
		`
			INSERT INTO "user"(id, name, username, profile_pic, following, followers, created_at)
			VALUES($1, $2, $3, $4, $5, $6, $7)
		`,
		u.ID, u.Name, u.Username, u.ProfilePic,
		pq.Array(u.Following), pq.Array(u.Followers), u.CreatedAt.UTC(),
	); err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == uniqueViolation {
			return ErrAlreadyExists
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetUser(ctx context.Context, id string) (*entities.User, error) {
	var u userDTO

	if err := sqlx.GetContext(ctx, s.ext, &u, `
			SELECT id, name, username, profile_pic, following, followers, created_at
			FROM "user"
			WHERE id = $1
		`, id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toUser(&u), nil
}

// UpdateFollowing adds or removes targetID in the user's following set. The
// write is idempotent: adding a member twice or removing an absent one keeps
// the set unchanged.
func (s pg) UpdateFollowing(ctx context.Context, userID string, op storage.SetOp, targetID string) error {
	return s.updateMembership(ctx, "following", userID, op, targetID)
}

// UpdateFollowers adds or removes targetID in the user's followers set.
func (s pg) UpdateFollowers(ctx context.Context, userID string, op storage.SetOp, targetID string) error {
	return s.updateMembership(ctx, "followers", userID, op, targetID)
}

func (s pg) updateMembership(ctx context.Context, column, userID string, op storage.SetOp, member string) error {
	var expr string
	switch op {
	case storage.AddSetOp:
		// remove-then-append keeps the column a set
		expr = fmt.Sprintf(`%[1]s = array_append(array_remove(%[1]s, $2), $2)`, column)
	case storage.RemoveSetOp:
		expr = fmt.Sprintf(`%[1]s = array_remove(%[1]s, $2)`, column)
	default:
		return fmt.Errorf("unknown set op %q", op)
	}

	res, err := s.ext.ExecContext(ctx,
		fmt.Sprintf(`UPDATE "user" SET %s WHERE id = $1`, expr),
		userID, member,
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) CreatePost(ctx context.Context, p *storage.CreatePostParams) error {
	media, err := json.Marshal(p.Media)
	if err != nil {
		return fmt.Errorf("failed to marshal media: %w", err)
	}

	if _, err := s.ext.ExecContext(ctx,
		`
			INSERT INTO post(id, author_id, author_name, author_pic, title, media, likes, created_at)
			VALUES($1, $2, $3, $4, $5, $6, '{}', $7)
		`,
		p.ID, p.AuthorID, p.AuthorName, p.AuthorPic, p.Title, media, p.CreatedAt.UTC(),
	); err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == foreignKeyViolation {
			return storage.ErrNotFound
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetPost(ctx context.Context, id string) (*entities.Post, error) {
	var p postDTO

	if err := sqlx.GetContext(ctx, s.ext, &p, `
			SELECT id, author_id, author_name, author_pic, title, media, likes, created_at
			FROM post
			WHERE id = $1
		`, id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toPost(&p)
}

func (s pg) QueryPosts(ctx context.Context, params *storage.QueryPostsParams) ([]*entities.Post, error) {
	if params.AuthorIn != nil && len(params.AuthorIn) == 0 {
		return nil, storage.ErrEmptyAuthorFilter
	}

	q := `
		SELECT id, author_id, author_name, author_pic, title, media, likes, created_at
		FROM post WHERE TRUE
	`
	var args []interface{}

	if params.AuthorIn != nil {
		in, inArgs, err := sqlx.In(` AND author_id IN (?)`, params.AuthorIn)
		if err != nil {
			return nil, fmt.Errorf("failed to construct IN clause: %w", err)
		}
		q += in
		args = append(args, inArgs...)
	}

	if params.ExcludeAuthor != nil {
		q += ` AND author_id <> ?`
		args = append(args, *params.ExcludeAuthor)
	}

	q += ` ORDER BY created_at DESC, id`

	if params.Limit > 0 {
		q += ` LIMIT ?`
		args = append(args, params.Limit)
	}

	var dto []*postDTO
	if err := sqlx.SelectContext(ctx, s.ext, &dto, s.ext.Rebind(q), args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Post, len(dto))
	for i, v := range dto {
		p, err := toPost(v)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}

	return out, nil
}

// UpdatePostLikes adds or removes userID in the post's like-set. Idempotent
// the same way the follow-set writes are.
func (s pg) UpdatePostLikes(ctx context.Context, postID string, op storage.SetOp, userID string) error {
	var expr string
	switch op {
	case storage.AddSetOp:
		expr = `likes = array_append(array_remove(likes, $2), $2)`
	case storage.RemoveSetOp:
		expr = `likes = array_remove(likes, $2)`
	default:
		return fmt.Errorf("unknown set op %q", op)
	}

	res, err := s.ext.ExecContext(ctx,
		fmt.Sprintf(`UPDATE post SET %s WHERE id = $1`, expr),
		postID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) Ping(ctx context.Context) error {
	db, ok := s.ext.(*sqlx.DB)
	if !ok {
		return nil
	}

	return db.PingContext(ctx)
}

// New creates new instance of pg.
func New(db *sql.DB) storage.Storage {
	return pg{
		ext: sqlx.NewDb(db, "postgres"),
	}
}

func toUser(u *userDTO) *entities.User {
	return &entities.User{
		ID:         u.ID,
		Name:       u.Name,
		Username:   u.Username,
		ProfilePic: u.ProfilePic,
		Following:  u.Following,
		Followers:  u.Followers,
		CreatedAt:  u.CreatedAt,
	}
}

func toPost(p *postDTO) (*entities.Post, error) {
	var media []entities.MediaItem
	if len(p.Media) > 0 {
		if err := json.Unmarshal(p.Media, &media); err != nil {
			return nil, fmt.Errorf("failed to unmarshal media: %w", err)
		}
	}

	return &entities.Post{
		ID:         p.ID,
		AuthorID:   p.AuthorID,
		AuthorName: p.AuthorName,
		AuthorPic:  p.AuthorPic,
		Title:      p.Title,
		Media:      media,
		Likes:      p.Likes,
		CreatedAt:  p.CreatedAt,
	}, nil
}
