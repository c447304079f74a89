package domain

import "time"

// PostDateLayout is the display form a post's creation date is stored in,
// e.g. "January 05, 2024". The date is fixed at creation and never updated.
const PostDateLayout = "January 02, 2006"

type Post struct {
	ID         int64  `db:"id"`
	Title      string `db:"title"`
	Subtitle   string `db:"subtitle"`
	Body       string `db:"body"`
	ImgURL     string `db:"img_url"`
	AuthorID   int64  `db:"author_id"`
	AuthorName string `db:"author_name"` // denormalized; the user store is a separate database
	Date       string `db:"date"`
}

func NewPost(title, subtitle, body, imgURL string, author *User, now time.Time) *Post {
	return &Post{
		Title:      title,
		Subtitle:   subtitle,
		Body:       body,
		ImgURL:     imgURL,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		Date:       now.Format(PostDateLayout),
	}
}
