package review

import (
	"strings"
	"unicode/utf8"
)

const (
	MaxCommentLength      = 1000
	MaxReviewerNameLength = 150
)

type Rating struct {
	value int
}

func NewRating(v int) (Rating, error) {
	if v < 1 || v > 5 {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: v}, nil
}

func (r Rating) Value() int { return r.value }

// Comment may be blank.
type Comment struct {
	text string
}

func NewComment(s string) (Comment, error) {
	t := strings.TrimSpace(s)
	if utf8.RuneCountInString(t) > MaxCommentLength {
		return Comment{}, ErrCommentTooLong
	}
	return Comment{text: t}, nil
}

func (c Comment) String() string { return c.text }

type ReviewerName struct {
	value string
}

func NewReviewerName(s string) (ReviewerName, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return ReviewerName{}, ErrReviewerNameRequired
	}
	if utf8.RuneCountInString(t) > MaxReviewerNameLength {
		return ReviewerName{}, ErrReviewerNameTooLong
	}
	return ReviewerName{value: t}, nil
}

func (n ReviewerName) String() string { return n.value }
