package commands

import (
	"unicode/utf8"

	"deliverydesk/internal/pkg/errs"
)

// MaxCommentLength bounds delivery comments, counted in characters.
const MaxCommentLength = 500

func validateComment(comment *string) error {
	if comment == nil {
		return nil
	}
	if n := utf8.RuneCountInString(*comment); n > MaxCommentLength {
		return errs.NewValueIsOutOfRangeError("comment length", n, 0, MaxCommentLength)
	}
	return nil
}

func copyComment(comment *string) *string {
	if comment == nil {
		return nil
	}
	c := *comment
	return &c
}
