package handler

import (
	"errors"
	"regexp"
	"strconv"
)

// validURLPattern повторяет серверную проверку URL, чтобы форма отклонялась
// с теми же правилами, что и на бэкенде.
const validURLPattern = `^((((https?|ftps?|gopher|telnet|nntp)://)|(mailto:|news:))` +
	`(%[0-9A-Fa-f]{2}|[-()_.!~*';/?:@&=+$,A-Za-z0-9])+)([).!';/?:,][[:blank:]])?$`

var validURLRegex = regexp.MustCompile(validURLPattern)

// ErrInvalidURL возвращается, когда URL из формы не проходит проверку.
var ErrInvalidURL = errors.New("invalid URL")

const maxKeyLength = 50

// validateURL проверяет URL из формы создания короткой ссылки.
func validateURL(rawURL string) error {
	if rawURL == "" || !validURLRegex.MatchString(rawURL) {
		return ErrInvalidURL
	}
	return nil
}

// keyPattern строит регулярное выражение допустимого ключа короткой ссылки.
func keyPattern(keyLength int) *regexp.Regexp {
	return regexp.MustCompile(`^[a-zA-Z0-9]{` + strconv.Itoa(keyLength) + `}$`)
}
