// Package gravatar builds avatar URLs from email addresses.
package gravatar

import (
	"crypto/md5"
	"fmt"
	"strings"
)

// URL returns the gravatar for the given email: size s, pg-rated, with the
// "mystery man" placeholder when the email has no gravatar.
func URL(email string, size int) string {
	hash := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=%d&r=pg&d=mm", hash, size)
}
