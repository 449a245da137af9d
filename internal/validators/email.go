package validators

import "strings"

// IsEmailFormatValid is a syntactic sanity check for the optional email on
// booking forms. Intentionally loose: local@domain.tld with no spaces.
func IsEmailFormatValid(email string) bool {
	email = strings.TrimSpace(email)

	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	if strings.ContainsAny(email, " \t") {
		return false
	}

	domain := email[at+1:]
	dot := strings.LastIndex(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
