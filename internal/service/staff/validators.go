package staff

import "strings"

func isValidText(value string) bool {
	return strings.TrimSpace(value) != ""
}

// isValidEmail проверяет только форму "локальная часть @ домен".
// Почта используется как ключ авторства, а не как адрес рассылки.
func isValidEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1 && !strings.ContainsAny(email, " \t")
}
