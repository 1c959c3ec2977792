// Package features преобразует список преимуществ пакета в строку для редактирования и обратно.
package features

import "strings"

const separator = ","

// Split разбивает строку, разделённую запятыми, в упорядоченный список.
// Пробелы вокруг элементов обрезаются, пустые элементы отбрасываются.
func Split(s string) []string {
	parts := strings.Split(s, separator)
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			res = append(res, p)
		}
	}
	return res
}

// Join склеивает список в строку для редактирования.
func Join(list []string) string {
	return strings.Join(list, separator+" ")
}

// Normalize применяет к уже готовому списку те же правила, что и Split.
func Normalize(list []string) []string {
	res := make([]string, 0, len(list))
	for _, f := range list {
		if f = strings.TrimSpace(f); f != "" {
			res = append(res, f)
		}
	}
	return res
}
