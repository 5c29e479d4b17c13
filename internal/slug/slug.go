package slug

import (
	"context"
	"strconv"
	"strings"
	"unicode"
)

const maxLen = 50

// translit maps Ukrainian and Russian cyrillic letters to latin per the
// common transliteration table. Letters missing here are dropped.
var translit = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "h", 'ґ': "g", 'д': "d",
	'е': "e", 'є': "ie", 'ж': "zh", 'з': "z", 'и': "y", 'і': "i",
	'ї': "i", 'й': "i", 'к': "k", 'л': "l", 'м': "m", 'н': "n",
	'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
	'ф': "f", 'х': "kh", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'щ': "shch",
	'ь': "", 'ю': "iu", 'я': "ia",
	'ё': "e", 'ъ': "", 'ы': "y", 'э': "e",
}

// Make builds a URL slug from a title: cyrillic transliterated, everything
// else lowercased, runs of non-alphanumerics collapsed to single hyphens.
// Titles with no usable characters slugify to "item".
func Make(title string) string {
	var b strings.Builder

	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.Is(unicode.Cyrillic, r):
			if lat, ok := translit[r]; ok {
				b.WriteString(lat)
			}
		default:
			b.WriteByte('-')
		}
	}

	s := b.String()
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	s = strings.Trim(s, "-")

	if len(s) > maxLen {
		s = strings.Trim(s[:maxLen], "-")
	}
	if s == "" {
		return "item"
	}
	return s
}

// ExistsFunc reports whether a candidate slug is already taken.
type ExistsFunc func(ctx context.Context, slug string) (bool, error)

// Unique disambiguates a base slug with a numeric suffix until it is free.
func Unique(ctx context.Context, base string, exists ExistsFunc) (string, error) {
	candidate := base
	for n := 1; ; n++ {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = base + "-" + strconv.Itoa(n)
	}
}
