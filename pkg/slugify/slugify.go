package slugify

import (
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Türkçe karakterlerin ASCII karşılıkları; URL'de güvenli slug için.
var turkishReplacer = strings.NewReplacer(
	"ç", "c", "ğ", "g", "ı", "i", "ö", "o", "ş", "s", "ü", "u",
	"Ç", "c", "Ğ", "g", "İ", "i", "I", "i", "Ö", "o", "Ş", "s", "Ü", "u",
)

// Make verilen metni URL güvenli bir slug'a çevirir.
// Harf/rakam dışındaki her şey tek tire olur, baştaki/sondaki tireler atılır.
func Make(s string) string {
	s = turkishReplacer.Replace(strings.TrimSpace(s))
	s = strings.ToLower(s)

	var b strings.Builder
	lastDash := true // Baştaki tireleri engelle
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) && r < 128, unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// MakeUnique slug'ın sonuna base36 zaman damgası ekler.
// Aynı isimli iki davetli için bile çakışmayan slug üretir; yeniden
// sorgulamaya gerek kalmaz.
func MakeUnique(s string) string {
	base := Make(s)
	suffix := strconv.FormatInt(time.Now().UnixNano(), 36)
	if base == "" {
		return suffix
	}
	return base + "-" + suffix
}
