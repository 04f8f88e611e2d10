package slugify

import (
	"strings"
	"testing"
)

func TestMake(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Ahmet Yılmaz", "ahmet-yilmaz"},
		{"Çiğdem Öztürk", "cigdem-ozturk"},
		{"  Jane   Doe  ", "jane-doe"},
		{"Gül & Can (Düğün)", "gul-can-dugun"},
		{"---", ""},
		{"", ""},
		{"Masa 12", "masa-12"},
	}
	for _, c := range cases {
		if got := Make(c.in); got != c.want {
			t.Errorf("Make(%q) = %q, beklenen %q", c.in, got, c.want)
		}
	}
}

func TestMakeUnique(t *testing.T) {
	slug := MakeUnique("Ahmet Yılmaz")
	if !strings.HasPrefix(slug, "ahmet-yilmaz-") {
		t.Fatalf("MakeUnique öneki hatalı: %q", slug)
	}
	if suffix := strings.TrimPrefix(slug, "ahmet-yilmaz-"); suffix == "" {
		t.Fatal("MakeUnique zaman damgası eklemedi")
	}

	// Boş girdi bile benzersiz bir değer üretmeli.
	if MakeUnique("") == "" {
		t.Fatal("MakeUnique boş girdi için boş döndü")
	}
}
