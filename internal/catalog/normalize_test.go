package catalog

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "hyphenated with connector", in: "Couro-de-Jacaré", want: "couro jacare"},
		{name: "plain", in: "couro jacare", want: "couro jacare"},
		{name: "cedilla and tilde", in: "Algodão Açaí", want: "algodao acai"},
		{name: "connector inside word kept", in: "Cadeado Derby", want: "cadeado derby"},
		{name: "upper case connector", in: "Couro DE Tilápia", want: "couro tilapia"},
		{name: "whitespace runs", in: "  Couro \t Bovino\n ", want: "couro bovino"},
		{name: "only connector", in: "de", want: ""},
		{name: "non decomposing letters", in: "Straße Æther", want: "strasse aether"},
		{name: "nbsp", in: "Jeans\u00a0Azul", want: "jeans azul"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in); got != tc.want {
				t.Fatalf("Normalize(%q)=%q want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Couro-de-Jacaré", "de-de-de", "Pele de  Pirarucu", "ÇÃO-ão", "a - b", "de_de", "Lã de Ovelha", "x-de", "",
	}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Fatalf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestNormalizeSpellingsShareKey(t *testing.T) {
	if Normalize("Couro-de-Jacaré") != Normalize("couro jacare") {
		t.Fatalf("%q != %q", Normalize("Couro-de-Jacaré"), Normalize("couro jacare"))
	}
}
