package constants

import "testing"

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		in   string
		want DocumentType
		ok   bool
	}{
		{"NID", NID, true},
		{"nid", NID, true},
		{" nid ", NID, true},
		{"national id", NID, true},
		{"NATIONAL-ID", NID, true},
		{"nid card", NID, true},
		{"BO_ACCOUNT", BOAccount, true},
		{"bo", BOAccount, true},
		{"BO ID", BOAccount, true},
		{"bo a.c", BOAccount, true},
		{"TIN", TIN, true},
		{"e-tin", TIN, true},
		{"eTIN", TIN, true},
		{"PASSPORT", DocumentType("PASSPORT"), false},
		{"", DocumentType(""), false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Canonicalize(tt.in)
			if got != tt.want || ok != tt.ok {
				t.Fatalf("Canonicalize(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}

	t.Run("unknown input preserved verbatim", func(t *testing.T) {
		got, ok := Canonicalize("Driving Licence")
		if ok || got != DocumentType("Driving Licence") {
			t.Fatalf("got (%q, %v)", got, ok)
		}
	})
}

func TestDocumentTypesCopy(t *testing.T) {
	types := DocumentTypes()
	if len(types) != 3 {
		t.Fatalf("got %d types", len(types))
	}
	types[0] = DocumentType("MUTATED")
	if DocumentTypes()[0] != NID {
		t.Fatal("DocumentTypes returned internal slice")
	}
}

func TestNormalizeExt(t *testing.T) {
	for in, want := range map[string]string{".TXT": "txt", "txt": "txt", ".ocr": "ocr", "": ""} {
		if got := NormalizeExt(in); got != want {
			t.Errorf("NormalizeExt(%q) = %q, want %q", in, got, want)
		}
	}
}
