package message

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		lead byte
		want ColdCode
	}{
		{'-', ColdCtB64},  // 0x2D
		{'_', ColdOpB64},  // 0x5F
		{'{', ColdJSON},   // 0x7B
		{0x84, ColdMGPK1}, // fixmap
		{0xA4, ColdCBOR},  // CBOR map
		{0xDE, ColdMGPK2}, // map16
		{0xF8, ColdCtOpB2},
		{0xE0, ColdCtOpB2},
	}
	for _, tc := range cases {
		got, err := Classify([]byte{tc.lead, 0x00})
		if err != nil {
			t.Fatalf("Classify(0x%02x): %v", tc.lead, err)
		}
		if got != tc.want {
			t.Fatalf("Classify(0x%02x) = %s, want %s", tc.lead, got, tc.want)
		}
	}
}

func TestClassifyRejects(t *testing.T) {
	_, err := Classify(nil)
	if err == nil || !IsKind(err, KindClassification) {
		t.Fatalf("expected Classification kind for empty stream, got %v", err)
	}
	if RuleID(err) != "CESR-COLD-001" {
		t.Fatalf("rule %s", RuleID(err))
	}
	_, err = Classify([]byte{0x00, 0x01})
	if err == nil || !IsKind(err, KindClassification) {
		t.Fatalf("expected Classification kind for free tritet, got %v", err)
	}
	if RuleID(err) != "CESR-COLD-002" {
		t.Fatalf("rule %s", RuleID(err))
	}
	_, err = Classify([]byte{0x1F})
	if err == nil {
		t.Fatalf("0x1F is in the free tritet")
	}
}
