package bigearthnet

import (
	"errors"
	"testing"
)

func TestNewVocabularySizes(t *testing.T) {
	for _, n := range []int{19, 43} {
		v, err := NewVocabulary(n)
		if err != nil {
			t.Fatalf("NewVocabulary(%d): %v", n, err)
		}
		if v.NumClasses() != n {
			t.Errorf("NumClasses() = %d, want %d", v.NumClasses(), n)
		}
		if len(v.Names()) != n {
			t.Errorf("len(Names()) = %d, want %d", len(v.Names()), n)
		}
	}
}

func TestNewVocabularyRejectsOtherCounts(t *testing.T) {
	for _, n := range []int{0, 1, 18, 20, 42, 44} {
		if _, err := NewVocabulary(n); err == nil {
			t.Errorf("NewVocabulary(%d) should fail", n)
		}
	}
}

func TestLabelConverterRange(t *testing.T) {
	for idx43, idx19 := range labelConverter {
		if idx43 < 0 || idx43 > 42 {
			t.Errorf("converter key %d outside [0,42]", idx43)
		}
		if idx19 < 0 || idx19 > 18 {
			t.Errorf("converter value %d outside [0,18]", idx19)
		}
	}
}

func TestConvertLabel(t *testing.T) {
	// Pastures: 43-class index 17 aggregates to 19-class index 4.
	if idx, ok := ConvertLabel(17); !ok || idx != 4 {
		t.Errorf("ConvertLabel(17) = %d, %v; want 4, true", idx, ok)
	}
	// Burnt areas (32) has no 19-class equivalent.
	if _, ok := ConvertLabel(32); ok {
		t.Error("ConvertLabel(32) should report no mapping")
	}
}

func TestCanonicalIndex(t *testing.T) {
	v, err := NewVocabulary(19)
	if err != nil {
		t.Fatal(err)
	}

	// Lookups resolve against the 43-class order even in 19-class mode.
	idx, err := v.CanonicalIndex("Pastures")
	if err != nil {
		t.Fatalf("CanonicalIndex: %v", err)
	}
	if idx != 17 {
		t.Errorf("CanonicalIndex(Pastures) = %d, want 17", idx)
	}

	if _, err := v.CanonicalIndex("Lava fields"); !errors.Is(err, ErrUnknownLabel) {
		t.Errorf("unknown name error = %v, want ErrUnknownLabel", err)
	}
}

func TestWithOtherClassIdempotent(t *testing.T) {
	base, err := NewVocabulary(19)
	if err != nil {
		t.Fatal(err)
	}

	once := base.WithOtherClass()
	twice := once.WithOtherClass()

	if base.NumClasses() != 19 {
		t.Errorf("base vocabulary mutated: NumClasses() = %d", base.NumClasses())
	}
	if once.NumClasses() != 20 {
		t.Errorf("NumClasses() after append = %d, want 20", once.NumClasses())
	}
	if twice.NumClasses() != 20 {
		t.Errorf("NumClasses() after double append = %d, want 20", twice.NumClasses())
	}
	names := twice.Names()
	if names[len(names)-1] != OtherClassName {
		t.Errorf("last class = %q, want %q", names[len(names)-1], OtherClassName)
	}
	if names[len(names)-2] == OtherClassName {
		t.Error("catch-all class appended twice")
	}
}

func TestNamesFromVector(t *testing.T) {
	v, err := NewVocabulary(19)
	if err != nil {
		t.Fatal(err)
	}
	vec := make([]int64, 19)
	vec[4] = 1
	vec[18] = 1
	names := v.NamesFromVector(vec)
	if len(names) != 2 || names[0] != "Pastures" || names[1] != "Marine waters" {
		t.Errorf("NamesFromVector = %v", names)
	}
}
