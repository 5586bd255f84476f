package bigearthnet

import (
	"errors"
	"fmt"
)

// ErrUnknownLabel is returned when a label file names a class that is not in
// the 43-class CORINE vocabulary. This signals a corrupt or mismatched label
// file and is never recovered from.
var ErrUnknownLabel = errors.New("label not in 43-class vocabulary")

// OtherClassName is the catch-all class appended when Config.OtherFeatures
// is set.
const OtherClassName = "Other features"

// classNames43 is the CORINE Land Cover 2018 vocabulary in its standardized
// order. Index positions are the canonical class indices; the order must not
// change independently of labelConverter.
var classNames43 = []string{
	"Continuous urban fabric",
	"Discontinuous urban fabric",
	"Industrial or commercial units",
	"Road and rail networks and associated land",
	"Port areas",
	"Airports",
	"Mineral extraction sites",
	"Dump sites",
	"Construction sites",
	"Green urban areas",
	"Sport and leisure facilities",
	"Non-irrigated arable land",
	"Permanently irrigated land",
	"Rice fields",
	"Vineyards",
	"Fruit trees and berry plantations",
	"Olive groves",
	"Pastures",
	"Annual crops associated with permanent crops",
	"Complex cultivation patterns",
	"Land principally occupied by agriculture, with significant areas of natural vegetation",
	"Agro-forestry areas",
	"Broad-leaved forest",
	"Coniferous forest",
	"Mixed forest",
	"Natural grassland",
	"Moors and heathland",
	"Sclerophyllous vegetation",
	"Transitional woodland/shrub",
	"Beaches, dunes, sands",
	"Bare rock",
	"Sparsely vegetated areas",
	"Burnt areas",
	"Inland marshes",
	"Peatbogs",
	"Salt marshes",
	"Salines",
	"Intertidal flats",
	"Water courses",
	"Water bodies",
	"Coastal lagoons",
	"Estuaries",
	"Sea and ocean",
}

// classNames19 is the aggregated 19-class vocabulary.
var classNames19 = []string{
	"Urban fabric",
	"Industrial or commercial units",
	"Arable land",
	"Permanent crops",
	"Pastures",
	"Complex cultivation patterns",
	"Land principally occupied by agriculture, with significant areas of natural vegetation",
	"Agro-forestry areas",
	"Broad-leaved forest",
	"Coniferous forest",
	"Mixed forest",
	"Natural grassland and sparsely vegetated areas",
	"Moors, heathland and sclerophyllous vegetation",
	"Transitional woodland, shrub",
	"Beaches, dunes, sands",
	"Inland wetlands",
	"Coastal wetlands",
	"Inland waters",
	"Marine waters",
}

// labelConverter maps canonical 43-class indices to 19-class indices. The
// mapping is many-to-one and partial: indices absent from the table (for
// example 30 "Bare rock" or 32 "Burnt areas") have no 19-class equivalent
// and are dropped during aggregation.
var labelConverter = map[int]int{
	0:  0,
	1:  0,
	2:  1,
	11: 2,
	12: 2,
	13: 2,
	14: 3,
	15: 3,
	16: 3,
	18: 3,
	17: 4,
	19: 5,
	20: 6,
	21: 7,
	22: 8,
	23: 9,
	24: 10,
	25: 11,
	31: 11,
	26: 12,
	27: 12,
	28: 13,
	29: 14,
	33: 15,
	34: 15,
	35: 16,
	36: 16,
	38: 17,
	39: 17,
	40: 18,
	41: 18,
	42: 18,
}

// ConvertLabel maps a canonical 43-class index to its 19-class index. The
// second return is false when the index has no 19-class equivalent; callers
// in 19-class mode drop such labels.
func ConvertLabel(idx43 int) (int, bool) {
	idx19, ok := labelConverter[idx43]
	return idx19, ok
}

// Vocabulary is an immutable view of one of the two class vocabularies.
// The name-to-index lookup is always derived from the 43-class order, since
// label files name classes using the fine-grained vocabulary regardless of
// the active class count.
type Vocabulary struct {
	names     []string
	canonical map[string]int
	hasOther  bool
}

// NewVocabulary builds a vocabulary for the requested class count. Only 19
// and 43 are legal; anything else is a configuration error.
func NewVocabulary(numClasses int) (*Vocabulary, error) {
	var src []string
	switch numClasses {
	case 19:
		src = classNames19
	case 43:
		src = classNames43
	default:
		return nil, fmt.Errorf("num_classes must be 19 or 43, got %d", numClasses)
	}

	canonical := make(map[string]int, len(classNames43))
	for i, name := range classNames43 {
		canonical[name] = i
	}

	names := make([]string, len(src))
	copy(names, src)

	return &Vocabulary{names: names, canonical: canonical}, nil
}

// WithOtherClass returns a vocabulary with the "Other features" catch-all
// appended. It is idempotent: calling it on a vocabulary that already has
// the class returns the receiver unchanged. The receiver is never mutated,
// so dataset instances sharing a base vocabulary cannot affect each other.
func (v *Vocabulary) WithOtherClass() *Vocabulary {
	if v.hasOther {
		return v
	}
	names := make([]string, len(v.names)+1)
	copy(names, v.names)
	names[len(v.names)] = OtherClassName
	return &Vocabulary{names: names, canonical: v.canonical, hasOther: true}
}

// NumClasses returns the active class count, including the optional
// catch-all slot.
func (v *Vocabulary) NumClasses() int {
	return len(v.names)
}

// Names returns a copy of the ordered class names.
func (v *Vocabulary) Names() []string {
	names := make([]string, len(v.names))
	copy(names, v.names)
	return names
}

// CanonicalIndex resolves a class name to its canonical 43-class index.
func (v *Vocabulary) CanonicalIndex(name string) (int, error) {
	idx, ok := v.canonical[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLabel, name)
	}
	return idx, nil
}

// NamesFromVector returns the class names whose slots are set in a multi-hot
// label vector over this vocabulary.
func (v *Vocabulary) NamesFromVector(vec []int64) []string {
	var names []string
	for i, set := range vec {
		if set != 0 && i < len(v.names) {
			names = append(names, v.names[i])
		}
	}
	return names
}
