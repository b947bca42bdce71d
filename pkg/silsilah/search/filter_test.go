package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/silsilah-go/pkg/silsilah/models"
	"github.com/ukaji3/silsilah-go/pkg/silsilah/parser"
)

const familyCSV = `Pasangan Awal,Anak,Menantu Pertama,Status Menantu Pertama,Menantu Kedua,Status Menantu Kedua,Status Anak
I 1. Budi & Sari,,,,,,
,1. Ani,Joko,Suami,,,Menikah,cucu1,Cucu2*
,2. Bayu,,,,,Lajang
II 2. Hasan & Dewi,,,,,,
,1. Rudi,Wati,Istri,Nina,Cerai,Menikah,Sekar,Budiman
,2. Lina,,,,,,Ayu
`

func family(t *testing.T) *models.Hierarchy {
	t.Helper()
	h := parser.ParseCSV(familyCSV, parser.DefaultOptions())
	require.Equal(t, 2, h.Len())
	return h
}

func labels(h *models.Hierarchy) map[string][]string {
	out := make(map[string][]string)
	for _, c := range h.Couples {
		out[c.Label] = []string{}
		for _, ch := range c.Children {
			out[c.Label] = append(out[c.Label], ch.Label)
		}
	}
	return out
}

func TestFilterEmptyTerm(t *testing.T) {
	h := family(t)
	assert.Same(t, h, Filter(h, ""))
	assert.Equal(t, h, Filter(h, ""))
}

func TestFilterNilHierarchy(t *testing.T) {
	got := Filter(nil, "ani")
	require.NotNil(t, got)
	assert.True(t, got.Empty())

	assert.True(t, Filter(models.NewHierarchy(), "ani").Empty())
	assert.True(t, Filter(models.NewHierarchy(), "").Empty())
}

func TestFilterCoupleMatchKeepsSubtree(t *testing.T) {
	h := family(t)

	got := Filter(h, "hasan")
	require.Equal(t, 1, got.Len())
	assert.Equal(t, h.Couples[1], got.Couples[0])

	// "Budiman" is a grandchild under Hasan, but "budi" also matches the
	// Budi couple, which must come back whole.
	got = Filter(h, "BUDI")
	require.Equal(t, 2, got.Len())
	assert.Equal(t, h.Couples[0], got.Couples[0])
	assert.Equal(t, []string{"Budiman"}, got.Couples[1].Children[0].Grandchildren)
}

func TestFilterCoupleLabelIsCleaned(t *testing.T) {
	h := family(t)

	// The "II 2." prefix is not part of the matched label.
	got := Filter(h, "II")
	assert.True(t, got.Empty())

	got = Filter(h, "2.")
	assert.True(t, got.Empty())
}

func TestFilterChildMatch(t *testing.T) {
	h := family(t)

	tests := []struct {
		term string
		want map[string][]string
	}{
		{"joko", map[string][]string{"I 1. Budi & Sari": {"1. Ani"}}},
		{"suami", map[string][]string{"I 1. Budi & Sari": {"1. Ani"}}},
		{"lajang", map[string][]string{"I 1. Budi & Sari": {"2. Bayu"}}},
		{"nina", map[string][]string{"II 2. Hasan & Dewi": {"1. Rudi"}}},
		{"cerai", map[string][]string{"II 2. Hasan & Dewi": {"1. Rudi"}}},
		{"menikah", map[string][]string{
			"I 1. Budi & Sari":   {"1. Ani"},
			"II 2. Hasan & Dewi": {"1. Rudi"},
		}},
		{"lin", map[string][]string{"II 2. Hasan & Dewi": {"2. Lina"}}},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			assert.Equal(t, tt.want, labels(Filter(h, tt.term)))
		})
	}
}

func TestFilterChildMatchKeepsGrandchildren(t *testing.T) {
	h := family(t)

	got := Filter(h, "joko")
	require.Equal(t, 1, got.Len())
	assert.Equal(t, h.Couples[0].Children[0], got.Couples[0].Children[0])
}

func TestFilterChildOrdinalNotMatched(t *testing.T) {
	h := family(t)
	assert.True(t, Filter(h, "1.").Empty())
}

func TestFilterGrandchildPruning(t *testing.T) {
	h := family(t)

	got := Filter(h, "cucu")
	require.Equal(t, 1, got.Len())
	ani := got.Couples[0].Children[0]
	assert.Equal(t, []string{"cucu1", "Cucu2*"}, ani.Grandchildren)

	got = Filter(h, "cucu1")
	ani = got.Couples[0].Children[0]
	assert.Equal(t, "1. Ani", ani.Label)
	assert.Equal(t, []string{"cucu1"}, ani.Grandchildren)
	assert.Equal(t, h.Couples[0].Children[0].Spouses, ani.Spouses)

	// Markers are part of the matched text.
	got = Filter(h, "2*")
	assert.Equal(t, []string{"Cucu2*"}, got.Couples[0].Children[0].Grandchildren)
}

func TestFilterDoesNotMutate(t *testing.T) {
	h := family(t)
	before := parser.ParseCSV(familyCSV, parser.DefaultOptions())

	Filter(h, "cucu1")
	Filter(h, "sekar")
	Filter(h, "hasan")

	assert.Equal(t, before, h)
}

func TestFilterNoMatch(t *testing.T) {
	assert.True(t, Filter(family(t), "zzz").Empty())
}

func TestFilterScenario(t *testing.T) {
	h := parser.ParseCSV("Pasangan Awal,Anak,Menantu Pertama,Status Menantu Pertama,Status Anak\n"+
		"1. Budi & Sari,,,,\n"+
		",1. Ani,Joko,Suami,Menikah,cucu1,cucu2", parser.DefaultOptions())

	got := Filter(h, "joko")
	assert.Equal(t, h.Couples[0].Children, got.Couples[0].Children)

	got = Filter(h, "cucu1")
	require.Len(t, got.Couples[0].Children, 1)
	assert.Equal(t, []string{"cucu1"}, got.Couples[0].Children[0].Grandchildren)
}

func TestExpanded(t *testing.T) {
	h := family(t)
	ani := h.Couples[0].Children[0]

	assert.False(t, Expanded(ani, ""))
	assert.True(t, Expanded(ani, "CUCU2"))
	assert.False(t, Expanded(ani, "joko"))
}
