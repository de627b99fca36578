package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMutualCount(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"case and whitespace", "Cooking, Travel", "travel, COOKING, Reading", 2},
		{"empty left", "", "Anything", 0},
		{"both empty", "", "", 0},
		{"only separators", " , ,, ", "hiking", 0},
		{"duplicates count once", "hiking, Hiking, HIKING ", "hiking", 1},
		{"no overlap", "chess", "yoga, surfing", 0},
		{"inner spaces kept", "board games", "boardgames, board games", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MutualCount(tt.a, tt.b))
			assert.Equal(t, tt.want, MutualCount(tt.b, tt.a))
		})
	}
}

func TestInterestSet(t *testing.T) {
	set := InterestSet(" Music ,music,  Art,,")
	assert.Equal(t, map[string]struct{}{"music": {}, "art": {}}, set)
	assert.Empty(t, InterestSet(""))
}

func TestSharedInterests_Sorted(t *testing.T) {
	assert.Equal(t, []string{"art", "cooking", "travel"},
		SharedInterests("Travel, Art, Cooking, Chess", "cooking,travel,art,yoga"))
	assert.Empty(t, SharedInterests("a", "b"))
}
