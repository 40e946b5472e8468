package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/donaldgifford/canvas-classifier/pkg/classify"
	domain "github.com/donaldgifford/canvas-classifier/pkg/types"
)

func TestResolveType(t *testing.T) {
	t.Parallel()

	cat := defaultCatalog(t)

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "panel keyword", text: "birch panel 22.7x15.8 canvas", want: "판넬"},
		{name: "board fabric overrides panel", text: "canvas panel cotton 280gsm", want: "캔버스보드"},
		{name: "board without panel", text: "canvas cotton 280gsm", want: "캔버스보드"},
		{name: "frame beats black", text: "frame canvas black", want: "프레임 캔버스"},
		{name: "linen beats black", text: "black linen canvas", want: "아사 캔버스"},
		{name: "panel size keyword", text: "canvas 30x30", want: "판넬"},
		{name: "default label", text: "plain canvas", want: "일반(파랑)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, classify.ResolveType(tt.text, cat.TypeRules, cat.DefaultTypeLabel))
		})
	}
}

func TestResolveType_RuleOrderIsPriority(t *testing.T) {
	t.Parallel()

	rules := []domain.TypeRule{
		{Label: "first", Keywords: []string{"alpha"}},
		{Label: "second", Keywords: []string{"beta"}},
	}

	assert.Equal(t, "first", classify.ResolveType("beta alpha", rules, "none"))
	assert.Equal(t, "second", classify.ResolveType("beta", rules, "none"))
	assert.Equal(t, "none", classify.ResolveType("gamma", rules, "none"))

	reversed := []domain.TypeRule{rules[1], rules[0]}
	assert.Equal(t, "second", classify.ResolveType("beta alpha", reversed, "none"))
}
