package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/MKhiriev/go-braintacle/internal/options"
)

func ints(values ...int64) []options.Value {
	out := make([]options.Value, 0, len(values))
	for _, v := range values {
		out = append(out, options.Int(v))
	}
	return out
}

func own(v int64) *options.Value {
	return options.Ptr(options.Int(v))
}

func resolve(class options.Class, global options.Value, groups []options.Value, client *options.Value) (def, eff options.Value) {
	r := rules[class]
	def = r.defaultValue(global, groups)
	eff = r.effectiveValue(global, groups, client, def)
	return def, eff
}

func TestRules_Table(t *testing.T) {
	tests := []struct {
		name    string
		class   options.Class
		global  int64
		groups  []int64
		client  *options.Value
		wantDef int64
		wantEff int64
	}{
		{"inventory global zero wins", options.ClassInventoryInterval, 0, []int64{3}, own(5), 0, 0},
		{"inventory global never wins", options.ClassInventoryInterval, -1, []int64{3}, own(5), -1, -1},
		{"inventory min of groups", options.ClassInventoryInterval, 30, []int64{20, 25}, nil, 20, 20},
		{"inventory min includes client", options.ClassInventoryInterval, 30, []int64{20, 25}, own(10), 20, 10},
		{"inventory client larger than group", options.ClassInventoryInterval, 30, []int64{20}, own(40), 20, 20},
		{"inventory nothing set", options.ClassInventoryInterval, 30, nil, nil, 30, 30},
		{"inventory client only", options.ClassInventoryInterval, 30, nil, own(50), 30, 50},

		{"smallest from groups", options.ClassSmallestGroup, 12, []int64{8, 4}, nil, 4, 4},
		{"smallest client wins", options.ClassSmallestGroup, 12, []int64{8, 4}, own(24), 4, 24},
		{"smallest falls back to global", options.ClassSmallestGroup, 12, nil, nil, 12, 12},

		{"largest from groups", options.ClassLargestGroup, 5, []int64{10, 40}, nil, 40, 40},
		{"largest client wins", options.ClassLargestGroup, 5, []int64{10, 40}, own(1), 40, 1},
		{"largest falls back to global", options.ClassLargestGroup, 5, nil, nil, 5, 5},

		{"disable group ceiling", options.ClassDisableWins, 1, []int64{0}, own(1), 0, 0},
		{"disable client opt out", options.ClassDisableWins, 1, nil, own(0), 1, 0},
		{"disable global ceiling", options.ClassDisableWins, 0, []int64{1}, own(1), 0, 0},
		{"disable enabled everywhere", options.ClassDisableWins, 1, []int64{1, 1}, own(1), 1, 1},
		{"disable inherits", options.ClassDisableWins, 1, []int64{1}, nil, 1, 1},

		{"simple client wins", options.ClassSimple, 600, []int64{1}, own(60), 600, 60},
		{"simple global", options.ClassSimple, 600, []int64{1}, nil, 600, 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, eff := resolve(tt.class, options.Int(tt.global), ints(tt.groups...), tt.client)
			assert.Equal(t, options.Int(tt.wantDef), def)
			assert.Equal(t, options.Int(tt.wantEff), eff)
		})
	}
}

func TestRules_SimpleStrings(t *testing.T) {
	_, eff := resolve(options.ClassSimple, options.Text("global"), nil, options.Ptr(options.Text("mine")))
	assert.Equal(t, options.Text("mine"), eff)

	_, eff = resolve(options.ClassSimple, options.Text("global"), nil, nil)
	assert.Equal(t, options.Text("global"), eff)
}

func TestRules_EveryClassHasRule(t *testing.T) {
	for _, opt := range options.Builtin().All() {
		_, err := ruleFor(opt.Class)
		assert.NoError(t, err, opt.Name)
	}
}

// ── properties ──────────────────────────────────────────────────────────────

func drawGroups(t *rapid.T) []options.Value {
	return ints(rapid.SliceOfN(rapid.Int64Range(-1, 100), 0, 5).Draw(t, "groups")...)
}

func drawClient(t *rapid.T) *options.Value {
	if rapid.Bool().Draw(t, "clientSet") {
		return own(rapid.Int64Range(-1, 100).Draw(t, "client"))
	}
	return nil
}

func TestRules_SimpleClientAlwaysWins(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		global := options.Int(rapid.Int64Range(-10, 10).Draw(t, "global"))
		client := drawClient(t)

		_, eff := resolve(options.ClassSimple, global, drawGroups(t), client)

		if client != nil {
			assert.Equal(t, *client, eff)
		} else {
			assert.Equal(t, global, eff)
		}
	})
}

func TestRules_InventoryNonPositiveGlobalWins(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		global := options.Int(rapid.Int64Range(-1, 0).Draw(t, "global"))

		def, eff := resolve(options.ClassInventoryInterval, global, drawGroups(t), drawClient(t))

		assert.Equal(t, global, def)
		assert.Equal(t, global, eff)
	})
}

func TestRules_InventoryIsMinimum(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		global := options.Int(rapid.Int64Range(1, 100).Draw(t, "global"))
		groups := drawGroups(t)
		client := drawClient(t)

		_, eff := resolve(options.ClassInventoryInterval, global, groups, client)

		candidates := append([]options.Value(nil), groups...)
		if client != nil {
			candidates = append(candidates, *client)
		}
		if len(candidates) == 0 {
			assert.Equal(t, global, eff)
			return
		}
		for _, c := range candidates {
			assert.LessOrEqual(t, eff.Int, c.Int)
		}
	})
}

func TestRules_DisabledUpstreamCannotBeLifted(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		global := options.Int(rapid.SampledFrom([]int64{0, 1}).Draw(t, "global"))
		groups := ints(rapid.SliceOfN(rapid.SampledFrom([]int64{0, 1}), 0, 4).Draw(t, "groups")...)
		client := drawClient(t)

		def, eff := resolve(options.ClassDisableWins, global, groups, client)

		if def.IsDisabled() {
			assert.True(t, eff.IsDisabled())
		}
		if client != nil && client.IsDisabled() {
			assert.True(t, eff.IsDisabled())
		}
		if !def.IsDisabled() && (client == nil || !client.IsDisabled()) {
			assert.Equal(t, def, eff)
		}
	})
}

func TestRules_GroupAggregatesIgnoreGlobalWhenGroupsSet(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		class := rapid.SampledFrom([]options.Class{options.ClassSmallestGroup, options.ClassLargestGroup}).Draw(t, "class")
		global := options.Int(rapid.Int64Range(-10, 1000).Draw(t, "global"))
		groups := ints(rapid.SliceOfN(rapid.Int64Range(0, 100), 1, 5).Draw(t, "groups")...)

		def, eff := resolve(class, global, groups, nil)

		want := smallest(groups)
		if class == options.ClassLargestGroup {
			want = largest(groups)
		}
		assert.Equal(t, want, def)
		assert.Equal(t, want, eff)
	})
}
