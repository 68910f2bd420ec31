package costing

import (
	"Cost-Calculator/domain"
	"Cost-Calculator/pkg/numeric"
	"sort"
)

// defaultCap applies when a group's maxSelect or an option's max_qty is unset.
const defaultCap = 99

// OptionsByGroup returns the enabled options of a group in catalog order.
func OptionsByGroup(groupID string, options []domain.Option) []domain.Option {
	var out []domain.Option
	for _, o := range options {
		if o.GroupID == groupID && o.Enabled {
			out = append(out, o)
		}
	}
	return out
}

// VisibleOptions filters options down to the ones offered on menuID. An option
// without any mapping row is offered on every menu.
func VisibleOptions(menuID string, options []domain.Option, mappings []domain.OptionMenuMap) []domain.Option {
	if len(mappings) == 0 {
		return options
	}

	restricted := make(map[string]bool)
	allowed := make(map[string]bool)
	for _, m := range mappings {
		restricted[m.OptionID] = true
		if m.MenuID == menuID {
			allowed[m.OptionID] = true
		}
	}

	out := make([]domain.Option, 0, len(options))
	for _, o := range options {
		if !restricted[o.ID] || allowed[o.ID] {
			out = append(out, o)
		}
	}
	return out
}

// EnforceLimits returns a new checked set in which every check_limit group
// holds at most maxSelect checked options. Options are kept in catalog order
// and the surplus is dropped.
func EnforceLimits(checked map[string]bool, options []domain.Option, groups []domain.OptionGroup) map[string]bool {
	out := make(map[string]bool, len(checked))
	for id, on := range checked {
		if on {
			out[id] = true
		}
	}

	for _, g := range groups {
		if g.Kind != domain.GroupKindCheckLimit {
			continue
		}
		limit := g.MaxSelect
		if limit <= 0 {
			limit = defaultCap
		}

		kept := 0
		seen := make(map[string]bool)
		for _, o := range options {
			if !o.Enabled || o.GroupID != g.ID || o.Type != domain.OptionTypeCheck || !out[o.ID] || seen[o.ID] {
				continue
			}
			seen[o.ID] = true
			if kept < limit {
				kept++
				continue
			}
			delete(out, o.ID)
		}
	}
	return out
}

// ResolveLines materialises the (option, qty) lines in effect for state.
// Each option is read only from the map matching its declared type: radio
// options from Radio, check options from Checked, check_qty options from Qty.
func ResolveLines(state domain.CalcState, options []domain.Option, groups []domain.OptionGroup) []domain.OptionLine {
	enabled := make(map[string]domain.Option, len(options))
	for _, o := range options {
		if !o.Enabled {
			continue
		}
		if _, ok := enabled[o.ID]; !ok {
			enabled[o.ID] = o
		}
	}

	lines := make([]domain.OptionLine, 0)

	groupKeys := make([]string, 0, len(state.Radio))
	for gid := range state.Radio {
		groupKeys = append(groupKeys, gid)
	}
	sort.Strings(groupKeys)
	for _, gid := range groupKeys {
		opt, ok := enabled[state.Radio[gid]]
		if !ok || opt.Type != domain.OptionTypeRadio {
			continue
		}
		lines = append(lines, domain.OptionLine{Option: opt, Qty: 1})
	}

	checked := EnforceLimits(state.Checked, options, groups)
	emitted := make(map[string]bool)
	for _, o := range options {
		if emitted[o.ID] || !checked[o.ID] {
			continue
		}
		opt, ok := enabled[o.ID]
		if !ok || opt.Type != domain.OptionTypeCheck {
			continue
		}
		emitted[o.ID] = true
		lines = append(lines, domain.OptionLine{Option: opt, Qty: 1})
	}

	emitted = make(map[string]bool)
	for _, o := range options {
		if emitted[o.ID] {
			continue
		}
		q, ok := state.Qty[o.ID]
		if !ok {
			continue
		}
		opt, ok := enabled[o.ID]
		if !ok || opt.Type != domain.OptionTypeCheckQty {
			continue
		}
		emitted[o.ID] = true
		qty := ClampQty(q, opt)
		if qty > 0 {
			lines = append(lines, domain.OptionLine{Option: opt, Qty: qty})
		}
	}

	return lines
}

// ClampQty bounds a requested quantity into [0, max_qty].
func ClampQty(q int, opt domain.Option) int {
	limit := opt.MaxQty
	if limit <= 0 {
		limit = defaultCap
	}
	return int(numeric.Clamp(float64(q), 0, float64(limit)))
}

// DefaultRadio fills empty or stale radio slots with the first enabled radio
// option of the group. The input map is left untouched.
func DefaultRadio(radio map[string]string, options []domain.Option, groups []domain.OptionGroup) map[string]string {
	out := make(map[string]string, len(radio))
	for gid, id := range radio {
		out[gid] = id
	}

	for _, g := range groups {
		if g.Kind != domain.GroupKindRadio {
			continue
		}
		var candidates []domain.Option
		for _, o := range OptionsByGroup(g.ID, options) {
			if o.Type == domain.OptionTypeRadio {
				candidates = append(candidates, o)
			}
		}
		if len(candidates) == 0 {
			continue
		}

		cur := out[g.ID]
		valid := false
		for _, o := range candidates {
			if o.ID == cur {
				valid = true
				break
			}
		}
		if cur == "" || !valid {
			out[g.ID] = candidates[0].ID
		}
	}
	return out
}
