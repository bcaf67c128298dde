package rating

import (
	"slices"

	"github.com/relictools/relicrater/internal/catalog"
)

// AffectedParts collects the concrete piece names the given sets produce for
// one generic slot. A slot can be reachable through several sets at once when
// a rule spans multiple sets of the same family.
func AffectedParts(setNames []string, slot catalog.Slot) []string {
	var parts []string
	for _, setName := range setNames {
		set, ok := catalog.SetByID(setName)
		if !ok {
			continue
		}
		if part, ok := set.Parts[slot]; ok {
			parts = append(parts, part)
		}
	}
	return parts
}

// ApplyMainStatSelection replaces the valuable main stats for every concrete
// part the rule currently reaches through the given slot. A non-empty
// selection overwrites whatever was there before; an empty selection removes
// the part entries outright, restoring "any main stat accepted".
func ApplyMainStatSelection(rule *Rule, slot catalog.Slot, mainStats []string) {
	parts := AffectedParts(rule.SetNames, slot)

	if len(mainStats) == 0 {
		for _, part := range parts {
			delete(rule.PartNames, part)
		}
		return
	}

	if rule.PartNames == nil {
		rule.PartNames = make(map[string]PartPreference)
	}
	for _, part := range parts {
		rule.PartNames[part] = PartPreference{ValuableMain: append([]string(nil), mainStats...)}
	}
}

// NormalizeRuleForSets applies a set-list edit together with its cascade.
// Preferences can only point at pieces the rule can still reach: an empty set
// list resets the rule to an empty shell, losing an entire slot family clears
// that family's parts, and parts belonging to removed sets are pruned.
// Characters survive every cascade; sub-stats are only cleared by the
// empty-set case.
func NormalizeRuleForSets(rule *Rule, newSetNames []string) {
	rule.SetNames = append([]string(nil), newSetNames...)

	if len(newSetNames) == 0 {
		rule.PartNames = make(map[string]PartPreference)
		rule.SubStats = nil
		return
	}

	hasInner := false
	hasOuter := false
	reachable := make(map[string]bool)
	for _, setName := range newSetNames {
		set, ok := catalog.SetByID(setName)
		if !ok {
			continue
		}
		if set.IsInner {
			hasInner = true
		} else {
			hasOuter = true
		}
		for _, part := range set.Parts {
			reachable[part] = true
		}
	}

	if !hasInner {
		clearSlotFamily(rule, catalog.InnerSlots)
	}
	if !hasOuter {
		clearSlotFamily(rule, catalog.OuterSlots)
	}

	for part := range rule.PartNames {
		if !reachable[part] {
			delete(rule.PartNames, part)
		}
	}
}

func clearSlotFamily(rule *Rule, slots []catalog.Slot) {
	for _, set := range catalog.GetRelicSets() {
		for _, slot := range slots {
			if part, ok := set.Parts[slot]; ok {
				delete(rule.PartNames, part)
			}
		}
	}
}

// RuleMatch pairs a rule with its location in the store.
type RuleMatch struct {
	TemplateID string
	RuleID     string
	Rule       Rule
}

// MatchingRules returns every rule in the store that applies to the given
// relic set, in no particular order.
func MatchingRules(ts TemplateStore, setID string) []RuleMatch {
	var matches []RuleMatch
	for templateID, tpl := range ts {
		for ruleID, rule := range tpl.Rules {
			if slices.Contains(rule.SetNames, setID) {
				matches = append(matches, RuleMatch{TemplateID: templateID, RuleID: ruleID, Rule: rule})
			}
		}
	}
	return matches
}
