package rating

// PartPreference holds the main stats considered valuable for one concrete
// relic piece. A part entry exists only while at least one main stat is
// selected for it; an absent entry means any main stat is accepted.
type PartPreference struct {
	ValuableMain []string `json:"valuableMain"`
}

// Rule bundles what counts as valuable for a group of characters: the relic
// sets it applies to, per-piece main stat preferences and the sub-stats worth
// rolling.
type Rule struct {
	SetNames   []string                  `json:"setNames"`
	PartNames  map[string]PartPreference `json:"partNames"`
	SubStats   []string                  `json:"subStats"`
	Characters []string                  `json:"characters"`
}

// Template is a named collection of rules, the unit of persistence.
type Template struct {
	Name  string          `json:"name"`
	Rules map[string]Rule `json:"rules"`
}

// TemplateStore maps template id to template. It is treated as an immutable
// snapshot: mutations build a new store value instead of editing in place.
type TemplateStore map[string]Template

// Outcome is the caller-facing result of every template mutation. Errors are
// folded into it at the API boundary and never propagate further.
type Outcome struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (r Rule) Clone() Rule {
	c := Rule{
		SetNames:   append([]string(nil), r.SetNames...),
		PartNames:  make(map[string]PartPreference, len(r.PartNames)),
		SubStats:   append([]string(nil), r.SubStats...),
		Characters: append([]string(nil), r.Characters...),
	}
	for part, pref := range r.PartNames {
		c.PartNames[part] = PartPreference{ValuableMain: append([]string(nil), pref.ValuableMain...)}
	}
	return c
}

func (t Template) Clone() Template {
	c := Template{
		Name:  t.Name,
		Rules: make(map[string]Rule, len(t.Rules)),
	}
	for id, rule := range t.Rules {
		c.Rules[id] = rule.Clone()
	}
	return c
}

func (ts TemplateStore) Clone() TemplateStore {
	c := make(TemplateStore, len(ts))
	for id, tpl := range ts {
		c[id] = tpl.Clone()
	}
	return c
}
