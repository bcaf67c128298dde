package rating

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strings"

	"github.com/relictools/relicrater/internal/catalog"
)

// Relics start with up to four sub-stats and gain one upgrade roll every
// three levels up to +15, so a single piece has at most nine roll
// opportunities over its lifetime.
const (
	maxInitialSubStats   = 4
	maxUpgradeRolls      = 5
	maxRollOpportunities = maxInitialSubStats + maxUpgradeRolls
)

// ErrUnresolvableSlot marks a scanned relic whose set/part combination does
// not exist in the catalog. Batch evaluation skips such relics.
var ErrUnresolvableSlot = errors.New("relic slot cannot be resolved against the catalog")

// StatValue is a typed stat reading produced by the scan pipeline.
type StatValue struct {
	Type  string  `json:"type"`
	Value float64 `json:"value"`
}

// SubStatRoll is one rolled sub-stat line, with the number of rolls that
// landed on it so far (the initial roll included).
type SubStatRoll struct {
	Type  string  `json:"type"`
	Value float64 `json:"value"`
	Rolls int     `json:"rolls"`
}

// RelicInstance is a single scanned relic.
type RelicInstance struct {
	SetID    string        `json:"setId"`
	PartID   string        `json:"partId"`
	MainStat StatValue     `json:"mainStat"`
	SubStats []SubStatRoll `json:"subStats"`
}

type SubStatVerdict struct {
	Valuable bool `json:"valuable"`
}

// CharacterBasePartRating is the score range a relic achieves for a group of
// characters sharing identical results. TotalScore is the theoretical
// ceiling; Min/MaxTotalScore bound what the actual roll can still become.
type CharacterBasePartRating struct {
	Characters    []string                  `json:"character"`
	TotalScore    float64                   `json:"totalScore"`
	MinTotalScore float64                   `json:"minTotalScore"`
	MaxTotalScore float64                   `json:"maxTotalScore"`
	ValuableSub   map[string]SubStatVerdict `json:"valuableSub"`
}

// Engine scores relics against template rules. It performs no mutation and
// is safe to share across goroutines.
type Engine struct {
	logger *slog.Logger
}

func NewEngine(logger *slog.Logger) *Engine {
	return &Engine{logger: logger}
}

// Evaluate rates one relic against every rule in the snapshot and returns
// one entry per group of characters with identical score bounds. Ratings
// whose ceiling is zero are suppressed: a rule with no applicable valuable
// sub-stat means "not applicable", not "worst case".
func (e *Engine) Evaluate(ts TemplateStore, relic RelicInstance) ([]CharacterBasePartRating, error) {
	if _, err := catalog.SlotOfPart(relic.SetID, relic.PartID); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnresolvableSlot, err)
	}

	grouped := make(map[string]*CharacterBasePartRating)
	for _, match := range MatchingRules(ts, relic.SetID) {
		rule := match.Rule
		if len(rule.Characters) == 0 {
			continue
		}
		if !mainStatAccepted(rule, relic) {
			continue
		}

		score := scoreAgainstRule(rule, relic)
		if score.TotalScore == 0 {
			continue
		}

		key := groupKey(score)
		if existing, ok := grouped[key]; ok {
			existing.Characters = append(existing.Characters, rule.Characters...)
			continue
		}
		score.Characters = append([]string(nil), rule.Characters...)
		grouped[key] = &score
	}

	ratings := make([]CharacterBasePartRating, 0, len(grouped))
	for _, r := range grouped {
		sort.Strings(r.Characters)
		r.Characters = slices.Compact(r.Characters)
		ratings = append(ratings, *r)
	}
	sort.Slice(ratings, func(i, j int) bool {
		if ratings[i].MaxTotalScore != ratings[j].MaxTotalScore {
			return ratings[i].MaxTotalScore > ratings[j].MaxTotalScore
		}
		return strings.Join(ratings[i].Characters, ",") < strings.Join(ratings[j].Characters, ",")
	})

	return ratings, nil
}

// EvaluateBatch rates many relics, skipping the ones that cannot be resolved
// against the catalog instead of failing the whole batch.
func (e *Engine) EvaluateBatch(ts TemplateStore, relics []RelicInstance) [][]CharacterBasePartRating {
	results := make([][]CharacterBasePartRating, 0, len(relics))
	for _, relic := range relics {
		ratings, err := e.Evaluate(ts, relic)
		if err != nil {
			e.logger.Warn("skipping unresolvable relic",
				slog.String("set", relic.SetID),
				slog.String("part", relic.PartID),
				slog.Any("error", err))
			results = append(results, nil)
			continue
		}
		results = append(results, ratings)
	}
	return results
}

// mainStatAccepted implements the eligibility rule for main stats: an empty
// scan reading always passes, an absent part preference means any main stat
// is accepted, otherwise the main stat must be one of the valuable ones.
func mainStatAccepted(rule Rule, relic RelicInstance) bool {
	if relic.MainStat.Type == "" {
		return true
	}
	pref, ok := rule.PartNames[relic.PartID]
	if !ok {
		return true
	}
	return slices.Contains(pref.ValuableMain, relic.MainStat.Type)
}

func scoreAgainstRule(rule Rule, relic RelicInstance) CharacterBasePartRating {
	valuable := make(map[string]bool, len(rule.SubStats))
	for _, sub := range rule.SubStats {
		valuable[sub] = true
	}

	valuableSub := make(map[string]SubStatVerdict, len(relic.SubStats))
	existingRolls := 0
	ceiling := 0.0
	achieved := 0.0
	for _, sub := range relic.SubStats {
		valuableSub[sub.Type] = SubStatVerdict{Valuable: valuable[sub.Type]}

		rolls := sub.Rolls
		if rolls < 1 {
			rolls = 1
		}
		existingRolls += rolls

		if !valuable[sub.Type] {
			continue
		}
		if statType, ok := catalog.SubStatByID(sub.Type); ok {
			ceiling += float64(rolls) * statType.MaxRoll
		}
		achieved += sub.Value
	}

	remaining := maxRollOpportunities - existingRolls
	if remaining < 0 {
		remaining = 0
	}

	bestRoll, worstRoll := valuableRollRange(valuable)
	ceiling += float64(remaining) * bestRoll

	maxScore := achieved + float64(remaining)*bestRoll
	minScore := achieved
	// A future roll is only guaranteed to land on something valuable when
	// every sub-stat type in the game is valuable to this rule.
	if allSubStatsValuable(valuable) {
		minScore += float64(remaining) * worstRoll
	}

	if maxScore > ceiling {
		maxScore = ceiling
	}
	if minScore > maxScore {
		minScore = maxScore
	}

	return CharacterBasePartRating{
		TotalScore:    ceiling,
		MinTotalScore: minScore,
		MaxTotalScore: maxScore,
		ValuableSub:   valuableSub,
	}
}

// valuableRollRange returns the best possible and worst possible single-roll
// value across the rule's valuable sub-stats.
func valuableRollRange(valuable map[string]bool) (best, worst float64) {
	for _, statType := range catalog.GetAllSubStatTypes() {
		if !valuable[statType.ID] {
			continue
		}
		if statType.MaxRoll > best {
			best = statType.MaxRoll
		}
		if worst == 0 || statType.MinRoll < worst {
			worst = statType.MinRoll
		}
	}
	return best, worst
}

func allSubStatsValuable(valuable map[string]bool) bool {
	for _, statType := range catalog.GetAllSubStatTypes() {
		if !valuable[statType.ID] {
			return false
		}
	}
	return true
}

func groupKey(r CharacterBasePartRating) string {
	subs := make([]string, 0, len(r.ValuableSub))
	for sub, verdict := range r.ValuableSub {
		subs = append(subs, fmt.Sprintf("%s=%t", sub, verdict.Valuable))
	}
	sort.Strings(subs)
	return fmt.Sprintf("%.6f|%.6f|%.6f|%s", r.TotalScore, r.MinTotalScore, r.MaxTotalScore, strings.Join(subs, ","))
}
