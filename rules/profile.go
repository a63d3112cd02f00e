package rules

import "strings"

// Difficulty is a cosmetic label shown next to a profile
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyWild   Difficulty = "wild"
)

// Profile is a dealer personality: a RuleSet plus cosmetic metadata
type Profile struct {
	ID         string
	Name       string
	Tagline    string
	Difficulty Difficulty
	// Wild profiles draw a fresh RuleSet from the wild pool on every shoe
	// rebuild; Rules then only holds the initial draw.
	Wild  bool
	Rules RuleSet
}

const (
	ClassicID    = "classic"
	HighRollerID = "high-roller"
	HardEightID  = "hard-eight"
	SingleDeckID = "single-deck"
	FreeBetID    = "free-bet"
	WildID       = "wild"
)

// Profiles returns the six built-in profiles in display order
func Profiles() []Profile {
	classic := Standard()
	classic.Surrender = true

	highRoller := Standard()
	highRoller.DeckCount = 2
	highRoller.ResplitAces = true
	highRoller.SplitAcesOneCard = false
	highRoller.Surrender = true
	highRoller.MinimumBetMultiplier = 5

	hardEight := Standard()
	hardEight.DeckCount = 8
	hardEight.DealerHitsSoft17 = true
	hardEight.BlackjackPayout = 1.2
	hardEight.DoubleRestrictedTotals = Totals(10, 11)
	hardEight.DoubleAfterSplit = false
	hardEight.MaxHandsAfterSplit = 3

	singleDeck := Standard()
	singleDeck.DeckCount = 1
	singleDeck.DealerHitsSoft17 = true
	singleDeck.BlackjackPayout = 1.2
	singleDeck.DoubleRestrictedTotals = Totals(10, 11)
	singleDeck.DoubleAfterSplit = false
	singleDeck.MaxHandsAfterSplit = 2

	freeBet := Standard()
	freeBet.DealerHitsSoft17 = true
	freeBet.DoubleRestrictedTotals = Totals(9, 10, 11)
	freeBet.FreeDoubles = true
	freeBet.FreeSplits = true

	return []Profile{
		{
			ID:         ClassicID,
			Name:       "Rosa",
			Tagline:    "Six decks, by the book",
			Difficulty: DifficultyEasy,
			Rules:      classic,
		},
		{
			ID:         HighRollerID,
			Name:       "Viktor",
			Tagline:    "Generous rules for serious stakes",
			Difficulty: DifficultyMedium,
			Rules:      highRoller,
		},
		{
			ID:         HardEightID,
			Name:       "Lou",
			Tagline:    "Eight decks and a 6:5 grin",
			Difficulty: DifficultyHard,
			Rules:      hardEight,
		},
		{
			ID:         SingleDeckID,
			Name:       "Mei",
			Tagline:    "One deck, tight doubles",
			Difficulty: DifficultyHard,
			Rules:      singleDeck,
		},
		{
			ID:         FreeBetID,
			Name:       "Duke",
			Tagline:    "Doubles and splits on the house",
			Difficulty: DifficultyEasy,
			Rules:      freeBet,
		},
		{
			ID:         WildID,
			Name:       "Jinx",
			Tagline:    "New rules every shoe",
			Difficulty: DifficultyWild,
			Wild:       true,
			Rules:      DefaultWildPool()[0].Rules,
		},
	}
}

// Lookup finds a built-in profile by ID, ignoring case
func Lookup(id string) (Profile, bool) {
	for _, p := range Profiles() {
		if strings.EqualFold(p.ID, id) {
			return p, true
		}
	}
	return Profile{}, false
}

// Default returns the classic profile
func Default() Profile {
	p, _ := Lookup(ClassicID)
	return p
}
