package terminal

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Game flow
	message.SetString(lang, "game.welcome", "Welcome to a game of Yahtzee!")
	message.SetString(lang, "game.round", "Round %d")
	message.SetString(lang, "game.rolled", "You rolled %s")
	message.SetString(lang, "game.reroll_prompt", "If you want to keep this throw just hit Enter.\nIf you want to reroll enter which dice to reroll. [any numbers between 1 and 5]\n(Throws left: %d)")
	message.SetString(lang, "game.score_prompt", "Where do you want to score? [any number between 1 and 13]")
	message.SetString(lang, "game.enter_number", "Please enter a number between 1 and 13 inclusive")
	message.SetString(lang, "game.box_filled", "This box is already filled! Please choose another!")
	message.SetString(lang, "game.recorded", "Added to score card: %s for %d")
	message.SetString(lang, "game.hints", "Possible scores:")
	message.SetString(lang, "game.ended", "The game has ended.")
	message.SetString(lang, "game.final_score", "The final score is %d")

	// Score card
	message.SetString(lang, "card.title", "Score Card")
	message.SetString(lang, "card.upper", "Upper Section")
	message.SetString(lang, "card.lower", "Lower Section")
	message.SetString(lang, "card.bonuses", "Bonuses")
	message.SetString(lang, "card.sum_upper", "Sum Upper Section")
	message.SetString(lang, "card.sum_lower", "Sum Lower Section")
	message.SetString(lang, "card.upper_bonus", "Upper Section Bonus")
	message.SetString(lang, "card.yahtzee_bonus", "Multi-Yahtzee Bonus")
	message.SetString(lang, "card.total", "Total Score")

	// One-shot scoring
	message.SetString(lang, "score.result", "%s as %s scores %d")

	// Boxes
	message.SetString(lang, "category.1", "Ones")
	message.SetString(lang, "category.2", "Twos")
	message.SetString(lang, "category.3", "Threes")
	message.SetString(lang, "category.4", "Fours")
	message.SetString(lang, "category.5", "Fives")
	message.SetString(lang, "category.6", "Sixes")
	message.SetString(lang, "category.7", "Three of a Kind")
	message.SetString(lang, "category.8", "Four of a Kind")
	message.SetString(lang, "category.9", "Full House")
	message.SetString(lang, "category.10", "Low Straight")
	message.SetString(lang, "category.11", "High Straight")
	message.SetString(lang, "category.12", "Yahtzee")
	message.SetString(lang, "category.13", "Chance")
}
