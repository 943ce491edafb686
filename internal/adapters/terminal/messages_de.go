package terminal

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.German

	// Game flow
	message.SetString(lang, "game.welcome", "Willkommen zu einer Partie Kniffel!")
	message.SetString(lang, "game.round", "Runde %d")
	message.SetString(lang, "game.rolled", "Du hast %s gewürfelt")
	message.SetString(lang, "game.reroll_prompt", "Mit Enter behältst du diesen Wurf.\nZum Nachwürfeln gib die Würfel an. [beliebige Zahlen von 1 bis 5]\n(Verbleibende Würfe: %d)")
	message.SetString(lang, "game.score_prompt", "Wo willst du eintragen? [eine Zahl von 1 bis 13]")
	message.SetString(lang, "game.enter_number", "Bitte gib eine Zahl von 1 bis 13 ein")
	message.SetString(lang, "game.box_filled", "Dieses Feld ist schon belegt! Bitte wähle ein anderes!")
	message.SetString(lang, "game.recorded", "Eingetragen: %s für %d")
	message.SetString(lang, "game.hints", "Mögliche Punkte:")
	message.SetString(lang, "game.ended", "Das Spiel ist vorbei.")
	message.SetString(lang, "game.final_score", "Endstand: %d")

	// Score card
	message.SetString(lang, "card.title", "Spielblock")
	message.SetString(lang, "card.upper", "Oberer Teil")
	message.SetString(lang, "card.lower", "Unterer Teil")
	message.SetString(lang, "card.bonuses", "Boni")
	message.SetString(lang, "card.sum_upper", "Summe oben")
	message.SetString(lang, "card.sum_lower", "Summe unten")
	message.SetString(lang, "card.upper_bonus", "Bonus oben")
	message.SetString(lang, "card.yahtzee_bonus", "Kniffel-Bonus")
	message.SetString(lang, "card.total", "Gesamt")

	// One-shot scoring
	message.SetString(lang, "score.result", "%s als %s ergibt %d")

	// Boxes
	message.SetString(lang, "category.1", "Einser")
	message.SetString(lang, "category.2", "Zweier")
	message.SetString(lang, "category.3", "Dreier")
	message.SetString(lang, "category.4", "Vierer")
	message.SetString(lang, "category.5", "Fünfer")
	message.SetString(lang, "category.6", "Sechser")
	message.SetString(lang, "category.7", "Dreierpasch")
	message.SetString(lang, "category.8", "Viererpasch")
	message.SetString(lang, "category.9", "Full House")
	message.SetString(lang, "category.10", "Kleine Straße")
	message.SetString(lang, "category.11", "Große Straße")
	message.SetString(lang, "category.12", "Kniffel")
	message.SetString(lang, "category.13", "Chance")
}
