package summary

// scoreMessages is indexed by score on a ten-question quiz, worst to
// perfect.
var scoreMessages = [11]string{
	"¡Ay no! Time for a coffee and another go.",
	"Rough one. The words will still be here mañana.",
	"A slow start. Browse the list and try again.",
	"Getting warmer. Keep at it.",
	"Almost halfway. Otra vez!",
	"Half right! The glass is media llena.",
	"Not bad at all. A few more and you're there.",
	"¡Bien hecho! You're getting the hang of this.",
	"¡Muy bien! Only a couple slipped past you.",
	"So close to perfect it hurts. ¡Casi!",
	"¡Perfecto! Ten out of ten. Go celebrate.",
}

// scoreMessage picks the line for a finished quiz, scaling shorter
// quizzes onto the ten-point table.
func scoreMessage(score, total int) string {
	if total <= 0 {
		return ""
	}
	idx := score
	if total != 10 {
		idx = score * 10 / total
	}
	if idx < 0 {
		idx = 0
	}
	if idx > 10 {
		idx = 10
	}
	return scoreMessages[idx]
}
