package constants

// PlayerArt is drawn top to bottom, one terminal row per line
var PlayerArt = []string{
	"  ^  ",
	" /|\\ ",
	"/_|_\\",
}

// EnemyArt holds the two animation frames of an enemy
var EnemyArt = [2][]string{
	{
		" /o\\ ",
		"<___>",
		" | | ",
	},
	{
		" \\o/ ",
		"<___>",
		" | | ",
	},
}

// Shot glyphs
const (
	PlayerShotRune = '|'
	EnemyShotRune  = 'v'
)
