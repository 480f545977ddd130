package stemmer

// suffixGroup is a set of case endings that all strip the same number of
// runes. A group only applies when more than remove+2 runes are left.
type suffixGroup struct {
	remove   int
	suffixes []string
}

func (g suffixGroup) minLen() int { return g.remove + 2 }

// caseSuffixes is ordered longest removal first; the first group with a
// matching ending wins.
var caseSuffixes = []suffixGroup{
	{7, []string{"ejšieho", "ejšiemu"}},
	{6, []string{"ejších", "encoch", "ejšími", "encami"}},
	{5, []string{
		"ejšia", "atami", "atách", "eniec", "encom", "ejšom",
		"ejším", "ejšej", "ejšou", "ejšiu", "ejšie",
	}},
	{4, []string{
		"eťom", "iami", "atám", "aťom", "ovia", "iach",
		"ence", "ieho", "iemu", "ieme", "iete", "ejší",
	}},
	{3, []string{
		"ich", "eho", "ych", "ích", "ého", "emi", "ému", "emu",
		"ími", "imi", "ách", "ých", "ami", "ovi", "ieť", "ieš",
		"ejú", "ajú", "ujú", "eme", "íte", "íme", "ými", "ymi",
		"ach", "iam", "iac", "ite", "ili", "ila", "ilo", "ime",
		"och",
	}},
	{2, []string{
		"ím", "ám", "am", "us", "ým", "ym", "mi", "ou", "om", "ej",
		"ov", "ia", "ie", "iu", "im", "ho", "mu", "me", "te", "ať",
		"aš", "úť", "iť", "íš", "iš", "il", "úc", "eš",
	}},
}

// caseVowels may be dropped from the end when no ending above matched.
const caseVowels = "aeiouúyáéíý"

const superlativePrefix = "naj"

var possessiveSuffixes = []string{"in", "ov"}

// softFinals maps a palatal or affricate final rune to its hard form.
var softFinals = map[rune]rune{
	'c': 'k',
	'č': 'k',
	'ľ': 'l',
	'ň': 'n',
	'ť': 't',
}
