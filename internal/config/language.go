package config

import (
	"fmt"
	"strings"
)

// LanguageLevel is a Java language level accepted for source and target compatibility.
type LanguageLevel string

const (
	Java6  LanguageLevel = "1.6"
	Java7  LanguageLevel = "1.7"
	Java8  LanguageLevel = "1.8"
	Java9  LanguageLevel = "9"
	Java10 LanguageLevel = "10"
	Java11 LanguageLevel = "11"
	Java12 LanguageLevel = "12"
	Java13 LanguageLevel = "13"
	Java14 LanguageLevel = "14"
	Java15 LanguageLevel = "15"
	Java16 LanguageLevel = "16"
	Java17 LanguageLevel = "17"
	Java18 LanguageLevel = "18"
	Java19 LanguageLevel = "19"
	Java20 LanguageLevel = "20"
	Java21 LanguageLevel = "21"
)

// supportedLanguageLevels is ordered oldest first; the index is the level's rank.
var supportedLanguageLevels = []LanguageLevel{
	Java6, Java7, Java8, Java9, Java10, Java11, Java12, Java13,
	Java14, Java15, Java16, Java17, Java18, Java19, Java20, Java21,
}

// SupportedLanguageLevels returns the accepted levels, oldest first.
func SupportedLanguageLevels() []LanguageLevel {
	out := make([]LanguageLevel, len(supportedLanguageLevels))
	copy(out, supportedLanguageLevels)
	return out
}

// ParseLanguageLevel normalizes the common spellings of a language level.
// "1.8", "8", "VERSION_1_8" and "JavaVersion.VERSION_1_8" all yield Java8.
func ParseLanguageLevel(s string) (LanguageLevel, error) {
	v := strings.TrimSpace(s)
	v = strings.TrimPrefix(v, "JavaVersion.")
	if strings.HasPrefix(v, "VERSION_") {
		v = strings.ReplaceAll(strings.TrimPrefix(v, "VERSION_"), "_", ".")
	}

	switch v {
	case "6", "7", "8":
		v = "1." + v
	case "1.9", "1.10":
		v = strings.TrimPrefix(v, "1.")
	}

	for _, l := range supportedLanguageLevels {
		if string(l) == v {
			return l, nil
		}
	}
	return "", fmt.Errorf("unsupported language level %q", s)
}

// Rank orders language levels; unknown levels rank -1.
func (l LanguageLevel) Rank() int {
	for i, s := range supportedLanguageLevels {
		if s == l {
			return i
		}
	}
	return -1
}

// GradleName returns the JavaVersion constant name, e.g. VERSION_1_8 or VERSION_17.
func (l LanguageLevel) GradleName() string {
	return "VERSION_" + strings.ReplaceAll(string(l), ".", "_")
}
