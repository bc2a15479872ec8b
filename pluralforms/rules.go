package pluralforms

import "strings"

// Plural-Forms expressions for the rule families in use. The index
// returned by each expression selects the alternative of a phrase
// template, in the order translators write them.
const (
	ruleSingle     = "0"
	ruleGermanic   = "n != 1"
	ruleFrench     = "n > 1"
	ruleSlavic     = "n%10==1 && n%100!=11 ? 0 : n%10>=2 && n%10<=4 && (n%100<10 || n%100>=20) ? 1 : 2"
	ruleCzech      = "n==1 ? 0 : (n>=2 && n<=4) ? 1 : 2"
	rulePolish     = "n==1 ? 0 : n%10>=2 && n%10<=4 && (n%100<12 || n%100>14) ? 1 : 2"
	ruleLithuanian = "n%10==1 && n%100!=11 ? 0 : n%10>=2 && (n%100<10 || n%100>=20) ? 1 : 2"
	ruleLatvian    = "n==0 ? 0 : n%10==1 && n%100!=11 ? 1 : 2"
	ruleSlovenian  = "n%100==1 ? 0 : n%100==2 ? 1 : n%100==3 || n%100==4 ? 2 : 3"
	ruleRomanian   = "n==1 ? 0 : (n==0 || (n%100>0 && n%100<20)) ? 1 : 2"
	ruleIrish      = "n==1 ? 0 : n==2 ? 1 : 2"
	ruleMaltese    = "n==1 ? 0 : n==0 || (n%100>1 && n%100<11) ? 1 : (n%100>10 && n%100<20) ? 2 : 3"
	ruleWelsh      = "n==1 ? 0 : n==2 ? 1 : (n==8 || n==11) ? 2 : 3"
	ruleMacedonian = "n%10==1 && n%100!=11 ? 0 : 1"
	ruleIcelandic  = "n%10!=1 || n%100==11"
	ruleArabic     = "n==0 ? 0 : n==1 ? 1 : n==2 ? 2 : n%100>=3 && n%100<=10 ? 3 : n%100>=11 ? 4 : 5"
)

var ruleFamilies = map[string][]string{
	ruleSingle: {
		"az", "bo", "dz", "id", "ja", "jv", "ka", "km", "kn", "ko", "ms",
		"my", "th", "vi", "zh",
	},
	ruleGermanic: {
		"af", "bg", "bn", "ca", "da", "de", "el", "en", "eo", "es", "et",
		"eu", "fa", "fi", "fo", "fy", "gl", "gu", "he", "hu", "it", "kk",
		"ku", "ky", "lb", "ml", "mn", "mr", "nb", "ne", "nl", "nn", "no",
		"pa", "ps", "pt", "sd", "sq", "sv", "sw", "ta", "te", "tk", "tr",
		"ur", "uz",
	},
	ruleFrench: {
		"am", "fil", "fr", "hi", "hy", "ln", "mg", "oc", "pt_BR", "ti",
		"tl", "wa",
	},
	ruleSlavic:     {"be", "bs", "hr", "me", "ru", "sh", "sr", "uk"},
	ruleCzech:      {"cs", "sk"},
	rulePolish:     {"pl"},
	ruleLithuanian: {"lt"},
	ruleLatvian:    {"lv"},
	ruleSlovenian:  {"sl"},
	ruleRomanian:   {"ro"},
	ruleIrish:      {"ga", "gd"},
	ruleMaltese:    {"mt"},
	ruleWelsh:      {"cy"},
	ruleMacedonian: {"mk"},
	ruleIcelandic:  {"is"},
	ruleArabic:     {"ar"},
}

var (
	rules       = compileRules()
	defaultRule = MustCompile(ruleGermanic)
)

func compileRules() map[string]Expression {
	table := make(map[string]Expression)
	for source, locales := range ruleFamilies {
		expr := MustCompile(source)
		for _, locale := range locales {
			table[locale] = expr
		}
	}
	return table
}

// Rule returns the plural rule of a locale. The full tag is consulted
// first (pt_BR and pt differ), then its language; locales without a known
// rule get the binary "n != 1" rule.
func Rule(locale string) Expression {
	if expr, ok := rules[locale]; ok {
		return expr
	}
	if idx := strings.IndexAny(locale, "_-"); idx > 0 {
		if expr, ok := rules[locale[:idx]]; ok {
			return expr
		}
	}
	return defaultRule
}
