package status

import (
	"bytes"
	"encoding/json"

	. "gopkg.in/check.v1"
)

var _ = Suite(statusSuite{})

type statusSuite struct{}

var testCatalogs = map[string]map[string]string{
	"en": {
		"day":  ":count day|:count days",
		"hour": ":count hour|:count hours",
		"ago":  ":time ago",
	},
	"fr": {
		"day":  ":count jour|:count jours",
		"hour": ":count heure|:count heures",
		"ago":  "il y a :time",
	},
	"de": {
		"day":   ":count Tag|:count Tage",
		"extra": "nur hier",
	},
}

func (statusSuite) TestBuild(c *C) {
	rep, err := Build("en", testCatalogs, []string{"day", "diff_now", "ago", "week"})
	c.Assert(err, IsNil)

	c.Check(rep.BaseLocale, Equals, "en")
	c.Check(rep.Undefined, DeepEquals, []string{"diff_now", "week"})
	c.Assert(rep.Locales, HasLen, 3)

	de := rep.Locales[0]
	c.Check(de.Locale, Equals, "de")
	c.Check(de.BaseKeys, Equals, 3)
	c.Check(de.Translated, Equals, 1)
	c.Check(de.Missing, Equals, 2)
	c.Check(de.Extra, Equals, 1)
	c.Check(de.Completion, Equals, 33.3)
	c.Check(de.MissingKeys, DeepEquals, []string{"ago", "hour"})
	c.Check(de.ExtraKeys, DeepEquals, []string{"extra"})

	c.Check(rep.Locales[1].Locale, Equals, "en")
	c.Check(rep.Locales[1].Completion, Equals, 100.0)
	c.Check(rep.Locales[2].Locale, Equals, "fr")
	c.Check(rep.Locales[2].MissingKeys, DeepEquals, []string{})
}

func (statusSuite) TestBuildMissingBase(c *C) {
	_, err := Build("ja", testCatalogs, nil)
	c.Check(err, ErrorMatches, `base locale "ja" is missing from catalogues`)
}

func (statusSuite) TestPercent(c *C) {
	c.Check(percent(0, 0), Equals, 100.0)
	c.Check(percent(2, 3), Equals, 66.7)
	c.Check(percent(3, 3), Equals, 100.0)
}

func (statusSuite) TestWriteJSON(c *C) {
	rep, err := Build("en", testCatalogs, nil)
	c.Assert(err, IsNil)

	var buffer bytes.Buffer
	c.Assert(WriteJSON(&buffer, rep), IsNil)

	var decoded Report
	c.Assert(json.Unmarshal(buffer.Bytes(), &decoded), IsNil)
	c.Check(decoded, DeepEquals, rep)
}

func (statusSuite) TestWriteMarkdown(c *C) {
	rep, err := Build("en", map[string]map[string]string{
		"en": testCatalogs["en"],
		"de": testCatalogs["de"],
	}, []string{"week"})
	c.Assert(err, IsNil)

	var buffer bytes.Buffer
	c.Assert(WriteMarkdown(&buffer, rep), IsNil)

	const expected = "# Locale Status\n" +
		"\n" +
		"Base locale: `en`.\n" +
		"\n" +
		"| Locale | Base Keys | Translated | Missing | Extra | Completion |\n" +
		"| --- | ---: | ---: | ---: | ---: | ---: |\n" +
		"| `de` | 3 | 1 | 2 | 1 | 33.3% |\n" +
		"| `en` | 3 | 3 | 0 | 0 | 100.0% |\n" +
		"\n" +
		"## Undefined Keys\n" +
		"\n" +
		"- `week`\n" +
		"\n" +
		"## Locale: `de`\n" +
		"\n" +
		"### Missing Keys\n" +
		"\n" +
		"- `ago`\n" +
		"- `hour`\n" +
		"\n" +
		"### Extra Keys\n" +
		"\n" +
		"- `extra`\n"
	c.Check(buffer.String(), Equals, expected)
}
