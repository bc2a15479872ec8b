package status

import (
	"bytes"

	. "gopkg.in/check.v1"
)

var _ = Suite(poSuite{})

type poSuite struct{}

func (poSuite) TestQuoteMsgid(c *C) {
	c.Check(quoteMsgid(""), Equals, `""`)
	c.Check(quoteMsgid("hello\tworld"), Equals, `"hello\tworld"`)
	c.Check(quoteMsgid("two\nlines"), Equals, "\"\"\n\"two\\n\"\n\"lines\"")
}

func (poSuite) TestWritePO(c *C) {
	base := map[string]string{
		"day":             ":count day|:count days",
		"ago":             ":time ago",
		"period.interval": "every :interval",
		"note":            "two\nlines",
	}
	translations := map[string]string{
		"day":             ":count jour|:count jours",
		"period.interval": "tous les :interval",
		"extra":           "ignored",
	}
	header := Header{
		PackageName:      "testing",
		MsgidBugsAddress: "bugs@example.org",
		CreationDate:     "1970-01-01 TT:TT+00:00",
		Language:         "fr",
		PluralForms:      "nplurals=2; plural=(n > 1);",
	}

	var buffer bytes.Buffer
	c.Assert(WritePO(&buffer, header, base, translations), IsNil)

	const expectedPo = `# fr translations for testing.
#
msgid ""
msgstr ""
"Project-Id-Version: testing\n"
"Report-Msgid-Bugs-To: bugs@example.org\n"
"POT-Creation-Date: 1970-01-01 TT:TT+00:00\n"
"Language: fr\n"
"MIME-Version: 1.0\n"
"Content-Type: text/plain; charset=UTF-8\n"
"Content-Transfer-Encoding: 8bit\n"
"Plural-Forms: nplurals=2; plural=(n > 1);\n"

#. :time ago
msgid "ago"
msgstr ""

#. :count day|:count days
msgid "day"
msgstr ":count jour|:count jours"

#. two
#. lines
msgid "note"
msgstr ""

#. every :interval
msgctxt "period"
msgid "interval"
msgstr "tous les :interval"
`
	c.Check(buffer.String(), Equals, expectedPo)
}

func (poSuite) TestWritePODefaults(c *C) {
	var buffer bytes.Buffer
	c.Assert(WritePO(&buffer, Header{CreationDate: "now"}, map[string]string{"": "header"}, nil), IsNil)

	const expectedPo = `# LANGUAGE translations for PACKAGE.
#
msgid ""
msgstr ""
"Project-Id-Version: PACKAGE\n"
"POT-Creation-Date: now\n"
"Language: \n"
"MIME-Version: 1.0\n"
"Content-Type: text/plain; charset=UTF-8\n"
"Content-Transfer-Encoding: 8bit\n"
`
	c.Check(buffer.String(), Equals, expectedPo)
}
