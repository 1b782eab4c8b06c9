package taxonomyedit

import (
	"testing"
)

type braceBalanceTest struct {
	line             string
	naive            int
	outsideOfStrings int
}

var braceBalanceTests = []braceBalanceTest{
	{"", 0, 0},
	{"    {", 1, 1},
	{"    },", -1, -1},
	{"{ value: 'a', label: 'A' },", 0, 0},
	{"subtopics: [{ value: 'a' }, {", 1, 1},
	{"label: '{',", 1, 0},
	{`label: "}}",`, -2, 0},
	{"label: `${x}`,", 0, 0},
	{`label: 'it\'s {',`, 1, 0},
	{"}, // closes {", 0, -1},
	{"label: 'a // b', {", 1, 1},
	{"label: 'unterminated {", 1, 0},
}

func TestBraceBalance(t *testing.T) {
	for _, test := range braceBalanceTests {
		if balance := braceBalance(test.line); balance != test.naive {
			t.Errorf("braceBalance(%q) = %d, expected %d", test.line, balance, test.naive)
		}
		if balance := braceBalanceOutsideStrings(test.line); balance != test.outsideOfStrings {
			t.Errorf("braceBalanceOutsideStrings(%q) = %d, expected %d", test.line, balance, test.outsideOfStrings)
		}
	}
}

type fastTrimTest struct {
	s        string
	expected string
}

var fastTrimTests = []fastTrimTest{
	{"", ""},
	{"   ", ""},
	{"{", "{"},
	{"    {", "{"},
	{"\t{\r", "{"},
	{"  { x }  ", "{ x }"},
}

func TestFastTrim(t *testing.T) {
	for _, test := range fastTrimTests {
		if output := fastTrim(test.s); output != test.expected {
			t.Errorf("Output %q not equal to expected %q", output, test.expected)
		}
	}
}

type trimTrailingCommaTest struct {
	s        string
	expected string
}

var trimTrailingCommaTests = []trimTrailingCommaTest{
	{"", ""},
	{",", ""},
	{"    },", "    }"},
	{"    }", "    }"},
	{"    },  ", "    }  "},
	{"{\n  a: 1,\n},", "{\n  a: 1,\n}"},
	{"    },,", "    },"},
}

func TestTrimTrailingComma(t *testing.T) {
	for _, test := range trimTrailingCommaTests {
		if output := trimTrailingComma(test.s); output != test.expected {
			t.Errorf("Output %q not equal to expected %q", output, test.expected)
		}
	}
}

func TestIndexAnyASCII(t *testing.T) {
	if idx := indexAnyASCII("abc{def}", bracesSet); idx != 3 {
		t.Errorf("Output %d not equal to expected 3", idx)
	}
	if idx := indexAnyASCII("abcdef", bracesSet); idx != -1 {
		t.Errorf("Output %d not equal to expected -1", idx)
	}
	if idx := indexAnyASCII("日本{", bracesSet); idx != 6 {
		t.Errorf("Output %d not equal to expected 6", idx)
	}
}
