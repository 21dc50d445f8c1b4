package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/kata/pkg/classify"
	"github.com/matzehuels/kata/pkg/errors"
	"github.com/matzehuels/kata/pkg/seq"
	"github.com/matzehuels/kata/pkg/tally"
	"github.com/matzehuels/kata/pkg/text"
)

func entries(opts Options) []Entry {
	return []Entry{
		// text
		textEntry(KindText, "escape-html", "Escape <, >, \" and & as HTML entities", text.EscapeHTML),
		textEntry(KindText, "complement-dna", "Complement a DNA strand (A<->T, C<->G)", text.ComplementDNA),
		textEntry(KindText, "disemvowel", "Remove every vowel", text.Disemvowel),
		textEntry(KindText, "remove-spaces", "Remove every space", text.RemoveSpaces),
		textEntry(KindText, "break-camel-case", "Insert a space before each capital letter", text.BreakCamelCase),
		textEntry(KindText, "reverse-words", "Reverse the order of words", text.ReverseWords),
		textEntry(KindText, "alphabet-position", "Replace letters with their alphabet position", text.AlphabetPosition),
		textEntry(KindText, "pluralize", "Append an s", text.Pluralize),
		{
			Name: "abbreviate", Kind: KindText, Summary: "Initials of a two-word name",
			Usage: "<first> <last>", MinArgs: 1,
			Fn: func(args []string) (string, error) {
				return text.Abbreviate(strings.Join(args, " "))
			},
		},
		{
			Name: "validate-pin", Kind: KindText, Summary: "Check for exactly 4 or 6 digits",
			Usage: "<pin>", MinArgs: 1, MaxArgs: 1,
			Fn: func(args []string) (string, error) {
				return strconv.FormatBool(text.ValidatePIN(args[0])), nil
			},
		},
		{
			Name: "bool-to-string", Kind: KindText, Summary: "Spell out a boolean",
			Usage: "<bool>", MinArgs: 1, MaxArgs: 1,
			Fn: func(args []string) (string, error) {
				b, err := strconv.ParseBool(args[0])
				if err != nil {
					return "", errors.Invalid("%q is not a boolean", args[0])
				}
				return text.BoolToString(b), nil
			},
		},
		{
			Name: "star-join", Kind: KindText, Summary: "Smallest word with letters joined by ***",
			Usage: "<word>...", MinArgs: 0,
			Fn: func(args []string) (string, error) {
				return text.StarJoin(args)
			},
		},
		{
			Name: "square", Kind: KindText, Summary: "Draw an n by n square of +",
			Usage: "<n>", MinArgs: 1, MaxArgs: 1,
			Fn: func(args []string) (string, error) {
				n, err := parseInt(args[0])
				if err != nil {
					return "", err
				}
				return text.Square(n)
			},
		},
		{
			Name: "phone-number", Kind: KindText, Summary: "Format ten digits as (123) 456-7890",
			Usage: "<digits>", MinArgs: 1,
			Fn: func(args []string) (string, error) {
				digits, err := parseDigits(strings.Join(args, ""))
				if err != nil {
					return "", err
				}
				return text.PhoneNumber(digits)
			},
		},

		// tally
		textEntry(KindTally, "encode-duplicates", "Mark repeated characters ) and unique ones (", tally.EncodeDuplicates),
		textEntry(KindTally, "fix-case", "Lower- or upper-case, whichever changes fewer letters", tally.FixCase),
		textEntry(KindTally, "mumble", "Expand each letter by its position: A-Bb-Ccc", tally.Mumble),
		{
			Name: "count-duplicates", Kind: KindTally, Summary: "Count characters that occur more than once",
			Usage: "<text>", MinArgs: 1,
			Fn: func(args []string) (string, error) {
				return strconv.Itoa(tally.CountDuplicates(strings.Join(args, " "))), nil
			},
		},
		{
			Name: "xo", Kind: KindTally, Summary: "Same number of x and o",
			Usage: "<text>", MinArgs: 1,
			Fn: func(args []string) (string, error) {
				return strconv.FormatBool(tally.XO(strings.Join(args, " "))), nil
			},
		},

		// sequence
		{
			Name: "delete-nth", Kind: KindSequence,
			Summary: fmt.Sprintf("Keep the first %d occurrence(s) of each value", opts.DeleteCap),
			Usage:   "<value>...", MinArgs: 0,
			Fn: func(args []string) (string, error) {
				kept, err := seq.DeleteNth(args, opts.DeleteCap)
				if err != nil {
					return "", err
				}
				return fmt.Sprint(kept), nil
			},
		},
		{
			Name: "pairs", Kind: KindSequence, Summary: "Split into pairs, padding with _",
			Usage: "<text>", MinArgs: 1,
			Fn: func(args []string) (string, error) {
				return fmt.Sprint(seq.Pairs(strings.Join(args, " "))), nil
			},
		},
		{
			Name: "group", Kind: KindSequence,
			Summary: fmt.Sprintf("Split into groups of %d, padding with %c", opts.GroupWidth, opts.Pad),
			Usage:   "<text>", MinArgs: 1,
			Fn: func(args []string) (string, error) {
				groups, err := seq.Group(strings.Join(args, " "), opts.GroupWidth, opts.Pad)
				if err != nil {
					return "", err
				}
				return fmt.Sprint(groups), nil
			},
		},
		intEntry("count-to", "List 1 through n", seq.CountTo),
		intEntry("reverse-seq", "List n down to 1", seq.ReverseSeq),
		{
			Name: "min", Kind: KindSequence, Summary: "Smallest integer",
			Usage: "<int>...", MinArgs: 0,
			Fn: func(args []string) (string, error) {
				nums, err := parseInts(args)
				if err != nil {
					return "", err
				}
				m, err := seq.Min(nums)
				if err != nil {
					return "", err
				}
				return strconv.Itoa(m), nil
			},
		},
		{
			Name: "odd-or-even", Kind: KindSequence, Summary: "Parity of the sum",
			Usage: "<int>...", MinArgs: 0,
			Fn: func(args []string) (string, error) {
				nums, err := parseInts(args)
				if err != nil {
					return "", err
				}
				return seq.OddOrEven(nums), nil
			},
		},

		// classify
		{
			Name: "categorize", Kind: KindClassify, Summary: "Open or Senior for each age,handicap pair",
			Usage: "<age,handicap>...", MinArgs: 1,
			Fn: func(args []string) (string, error) {
				members := make([]classify.Member, len(args))
				for i, arg := range args {
					m, err := parseMember(arg)
					if err != nil {
						return "", err
					}
					members[i] = m
				}
				labels := make([]string, len(members))
				for i, c := range classify.CategorizeAll(members) {
					labels[i] = c.String()
				}
				return strings.Join(labels, " "), nil
			},
		},
		{
			Name: "platform", Kind: KindClassify, Summary: "Parse a platform name",
			Usage: "<name>", MinArgs: 1, MaxArgs: 1,
			Fn: func(args []string) (string, error) {
				p, err := classify.ParsePlatform(args[0])
				return string(p), err
			},
		},
		{
			Name: "shoot", Kind: KindClassify, Summary: "Shot outcome for a position and seconds remaining",
			Usage: "<position> <seconds>", MinArgs: 2, MaxArgs: 2,
			Fn: func(args []string) (string, error) {
				pos, err := classify.ParsePosition(args[0])
				if err != nil {
					return "", err
				}
				secs, err := parseInt(args[1])
				if err != nil {
					return "", err
				}
				return string(classify.NewPlayer("", 0, pos).Shoot(secs)), nil
			},
		},
		{
			Name: "can-hold", Kind: KindClassify, Summary: "Whether one rectangle fits in another",
			Usage: "<w1> <h1> <w2> <h2>", MinArgs: 4, MaxArgs: 4,
			Fn: func(args []string) (string, error) {
				var dims [4]uint32
				for i, arg := range args {
					d, err := parseSide(arg)
					if err != nil {
						return "", err
					}
					dims[i] = d
				}
				outer := classify.Rectangle{Width: dims[0], Height: dims[1]}
				inner := classify.Rectangle{Width: dims[2], Height: dims[3]}
				return strconv.FormatBool(outer.CanHold(inner)), nil
			},
		},
	}
}

// textEntry wraps a string -> string kata. Arguments are joined by spaces
// so unquoted words still reach the kata as one string.
func textEntry(kind Kind, name, summary string, fn func(string) string) Entry {
	return Entry{
		Name: name, Kind: kind, Summary: summary, Usage: "<text>", MinArgs: 1,
		Fn: func(args []string) (string, error) {
			return fn(strings.Join(args, " ")), nil
		},
	}
}

func intEntry(name, summary string, fn func(int) []int) Entry {
	return Entry{
		Name: name, Kind: KindSequence, Summary: summary, Usage: "<n>", MinArgs: 1, MaxArgs: 1,
		Fn: func(args []string) (string, error) {
			n, err := parseInt(args[0])
			if err != nil {
				return "", err
			}
			return fmt.Sprint(fn(n)), nil
		},
	}
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Invalid("%q is not an integer", s)
	}
	return n, nil
}

// parseSide parses a rectangle side, which must fit in a uint32.
func parseSide(s string) (uint32, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, errors.Invalid("rectangle side must be an integer from 0 to %d, got %q", uint32(math.MaxUint32), s)
	}
	return uint32(n), nil
}

func parseInts(args []string) ([]int, error) {
	nums := make([]int, len(args))
	for i, arg := range args {
		n, err := parseInt(arg)
		if err != nil {
			return nil, err
		}
		nums[i] = n
	}
	return nums, nil
}

func parseDigits(s string) ([]int, error) {
	digits := make([]int, 0, len(s))
	for _, r := range s {
		if r < '0' || r > '9' {
			return nil, errors.Invalid("%q is not a digit", r)
		}
		digits = append(digits, int(r-'0'))
	}
	return digits, nil
}

// parseMember parses "age,handicap".
func parseMember(s string) (classify.Member, error) {
	age, handicap, ok := strings.Cut(s, ",")
	if !ok {
		return classify.Member{}, errors.Invalid("expected age,handicap, got %q", s)
	}
	a, err := parseInt(age)
	if err != nil {
		return classify.Member{}, err
	}
	h, err := parseInt(handicap)
	if err != nil {
		return classify.Member{}, err
	}
	return classify.Member{Age: a, Handicap: h}, nil
}
