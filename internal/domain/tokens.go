package domain

import (
	"maps"
	"regexp"
	"strconv"
	"time"
)

// Token names understood in template bodies as {{name}}
const (
	TokenDate       = "date"
	TokenDateLong   = "dateLong"
	TokenYear       = "year"
	TokenMonthShort = "monthShort"
	TokenISOWeek    = "isoWeek"
	TokenQuarter    = "quarter"
	TokenTitle      = "title"
	TokenKind       = "kind"
	TokenEmoji      = "emoji"
	TokenCore       = "core"
)

// DateLayout is the format of the date token and of "created" frontmatter
const DateLayout = "2006-01-02"

const longDateLayout = "Jan 02, 2006"

var tokenPattern = regexp.MustCompile(`\{\{([A-Za-z0-9_]+)\}\}`)

// Tokens maps token names to their substituted values
type Tokens map[string]string

// NewTokens computes the date-derived tokens for now
func NewTokens(now time.Time) Tokens {
	return Tokens{
		TokenDate:       now.Format(DateLayout),
		TokenDateLong:   LongDate(now),
		TokenYear:       strconv.Itoa(now.Year()),
		TokenMonthShort: now.Format("Jan"),
		TokenISOWeek:    strconv.Itoa(ISOWeek(now)),
		TokenQuarter:    strconv.Itoa(Quarter(now)),
	}
}

// With returns a copy of t with extra merged in; extra wins on collision
func (t Tokens) With(extra map[string]string) Tokens {
	out := make(Tokens, len(t)+len(extra))
	maps.Copy(out, t)
	maps.Copy(out, extra)
	return out
}

// ApplyTokens replaces every {{name}} whose name is in tokens. The body is
// scanned once, so substituted values are never themselves expanded.
// Unknown tokens are left as written.
func ApplyTokens(body string, tokens Tokens) string {
	return tokenPattern.ReplaceAllStringFunc(body, func(match string) string {
		name := match[2 : len(match)-2]
		if v, ok := tokens[name]; ok {
			return v
		}
		return match
	})
}

// LongDate formats t as used for daily note names (e.g. "Oct 18, 2026")
func LongDate(t time.Time) string {
	return t.Format(longDateLayout)
}

// ISOWeek returns the ISO-8601 week number: the week belongs to the year
// holding its Thursday, and week 1 contains the year's first Thursday.
func ISOWeek(t time.Time) int {
	_, week := t.ISOWeek()
	return week
}

// Quarter returns the calendar quarter (1-4) of t
func Quarter(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}
