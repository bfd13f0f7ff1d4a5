package fees

import "regexp"

// The cascade matches monetary amounts co-located with underwriting or
// purchaser compensation language. Capture group 1 is always the bare
// number (no dollar sign). Straight and curly apostrophes both occur in
// extracted PDF text, so possessive forms accept either.

const (
	feeNoun = `(?:underwriting|underwriter|purchaser)(?:s|['’]s|s['’]?)?`
	number  = `\$(\d+(?:,?\d+)*(?:\.\d+)?)`
	amount  = number + `,?`
)

// Pattern 1: "underwriter's discount ... of $1,444.00". Free text may sit
// between the fee noun and "of", but "of" must immediately precede the
// amount.
var ofPattern = regexp.MustCompile(`(?is)` +
	feeNoun + `\s+` +
	`(?:compensation|discount|fee|expenses)` +
	`\s+(?:[^$]*?\s+)?of\s+` +
	amount)

// Pattern 2: "the underwriting fee ... is $X" / "... will be $X". The price
// term can be separated from the fee noun by intervening text, line breaks
// included, as long as no other dollar figure appears in between.
var isPattern = regexp.MustCompile(`(?is)` +
	feeNoun + `\s+` +
	`(?:compensation|discount|fee|expenses)` +
	`[^$]*?` +
	`(?:is|will\s+be)\s+` +
	amount)

// Pattern 3: "will [also] pay the underwriter(s) a fee ... $X". Takes the
// first dollar figure after the obligation phrase, any intervening text.
var willPayPattern = regexp.MustCompile(`(?is)` +
	`will\s+(?:also\s+)?pay\s+the\s+` +
	`(?:underwriter(?:s)?|purchaser(?:s)?)` +
	`\s+a\s+fee` +
	`.*?` +
	amount)

// Pattern 4: "$725,500.00 of Underwriter's discount". The amount precedes
// the fee noun.
var beforeDiscountPattern = regexp.MustCompile(`(?is)` +
	number +
	`\s+of\s+` +
	feeNoun + `\s+` +
	`(?:discount|fees|expenses)`)

// Pattern 5: "$X as compensation for underwriting" / "for purchasing".
var compensationForPattern = regexp.MustCompile(`(?is)` +
	number +
	`\s+as\s+compensation\s+for\s+(?:underwriting|purchasing)`)

// patterns is the ordered cascade. Every pattern runs over every page; all
// matches become candidates. Overlapping patterns can match the same
// sentence twice, which inflates the summed total; see Policy.
var patterns = []struct {
	name string
	re   *regexp.Regexp
}{
	{"of", ofPattern},
	{"is", isPattern},
	{"will_pay", willPayPattern},
	{"before_discount", beforeDiscountPattern},
	{"compensation_for", compensationForPattern},
}
