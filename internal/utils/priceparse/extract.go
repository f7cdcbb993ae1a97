// Package priceparse pulls a price out of free-form text or HTML.
//
// Extraction is a regex heuristic, not an HTML parser. It returns the first
// text that looks like a price under a fixed precedence and makes no promise
// that this is the price a human would pick on an arbitrary page. Pages that
// need exact extraction should be given a location hint.
package priceparse

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// numberPattern matches 1234, 1,234 and 1,234.50.
const numberPattern = `(\d+(?:,\d{3})*(?:\.\d{2})?)`

var (
	numberRegex = regexp.MustCompile(numberPattern)
	tagRegex    = regexp.MustCompile(`<[^>]*>`)
	contentAttr = regexp.MustCompile(`(?i)\b(?:content|value)\s*=\s*["']\s*` + numberPattern)
)

// fallbackPatterns are tried in order on the whole text when no hint is given
// or the hint finds nothing. Group 1 is always the number.
var fallbackPatterns = []*regexp.Regexp{
	// data-price="12.50", data-amount='3', cost="1,200"
	regexp.MustCompile(`(?i)[\w:-]*(?:price|amount|value|cost)[\w:-]*\s*=\s*["'][^"'\d]{0,4}` + numberPattern),
	// <span class="product-price">$ 12.50</span>, itemprop="price" content="12.50"
	regexp.MustCompile(`(?i)\b(?:itemprop|class|id|data-[\w-]+)\s*=\s*["'][^"']*(?:price|amount|cost)[^"']*["'][^>]*?(?:content\s*=\s*["']|>\s*[^<\d]{0,8})` + numberPattern),
	regexp.MustCompile(`\$\s*` + numberPattern),
	regexp.MustCompile(`USD\s*` + numberPattern),
	regexp.MustCompile(`€\s*` + numberPattern),
	regexp.MustCompile(`EUR\s*` + numberPattern),
	regexp.MustCompile(numberPattern + `\s*(?:USD|EUR|GBP|CAD|AUD)`),
	numberRegex,
}

// ExtractAmount returns the first positive price found in text. A non-empty
// locationHint narrows the search to the element it names before the
// unconstrained scan is tried. Hint forms:
//
//	data-qa="price"   any attribute with that value
//	.price            element whose class list contains price
//	#price            element with id price
//	span              first span elements
func ExtractAmount(text, locationHint string) (decimal.Decimal, bool) {
	if hint := strings.TrimSpace(locationHint); hint != "" {
		if start := hintRegex(hint); start != nil {
			if amount, ok := extractFromElements(text, start); ok {
				return amount, true
			}
		}
	}

	for _, pattern := range fallbackPatterns {
		if amount, ok := firstPositive(pattern, text); ok {
			return amount, true
		}
	}
	return decimal.Zero, false
}

// ParseAmount parses a single matched number, stripping thousands separators.
func ParseAmount(s string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(s), ",", ""))
	if err != nil || !d.IsPositive() {
		return decimal.Zero, false
	}
	return d, true
}

// hintRegex builds the start-tag pattern for a hint. Group 1 is the tag name.
func hintRegex(hint string) *regexp.Regexp {
	const openTag = `(?is)<([a-z][a-z0-9-]*)\b[^>]*?`

	switch {
	case strings.Contains(hint, "="):
		key, value, _ := strings.Cut(hint, "=")
		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `"'`)
		if key == "" {
			return nil
		}
		return regexp.MustCompile(openTag + `\b` + regexp.QuoteMeta(key) +
			`\s*=\s*["']` + regexp.QuoteMeta(value) + `["'][^>]*>`)
	case strings.HasPrefix(hint, "."):
		class := regexp.QuoteMeta(strings.TrimPrefix(hint, "."))
		if class == "" {
			return nil
		}
		return regexp.MustCompile(openTag + `\bclass\s*=\s*["'](?:[^"']*\s)?` + class + `(?:\s[^"']*)?["'][^>]*>`)
	case strings.HasPrefix(hint, "#"):
		id := regexp.QuoteMeta(strings.TrimPrefix(hint, "#"))
		if id == "" {
			return nil
		}
		return regexp.MustCompile(openTag + `\bid\s*=\s*["']` + id + `["'][^>]*>`)
	default:
		return regexp.MustCompile(`(?is)<(` + regexp.QuoteMeta(hint) + `)\b[^>]*>`)
	}
}

// extractFromElements walks every start tag matched by start and searches the
// element's inner text, then the tag's own content/value attribute.
func extractFromElements(text string, start *regexp.Regexp) (decimal.Decimal, bool) {
	for _, loc := range start.FindAllStringSubmatchIndex(text, -1) {
		tagName := text[loc[2]:loc[3]]
		inner := text[loc[1]:]
		if end := closingTagIndex(inner, tagName); end >= 0 {
			inner = inner[:end]
		}

		plain := tagRegex.ReplaceAllString(inner, " ")
		if amount, ok := firstPositive(numberRegex, plain); ok {
			return amount, true
		}
		if amount, ok := firstPositive(contentAttr, text[loc[0]:loc[1]]); ok {
			return amount, true
		}
	}
	return decimal.Zero, false
}

func closingTagIndex(s, tagName string) int {
	return strings.Index(strings.ToLower(s), "</"+strings.ToLower(tagName))
}

func firstPositive(pattern *regexp.Regexp, text string) (decimal.Decimal, bool) {
	for _, m := range pattern.FindAllStringSubmatch(text, -1) {
		if amount, ok := ParseAmount(m[1]); ok {
			return amount, true
		}
	}
	return decimal.Zero, false
}
