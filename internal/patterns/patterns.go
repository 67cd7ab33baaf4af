// Package patterns matches textual identifiers (network names, BLE device
// names) and hardware address prefixes against ordered rule tables.
package patterns

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/InfraSecConsult/surveillance-detector-go/lib/helper"
	"github.com/InfraSecConsult/surveillance-detector-go/lib/model"
)

// Rule is one entry of a pattern table. Case sensitivity is declared per
// rule and never inferred from the expression.
type Rule struct {
	Name            string
	Expr            string
	CaseInsensitive bool
	DeviceType      model.DeviceType
	BaseScore       int // base likelihood, 0-100
	Quality         model.MatchQuality
	Description     string
}

type compiledRule struct {
	Rule
	re *regexp.Regexp
}

// Table is an ordered, compiled rule list. The first matching rule wins.
type Table struct {
	kind  string
	rules []compiledRule
}

func (r Rule) pattern() string {
	if r.CaseInsensitive {
		return "(?i)" + r.Expr
	}
	return r.Expr
}

// Validate checks that every rule compiles and carries sane metadata
func Validate(rules []Rule) error {
	var errs []error
	for i, r := range rules {
		if r.Expr == "" {
			errs = append(errs, fmt.Errorf("rule %d (%s): empty expression", i, r.Name))
			continue
		}
		if _, err := regexp.Compile(r.pattern()); err != nil {
			errs = append(errs, fmt.Errorf("rule %d (%s): %w", i, r.Name, err))
		}
		if r.BaseScore < 0 || r.BaseScore > 100 {
			errs = append(errs, fmt.Errorf("rule %d (%s): base score %d out of range", i, r.Name, r.BaseScore))
		}
		if !r.DeviceType.IsValid() {
			errs = append(errs, fmt.Errorf("rule %d (%s): invalid device type %d", i, r.Name, int(r.DeviceType)))
		}
	}
	return errors.Join(errs...)
}

// Compile validates and compiles a rule table
func Compile(kind string, rules []Rule) (*Table, error) {
	if err := Validate(rules); err != nil {
		return nil, fmt.Errorf("invalid %s rule table: %w", kind, err)
	}
	t := &Table{kind: kind, rules: make([]compiledRule, 0, len(rules))}
	for _, r := range rules {
		t.rules = append(t.rules, compiledRule{Rule: r, re: regexp.MustCompile(r.pattern())})
	}
	return t, nil
}

// MustCompile is like Compile but panics on an invalid table. Built-in
// tables use it so an authoring error stops the process at startup.
func MustCompile(kind string, rules []Rule) *Table {
	t, err := Compile(kind, rules)
	if err != nil {
		panic(err)
	}
	return t
}

// Kind returns the table name used in indicators
func (t *Table) Kind() string {
	return t.kind
}

// Len returns the number of rules
func (t *Table) Len() int {
	return len(t.rules)
}

// Rules returns a copy of the table's rules in match order
func (t *Table) Rules() []Rule {
	out := make([]Rule, len(t.rules))
	for i, r := range t.rules {
		out[i] = r.Rule
	}
	return out
}

// Match returns the classification of the first rule matching s.
// An empty identifier never matches.
func (t *Table) Match(s string) (model.ClassificationResult, bool) {
	if t == nil || strings.TrimSpace(s) == "" {
		return model.ClassificationResult{}, false
	}
	for _, r := range t.rules {
		if r.re.MatchString(s) {
			return model.ClassificationResult{
				DeviceType:  r.DeviceType,
				Quality:     r.Quality,
				Likelihood:  r.BaseScore,
				Description: r.Description,
				Indicators:  []string{fmt.Sprintf("%s:%s", t.kind, r.Name)},
			}, true
		}
	}
	return model.ClassificationResult{}, false
}

// Classifier bundles the three rule tables
type Classifier struct {
	SSID      *Table
	BLEName   *Table
	MACPrefix *Table
}

// NewClassifier builds a classifier from custom rule tables
func NewClassifier(ssid, bleName, macPrefix []Rule) (*Classifier, error) {
	s, err := Compile("ssid", ssid)
	if err != nil {
		return nil, err
	}
	b, err := Compile("ble_name", bleName)
	if err != nil {
		return nil, err
	}
	m, err := Compile("mac_prefix", macPrefix)
	if err != nil {
		return nil, err
	}
	return &Classifier{SSID: s, BLEName: b, MACPrefix: m}, nil
}

// MatchSSID classifies a WiFi network name
func (c *Classifier) MatchSSID(ssid string) (model.ClassificationResult, bool) {
	return c.SSID.Match(ssid)
}

// MatchBLEName classifies a BLE advertised local name
func (c *Classifier) MatchBLEName(name string) (model.ClassificationResult, bool) {
	return c.BLEName.Match(name)
}

// MatchMACPrefix classifies a hardware address by its vendor prefix.
// Malformed and locally administered (randomised) addresses never match.
func (c *Classifier) MatchMACPrefix(address string) (model.ClassificationResult, bool) {
	if helper.IsLocallyAdministered(address) {
		return model.ClassificationResult{}, false
	}
	oui, err := helper.OUI(address)
	if err != nil {
		return model.ClassificationResult{}, false
	}
	return c.MACPrefix.Match(oui)
}

var defaultClassifier = &Classifier{
	SSID:      MustCompile("ssid", ssidRules),
	BLEName:   MustCompile("ble_name", bleNameRules),
	MACPrefix: MustCompile("mac_prefix", macPrefixRules),
}

// Default returns the classifier built from the built-in tables
func Default() *Classifier {
	return defaultClassifier
}

// MatchSSID classifies a WiFi network name with the built-in table
func MatchSSID(ssid string) (model.ClassificationResult, bool) {
	return defaultClassifier.MatchSSID(ssid)
}

// MatchBLEName classifies a BLE name with the built-in table
func MatchBLEName(name string) (model.ClassificationResult, bool) {
	return defaultClassifier.MatchBLEName(name)
}

// MatchMACPrefix classifies a hardware address with the built-in table
func MatchMACPrefix(address string) (model.ClassificationResult, bool) {
	return defaultClassifier.MatchMACPrefix(address)
}
